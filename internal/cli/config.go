package cli

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2kybe3/kcli/internal/config"
	"github.com/2kybe3/kcli/internal/logger"
)

// newConfigCmd groups the subcommands that inspect or edit config.yaml.
func newConfigCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or edit the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newConfigShowCmd(rt), newConfigEditCmd(rt), newConfigPathCmd(rt))
	return cmd
}

func newConfigShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the loaded configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(rt.app.Config())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigPathCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), rt.app.ConfigPath())
			return err
		},
	}
}

// newConfigEditCmd opens the config file in $EDITOR. The file is edited in
// place; this process keeps the configuration it already loaded.
func newConfigEditCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the config file in $EDITOR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := strings.Fields(rt.app.Settings().Editor)
			if len(argv) == 0 {
				argv = []string{"vi"}
			}

			editor := exec.CommandContext(cmd.Context(), argv[0], append(argv[1:], rt.app.ConfigPath())...)
			editor.Stdin = cmd.InOrStdin()
			editor.Stdout = cmd.OutOrStdout()
			editor.Stderr = cmd.ErrOrStderr()

			err := editor.Run()
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				rt.app.Logger().Warn("editor exited with non-zero status",
					logger.String("editor", argv[0]),
					logger.Int("exit_code", exitErr.ExitCode()))
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
			return nil
		},
	}
}
