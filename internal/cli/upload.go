package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/2kybe3/kcli/internal/app"
	"github.com/2kybe3/kcli/internal/logger"
	"github.com/2kybe3/kcli/internal/pastebins/pastebincom"
)

// ErrNoInput is returned when upload has neither a file nor piped stdin.
var ErrNoInput = errors.New("no input provided (file or stdin)")

func newUploadCmd(rt *runtime) *cobra.Command {
	var file string
	var service string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a file or stdin and print the paste URL",
		Example: `  kcli upload -f main.go
  git diff | kcli upload`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd, file, rt.deps.StdinIsTerminal)
			if err != nil {
				return err
			}

			url, err := rt.app.Upload(cmd.Context(), service, content)
			if err != nil {
				return err
			}

			rt.app.Logger().Debug("paste created", logger.String("url", url))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file to upload (default: read stdin)")
	cmd.Flags().StringVarP(&service, "service", "s", pastebincom.ID, "paste service to upload to")
	_ = cmd.MarkFlagFilename("file")
	_ = cmd.RegisterFlagCompletionFunc("service", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		known := app.KnownServices()
		out := make([]string, 0, len(known))
		for _, m := range known {
			out = append(out, m.ID+"\t"+m.String())
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func readInput(cmd *cobra.Command, file string, isTerminal func() bool) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), nil
	}

	if isTerminal() {
		return "", ErrNoInput
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
