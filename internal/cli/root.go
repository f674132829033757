// Package cli wires the kcli command tree.
package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/2kybe3/kcli/internal/app"
	"github.com/2kybe3/kcli/internal/config"
	"github.com/2kybe3/kcli/internal/logger"
	"github.com/2kybe3/kcli/internal/version"
)

// skipConfig marks commands that run without loading the config file.
const skipConfig = "kcli/skip-config"

// Deps are the process-level collaborators of the command tree.
// Zero values pick the real implementations.
type Deps struct {
	Settings        *config.Settings
	Logger          logger.Logger
	HTTPClient      *http.Client
	StdinIsTerminal func() bool
}

// runtime is shared by every command of one tree.
type runtime struct {
	deps    Deps
	cfgFile string
	app     *app.App
}

// NewRootCmd builds the command tree.
func NewRootCmd(d Deps) *cobra.Command {
	if d.StdinIsTerminal == nil {
		d.StdinIsTerminal = stdinIsTerminal
	}
	rt := &runtime{deps: d}

	root := &cobra.Command{
		Use:           "kcli",
		Short:         "Upload text to paste services",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true, // replaced by generate-completions
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfig] == "true" || cmd.Name() == "help" {
				return nil
			}
			return rt.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.app != nil {
				_ = rt.app.Logger().Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&rt.cfgFile, "config", "c", "", "config file (default is <user config dir>/kybe-paste-manager/config.yaml, or $KCLI_CONFIG)")

	root.AddCommand(
		newUploadCmd(rt),
		newServicesCmd(rt),
		newConfigCmd(rt),
		newCompletionsCmd(),
		newVersionCmd(),
	)
	return root
}

func (rt *runtime) load() error {
	settings := rt.deps.Settings
	if settings == nil {
		settings = config.LoadSettings()
	}

	a, err := app.New(app.Options{
		Settings:   settings,
		ConfigPath: rt.cfgFile,
		Logger:     rt.deps.Logger,
		HTTPClient: rt.deps.HTTPClient,
	})
	if err != nil {
		return err
	}
	rt.app = a
	return nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "kcli %s (commit=%s, built=%s, go=%s)\n",
				version.Version, version.Commit, version.BuildDate, version.GoVersion)
			return err
		},
	}
}
