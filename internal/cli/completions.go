package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var shells = []string{"bash", "zsh", "fish", "powershell"}

func newCompletionsCmd() *cobra.Command {
	var shell string

	cmd := &cobra.Command{
		Use:         "generate-completions",
		Short:       "Print a shell completion script",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.PrintErrf("Generating completion file for %s...\n", shell)
			return writeCompletions(cmd.Root(), shell, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&shell, "shell", "s", "", "target shell: bash, zsh, fish or powershell")
	_ = cmd.MarkFlagRequired("shell")
	_ = cmd.RegisterFlagCompletionFunc("shell", cobra.FixedCompletions(shells, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func writeCompletions(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell %q (want one of %v)", shell, shells)
	}
}
