package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mjeffryes/starship/pkg/shell"
)

var initCmd = &cobra.Command{
	Use:   "init [shell]",
	Short: "Print the shell hook that installs starship as your prompt",
	Long: `Print the snippet that wires starship into a shell. Add the matching
line to your shell's rc file:

Bash:
  eval "$(starship init bash)"

Zsh:
  eval "$(starship init zsh)"

Fish:
  starship init fish | source

Tcsh:
  eval ` + "`starship init tcsh`" + `
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sh := shell.Parse(args[0])
		binary, err := os.Executable()
		if err != nil {
			binary = "starship"
		}
		snippet, err := shell.InitSnippet(sh, binary)
		if err != nil {
			return err
		}
		fmt.Print(snippet)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
