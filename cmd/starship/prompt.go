package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/prompt"
)

// promptOpts holds the flags the shell hook passes on every render.
// Shared by prompt, module, timings and explain since they all need the
// same picture of the last command.
var promptOpts struct {
	status        int
	cmdDurationMs int
	path          string
	shellName     string
	width         int
	configPath    string
}

func addPromptFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&promptOpts.status, "status", 0, "Exit code of the previously run command")
	f.IntVar(&promptOpts.cmdDurationMs, "cmd-duration", 0, "Execution duration of the last command, in milliseconds")
	f.StringVar(&promptOpts.path, "path", "", "The path the prompt should render for (default: current directory)")
	f.StringVar(&promptOpts.shellName, "shell", "", "The shell the prompt is rendered for (default: $STARSHIP_SHELL)")
	f.IntVarP(&promptOpts.width, "terminal-width", "w", 0, "The width of the terminal, in columns (default: detected)")
	f.StringVar(&promptOpts.configPath, "config", "", "Path to the configuration file (default: $STARSHIP_CONFIG)")
}

func promptContext() *context.Context {
	return context.New(context.Options{
		ConfigPath:    promptOpts.configPath,
		Path:          promptOpts.path,
		Shell:         promptOpts.shellName,
		Status:        promptOpts.status,
		CmdDurationMs: promptOpts.cmdDurationMs,
		Width:         promptOpts.width,
	})
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the full prompt",
	Long: `Print the full prompt for the current state of the shell. This is the
command the shell hook invokes; its output becomes the prompt.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(prompt.Render(promptContext()))
	},
}

var moduleCmd = &cobra.Command{
	Use:   "module [name]",
	Short: "Print the output of a single prompt module",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(prompt.ModuleText(args[0], promptContext()))
	},
}

func init() {
	addPromptFlags(promptCmd)
	addPromptFlags(moduleCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(moduleCmd)
}
