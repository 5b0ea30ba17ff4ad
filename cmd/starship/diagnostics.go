package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mjeffryes/starship/pkg/prompt"
)

var timingsCmd = &cobra.Command{
	Use:   "timings",
	Short: "Print how long each prompt module took to compute",
	Long: `Compute the prompt once and print a table of per-module timings,
slowest first. Useful for finding the module that makes your prompt
feel sluggish.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(prompt.Timings(promptContext()))
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain what each part of the prompt is showing",
	Long: `Compute the prompt once and print, for every visible module, its
output, how long it took, and a short description of what it does.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(prompt.Explain(promptContext()))
	},
}

func init() {
	addPromptFlags(timingsCmd)
	addPromptFlags(explainCmd)
	rootCmd.AddCommand(timingsCmd)
	rootCmd.AddCommand(explainCmd)
}
