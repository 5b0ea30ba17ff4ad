package main

import (
	"embed"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mjeffryes/starship/pkg/cobrax/topics"
	"github.com/mjeffryes/starship/pkg/context"
)

//go:embed docs/*.md
var docsFS embed.FS

var topicsCmd = &cobra.Command{
	Use:   "topics [topic]",
	Short: "Read the built-in documentation",
	Long: `Without arguments, list the available documentation topics. With a
topic name, render that topic to the terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.New(context.Options{})
		var renderer topics.Renderer = &topics.GlamourRenderer{Width: ctx.Width}
		if ctx.IsDumbTerminal() {
			renderer = &topics.PlainRenderer{}
		}
		mgr, err := topics.NewFromFS(docsFS, "docs", renderer)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load documentation topics")
			return err
		}
		if len(args) == 0 {
			fmt.Println("Available topics:")
			fmt.Println()
			fmt.Println("  " + strings.Join(mgr.Names(), "\n  "))
			fmt.Println()
			fmt.Println("Run 'starship topics <name>' to read one.")
			return nil
		}
		out, err := mgr.Render(args[0])
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
