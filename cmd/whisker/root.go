// Command whisker renders whisker templates from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "whisker",
	Short: "Render logic-less templates",
	Long: `Whisker renders templates in a minimalist logic-less template
language of the Mustache family against JSON or YAML data.

Quick Start:
  whisker render page.tmpl --data page.json
  whisker render page.tmpl --data page.yaml --partial header=header.tmpl`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log render details to stderr")
}

var verbose bool

func errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		msg = color.RedString("%s", msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}
