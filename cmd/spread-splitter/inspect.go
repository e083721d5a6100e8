// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/spread-splitter/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.pdf>",
	Short: "Show the page count and page sizes of a PDF",
	Long: `Inspect prints the number of pages in a PDF and the size of each page in
points. Use it to check split output: every page should match the size of
the half it came from.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	report, err := inspect.Inspect(args[0])
	if err != nil {
		return err
	}

	asYAML, _ := cmd.Flags().GetBool("yaml")
	if asYAML {
		return inspect.WriteYAML(os.Stdout, report)
	}
	return inspect.WriteText(os.Stdout, report)
}

func init() {
	inspectCmd.Flags().Bool("yaml", false, "output the report as YAML")

	rootCmd.AddCommand(inspectCmd)
}
