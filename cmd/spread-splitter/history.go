// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/spread-splitter/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded split runs",
	Long: `History lists runs recorded in the SQLite ledger given by --history (or
history_db in the config file), newest first.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath := viper.GetString("history_db")
	if dbPath == "" {
		return fmt.Errorf("no run ledger configured: pass --history or set history_db")
	}
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("opening run ledger %s: %w", dbPath, err)
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	asYAML, _ := cmd.Flags().GetBool("yaml")
	if asYAML {
		return history.WriteYAML(os.Stdout, runs)
	}
	history.WriteText(os.Stdout, runs)
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("yaml", false, "output runs as YAML")

	rootCmd.AddCommand(historyCmd)
}
