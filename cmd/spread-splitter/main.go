// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the spread-splitter CLI.
package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/spread-splitter/internal/logging"
	"github.com/pdiddy/spread-splitter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const usageLine = "Usage: spread-splitter input.pdf output.pdf"

// errUsage marks a wrong argument count; no work has been done.
var errUsage = errors.New("wrong number of arguments")

// rootCmd splits a PDF when given two paths and hosts the subcommands.
var rootCmd = &cobra.Command{
	Use:   "spread-splitter <input.pdf> <output.pdf>",
	Short: "Split scanned two-page spreads into single pages",
	Long: `spread-splitter renders every page of a PDF, cuts each page image down
the middle, and writes a new PDF in which the left and right halves are
separate pages. It is meant for books scanned as two-page spreads.

Pages that fail to render are logged and skipped; the rest of the document
is still written.

An input file named like a subcommand (history, inspect, version) must be
given as a path, e.g. ./history, or after --:

  spread-splitter -- history out.pdf`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lc := types.LogConfig{
			Level:  viper.GetString("log.level"),
			Format: types.LogFormat(viper.GetString("log.format")),
		}
		if _, err := logging.Setup(lc, os.Stderr); err != nil {
			return err
		}
		if f := viper.ConfigFileUsed(); f != "" {
			logrus.WithField("config", f).Debug("Using config file")
		}
		return nil
	},
	RunE: runSplit,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./spread-splitter.yaml or ~/.config/spread-splitter/spread-splitter.yaml)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.String("history", "", "SQLite run ledger path (empty disables recording)")

	_ = viper.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("log.format", pf.Lookup("log-format"))
	_ = viper.BindPFlag("history_db", pf.Lookup("history"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("spread-splitter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "spread-splitter"))
		}
	}

	viper.SetEnvPrefix("SPREAD_SPLITTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; flags and defaults apply.
	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			logrus.Error(usageLine)
			os.Exit(2)
		}
		logrus.WithError(err).Error("An unexpected error occurred")
		os.Exit(1)
	}
}
