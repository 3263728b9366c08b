// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-stamp CLI, which parses
// arXiv identifiers and stamps, scans reference files for them, and keeps
// an optional SQLite index of what it found.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-stamp/internal/index"
	"github.com/pdiddy/arxiv-stamp/internal/scan"
	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

// configName is the base name of the config file searched for in the
// working directory and in ~/.config/arxiv-stamp.
const configName = "arxiv-stamp"

// version is set at build time via ldflags.
var version = "dev"

// cfg holds the configuration decoded before each command runs.
var cfg types.Config

// rootCmd is the base command for the arxiv-stamp CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-stamp",
	Short: "Recognize and normalize arXiv identifiers and stamps",
	Long: `arxiv-stamp validates arXiv identifiers in both the pre-2007
(archive/YYMMNNN) and current (YYMM.NNNNN) schemes, and parses the stamps
arXiv prints on its PDFs ("arXiv:0706.0001v1 [q-bio.CB] 1 Jun 2007").

It works entirely offline: categories are checked against a built-in copy
of the arXiv taxonomy and nothing is fetched from arxiv.org.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("decoding configuration: %w", err)
		}
		if !cfg.Format.Valid() {
			return fmt.Errorf("unknown output format %q (want text, json or yaml)", cfg.Format)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./"+configName+".yaml or ~/.config/arxiv-stamp/"+configName+".yaml)")
	rootCmd.PersistentFlags().String("format", "", "output format: text, json or yaml (default text)")
	rootCmd.PersistentFlags().String("db", "", "index database path (default "+index.DefaultPath+")")

	viper.SetDefault("format", string(types.OutputText))
	viper.SetDefault("scan.extensions", scan.DefaultExtensions)
	viper.SetDefault("index.path", index.DefaultPath)
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("index.path", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-stamp"))
		}
	}

	viper.SetEnvPrefix("ARXIV_STAMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
