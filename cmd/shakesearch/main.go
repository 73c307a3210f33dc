// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the shakesearch CLI: a full-text
// search server over a corpus of works, and a client that submits queries
// to it and renders the results.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/shakesearch/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the shakesearch CLI.
var rootCmd = &cobra.Command{
	Use:   "shakesearch",
	Short: "Full-text search over the complete works",
	Long: `shakesearch indexes a complete-works text file and serves a search page
and a JSON search API over it. The query subcommand submits a search to a
running server and prints the rendered results.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Setup(os.Stderr, viper.GetBool("server.debug"))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./shakesearch.yaml or ~/.config/shakesearch/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	viper.BindPFlag("server.debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("shakesearch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "shakesearch"))
		}
	}

	viper.SetEnvPrefix("SHAKESEARCH")
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
