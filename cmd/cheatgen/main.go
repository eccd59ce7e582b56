// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command cheatgen renders a cheatcode catalog as a Solidity interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds global flags to viper.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cheatgen",
		Short:         "Generate Solidity cheatcode interfaces",
		Long:          "cheatgen reads a cheatcode catalog (JSON, YAML or TOML) and writes the matching Solidity interface file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			readConfigFile(viper.GetString("workdir"))
			return nil
		},
	}

	// Global flags.
	rootCmd.PersistentFlags().String("workdir", ".", "Directory used to locate the repository and config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "logfmt", "Log format (logfmt, json)")

	// Bind flags to viper.
	viper.BindPFlag("workdir", rootCmd.PersistentFlags().Lookup("workdir"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Env vars: CHEATGEN_INPUT, CHEATGEN_LOG_LEVEL, etc.
	viper.SetEnvPrefix("CHEATGEN")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// readConfigFile loads .cheatgen.yaml from dir when present.
func readConfigFile(dir string) {
	viper.SetConfigName(".cheatgen")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)
	viper.ReadInConfig() // Ignore error; config file is optional.
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print cheatgen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cheatgen %s\n", version)
		},
	}
}
