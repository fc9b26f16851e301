/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for exporter.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/exporter/cmd/export"
	"bennypowers.dev/exporter/cmd/formats"
	"bennypowers.dev/exporter/cmd/version"
	"bennypowers.dev/exporter/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Export structured resources as CSV or XML",
	Long:  `exporter renders resources and collections of resources through configurable CSV and XML drivers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
		if cmd.Flags().Changed("log-level") {
			level, _ := cmd.Flags().GetString("log-level")
			return logger.SetLevel(level)
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("root", ".", "Project root containing .config/exporter.{yaml,yml,json}")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(formats.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
