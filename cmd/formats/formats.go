/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formats provides the formats command for exporter.
package formats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/exporter/config"
	"bennypowers.dev/exporter/fs"
)

// Cmd is the formats cobra command.
var Cmd = &cobra.Command{
	Use:   "formats",
	Short: "List configured export formats",
	Long:  `List the formats configured in .config/exporter.{yaml,yml,json} and the driver each one uses.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

// Format describes one configured format.
type Format struct {
	Name    string `json:"name"`
	Driver  string `json:"driver"`
	Default bool   `json:"default"`
}

func run(cmd *cobra.Command, args []string) error {
	rootDir, _ := cmd.Flags().GetString("root")
	output, _ := cmd.Flags().GetString("format")

	cfg, err := config.Load(fs.NewOSFileSystem(), rootDir)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if output == "table" {
		fmt.Fprintf(w, "manager alias: %s\n\n", cfg.Alias)
	}
	return Print(w, List(cfg), output)
}

// List returns the configured formats sorted by name.
func List(cfg *config.Config) []Format {
	names := cfg.Formats()
	list := make([]Format, 0, len(names))
	for _, name := range names {
		list = append(list, Format{
			Name:    name,
			Driver:  cfg.FormatConfig(name).Driver(),
			Default: name == cfg.DefaultFormat(),
		})
	}
	return list
}

// Print writes formats as an aligned table or JSON.
func Print(w io.Writer, list []Format, output string) error {
	switch output {
	case "json":
		out, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling formats: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "table", "":
		for _, f := range list {
			marker := ""
			if f.Default {
				marker = "(default)"
			}
			driver := f.Driver
			if driver == "" {
				driver = "-"
			}
			line := fmt.Sprintf("%-20s %-10s %s", f.Name, driver, marker)
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q: expected table or json", output)
	}
}
