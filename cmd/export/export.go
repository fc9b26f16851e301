/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export provides the export command for exporter.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"bennypowers.dev/exporter/config"
	exportlib "bennypowers.dev/exporter/export"
	"bennypowers.dev/exporter/export/driver"
	"bennypowers.dev/exporter/export/driver/csv"
	"bennypowers.dev/exporter/export/driver/xml"
	"bennypowers.dev/exporter/fs"
	"bennypowers.dev/exporter/internal/logger"
	"bennypowers.dev/exporter/load"
	"bennypowers.dev/exporter/naming"
	"bennypowers.dev/exporter/resource"
)

// Cmd is the export cobra command.
var Cmd = &cobra.Command{
	Use:   "export [files...]",
	Short: "Export resource files as CSV or XML",
	Long: `Export resource files (YAML, JSON or JSONC) through a configured format.

Inputs may be local paths, globs or http(s) URLs. A file whose root is an array is exported as a collection; any other file
is exported as a single item. The resource type defaults to the singular
form of the file name, so users.yaml holds User resources.

Examples:
  # Export with the default format
  exporter export data/users.yaml

  # Export every order file as pretty XML with a custom root
  exporter export -f xml --root-element orders 'data/**/orders*.json'

  # Semicolon-separated CSV without the password column
  exporter export --delimiter ';' -w password data/users.yaml -o users.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "", "Configured format name (default: the config's default format)")
	Cmd.Flags().StringP("type", "t", "", "Resource type name (default: derived from the file name)")
	Cmd.Flags().Bool("collection", false, "Export object roots as single-item collections")
	Cmd.Flags().StringArrayP("without", "w", nil, "Top-level field to exclude (repeatable)")
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().String("metrics-file", "", "Write export metrics in Prometheus text format to this file")
	Cmd.Flags().Duration("fetch-timeout", load.DefaultTimeout, "Timeout for each URL input")
	Cmd.Flags().Bool("offline", false, "Reject URL inputs")

	Cmd.Flags().String("root-element", "", "XML: document element name")
	Cmd.Flags().Bool("pretty", false, "XML: indent output")
	Cmd.Flags().Bool("no-pretty", false, "XML: compact output")
	Cmd.Flags().Bool("include-sub-resources", true, "XML: render nested resources and sequences")
	Cmd.Flags().String("delimiter", "", "CSV: field delimiter")
	Cmd.Flags().String("enclosure", "", "CSV: field enclosure")
	Cmd.MarkFlagsMutuallyExclusive("pretty", "no-pretty")
}

// Options controls a single export run.
type Options struct {
	// RootDir holds .config/exporter.* and anchors relative patterns.
	RootDir string

	// Format names a configured format. Empty selects the default.
	Format string

	// Type overrides the resource type name derived from each file name.
	Type string

	// Collection exports object roots as single-item collections.
	Collection bool

	// Without lists top-level fields to exclude.
	Without []string

	// Overrides are driver options layered over the format's configuration.
	Overrides driver.Config

	// Output is a file path; empty writes to the command's writer.
	Output string

	// Metrics records resolutions and exports. May be nil.
	Metrics *exportlib.Metrics

	// Fetcher reads URL inputs. Nil rejects them.
	Fetcher load.Fetcher

	// FetchTimeout bounds each URL fetch. Zero uses load.DefaultTimeout.
	FetchTimeout time.Duration
}

func run(cmd *cobra.Command, args []string) error {
	rootDir, _ := cmd.Flags().GetString("root")
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("resolving root %s: %w", rootDir, err)
	}

	opts := Options{RootDir: absRoot}
	opts.Format, _ = cmd.Flags().GetString("format")
	opts.Type, _ = cmd.Flags().GetString("type")
	opts.Collection, _ = cmd.Flags().GetBool("collection")
	opts.Without, _ = cmd.Flags().GetStringArray("without")
	opts.Output, _ = cmd.Flags().GetString("output")
	opts.Overrides = overridesFromFlags(cmd)
	opts.FetchTimeout, _ = cmd.Flags().GetDuration("fetch-timeout")
	if offline, _ := cmd.Flags().GetBool("offline"); !offline {
		opts.Fetcher = load.NewHTTPFetcher(load.DefaultMaxSize)
	}
	metricsFile, _ := cmd.Flags().GetString("metrics-file")

	reg := prometheus.NewRegistry()
	opts.Metrics = exportlib.NewMetrics(reg)

	err = Run(cmd.Context(), fs.NewOSFileSystem(), opts, args, cmd.OutOrStdout())

	if metricsFile != "" {
		if werr := prometheus.WriteToTextfile(metricsFile, reg); werr != nil {
			logger.Warn("writing metrics to %s: %v", metricsFile, werr)
		}
	}
	return err
}

// overridesFromFlags collects the driver options set explicitly on the
// command line.
func overridesFromFlags(cmd *cobra.Command) driver.Config {
	flags := cmd.Flags()
	overrides := driver.Config{}

	if flags.Changed("root-element") {
		overrides[xml.RootElementKey], _ = flags.GetString("root-element")
	}
	if flags.Changed("pretty") {
		overrides[xml.PrettyPrintKey], _ = flags.GetBool("pretty")
	}
	if flags.Changed("no-pretty") {
		noPretty, _ := flags.GetBool("no-pretty")
		overrides[xml.PrettyPrintKey] = !noPretty
	}
	if flags.Changed("include-sub-resources") {
		overrides[xml.IncludeSubResourcesKey], _ = flags.GetBool("include-sub-resources")
	}
	if flags.Changed("delimiter") {
		overrides[csv.DelimiterKey], _ = flags.GetString("delimiter")
	}
	if flags.Changed("enclosure") {
		overrides[csv.EnclosureKey], _ = flags.GetString("enclosure")
	}
	return overrides
}

// Run exports the files and URLs matched by patterns and writes the
// concatenated result to opts.Output or w.
func Run(ctx context.Context, filesystem fs.FileSystem, opts Options, patterns []string, w io.Writer) error {
	cfg, err := config.Load(filesystem, opts.RootDir)
	if err != nil {
		return err
	}

	manager := exportlib.NewManager(cfg, exportlib.WithMetrics(opts.Metrics))
	format := opts.Format
	if format == "" {
		format = manager.DefaultFormat()
	}

	if err := prepare(manager, cfg, format, opts); err != nil {
		return err
	}

	locations, err := expand(filesystem, opts.RootDir, patterns)
	if err != nil {
		return err
	}
	if len(locations) == 0 {
		return errors.New("no input files matched")
	}

	reader := load.NewReader(filesystem, opts.Fetcher)
	if opts.FetchTimeout > 0 {
		reader.WithTimeout(opts.FetchTimeout)
	}

	var out strings.Builder
	for _, location := range locations {
		s, err := exportLocation(ctx, manager, reader, format, location, opts)
		if err != nil {
			return err
		}
		out.WriteString(s)
	}

	if opts.Output == "" {
		_, err = io.WriteString(w, out.String())
		return err
	}

	if dir := filepath.Dir(opts.Output); dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := filesystem.WriteFile(opts.Output, []byte(out.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Output, err)
	}
	logger.Info("wrote %s", opts.Output)
	return nil
}

// prepare resolves the format's exporter and applies overrides and field
// exclusions. Overridden exporters are built on demand and cached under the
// format name for the rest of the run.
func prepare(manager *exportlib.Manager, cfg *config.Config, format string, opts Options) error {
	if len(opts.Overrides) > 0 {
		base := cfg.FormatConfig(format)
		if base == nil {
			return &exportlib.ConfigurationError{Format: format}
		}
		maps.Copy(base, opts.Overrides)

		built, err := manager.Build(base)
		if err != nil {
			return err
		}
		manager.Set(format, built)
	}

	e, err := manager.Format(format)
	if err != nil {
		return err
	}
	if len(opts.Without) > 0 {
		e.WithoutFields(opts.Without...)
	}
	return nil
}

// expand keeps URLs in place and expands local patterns against rootDir.
func expand(filesystem fs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var locations []string
	for _, pattern := range patterns {
		if load.IsURL(pattern) {
			locations = append(locations, pattern)
			continue
		}
		matches, err := fs.Expand(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		locations = append(locations, matches...)
	}
	return locations, nil
}

func exportLocation(ctx context.Context, manager *exportlib.Manager, reader *load.Reader, format, path string, opts Options) (string, error) {
	data, err := reader.Read(ctx, path)
	if err != nil {
		return "", err
	}

	typeName := opts.Type
	if typeName == "" {
		typeName = TypeNameFor(path)
	}

	item, list, err := resource.DecodeDocument(typeName, data, opts.Collection)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	var out string
	if list != nil {
		logger.Debug("exporting %s as a collection of %d %s", path, len(list.Items()), typeName)
		out, err = manager.ExportCollectionAs(format, list)
	} else {
		logger.Debug("exporting %s as a single %s", path, typeName)
		out, err = manager.ExportItemAs(format, item)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// TypeNameFor derives a resource type name from a file path or URL:
// "data/order-lines.yaml" holds OrderLine resources.
func TypeNameFor(location string) string {
	return naming.ToPascalCase(naming.Singularize(load.BaseName(location)))
}
