// Package main provides the CLI entry point for the supplier price list
// merger.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jtboss/supplierpricelistmerger/pkg/merger"
	"github.com/jtboss/supplierpricelistmerger/pkg/merger/config"
	"github.com/jtboss/supplierpricelistmerger/pkg/merger/models"
)

var (
	outputPath string
	configPath string
	pretty     bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pricemerger",
		Short: "Merge supplier price list workbooks into one master workbook",
		Long: `pricemerger consolidates supplier Excel price lists into a single
master workbook, detecting each file's unit cost column and appending
five fixed markup columns per supplier sheet.`,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to yaml configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline progress to stderr")

	mergeCmd := &cobra.Command{
		Use:   "merge [input.xlsx...]",
		Short: "Merge supplier files into a master workbook",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMerge,
	}
	mergeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: Supplier_Master_<timestamp>.xlsx)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [input.xlsx]",
		Short: "Print worksheet analysis for one supplier file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(mergeCmd, analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildOptions(cfg config.Config) merger.Options {
	opts := merger.DefaultOptions()
	opts.MaxFileSize = cfg.MaxFileSizeBytes()
	if verbose || cfg.Verbose {
		opts.Logger = log.New(os.Stderr, "pricemerger: ", log.LstdFlags)
	}
	return opts
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	opts := buildOptions(cfg)

	inputs := make([]merger.Input, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			// Unreadable inputs become per-file failures, not batch aborts.
			inputs = append(inputs, merger.Input{Name: filepath.Base(path), Data: nil})
			fmt.Fprintf(os.Stderr, "warning: could not read %s: %v\n", path, err)
			continue
		}
		inputs = append(inputs, merger.Input{Name: filepath.Base(path), Data: data})
	}

	data, files, err := merger.Merge(inputs, opts)
	reportFiles(os.Stderr, files)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	out := outputPath
	if out == "" {
		out = filepath.Join(cfg.OutputDir, merger.OutputFileName(time.Now()))
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("wrote %s (merged %d of %d files)\n", out, countCompleted(files), len(files))
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	opts := buildOptions(cfg)

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	file := models.NewFileObject(filepath.Base(path), data)
	if err := merger.ProcessFile(file, opts); err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	var jsonData []byte
	if pretty {
		jsonData, err = json.MarshalIndent(file.Analysis, "", "  ")
	} else {
		jsonData, err = json.Marshal(file.Analysis)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

// reportFiles prints one itemized line per failed file.
func reportFiles(w io.Writer, files []*models.FileObject) {
	for _, f := range files {
		if f.Status != models.StatusError {
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", f.Name, strings.Join(f.Errors, "; "))
	}
}

func countCompleted(files []*models.FileObject) int {
	n := 0
	for _, f := range files {
		if f.Status == models.StatusCompleted {
			n++
		}
	}
	return n
}
