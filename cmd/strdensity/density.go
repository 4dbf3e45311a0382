package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/strdensity/internal/annotation"
	"github.com/inodb/strdensity/internal/bed"
	"github.com/inodb/strdensity/internal/density"
	"github.com/inodb/strdensity/internal/duckdb"
	"github.com/inodb/strdensity/internal/output"
)

// resultWriter is the sink all flat output formats implement.
type resultWriter interface {
	WriteHeader() error
	Write(r *density.GeneResult) error
	Flush() error
}

func runDensity(args []string) int {
	fs := flag.NewFlagSet("density", flag.ExitOnError)

	var (
		gtfPath      string
		bedPath      string
		outputFile   string
		outputFormat string
		duckdbPath   string
		workers      int
		quiet        bool
	)

	fs.StringVar(&gtfPath, "gtf", "", "Path to the GTF file with gene annotations")
	fs.StringVar(&bedPath, "bed", "", "Path to the BED file with STR regions")
	fs.StringVar(&outputFile, "o", "", "Output file (default: stdout)")
	fs.StringVar(&outputFile, "output", "", "Output file (default: stdout)")
	fs.StringVar(&outputFormat, "f", viper.GetString("output.format"), "Output format: tab, csv")
	fs.StringVar(&outputFormat, "output-format", viper.GetString("output.format"), "Output format: tab, csv")
	fs.StringVar(&duckdbPath, "duckdb", "", "Also write results to a DuckDB database at this path")
	fs.IntVar(&workers, "workers", viper.GetInt("engine.workers"), "Number of per-gene workers (0 = number of CPUs)")
	fs.BoolVar(&quiet, "q", false, "Suppress per-chromosome progress output")
	fs.BoolVar(&quiet, "quiet", false, "Suppress per-chromosome progress output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Compute per-gene STR densities from a GTF annotation and a BED STR file.

Usage:
  strdensity density [options]

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  strdensity density --gtf genes.gtf --bed strs.bed
  strdensity density --gtf genes.gtf.gz --bed strs.bed -f csv -o densities.csv
  strdensity density --gtf genes.gtf --bed strs.bed --duckdb densities.duckdb
`)
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	// Fall back to interactive prompts when paths are missing
	if gtfPath == "" || bedPath == "" {
		fmt.Fprintln(os.Stderr, "Not all command-line arguments provided, switching to interactive mode.")
		var err error
		gtfPath, bedPath, err = interactivePrompt()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitError
		}
	}

	// Load both sources fully before any computation
	ann, err := annotation.NewGTFLoader(gtfPath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Hint: Check that the GTF file path is correct\n")
		}
		return ExitError
	}

	strs, err := bed.NewParser(bedPath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Hint: Check that the BED file path is correct\n")
		}
		return ExitError
	}

	fmt.Fprintf(os.Stderr, "Loaded %d genes, %d exons, %d STRs\n",
		len(ann.Genes), len(ann.Exons), len(strs))

	engine := density.NewEngine()
	engine.SetWorkers(workers)

	if !quiet {
		logCfg := zap.NewDevelopmentConfig()
		logCfg.OutputPaths = []string{"stderr"}
		logger, err := logCfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
			return ExitError
		}
		defer logger.Sync()
		engine.SetLogger(logger)
	}

	results := engine.Run(ann.Genes, ann.Exons, strs)

	// Write the flat output table
	var out io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return ExitError
		}
		defer f.Close()
		out = f
	}

	var writer resultWriter
	switch outputFormat {
	case "tab":
		writer = output.NewTabWriter(out)
	case "csv":
		writer = output.NewCSVWriter(out)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", outputFormat)
		return ExitError
	}

	if err := writeResults(writer, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	// Optionally store the same rows in DuckDB
	if duckdbPath != "" {
		store, err := duckdb.Open(duckdbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening DuckDB database: %v\n", err)
			return ExitError
		}
		defer store.Close()

		if err := store.WriteGeneResults(results); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing results to DuckDB: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(os.Stderr, "Stored %d rows in %s\n", len(results), duckdbPath)
	}

	fmt.Fprintf(os.Stderr, "Wrote %d gene rows\n", len(results))
	return ExitSuccess
}

func writeResults(w resultWriter, results []*density.GeneResult) error {
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range results {
		if err := w.Write(r); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return w.Flush()
}
