// Package main provides the strdensity command-line tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Global flags
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	// Parse global flags first
	flag.Parse()

	if showVersion {
		fmt.Printf("strdensity version %s (%s) built %s\n", version, commit, date)
		return ExitSuccess
	}

	initConfig()

	// Check for subcommand
	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return ExitUsage
	}

	switch args[0] {
	case "density":
		return runDensity(args[1:])
	case "config":
		return runConfig(args[1:])
	case "help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printUsage()
		return ExitUsage
	}
}

// initConfig loads ~/.strdensity.yaml if present and sets defaults.
func initConfig() {
	viper.SetDefault("output.format", "tab")
	viper.SetDefault("engine.workers", 0)

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigName(".strdensity")
	viper.SetConfigType("yaml")

	// A missing config file is fine; defaults apply
	_ = viper.ReadInConfig()
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `strdensity - STR density calculator

Computes, for every gene in a GTF annotation, how densely short tandem
repeat (STR) regions occupy the gene, split into exonic and intronic
density.

Usage:
  strdensity [options] <command> [arguments]

Commands:
  density     Compute per-gene STR densities from a GTF and a BED file
  config      Manage strdensity configuration
  help        Show this help message

Global Options:
  --version   Show version information

Examples:
  # Compute densities and write a tab-delimited table to stdout
  strdensity density --gtf genes.gtf --bed strs.bed

  # Write CSV output to a file
  strdensity density --gtf genes.gtf --bed strs.bed -f csv -o densities.csv

  # Also store the results in a queryable DuckDB database
  strdensity density --gtf genes.gtf --bed strs.bed --duckdb densities.duckdb

For more information on a command, use:
  strdensity <command> --help
`)
}
