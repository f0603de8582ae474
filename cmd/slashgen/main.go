package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/toyz/slashgen/internal/cli"
)

func main() {
	var (
		moduleFlag  = flag.String("module", "", "Module path for the summary (defaults to go.mod module)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		cleanFlag   = flag.Bool("clean", false, "Delete all autogen_slash.go files from the specified directories")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Slash Command Code Generator\n")
		fmt.Fprintf(os.Stderr, "Scans directories for Go files with slash:: directives and generates\n")
		fmt.Fprintf(os.Stderr, "command schema builders and interaction parsers.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDirectory Patterns:\n")
		fmt.Fprintf(os.Stderr, "  ./...              Scan current directory and all subdirectories recursively\n")
		fmt.Fprintf(os.Stderr, "  ./internal/...     Scan internal directory and all its subdirectories\n")
		fmt.Fprintf(os.Stderr, "  ./bot/commands     Scan only the specific directory (no recursion)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                      # Generate for everything recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose ./bot/...        # Enable detailed output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean ./...              # Delete all autogen_slash.go files\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	cfg := &cli.Config{
		Paths:   flag.Args(),
		Module:  *moduleFlag,
		Verbose: *verboseFlag,
		Quiet:   *quietFlag,
		Clean:   *cleanFlag,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	diag := cfg.Diagnostics()
	diag.Section("Slash Command Generator")

	runner := cli.NewRunner(cfg)
	if err := runner.Run(); err != nil {
		diag.Error("%v", err)
		os.Exit(1)
	}
}
