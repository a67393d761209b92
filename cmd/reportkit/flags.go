package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/SumanthCsy/reportkit/internal/assets"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	output  string
	format  string
	title   string
	date    string
	config  string
	style   string
	workers int
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses args (including the program name) into flags and the
// remaining positional input paths.
func parseFlags(args []string) (cliFlags, []string, error) {
	var f cliFlags

	fs := flag.NewFlagSet("reportkit", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output file path (single input only)")
	fs.StringVarP(&f.format, "format", "f", "", "export format: pdf, pptx, html (default pdf)")
	fs.StringVarP(&f.title, "title", "t", "", "document title (default: the markdown H1)")
	fs.StringVar(&f.date, "date", "", `generation date label: "auto", "auto:FORMAT", or literal text`)
	fs.StringVarP(&f.config, "config", "c", "", "config file path or name")
	styleHelp := fmt.Sprintf("HTML style: built-in (%s), CSS file path, or raw CSS",
		strings.Join(assets.StyleNames(), ", "))
	fs.StringVarP(&f.style, "style", "s", "", styleHelp)
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent exports for batch input (default: CPU-based)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose diagnostics")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args[1:]); err != nil {
		return f, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage prints the main usage message.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: reportkit [flags] <input.md> [more.md ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converts markdown reports to paginated PDF, PPTX, or standalone HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
