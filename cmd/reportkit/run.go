package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/SumanthCsy/reportkit"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrNotMarkdown     = errors.New("input is not a markdown file")
	ErrOutputWithBatch = errors.New("--output requires exactly one input")
	ErrReadMarkdown    = errors.New("failed to read markdown file")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrExporterInit    = errors.New("failed to initialize exporter")
)

// markdownExtensions lists accepted input file extensions.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// fileToExport pairs an input markdown path with its export destination.
type fileToExport struct {
	InputPath  string
	OutputPath string
}

// exportOutcome holds the result of a single export.
type exportOutcome struct {
	InputPath  string
	OutputPath string
	Pages      int
	Err        error
	Duration   time.Duration
}

// exportParams carries the per-run export settings shared by all files.
type exportParams struct {
	format string
	title  string
	date   string
}

// run executes the CLI: load config, plan the output paths, export every
// input through a shared exporter pool, and write the results.
func run(flags cliFlags, inputs []string, stderr io.Writer) error {
	cfg := DefaultConfig()
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	format := flags.format
	if format == "" {
		format = cfg.Format
	}
	ext, err := outputExtension(format)
	if err != nil {
		return err
	}

	files, err := planFiles(inputs, flags.output, cfg.Output.Dir, ext)
	if err != nil {
		return err
	}

	style := flags.style
	if style == "" {
		style = cfg.Style
	}
	date := flags.date
	if date == "" {
		date = cfg.Date
	}

	opts := []reportkit.Option{
		reportkit.WithLayout(cfg.Layout.apply(reportkit.DefaultLayout())),
	}
	if style != "" {
		opts = append(opts, reportkit.WithStyle(style))
	}

	poolSize := resolvePoolSize(flags.workers, len(files))
	if flags.verbose {
		fmt.Fprintf(stderr, "Pool size: %d\n", poolSize)
	}
	pool := reportkit.NewExporterPool(poolSize, opts...)
	defer pool.Close()

	params := &exportParams{format: format, title: flags.title, date: date}
	outcomes := exportBatch(context.Background(), pool, files, params)

	var errs []error
	for _, oc := range outcomes {
		if oc.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", oc.InputPath, oc.Err))
			continue
		}
		if !flags.quiet {
			if oc.Pages > 0 {
				fmt.Fprintf(stderr, "%s -> %s (%d pages, %s)\n",
					oc.InputPath, oc.OutputPath, oc.Pages, oc.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(stderr, "%s -> %s (%s)\n",
					oc.InputPath, oc.OutputPath, oc.Duration.Round(time.Millisecond))
			}
		}
	}
	return errors.Join(errs...)
}

// outputExtension maps a format string to the output file extension.
func outputExtension(format string) (string, error) {
	switch strings.ToLower(format) {
	case "", reportkit.FormatPDF:
		return ".pdf", nil
	case reportkit.FormatPPTX:
		return ".pptx", nil
	case reportkit.FormatHTML:
		return ".html", nil
	default:
		return "", fmt.Errorf("%w: %q (must be pdf, pptx, or html)", reportkit.ErrInvalidFormat, format)
	}
}

// planFiles validates the inputs and derives an output path for each.
// A single input honors the explicit output path; batch inputs land next
// to their source, or in outputDir when configured.
func planFiles(inputs []string, output, outputDir, ext string) ([]fileToExport, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}
	if output != "" && len(inputs) > 1 {
		return nil, ErrOutputWithBatch
	}

	files := make([]fileToExport, 0, len(inputs))
	for _, in := range inputs {
		if !markdownExtensions[strings.ToLower(filepath.Ext(in))] {
			return nil, fmt.Errorf("%w: %s", ErrNotMarkdown, in)
		}
		out := output
		if out == "" {
			base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + ext
			dir := outputDir
			if dir == "" {
				dir = filepath.Dir(in)
			}
			out = filepath.Join(dir, base)
		}
		files = append(files, fileToExport{InputPath: in, OutputPath: out})
	}
	return files, nil
}

// resolvePoolSize picks the exporter pool size from the --workers flag,
// falling back to a CPU-based default, never exceeding the file count.
func resolvePoolSize(workers, fileCount int) int {
	size := workers
	if size <= 0 {
		size = reportkit.DefaultPoolSize()
	}
	if fileCount > 0 && size > fileCount {
		size = fileCount
	}
	return size
}

// exportBatch processes files concurrently using the exporter pool.
func exportBatch(ctx context.Context, pool *reportkit.ExporterPool, files []fileToExport, params *exportParams) []exportOutcome {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	outcomes := make([]exportOutcome, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			exp, err := pool.Acquire()
			if err != nil {
				// Exporter creation failed, mark remaining jobs as failed.
				for idx := range jobs {
					outcomes[idx] = exportOutcome{
						InputPath: files[idx].InputPath,
						Err:       fmt.Errorf("%w: %v", ErrExporterInit, err),
					}
				}
				return
			}
			defer pool.Release(exp)

			for idx := range jobs {
				if ctx.Err() != nil {
					outcomes[idx] = exportOutcome{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				outcomes[idx] = exportFile(ctx, exp, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return outcomes
}

// exportFile processes a single file and returns the outcome.
func exportFile(ctx context.Context, exp *reportkit.Exporter, f fileToExport, params *exportParams) exportOutcome {
	start := time.Now()
	outcome := exportOutcome{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- user-provided path
	if err != nil {
		outcome.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		outcome.Duration = time.Since(start)
		return outcome
	}

	result, err := exp.Export(ctx, reportkit.Input{
		Markdown: string(content),
		Title:    params.title,
		Date:     params.date,
		Format:   params.format,
	})
	if err != nil {
		outcome.Err = err
		outcome.Duration = time.Since(start)
		return outcome
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		outcome.Err = fmt.Errorf("creating output directory: %w", err)
		outcome.Duration = time.Since(start)
		return outcome
	}
	if err := os.WriteFile(f.OutputPath, result.Data, filePermissions); err != nil {
		outcome.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		outcome.Duration = time.Since(start)
		return outcome
	}

	outcome.Pages = result.Pages
	outcome.Duration = time.Since(start)
	return outcome
}
