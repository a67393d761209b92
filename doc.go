// Package reportkit converts Markdown reports into paginated PDF, PPTX,
// and standalone HTML documents.
//
// # Quick Start
//
// Create an exporter and export markdown in one call:
//
//	exp, err := reportkit.NewExporter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := exp.Export(ctx, reportkit.Input{
//	    Markdown: "# Weekly Report\n\n## Summary\nAll green.",
//	    Title:    "Weekly Report",
//	    Format:   reportkit.FormatPDF,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("report.pdf", result.Data, 0644)
//
// # Export Pipeline
//
// PDF and PPTX exports follow these stages:
//
//  1. Sectionizing: the markdown body is split into titled sections at
//     level-2 headings (Sectionize).
//  2. Pagination: sections are laid out onto fixed-size pages with a
//     running vertical cursor, word-wrapping body text through a
//     backend-supplied TextWrapper (Paginate).
//  3. Rendering: the page list is flattened into binary output, one
//     document page or slide per paginated page.
//
// HTML export skips pagination and renders the markdown directly via
// Goldmark (GFM, footnotes, syntax highlighting).
//
// # Configuration
//
// Page geometry is an explicit Layout value, never ambient state:
//
//	exp, err := reportkit.NewExporter(
//	    reportkit.WithLayout(reportkit.DefaultLayout()),
//	    reportkit.WithStyle("default"),
//	)
//
// # Parallel Processing
//
// For batch export, use ExporterPool to bound concurrent exports:
//
//	pool := reportkit.NewExporterPool(4)
//
//	exp, err := pool.Acquire()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Release(exp)
//	result, err := exp.Export(ctx, input)
//
// Independent exports share no mutable state; the only shared resource is
// the text-measurement wrapper, which is safe for concurrent use.
package reportkit
