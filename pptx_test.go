package reportkit

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
)

// readZipParts returns the pptx package contents keyed by part name.
func readZipParts(t *testing.T, data []byte) map[string]string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}

	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

func TestPPTXRenderer_PackageStructure(t *testing.T) {
	t.Parallel()

	layout := testLayout()
	doc := testDocument(
		Section{Title: "A", Content: contentLines(13)},
		Section{Title: "B", Content: contentLines(13)},
	)
	pages, err := Paginate(doc, layout, identityWrapper{})
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}

	data, err := newPPTXRenderer().RenderPages(context.Background(), doc, pages, layout)
	if err != nil {
		t.Fatalf("RenderPages() error = %v", err)
	}
	parts := readZipParts(t, data)

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
	}
	for _, name := range required {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing package part %s", name)
		}
	}

	// One slide (plus rels) per paginated page.
	for i := 1; i <= len(pages); i++ {
		slide := fmt.Sprintf("ppt/slides/slide%d.xml", i)
		if _, ok := parts[slide]; !ok {
			t.Errorf("missing %s", slide)
		}
		if _, ok := parts[fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i)]; !ok {
			t.Errorf("missing rels for %s", slide)
		}
	}
	if _, ok := parts[fmt.Sprintf("ppt/slides/slide%d.xml", len(pages)+1)]; ok {
		t.Errorf("found more slides than the %d paginated pages", len(pages))
	}

	// Every slide must be declared in the content types and presentation.
	for i := 1; i <= len(pages); i++ {
		decl := fmt.Sprintf("/ppt/slides/slide%d.xml", i)
		if !strings.Contains(parts["[Content_Types].xml"], decl) {
			t.Errorf("content types missing %s", decl)
		}
	}
	if got := strings.Count(parts["ppt/presentation.xml"], "<p:sldId "); got != len(pages) {
		t.Errorf("presentation lists %d slides, want %d", got, len(pages))
	}
}

func TestPPTXRenderer_SlideContent(t *testing.T) {
	t.Parallel()

	layout := testLayout()
	doc := testDocument(Section{Title: "Results & Caveats", Content: []string{"all <green>"}})
	pages, err := Paginate(doc, layout, identityWrapper{})
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}

	data, err := newPPTXRenderer().RenderPages(context.Background(), doc, pages, layout)
	if err != nil {
		t.Fatalf("RenderPages() error = %v", err)
	}
	parts := readZipParts(t, data)
	slide := parts["ppt/slides/slide1.xml"]

	if !strings.Contains(slide, "Results &amp; Caveats") {
		t.Error("heading text missing or not XML-escaped")
	}
	if !strings.Contains(slide, "all &lt;green&gt;") {
		t.Error("body text missing or not XML-escaped")
	}
	if !strings.Contains(slide, "Page 1 of 1") {
		t.Error("footer missing from slide")
	}
	if !strings.Contains(slide, `b="1"`) {
		t.Error("heading run is not bold")
	}
}

func TestPPTXRenderer_SlideSizeFromLayout(t *testing.T) {
	t.Parallel()

	layout := testLayout()
	doc := testDocument()
	pages, err := Paginate(doc, layout, identityWrapper{})
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}

	data, err := newPPTXRenderer().RenderPages(context.Background(), doc, pages, layout)
	if err != nil {
		t.Fatalf("RenderPages() error = %v", err)
	}
	parts := readZipParts(t, data)

	wantCX := fmt.Sprintf(`cx="%d"`, int64(layout.PageWidth*emuPerMM))
	wantCY := fmt.Sprintf(`cy="%d"`, int64(layout.PageHeight*emuPerMM))
	pres := parts["ppt/presentation.xml"]
	if !strings.Contains(pres, wantCX) || !strings.Contains(pres, wantCY) {
		t.Errorf("presentation.xml slide size does not match layout: %s", pres)
	}
}
