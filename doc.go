// Package site2pdf merges a documentation site's independently rendered HTML
// pages into one linear, self-contained HTML document suitable for PDF
// conversion, driven by a hierarchical YAML table of contents.
//
// # Quick Start
//
// Create a service, build a table of contents, and close when done:
//
//	svc := site2pdf.New()
//	defer svc.Close()
//
//	result, err := svc.Build(ctx, site2pdf.Input{
//	    TOCPath: "docs/toc.yml",
//	    Site: &site2pdf.Site{
//	        SourceDir: "docs",
//	        RenderDir: "public",
//	        BaseURL:   "https://docs.example.com",
//	    },
//	    PDF: true,
//	})
//
// The result names the merged PDF-source HTML artifact (result.HTMLPath) and,
// when Input.PDF is set, the rendered PDF (result.PDFPath).
//
// # Merge Pipeline
//
// Building a table of contents follows these stages:
//
//  1. TOC loading: the YAML tree is parsed and flattened depth-first
//     pre-order; flattened position is final page order.
//  2. Page rendering: markdown sources without a rendered page are converted
//     via Goldmark (GFM, syntax highlighting).
//  3. Page transformation (concurrent): each page's HTML is rewritten so ids
//     and same-site links stay correct once many pages share one DOM. Every
//     page gets a deterministic identifier derived from its canonical URL;
//     links are retargeted to "#<identifier><fragment>" anchors.
//  4. Concatenation: fragments are written in flattened order regardless of
//     completion order, producing <toc>.pdf.html.
//  5. Optional PDF rendering via headless Chrome (go-rod).
//
// Pages referenced by the TOC but absent on disk are skipped; a read failure
// on an existing page fails that TOC's build.
package site2pdf
