// Package resumedoc turns résumé text into PDF, DOCX and HTML documents with
// a two-column layout, and always returns a document even when the text
// cannot be laid out.
//
// # Quick Start
//
// Create a renderer, convert text, and close when done:
//
//	r, err := resumedoc.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	result, err := r.Convert(ctx, resumedoc.Input{
//	    Text:    "NAME\nJane Doe\n\nCONTACT\njane@example.com\n...",
//	    Formats: []resumedoc.Format{resumedoc.FormatPDF, resumedoc.FormatDOCX},
//	})
//	if err != nil {
//	    log.Fatal(err) // empty text or invalid settings only
//	}
//	for _, doc := range result.Documents {
//	    os.WriteFile("resume"+doc.Format.Ext(), doc.Bytes, 0o644)
//	}
//
// # Conversion Pipeline
//
// Each requested format goes through these stages:
//
//  1. Section parsing: header lines select canonical sections; missing
//     required sections get placeholders and warnings
//  2. Formatting: each section becomes styled blocks, split into a sidebar
//     (contact, skills) and a main column
//  3. Rendering: the fpdf canvas, the WordprocessingML writer or the html
//     template produce the payload, which is then validated
//  4. Fallback: on failure the raw text is rendered under a notice in one
//     column; if that fails too, a static error document is returned
//
// Document.Tier tells which stage produced each document.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := resumedoc.NewRenderer(
//	    resumedoc.WithStyle("compact"),
//	    resumedoc.WithPageSettings(&resumedoc.PageSettings{Size: "letter", Orientation: "portrait", Margin: 12, SidebarWidth: 55}),
//	    resumedoc.WithFooter(&resumedoc.Footer{ShowPageNumber: true, Date: "auto:month"}),
//	    resumedoc.WithEngine(resumedoc.EngineChrome),
//	)
//
// Input.Page and Input.Footer override the renderer defaults per call.
//
// # Parallel Processing
//
// For batch conversion, use RendererPool:
//
//	pool := resumedoc.NewRendererPool(resumedoc.ResolvePoolSize(0))
//	defer pool.Close()
//
//	r, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(r)
//	result, err := r.Convert(ctx, input)
//
// # Custom Assets
//
// WithAssetPath points at a directory laid out like the embedded assets:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── resume.html
//
// Assets missing there fall back to the embedded ones.
//
// # Chrome Engine
//
// The default canvas engine needs no external process. EngineChrome prints
// the html output in headless Chrome instead. Chrome is downloaded on first
// use unless ROD_BROWSER_BIN points at an installed binary.
package resumedoc
