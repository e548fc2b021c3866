// Package export turns a resume site into a downloadable PDF.
package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches (210mm x 297mm).
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// Renderer produces PDF bytes from standalone HTML.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromeRenderer prints through a headless Chrome instance.
type ChromeRenderer struct {
	// ChromePath overrides the browser binary; empty uses chromedp's lookup.
	ChromePath string
}

// NewChromeRenderer constructs a ChromeRenderer.
func NewChromeRenderer(chromePath string) *ChromeRenderer {
	return &ChromeRenderer{ChromePath: chromePath}
}

// RenderHTMLToPDF prints the HTML to an A4 PDF with backgrounds.
func (r *ChromeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, 60*time.Second)
	defer cancelRun()

	// The generated site is self-contained, so a temp file is all Chrome
	// needs to load it.
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}

var _ Renderer = (*ChromeRenderer)(nil)
