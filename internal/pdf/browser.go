package pdf

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultBrowserTimeout bounds a single browser print.
const DefaultBrowserTimeout = 60 * time.Second

// A4 paper size in inches.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// BrowserRenderer prints the standalone HTML page with headless Chrome.
// Requires Chrome/Chromium to be installed on the system.
type BrowserRenderer struct {
	// ExecPath overrides the Chrome binary; empty uses the default lookup.
	ExecPath string
	Timeout  time.Duration
	Verbose  bool
}

// Render implements Engine.
func (b *BrowserRenderer) Render(ctx context.Context, doc *types.Document, tpl types.Template, theme types.Theme) ([]byte, error) {
	html, err := rendering.RenderPage(doc, tpl, theme)
	if err != nil {
		return nil, err
	}
	return b.Print(ctx, html)
}

// Print loads a complete HTML page in headless Chrome and prints it to an
// A4 PDF with backgrounds.
func (b *BrowserRenderer) Print(ctx context.Context, html string) ([]byte, error) {
	timeout := b.Timeout
	if timeout <= 0 {
		timeout = DefaultBrowserTimeout
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if b.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "resume-print-")
	if err != nil {
		return nil, fmt.Errorf("failed to create print directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pagePath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(pagePath, []byte(html), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write print page: %w", err)
	}

	if b.Verbose {
		log.Printf("[BROWSER] Printing %s", pagePath)
	}

	var out []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+pagePath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			out, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser printing failed: %w", err)
	}

	if b.Verbose {
		log.Printf("[BROWSER] Printed PDF: %d bytes", len(out))
	}
	return out, nil
}
