package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultMarkerWait bounds how long rendered retrieval waits for the content
// marker to appear after navigation.
const DefaultMarkerWait = 10 * time.Second

// PageRenderer captures fully rendered markup from pages that build their
// listings client-side. Adapter tests substitute a canned implementation.
type PageRenderer interface {
	HTML(ctx context.Context, url, marker string) (string, error)
}

// Renderer is the rendered retrieval strategy: an isolated headless browser
// session per call, torn down on every path. It fails when navigation fails
// or the content marker never appears within the wait bound.
type Renderer struct {
	markerWait time.Duration
}

// NewRenderer creates a Renderer. A non-positive markerWait selects the
// default bound.
func NewRenderer(markerWait time.Duration) *Renderer {
	if markerWait <= 0 {
		markerWait = DefaultMarkerWait
	}
	return &Renderer{markerWait: markerWait}
}

// HTML navigates a fresh headless session to url, waits for the marker
// selector to become visible, and returns the rendered document markup.
// The session is closed before returning regardless of outcome.
func (r *Renderer) HTML(ctx context.Context, url, marker string) (string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	waitCtx, cancelWait := context.WithTimeout(browserCtx, r.markerWait)
	defer cancelWait()

	var html string
	err := chromedp.Run(waitCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(marker, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", url, err)
	}
	return html, nil
}
