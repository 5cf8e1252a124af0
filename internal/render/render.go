// Package render wraps headless-browser page rendering for script-driven
// sites. The website adapter treats any render failure as a permanent
// demotion event for the run.
package render

import (
	"context"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rotisserie/eris"
)

// Renderer renders a URL to its post-JavaScript HTML.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// ChromeRenderer renders pages with a headless Chrome via chromedp.
type ChromeRenderer struct {
	timeout   time.Duration
	userAgent string
}

// NewChromeRenderer creates a ChromeRenderer with the given page timeout.
func NewChromeRenderer(timeout time.Duration, userAgent string) *ChromeRenderer {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &ChromeRenderer{timeout: timeout, userAgent: userAgent}
}

// Available reports whether a Chrome/Chromium binary is on PATH. When it
// is not, the website adapter uses the plain fetch from the start.
func Available() bool {
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "chrome"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// Render navigates to the URL, waits for dynamic content, and returns the
// rendered HTML.
func (r *ChromeRenderer) Render(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.userAgent != "" {
		opts = append(opts, chromedp.UserAgent(r.userAgent))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, r.timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to settle.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", eris.Wrapf(err, "render: %s", url)
	}

	return html, nil
}
