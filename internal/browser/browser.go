// Package browser drives a headless Chrome through chromedp and exposes it
// as a ui.Driver.
package browser

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chromedp/chromedp"

	"dashcheck/internal/logging"
)

// Options configures the browser process.
type Options struct {
	Headless bool
	Width    int
	Height   int
	// ExecPath overrides the Chrome binary; empty uses chromedp's lookup.
	ExecPath string
}

// Browser owns one Chrome process. Tabs opened from it share the process but
// not their page state.
type Browser struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	rootCtx     context.Context
	rootCancel  context.CancelFunc
	log         *slog.Logger
}

// Launch starts Chrome. Close releases it.
func Launch(ctx context.Context, opts Options) (*Browser, error) {
	if opts.Width == 0 || opts.Height == 0 {
		opts.Width, opts.Height = 1920, 1080
	}
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(opts.Width, opts.Height),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	log := logging.New("browser")
	b := &Browser{log: log}
	b.allocCtx, b.allocCancel = chromedp.NewExecAllocator(ctx, allocOpts...)
	b.rootCtx, b.rootCancel = chromedp.NewContext(b.allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...))
		}),
	)
	// The first Run on the root context starts the browser process.
	if err := chromedp.Run(b.rootCtx); err != nil {
		b.Close()
		return nil, fmt.Errorf("start browser: %w", err)
	}
	log.Info("browser started", "headless", opts.Headless)
	return b, nil
}

// NewTab opens a tab, navigates it to url and waits for the body to be
// ready. The returned context carries the tab; pass it to every Driver call.
func (b *Browser) NewTab(url string) (context.Context, context.CancelFunc, error) {
	tabCtx, cancel := chromedp.NewContext(b.rootCtx)
	b.log.Debug("navigating", "url", url)
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("navigate %s: %w", url, err)
	}
	return tabCtx, cancel, nil
}

// Close stops the browser process.
func (b *Browser) Close() {
	if b.rootCancel != nil {
		b.rootCancel()
	}
	if b.allocCancel != nil {
		b.allocCancel()
	}
}
