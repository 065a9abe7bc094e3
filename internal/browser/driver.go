package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"

	"dashcheck/internal/ui"
)

// Driver implements ui.Driver and ui.CohortCreator with chromedp. Every call
// expects a chromedp tab context and waits at most Timeout.
type Driver struct {
	Selectors ui.Selectors
	Timeout   time.Duration
}

var (
	_ ui.Driver        = (*Driver)(nil)
	_ ui.CohortCreator = (*Driver)(nil)
)

// NewDriver returns a Driver using sel and the given per-call timeout.
func NewDriver(sel ui.Selectors, timeout time.Duration) *Driver {
	return &Driver{Selectors: sel, Timeout: timeout}
}

func (d *Driver) run(ctx context.Context, actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

// timedOut maps a deadline on the per-call timeout to sentinel.
func timedOut(err error, sentinel error, loc ui.Locator) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", sentinel, loc)
	}
	return fmt.Errorf("%s: %w", loc, err)
}

func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func (d *Driver) Exists(ctx context.Context, loc ui.Locator) (bool, error) {
	sel, err := d.Selectors.Selector(loc)
	if err != nil {
		return false, err
	}
	var ok bool
	js := fmt.Sprintf(`document.querySelector(%s) !== null`, jsString(sel))
	if err := d.run(ctx, chromedp.Evaluate(js, &ok)); err != nil {
		return false, fmt.Errorf("%s: %w", loc, err)
	}
	return ok, nil
}

func (d *Driver) WaitExists(ctx context.Context, loc ui.Locator) error {
	sel, err := d.Selectors.Selector(loc)
	if err != nil {
		return err
	}
	if err := d.run(ctx, chromedp.WaitReady(sel, chromedp.ByQuery)); err != nil {
		return timedOut(err, ui.ErrNotFound, loc)
	}
	return nil
}

func (d *Driver) WaitNotExists(ctx context.Context, loc ui.Locator) error {
	sel, err := d.Selectors.Selector(loc)
	if err != nil {
		return err
	}
	if err := d.run(ctx, chromedp.WaitNotPresent(sel, chromedp.ByQuery)); err != nil {
		return timedOut(err, ui.ErrStillPresent, loc)
	}
	return nil
}

func (d *Driver) Text(ctx context.Context, loc ui.Locator) (string, error) {
	sel, err := d.Selectors.Selector(loc)
	if err != nil {
		return "", err
	}
	var text string
	if err := d.run(ctx, chromedp.TextContent(sel, &text, chromedp.ByQuery)); err != nil {
		return "", timedOut(err, ui.ErrNotFound, loc)
	}
	return text, nil
}

// Texts waits for at least one match, then reads every match's textContent.
func (d *Driver) Texts(ctx context.Context, loc ui.Locator) ([]string, error) {
	sel, err := d.Selectors.Selector(loc)
	if err != nil {
		return nil, err
	}
	var texts []string
	js := fmt.Sprintf(`Array.from(document.querySelectorAll(%s), e => e.textContent ?? "")`, jsString(sel))
	if err := d.run(ctx,
		chromedp.WaitReady(sel, chromedp.ByQuery),
		chromedp.Evaluate(js, &texts),
	); err != nil {
		return nil, timedOut(err, ui.ErrNotFound, loc)
	}
	return texts, nil
}

func (d *Driver) Attribute(ctx context.Context, loc ui.Locator, name string) (string, bool, error) {
	sel, err := d.Selectors.Selector(loc)
	if err != nil {
		return "", false, err
	}
	var (
		value string
		ok    bool
	)
	if err := d.run(ctx, chromedp.AttributeValue(sel, name, &value, &ok, chromedp.ByQuery)); err != nil {
		return "", false, timedOut(err, ui.ErrNotFound, loc)
	}
	return value, ok, nil
}

// Attributes reads name from every node matching loc. It does not wait: no
// matches yields an empty slice.
func (d *Driver) Attributes(ctx context.Context, loc ui.Locator, name string) ([]string, error) {
	sel, err := d.Selectors.Selector(loc)
	if err != nil {
		return nil, err
	}
	var nodes []*cdp.Node
	if err := d.run(ctx, chromedp.Nodes(sel, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0))); err != nil {
		return nil, fmt.Errorf("%s: %w", loc, err)
	}
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.AttributeValue(name)
	}
	return out, nil
}

const pollInterval = 50 * time.Millisecond

// pollFunction polls fn in the page with args until it returns true. The
// chromedp polling timeout and the per-call deadline both map to ui.ErrUnmet.
func (d *Driver) pollFunction(ctx context.Context, loc ui.Locator, fn string, args ...any) error {
	err := d.run(ctx, chromedp.PollFunction(fn, nil,
		chromedp.WithPollingArgs(args...),
		chromedp.WithPollingInterval(pollInterval),
		chromedp.WithPollingTimeout(d.Timeout),
	))
	if errors.Is(err, chromedp.ErrPollingTimeout) {
		return fmt.Errorf("%w: %s", ui.ErrUnmet, loc)
	}
	if err != nil {
		return timedOut(err, ui.ErrUnmet, loc)
	}
	return nil
}

const (
	attributeEqualsJS = `(sel, name, value) => {
	const e = document.querySelector(sel);
	return e !== null && e.getAttribute(name) === value;
}`
	attributesContainJS = `(sel, name, sub, want) => {
	const els = Array.from(document.querySelectorAll(sel));
	if (want && els.length === 0) return false;
	return els.every(e => (e.getAttribute(name) ?? "").includes(sub) === want);
}`
	countJS = `(sel, n) => document.querySelectorAll(sel).length === n`
)

func (d *Driver) WaitAttribute(ctx context.Context, loc ui.Locator, name, value string) error {
	sel, err := d.Selectors.Selector(loc)
	if err != nil {
		return err
	}
	return d.pollFunction(ctx, loc, attributeEqualsJS, sel, name, value)
}

func (d *Driver) WaitAttributesContain(ctx context.Context, loc ui.Locator, name, substr string, contains bool) error {
	sel, err := d.Selectors.Selector(loc)
	if err != nil {
		return err
	}
	return d.pollFunction(ctx, loc, attributesContainJS, sel, name, substr, contains)
}

func (d *Driver) WaitCount(ctx context.Context, loc ui.Locator, n int) error {
	sel, err := d.Selectors.Selector(loc)
	if err != nil {
		return err
	}
	return d.pollFunction(ctx, loc, countJS, sel, n)
}

func (d *Driver) Click(ctx context.Context, loc ui.Locator) error {
	sel, err := d.Selectors.Selector(loc)
	if err != nil {
		return err
	}
	if err := d.run(ctx, chromedp.Click(sel, chromedp.ByQuery)); err != nil {
		return timedOut(err, ui.ErrNotFound, loc)
	}
	return nil
}

// CreateCohort opens the cohort editor, names the cohort and saves it. The
// cohort keeps the editor's default filters.
func (d *Driver) CreateCohort(ctx context.Context, name string) error {
	sels := make([]string, 0, 3)
	for _, loc := range []ui.Locator{ui.CreateCohortButton, ui.CohortNameInput, ui.SaveCohortButton} {
		sel, err := d.Selectors.Selector(loc)
		if err != nil {
			return err
		}
		sels = append(sels, sel)
	}
	err := d.run(ctx,
		chromedp.Click(sels[0], chromedp.ByQuery),
		chromedp.WaitVisible(sels[1], chromedp.ByQuery),
		chromedp.SetValue(sels[1], "", chromedp.ByQuery),
		chromedp.SendKeys(sels[1], name, chromedp.ByQuery),
		chromedp.Click(sels[2], chromedp.ByQuery),
		chromedp.WaitNotPresent(sels[1], chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("create cohort %q: %w", name, err)
	}
	return nil
}
