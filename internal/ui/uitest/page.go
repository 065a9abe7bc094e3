// Package uitest provides an in-memory ui.Driver for tests.
package uitest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"dashcheck/internal/ui"
)

// Element is one rendered node: its text content and attributes.
type Element struct {
	Text  string
	Attrs map[string]string
}

// Page is a scripted page. Locators resolve to element lists; clicks and
// cohort creation run the registered handlers, which may mutate the page.
type Page struct {
	mu       sync.Mutex
	elements map[ui.Locator][]Element
	onClick  map[ui.Locator]func(p *Page)
	errs     map[ui.Locator]error
	calls    []string

	// OnCreateCohort runs when CreateCohort is called.
	OnCreateCohort func(p *Page, name string)
	// CreateCohortErr, when set, is returned by CreateCohort before
	// OnCreateCohort runs.
	CreateCohortErr error
	// WaitTimeout bounds the WaitAttribute, WaitAttributesContain and
	// WaitCount polls. Zero checks once.
	WaitTimeout time.Duration
}

const pollInterval = 5 * time.Millisecond

var (
	_ ui.Driver        = (*Page)(nil)
	_ ui.CohortCreator = (*Page)(nil)
)

// NewPage returns an empty page.
func NewPage() *Page {
	return &Page{
		elements: make(map[ui.Locator][]Element),
		onClick:  make(map[ui.Locator]func(*Page)),
		errs:     make(map[ui.Locator]error),
	}
}

// Set replaces the elements matched by loc.
func (p *Page) Set(loc ui.Locator, els ...Element) *Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.elements[loc] = els
	return p
}

// SetTexts replaces the elements matched by loc with text-only elements.
func (p *Page) SetTexts(loc ui.Locator, texts ...string) *Page {
	els := make([]Element, len(texts))
	for i, t := range texts {
		els[i] = Element{Text: t}
	}
	return p.Set(loc, els...)
}

// Show makes loc match a single empty element.
func (p *Page) Show(loc ui.Locator) *Page {
	return p.Set(loc, Element{})
}

// Remove makes loc match nothing.
func (p *Page) Remove(loc ui.Locator) *Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.elements, loc)
	return p
}

// SetAttr sets an attribute on every element matched by loc.
func (p *Page) SetAttr(loc ui.Locator, name, value string) *Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	els := p.elements[loc]
	for i := range els {
		attrs := make(map[string]string, len(els[i].Attrs)+1)
		for k, v := range els[i].Attrs {
			attrs[k] = v
		}
		attrs[name] = value
		els[i].Attrs = attrs
	}
	return p
}

// DelAttr removes an attribute from every element matched by loc.
func (p *Page) DelAttr(loc ui.Locator, name string) *Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.elements[loc] {
		delete(p.elements[loc][i].Attrs, name)
	}
	return p
}

// OnClick registers a handler for clicks on loc.
func (p *Page) OnClick(loc ui.Locator, fn func(p *Page)) *Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onClick[loc] = fn
	return p
}

// Fail makes every query on loc return err.
func (p *Page) Fail(loc ui.Locator, err error) *Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs[loc] = err
	return p
}

// Calls returns the driver calls made so far, as "Method locator".
func (p *Page) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func (p *Page) lookup(method string, loc ui.Locator) ([]Element, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, method+" "+string(loc))
	if err := p.errs[loc]; err != nil {
		return nil, err
	}
	return append([]Element(nil), p.elements[loc]...), nil
}

func (p *Page) Exists(_ context.Context, loc ui.Locator) (bool, error) {
	els, err := p.lookup("Exists", loc)
	return len(els) > 0, err
}

func (p *Page) WaitExists(_ context.Context, loc ui.Locator) error {
	els, err := p.lookup("WaitExists", loc)
	if err != nil {
		return err
	}
	if len(els) == 0 {
		return fmt.Errorf("%w: %s", ui.ErrNotFound, loc)
	}
	return nil
}

func (p *Page) WaitNotExists(_ context.Context, loc ui.Locator) error {
	els, err := p.lookup("WaitNotExists", loc)
	if err != nil {
		return err
	}
	if len(els) > 0 {
		return fmt.Errorf("%w: %s", ui.ErrStillPresent, loc)
	}
	return nil
}

func (p *Page) Text(_ context.Context, loc ui.Locator) (string, error) {
	els, err := p.lookup("Text", loc)
	if err != nil {
		return "", err
	}
	if len(els) == 0 {
		return "", fmt.Errorf("%w: %s", ui.ErrNotFound, loc)
	}
	return els[0].Text, nil
}

func (p *Page) Texts(_ context.Context, loc ui.Locator) ([]string, error) {
	els, err := p.lookup("Texts", loc)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(els))
	for i, e := range els {
		out[i] = e.Text
	}
	return out, nil
}

func (p *Page) Attribute(_ context.Context, loc ui.Locator, name string) (string, bool, error) {
	els, err := p.lookup("Attribute", loc)
	if err != nil {
		return "", false, err
	}
	if len(els) == 0 {
		return "", false, fmt.Errorf("%w: %s", ui.ErrNotFound, loc)
	}
	v, ok := els[0].Attrs[name]
	return v, ok, nil
}

func (p *Page) Attributes(_ context.Context, loc ui.Locator, name string) ([]string, error) {
	els, err := p.lookup("Attributes", loc)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(els))
	for i, e := range els {
		out[i] = e.Attrs[name]
	}
	return out, nil
}

func (p *Page) Click(_ context.Context, loc ui.Locator) error {
	els, err := p.lookup("Click", loc)
	if err != nil {
		return err
	}
	if len(els) == 0 {
		return fmt.Errorf("%w: %s", ui.ErrNotFound, loc)
	}
	p.mu.Lock()
	fn := p.onClick[loc]
	p.mu.Unlock()
	if fn != nil {
		fn(p)
	}
	return nil
}

// poll records one call and evaluates cond under the page lock until it
// holds or WaitTimeout elapses.
func (p *Page) poll(ctx context.Context, method string, loc ui.Locator, cond func([]Element) bool) error {
	p.mu.Lock()
	p.calls = append(p.calls, method+" "+string(loc))
	timeout := p.WaitTimeout
	p.mu.Unlock()

	deadline := time.Now().Add(timeout)
	for {
		p.mu.Lock()
		err := p.errs[loc]
		ok := err == nil && cond(p.elements[loc])
		p.mu.Unlock()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if !time.Now().Before(deadline) {
			return fmt.Errorf("%w: %s %s", ui.ErrUnmet, method, loc)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

func (p *Page) WaitAttribute(ctx context.Context, loc ui.Locator, name, value string) error {
	return p.poll(ctx, "WaitAttribute", loc, func(els []Element) bool {
		if len(els) == 0 {
			return false
		}
		v, ok := els[0].Attrs[name]
		return ok && v == value
	})
}

func (p *Page) WaitAttributesContain(ctx context.Context, loc ui.Locator, name, substr string, contains bool) error {
	return p.poll(ctx, "WaitAttributesContain", loc, func(els []Element) bool {
		if contains && len(els) == 0 {
			return false
		}
		for _, e := range els {
			if strings.Contains(e.Attrs[name], substr) != contains {
				return false
			}
		}
		return true
	})
}

func (p *Page) WaitCount(ctx context.Context, loc ui.Locator, n int) error {
	return p.poll(ctx, "WaitCount", loc, func(els []Element) bool {
		return len(els) == n
	})
}

func (p *Page) CreateCohort(_ context.Context, name string) error {
	p.mu.Lock()
	p.calls = append(p.calls, "CreateCohort "+name)
	fn := p.OnCreateCohort
	cerr := p.CreateCohortErr
	p.mu.Unlock()
	if cerr != nil {
		return cerr
	}
	if fn != nil {
		fn(p, name)
	}
	return nil
}
