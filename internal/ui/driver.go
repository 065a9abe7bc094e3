package ui

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when an element does not appear before the
	// driver's own timeout.
	ErrNotFound = errors.New("ui: element not found")

	// ErrStillPresent is returned when an element does not disappear before
	// the driver's own timeout.
	ErrStillPresent = errors.New("ui: element still present")

	// ErrUnmet is returned when a waited-for condition does not hold before
	// the driver's own timeout.
	ErrUnmet = errors.New("ui: condition not met")
)

// Driver is the element-query capability the verifier runs against. Waiting
// and retrying are the driver's concern; every call returns once the query
// has resolved or the driver has given up.
type Driver interface {
	// Exists reports whether loc matches at least one element right now.
	Exists(ctx context.Context, loc Locator) (bool, error)
	// WaitExists blocks until loc matches an element; ErrNotFound on timeout.
	WaitExists(ctx context.Context, loc Locator) error
	// WaitNotExists blocks until loc matches nothing; ErrStillPresent on timeout.
	WaitNotExists(ctx context.Context, loc Locator) error
	// Text returns the text content of the first element matching loc.
	Text(ctx context.Context, loc Locator) (string, error)
	// Texts returns the text content of every element matching loc, in document order.
	Texts(ctx context.Context, loc Locator) ([]string, error)
	// Attribute returns the named attribute of the first element matching loc.
	// ok is false when the attribute is absent.
	Attribute(ctx context.Context, loc Locator, name string) (value string, ok bool, err error)
	// Attributes returns the named attribute of every element matching loc.
	// Absent attributes are reported as "".
	Attributes(ctx context.Context, loc Locator, name string) ([]string, error)
	// Click clicks the first element matching loc.
	Click(ctx context.Context, loc Locator) error

	// WaitAttribute blocks until the first element matching loc has the
	// named attribute set to value; ErrUnmet on timeout.
	WaitAttribute(ctx context.Context, loc Locator, name, value string) error
	// WaitAttributesContain blocks until every element matching loc has the
	// named attribute containing substr (contains) or none has (!contains).
	// With contains set, at least one element must match. ErrUnmet on timeout.
	WaitAttributesContain(ctx context.Context, loc Locator, name, substr string, contains bool) error
	// WaitCount blocks until loc matches exactly n elements; ErrUnmet on timeout.
	WaitCount(ctx context.Context, loc Locator, n int) error
}

// CohortCreator creates a cohort in the live dashboard. After it returns,
// subsequent driver queries observe the new cohort.
type CohortCreator interface {
	CreateCohort(ctx context.Context, name string) error
}
