package verify

import (
	"errors"
	"fmt"

	"dashcheck/internal/ui"
)

// ErrMissingFixture is returned when a scenario needs fixture data the
// descriptor does not carry.
var ErrMissingFixture = errors.New("verify: missing fixture data")

// AssertionMismatch is the failure of one verification step: the rendered
// page disagrees with the expectation, or the element could not be resolved.
type AssertionMismatch struct {
	Step     string
	Locator  ui.Locator
	Expected string
	Actual   string
	Err      error
}

func (m *AssertionMismatch) Error() string {
	msg := fmt.Sprintf("verify %s", m.Step)
	if m.Locator != "" {
		msg += fmt.Sprintf(" [%s]", m.Locator)
	}
	msg += fmt.Sprintf(": expected %s, got %s", m.Expected, m.Actual)
	if m.Err != nil {
		msg += ": " + m.Err.Error()
	}
	return msg
}

func (m *AssertionMismatch) Unwrap() error { return m.Err }

func mismatch(step string, loc ui.Locator, expected, actual string, err error) *AssertionMismatch {
	return &AssertionMismatch{Step: step, Locator: loc, Expected: expected, Actual: actual, Err: err}
}
