package verify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dashcheck/internal/expect"
	"dashcheck/internal/ui"
)

// ColorDisplay is the state of the heatmap color toggle.
type ColorDisplay bool

const (
	ColorOff ColorDisplay = false
	ColorOn  ColorDisplay = true
)

func (c ColorDisplay) String() string {
	if c {
		return "on"
	}
	return "off"
}

func (c ColorDisplay) ariaChecked() string {
	if c {
		return "true"
	}
	return "false"
}

// colorFill is the marker of a color-coded fill attribute.
const colorFill = "rgb"

// heatmapToggle asserts the toggle's presence and, when it must exist,
// exercises the On -> Off transition.
func (v *Verifier) heatmapToggle(ctx context.Context, presence expect.Presence) error {
	switch presence {
	case expect.MustNotExist:
		return v.assertAbsent(ctx, "heatmap-toggle-absent", ui.HeatmapVisualDisplayToggle)
	case expect.MustExist:
	default:
		return nil
	}

	if err := v.assertPresent(ctx, "heatmap-toggle-present", ui.HeatmapVisualDisplayToggle); err != nil {
		return err
	}
	if err := v.assertColorDisplay(ctx, ColorOn); err != nil {
		return err
	}
	if err := v.step("heatmap-toggle-click", func() error {
		if err := v.drv.Click(ctx, ui.HeatmapVisualDisplayToggle); err != nil {
			return mismatch("heatmap-toggle-click", ui.HeatmapVisualDisplayToggle, "clickable", "not clickable", err)
		}
		return nil
	}); err != nil {
		return err
	}
	return v.assertColorDisplay(ctx, ColorOff)
}

// assertColorDisplay waits for the toggle's aria-checked state and for the
// heatmap cell shapes to carry color fills exactly when the display is on.
// The page re-renders asynchronously after a click, so both checks poll
// before reading the actual values for the mismatch.
func (v *Verifier) assertColorDisplay(ctx context.Context, want ColorDisplay) error {
	step := "heatmap-color-" + want.String()
	if err := v.step(step, func() error {
		err := v.drv.WaitAttribute(ctx, ui.HeatmapVisualDisplayToggle, "aria-checked", want.ariaChecked())
		if err == nil {
			return nil
		}
		if !errors.Is(err, ui.ErrUnmet) {
			return mismatch(step, ui.HeatmapVisualDisplayToggle, "aria-checked="+want.ariaChecked(), "unreadable", err)
		}
		got, ok, rerr := v.drv.Attribute(ctx, ui.HeatmapVisualDisplayToggle, "aria-checked")
		switch {
		case rerr != nil:
			got = "unreadable"
			err = rerr
		case !ok:
			got = "aria-checked=<absent>"
		default:
			got = "aria-checked=" + got
		}
		return mismatch(step, ui.HeatmapVisualDisplayToggle, "aria-checked="+want.ariaChecked(), got, err)
	}); err != nil {
		return err
	}

	fillStep := "heatmap-fill-" + want.String()
	return v.step(fillStep, func() error {
		expected := "fill without " + colorFill
		if want == ColorOn {
			expected = "fill including " + colorFill
		}
		err := v.drv.WaitAttributesContain(ctx, ui.HeatmapCellShapes, "fill", colorFill, bool(want))
		if err == nil {
			return nil
		}
		if !errors.Is(err, ui.ErrUnmet) {
			return mismatch(fillStep, ui.HeatmapCellShapes, expected, "unreadable", err)
		}
		fills, rerr := v.drv.Attributes(ctx, ui.HeatmapCellShapes, "fill")
		if rerr != nil {
			return mismatch(fillStep, ui.HeatmapCellShapes, expected, "unreadable", rerr)
		}
		if want == ColorOn && len(fills) == 0 {
			return mismatch(fillStep, ui.HeatmapCellShapes, "colored cells", "no cells", err)
		}
		for i, fill := range fills {
			if strings.Contains(fill, colorFill) != bool(want) {
				return mismatch(fillStep, ui.HeatmapCellShapes, expected, fmt.Sprintf("cell %d fill=%q", i, fill), err)
			}
		}
		return mismatch(fillStep, ui.HeatmapCellShapes, expected, "not settled", err)
	})
}
