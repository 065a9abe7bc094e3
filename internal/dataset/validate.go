package dataset

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every descriptor validation failure.
var ErrInvalid = errors.New("dataset: invalid descriptor")

// Validate checks the flag exclusivity the task-type cascade assumes and the
// cohort structure the model-overview page needs. Every problem found is
// joined into one error that wraps ErrInvalid.
func (d *Descriptor) Validate() error {
	var problems []error

	if d.IsRegression && (d.IsImageClassification || d.IsMultiLabel || d.IsObjectDetection || d.IsMulticlass || d.IsBinary) {
		problems = append(problems, errors.New("isRegression excludes classification flags"))
	}
	if d.IsMultiLabel && d.IsObjectDetection {
		problems = append(problems, errors.New("isMultiLabel and isObjectDetection are mutually exclusive"))
	}
	if d.IsBinary && d.IsMulticlass {
		problems = append(problems, errors.New("isBinary and isMulticlass are mutually exclusive"))
	}

	if len(d.ModelOverview.InitialCohorts) == 0 {
		problems = append(problems, errors.New("modelOverviewData.initialCohorts is empty"))
	}
	seen := make(map[string]bool)
	all := d.ModelOverview.InitialCohorts
	if d.ModelOverview.NewCohort != nil {
		all = append(all[:len(all):len(all)], *d.ModelOverview.NewCohort)
	}
	for i, c := range all {
		if c.Name == "" {
			problems = append(problems, fmt.Errorf("cohort %d has no name", i))
			continue
		}
		if seen[c.Name] {
			problems = append(problems, fmt.Errorf("duplicate cohort name %q", c.Name))
		}
		seen[c.Name] = true
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalid, d.Name, errors.Join(problems...))
}
