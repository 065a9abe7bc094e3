package expect

import "dashcheck/internal/dataset"

// ComposeActiveCohorts returns the cohorts the page shows: the initial
// cohorts in order, followed by the new cohort when includeNew is set and the
// fixture defines one. A missing new cohort is omitted, not an error.
func ComposeActiveCohorts(d *dataset.Descriptor, includeNew bool) []dataset.Cohort {
	initial := d.ModelOverview.InitialCohorts
	out := make([]dataset.Cohort, 0, len(initial)+1)
	out = append(out, initial...)
	if includeNew && d.ModelOverview.NewCohort != nil {
		out = append(out, *d.ModelOverview.NewCohort)
	}
	return out
}

// CohortNames returns the names of cohorts in order.
func CohortNames(cohorts []dataset.Cohort) []string {
	names := make([]string, len(cohorts))
	for i, c := range cohorts {
		names[i] = c.Name
	}
	return names
}
