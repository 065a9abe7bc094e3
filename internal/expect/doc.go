// Package expect derives what the model-overview page must show from a
// dataset descriptor alone: the metric columns and their order, the active
// cohorts, the flattened heatmap cell values, the default chart and which
// optional elements must or must not be present.
//
// Every function here is pure. Comparing against a live page is the job of
// package verify.
package expect
