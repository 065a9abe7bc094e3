// Package mcp exposes expectation resolution and dashboard verification as
// MCP tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"dashcheck/internal/dataset"
	"dashcheck/internal/expect"
	"dashcheck/internal/logging"
	"dashcheck/internal/verify"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrBusy is returned when a verify_datasets call arrives while another
// suite is still running.
var ErrBusy = errors.New("a verification suite is already running")

// Server wraps the MCP SDK server.
type Server struct {
	MCPServer *sdkmcp.Server

	// Open prepares browser sessions for verify_datasets. With a nil Open
	// the tool reports an error.
	Open     verify.Opener
	Verify   verify.Config
	Parallel int

	mu      sync.Mutex
	running bool
}

// NewServer creates an MCP server with the dataset and verification tools.
func NewServer(version string) *Server {
	s := &Server{Parallel: 1}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "dashcheck", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_datasets",
		Description: "List the bundled dataset fixtures with their task type and cohort names.",
	}, s.handleListDatasets)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "resolve_expectation",
		Description: "Compute the expected model-overview state (metric order, heatmap cells, default chart, element presence) for a dataset.",
	}, s.handleResolveExpectation)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "verify_datasets",
		Description: "Open the dashboard for each dataset and verify its dataset cohorts view. Returns one result per dataset.",
	}, s.handleVerifyDatasets)
}

// --- Tool input/output types ---

type listDatasetsInput struct{}

type datasetSummary struct {
	Name           string   `json:"name"`
	Task           string   `json:"task"`
	Vision         bool     `json:"vision,omitempty"`
	Cohorts        []string `json:"cohorts"`
	NewCohort      string   `json:"new_cohort,omitempty"`
	MissingMetrics []string `json:"missing_metrics,omitempty"`
}

type listDatasetsOutput struct {
	Datasets []datasetSummary `json:"datasets"`
}

type resolveExpectationInput struct {
	Dataset          string `json:"dataset" jsonschema:"fixture name or path to a descriptor file"`
	IncludeNewCohort bool   `json:"include_new_cohort,omitempty" jsonschema:"expect the fixture's new cohort to be present"`
	Notebook         bool   `json:"notebook,omitempty" jsonschema:"resolve for notebook mode instead of interactive"`
	Vision           bool   `json:"vision,omitempty" jsonschema:"force vision mode"`
}

type resolveExpectationOutput struct {
	Dataset      string            `json:"dataset"`
	Task         string            `json:"task"`
	MetricOrder  []string          `json:"metric_order"`
	Cohorts      []string          `json:"cohorts"`
	Content      []string          `json:"content"`
	CellCount    int               `json:"cell_count"`
	DefaultChart string            `json:"default_chart,omitempty"`
	Presence     map[string]string `json:"presence"`
}

type verifyDatasetsInput struct {
	Datasets      []string `json:"datasets" jsonschema:"fixture names or descriptor paths to verify"`
	NewCohortFlow bool     `json:"new_cohort_flow,omitempty" jsonschema:"run the create-new-cohort scenario instead of a single pass"`
}

type verifyResult struct {
	Dataset    string `json:"dataset"`
	Passed     bool   `json:"passed"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

type verifyDatasetsOutput struct {
	Passed  int            `json:"passed"`
	Failed  int            `json:"failed"`
	Results []verifyResult `json:"results"`
}

// --- Tool handlers ---

func (s *Server) handleListDatasets(_ context.Context, _ *sdkmcp.CallToolRequest, _ listDatasetsInput) (*sdkmcp.CallToolResult, listDatasetsOutput, error) {
	out := listDatasetsOutput{Datasets: []datasetSummary{}}
	for _, name := range dataset.List() {
		d, err := dataset.Load(name)
		if err != nil {
			return nil, listDatasetsOutput{}, fmt.Errorf("load %s: %w", name, err)
		}
		sum := datasetSummary{
			Name:    d.Name,
			Task:    string(d.TaskType()),
			Vision:  d.IsVision,
			Cohorts: expect.CohortNames(d.ModelOverview.InitialCohorts),
		}
		if nc := d.ModelOverview.NewCohort; nc != nil {
			sum.NewCohort = nc.Name
		}
		for cohort, keys := range expect.MissingMetrics(d) {
			for _, k := range keys {
				sum.MissingMetrics = append(sum.MissingMetrics, cohort+"/"+string(k))
			}
		}
		slices.Sort(sum.MissingMetrics)
		out.Datasets = append(out.Datasets, sum)
	}
	return nil, out, nil
}

func (s *Server) handleResolveExpectation(_ context.Context, _ *sdkmcp.CallToolRequest, input resolveExpectationInput) (*sdkmcp.CallToolResult, resolveExpectationOutput, error) {
	d, err := dataset.Resolve(input.Dataset)
	if err != nil {
		return nil, resolveExpectationOutput{}, err
	}
	if err := d.Validate(); err != nil {
		return nil, resolveExpectationOutput{}, err
	}
	e := expect.Resolve(d, expect.Mode{
		Notebook:         input.Notebook,
		Vision:           input.Vision || d.IsVision,
		IncludeNewCohort: input.IncludeNewCohort,
	})
	return nil, toOutput(e), nil
}

func toOutput(e expect.Expectation) resolveExpectationOutput {
	out := resolveExpectationOutput{
		Dataset:      e.Dataset,
		Task:         string(e.Task),
		Cohorts:      expect.CohortNames(e.Cohorts),
		MetricOrder:  make([]string, 0, len(e.MetricOrder)),
		Content:      e.Content,
		CellCount:    e.CellCount,
		DefaultChart: string(e.DefaultChart),
		Presence:     make(map[string]string, len(e.Presence)),
	}
	for _, k := range e.MetricOrder {
		out.MetricOrder = append(out.MetricOrder, string(k))
	}
	for loc, p := range e.Presence {
		out.Presence[string(loc)] = p.String()
	}
	return out
}

func (s *Server) handleVerifyDatasets(ctx context.Context, _ *sdkmcp.CallToolRequest, input verifyDatasetsInput) (*sdkmcp.CallToolResult, verifyDatasetsOutput, error) {
	if s.Open == nil {
		return nil, verifyDatasetsOutput{}, errors.New("verify_datasets: no browser configured")
	}
	if len(input.Datasets) == 0 {
		return nil, verifyDatasetsOutput{}, errors.New("verify_datasets: no datasets given")
	}

	cases := make([]verify.Case, 0, len(input.Datasets))
	for _, ref := range input.Datasets {
		d, err := dataset.Resolve(ref)
		if err != nil {
			return nil, verifyDatasetsOutput{}, err
		}
		if err := d.Validate(); err != nil {
			return nil, verifyDatasetsOutput{}, err
		}
		cases = append(cases, verify.Case{Descriptor: d, NewCohortFlow: input.NewCohortFlow})
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, verifyDatasetsOutput{}, ErrBusy
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	logger := logging.New("mcp")
	logger.Info("verify suite started", "datasets", len(cases), "parallel", s.Parallel)

	var out verifyDatasetsOutput
	for _, r := range verify.RunSuite(ctx, s.Open, s.Verify, cases, s.Parallel) {
		vr := verifyResult{Dataset: r.Dataset, Passed: r.Err == nil, DurationMS: r.Duration.Milliseconds()}
		if r.Err != nil {
			vr.Error = r.Err.Error()
			out.Failed++
		} else {
			out.Passed++
		}
		out.Results = append(out.Results, vr)
	}
	logger.Info("verify suite finished", "passed", out.Passed, "failed", out.Failed)
	return nil, out, nil
}
