package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestList(t *testing.T) {
	want := []string{
		"adult-census-income",
		"boston-housing",
		"fridge-image-classification",
		"fridge-multilabel",
		"fridge-object-detection",
		"iris",
	}
	if diff := cmp.Diff(want, List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_AllFixturesValid(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			d, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if d.Name != name {
				t.Errorf("Name = %q, want %q", d.Name, name)
			}
			if d.ModelOverview.NewCohort == nil {
				t.Errorf("fixture %q has no newCohort", name)
			}
		})
	}
}

func TestLoad_Binary(t *testing.T) {
	d, err := Load("adult-census-income")
	if err != nil {
		t.Fatal(err)
	}
	if d.TaskType() != TaskBinary {
		t.Errorf("TaskType = %q, want %q", d.TaskType(), TaskBinary)
	}
	if got := len(d.ModelOverview.InitialCohorts); got != 2 {
		t.Fatalf("initial cohorts = %d, want 2", got)
	}
	first := d.ModelOverview.InitialCohorts[0]
	if first.SampleSize != "500" || first.Metric(Accuracy) != "0.856" {
		t.Errorf("first cohort: got %+v", first)
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("no-such-dataset")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestParse_DetectJSON(t *testing.T) {
	data := []byte(`{"name":"x","isRegression":true,"modelOverviewData":{"initialCohorts":[{"name":"All","sampleSize":"3","metrics":{"meanPrediction":"1.5"}}]}}`)
	d, err := Parse(data, "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !d.IsRegression || d.ModelOverview.InitialCohorts[0].Metric(MeanPrediction) != "1.5" {
		t.Errorf("got %+v", d)
	}
	if d.ModelOverview.NewCohort != nil {
		t.Errorf("NewCohort = %+v, want nil", d.ModelOverview.NewCohort)
	}
}

func TestParse_DetectYAML(t *testing.T) {
	data := []byte("isMultiLabel: true\nmodelOverviewData:\n  initialCohorts:\n    - name: All\n      sampleSize: \"7\"\n      metrics:\n        hammingScore: \"0.9\"\n")
	d, err := Parse(data, "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.TaskType() != TaskMultiLabel {
		t.Errorf("TaskType = %q", d.TaskType())
	}
	if d.ModelOverview.InitialCohorts[0].Metric(HammingScore) != "0.9" {
		t.Errorf("got %+v", d.ModelOverview.InitialCohorts[0])
	}
}

func TestLoadFromPath_NameFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom-set.yml")
	body := "isBinary: true\nmodelOverviewData:\n  initialCohorts:\n    - name: All\n      sampleSize: \"1\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if d.Name != "custom-set" {
		t.Errorf("Name = %q, want custom-set", d.Name)
	}
}

func TestResolve_FallsBackToEmbedded(t *testing.T) {
	d, err := Resolve("iris")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.TaskType() != TaskMulticlass {
		t.Errorf("TaskType = %q", d.TaskType())
	}
}
