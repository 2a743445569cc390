package prompt

import (
	"strings"
	"testing"
)

func TestJobSearch_Deterministic(t *testing.T) {
	in := JobSearchInput{Location: "Austin, TX", Interests: []string{"animals"}}
	if JobSearch(in) != JobSearch(in) {
		t.Fatal("same input must build the same prompt")
	}
}

func TestJobSearch_OmitsAbsentAttributes(t *testing.T) {
	p := JobSearch(JobSearchInput{Location: "Austin, TX"})
	for _, label := range []string{"interests", "disabilities", "medical"} {
		if strings.Contains(strings.ToLower(p), label) {
			t.Errorf("prompt mentions %q for an empty attribute:\n%s", label, p)
		}
	}
	if !strings.Contains(p, "Austin, TX") {
		t.Error("prompt missing location")
	}
}

func TestJobSearch_DemandsBareJSON(t *testing.T) {
	p := JobSearch(JobSearchInput{Location: "Austin, TX"})
	if !strings.Contains(p, "ONLY a JSON array") {
		t.Error("prompt must demand a single JSON value with no prose")
	}
}

func TestSimplify_IncludesPresentAttributesOnly(t *testing.T) {
	p := Simplify(SimplifyInput{JobDescription: "desc"})
	if strings.Contains(p, "Job title:") {
		t.Error("empty title must not render a line")
	}
	if strings.Contains(p, "Reader disabilities") {
		t.Error("empty disabilities must not render a line")
	}

	p = Simplify(SimplifyInput{JobTitle: "Stocker", JobDescription: "desc", Disabilities: []string{"Autism spectrum"}})
	if !strings.Contains(p, "Job title: Stocker") || !strings.Contains(p, "Autism spectrum") {
		t.Errorf("prompt missing present attributes:\n%s", p)
	}
}

func TestTrainingPlan_SchemaBlock(t *testing.T) {
	p := TrainingPlan(TrainingPlanInput{JobTitle: "Stocker"})
	for _, want := range []string{`"summary"`, `"phases"`, `"successMetrics"`, `"encouragement"`, "ONLY a single JSON object"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
