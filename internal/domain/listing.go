package domain

import "fmt"

// Provider records which path produced a generated record. It is an
// observability field, never shown to the end user as an error.
type Provider string

const (
	ProviderGenerated Provider = "generated"
	ProviderFallback  Provider = "fallback"
)

// ParseProvider validates a provider string.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderGenerated, ProviderFallback:
		return Provider(s), nil
	}
	return "", fmt.Errorf("unknown provider %q", s)
}

// Tone is the voice a simplified description is written in.
type Tone string

const (
	ToneEncouraging Tone = "encouraging"
	ToneNeutral     Tone = "neutral"
	ToneDirect      Tone = "direct"
)

// ParseTone validates a tone string.
func ParseTone(s string) (Tone, error) {
	switch Tone(s) {
	case ToneEncouraging, ToneNeutral, ToneDirect:
		return Tone(s), nil
	}
	return "", fmt.Errorf("unknown tone %q", s)
}

// JobListing is one job opportunity. Immutable once produced; its id is
// unique within a single result set and keys the per-listing enrichments.
type JobListing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Employer    string `json:"employer"`
	Description string `json:"description"`
	Pay         string `json:"pay"`
	Location    string `json:"location"`
}

// SimplifiedJob is the plain-language rewrite of a listing's description.
type SimplifiedJob struct {
	JobTitle              string   `json:"jobTitle"`
	SimplifiedDescription string   `json:"simplifiedDescription"`
	KeyQualifications     []string `json:"keyQualifications"`
	Accommodations        []string `json:"accommodations"`
	TrainingSuggestions   []string `json:"trainingSuggestions"`
	Tone                  Tone     `json:"tone"`
	Provider              Provider `json:"provider"`
}

// TrainingResource is one learning resource inside a training phase.
type TrainingResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Cost  string `json:"cost,omitempty"`
}

// TrainingPhase is one stage of a training plan.
type TrainingPhase struct {
	Title     string             `json:"title"`
	Duration  string             `json:"duration"`
	Focus     string             `json:"focus"`
	Steps     []string           `json:"steps"`
	Resources []TrainingResource `json:"resources"`
}

// TrainingPlan is the multi-phase preparation plan for one listing.
type TrainingPlan struct {
	Summary        string          `json:"summary"`
	Phases         []TrainingPhase `json:"phases"`
	SuccessMetrics []string        `json:"successMetrics"`
	Encouragement  string          `json:"encouragement"`
	Provider       Provider        `json:"provider"`
}
