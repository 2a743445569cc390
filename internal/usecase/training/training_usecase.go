package training

import (
	"context"
	"log/slog"

	"github.com/ableworks/ableworks-backend/internal/domain"
	"github.com/ableworks/ableworks-backend/internal/fallback"
	"github.com/ableworks/ableworks-backend/internal/infrastructure/gemini"
	"github.com/ableworks/ableworks-backend/internal/prompt"
)

const planTemperature = 0.3

type Generator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

// Request is the training-plan endpoint's body. At least one of JobTitle
// and CurrentSkills must be present; the handler enforces that.
type Request struct {
	JobTitle             string   `json:"jobTitle"`
	CurrentSkills        []string `json:"currentSkills"`
	Interests            []string `json:"interests"`
	Disabilities         []string `json:"disabilities"`
	MedicalConditions    []string `json:"medicalConditions"`
	LearningPreferences  []string `json:"learningPreferences"`
	TimeAvailablePerWeek string   `json:"timeAvailablePerWeek"`
	Location             string   `json:"location"`
}

// HasGoal reports whether the request names either a target job or any
// current skills to build from.
func (r Request) HasGoal() bool {
	return r.JobTitle != "" || len(r.CurrentSkills) > 0
}

type UseCase struct {
	gen      Generator
	resolver *fallback.Resolver
}

func NewUseCase(gen Generator, resolver *fallback.Resolver) *UseCase {
	return &UseCase{gen: gen, resolver: resolver}
}

// Plan produces a multi-phase training plan. Any upstream failure resolves
// to the static fallback plan.
func (uc *UseCase) Plan(ctx context.Context, req Request) domain.TrainingPlan {
	if uc.gen == nil {
		return uc.resolver.TrainingPlan(req.JobTitle)
	}

	text, err := uc.gen.GenerateText(ctx, prompt.TrainingPlan(prompt.TrainingPlanInput{
		JobTitle:             req.JobTitle,
		CurrentSkills:        req.CurrentSkills,
		Interests:            req.Interests,
		Disabilities:         req.Disabilities,
		MedicalConditions:    req.MedicalConditions,
		LearningPreferences:  req.LearningPreferences,
		TimeAvailablePerWeek: req.TimeAvailablePerWeek,
		Location:             req.Location,
	}), planTemperature)
	if err != nil {
		slog.Warn("training plan falling back", "jobTitle", req.JobTitle, "error", err)
		return uc.resolver.TrainingPlan(req.JobTitle)
	}

	var out domain.TrainingPlan
	if err := gemini.ExtractJSON(text, &out); err != nil {
		slog.Warn("training plan completion unparsable, falling back", "jobTitle", req.JobTitle, "error", err)
		return uc.resolver.TrainingPlan(req.JobTitle)
	}
	if len(out.Phases) == 0 {
		slog.Warn("training plan has no phases, falling back", "jobTitle", req.JobTitle)
		return uc.resolver.TrainingPlan(req.JobTitle)
	}

	backfill(&out, req)
	return out
}

func backfill(out *domain.TrainingPlan, req Request) {
	if out.Summary == "" {
		out.Summary = "A step-by-step plan to prepare for " + displayTitle(req) + "."
	}
	if out.Encouragement == "" {
		out.Encouragement = "Small, steady steps add up. Keep going."
	}
	if out.SuccessMetrics == nil {
		out.SuccessMetrics = []string{}
	}
	for i := range out.Phases {
		p := &out.Phases[i]
		if p.Steps == nil {
			p.Steps = []string{}
		}
		if p.Resources == nil {
			p.Resources = []domain.TrainingResource{}
		}
	}
	out.Provider = domain.ProviderGenerated
}

func displayTitle(req Request) string {
	if req.JobTitle != "" {
		return req.JobTitle
	}
	return "your next role"
}
