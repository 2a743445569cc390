package simplify

import (
	"context"
	"log/slog"

	"github.com/ableworks/ableworks-backend/internal/domain"
	"github.com/ableworks/ableworks-backend/internal/fallback"
	"github.com/ableworks/ableworks-backend/internal/infrastructure/gemini"
	"github.com/ableworks/ableworks-backend/internal/prompt"
)

// Structured rewriting runs cool so the output stays close to the schema.
const simplifyTemperature = 0.3

type Generator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

// AudienceProfile narrows the rewrite to the reader's situation. Every
// field is optional.
type AudienceProfile struct {
	Disabilities      []string `json:"disabilities"`
	MedicalConditions []string `json:"medicalConditions"`
	ReadingLevel      string   `json:"readingLevel"`
	PreferredTone     string   `json:"preferredTone" binding:"omitempty,tone"`
}

// Request is the simplify endpoint's body.
type Request struct {
	JobTitle        string           `json:"jobTitle"`
	JobDescription  string           `json:"jobDescription" binding:"required"`
	AudienceProfile *AudienceProfile `json:"audienceProfile"`
}

type UseCase struct {
	gen      Generator
	resolver *fallback.Resolver
}

func NewUseCase(gen Generator, resolver *fallback.Resolver) *UseCase {
	return &UseCase{gen: gen, resolver: resolver}
}

// Simplify rewrites one listing's description in plain language. Any
// upstream failure resolves to the static fallback record.
func (uc *UseCase) Simplify(ctx context.Context, req Request) domain.SimplifiedJob {
	if uc.gen == nil {
		return uc.resolver.SimplifiedJob(req.JobTitle)
	}

	in := prompt.SimplifyInput{
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
	}
	if req.AudienceProfile != nil {
		in.Disabilities = req.AudienceProfile.Disabilities
		in.MedicalConditions = req.AudienceProfile.MedicalConditions
		in.ReadingLevel = req.AudienceProfile.ReadingLevel
	}

	text, err := uc.gen.GenerateText(ctx, prompt.Simplify(in), simplifyTemperature)
	if err != nil {
		slog.Warn("simplify falling back", "jobTitle", req.JobTitle, "error", err)
		return uc.resolver.SimplifiedJob(req.JobTitle)
	}

	var out domain.SimplifiedJob
	if err := gemini.ExtractJSON(text, &out); err != nil {
		slog.Warn("simplify completion unparsable, falling back", "jobTitle", req.JobTitle, "error", err)
		return uc.resolver.SimplifiedJob(req.JobTitle)
	}
	if out.SimplifiedDescription == "" {
		slog.Warn("simplify completion empty, falling back", "jobTitle", req.JobTitle)
		return uc.resolver.SimplifiedJob(req.JobTitle)
	}

	backfill(&out, req)
	return out
}

func backfill(out *domain.SimplifiedJob, req Request) {
	if out.JobTitle == "" {
		if req.JobTitle != "" {
			out.JobTitle = req.JobTitle
		} else {
			out.JobTitle = "This Job"
		}
	}
	if out.KeyQualifications == nil {
		out.KeyQualifications = []string{}
	}
	if out.Accommodations == nil {
		out.Accommodations = []string{}
	}
	if out.TrainingSuggestions == nil {
		out.TrainingSuggestions = []string{}
	}
	if _, err := domain.ParseTone(string(out.Tone)); err != nil {
		out.Tone = domain.ToneNeutral
	}
	out.Provider = domain.ProviderGenerated
}
