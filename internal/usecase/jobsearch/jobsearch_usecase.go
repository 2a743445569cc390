package jobsearch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ableworks/ableworks-backend/internal/domain"
	"github.com/ableworks/ableworks-backend/internal/fallback"
	"github.com/ableworks/ableworks-backend/internal/infrastructure/gemini"
	"github.com/ableworks/ableworks-backend/internal/prompt"
)

// Open-ended listing generation runs hotter than the structured calls.
const searchTemperature = 0.8

// Generator is the slice of the Gemini client this usecase needs.
type Generator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

// Request is the job-search endpoint's body.
type Request struct {
	Location          string   `json:"location" binding:"required"`
	Interests         []string `json:"interests"`
	Disabilities      []string `json:"disabilities"`
	MedicalConditions []string `json:"medicalConditions"`
}

// Result is the job-search endpoint's response body. FallbackUsed records
// which path served the listings; it is informational, never an error.
type Result struct {
	Jobs         []domain.JobListing `json:"jobs"`
	FallbackUsed bool                `json:"fallbackUsed"`
}

type UseCase struct {
	gen      Generator
	resolver *fallback.Resolver
}

func NewUseCase(gen Generator, resolver *fallback.Resolver) *UseCase {
	return &UseCase{gen: gen, resolver: resolver}
}

// Search produces job listings for the profile subset in req. Upstream
// failure of any kind resolves to fallback listings; the method never
// returns an error because the resolver never fails.
func (uc *UseCase) Search(ctx context.Context, req Request) Result {
	if uc.gen == nil {
		return Result{Jobs: uc.resolver.Listings(req.Location), FallbackUsed: true}
	}

	jobs, err := uc.generate(ctx, req)
	if err != nil {
		slog.Warn("job search falling back", "location", req.Location, "error", err)
		return Result{Jobs: uc.resolver.Listings(req.Location), FallbackUsed: true}
	}
	if len(jobs) == 0 {
		slog.Warn("job search returned zero usable listings, falling back", "location", req.Location)
		return Result{Jobs: uc.resolver.Listings(req.Location), FallbackUsed: true}
	}
	return Result{Jobs: jobs}
}

func (uc *UseCase) generate(ctx context.Context, req Request) ([]domain.JobListing, error) {
	text, err := uc.gen.GenerateText(ctx, prompt.JobSearch(prompt.JobSearchInput{
		Location:          req.Location,
		Interests:         req.Interests,
		Disabilities:      req.Disabilities,
		MedicalConditions: req.MedicalConditions,
	}), searchTemperature)
	if err != nil {
		return nil, err
	}

	jobs, err := parseListings(text)
	if err != nil {
		return nil, err
	}

	for i := range jobs {
		backfill(&jobs[i], i, req.Location)
	}
	return jobs, nil
}

// parseListings accepts both of the shapes models actually emit: a bare
// array, or an object wrapping it under "jobs".
func parseListings(text string) ([]domain.JobListing, error) {
	var arr []domain.JobListing
	if err := gemini.ExtractJSON(text, &arr); err == nil {
		return arr, nil
	}

	var wrapped struct {
		Jobs []domain.JobListing `json:"jobs"`
	}
	if err := gemini.ExtractJSON(text, &wrapped); err != nil {
		return nil, fmt.Errorf("parse listings: %w", err)
	}
	return wrapped.Jobs, nil
}

// backfill guarantees a structurally complete record regardless of what the
// model omitted.
func backfill(job *domain.JobListing, idx int, location string) {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Title == "" {
		job.Title = fmt.Sprintf("Job Opportunity %d", idx+1)
	}
	if job.Employer == "" {
		job.Employer = "Local Employer"
	}
	if job.Description == "" {
		job.Description = "Details available on request."
	}
	if job.Pay == "" {
		job.Pay = "Pay discussed at interview"
	}
	if job.Location == "" {
		job.Location = location
	}
}
