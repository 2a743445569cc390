package aggregate

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/ableworks/ableworks-backend/internal/domain"
	"github.com/ableworks/ableworks-backend/internal/usecase/jobsearch"
	"github.com/ableworks/ableworks-backend/internal/usecase/simplify"
	"github.com/ableworks/ableworks-backend/internal/usecase/training"
)

type stubSearcher struct {
	jobs []domain.JobListing
}

func (s stubSearcher) Search(context.Context, jobsearch.Request) jobsearch.Result {
	return jobsearch.Result{Jobs: s.jobs, FallbackUsed: true}
}

// jittered stubs settle in arbitrary order, like real network calls.
type stubSimplifier struct{ jitter bool }

func (s stubSimplifier) Simplify(_ context.Context, req simplify.Request) domain.SimplifiedJob {
	if s.jitter {
		time.Sleep(time.Duration(rand.Intn(10)) * time.Millisecond)
	}
	return domain.SimplifiedJob{JobTitle: req.JobTitle, Provider: domain.ProviderFallback}
}

type stubPlanner struct{ jitter bool }

func (s stubPlanner) Plan(_ context.Context, req training.Request) domain.TrainingPlan {
	if s.jitter {
		time.Sleep(time.Duration(rand.Intn(10)) * time.Millisecond)
	}
	return domain.TrainingPlan{Summary: "plan for " + req.JobTitle, Provider: domain.ProviderFallback}
}

func threeListings() []domain.JobListing {
	return []domain.JobListing{
		{ID: "a", Title: "Stocker", Description: "d1"},
		{ID: "b", Title: "Sorter", Description: "d2"},
		{ID: "c", Title: "Packer", Description: "d3"},
	}
}

func TestRun_AllCallsSettle(t *testing.T) {
	agg := NewAggregator(stubSearcher{jobs: threeListings()}, stubSimplifier{jitter: true}, stubPlanner{jitter: true})

	session := agg.Run(context.Background(), &domain.Profile{Location: "Austin, TX"})
	session.Wait()

	state := session.Snapshot()
	if state.Loading {
		t.Fatal("loading must clear once every dispatched call settled")
	}
	if state.Phase != PhaseComplete {
		t.Fatalf("phase = %q, want complete", state.Phase)
	}
	if len(state.Jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(state.Jobs))
	}
	for _, j := range state.Jobs {
		if _, ok := state.Simplified[j.ID]; !ok {
			t.Errorf("listing %q missing simplified entry", j.ID)
		}
		if _, ok := state.Plans[j.ID]; !ok {
			t.Errorf("listing %q missing training plan", j.ID)
		}
	}
	if state.Err != "" {
		t.Fatalf("unexpected page error: %q", state.Err)
	}
}

func TestRun_PartialSnapshotsAreValid(t *testing.T) {
	agg := NewAggregator(stubSearcher{jobs: threeListings()}, stubSimplifier{jitter: true}, stubPlanner{jitter: true})
	session := agg.Run(context.Background(), &domain.Profile{Location: "Austin, TX"})

	// Snapshots taken mid-flight must be coherent copies; exact contents
	// depend on timing and are not asserted.
	for i := 0; i < 5; i++ {
		snap := session.Snapshot()
		if snap.Simplified == nil || snap.Plans == nil {
			t.Fatal("snapshot maps must never be nil")
		}
	}
	session.Wait()
}

func TestRun_ZeroListingsSetsPageError(t *testing.T) {
	agg := NewAggregator(stubSearcher{}, stubSimplifier{}, stubPlanner{})
	session := agg.Run(context.Background(), &domain.Profile{Location: "Nowhere"})
	session.Wait()

	state := session.Snapshot()
	if state.Err == "" {
		t.Fatal("zero listings must surface the page-level message")
	}
	if state.Loading {
		t.Fatal("loading must still clear")
	}
}

func TestRun_CancelledContextSuppressesWrites(t *testing.T) {
	block := make(chan struct{})
	searcher := blockingSearcher{jobs: threeListings(), release: block}

	ctx, cancel := context.WithCancel(context.Background())
	agg := NewAggregator(searcher, stubSimplifier{}, stubPlanner{})
	session := agg.Run(ctx, &domain.Profile{Location: "Austin, TX"})

	cancel()
	close(block)
	session.Wait()

	state := session.Snapshot()
	if len(state.Jobs) != 0 || len(state.Simplified) != 0 {
		t.Fatalf("writes after cancellation must be discarded, got %+v", state)
	}
}

type blockingSearcher struct {
	jobs    []domain.JobListing
	release chan struct{}
}

func (s blockingSearcher) Search(context.Context, jobsearch.Request) jobsearch.Result {
	<-s.release
	return jobsearch.Result{Jobs: s.jobs}
}
