// Package aggregate drives one results-page load: a job search fanned out
// into per-listing simplify and training-plan calls, merged into a single
// page state that may be observed while still partial.
package aggregate

import (
	"context"
	"sync"

	"github.com/ableworks/ableworks-backend/internal/domain"
	"github.com/ableworks/ableworks-backend/internal/usecase/jobsearch"
	"github.com/ableworks/ableworks-backend/internal/usecase/simplify"
	"github.com/ableworks/ableworks-backend/internal/usecase/training"
)

// Phase is the aggregation lifecycle. Err on PageState is an overlay, not a
// phase: an error message and loaded data may coexist.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseLoading  Phase = "loading"
	PhasePartial  Phase = "partial"
	PhaseComplete Phase = "complete"
)

// JobSearcher, Simplifier and Planner are the usecase slices the
// aggregator fans out over. Each call settles on its own via generation or
// fallback; none of them can fail the aggregation.
type JobSearcher interface {
	Search(ctx context.Context, req jobsearch.Request) jobsearch.Result
}

type Simplifier interface {
	Simplify(ctx context.Context, req simplify.Request) domain.SimplifiedJob
}

type Planner interface {
	Plan(ctx context.Context, req training.Request) domain.TrainingPlan
}

// PageState is a snapshot of the results view. Simplified and Plans are
// keyed by listing id and fill in incrementally; partial snapshots are a
// valid, expected state for the page to render.
type PageState struct {
	Phase        Phase                           `json:"phase"`
	Loading      bool                            `json:"loading"`
	Jobs         []domain.JobListing             `json:"jobs"`
	Simplified   map[string]domain.SimplifiedJob `json:"simplified"`
	Plans        map[string]domain.TrainingPlan  `json:"trainingPlans"`
	FallbackUsed bool                            `json:"fallbackUsed"`
	Err          string                          `json:"error,omitempty"`
}

type Aggregator struct {
	searcher   JobSearcher
	simplifier Simplifier
	planner    Planner
}

func NewAggregator(searcher JobSearcher, simplifier Simplifier, planner Planner) *Aggregator {
	return &Aggregator{searcher: searcher, simplifier: simplifier, planner: planner}
}

// Session is one in-flight aggregation. All mutation happens under mu;
// cancelling the context passed to Run acts as the unmount guard: calls
// already in flight finish but their results are discarded.
type Session struct {
	ctx  context.Context
	done chan struct{}

	mu    sync.Mutex
	state PageState
}

// Run starts the aggregation for a decoded profile and returns immediately.
// The returned session settles once every dispatched call has, each via
// generation or fallback.
func (a *Aggregator) Run(ctx context.Context, profile *domain.Profile) *Session {
	s := &Session{
		ctx:  ctx,
		done: make(chan struct{}),
		state: PageState{
			Phase:      PhaseLoading,
			Loading:    true,
			Simplified: map[string]domain.SimplifiedJob{},
			Plans:      map[string]domain.TrainingPlan{},
		},
	}
	go a.run(s, profile)
	return s
}

func (a *Aggregator) run(s *Session, profile *domain.Profile) {
	defer close(s.done)

	result := a.searcher.Search(s.ctx, jobsearch.Request{
		Location:          profile.Location,
		Interests:         profile.Interests,
		Disabilities:      profile.Disabilities,
		MedicalConditions: profile.MedicalConditions,
	})

	s.write(func(st *PageState) {
		st.Jobs = result.Jobs
		st.FallbackUsed = result.FallbackUsed
		if len(result.Jobs) == 0 {
			// The only page-level error: nothing to enrich.
			st.Err = domain.ErrNoListings.Error()
		} else {
			st.Phase = PhasePartial
		}
	})

	var wg sync.WaitGroup
	for _, job := range result.Jobs {
		job := job
		wg.Add(2)
		go func() {
			defer wg.Done()
			simplified := a.simplifier.Simplify(s.ctx, simplify.Request{
				JobTitle:       job.Title,
				JobDescription: job.Description,
				AudienceProfile: &simplify.AudienceProfile{
					Disabilities:      profile.Disabilities,
					MedicalConditions: profile.MedicalConditions,
				},
			})
			s.write(func(st *PageState) { st.Simplified[job.ID] = simplified })
		}()
		go func() {
			defer wg.Done()
			plan := a.planner.Plan(s.ctx, training.Request{
				JobTitle:          job.Title,
				Interests:         profile.Interests,
				Disabilities:      profile.Disabilities,
				MedicalConditions: profile.MedicalConditions,
				Location:          profile.Location,
			})
			s.write(func(st *PageState) { st.Plans[job.ID] = plan })
		}()
	}
	wg.Wait()

	s.write(func(st *PageState) {
		st.Phase = PhaseComplete
		st.Loading = false
	})
}

// write applies a mutation unless the session's context is gone. A
// cancelled context suppresses all further state writes, so late
// completions from in-flight calls are discarded rather than raced.
func (s *Session) write(mutate func(*PageState)) {
	if s.ctx.Err() != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.state)
}

// Wait blocks until every dispatched call has settled or the context is
// cancelled.
func (s *Session) Wait() {
	select {
	case <-s.done:
	case <-s.ctx.Done():
	}
}

// Snapshot returns an independent copy of the current page state. Safe to
// call at any time, including mid-flight.
func (s *Session) Snapshot() PageState {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Jobs = append([]domain.JobListing(nil), s.state.Jobs...)
	snap.Simplified = make(map[string]domain.SimplifiedJob, len(s.state.Simplified))
	for k, v := range s.state.Simplified {
		snap.Simplified[k] = v
	}
	snap.Plans = make(map[string]domain.TrainingPlan, len(s.state.Plans))
	for k, v := range s.state.Plans {
		snap.Plans[k] = v
	}
	return snap
}
