package jobsearch

import (
	"context"
	"errors"
	"testing"

	"github.com/ableworks/ableworks-backend/internal/catalog"
	"github.com/ableworks/ableworks-backend/internal/fallback"
)

type stubGenerator struct {
	text string
	err  error
}

func (s stubGenerator) GenerateText(context.Context, string, float32) (string, error) {
	return s.text, s.err
}

func newTestUseCase(gen Generator) *UseCase {
	cat := catalog.New()
	return NewUseCase(gen, fallback.NewResolver(cat, 1))
}

func TestSearch_NoGeneratorUsesFallback(t *testing.T) {
	result := newTestUseCase(nil).Search(context.Background(), Request{Location: "Austin, TX"})
	if !result.FallbackUsed {
		t.Fatal("expected fallbackUsed")
	}
	if len(result.Jobs) != 5 {
		t.Fatalf("expected 5 fallback listings, got %d", len(result.Jobs))
	}
	for _, j := range result.Jobs {
		if j.Location != "Austin, TX" {
			t.Fatalf("location = %q", j.Location)
		}
	}
}

func TestSearch_GeneratorErrorUsesFallback(t *testing.T) {
	uc := newTestUseCase(stubGenerator{err: errors.New("network down")})
	result := uc.Search(context.Background(), Request{Location: "Austin, TX"})
	if !result.FallbackUsed || len(result.Jobs) != 5 {
		t.Fatalf("expected 5 fallback listings, got %d (fallbackUsed=%v)", len(result.Jobs), result.FallbackUsed)
	}
}

func TestSearch_EmptyCompletionUsesFallback(t *testing.T) {
	uc := newTestUseCase(stubGenerator{text: "[]"})
	result := uc.Search(context.Background(), Request{Location: "Austin, TX"})
	if !result.FallbackUsed || len(result.Jobs) != 5 {
		t.Fatalf("expected fallback on zero usable records, got %+v", result)
	}
}

func TestSearch_ParsesBareArray(t *testing.T) {
	uc := newTestUseCase(stubGenerator{
		text: `[{"id":"a","title":"Stocker","employer":"Market","description":"d","pay":"$15/hr","location":"Austin, TX"}]`,
	})
	result := uc.Search(context.Background(), Request{Location: "Austin, TX"})
	if result.FallbackUsed {
		t.Fatal("fallback should not run when the model answered")
	}
	if len(result.Jobs) != 1 || result.Jobs[0].Title != "Stocker" {
		t.Fatalf("got %+v", result.Jobs)
	}
}

func TestSearch_ParsesWrappedObject(t *testing.T) {
	uc := newTestUseCase(stubGenerator{
		text: `{"jobs":[{"id":"a","title":"Stocker"}]}`,
	})
	result := uc.Search(context.Background(), Request{Location: "Austin, TX"})
	if result.FallbackUsed || len(result.Jobs) != 1 {
		t.Fatalf("got %+v", result)
	}
}

func TestSearch_BackfillsMissingFields(t *testing.T) {
	uc := newTestUseCase(stubGenerator{text: `[{"title":"Stocker"}]`})
	result := uc.Search(context.Background(), Request{Location: "Austin, TX"})
	if len(result.Jobs) != 1 {
		t.Fatalf("got %+v", result)
	}
	j := result.Jobs[0]
	if j.ID == "" {
		t.Error("id not backfilled")
	}
	if j.Location != "Austin, TX" {
		t.Errorf("location not backfilled, got %q", j.Location)
	}
	if j.Employer == "" || j.Description == "" || j.Pay == "" {
		t.Errorf("fields not backfilled: %+v", j)
	}
}

func TestSearch_FencedCompletionStillParses(t *testing.T) {
	uc := newTestUseCase(stubGenerator{text: "```json\n[{\"id\":\"x\",\"title\":\"T\"}]\n```"})
	result := uc.Search(context.Background(), Request{Location: "Austin, TX"})
	if result.FallbackUsed || len(result.Jobs) != 1 || result.Jobs[0].ID != "x" {
		t.Fatalf("got %+v", result)
	}
}
