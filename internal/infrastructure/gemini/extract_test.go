package gemini

import (
	"errors"
	"testing"
)

func TestExtractJSON_Direct(t *testing.T) {
	var out []map[string]string
	if err := ExtractJSON(`[{"id":"x"}]`, &out); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0]["id"] != "x" {
		t.Fatalf("got %v", out)
	}
}

func TestExtractJSON_FencedCodeBlock(t *testing.T) {
	var out []map[string]string
	if err := ExtractJSON("```json\n[{\"id\":\"x\"}]\n```", &out); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0]["id"] != "x" {
		t.Fatalf("got %v", out)
	}
}

func TestExtractJSON_FenceWithoutLanguageTag(t *testing.T) {
	var out map[string]string
	if err := ExtractJSON("```\n{\"a\":\"b\"}\n```", &out); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out["a"] != "b" {
		t.Fatalf("got %v", out)
	}
}

func TestExtractJSON_BracketSliceAroundProse(t *testing.T) {
	text := "Sure! Here are your results: {\"a\": \"b\"} Hope this helps."
	var out map[string]string
	if err := ExtractJSON(text, &out); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out["a"] != "b" {
		t.Fatalf("got %v", out)
	}
}

func TestExtractJSON_ArraySliceAroundProse(t *testing.T) {
	text := "Results below.\n[{\"id\":\"1\"},{\"id\":\"2\"}]\nDone."
	var out []map[string]string
	if err := ExtractJSON(text, &out); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %v", out)
	}
}

func TestExtractJSON_AllStrategiesFail(t *testing.T) {
	var out map[string]string
	err := ExtractJSON("no json here at all", &out)
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestExtractJSON_StrategyOrder(t *testing.T) {
	// When the whole text is valid JSON the direct strategy must win even
	// though the payload contains something fence-like.
	var out map[string]string
	if err := ExtractJSON("{\"a\":\"one ``` two\"}", &out); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out["a"] != "one ``` two" {
		t.Fatalf("got %v", out)
	}
}
