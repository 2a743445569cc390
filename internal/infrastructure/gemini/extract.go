package gemini

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when none of the extraction strategies found a
// parseable JSON payload in the completion text.
var ErrNoJSON = errors.New("gemini: no JSON payload in completion")

// extractStrategy carves a candidate JSON slice out of completion text.
// Strategies are tried strictly in order; each either yields a candidate or
// explicitly declines.
type extractStrategy struct {
	name string
	fn   func(string) (string, bool)
}

var extractStrategies = []extractStrategy{
	{name: "direct", fn: directJSON},
	{name: "fenced-block", fn: fencedBlock},
	{name: "bracket-slice", fn: bracketSlice},
}

// ExtractJSON parses the model's completion text into v, tolerating prose
// or code fences around the JSON payload. The whole text is tried first,
// then the contents of a fenced code block, then the slice between the
// first opening bracket and the last matching closing bracket.
func ExtractJSON(text string, v any) error {
	for _, s := range extractStrategies {
		candidate, ok := s.fn(text)
		if !ok || !json.Valid([]byte(candidate)) {
			continue
		}
		return json.Unmarshal([]byte(candidate), v)
	}
	return ErrNoJSON
}

func directJSON(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

// fencedBlock returns the body of the first ``` fence, skipping an optional
// language tag on the opening line.
func fencedBlock(text string) (string, bool) {
	start := strings.Index(text, "```")
	if start < 0 {
		return "", false
	}
	body := text[start+3:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(body[:nl])
		if firstLine == "" || isFenceTag(firstLine) {
			body = body[nl+1:]
		}
	}
	end := strings.Index(body, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(body[:end]), true
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// bracketSlice cuts from the first opening bracket or brace to the last
// closing one of the same kind.
func bracketSlice(text string) (string, bool) {
	objStart := strings.IndexByte(text, '{')
	arrStart := strings.IndexByte(text, '[')

	start, closing := objStart, byte('}')
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		start, closing = arrStart, ']'
	}
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(text, closing)
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}
