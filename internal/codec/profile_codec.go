// Package codec serializes a profile into the URL-safe transport token the
// results page carries, and decodes such tokens back. Decoding is lossy in
// bytes but not in meaning: decode(encode(p)) reproduces every field's
// semantic content.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/ableworks/ableworks-backend/internal/domain"
)

// Encode flattens the profile into a string-keyed map, JSON-stringifies the
// multi-value fields inside it, then JSON-encodes the whole map, base64s it
// and percent-encodes the result for use as a single query value. Empty
// fields are still written (empty string or "[]"), never omitted.
func Encode(p *domain.Profile) (string, error) {
	if p == nil {
		return "", fmt.Errorf("encode: nil profile")
	}

	flat := map[string]string{
		"name":     p.Name,
		"gender":   p.Gender,
		"homeless": p.Homeless,
		"location": p.Location,
	}
	for key, values := range map[string][]string{
		"race":              p.Race,
		"interests":         p.Interests,
		"disabilities":      p.Disabilities,
		"medicalConditions": p.MedicalConditions,
	} {
		enc, err := encodeList(values)
		if err != nil {
			return "", fmt.Errorf("encode %s: %w", key, err)
		}
		flat[key] = enc
	}

	raw, err := json.Marshal(flat)
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}
	return url.QueryEscape(base64.StdEncoding.EncodeToString(raw)), nil
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Decode reverses Encode. It never returns an error to the caller: any
// failed stage is logged and yields nil, which the consuming view treats as
// "no profile available". Multi-value fields tolerate three shapes, tried
// in order: an already-structured JSON array, a string holding a JSON
// array, and a plain comma-separated string. The token may have been
// produced by either the structured submission path or a legacy plain-text
// path, so all three must be accepted.
func Decode(token string) *domain.Profile {
	if token == "" {
		slog.Debug("profile decode: empty token")
		return nil
	}

	raw, err := decodeToken(token)
	if err != nil {
		slog.Warn("profile decode: token unreadable", "error", err)
		return nil
	}

	var flat map[string]any
	if err := json.Unmarshal(raw, &flat); err != nil {
		slog.Warn("profile decode: payload is not a JSON object", "error", err)
		return nil
	}

	return &domain.Profile{
		Name:              stringField(flat, "name"),
		Gender:            stringField(flat, "gender"),
		Homeless:          stringField(flat, "homeless"),
		Location:          stringField(flat, "location"),
		Race:              listField(flat, "race"),
		Interests:         listField(flat, "interests"),
		Disabilities:      listField(flat, "disabilities"),
		MedicalConditions: listField(flat, "medicalConditions"),
	}
}

// decodeToken percent-decodes and base64-decodes. The token may arrive
// still percent-escaped (taken straight from a URL) or already unescaped
// (an HTTP framework decodes query values before we see them); unescaping
// an already-unescaped base64 string corrupts its plus signs, so both forms
// are tried.
func decodeToken(token string) ([]byte, error) {
	candidates := []string{token}
	if unescaped, err := url.QueryUnescape(token); err == nil && unescaped != token {
		candidates = append([]string{unescaped}, candidates...)
	}
	var lastErr error
	for _, c := range candidates {
		raw, err := decodeBase64(c)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// decodeBase64 accepts the standard alphabet first, then the unpadded and
// URL-safe variants some token producers emit.
func decodeBase64(s string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	var lastErr error
	for _, enc := range encodings {
		raw, err := enc.DecodeString(s)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func stringField(flat map[string]any, key string) string {
	if s, ok := flat[key].(string); ok {
		return s
	}
	return ""
}

// listField applies the three-tier multi-value parse. An absent or
// unreadable field yields an empty collection, never an error.
func listField(flat map[string]any, key string) []string {
	v, ok := flat[key]
	if !ok || v == nil {
		return []string{}
	}

	// Tier 1: already a structured sequence.
	if arr, ok := v.([]any); ok {
		return stringify(arr)
	}

	s, ok := v.(string)
	if !ok {
		return []string{}
	}
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	// Tier 2: a string embedding a JSON array.
	var parsed []any
	if err := json.Unmarshal([]byte(s), &parsed); err == nil {
		return stringify(parsed)
	}

	// Tier 3: comma-split and trim.
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func stringify(arr []any) []string {
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		switch t := v.(type) {
		case string:
			out = append(out, t)
		default:
			out = append(out, fmt.Sprint(t))
		}
	}
	return out
}
