package codec

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"sort"
	"testing"

	"github.com/ableworks/ableworks-backend/internal/domain"
)

func sameSet(t *testing.T, name string, got, want []string) {
	t.Helper()
	g := append([]string(nil), got...)
	w := append([]string(nil), want...)
	sort.Strings(g)
	sort.Strings(w)
	if len(g) != len(w) {
		t.Fatalf("%s: got %v, want %v", name, got, want)
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("%s: got %v, want %v", name, got, want)
		}
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	p := &domain.Profile{
		Name:              "Jordan Avery",
		Gender:            "Non-binary",
		Homeless:          "no",
		Race:              []string{"Asian", "White"},
		Interests:         []string{"Working with animals", "Cooking and food service"},
		Disabilities:      []string{"Hearing impairment"},
		MedicalConditions: []string{"Asthma", "Diabetes"},
		Location:          "Austin, TX",
	}

	token, err := Encode(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got := Decode(token)
	if got == nil {
		t.Fatal("decode returned nil for a freshly encoded token")
	}
	if got.Name != p.Name || got.Gender != p.Gender || got.Homeless != p.Homeless || got.Location != p.Location {
		t.Fatalf("scalar fields did not round-trip: %+v", got)
	}
	sameSet(t, "race", got.Race, p.Race)
	sameSet(t, "interests", got.Interests, p.Interests)
	sameSet(t, "disabilities", got.Disabilities, p.Disabilities)
	sameSet(t, "medicalConditions", got.MedicalConditions, p.MedicalConditions)
}

func TestEncode_EmptyFieldsStillPresent(t *testing.T) {
	token, err := Encode(&domain.Profile{Interests: []string{}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got := Decode(token)
	if got == nil {
		t.Fatal("decode returned nil")
	}
	if got.Interests == nil || len(got.Interests) != 0 {
		t.Fatalf("interests: got %#v, want empty non-nil collection", got.Interests)
	}
	if got.Name != "" {
		t.Fatalf("name: got %q, want empty", got.Name)
	}
}

func TestDecode_NeverPanicsOrErrors(t *testing.T) {
	inputs := []string{
		"",
		"not-base64!!!",
		base64.StdEncoding.EncodeToString([]byte("not json")),
		base64.StdEncoding.EncodeToString([]byte(`[1,2,3]`)),
		"%ZZ",
		"AAAA",
	}
	for _, in := range inputs {
		if got := Decode(in); got != nil {
			t.Fatalf("Decode(%q) = %+v, want nil", in, got)
		}
	}
}

func TestDecode_CommaSplitLegacyPath(t *testing.T) {
	flat := map[string]string{
		"name":      "Sam",
		"interests": "cooking, animals ,  gardening",
	}
	raw, _ := json.Marshal(flat)
	token := url.QueryEscape(base64.StdEncoding.EncodeToString(raw))

	got := Decode(token)
	if got == nil {
		t.Fatal("decode returned nil")
	}
	sameSet(t, "interests", got.Interests, []string{"cooking", "animals", "gardening"})
}

func TestDecode_StructuredArrayField(t *testing.T) {
	// A producer that never stringified the array.
	raw := []byte(`{"name":"Sam","race":["Asian","White"]}`)
	token := url.QueryEscape(base64.StdEncoding.EncodeToString(raw))

	got := Decode(token)
	if got == nil {
		t.Fatal("decode returned nil")
	}
	sameSet(t, "race", got.Race, []string{"Asian", "White"})
}

func TestDecode_AbsentFieldYieldsEmptyCollection(t *testing.T) {
	raw := []byte(`{"name":"Sam"}`)
	token := url.QueryEscape(base64.StdEncoding.EncodeToString(raw))

	got := Decode(token)
	if got == nil {
		t.Fatal("decode returned nil")
	}
	if got.Disabilities == nil || len(got.Disabilities) != 0 {
		t.Fatalf("disabilities: got %#v, want empty collection", got.Disabilities)
	}
}

func TestDecode_UnpaddedBase64Tolerated(t *testing.T) {
	raw := []byte(`{"name":"Sam"}`)
	token := base64.RawStdEncoding.EncodeToString(raw)

	got := Decode(token)
	if got == nil {
		t.Fatal("decode returned nil for unpadded base64")
	}
	if got.Name != "Sam" {
		t.Fatalf("name: got %q", got.Name)
	}
}
