// Package catalog holds the fixed option lists the intake form renders and
// the state-to-city lookup used to resolve free-text locations. All data is
// built once at startup and treated as read-only afterwards.
package catalog

import "strings"

// Catalog is the immutable lookup structure injected into components that
// need the fixed option sets.
type Catalog struct {
	interests         []string
	disabilities      []string
	medicalConditions []string
	genders           []string
	races             []string
	stateCities       map[string][]string
	stateAbbrevs      map[string]string
}

// New builds the catalog. Call once from the container.
func New() *Catalog {
	return &Catalog{
		interests: []string{
			"Working with animals",
			"Cooking and food service",
			"Art and crafts",
			"Helping people",
			"Computers and technology",
			"Being outdoors",
			"Organizing and sorting",
			"Driving and deliveries",
			"Cleaning and maintenance",
			"Retail and customer service",
			"Warehouses and packing",
			"Gardening and plants",
		},
		disabilities: []string{
			"Mobility impairment",
			"Visual impairment",
			"Hearing impairment",
			"Learning disability",
			"Autism spectrum",
			"Intellectual disability",
			"Speech impairment",
			"Chronic pain",
			"Mental health condition",
		},
		medicalConditions: []string{
			"Diabetes",
			"Epilepsy",
			"Asthma",
			"Heart condition",
			"Arthritis",
			"Chronic fatigue",
			"Anxiety disorder",
			"Depression",
			"PTSD",
		},
		genders: []string{"Male", "Female", "Non-binary", "Prefer not to say"},
		races: []string{
			"American Indian or Alaska Native",
			"Asian",
			"Black or African American",
			"Hispanic or Latino",
			"Native Hawaiian or Pacific Islander",
			"White",
			"Prefer not to say",
		},
		stateCities: map[string][]string{
			"texas":          {"Austin, TX", "Houston, TX", "Dallas, TX", "San Antonio, TX"},
			"california":     {"Los Angeles, CA", "San Diego, CA", "Sacramento, CA", "San Jose, CA"},
			"new york":       {"New York, NY", "Buffalo, NY", "Rochester, NY", "Albany, NY"},
			"florida":        {"Miami, FL", "Orlando, FL", "Tampa, FL", "Jacksonville, FL"},
			"illinois":       {"Chicago, IL", "Springfield, IL", "Peoria, IL"},
			"washington":     {"Seattle, WA", "Spokane, WA", "Tacoma, WA"},
			"georgia":        {"Atlanta, GA", "Savannah, GA", "Augusta, GA"},
			"ohio":           {"Columbus, OH", "Cleveland, OH", "Cincinnati, OH"},
			"pennsylvania":   {"Philadelphia, PA", "Pittsburgh, PA", "Allentown, PA"},
			"north carolina": {"Charlotte, NC", "Raleigh, NC", "Durham, NC"},
		},
		stateAbbrevs: map[string]string{
			"tx": "texas",
			"ca": "california",
			"ny": "new york",
			"fl": "florida",
			"il": "illinois",
			"wa": "washington",
			"ga": "georgia",
			"oh": "ohio",
			"pa": "pennsylvania",
			"nc": "north carolina",
		},
	}
}

// Interests returns a copy of the interest options.
func (c *Catalog) Interests() []string { return copyList(c.interests) }

// Disabilities returns a copy of the disability options.
func (c *Catalog) Disabilities() []string { return copyList(c.disabilities) }

// MedicalConditions returns a copy of the medical condition options.
func (c *Catalog) MedicalConditions() []string { return copyList(c.medicalConditions) }

// Genders returns a copy of the gender options.
func (c *Catalog) Genders() []string { return copyList(c.genders) }

// Races returns a copy of the race options.
func (c *Catalog) Races() []string { return copyList(c.races) }

// ResolveCity maps a free-text location onto a concrete "City, ST" string.
// A location naming a state (full name or two-letter abbreviation) resolves
// to that state's first catalog city; anything else is returned verbatim so
// a specific city the user typed is never rewritten.
func (c *Catalog) ResolveCity(location string) string {
	key := strings.ToLower(strings.TrimSpace(location))
	if key == "" {
		return location
	}
	if full, ok := c.stateAbbrevs[key]; ok {
		key = full
	}
	if cities, ok := c.stateCities[key]; ok && len(cities) > 0 {
		return cities[0]
	}
	return location
}

// CitiesForState returns the catalog cities for a state name or
// abbreviation, or nil when the state is unknown.
func (c *Catalog) CitiesForState(state string) []string {
	key := strings.ToLower(strings.TrimSpace(state))
	if full, ok := c.stateAbbrevs[key]; ok {
		key = full
	}
	return copyList(c.stateCities[key])
}

func copyList(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
