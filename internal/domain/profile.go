package domain

// Profile holds the attributes a job seeker submits through the intake form.
// Set-valued fields are ordered sequences of unique strings; their order
// carries no meaning downstream. A Profile is never mutated after creation
// and is never persisted: it travels between pages inside the URL token.
type Profile struct {
	Name              string   `json:"name"`
	Gender            string   `json:"gender"`
	Homeless          string   `json:"homeless"`
	Race              []string `json:"race"`
	Interests         []string `json:"interests"`
	Disabilities      []string `json:"disabilities"`
	MedicalConditions []string `json:"medicalConditions"`
	Location          string   `json:"location"`
}

// HasLocation reports whether the profile carries a usable location string.
func (p *Profile) HasLocation() bool {
	return p != nil && p.Location != ""
}
