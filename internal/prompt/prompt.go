// Package prompt builds the instruction strings sent to the generative
// model. Builders are pure: the same input always yields the same prompt,
// and lines for absent profile attributes are omitted entirely rather than
// rendered empty.
package prompt

import (
	"fmt"
	"strings"
)

// JobSearchInput is the profile subset the job search prompt may mention.
type JobSearchInput struct {
	Location          string
	Interests         []string
	Disabilities      []string
	MedicalConditions []string
}

// SimplifyInput describes one listing plus the audience it is rewritten for.
type SimplifyInput struct {
	JobTitle          string
	JobDescription    string
	Disabilities      []string
	MedicalConditions []string
	ReadingLevel      string
}

// TrainingPlanInput describes the goal role and the learner's situation.
type TrainingPlanInput struct {
	JobTitle             string
	CurrentSkills        []string
	Interests            []string
	Disabilities         []string
	MedicalConditions    []string
	LearningPreferences  []string
	TimeAvailablePerWeek string
	Location             string
}

// JobSearch builds the prompt for the listing-generation call. The output
// contract demands a single JSON array with no surrounding prose.
func JobSearch(in JobSearchInput) string {
	var b strings.Builder
	b.WriteString("You are a job placement specialist for people facing barriers to employment.\n")
	b.WriteString("Suggest 5 real-world, entry-level, accessible job opportunities.\n\n")
	fmt.Fprintf(&b, "Location: %s\n", in.Location)
	writeListLine(&b, "Candidate interests", in.Interests)
	writeListLine(&b, "Candidate disabilities to accommodate", in.Disabilities)
	writeListLine(&b, "Candidate medical conditions to consider", in.MedicalConditions)
	b.WriteString(`
Respond with ONLY a JSON array (no markdown, no backticks, no explanation).
Each element must have exactly these string fields:
{
  "id": "unique identifier",
  "title": "job title",
  "employer": "employer name",
  "description": "2-3 sentence plain-language description",
  "pay": "pay as free text, e.g. '$15-18/hour'",
  "location": "city and state"
}
Every listing's "location" must be the location given above.
Do not include any text before or after the JSON array.`)
	return b.String()
}

// Simplify builds the prompt for the plain-language rewrite of one listing.
func Simplify(in SimplifyInput) string {
	var b strings.Builder
	b.WriteString("You simplify job descriptions for readers who need plain language.\n\n")
	if in.JobTitle != "" {
		fmt.Fprintf(&b, "Job title: %s\n", in.JobTitle)
	}
	fmt.Fprintf(&b, "Job description: %s\n", in.JobDescription)
	writeListLine(&b, "Reader disabilities", in.Disabilities)
	writeListLine(&b, "Reader medical conditions", in.MedicalConditions)
	if in.ReadingLevel != "" {
		fmt.Fprintf(&b, "Target reading level: %s\n", in.ReadingLevel)
	}
	b.WriteString(`
Respond with ONLY a single JSON object (no markdown, no backticks, no prose):
{
  "jobTitle": "string",
  "simplifiedDescription": "the description rewritten at a 6th-grade reading level",
  "keyQualifications": ["string"],
  "accommodations": ["workplace accommodations relevant to the reader"],
  "trainingSuggestions": ["string"],
  "tone": "encouraging" | "neutral" | "direct"
}`)
	return b.String()
}

// TrainingPlan builds the prompt for the multi-phase preparation plan.
func TrainingPlan(in TrainingPlanInput) string {
	var b strings.Builder
	b.WriteString("You are a vocational coach creating a realistic training plan.\n\n")
	if in.JobTitle != "" {
		fmt.Fprintf(&b, "Target job: %s\n", in.JobTitle)
	}
	writeListLine(&b, "Current skills", in.CurrentSkills)
	writeListLine(&b, "Interests", in.Interests)
	writeListLine(&b, "Disabilities to accommodate", in.Disabilities)
	writeListLine(&b, "Medical conditions to consider", in.MedicalConditions)
	writeListLine(&b, "Learning preferences", in.LearningPreferences)
	if in.TimeAvailablePerWeek != "" {
		fmt.Fprintf(&b, "Time available per week: %s\n", in.TimeAvailablePerWeek)
	}
	if in.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", in.Location)
	}
	b.WriteString(`
Respond with ONLY a single JSON object (no markdown, no backticks, no prose):
{
  "summary": "string",
  "phases": [{
    "title": "string",
    "duration": "e.g. '2 weeks'",
    "focus": "string",
    "steps": ["string"],
    "resources": [{"title": "string", "url": "string", "cost": "free text, optional"}]
  }],
  "successMetrics": ["string"],
  "encouragement": "one warm, realistic sentence"
}
Prefer free or low-cost resources.`)
	return b.String()
}

func writeListLine(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(values, ", "))
}
