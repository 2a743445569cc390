// Package fallback supplies deterministic substitute content whenever the
// generative call is unavailable or fails. The resolver is the terminal
// safety net: it never fails and always returns fully-populated records.
package fallback

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/ableworks/ableworks-backend/internal/catalog"
	"github.com/ableworks/ableworks-backend/internal/domain"
)

type jobTemplate struct {
	title       string
	employer    string
	description string
	pay         string
}

// Ten accessible job templates; five are served per call.
var jobTemplates = []jobTemplate{
	{
		title:       "Grocery Stocker",
		employer:    "Neighborhood Market",
		description: "Restock shelves and keep aisles tidy at a steady, predictable pace. Training is provided on the job and tasks follow a written checklist.",
		pay:         "$14-16/hour",
	},
	{
		title:       "Animal Shelter Assistant",
		employer:    "Second Chance Animal Shelter",
		description: "Feed and socialize animals, clean kennels, and help visitors meet adoptable pets. A calm environment with supportive supervisors.",
		pay:         "$13-15/hour",
	},
	{
		title:       "Library Page",
		employer:    "Public Library",
		description: "Reshelve returned books and keep reading areas organized. Quiet workplace with flexible part-time shifts.",
		pay:         "$13-14/hour",
	},
	{
		title:       "Kitchen Prep Helper",
		employer:    "Community Kitchen Co-op",
		description: "Wash, chop, and portion ingredients following picture-based recipes. Seated workstations available on request.",
		pay:         "$14-17/hour",
	},
	{
		title:       "Warehouse Packer",
		employer:    "Regional Fulfillment Center",
		description: "Pack outgoing orders at your own station with clear step-by-step instructions. Noise-reducing headsets provided.",
		pay:         "$16-18/hour",
	},
	{
		title:       "Garden Center Associate",
		employer:    "Green Thumb Nursery",
		description: "Water plants, arrange displays, and help customers carry purchases. Outdoor work at a relaxed pace.",
		pay:         "$13-15/hour",
	},
	{
		title:       "Mailroom Clerk",
		employer:    "Downtown Office Services",
		description: "Sort and deliver incoming mail on a fixed daily routine. A structured role with the same tasks every day.",
		pay:         "$15-16/hour",
	},
	{
		title:       "Thrift Store Sorter",
		employer:    "Hopeful Hands Thrift",
		description: "Sort donated clothing and goods into categories and tag items for the sales floor. Work at your own pace in a friendly team.",
		pay:         "$12-14/hour",
	},
	{
		title:       "Data Entry Assistant",
		employer:    "City Records Office",
		description: "Type information from paper forms into a simple computer system. Remote and on-site options with screen-reader friendly software.",
		pay:         "$15-17/hour",
	},
	{
		title:       "Custodial Team Member",
		employer:    "Bright Spaces Cleaning",
		description: "Keep offices clean on an evening shift with a small supportive crew. Tasks are assigned from a daily checklist.",
		pay:         "$14-16/hour",
	},
}

// Resolver produces substitute listings, simplified descriptions and
// training plans.
type Resolver struct {
	catalog *catalog.Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

// NewResolver builds a resolver. The rand source is non-cryptographic on
// purpose: the shuffle only varies which five templates a page sees.
func NewResolver(cat *catalog.Catalog, seed int64) *Resolver {
	return &Resolver{catalog: cat, rng: rand.New(rand.NewSource(seed))}
}

// Listings returns five of the ten templates, shuffled, each with a fresh
// unique id and the resolved city as its location.
func (r *Resolver) Listings(location string) []domain.JobListing {
	city := r.catalog.ResolveCity(location)

	order := make([]int, len(jobTemplates))
	for i := range order {
		order[i] = i
	}
	r.mu.Lock()
	r.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	r.mu.Unlock()

	out := make([]domain.JobListing, 0, 5)
	for _, idx := range order[:5] {
		t := jobTemplates[idx]
		out = append(out, domain.JobListing{
			ID:          uuid.NewString(),
			Title:       t.title,
			Employer:    t.employer,
			Description: t.description,
			Pay:         t.pay,
			Location:    city,
		})
	}
	return out
}

// SimplifiedJob returns the static plain-language record.
func (r *Resolver) SimplifiedJob(jobTitle string) domain.SimplifiedJob {
	if jobTitle == "" {
		jobTitle = "This Job"
	}
	return domain.SimplifiedJob{
		JobTitle:              jobTitle,
		SimplifiedDescription: "In this job you help the team with everyday tasks. You get clear instructions, and someone is always available if you have questions. You can learn everything you need on the job.",
		KeyQualifications: []string{
			"Willingness to learn",
			"Showing up on time",
			"Being friendly with coworkers",
		},
		Accommodations: []string{
			"Flexible break schedule",
			"Written step-by-step instructions",
			"A quiet area to work when needed",
		},
		TrainingSuggestions: []string{
			"Ask for a workplace tour before your first day",
			"Practice the main tasks with a job coach",
		},
		Tone:     domain.ToneEncouraging,
		Provider: domain.ProviderFallback,
	}
}

// TrainingPlan returns the static multi-phase plan.
func (r *Resolver) TrainingPlan(jobTitle string) domain.TrainingPlan {
	if jobTitle == "" {
		jobTitle = "your chosen job"
	}
	return domain.TrainingPlan{
		Summary: "A gentle three-phase plan to get ready for " + jobTitle + ", moving from the basics to applying with confidence.",
		Phases: []domain.TrainingPhase{
			{
				Title:    "Learn the Basics",
				Duration: "2 weeks",
				Focus:    "Understand what the job involves day to day",
				Steps: []string{
					"Watch short videos about the job",
					"Write down three things that sound fun and three that sound hard",
					"Talk to someone who does this work",
				},
				Resources: []domain.TrainingResource{
					{Title: "CareerOneStop video library", URL: "https://www.careeronestop.org/Videos", Cost: "free"},
				},
			},
			{
				Title:    "Practice Core Skills",
				Duration: "3 weeks",
				Focus:    "Build the two or three skills the job uses most",
				Steps: []string{
					"Pick the most important skill and practice it 20 minutes a day",
					"Ask a friend, family member, or coach for feedback once a week",
				},
				Resources: []domain.TrainingResource{
					{Title: "GCFGlobal free tutorials", URL: "https://edu.gcfglobal.org", Cost: "free"},
					{Title: "Local library workshops", URL: "https://www.publiclibraries.com", Cost: "free"},
				},
			},
			{
				Title:    "Apply with Support",
				Duration: "1 week",
				Focus:    "Turn practice into applications",
				Steps: []string{
					"Draft a one-page resume with a helper",
					"Apply to two jobs, even if you feel only mostly ready",
					"Do one practice interview",
				},
				Resources: []domain.TrainingResource{
					{Title: "American Job Center locator", URL: "https://www.careeronestop.org/LocalHelp", Cost: "free"},
				},
			},
		},
		SuccessMetrics: []string{
			"You can describe the job in your own words",
			"You practiced the main skill at least ten times",
			"You submitted at least two applications",
		},
		Encouragement: "Progress counts even when it is slow. Every step you finish is one step closer to work that fits you.",
		Provider:      domain.ProviderFallback,
	}
}
