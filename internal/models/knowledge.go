package models

import "time"

type GuideCategory string

const (
	GuideHardware GuideCategory = "hardware"
	GuideSoftware GuideCategory = "software"
	GuideNetwork  GuideCategory = "network"
	GuidePrinter  GuideCategory = "printer"
	GuideCommon   GuideCategory = "common"
)

// GuideStep is one ordered instruction within a guide.
type GuideStep struct {
	ID          string `json:"id"`
	Order       int    `json:"order"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

// KnowledgeGuide is a step-by-step troubleshooting article. SuccessRate is
// derived from helpful/not-helpful votes.
type KnowledgeGuide struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Category    GuideCategory `json:"category"`
	Description string        `json:"description"`
	Tags        []string      `json:"tags"`
	Steps       []GuideStep   `json:"steps"`
	Views       int           `json:"views"`
	Helpful     int           `json:"helpful"`
	NotHelpful  int           `json:"not_helpful"`
	SuccessRate int           `json:"success_rate"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Clone returns a deep copy including tags and steps.
func (g KnowledgeGuide) Clone() KnowledgeGuide {
	out := g
	out.Tags = make([]string, len(g.Tags))
	copy(out.Tags, g.Tags)
	out.Steps = make([]GuideStep, len(g.Steps))
	copy(out.Steps, g.Steps)
	return out
}
