package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/medin/helpdesk/internal/models"
)

// KnowledgeService manages the guide library. Its actions (knowledge.*) are
// deliberately not registered in the action-label table: they rely on the
// raw-string fallback of the open action vocabulary.
type KnowledgeService struct {
	mu       sync.RWMutex
	guides   []models.KnowledgeGuide
	activity *ActivityLogService
}

func NewKnowledgeService(seed []models.KnowledgeGuide, activity *ActivityLogService) *KnowledgeService {
	guides := make([]models.KnowledgeGuide, len(seed))
	for i, g := range seed {
		guides[i] = g.Clone()
	}
	return &KnowledgeService{guides: guides, activity: activity}
}

// GuideFilter selects guides matching all provided criteria. Search matches
// title, description and tags, case-insensitively.
type GuideFilter struct {
	Category models.GuideCategory
	Search   string
}

func (s *KnowledgeService) List(f GuideFilter) []models.KnowledgeGuide {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(f.Search)
	out := make([]models.KnowledgeGuide, 0)
	for _, g := range s.guides {
		if f.Category != "" && g.Category != f.Category {
			continue
		}
		if search != "" && !guideMatches(g, search) {
			continue
		}
		out = append(out, g.Clone())
	}
	return out
}

func guideMatches(g models.KnowledgeGuide, search string) bool {
	if strings.Contains(strings.ToLower(g.Title), search) ||
		strings.Contains(strings.ToLower(g.Description), search) {
		return true
	}
	for _, tag := range g.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

// Get returns a guide and increments its view counter.
func (s *KnowledgeService) Get(id string) (models.KnowledgeGuide, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.guides {
		if s.guides[i].ID == id {
			s.guides[i].Views++
			return s.guides[i].Clone(), true
		}
	}
	return models.KnowledgeGuide{}, false
}

type CreateGuideRequest struct {
	Title       string               `json:"title" binding:"required"`
	Category    models.GuideCategory `json:"category" binding:"required"`
	Description string               `json:"description"`
	Tags        []string             `json:"tags"`
	Steps       []models.GuideStep   `json:"steps"`
}

func (s *KnowledgeService) Create(actor Actor, req CreateGuideRequest) models.KnowledgeGuide {
	now := time.Now()
	guide := models.KnowledgeGuide{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Tags:        append([]string(nil), req.Tags...),
		Steps:       append([]models.GuideStep(nil), req.Steps...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.guides = append(s.guides, guide)
	s.activity.Append(actor, "knowledge.created", models.EntityGuide, guide.ID, guide.Title,
		"Guide created: "+guide.Title)
	s.mu.Unlock()
	return guide.Clone()
}

// GuidePatch carries a partial update; nil fields are preserved. Tags and
// steps are replaced whole when provided.
type GuidePatch struct {
	Title       *string               `json:"title"`
	Category    *models.GuideCategory `json:"category"`
	Description *string               `json:"description"`
	Tags        *[]string             `json:"tags"`
	Steps       *[]models.GuideStep   `json:"steps"`
}

func (s *KnowledgeService) Update(actor Actor, id string, patch GuidePatch) (models.KnowledgeGuide, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.KnowledgeGuide{}, ErrNotFound
	}

	g := &s.guides[idx]
	if patch.Title != nil {
		g.Title = *patch.Title
	}
	if patch.Category != nil {
		g.Category = *patch.Category
	}
	if patch.Description != nil {
		g.Description = *patch.Description
	}
	if patch.Tags != nil {
		g.Tags = append([]string(nil), *patch.Tags...)
	}
	if patch.Steps != nil {
		g.Steps = append([]models.GuideStep(nil), *patch.Steps...)
	}
	g.UpdatedAt = time.Now()
	updated := g.Clone()
	s.activity.Append(actor, "knowledge.updated", models.EntityGuide, updated.ID, updated.Title,
		"Guide updated: "+updated.Title)
	s.mu.Unlock()
	return updated, nil
}

func (s *KnowledgeService) Delete(actor Actor, id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	title := s.guides[idx].Title
	s.guides = append(s.guides[:idx], s.guides[idx+1:]...)
	s.activity.Append(actor, "knowledge.deleted", models.EntityGuide, id, title,
		"Guide deleted: "+title)
	s.mu.Unlock()
	return nil
}

// Rate records a helpful / not-helpful vote and recomputes the success rate.
func (s *KnowledgeService) Rate(id string, helpful bool) (models.KnowledgeGuide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.KnowledgeGuide{}, ErrNotFound
	}

	g := &s.guides[idx]
	if helpful {
		g.Helpful++
	} else {
		g.NotHelpful++
	}
	if total := g.Helpful + g.NotHelpful; total > 0 {
		g.SuccessRate = g.Helpful * 100 / total
	}
	return g.Clone(), nil
}

// indexOf must be called with the lock held.
func (s *KnowledgeService) indexOf(id string) int {
	for i, g := range s.guides {
		if g.ID == id {
			return i
		}
	}
	return -1
}
