package services

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/medin/helpdesk/internal/models"
)

// DocumentService manages equipment documents.
type DocumentService struct {
	mu       sync.RWMutex
	docs     []models.Document
	nextSeq  int
	activity *ActivityLogService
}

func NewDocumentService(seed []models.Document, activity *ActivityLogService) *DocumentService {
	docs := make([]models.Document, len(seed))
	copy(docs, seed)
	return &DocumentService{docs: docs, nextSeq: len(seed) + 1, activity: activity}
}

// DocumentFilter selects documents matching all provided criteria.
type DocumentFilter struct {
	Type   models.DocumentType
	Status models.DocumentStatus
	Search string
}

func (s *DocumentService) List(f DocumentFilter) []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(f.Search)
	out := make([]models.Document, 0)
	for _, d := range s.docs {
		if f.Type != "" && d.Type != f.Type {
			continue
		}
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		if search != "" {
			matches := strings.Contains(strings.ToLower(d.Number), search) ||
				strings.Contains(strings.ToLower(d.Title), search) ||
				strings.Contains(strings.ToLower(d.EquipmentName), search)
			if !matches {
				continue
			}
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *DocumentService) Get(id string) (models.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.docs {
		if d.ID == id {
			return d, true
		}
	}
	return models.Document{}, false
}

type CreateDocumentRequest struct {
	Title             string                `json:"title" binding:"required"`
	Type              models.DocumentType   `json:"type" binding:"required"`
	Status            models.DocumentStatus `json:"status"`
	Description       string                `json:"description"`
	EquipmentName     string                `json:"equipment_name"`
	EquipmentLocation string                `json:"equipment_location"`
	RepairDate        *time.Time            `json:"repair_date"`
	RepairCost        float64               `json:"repair_cost"`
	PartsUsed         []string              `json:"parts_used"`
	FileName          string                `json:"file_name"`
}

func (s *DocumentService) Create(actor Actor, req CreateDocumentRequest) models.Document {
	now := time.Now()
	status := req.Status
	if status == "" {
		status = models.DocumentDraft
	}

	s.mu.Lock()
	doc := models.Document{
		ID:                uuid.NewString(),
		Number:            fmt.Sprintf("ACT-%d-%03d", now.Year(), s.nextSeq),
		Title:             req.Title,
		Type:              req.Type,
		Status:            status,
		Description:       req.Description,
		EquipmentName:     req.EquipmentName,
		EquipmentLocation: req.EquipmentLocation,
		RepairDate:        req.RepairDate,
		RepairCost:        req.RepairCost,
		PartsUsed:         req.PartsUsed,
		FileName:          req.FileName,
		AuthorID:          actor.ID,
		AuthorName:        actor.Name,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.nextSeq++
	s.docs = append([]models.Document{doc}, s.docs...)
	s.activity.Append(actor, "document.created", models.EntityDocument, doc.ID, doc.Number,
		"Document created: "+doc.Title)
	s.mu.Unlock()
	return doc
}

// DocumentPatch carries a partial update; nil fields are preserved.
type DocumentPatch struct {
	Title             *string                `json:"title"`
	Type              *models.DocumentType   `json:"type"`
	Status            *models.DocumentStatus `json:"status"`
	Description       *string                `json:"description"`
	EquipmentName     *string                `json:"equipment_name"`
	EquipmentLocation *string                `json:"equipment_location"`
	RepairDate        *time.Time             `json:"repair_date"`
	RepairCost        *float64               `json:"repair_cost"`
	PartsUsed         *[]string              `json:"parts_used"`
	FileName          *string                `json:"file_name"`
}

func (s *DocumentService) Update(actor Actor, id string, patch DocumentPatch) (models.Document, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Document{}, ErrNotFound
	}

	d := &s.docs[idx]
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Type != nil {
		d.Type = *patch.Type
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.EquipmentName != nil {
		d.EquipmentName = *patch.EquipmentName
	}
	if patch.EquipmentLocation != nil {
		d.EquipmentLocation = *patch.EquipmentLocation
	}
	if patch.RepairDate != nil {
		d.RepairDate = patch.RepairDate
	}
	if patch.RepairCost != nil {
		d.RepairCost = *patch.RepairCost
	}
	if patch.PartsUsed != nil {
		d.PartsUsed = append([]string(nil), *patch.PartsUsed...)
	}
	if patch.FileName != nil {
		d.FileName = *patch.FileName
	}
	d.UpdatedAt = time.Now()
	updated := *d
	s.activity.Append(actor, "document.updated", models.EntityDocument, updated.ID, updated.Number,
		"Document updated: "+updated.Title)
	s.mu.Unlock()
	return updated, nil
}

func (s *DocumentService) Delete(actor Actor, id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	number := s.docs[idx].Number
	title := s.docs[idx].Title
	s.docs = append(s.docs[:idx], s.docs[idx+1:]...)
	s.activity.Append(actor, "document.deleted", models.EntityDocument, id, number,
		"Document deleted: "+title)
	s.mu.Unlock()
	return nil
}

// indexOf must be called with the lock held.
func (s *DocumentService) indexOf(id string) int {
	for i, d := range s.docs {
		if d.ID == id {
			return i
		}
	}
	return -1
}
