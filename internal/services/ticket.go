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

// TicketService manages support tickets. Every successful mutation records
// an activity entry; permission gating happens at the route layer.
type TicketService struct {
	mu         sync.RWMutex
	tickets    []models.Ticket
	nextNumber int
	activity   *ActivityLogService
}

func NewTicketService(seed []models.Ticket, activity *ActivityLogService) *TicketService {
	tickets := make([]models.Ticket, len(seed))
	for i, t := range seed {
		tickets[i] = t.Clone()
	}
	return &TicketService{
		tickets:    tickets,
		nextNumber: 1000 + len(seed) + 1,
		activity:   activity,
	}
}

// TicketFilter selects tickets matching all provided criteria. Search is a
// case-insensitive substring match over number, title and description.
type TicketFilter struct {
	Status   models.TicketStatus
	Priority models.TicketPriority
	Category models.TicketCategory
	Search   string
}

// List returns matching tickets, newest first.
func (s *TicketService) List(f TicketFilter) []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(f.Search)
	out := make([]models.Ticket, 0)
	for _, t := range s.tickets {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if search != "" {
			matches := strings.Contains(strings.ToLower(t.Number), search) ||
				strings.Contains(strings.ToLower(t.Title), search) ||
				strings.Contains(strings.ToLower(t.Description), search)
			if !matches {
				continue
			}
		}
		out = append(out, t.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Get looks up a ticket by id.
func (s *TicketService) Get(id string) (models.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tickets {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return models.Ticket{}, false
}

// TicketStats counts tickets per status.
type TicketStats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	InProgress int `json:"in_progress"`
	Waiting    int `json:"waiting"`
	Resolved   int `json:"resolved"`
}

func (s *TicketService) Stats() TicketStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := TicketStats{Total: len(s.tickets)}
	for _, t := range s.tickets {
		switch t.Status {
		case models.TicketNew:
			stats.New++
		case models.TicketInProgress:
			stats.InProgress++
		case models.TicketWaiting:
			stats.Waiting++
		case models.TicketResolved:
			stats.Resolved++
		}
	}
	return stats
}

type CreateTicketRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	Category    models.TicketCategory `json:"category" binding:"required"`
	Priority    models.TicketPriority `json:"priority" binding:"required"`
}

// Create opens a new ticket authored by actor, with a sequential number.
func (s *TicketService) Create(actor Actor, req CreateTicketRequest) models.Ticket {
	now := time.Now()

	s.mu.Lock()
	ticket := models.Ticket{
		ID:          uuid.NewString(),
		Number:      fmt.Sprintf("#%d", s.nextNumber),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      models.TicketNew,
		AuthorID:    actor.ID,
		AuthorName:  actor.Name,
		Comments:    []models.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextNumber++
	s.tickets = append([]models.Ticket{ticket}, s.tickets...)
	s.activity.Append(actor, "ticket.created", models.EntityTicket, ticket.ID, ticket.Number,
		"Ticket created: "+ticket.Title)
	s.mu.Unlock()
	return ticket.Clone()
}

// TicketPatch carries a partial update of editable fields.
type TicketPatch struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Category    *models.TicketCategory `json:"category"`
	Priority    *models.TicketPriority `json:"priority"`
}

func (s *TicketService) Update(actor Actor, id string, patch TicketPatch) (models.Ticket, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Ticket{}, ErrNotFound
	}

	t := &s.tickets[idx]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	t.UpdatedAt = time.Now()
	updated := t.Clone()
	s.activity.Append(actor, "ticket.updated", models.EntityTicket, updated.ID, updated.Number,
		"Ticket updated: "+updated.Title)
	s.mu.Unlock()
	return updated, nil
}

func (s *TicketService) Delete(actor Actor, id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	number := s.tickets[idx].Number
	title := s.tickets[idx].Title
	s.tickets = append(s.tickets[:idx], s.tickets[idx+1:]...)
	s.activity.Append(actor, "ticket.deleted", models.EntityTicket, id, number,
		"Ticket deleted: "+title)
	s.mu.Unlock()
	return nil
}

// ChangeStatus moves a ticket to a new status.
func (s *TicketService) ChangeStatus(actor Actor, id string, status models.TicketStatus) (models.Ticket, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Ticket{}, ErrNotFound
	}
	t := &s.tickets[idx]
	t.Status = status
	t.UpdatedAt = time.Now()
	updated := t.Clone()
	s.activity.Append(actor, "ticket.status_changed", models.EntityTicket, updated.ID, updated.Number,
		"Status changed to "+string(status))
	s.mu.Unlock()
	return updated, nil
}

// Assign sets or clears the assignee. An empty assignee id is an explicit
// unassign and records ticket.unassigned; assigning bumps a new ticket into
// in_progress.
func (s *TicketService) Assign(actor Actor, id, assigneeID, assigneeName string) (models.Ticket, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Ticket{}, ErrNotFound
	}

	t := &s.tickets[idx]
	unassign := assigneeID == ""
	t.AssigneeID = assigneeID
	t.AssigneeName = assigneeName
	if !unassign && t.Status == models.TicketNew {
		t.Status = models.TicketInProgress
	}
	t.UpdatedAt = time.Now()
	updated := t.Clone()
	if unassign {
		s.activity.Append(actor, "ticket.unassigned", models.EntityTicket, updated.ID, updated.Number,
			"Assignee removed")
	} else {
		s.activity.Append(actor, "ticket.assigned", models.EntityTicket, updated.ID, updated.Number,
			"Assigned to "+assigneeName)
	}
	s.mu.Unlock()
	return updated, nil
}

// AddComment appends a comment authored by actor.
func (s *TicketService) AddComment(actor Actor, id, text string) (models.Ticket, error) {
	comment := models.Comment{
		ID:         uuid.NewString(),
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		Text:       text,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Ticket{}, ErrNotFound
	}
	t := &s.tickets[idx]
	t.Comments = append(t.Comments, comment)
	t.UpdatedAt = comment.CreatedAt
	updated := t.Clone()
	s.activity.Append(actor, "ticket.commented", models.EntityTicket, updated.ID, updated.Number,
		"Comment added")
	s.mu.Unlock()
	return updated, nil
}

// indexOf must be called with the lock held.
func (s *TicketService) indexOf(id string) int {
	for i, t := range s.tickets {
		if t.ID == id {
			return i
		}
	}
	return -1
}
