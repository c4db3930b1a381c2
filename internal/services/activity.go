package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/medin/helpdesk/internal/models"
)

// RetentionLimit bounds the activity log. The cap is enforced inside the
// same critical section as each append, so the log can never grow past it.
const RetentionLimit = 1000

// SystemUserName is stamped on entries appended without a resolvable actor.
const SystemUserName = "System"

// ActivityLogService holds the append-only, retention-bounded activity log.
// Entries are kept newest first; they are never edited, only pruned from the
// tail once the cap is exceeded.
type ActivityLogService struct {
	mu      sync.RWMutex
	entries []models.ActivityEntry
}

func NewActivityLogService(seed []models.ActivityEntry) *ActivityLogService {
	entries := make([]models.ActivityEntry, len(seed))
	copy(entries, seed)
	if len(entries) > RetentionLimit {
		entries = entries[:RetentionLimit]
	}
	return &ActivityLogService{entries: entries}
}

// Append records an action. The actor name is snapshotted at append time;
// an empty name falls back to the System sentinel. The oldest entries are
// silently discarded once the log exceeds RetentionLimit.
func (s *ActivityLogService) Append(actor Actor, action string, entityType models.EntityType, entityID, entityName, details string) models.ActivityEntry {
	name := actor.Name
	if name == "" {
		name = SystemUserName
	}
	entry := models.ActivityEntry{
		ID:         uuid.NewString(),
		UserID:     actor.ID,
		UserName:   name,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    details,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]models.ActivityEntry{entry}, s.entries...)
	if len(s.entries) > RetentionLimit {
		s.entries = s.entries[:RetentionLimit]
	}
	return entry
}

// ActivityFilter selects entries matching all provided criteria. DateFrom is
// inclusive, DateTo exclusive. Search matches case-insensitively against
// user name, action, details and entity name; any one match is enough.
type ActivityFilter struct {
	UserID     string
	EntityType models.EntityType
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string
}

// Filter returns matching entries preserving the log's newest-first order.
func (s *ActivityLogService) Filter(f ActivityFilter) []models.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(f.Search)
	out := make([]models.ActivityEntry, 0)
	for _, e := range s.entries {
		if f.UserID != "" && e.UserID != f.UserID {
			continue
		}
		if f.EntityType != "" && e.EntityType != f.EntityType {
			continue
		}
		if f.DateFrom != nil && e.CreatedAt.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && !e.CreatedAt.Before(*f.DateTo) {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesSearch(e models.ActivityEntry, search string) bool {
	return strings.Contains(strings.ToLower(e.UserName), search) ||
		strings.Contains(strings.ToLower(e.Action), search) ||
		strings.Contains(strings.ToLower(e.Details), search) ||
		strings.Contains(strings.ToLower(e.EntityName), search)
}

// List returns up to limit entries, newest first. A non-positive limit
// returns the whole log.
func (s *ActivityLogService) List(limit int) []models.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.ActivityEntry, n)
	copy(out, s.entries[:n])
	return out
}

// Len reports the current number of entries.
func (s *ActivityLogService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
