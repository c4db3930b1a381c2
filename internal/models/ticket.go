package models

import "time"

type TicketStatus string

const (
	TicketNew        TicketStatus = "new"
	TicketInProgress TicketStatus = "in_progress"
	TicketWaiting    TicketStatus = "waiting"
	TicketResolved   TicketStatus = "resolved"
	TicketCancelled  TicketStatus = "cancelled"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketNew, TicketInProgress, TicketWaiting, TicketResolved, TicketCancelled:
		return true
	}
	return false
}

type TicketPriority string

const (
	PriorityLow      TicketPriority = "low"
	PriorityMedium   TicketPriority = "medium"
	PriorityHigh     TicketPriority = "high"
	PriorityCritical TicketPriority = "critical"
)

type TicketCategory string

const (
	CategoryHardware TicketCategory = "hardware"
	CategorySoftware TicketCategory = "software"
	CategoryNetwork  TicketCategory = "network"
	CategoryPrinter  TicketCategory = "printer"
	CategoryOther    TicketCategory = "other"
)

// Comment is a ticket discussion entry. Author fields are snapshots.
type Comment struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// Ticket is a support request. Author and assignee are stored as id + name
// snapshots rather than embedded directory entries.
type Ticket struct {
	ID           string         `json:"id"`
	Number       string         `json:"number"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     TicketCategory `json:"category"`
	Priority     TicketPriority `json:"priority"`
	Status       TicketStatus   `json:"status"`
	AuthorID     string         `json:"author_id"`
	AuthorName   string         `json:"author_name"`
	AssigneeID   string         `json:"assignee_id,omitempty"`
	AssigneeName string         `json:"assignee_name,omitempty"`
	Comments     []Comment      `json:"comments"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Clone returns a deep copy including comments.
func (t Ticket) Clone() Ticket {
	out := t
	out.Comments = make([]Comment, len(t.Comments))
	copy(out.Comments, t.Comments)
	return out
}
