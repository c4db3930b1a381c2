package models

import "time"

// EntityType classifies what kind of record an activity entry refers to.
type EntityType string

const (
	EntityTicket    EntityType = "ticket"
	EntityDocument  EntityType = "document"
	EntityInventory EntityType = "inventory"
	EntityUser      EntityType = "user"
	EntityRole      EntityType = "role"
	EntitySettings  EntityType = "settings"
	EntityLogin     EntityType = "login"
	EntityGuide     EntityType = "guide"
)

// Valid reports whether t is a known entity type.
func (t EntityType) Valid() bool {
	switch t {
	case EntityTicket, EntityDocument, EntityInventory, EntityUser,
		EntityRole, EntitySettings, EntityLogin, EntityGuide:
		return true
	}
	return false
}

// ActivityEntry is one immutable record in the activity log. UserName is a
// snapshot taken at append time and is never re-resolved.
type ActivityEntry struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	UserName   string     `json:"user_name"`
	Action     string     `json:"action"`
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id,omitempty"`
	EntityName string     `json:"entity_name,omitempty"`
	Details    string     `json:"details,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ActionLabels maps known action names to display labels. The action
// vocabulary is an open string convention (namespace.verb): collaborating
// modules may introduce new actions without registering a label here.
var ActionLabels = map[string]string{
	"ticket.created":        "Ticket created",
	"ticket.updated":        "Ticket updated",
	"ticket.deleted":        "Ticket deleted",
	"ticket.status_changed": "Ticket status changed",
	"ticket.assigned":       "Ticket assigned",
	"ticket.unassigned":     "Ticket unassigned",
	"ticket.commented":      "Ticket comment added",
	"document.created":      "Document created",
	"document.updated":      "Document updated",
	"document.deleted":      "Document deleted",
	"inventory.created":     "Inventory item added",
	"inventory.updated":     "Inventory item updated",
	"inventory.movement":    "Stock movement",
	"user.created":          "User created",
	"user.updated":          "User updated",
	"user.deleted":          "User deleted",
	"user.login":            "Signed in",
	"user.logout":           "Signed out",
	"role.created":          "Role created",
	"role.updated":          "Role updated",
	"role.deleted":          "Role deleted",
	"settings.updated":      "Settings updated",
}

// ActionLabel returns the display label for an action, falling back to the
// raw action string for unregistered actions.
func ActionLabel(action string) string {
	if label, ok := ActionLabels[action]; ok {
		return label
	}
	return action
}
