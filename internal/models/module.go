package models

// ModuleID identifies a functional area of the application. Modules are the
// unit of access control granularity: every role carries one permission entry
// per module.
type ModuleID string

const (
	ModuleKnowledge ModuleID = "knowledge"
	ModuleTickets   ModuleID = "tickets"
	ModuleDocuments ModuleID = "documents"
	ModuleInventory ModuleID = "inventory"
	ModuleAdmin     ModuleID = "admin"
	ModuleProfile   ModuleID = "profile"
)

// AllModules lists every known module in display order.
var AllModules = []ModuleID{
	ModuleKnowledge,
	ModuleTickets,
	ModuleDocuments,
	ModuleInventory,
	ModuleAdmin,
	ModuleProfile,
}

// Valid reports whether m is one of the known module ids.
func (m ModuleID) Valid() bool {
	for _, id := range AllModules {
		if m == id {
			return true
		}
	}
	return false
}

// ModuleLabels maps module ids to display names.
var ModuleLabels = map[ModuleID]string{
	ModuleKnowledge: "Knowledge Base",
	ModuleTickets:   "Tickets",
	ModuleDocuments: "Documents",
	ModuleInventory: "Inventory",
	ModuleAdmin:     "Administration",
	ModuleProfile:   "Profile",
}

// PermissionAction is one of the four independent capability flags scoped to
// a module. The flags form no hierarchy: edit does not imply view.
type PermissionAction string

const (
	ActionView   PermissionAction = "view"
	ActionCreate PermissionAction = "create"
	ActionEdit   PermissionAction = "edit"
	ActionDelete PermissionAction = "delete"
)
