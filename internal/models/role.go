package models

// ModulePermission is one role's capability flags for a single module.
type ModulePermission struct {
	ModuleID  ModuleID `json:"module_id"`
	CanView   bool     `json:"can_view"`
	CanCreate bool     `json:"can_create"`
	CanEdit   bool     `json:"can_edit"`
	CanDelete bool     `json:"can_delete"`
}

// Allows returns the flag corresponding to action. Unknown actions are
// denied.
func (p ModulePermission) Allows(action PermissionAction) bool {
	switch action {
	case ActionView:
		return p.CanView
	case ActionCreate:
		return p.CanCreate
	case ActionEdit:
		return p.CanEdit
	case ActionDelete:
		return p.CanDelete
	default:
		return false
	}
}

// Role is a named, reusable bundle of per-module permissions assignable to
// users. Roles flagged IsSystem are built-in defaults and cannot be deleted.
type Role struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Color       string             `json:"color"`
	Permissions []ModulePermission `json:"permissions"`
	IsSystem    bool               `json:"is_system"`
}

// Permission finds the entry for the given module. A missing entry is
// equivalent to all-false.
func (r *Role) Permission(module ModuleID) (ModulePermission, bool) {
	for _, p := range r.Permissions {
		if p.ModuleID == module {
			return p, true
		}
	}
	return ModulePermission{}, false
}

// Clone returns a deep copy so callers can never mutate registry state
// through a returned role.
func (r Role) Clone() Role {
	out := r
	out.Permissions = make([]ModulePermission, len(r.Permissions))
	copy(out.Permissions, r.Permissions)
	return out
}
