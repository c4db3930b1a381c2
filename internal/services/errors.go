package services

import "errors"

var (
	// ErrNotFound signals an update/delete against a missing id. Handlers
	// map it to 404; it must never surface as a panic.
	ErrNotFound = errors.New("record not found")

	// ErrSystemRoleProtected is returned when deleting a built-in role.
	// State is left untouched.
	ErrSystemRoleProtected = errors.New("system role cannot be deleted")

	// ErrDuplicatePermission is returned when a role would carry two
	// permission entries for the same module.
	ErrDuplicatePermission = errors.New("duplicate permission entry for module")

	// ErrUnknownModule is returned when a permission entry names a module
	// id that is not part of the application.
	ErrUnknownModule = errors.New("unknown module id")
)

// Actor identifies who performs a mutation, stamped into activity entries.
// A zero Actor is recorded under the "System" sentinel name.
type Actor struct {
	ID   string
	Name string
}
