package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/medin/helpdesk/internal/models"
)

// RoleService is the role registry: the set of named roles with their
// permission matrices. Deleting a role never cascades to users referencing
// it; those users degrade to the no-permissions state at resolution time.
type RoleService struct {
	mu       sync.RWMutex
	roles    []models.Role
	activity *ActivityLogService
}

func NewRoleService(seed []models.Role, activity *ActivityLogService) *RoleService {
	roles := make([]models.Role, len(seed))
	for i, r := range seed {
		roles[i] = r.Clone()
	}
	return &RoleService{roles: roles, activity: activity}
}

// List returns all roles in registry order.
func (s *RoleService) List() []models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Role, len(s.roles))
	for i, r := range s.roles {
		out[i] = r.Clone()
	}
	return out
}

// Get looks up a role by id.
func (s *RoleService) Get(id string) (models.Role, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.roles {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return models.Role{}, false
}

type CreateRoleRequest struct {
	Name        string                    `json:"name" binding:"required"`
	Description string                    `json:"description"`
	Color       string                    `json:"color"`
	Permissions []models.ModulePermission `json:"permissions"`
}

// Create assigns a fresh id, appends the role and records role.created.
// A permissions list with two entries for the same module is rejected.
func (s *RoleService) Create(actor Actor, req CreateRoleRequest) (models.Role, error) {
	if err := validatePermissions(req.Permissions); err != nil {
		return models.Role{}, err
	}

	role := models.Role{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Permissions: append([]models.ModulePermission(nil), req.Permissions...),
	}

	// the registry change and its audit entry commit under one lock, so no
	// reader can observe one without the other
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles = append(s.roles, role)
	s.activity.Append(actor, "role.created", models.EntityRole, role.ID, role.Name, "Role created: "+role.Name)
	return role.Clone(), nil
}

// RolePatch carries a partial update. Nil fields are left untouched; a
// non-nil Permissions replaces the entire list, there is no per-module merge.
type RolePatch struct {
	Name        *string                    `json:"name"`
	Description *string                    `json:"description"`
	Color       *string                    `json:"color"`
	Permissions *[]models.ModulePermission `json:"permissions"`
}

// Update merges patch into the matching role and records role.updated.
func (s *RoleService) Update(actor Actor, id string, patch RolePatch) (models.Role, error) {
	if patch.Permissions != nil {
		if err := validatePermissions(*patch.Permissions); err != nil {
			return models.Role{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Role{}, ErrNotFound
	}

	role := &s.roles[idx]
	if patch.Name != nil {
		role.Name = *patch.Name
	}
	if patch.Description != nil {
		role.Description = *patch.Description
	}
	if patch.Color != nil {
		role.Color = *patch.Color
	}
	if patch.Permissions != nil {
		role.Permissions = append([]models.ModulePermission(nil), *patch.Permissions...)
	}
	updated := role.Clone()
	s.activity.Append(actor, "role.updated", models.EntityRole, updated.ID, updated.Name, "Role updated: "+updated.Name)
	return updated, nil
}

// Delete removes a role. System roles are protected: the call fails and the
// registry is left unchanged.
func (s *RoleService) Delete(actor Actor, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	if s.roles[idx].IsSystem {
		return ErrSystemRoleProtected
	}
	name := s.roles[idx].Name
	s.roles = append(s.roles[:idx], s.roles[idx+1:]...)
	s.activity.Append(actor, "role.deleted", models.EntityRole, id, name, "Role deleted: "+name)
	return nil
}

// indexOf must be called with the lock held.
func (s *RoleService) indexOf(id string) int {
	for i, r := range s.roles {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func validatePermissions(perms []models.ModulePermission) error {
	seen := make(map[models.ModuleID]bool, len(perms))
	for _, p := range perms {
		if !p.ModuleID.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownModule, p.ModuleID)
		}
		if seen[p.ModuleID] {
			return ErrDuplicatePermission
		}
		seen[p.ModuleID] = true
	}
	return nil
}
