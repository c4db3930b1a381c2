package services

import "github.com/medin/helpdesk/internal/models"

// PermissionService resolves what the acting user may see and do. All checks
// are pure, synchronous reads: safe to call on every request.
type PermissionService struct {
	roles *RoleService
	users *UserService
}

func NewPermissionService(roles *RoleService, users *UserService) *PermissionService {
	return &PermissionService{roles: roles, users: users}
}

// Resolution pairs a directory entry with its role. Either side may be nil —
// an unknown user id or a dangling role reference is not an error, it is the
// no-permissions state.
type Resolution struct {
	User *models.User `json:"user"`
	Role *models.Role `json:"role"`
}

// Resolve looks up the user and then the user's role.
func (s *PermissionService) Resolve(userID string) Resolution {
	var res Resolution
	user, ok := s.users.Get(userID)
	if !ok {
		return res
	}
	res.User = &user

	role, ok := s.roles.Get(user.RoleID)
	if !ok {
		return res
	}
	res.Role = &role
	return res
}

// HasPermission answers whether the user may perform action on module.
// Default-deny throughout: no role, no permission entry, or an unknown
// action all yield false.
func (s *PermissionService) HasPermission(userID string, module models.ModuleID, action models.PermissionAction) bool {
	res := s.Resolve(userID)
	if res.Role == nil {
		return false
	}
	perm, ok := res.Role.Permission(module)
	if !ok {
		return false
	}
	return perm.Allows(action)
}

// CanView is HasPermission with the default action.
func (s *PermissionService) CanView(userID string, module models.ModuleID) bool {
	return s.HasPermission(userID, module, models.ActionView)
}

// AvailableModules returns the modules the user may see, in the role's
// permission-list order. The profile module is always reachable regardless
// of this list; that exception belongs to the navigation layer, not here.
func (s *PermissionService) AvailableModules(userID string) []models.ModuleID {
	res := s.Resolve(userID)
	out := make([]models.ModuleID, 0)
	if res.Role == nil {
		return out
	}
	for _, p := range res.Role.Permissions {
		if p.CanView {
			out = append(out, p.ModuleID)
		}
	}
	return out
}
