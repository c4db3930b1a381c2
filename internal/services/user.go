package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/medin/helpdesk/internal/models"
)

// UserService is the user directory. RoleID is deliberately not validated on
// create or update: a dangling reference is tolerated and resolves to no
// permissions (see PermissionService).
type UserService struct {
	mu       sync.RWMutex
	users    []models.User
	activity *ActivityLogService
}

func NewUserService(seed []models.User, activity *ActivityLogService) *UserService {
	users := make([]models.User, len(seed))
	copy(users, seed)
	return &UserService{users: users, activity: activity}
}

// List returns all directory entries.
func (s *UserService) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Get looks up a user by id.
func (s *UserService) Get(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

type CreateUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email"`
	RoleID     string `json:"role_id" binding:"required"`
	Department string `json:"department"`
	IsActive   bool   `json:"is_active"`
}

// Create assigns id and CreatedAt, appends the entry and records
// user.created.
func (s *UserService) Create(actor Actor, req CreateUserRequest) models.User {
	user := models.User{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		RoleID:     req.RoleID,
		Department: req.Department,
		IsActive:   req.IsActive,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	s.activity.Append(actor, "user.created", models.EntityUser, user.ID, user.Name, "User created: "+user.Name)
	return user
}

// UserPatch carries a partial update; nil fields are preserved untouched.
type UserPatch struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	RoleID     *string `json:"role_id"`
	Department *string `json:"department"`
	IsActive   *bool   `json:"is_active"`
}

// Update merges patch into the matching entry and records user.updated.
func (s *UserService) Update(actor Actor, id string, patch UserPatch) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return models.User{}, ErrNotFound
	}

	user := &s.users[idx]
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.RoleID != nil {
		user.RoleID = *patch.RoleID
	}
	if patch.Department != nil {
		user.Department = *patch.Department
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}
	updated := *user
	s.activity.Append(actor, "user.updated", models.EntityUser, updated.ID, updated.Name, "User updated: "+updated.Name)
	return updated, nil
}

// Delete removes the entry and records user.deleted.
func (s *UserService) Delete(actor Actor, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	name := s.users[idx].Name
	s.users = append(s.users[:idx], s.users[idx+1:]...)
	s.activity.Append(actor, "user.deleted", models.EntityUser, id, name, "User deleted: "+name)
	return nil
}

// TouchLogin stamps LastLogin for a successful sign-in.
func (s *UserService) TouchLogin(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(id); idx >= 0 {
		now := time.Now()
		s.users[idx].LastLogin = &now
	}
}

// indexOf must be called with the lock held.
func (s *UserService) indexOf(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
