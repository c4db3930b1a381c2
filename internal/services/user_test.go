package services

import (
	"errors"
	"testing"

	"github.com/medin/helpdesk/internal/models"
)

func newUserFixture(t *testing.T) (*UserService, *ActivityLogService) {
	t.Helper()
	activity := NewActivityLogService(nil)
	return NewUserService(models.SeedUsers(), activity), activity
}

func TestUserCreate(t *testing.T) {
	users, activity := newUserFixture(t)

	user := users.Create(testActor(), CreateUserRequest{
		Name:       "Olga Smirnova",
		Email:      "olga@medin.ru",
		RoleID:     "technician",
		Department: "Technical Department",
		IsActive:   true,
	})
	if user.ID == "" {
		t.Error("created user should get an id")
	}
	if user.CreatedAt.IsZero() {
		t.Error("created user should get a creation timestamp")
	}

	got, ok := users.Get(user.ID)
	if !ok {
		t.Fatal("created user not found")
	}
	if got.Name != "Olga Smirnova" {
		t.Errorf("expected Olga Smirnova, got %q", got.Name)
	}

	entries := activity.List(1)
	if len(entries) != 1 || entries[0].Action != "user.created" {
		t.Errorf("expected a user.created entry, got %+v", entries)
	}
}

func TestUserCreate_DanglingRoleAllowed(t *testing.T) {
	users, _ := newUserFixture(t)

	// role references are not validated here; a dangling id just
	// resolves to no permissions
	user := users.Create(testActor(), CreateUserRequest{Name: "Orphan", RoleID: "no-such-role"})
	if got, ok := users.Get(user.ID); !ok || got.RoleID != "no-such-role" {
		t.Error("user with unknown role id should be stored as-is")
	}
}

func TestUserUpdate_PartialPatch(t *testing.T) {
	users, _ := newUserFixture(t)

	dept := "Facilities"
	updated, err := users.Update(testActor(), "2", UserPatch{Department: &dept})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Department != dept {
		t.Errorf("expected department %q, got %q", dept, updated.Department)
	}
	if updated.Name != "Maria Sidorova" {
		t.Errorf("untouched field changed: %q", updated.Name)
	}
	if updated.RoleID != "user" {
		t.Errorf("untouched role changed: %q", updated.RoleID)
	}
}

func TestUserUpdate_Deactivate(t *testing.T) {
	users, _ := newUserFixture(t)

	inactive := false
	updated, err := users.Update(testActor(), "3", UserPatch{IsActive: &inactive})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.IsActive {
		t.Error("user should be deactivated")
	}
}

func TestUserUpdate_NotFound(t *testing.T) {
	users, _ := newUserFixture(t)

	name := "x"
	if _, err := users.Update(testActor(), "ghost", UserPatch{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserDelete(t *testing.T) {
	users, activity := newUserFixture(t)

	if err := users.Delete(testActor(), "4"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := users.Get("4"); ok {
		t.Error("deleted user should be gone")
	}

	entries := activity.List(1)
	if len(entries) != 1 || entries[0].Action != "user.deleted" {
		t.Errorf("expected a user.deleted entry, got %+v", entries)
	}

	if err := users.Delete(testActor(), "4"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete should return ErrNotFound, got %v", err)
	}
}

func TestUserTouchLogin(t *testing.T) {
	users, _ := newUserFixture(t)

	before, _ := users.Get("2")
	users.TouchLogin("2")
	after, _ := users.Get("2")

	if after.LastLogin == nil {
		t.Fatal("LastLogin should be set")
	}
	if before.LastLogin != nil && !after.LastLogin.After(*before.LastLogin) {
		t.Error("LastLogin should advance on login")
	}
}
