package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/middleware"
	"github.com/medin/helpdesk/internal/models"
	"github.com/medin/helpdesk/internal/services"
)

func newNavigationRouter(t *testing.T, actingUserID string, roles *services.RoleService, users *services.UserService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	perms := services.NewPermissionService(roles, users)
	handler := NewNavigationHandler(perms)

	router := gin.New()
	router.GET("/navigation", middleware.Session(actingUserID, users), handler.Get)
	return router
}

type navigationResponse struct {
	Data struct {
		Modules []struct {
			ID    models.ModuleID `json:"id"`
			Label string          `json:"label"`
		} `json:"modules"`
		CanAccessAdmin bool `json:"can_access_admin"`
	} `json:"data"`
}

func getNavigation(t *testing.T, router *gin.Engine) navigationResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/navigation", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp navigationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return resp
}

func TestNavigation_AdminSeesEverything(t *testing.T) {
	activity := services.NewActivityLogService(nil)
	roles := services.NewRoleService(models.DefaultRoles(), activity)
	users := services.NewUserService(models.SeedUsers(), activity)
	router := newNavigationRouter(t, "1", roles, users)

	resp := getNavigation(t, router)
	if len(resp.Data.Modules) != len(models.AllModules) {
		t.Errorf("admin should see all %d modules, got %d", len(models.AllModules), len(resp.Data.Modules))
	}
	if !resp.Data.CanAccessAdmin {
		t.Error("admin should access the admin module")
	}
}

func TestNavigation_ProfileAlwaysPresent(t *testing.T) {
	activity := services.NewActivityLogService(nil)
	roles := services.NewRoleService(models.DefaultRoles(), activity)
	users := services.NewUserService(models.SeedUsers(), activity)

	// a role granting no view on profile at all
	role, err := roles.Create(services.Actor{ID: "1", Name: "Ivan Petrov"}, services.CreateRoleRequest{
		Name: "Bare",
		Permissions: []models.ModulePermission{
			{ModuleID: models.ModuleTickets, CanView: true},
		},
	})
	if err != nil {
		t.Fatalf("Create role: %v", err)
	}
	bare := users.Create(services.Actor{ID: "1", Name: "Ivan Petrov"},
		services.CreateUserRequest{Name: "Bare User", RoleID: role.ID, IsActive: true})

	router := newNavigationRouter(t, bare.ID, roles, users)
	resp := getNavigation(t, router)

	hasProfile := false
	for _, m := range resp.Data.Modules {
		if m.ID == models.ModuleProfile {
			hasProfile = true
		}
	}
	if !hasProfile {
		t.Error("profile must always be present in navigation")
	}
	if resp.Data.CanAccessAdmin {
		t.Error("bare role must not access admin")
	}
}

func TestNavigation_UnknownUserOnlyProfile(t *testing.T) {
	activity := services.NewActivityLogService(nil)
	roles := services.NewRoleService(models.DefaultRoles(), activity)
	users := services.NewUserService(models.SeedUsers(), activity)
	router := newNavigationRouter(t, "ghost", roles, users)

	resp := getNavigation(t, router)
	if len(resp.Data.Modules) != 1 || resp.Data.Modules[0].ID != models.ModuleProfile {
		t.Errorf("unknown user should see only profile, got %+v", resp.Data.Modules)
	}
}
