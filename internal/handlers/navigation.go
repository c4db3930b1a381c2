package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/middleware"
	"github.com/medin/helpdesk/internal/models"
	"github.com/medin/helpdesk/internal/services"
	"github.com/medin/helpdesk/pkg/response"
)

// NavigationHandler tells the client which module tabs to render.
type NavigationHandler struct {
	perms *services.PermissionService
}

func NewNavigationHandler(perms *services.PermissionService) *NavigationHandler {
	return &NavigationHandler{perms: perms}
}

type navigationModule struct {
	ID    models.ModuleID `json:"id"`
	Label string          `json:"label"`
}

// Get lists the visible modules. Profile is always reachable regardless of
// the resolved permission list; that exception lives here, on the calling
// side, not in the resolver.
func (h *NavigationHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	visible := h.perms.AvailableModules(userID)

	hasProfile := false
	for _, m := range visible {
		if m == models.ModuleProfile {
			hasProfile = true
			break
		}
	}
	if !hasProfile {
		visible = append(visible, models.ModuleProfile)
	}

	modules := make([]navigationModule, 0, len(visible))
	for _, m := range visible {
		modules = append(modules, navigationModule{ID: m, Label: models.ModuleLabels[m]})
	}

	response.Success(c, gin.H{
		"modules":          modules,
		"can_access_admin": h.perms.CanView(userID, models.ModuleAdmin),
	})
}
