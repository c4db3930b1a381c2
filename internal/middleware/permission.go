package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/models"
	"github.com/medin/helpdesk/internal/services"
)

// RequirePermission gates a route on the session user's permission for a
// module action. Denial is a 403: the caller has a session but the role
// does not grant the capability.
func RequirePermission(perms *services.PermissionService, module models.ModuleID, action models.PermissionAction) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !perms.HasPermission(GetUserID(c), module, action) {
			c.JSON(http.StatusForbidden, gin.H{"error": "no access to module " + string(module)})
			c.Abort()
			return
		}
		c.Next()
	}
}
