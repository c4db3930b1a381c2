package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/config"
	"github.com/medin/helpdesk/internal/middleware"
	"github.com/medin/helpdesk/internal/models"
	"github.com/medin/helpdesk/internal/services"
	"github.com/medin/helpdesk/internal/utils"
	"github.com/medin/helpdesk/pkg/response"
)

// AuthHandler implements the session seam. There is no credential check by
// design: login selects an existing directory entry and issues a token for
// it, so the acting identity is replaceable per request.
type AuthHandler struct {
	users    *services.UserService
	perms    *services.PermissionService
	activity *services.ActivityLogService
	jwtCfg   *config.JWTConfig
}

func NewAuthHandler(users *services.UserService, perms *services.PermissionService, activity *services.ActivityLogService, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{users: users, perms: perms, activity: activity, jwtCfg: jwtCfg}
}

type loginRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type loginResponse struct {
	Token    string      `json:"token"`
	User     models.User `json:"user"`
	ExpireAt time.Time   `json:"expire_at"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, ok := h.users.Get(req.UserID)
	if !ok {
		response.Unauthorized(c, "unknown user")
		return
	}
	if !user.IsActive {
		response.Forbidden(c, "account is deactivated")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Name, user.RoleID, h.jwtCfg.ExpireHour)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	h.users.TouchLogin(user.ID)
	h.activity.Append(services.Actor{ID: user.ID, Name: user.Name},
		"user.login", models.EntityLogin, "", "", "Signed in")

	response.Success(c, loginResponse{
		Token:    token,
		User:     user,
		ExpireAt: time.Now().Add(time.Duration(h.jwtCfg.ExpireHour) * time.Hour),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.activity.Append(middleware.CurrentActor(c),
		"user.logout", models.EntityLogin, "", "", "Signed out")
	response.Success(c, gin.H{"message": "signed out"})
}

// Me returns the resolved session identity. A missing user or a dangling
// role comes back as null rather than an error: that is the no-permissions
// state.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	res := h.perms.Resolve(userID)
	response.Success(c, gin.H{
		"user":              res.User,
		"role":              res.Role,
		"available_modules": h.perms.AvailableModules(userID),
	})
}
