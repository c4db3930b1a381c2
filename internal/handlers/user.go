package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/middleware"
	"github.com/medin/helpdesk/internal/services"
	"github.com/medin/helpdesk/pkg/response"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *gin.Context) {
	roleID := c.Query("role_id")

	users := h.users.List()
	if roleID != "" {
		filtered := users[:0]
		for _, u := range users {
			if u.RoleID == roleID {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}
	response.Success(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, ok := h.users.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, "user not found")
		return
	}
	response.Success(c, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, h.users.Create(middleware.CurrentActor(c), req))
}

func (h *UserHandler) Update(c *gin.Context) {
	var patch services.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.users.Update(middleware.CurrentActor(c), c.Param("id"), patch)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "user not found")
		return
	}
	response.Success(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(middleware.CurrentActor(c), c.Param("id")); errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "user not found")
		return
	}
	response.Success(c, gin.H{"message": "user deleted"})
}
