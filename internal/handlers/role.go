package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/middleware"
	"github.com/medin/helpdesk/internal/services"
	"github.com/medin/helpdesk/pkg/response"
)

type RoleHandler struct {
	roles *services.RoleService
}

func NewRoleHandler(roles *services.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

func (h *RoleHandler) List(c *gin.Context) {
	response.Success(c, h.roles.List())
}

func (h *RoleHandler) Get(c *gin.Context) {
	role, ok := h.roles.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, "role not found")
		return
	}
	response.Success(c, role)
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req services.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	role, err := h.roles.Create(middleware.CurrentActor(c), req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, role)
}

func (h *RoleHandler) Update(c *gin.Context) {
	var patch services.RolePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	role, err := h.roles.Update(middleware.CurrentActor(c), c.Param("id"), patch)
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(c, "role not found")
	case err != nil:
		response.BadRequest(c, err.Error())
	default:
		response.Success(c, role)
	}
}

func (h *RoleHandler) Delete(c *gin.Context) {
	err := h.roles.Delete(middleware.CurrentActor(c), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrSystemRoleProtected):
		response.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(c, "role not found")
	case err != nil:
		response.ServerError(c, err.Error())
	default:
		response.Success(c, gin.H{"message": "role deleted"})
	}
}
