package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/middleware"
	"github.com/medin/helpdesk/internal/models"
	"github.com/medin/helpdesk/internal/services"
	"github.com/medin/helpdesk/pkg/response"
)

type TicketHandler struct {
	tickets *services.TicketService
	users   *services.UserService
}

func NewTicketHandler(tickets *services.TicketService, users *services.UserService) *TicketHandler {
	return &TicketHandler{tickets: tickets, users: users}
}

func (h *TicketHandler) List(c *gin.Context) {
	filter := services.TicketFilter{
		Status:   models.TicketStatus(c.Query("status")),
		Priority: models.TicketPriority(c.Query("priority")),
		Category: models.TicketCategory(c.Query("category")),
		Search:   c.Query("search"),
	}
	response.Success(c, h.tickets.List(filter))
}

func (h *TicketHandler) Stats(c *gin.Context) {
	response.Success(c, h.tickets.Stats())
}

func (h *TicketHandler) Get(c *gin.Context) {
	ticket, ok := h.tickets.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, "ticket not found")
		return
	}
	response.Success(c, ticket)
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req services.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, h.tickets.Create(middleware.CurrentActor(c), req))
}

func (h *TicketHandler) Update(c *gin.Context) {
	var patch services.TicketPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ticket, err := h.tickets.Update(middleware.CurrentActor(c), c.Param("id"), patch)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "ticket not found")
		return
	}
	response.Success(c, ticket)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	if err := h.tickets.Delete(middleware.CurrentActor(c), c.Param("id")); errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "ticket not found")
		return
	}
	response.Success(c, gin.H{"message": "ticket deleted"})
}

type changeStatusRequest struct {
	Status models.TicketStatus `json:"status" binding:"required"`
}

func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		response.BadRequest(c, "unknown status: "+string(req.Status))
		return
	}

	ticket, err := h.tickets.ChangeStatus(middleware.CurrentActor(c), c.Param("id"), req.Status)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "ticket not found")
		return
	}
	response.Success(c, ticket)
}

type assignRequest struct {
	AssigneeID string `json:"assignee_id"`
}

// Assign sets the ticket assignee. An empty assignee_id unassigns
// explicitly.
func (h *TicketHandler) Assign(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var assigneeName string
	if req.AssigneeID != "" {
		assignee, ok := h.users.Get(req.AssigneeID)
		if !ok {
			response.BadRequest(c, "assignee not found")
			return
		}
		assigneeName = assignee.Name
	}

	ticket, err := h.tickets.Assign(middleware.CurrentActor(c), c.Param("id"), req.AssigneeID, assigneeName)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "ticket not found")
		return
	}
	response.Success(c, ticket)
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ticket, err := h.tickets.AddComment(middleware.CurrentActor(c), c.Param("id"), req.Text)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "ticket not found")
		return
	}
	response.Created(c, ticket)
}
