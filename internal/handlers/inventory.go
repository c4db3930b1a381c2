package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/middleware"
	"github.com/medin/helpdesk/internal/models"
	"github.com/medin/helpdesk/internal/services"
	"github.com/medin/helpdesk/pkg/response"
)

type InventoryHandler struct {
	inventory *services.InventoryService
}

func NewInventoryHandler(inventory *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

func (h *InventoryHandler) List(c *gin.Context) {
	category := models.InventoryCategory(c.Query("category"))
	response.Success(c, h.inventory.List(category))
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	response.Success(c, h.inventory.LowStock())
}

func (h *InventoryHandler) Get(c *gin.Context) {
	item, ok := h.inventory.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, "inventory item not found")
		return
	}
	response.Success(c, item)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req services.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, h.inventory.Create(middleware.CurrentActor(c), req))
}

func (h *InventoryHandler) Update(c *gin.Context) {
	var patch services.InventoryItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.inventory.Update(middleware.CurrentActor(c), c.Param("id"), patch)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "inventory item not found")
		return
	}
	response.Success(c, item)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.inventory.Delete(middleware.CurrentActor(c), c.Param("id")); errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "inventory item not found")
		return
	}
	response.Success(c, gin.H{"message": "inventory item deleted"})
}

func (h *InventoryHandler) Move(c *gin.Context) {
	var req services.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	movement, err := h.inventory.Move(middleware.CurrentActor(c), c.Param("id"), req)
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(c, "inventory item not found")
	case err != nil:
		response.BadRequest(c, err.Error())
	default:
		response.Created(c, movement)
	}
}

func (h *InventoryHandler) Movements(c *gin.Context) {
	response.Success(c, h.inventory.Movements(c.Query("item_id")))
}
