package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/middleware"
	"github.com/medin/helpdesk/internal/models"
	"github.com/medin/helpdesk/internal/services"
	"github.com/medin/helpdesk/pkg/response"
)

type DocumentHandler struct {
	docs *services.DocumentService
}

func NewDocumentHandler(docs *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{docs: docs}
}

func (h *DocumentHandler) List(c *gin.Context) {
	filter := services.DocumentFilter{
		Type:   models.DocumentType(c.Query("type")),
		Status: models.DocumentStatus(c.Query("status")),
		Search: c.Query("search"),
	}
	response.Success(c, h.docs.List(filter))
}

func (h *DocumentHandler) Get(c *gin.Context) {
	doc, ok := h.docs.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, "document not found")
		return
	}
	response.Success(c, doc)
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var req services.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, h.docs.Create(middleware.CurrentActor(c), req))
}

func (h *DocumentHandler) Update(c *gin.Context) {
	var patch services.DocumentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	doc, err := h.docs.Update(middleware.CurrentActor(c), c.Param("id"), patch)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "document not found")
		return
	}
	response.Success(c, doc)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.docs.Delete(middleware.CurrentActor(c), c.Param("id")); errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "document not found")
		return
	}
	response.Success(c, gin.H{"message": "document deleted"})
}
