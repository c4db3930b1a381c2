package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/middleware"
	"github.com/medin/helpdesk/internal/models"
	"github.com/medin/helpdesk/internal/services"
	"github.com/medin/helpdesk/pkg/response"
)

type KnowledgeHandler struct {
	knowledge *services.KnowledgeService
}

func NewKnowledgeHandler(knowledge *services.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledge: knowledge}
}

func (h *KnowledgeHandler) List(c *gin.Context) {
	filter := services.GuideFilter{
		Category: models.GuideCategory(c.Query("category")),
		Search:   c.Query("search"),
	}
	response.Success(c, h.knowledge.List(filter))
}

func (h *KnowledgeHandler) Get(c *gin.Context) {
	guide, ok := h.knowledge.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, "guide not found")
		return
	}
	response.Success(c, guide)
}

func (h *KnowledgeHandler) Create(c *gin.Context) {
	var req services.CreateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, h.knowledge.Create(middleware.CurrentActor(c), req))
}

func (h *KnowledgeHandler) Update(c *gin.Context) {
	var patch services.GuidePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	guide, err := h.knowledge.Update(middleware.CurrentActor(c), c.Param("id"), patch)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "guide not found")
		return
	}
	response.Success(c, guide)
}

func (h *KnowledgeHandler) Delete(c *gin.Context) {
	if err := h.knowledge.Delete(middleware.CurrentActor(c), c.Param("id")); errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "guide not found")
		return
	}
	response.Success(c, gin.H{"message": "guide deleted"})
}

type rateRequest struct {
	Helpful *bool `json:"helpful" binding:"required"`
}

func (h *KnowledgeHandler) Rate(c *gin.Context) {
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	guide, err := h.knowledge.Rate(c.Param("id"), *req.Helpful)
	if errors.Is(err, services.ErrNotFound) {
		response.NotFound(c, "guide not found")
		return
	}
	response.Success(c, guide)
}
