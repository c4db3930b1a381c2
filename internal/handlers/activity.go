package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/models"
	"github.com/medin/helpdesk/internal/services"
	"github.com/medin/helpdesk/pkg/response"
)

type ActivityHandler struct {
	activity *services.ActivityLogService
}

func NewActivityHandler(activity *services.ActivityLogService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// List returns activity entries, newest first. All query parameters are
// optional and combine conjunctively; date_from/date_to take RFC 3339
// timestamps, date_from inclusive and date_to exclusive.
func (h *ActivityHandler) List(c *gin.Context) {
	filter := services.ActivityFilter{
		UserID: c.Query("user_id"),
		Search: c.Query("search"),
	}

	if et := c.Query("entity_type"); et != "" {
		entityType := models.EntityType(et)
		if !entityType.Valid() {
			response.BadRequest(c, "unknown entity type: "+et)
			return
		}
		filter.EntityType = entityType
	}

	var err error
	if filter.DateFrom, err = parseTimeParam(c.Query("date_from")); err != nil {
		response.BadRequest(c, "invalid date_from: "+err.Error())
		return
	}
	if filter.DateTo, err = parseTimeParam(c.Query("date_to")); err != nil {
		response.BadRequest(c, "invalid date_to: "+err.Error())
		return
	}

	entries := h.activity.Filter(filter)

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			response.BadRequest(c, "invalid limit")
			return
		}
		if limit < len(entries) {
			entries = entries[:limit]
		}
	}

	response.Success(c, gin.H{
		"items": entries,
		"total": len(entries),
	})
}

// Labels exposes the action display labels so clients render unregistered
// actions with the raw-string fallback consistently.
func (h *ActivityHandler) Labels(c *gin.Context) {
	response.Success(c, models.ActionLabels)
}

func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
