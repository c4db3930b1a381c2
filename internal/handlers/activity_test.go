package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/models"
	"github.com/medin/helpdesk/internal/services"
)

func newActivityRouter(t *testing.T, log *services.ActivityLogService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewActivityHandler(log)
	router := gin.New()
	router.GET("/activity", handler.List)
	router.GET("/activity/labels", handler.Labels)
	return router
}

type activityListResponse struct {
	Data struct {
		Items []models.ActivityEntry `json:"items"`
		Total int                    `json:"total"`
	} `json:"data"`
}

func TestActivityList_Filters(t *testing.T) {
	log := services.NewActivityLogService(nil)
	log.Append(services.Actor{ID: "1", Name: "Ivan Petrov"}, "ticket.created", models.EntityTicket, "t1", "#1001", "Printer broken")
	log.Append(services.Actor{ID: "2", Name: "Maria Sidorova"}, "user.updated", models.EntityUser, "u3", "Alexey", "Role changed")
	router := newActivityRouter(t, log)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/activity?user_id=1&entity_type=ticket", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp activityListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data.Total != 1 || len(resp.Data.Items) != 1 {
		t.Fatalf("expected 1 entry, got %d", resp.Data.Total)
	}
	if resp.Data.Items[0].Action != "ticket.created" {
		t.Errorf("unexpected entry: %+v", resp.Data.Items[0])
	}
}

func TestActivityList_InvalidParams(t *testing.T) {
	router := newActivityRouter(t, services.NewActivityLogService(nil))

	cases := []string{
		"/activity?entity_type=bogus",
		"/activity?date_from=not-a-date",
		"/activity?limit=0",
		"/activity?limit=abc",
	}
	for _, path := range cases {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s should return 400, got %d", path, w.Code)
		}
	}
}

func TestActivityList_DateRange(t *testing.T) {
	log := services.NewActivityLogService(nil)
	log.Append(services.Actor{ID: "1", Name: "Ivan Petrov"}, "ticket.created", models.EntityTicket, "t1", "#1001", "x")
	router := newActivityRouter(t, log)

	from := time.Now().Add(-time.Minute).Format(time.RFC3339)
	to := time.Now().Add(time.Minute).Format(time.RFC3339)
	path := "/activity?date_from=" + url.QueryEscape(from) + "&date_to=" + url.QueryEscape(to)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp activityListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data.Total != 1 {
		t.Errorf("entry inside the window should match, got %d", resp.Data.Total)
	}
}

func TestActivityLabels(t *testing.T) {
	router := newActivityRouter(t, services.NewActivityLogService(nil))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/activity/labels", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data["ticket.created"] == "" {
		t.Error("label table should include ticket.created")
	}
}
