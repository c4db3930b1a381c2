package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/medin/helpdesk/internal/models"
)

func testActor() Actor {
	return Actor{ID: "u1", Name: "Anna Petrova"}
}

func TestActivityAppend_NewestFirst(t *testing.T) {
	log := NewActivityLogService(nil)

	log.Append(testActor(), "ticket.created", models.EntityTicket, "t1", "#1001", "first")
	log.Append(testActor(), "ticket.updated", models.EntityTicket, "t1", "#1001", "second")
	log.Append(testActor(), "ticket.deleted", models.EntityTicket, "t1", "#1001", "third")

	entries := log.List(0)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Action != "ticket.deleted" {
		t.Errorf("newest entry should be first, got %q", entries[0].Action)
	}
	if entries[2].Action != "ticket.created" {
		t.Errorf("oldest entry should be last, got %q", entries[2].Action)
	}
}

func TestActivityAppend_SystemFallback(t *testing.T) {
	log := NewActivityLogService(nil)

	entry := log.Append(Actor{}, "settings.updated", models.EntitySettings, "", "", "cron job")
	if entry.UserName != SystemUserName {
		t.Errorf("empty actor name should fall back to %q, got %q", SystemUserName, entry.UserName)
	}
}

func TestActivityAppend_RetentionCap(t *testing.T) {
	log := NewActivityLogService(nil)

	for i := 0; i < RetentionLimit+1; i++ {
		log.Append(testActor(), fmt.Sprintf("action.%d", i), models.EntityTicket, "", "", "")
	}

	if log.Len() != RetentionLimit {
		t.Fatalf("log should be capped at %d entries, got %d", RetentionLimit, log.Len())
	}

	entries := log.List(0)
	if entries[0].Action != fmt.Sprintf("action.%d", RetentionLimit) {
		t.Errorf("newest entry should survive, got %q", entries[0].Action)
	}
	// action.0 was the oldest append; it must have been pruned
	for _, e := range entries {
		if e.Action == "action.0" {
			t.Error("oldest entry should have been pruned at the cap")
		}
	}
}

func TestActivityFilter_Conjunction(t *testing.T) {
	log := NewActivityLogService(nil)
	log.Append(Actor{ID: "u1", Name: "Anna Petrova"}, "ticket.created", models.EntityTicket, "t1", "#1001", "Printer broken")
	log.Append(Actor{ID: "u2", Name: "Ivan Sidorov"}, "ticket.created", models.EntityTicket, "t2", "#1002", "VPN down")
	log.Append(Actor{ID: "u1", Name: "Anna Petrova"}, "user.updated", models.EntityUser, "u3", "Maria", "Role changed")

	got := log.Filter(ActivityFilter{UserID: "u1", EntityType: models.EntityTicket})
	if len(got) != 1 {
		t.Fatalf("expected 1 entry matching both criteria, got %d", len(got))
	}
	if got[0].EntityName != "#1001" {
		t.Errorf("expected #1001, got %q", got[0].EntityName)
	}
}

func TestActivityFilter_SearchCaseInsensitive(t *testing.T) {
	log := NewActivityLogService(nil)
	log.Append(Actor{ID: "u1", Name: "Anna Petrova"}, "ticket.created", models.EntityTicket, "t1", "#1001", "Printer broken")
	log.Append(Actor{ID: "u2", Name: "Ivan Sidorov"}, "ticket.created", models.EntityTicket, "t2", "#1002", "VPN down")

	tests := []struct {
		search string
		want   int
	}{
		{"PRINTER", 1},
		{"anna", 1},
		{"ticket.created", 2},
		{"#100", 2},
		{"nonexistent", 0},
	}

	for _, tt := range tests {
		got := log.Filter(ActivityFilter{Search: tt.search})
		if len(got) != tt.want {
			t.Errorf("search %q: expected %d entries, got %d", tt.search, tt.want, len(got))
		}
	}
}

func TestActivityFilter_DateBounds(t *testing.T) {
	now := time.Now()
	seed := []models.ActivityEntry{
		{ID: "3", Action: "c", CreatedAt: now},
		{ID: "2", Action: "b", CreatedAt: now.Add(-time.Hour)},
		{ID: "1", Action: "a", CreatedAt: now.Add(-2 * time.Hour)},
	}
	log := NewActivityLogService(seed)

	from := now.Add(-time.Hour)
	got := log.Filter(ActivityFilter{DateFrom: &from})
	if len(got) != 2 {
		t.Fatalf("date_from should be inclusive: expected 2 entries, got %d", len(got))
	}

	to := now
	got = log.Filter(ActivityFilter{DateTo: &to})
	if len(got) != 2 {
		t.Fatalf("date_to should be exclusive: expected 2 entries, got %d", len(got))
	}
	for _, e := range got {
		if e.ID == "3" {
			t.Error("entry at date_to must be excluded")
		}
	}
}

func TestActivityList_Limit(t *testing.T) {
	log := NewActivityLogService(nil)
	for i := 0; i < 5; i++ {
		log.Append(testActor(), fmt.Sprintf("action.%d", i), models.EntityTicket, "", "", "")
	}

	if got := len(log.List(3)); got != 3 {
		t.Errorf("List(3) should return 3 entries, got %d", got)
	}
	if got := len(log.List(0)); got != 5 {
		t.Errorf("List(0) should return all entries, got %d", got)
	}
	if got := len(log.List(100)); got != 5 {
		t.Errorf("limit beyond the log should return all entries, got %d", got)
	}
}
