package services

import (
	"errors"
	"testing"

	"github.com/medin/helpdesk/internal/models"
)

func newKnowledgeFixture(t *testing.T) (*KnowledgeService, *ActivityLogService) {
	t.Helper()
	activity := NewActivityLogService(nil)
	return NewKnowledgeService(nil, activity), activity
}

func createTestGuide(t *testing.T, kb *KnowledgeService) models.KnowledgeGuide {
	t.Helper()
	return kb.Create(testActor(), CreateGuideRequest{
		Title:       "Replacing a toner cartridge",
		Category:    models.GuidePrinter,
		Description: "Step by step toner replacement",
		Tags:        []string{"printer", "toner"},
		Steps: []models.GuideStep{
			{Order: 1, Title: "Open the front cover"},
			{Order: 2, Title: "Swap the cartridge"},
		},
	})
}

func TestKnowledgeGet_IncrementsViews(t *testing.T) {
	kb, _ := newKnowledgeFixture(t)
	guide := createTestGuide(t, kb)

	first, ok := kb.Get(guide.ID)
	if !ok {
		t.Fatal("guide not found")
	}
	if first.Views != 1 {
		t.Errorf("expected 1 view after first read, got %d", first.Views)
	}

	second, _ := kb.Get(guide.ID)
	if second.Views != 2 {
		t.Errorf("expected 2 views after second read, got %d", second.Views)
	}
}

func TestKnowledgeRate_SuccessRate(t *testing.T) {
	kb, _ := newKnowledgeFixture(t)
	guide := createTestGuide(t, kb)

	kb.Rate(guide.ID, true)
	kb.Rate(guide.ID, true)
	rated, err := kb.Rate(guide.ID, false)
	if err != nil {
		t.Fatalf("Rate returned error: %v", err)
	}

	if rated.Helpful != 2 || rated.NotHelpful != 1 {
		t.Errorf("vote counters wrong: %d helpful, %d not", rated.Helpful, rated.NotHelpful)
	}
	if rated.SuccessRate != 66 {
		t.Errorf("expected success rate 66, got %d", rated.SuccessRate)
	}

	if _, err := kb.Rate("ghost", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestKnowledgeList_SearchTags(t *testing.T) {
	kb, _ := newKnowledgeFixture(t)
	createTestGuide(t, kb)
	kb.Create(testActor(), CreateGuideRequest{
		Title:    "Connecting to the VPN",
		Category: models.GuideNetwork,
		Tags:     []string{"vpn", "remote"},
	})

	got := kb.List(GuideFilter{Search: "TONER"})
	if len(got) != 1 {
		t.Fatalf("tag search should match one guide, got %d", len(got))
	}

	got = kb.List(GuideFilter{Category: models.GuideNetwork})
	if len(got) != 1 || got[0].Title != "Connecting to the VPN" {
		t.Errorf("category filter failed: %+v", got)
	}
}

func TestKnowledgeActions_UseRawLabelFallback(t *testing.T) {
	kb, activity := newKnowledgeFixture(t)
	guide := createTestGuide(t, kb)

	title := "Replacing a toner cartridge, v2"
	if _, err := kb.Update(testActor(), guide.ID, GuidePatch{Title: &title}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	entries := activity.List(0)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		// knowledge.* is not in the label table: display falls back
		// to the raw action string
		if models.ActionLabel(e.Action) != e.Action {
			t.Errorf("expected raw fallback for %q, got %q", e.Action, models.ActionLabel(e.Action))
		}
		if e.EntityType != models.EntityGuide {
			t.Errorf("expected guide entity, got %q", e.EntityType)
		}
	}
}
