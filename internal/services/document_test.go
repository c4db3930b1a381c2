package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/medin/helpdesk/internal/models"
)

func TestDocumentCreate_Numbering(t *testing.T) {
	activity := NewActivityLogService(nil)
	docs := NewDocumentService(nil, activity)

	first := docs.Create(testActor(), CreateDocumentRequest{
		Title: "Printer repair act",
		Type:  models.DocumentRepair,
	})
	second := docs.Create(testActor(), CreateDocumentRequest{
		Title: "Server maintenance act",
		Type:  models.DocumentMaintenance,
	})

	year := time.Now().Year()
	if want := fmt.Sprintf("ACT-%d-001", year); first.Number != want {
		t.Errorf("expected number %s, got %s", want, first.Number)
	}
	if want := fmt.Sprintf("ACT-%d-002", year); second.Number != want {
		t.Errorf("expected number %s, got %s", want, second.Number)
	}

	if first.Status != models.DocumentDraft {
		t.Errorf("omitted status should default to draft, got %q", first.Status)
	}

	if entries := activity.List(1); entries[0].Action != "document.created" {
		t.Errorf("expected document.created, got %q", entries[0].Action)
	}
}

func TestDocumentList_Filter(t *testing.T) {
	activity := NewActivityLogService(nil)
	docs := NewDocumentService(nil, activity)

	docs.Create(testActor(), CreateDocumentRequest{
		Title: "Printer repair act", Type: models.DocumentRepair,
		EquipmentName: "HP LaserJet",
	})
	docs.Create(testActor(), CreateDocumentRequest{
		Title: "Server maintenance act", Type: models.DocumentMaintenance,
		Status: models.DocumentActive,
	})

	got := docs.List(DocumentFilter{Type: models.DocumentRepair})
	if len(got) != 1 || got[0].Title != "Printer repair act" {
		t.Errorf("type filter failed: %+v", got)
	}

	got = docs.List(DocumentFilter{Search: "laserjet"})
	if len(got) != 1 {
		t.Errorf("search should match equipment name, got %d results", len(got))
	}

	got = docs.List(DocumentFilter{Status: models.DocumentActive})
	if len(got) != 1 || got[0].Title != "Server maintenance act" {
		t.Errorf("status filter failed: %+v", got)
	}
}

func TestDocumentUpdateDelete(t *testing.T) {
	activity := NewActivityLogService(nil)
	docs := NewDocumentService(nil, activity)

	doc := docs.Create(testActor(), CreateDocumentRequest{
		Title: "Printer repair act", Type: models.DocumentRepair,
	})

	status := models.DocumentArchived
	updated, err := docs.Update(testActor(), doc.ID, DocumentPatch{Status: &status})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != models.DocumentArchived {
		t.Errorf("expected archived, got %q", updated.Status)
	}
	if updated.Number != doc.Number {
		t.Error("update must not change the document number")
	}

	if err := docs.Delete(testActor(), doc.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := docs.Get(doc.ID); ok {
		t.Error("deleted document should be gone")
	}
	if err := docs.Delete(testActor(), doc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
