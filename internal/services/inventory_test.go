package services

import (
	"errors"
	"testing"

	"github.com/medin/helpdesk/internal/models"
)

func newInventoryFixture(t *testing.T) (*InventoryService, *ActivityLogService) {
	t.Helper()
	activity := NewActivityLogService(nil)
	inv := NewInventoryService(nil, activity)
	return inv, activity
}

func createTestItem(t *testing.T, inv *InventoryService, quantity, minQuantity int) models.InventoryItem {
	t.Helper()
	return inv.Create(testActor(), CreateInventoryItemRequest{
		SKU:         "TON-001",
		Name:        "Toner cartridge",
		Category:    models.InventoryConsumables,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		Unit:        models.UnitPieces,
	})
}

func TestInventoryMove_AdjustsQuantity(t *testing.T) {
	inv, activity := newInventoryFixture(t)
	item := createTestItem(t, inv, 10, 2)

	if _, err := inv.Move(testActor(), item.ID, MovementRequest{
		Type: models.MovementIn, Quantity: 5, Reason: "Delivery",
	}); err != nil {
		t.Fatalf("Move in returned error: %v", err)
	}
	got, _ := inv.Get(item.ID)
	if got.Quantity != 15 {
		t.Errorf("expected quantity 15 after inbound move, got %d", got.Quantity)
	}

	if _, err := inv.Move(testActor(), item.ID, MovementRequest{
		Type: models.MovementOut, Quantity: 7, Reason: "Issued for ticket",
	}); err != nil {
		t.Fatalf("Move out returned error: %v", err)
	}
	got, _ = inv.Get(item.ID)
	if got.Quantity != 8 {
		t.Errorf("expected quantity 8 after outbound move, got %d", got.Quantity)
	}

	if entries := activity.List(1); entries[0].Action != "inventory.movement" {
		t.Errorf("expected inventory.movement, got %q", entries[0].Action)
	}
}

func TestInventoryMove_InsufficientStock(t *testing.T) {
	inv, _ := newInventoryFixture(t)
	item := createTestItem(t, inv, 3, 1)

	_, err := inv.Move(testActor(), item.ID, MovementRequest{
		Type: models.MovementOut, Quantity: 5, Reason: "Too many",
	})
	if err == nil {
		t.Fatal("outbound move beyond stock should fail")
	}

	got, _ := inv.Get(item.ID)
	if got.Quantity != 3 {
		t.Errorf("failed move must not change stock, got %d", got.Quantity)
	}
	if len(inv.Movements(item.ID)) != 0 {
		t.Error("failed move must not be recorded")
	}
}

func TestInventoryMove_UnknownItem(t *testing.T) {
	inv, _ := newInventoryFixture(t)

	_, err := inv.Move(testActor(), "ghost", MovementRequest{
		Type: models.MovementIn, Quantity: 1, Reason: "x",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestInventoryMovements_FilterByItem(t *testing.T) {
	inv, _ := newInventoryFixture(t)
	a := createTestItem(t, inv, 10, 2)
	b := inv.Create(testActor(), CreateInventoryItemRequest{
		SKU: "CBL-001", Name: "Patch cable", Category: models.InventorySpareParts,
		Quantity: 20, Unit: models.UnitPieces,
	})

	inv.Move(testActor(), a.ID, MovementRequest{Type: models.MovementIn, Quantity: 1, Reason: "r1"})
	inv.Move(testActor(), b.ID, MovementRequest{Type: models.MovementIn, Quantity: 2, Reason: "r2"})
	inv.Move(testActor(), a.ID, MovementRequest{Type: models.MovementOut, Quantity: 3, Reason: "r3"})

	all := inv.Movements("")
	if len(all) != 3 {
		t.Fatalf("expected 3 movements, got %d", len(all))
	}
	if all[0].Reason != "r3" {
		t.Errorf("movements should be newest first, got %q", all[0].Reason)
	}

	forA := inv.Movements(a.ID)
	if len(forA) != 2 {
		t.Errorf("expected 2 movements for item, got %d", len(forA))
	}
}

func TestInventoryLowStock(t *testing.T) {
	inv, _ := newInventoryFixture(t)
	low := createTestItem(t, inv, 2, 5)
	atMin := inv.Create(testActor(), CreateInventoryItemRequest{
		SKU: "CBL-001", Name: "Patch cable", Category: models.InventorySpareParts,
		Quantity: 5, MinQuantity: 5, Unit: models.UnitPieces,
	})
	inv.Create(testActor(), CreateInventoryItemRequest{
		SKU: "MSE-001", Name: "Mouse", Category: models.InventoryEquipment,
		Quantity: 30, MinQuantity: 5, Unit: models.UnitPieces,
	})

	got := inv.LowStock()
	if len(got) != 2 {
		t.Fatalf("expected 2 low-stock items, got %d", len(got))
	}
	ids := map[string]bool{got[0].ID: true, got[1].ID: true}
	if !ids[low.ID] || !ids[atMin.ID] {
		t.Error("low stock should include items at and below the minimum")
	}
}

func TestInventoryUpdate_CannotPatchQuantity(t *testing.T) {
	inv, _ := newInventoryFixture(t)
	item := createTestItem(t, inv, 10, 2)

	name := "Toner cartridge XL"
	updated, err := inv.Update(testActor(), item.ID, InventoryItemPatch{Name: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != name {
		t.Errorf("expected renamed item, got %q", updated.Name)
	}
	if updated.Quantity != 10 {
		t.Errorf("update must not change stock, got %d", updated.Quantity)
	}
}
