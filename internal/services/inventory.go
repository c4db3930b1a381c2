package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/medin/helpdesk/internal/models"
)

// InventoryService manages stock positions and their movements.
type InventoryService struct {
	mu        sync.RWMutex
	items     []models.InventoryItem
	movements []models.InventoryMovement
	activity  *ActivityLogService
}

func NewInventoryService(seed []models.InventoryItem, activity *ActivityLogService) *InventoryService {
	items := make([]models.InventoryItem, len(seed))
	copy(items, seed)
	return &InventoryService{items: items, activity: activity}
}

// List returns all items, optionally narrowed to one category.
func (s *InventoryService) List(category models.InventoryCategory) []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.InventoryItem, 0, len(s.items))
	for _, it := range s.items {
		if category != "" && it.Category != category {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (s *InventoryService) Get(id string) (models.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.InventoryItem{}, false
}

// LowStock returns items at or below their minimum quantity.
func (s *InventoryService) LowStock() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.InventoryItem, 0)
	for _, it := range s.items {
		if it.Quantity <= it.MinQuantity {
			out = append(out, it)
		}
	}
	return out
}

type CreateInventoryItemRequest struct {
	SKU         string                   `json:"sku" binding:"required"`
	Name        string                   `json:"name" binding:"required"`
	Category    models.InventoryCategory `json:"category" binding:"required"`
	Description string                   `json:"description"`
	Quantity    int                      `json:"quantity"`
	MinQuantity int                      `json:"min_quantity"`
	Unit        models.InventoryUnit     `json:"unit" binding:"required"`
	Location    string                   `json:"location"`
	Supplier    string                   `json:"supplier"`
	Price       float64                  `json:"price"`
}

func (s *InventoryService) Create(actor Actor, req CreateInventoryItemRequest) models.InventoryItem {
	now := time.Now()
	item := models.InventoryItem{
		ID:          uuid.NewString(),
		SKU:         req.SKU,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Unit:        req.Unit,
		Location:    req.Location,
		Supplier:    req.Supplier,
		Price:       req.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.activity.Append(actor, "inventory.created", models.EntityInventory, item.ID, item.Name,
		"Inventory item added: "+item.Name)
	s.mu.Unlock()
	return item
}

// InventoryItemPatch carries a partial update; nil fields are preserved.
// Quantity is deliberately absent — stock levels change only through
// movements.
type InventoryItemPatch struct {
	SKU         *string                   `json:"sku"`
	Name        *string                   `json:"name"`
	Category    *models.InventoryCategory `json:"category"`
	Description *string                   `json:"description"`
	MinQuantity *int                      `json:"min_quantity"`
	Unit        *models.InventoryUnit     `json:"unit"`
	Location    *string                   `json:"location"`
	Supplier    *string                   `json:"supplier"`
	Price       *float64                  `json:"price"`
}

func (s *InventoryService) Update(actor Actor, id string, patch InventoryItemPatch) (models.InventoryItem, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.InventoryItem{}, ErrNotFound
	}

	it := &s.items[idx]
	if patch.SKU != nil {
		it.SKU = *patch.SKU
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Category != nil {
		it.Category = *patch.Category
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.MinQuantity != nil {
		it.MinQuantity = *patch.MinQuantity
	}
	if patch.Unit != nil {
		it.Unit = *patch.Unit
	}
	if patch.Location != nil {
		it.Location = *patch.Location
	}
	if patch.Supplier != nil {
		it.Supplier = *patch.Supplier
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	it.UpdatedAt = time.Now()
	updated := *it
	s.activity.Append(actor, "inventory.updated", models.EntityInventory, updated.ID, updated.Name,
		"Inventory item updated: "+updated.Name)
	s.mu.Unlock()
	return updated, nil
}

func (s *InventoryService) Delete(actor Actor, id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	name := s.items[idx].Name
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.activity.Append(actor, "inventory.deleted", models.EntityInventory, id, name,
		"Inventory item deleted: "+name)
	s.mu.Unlock()
	return nil
}

type MovementRequest struct {
	Type       models.MovementType `json:"type" binding:"required"`
	Quantity   int                 `json:"quantity" binding:"required,min=1"`
	Reason     string              `json:"reason" binding:"required"`
	TicketID   string              `json:"ticket_id"`
	DocumentID string              `json:"document_id"`
}

// Move records stock going in or out and adjusts the item quantity. An
// outgoing quantity larger than the stock on hand is rejected.
func (s *InventoryService) Move(actor Actor, itemID string, req MovementRequest) (models.InventoryMovement, error) {
	s.mu.Lock()
	idx := s.indexOf(itemID)
	if idx < 0 {
		s.mu.Unlock()
		return models.InventoryMovement{}, ErrNotFound
	}

	it := &s.items[idx]
	switch req.Type {
	case models.MovementIn:
		it.Quantity += req.Quantity
	case models.MovementOut:
		if req.Quantity > it.Quantity {
			s.mu.Unlock()
			return models.InventoryMovement{}, fmt.Errorf("insufficient stock: %d on hand, %d requested", it.Quantity, req.Quantity)
		}
		it.Quantity -= req.Quantity
	default:
		s.mu.Unlock()
		return models.InventoryMovement{}, fmt.Errorf("unknown movement type %q", req.Type)
	}
	it.UpdatedAt = time.Now()

	movement := models.InventoryMovement{
		ID:         uuid.NewString(),
		ItemID:     it.ID,
		ItemName:   it.Name,
		Type:       req.Type,
		Quantity:   req.Quantity,
		Reason:     req.Reason,
		TicketID:   req.TicketID,
		DocumentID: req.DocumentID,
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		CreatedAt:  it.UpdatedAt,
	}
	s.movements = append([]models.InventoryMovement{movement}, s.movements...)
	direction := "In"
	if req.Type == models.MovementOut {
		direction = "Out"
	}
	s.activity.Append(actor, "inventory.movement", models.EntityInventory, movement.ItemID, it.Name,
		fmt.Sprintf("%s: %d, %s", direction, req.Quantity, req.Reason))
	s.mu.Unlock()
	return movement, nil
}

// Movements returns recorded movements newest first, optionally for one item.
func (s *InventoryService) Movements(itemID string) []models.InventoryMovement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.InventoryMovement, 0)
	for _, m := range s.movements {
		if itemID != "" && m.ItemID != itemID {
			continue
		}
		out = append(out, m)
	}
	return out
}

// indexOf must be called with the lock held.
func (s *InventoryService) indexOf(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
