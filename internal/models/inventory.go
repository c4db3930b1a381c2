package models

import "time"

type InventoryCategory string

const (
	InventorySpareParts  InventoryCategory = "spare_parts"
	InventoryConsumables InventoryCategory = "consumables"
	InventoryEquipment   InventoryCategory = "equipment"
	InventoryTools       InventoryCategory = "tools"
	InventoryOtherGoods  InventoryCategory = "other"
)

type InventoryUnit string

const (
	UnitPieces InventoryUnit = "pcs"
	UnitKg     InventoryUnit = "kg"
	UnitLiters InventoryUnit = "l"
	UnitMeters InventoryUnit = "m"
	UnitBoxes  InventoryUnit = "box"
)

// InventoryItem is one stock position.
type InventoryItem struct {
	ID          string            `json:"id"`
	SKU         string            `json:"sku"`
	Name        string            `json:"name"`
	Category    InventoryCategory `json:"category"`
	Description string            `json:"description"`
	Quantity    int               `json:"quantity"`
	MinQuantity int               `json:"min_quantity"`
	Unit        InventoryUnit     `json:"unit"`
	Location    string            `json:"location"`
	Supplier    string            `json:"supplier,omitempty"`
	Price       float64           `json:"price,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// InventoryMovement records stock going in or out of a position. ItemName
// and author fields are snapshots.
type InventoryMovement struct {
	ID         string       `json:"id"`
	ItemID     string       `json:"item_id"`
	ItemName   string       `json:"item_name"`
	Type       MovementType `json:"type"`
	Quantity   int          `json:"quantity"`
	Reason     string       `json:"reason"`
	TicketID   string       `json:"ticket_id,omitempty"`
	DocumentID string       `json:"document_id,omitempty"`
	AuthorID   string       `json:"author_id"`
	AuthorName string       `json:"author_name"`
	CreatedAt  time.Time    `json:"created_at"`
}
