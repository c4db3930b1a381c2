package models

import "time"

type DocumentType string

const (
	DocumentAct         DocumentType = "act"
	DocumentRepair      DocumentType = "repair"
	DocumentMaintenance DocumentType = "maintenance"
	DocumentInventory   DocumentType = "inventory"
	DocumentOther       DocumentType = "other"
)

type DocumentStatus string

const (
	DocumentDraft    DocumentStatus = "draft"
	DocumentActive   DocumentStatus = "active"
	DocumentArchived DocumentStatus = "archived"
)

// Document is an equipment record (repair act, maintenance report, etc).
type Document struct {
	ID                string         `json:"id"`
	Number            string         `json:"number"`
	Title             string         `json:"title"`
	Type              DocumentType   `json:"type"`
	Status            DocumentStatus `json:"status"`
	Description       string         `json:"description"`
	EquipmentName     string         `json:"equipment_name,omitempty"`
	EquipmentLocation string         `json:"equipment_location,omitempty"`
	RepairDate        *time.Time     `json:"repair_date,omitempty"`
	RepairCost        float64        `json:"repair_cost,omitempty"`
	PartsUsed         []string       `json:"parts_used,omitempty"`
	FileName          string         `json:"file_name,omitempty"`
	AuthorID          string         `json:"author_id"`
	AuthorName        string         `json:"author_name"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
