package models

import "time"

// Seed data for a fresh in-memory instance. There is no persistence layer:
// every start begins from these records.

// DefaultRoles returns the four built-in roles. All of them are system
// roles and cannot be deleted; each carries one permission entry per module.
func DefaultRoles() []Role {
	return []Role{
		{
			ID:          "admin",
			Name:        "Administrator",
			Description: "Full access to every module and system settings",
			Color:       "#8B5CF6",
			IsSystem:    true,
			Permissions: []ModulePermission{
				{ModuleID: ModuleKnowledge, CanView: true, CanCreate: true, CanEdit: true, CanDelete: true},
				{ModuleID: ModuleTickets, CanView: true, CanCreate: true, CanEdit: true, CanDelete: true},
				{ModuleID: ModuleDocuments, CanView: true, CanCreate: true, CanEdit: true, CanDelete: true},
				{ModuleID: ModuleInventory, CanView: true, CanCreate: true, CanEdit: true, CanDelete: true},
				{ModuleID: ModuleAdmin, CanView: true, CanCreate: true, CanEdit: true, CanDelete: true},
				{ModuleID: ModuleProfile, CanView: true, CanCreate: true, CanEdit: true, CanDelete: true},
			},
		},
		{
			ID:          "technician",
			Name:        "Technician",
			Description: "Access to tickets, knowledge base and inventory",
			Color:       "#3B82F6",
			IsSystem:    true,
			Permissions: []ModulePermission{
				{ModuleID: ModuleKnowledge, CanView: true, CanCreate: true, CanEdit: true},
				{ModuleID: ModuleTickets, CanView: true, CanCreate: true, CanEdit: true},
				{ModuleID: ModuleDocuments, CanView: true, CanCreate: true, CanEdit: true},
				{ModuleID: ModuleInventory, CanView: true, CanCreate: true, CanEdit: true},
				{ModuleID: ModuleAdmin},
				{ModuleID: ModuleProfile, CanView: true, CanCreate: true, CanEdit: true},
			},
		},
		{
			ID:          "user",
			Name:        "User",
			Description: "Basic access: create tickets, browse the knowledge base",
			Color:       "#10B981",
			IsSystem:    true,
			Permissions: []ModulePermission{
				{ModuleID: ModuleKnowledge, CanView: true},
				{ModuleID: ModuleTickets, CanView: true, CanCreate: true},
				{ModuleID: ModuleDocuments},
				{ModuleID: ModuleInventory},
				{ModuleID: ModuleAdmin},
				{ModuleID: ModuleProfile, CanView: true, CanCreate: true, CanEdit: true},
			},
		},
		{
			ID:          "viewer",
			Name:        "Viewer",
			Description: "Read-only access to tickets and the knowledge base",
			Color:       "#6B7280",
			IsSystem:    true,
			Permissions: []ModulePermission{
				{ModuleID: ModuleKnowledge, CanView: true},
				{ModuleID: ModuleTickets, CanView: true},
				{ModuleID: ModuleDocuments},
				{ModuleID: ModuleInventory},
				{ModuleID: ModuleAdmin},
				{ModuleID: ModuleProfile, CanView: true, CanEdit: true},
			},
		},
	}
}

// DefaultSettings returns the initial system settings record.
func DefaultSettings() SystemSettings {
	return SystemSettings{
		CompanyName:       "Medin",
		DefaultTheme:      ThemeSystem,
		NotificationEmail: "help@medin.ru",
	}
}

// SeedUsers returns the initial user directory.
func SeedUsers() []User {
	return []User{
		{
			ID:         "1",
			Name:       "Ivan Petrov",
			Email:      "ivan@medin.ru",
			RoleID:     "admin",
			Department: "IT Department",
			IsActive:   true,
			CreatedAt:  mustTime("2024-01-01T00:00:00Z"),
			LastLogin:  timePtr(mustTime("2025-02-03T10:30:00Z")),
		},
		{
			ID:         "2",
			Name:       "Maria Sidorova",
			Email:      "maria@medin.ru",
			RoleID:     "user",
			Department: "Reception",
			IsActive:   true,
			CreatedAt:  mustTime("2024-02-15T00:00:00Z"),
			LastLogin:  timePtr(mustTime("2025-02-02T16:45:00Z")),
		},
		{
			ID:         "3",
			Name:       "Alexey Ivanov",
			Email:      "alexey@medin.ru",
			RoleID:     "technician",
			Department: "Technical Department",
			IsActive:   true,
			CreatedAt:  mustTime("2024-03-10T00:00:00Z"),
			LastLogin:  timePtr(mustTime("2025-02-03T09:15:00Z")),
		},
		{
			ID:         "4",
			Name:       "Elena Kozlova",
			Email:      "elena@medin.ru",
			RoleID:     "viewer",
			Department: "Administration",
			IsActive:   false,
			CreatedAt:  mustTime("2024-06-01T00:00:00Z"),
			LastLogin:  timePtr(mustTime("2025-01-20T11:00:00Z")),
		},
	}
}

// SeedActivity returns the initial activity log, newest first.
func SeedActivity() []ActivityEntry {
	return []ActivityEntry{
		{
			ID:         "1",
			UserID:     "1",
			UserName:   "Ivan Petrov",
			Action:     "user.login",
			EntityType: EntityLogin,
			Details:    "Signed in",
			CreatedAt:  mustTime("2025-02-03T10:30:00Z"),
		},
		{
			ID:         "3",
			UserID:     "1",
			UserName:   "Ivan Petrov",
			Action:     "ticket.status_changed",
			EntityType: EntityTicket,
			EntityID:   "2",
			EntityName: "#1002",
			Details:    "Status changed to In Progress",
			CreatedAt:  mustTime("2025-02-01T10:20:00Z"),
		},
		{
			ID:         "2",
			UserID:     "2",
			UserName:   "Maria Sidorova",
			Action:     "ticket.created",
			EntityType: EntityTicket,
			EntityID:   "1",
			EntityName: "#1001",
			Details:    "Ticket created: Printer is not working",
			CreatedAt:  mustTime("2025-02-01T09:30:00Z"),
		},
		{
			ID:         "4",
			UserID:     "3",
			UserName:   "Alexey Ivanov",
			Action:     "inventory.movement",
			EntityType: EntityInventory,
			EntityID:   "1",
			EntityName: "HP 85A cartridge",
			Details:    "Out: 2 pcs, replacement in room 205",
			CreatedAt:  mustTime("2025-01-28T14:00:00Z"),
		},
	}
}

// SeedTickets returns the initial tickets, newest first.
func SeedTickets() []Ticket {
	return []Ticket{
		{
			ID:           "2",
			Number:       "#1002",
			Title:        "Workstation won't boot",
			Description:  "The registration desk PC shows a black screen after power on.",
			Category:     CategoryHardware,
			Priority:     PriorityCritical,
			Status:       TicketInProgress,
			AuthorID:     "2",
			AuthorName:   "Maria Sidorova",
			AssigneeID:   "3",
			AssigneeName: "Alexey Ivanov",
			Comments:     []Comment{},
			CreatedAt:    mustTime("2025-02-01T10:00:00Z"),
			UpdatedAt:    mustTime("2025-02-01T10:20:00Z"),
		},
		{
			ID:          "1",
			Number:      "#1001",
			Title:       "Printer is not working",
			Description: "The printer in room 205 does not pick up paper.",
			Category:    CategoryPrinter,
			Priority:    PriorityHigh,
			Status:      TicketNew,
			AuthorID:    "2",
			AuthorName:  "Maria Sidorova",
			Comments: []Comment{
				{
					ID:         "1",
					AuthorID:   "3",
					AuthorName: "Alexey Ivanov",
					Text:       "Will take a look after lunch.",
					CreatedAt:  mustTime("2025-02-01T11:00:00Z"),
				},
			},
			CreatedAt: mustTime("2025-02-01T09:30:00Z"),
			UpdatedAt: mustTime("2025-02-01T11:00:00Z"),
		},
	}
}

// SeedDocuments returns the initial equipment documents.
func SeedDocuments() []Document {
	repairDate := mustTime("2025-01-15T00:00:00Z")
	return []Document{
		{
			ID:                "1",
			Number:            "ACT-2025-001",
			Title:             "Printer repair act",
			Type:              DocumentRepair,
			Status:            DocumentActive,
			Description:       "Replaced the pickup roller and cleaned the paper path.",
			EquipmentName:     "HP LaserJet Pro M404",
			EquipmentLocation: "Room 205",
			RepairDate:        &repairDate,
			RepairCost:        1200,
			PartsUsed:         []string{"Pickup roller"},
			AuthorID:          "3",
			AuthorName:        "Alexey Ivanov",
			CreatedAt:         mustTime("2025-01-15T15:00:00Z"),
			UpdatedAt:         mustTime("2025-01-15T15:00:00Z"),
		},
	}
}

// SeedInventory returns the initial stock positions.
func SeedInventory() []InventoryItem {
	return []InventoryItem{
		{
			ID:          "1",
			SKU:         "CART-85A",
			Name:        "HP 85A cartridge",
			Category:    InventoryConsumables,
			Description: "Toner cartridge for HP LaserJet printers",
			Quantity:    6,
			MinQuantity: 4,
			Unit:        UnitPieces,
			Location:    "Storage A, shelf 2",
			Supplier:    "OfficeSupply LLC",
			Price:       4500,
			CreatedAt:   mustTime("2024-11-01T00:00:00Z"),
			UpdatedAt:   mustTime("2025-01-28T14:00:00Z"),
		},
		{
			ID:          "2",
			SKU:         "KB-LOG-01",
			Name:        "Logitech K120 keyboard",
			Category:    InventoryEquipment,
			Description: "Wired USB keyboard",
			Quantity:    3,
			MinQuantity: 5,
			Unit:        UnitPieces,
			Location:    "Storage A, shelf 4",
			CreatedAt:   mustTime("2024-11-01T00:00:00Z"),
			UpdatedAt:   mustTime("2024-12-10T00:00:00Z"),
		},
	}
}

// SeedGuides returns the initial knowledge base.
func SeedGuides() []KnowledgeGuide {
	return []KnowledgeGuide{
		{
			ID:          "1",
			Title:       "Printer does not pick up paper",
			Category:    GuidePrinter,
			Description: "Common fixes for paper feed problems.",
			Tags:        []string{"printer", "paper", "feed"},
			Steps: []GuideStep{
				{ID: "1", Order: 1, Title: "Check the tray", Description: "Make sure paper is loaded and the guides sit snug."},
				{ID: "2", Order: 2, Title: "Clean the rollers", Description: "Wipe the pickup rollers with a lint-free cloth."},
				{ID: "3", Order: 3, Title: "Replace the roller", Description: "If the roller surface is glossy, replace it."},
			},
			Views:       128,
			Helpful:     42,
			NotHelpful:  6,
			SuccessRate: 87,
			CreatedAt:   mustTime("2024-10-05T00:00:00Z"),
			UpdatedAt:   mustTime("2025-01-10T00:00:00Z"),
		},
		{
			ID:          "2",
			Title:       "No network connection",
			Category:    GuideNetwork,
			Description: "First steps when a workstation loses the network.",
			Tags:        []string{"network", "cable", "dhcp"},
			Steps: []GuideStep{
				{ID: "1", Order: 1, Title: "Check the cable", Description: "Reseat the patch cable on both ends."},
				{ID: "2", Order: 2, Title: "Restart the adapter", Description: "Disable and re-enable the network adapter."},
			},
			Views:       64,
			Helpful:     20,
			NotHelpful:  5,
			SuccessRate: 80,
			CreatedAt:   mustTime("2024-09-12T00:00:00Z"),
			UpdatedAt:   mustTime("2024-12-01T00:00:00Z"),
		},
	}
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(t time.Time) *time.Time { return &t }
