package services

import (
	"sync"

	"github.com/medin/helpdesk/internal/models"
)

// SettingsService holds the single mutable system settings record.
type SettingsService struct {
	mu       sync.RWMutex
	settings models.SystemSettings
	activity *ActivityLogService
}

func NewSettingsService(initial models.SystemSettings, activity *ActivityLogService) *SettingsService {
	return &SettingsService{settings: initial, activity: activity}
}

// Get returns the current settings.
func (s *SettingsService) Get() models.SystemSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SettingsPatch carries a partial update; nil fields are preserved.
type SettingsPatch struct {
	CompanyName               *string       `json:"company_name"`
	LogoURL                   *string       `json:"logo_url"`
	DefaultTheme              *models.Theme `json:"default_theme"`
	AllowUserRegistration     *bool         `json:"allow_user_registration"`
	RequireApprovalForTickets *bool         `json:"require_approval_for_tickets"`
	NotificationEmail         *string       `json:"notification_email"`
	MaintenanceMode           *bool         `json:"maintenance_mode"`
}

// Update merges patch into the record. Exactly one settings.updated entry is
// recorded per call, regardless of how many fields changed.
func (s *SettingsService) Update(actor Actor, patch SettingsPatch) models.SystemSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.CompanyName != nil {
		s.settings.CompanyName = *patch.CompanyName
	}
	if patch.LogoURL != nil {
		s.settings.LogoURL = *patch.LogoURL
	}
	if patch.DefaultTheme != nil {
		s.settings.DefaultTheme = *patch.DefaultTheme
	}
	if patch.AllowUserRegistration != nil {
		s.settings.AllowUserRegistration = *patch.AllowUserRegistration
	}
	if patch.RequireApprovalForTickets != nil {
		s.settings.RequireApprovalForTickets = *patch.RequireApprovalForTickets
	}
	if patch.NotificationEmail != nil {
		s.settings.NotificationEmail = *patch.NotificationEmail
	}
	if patch.MaintenanceMode != nil {
		s.settings.MaintenanceMode = *patch.MaintenanceMode
	}
	updated := s.settings
	s.activity.Append(actor, "settings.updated", models.EntitySettings, "", "", "System settings updated")
	return updated
}
