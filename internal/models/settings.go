package models

// Theme is the default UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// SystemSettings is the single mutable configuration record. Exactly one
// instance exists process-wide; updates are whole-record patch merges.
type SystemSettings struct {
	CompanyName               string `json:"company_name"`
	LogoURL                   string `json:"logo_url,omitempty"`
	DefaultTheme              Theme  `json:"default_theme"`
	AllowUserRegistration     bool   `json:"allow_user_registration"`
	RequireApprovalForTickets bool   `json:"require_approval_for_tickets"`
	NotificationEmail         string `json:"notification_email,omitempty"`
	MaintenanceMode           bool   `json:"maintenance_mode"`
}
