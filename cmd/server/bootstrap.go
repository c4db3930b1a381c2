package main

import (
	"github.com/medin/helpdesk/internal/config"
	"github.com/medin/helpdesk/internal/handlers"
	"github.com/medin/helpdesk/internal/models"
	"github.com/medin/helpdesk/internal/services"
	"github.com/medin/helpdesk/internal/utils"
	"github.com/medin/helpdesk/pkg/logger"
)

// appServices holds all initialized services and handlers. State lives in
// memory only: every start re-seeds from the static defaults.
type appServices struct {
	activity  *services.ActivityLogService
	roles     *services.RoleService
	users     *services.UserService
	perms     *services.PermissionService
	settings  *services.SettingsService
	tickets   *services.TicketService
	documents *services.DocumentService
	inventory *services.InventoryService
	knowledge *services.KnowledgeService

	authHandler       *handlers.AuthHandler
	navigationHandler *handlers.NavigationHandler
	roleHandler       *handlers.RoleHandler
	userHandler       *handlers.UserHandler
	activityHandler   *handlers.ActivityHandler
	settingsHandler   *handlers.SettingsHandler
	ticketHandler     *handlers.TicketHandler
	documentHandler   *handlers.DocumentHandler
	inventoryHandler  *handlers.InventoryHandler
	knowledgeHandler  *handlers.KnowledgeHandler
}

// bootstrap wires services to their seed data and handlers to services.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	activity := services.NewActivityLogService(models.SeedActivity())
	roles := services.NewRoleService(models.DefaultRoles(), activity)
	users := services.NewUserService(models.SeedUsers(), activity)
	perms := services.NewPermissionService(roles, users)
	settings := services.NewSettingsService(models.DefaultSettings(), activity)
	tickets := services.NewTicketService(models.SeedTickets(), activity)
	documents := services.NewDocumentService(models.SeedDocuments(), activity)
	inventory := services.NewInventoryService(models.SeedInventory(), activity)
	knowledge := services.NewKnowledgeService(models.SeedGuides(), activity)

	logger.Info().
		Int("roles", len(roles.List())).
		Int("users", len(users.List())).
		Int("activity", activity.Len()).
		Msg("in-memory state seeded")

	return &appServices{
		activity:  activity,
		roles:     roles,
		users:     users,
		perms:     perms,
		settings:  settings,
		tickets:   tickets,
		documents: documents,
		inventory: inventory,
		knowledge: knowledge,

		authHandler:       handlers.NewAuthHandler(users, perms, activity, &cfg.JWT),
		navigationHandler: handlers.NewNavigationHandler(perms),
		roleHandler:       handlers.NewRoleHandler(roles),
		userHandler:       handlers.NewUserHandler(users),
		activityHandler:   handlers.NewActivityHandler(activity),
		settingsHandler:   handlers.NewSettingsHandler(settings),
		ticketHandler:     handlers.NewTicketHandler(tickets, users),
		documentHandler:   handlers.NewDocumentHandler(documents),
		inventoryHandler:  handlers.NewInventoryHandler(inventory),
		knowledgeHandler:  handlers.NewKnowledgeHandler(knowledge),
	}
}
