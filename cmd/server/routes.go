package main

import (
	"github.com/gin-gonic/gin"
	"github.com/medin/helpdesk/internal/config"
	"github.com/medin/helpdesk/internal/middleware"
	"github.com/medin/helpdesk/internal/models"
)

// registerRoutes sets up all HTTP routes on the given Gin engine. Every /api
// route behind the session middleware runs with a resolved acting user; write
// routes are additionally gated per module and action.
func registerRoutes(r *gin.Engine, cfg *config.Config, svc *appServices) {
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "helpdesk"})
	})

	api := r.Group("/api")
	{
		// Login is the only route outside the session: it establishes one.
		api.POST("/auth/login", svc.authHandler.Login)

		session := api.Group("")
		session.Use(middleware.Session(cfg.Session.DefaultUserID, svc.users), middleware.RequireUser())
		{
			session.POST("/auth/logout", svc.authHandler.Logout)
			session.GET("/auth/me", svc.authHandler.Me)
			session.GET("/navigation", svc.navigationHandler.Get)

			// Admin module: roles, users, activity log, settings
			adminView := session.Group("", middleware.RequirePermission(svc.perms, models.ModuleAdmin, models.ActionView))
			{
				adminView.GET("/roles", svc.roleHandler.List)
				adminView.GET("/roles/:id", svc.roleHandler.Get)
				adminView.GET("/users", svc.userHandler.List)
				adminView.GET("/users/:id", svc.userHandler.Get)
				adminView.GET("/activity", svc.activityHandler.List)
				adminView.GET("/activity/labels", svc.activityHandler.Labels)
				adminView.GET("/settings", svc.settingsHandler.Get)
			}

			adminCreate := session.Group("", middleware.RequirePermission(svc.perms, models.ModuleAdmin, models.ActionCreate))
			{
				adminCreate.POST("/roles", svc.roleHandler.Create)
				adminCreate.POST("/users", svc.userHandler.Create)
			}

			adminEdit := session.Group("", middleware.RequirePermission(svc.perms, models.ModuleAdmin, models.ActionEdit))
			{
				adminEdit.PUT("/roles/:id", svc.roleHandler.Update)
				adminEdit.PUT("/users/:id", svc.userHandler.Update)
				adminEdit.PUT("/settings", svc.settingsHandler.Update)
			}

			adminDelete := session.Group("", middleware.RequirePermission(svc.perms, models.ModuleAdmin, models.ActionDelete))
			{
				adminDelete.DELETE("/roles/:id", svc.roleHandler.Delete)
				adminDelete.DELETE("/users/:id", svc.userHandler.Delete)
			}

			registerModuleRoutes(session, svc)
		}
	}
}

// registerModuleRoutes wires the functional modules. Each follows the same
// shape: view gates reads, create/edit/delete gate the matching writes.
func registerModuleRoutes(session *gin.RouterGroup, svc *appServices) {
	// Tickets
	ticketView := session.Group("", middleware.RequirePermission(svc.perms, models.ModuleTickets, models.ActionView))
	{
		ticketView.GET("/tickets", svc.ticketHandler.List)
		ticketView.GET("/tickets/stats", svc.ticketHandler.Stats)
		ticketView.GET("/tickets/:id", svc.ticketHandler.Get)
	}
	ticketCreate := session.Group("", middleware.RequirePermission(svc.perms, models.ModuleTickets, models.ActionCreate))
	{
		ticketCreate.POST("/tickets", svc.ticketHandler.Create)
		ticketCreate.POST("/tickets/:id/comments", svc.ticketHandler.AddComment)
	}
	ticketEdit := session.Group("", middleware.RequirePermission(svc.perms, models.ModuleTickets, models.ActionEdit))
	{
		ticketEdit.PUT("/tickets/:id", svc.ticketHandler.Update)
		ticketEdit.PUT("/tickets/:id/status", svc.ticketHandler.ChangeStatus)
		ticketEdit.PUT("/tickets/:id/assign", svc.ticketHandler.Assign)
	}
	session.DELETE("/tickets/:id",
		middleware.RequirePermission(svc.perms, models.ModuleTickets, models.ActionDelete),
		svc.ticketHandler.Delete)

	// Documents
	docView := session.Group("", middleware.RequirePermission(svc.perms, models.ModuleDocuments, models.ActionView))
	{
		docView.GET("/documents", svc.documentHandler.List)
		docView.GET("/documents/:id", svc.documentHandler.Get)
	}
	session.POST("/documents",
		middleware.RequirePermission(svc.perms, models.ModuleDocuments, models.ActionCreate),
		svc.documentHandler.Create)
	session.PUT("/documents/:id",
		middleware.RequirePermission(svc.perms, models.ModuleDocuments, models.ActionEdit),
		svc.documentHandler.Update)
	session.DELETE("/documents/:id",
		middleware.RequirePermission(svc.perms, models.ModuleDocuments, models.ActionDelete),
		svc.documentHandler.Delete)

	// Inventory
	invView := session.Group("", middleware.RequirePermission(svc.perms, models.ModuleInventory, models.ActionView))
	{
		invView.GET("/inventory", svc.inventoryHandler.List)
		invView.GET("/inventory/low-stock", svc.inventoryHandler.LowStock)
		invView.GET("/inventory/movements", svc.inventoryHandler.Movements)
		invView.GET("/inventory/:id", svc.inventoryHandler.Get)
	}
	invEdit := session.Group("", middleware.RequirePermission(svc.perms, models.ModuleInventory, models.ActionEdit))
	{
		invEdit.PUT("/inventory/:id", svc.inventoryHandler.Update)
		invEdit.POST("/inventory/:id/movements", svc.inventoryHandler.Move)
	}
	session.POST("/inventory",
		middleware.RequirePermission(svc.perms, models.ModuleInventory, models.ActionCreate),
		svc.inventoryHandler.Create)
	session.DELETE("/inventory/:id",
		middleware.RequirePermission(svc.perms, models.ModuleInventory, models.ActionDelete),
		svc.inventoryHandler.Delete)

	// Knowledge base
	kbView := session.Group("", middleware.RequirePermission(svc.perms, models.ModuleKnowledge, models.ActionView))
	{
		kbView.GET("/knowledge", svc.knowledgeHandler.List)
		kbView.GET("/knowledge/:id", svc.knowledgeHandler.Get)
		kbView.POST("/knowledge/:id/rate", svc.knowledgeHandler.Rate)
	}
	session.POST("/knowledge",
		middleware.RequirePermission(svc.perms, models.ModuleKnowledge, models.ActionCreate),
		svc.knowledgeHandler.Create)
	session.PUT("/knowledge/:id",
		middleware.RequirePermission(svc.perms, models.ModuleKnowledge, models.ActionEdit),
		svc.knowledgeHandler.Update)
	session.DELETE("/knowledge/:id",
		middleware.RequirePermission(svc.perms, models.ModuleKnowledge, models.ActionDelete),
		svc.knowledgeHandler.Delete)
}
