package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/namosistemos/namosite/app/controllers"
	"github.com/namosistemos/namosite/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max: 120,
	}))

	h.registerPublicRoutes(api)
	h.registerAuthRoutes(api)
	h.registerAdminRoutes(api)
}

// registerPublicRoutes wires the read-only catalog endpoints the landing page
// renders from, plus the one public write: lead submission.
func (h ApiRouter) registerPublicRoutes(api fiber.Router) {
	api.Get("/plans", controllers.HandleGetPlans)
	api.Get("/options", controllers.HandleGetOptions)
	api.Get("/features", controllers.HandleGetFeatures)
	api.Get("/site-content", controllers.HandleGetSiteContent)
	api.Get("/content-blocks", controllers.HandleGetContentBlocks)
	api.Get("/menu-links", controllers.HandleGetMenuLinks)
	api.Get("/footer-links", controllers.HandleGetFooterLinks)
	api.Get("/seo-settings", controllers.HandleGetSeoSettings)
	api.Get("/particles-settings", controllers.HandleGetParticlesSettings)
	api.Get("/pages/:slug", controllers.HandleGetPageBySlug)

	api.Post("/leads", controllers.HandleCreateLead)
}

func (h ApiRouter) registerAuthRoutes(api fiber.Router) {
	authGroup := api.Group("/auth")
	authGroup.Post("/login", controllers.HandleLogin)
	authGroup.Post("/logout", controllers.HandleLogout)
	authGroup.Get("/user", controllers.HandleGetAuthUser)
}

func (h ApiRouter) registerAdminRoutes(api fiber.Router) {
	adminGroup := api.Group("/admin", middleware.RequireAdminAPI)

	// Plans and their option-group visibility
	adminGroup.Get("/plans", controllers.HandleAdminGetPlans)
	adminGroup.Post("/plans", controllers.HandleAdminCreatePlan)
	adminGroup.Patch("/plans/:id", controllers.HandleAdminUpdatePlan)
	adminGroup.Delete("/plans/:id", controllers.HandleAdminDeletePlan)
	adminGroup.Get("/plan-option-groups/:planId", controllers.HandleAdminGetPlanOptionGroups)
	adminGroup.Put("/plan-option-groups/:planId", controllers.HandleAdminReplacePlanOptionGroups)

	// Configurator catalog
	adminGroup.Get("/option-groups", controllers.HandleAdminGetOptionGroups)
	adminGroup.Post("/option-groups", controllers.HandleAdminCreateOptionGroup)
	adminGroup.Patch("/option-groups/:id", controllers.HandleAdminUpdateOptionGroup)
	adminGroup.Delete("/option-groups/:id", controllers.HandleAdminDeleteOptionGroup)
	adminGroup.Get("/options", controllers.HandleAdminGetOptions)
	adminGroup.Post("/options", controllers.HandleAdminCreateOption)
	adminGroup.Patch("/options/:id", controllers.HandleAdminUpdateOption)
	adminGroup.Delete("/options/:id", controllers.HandleAdminDeleteOption)

	// Comparison table
	adminGroup.Get("/feature-groups", controllers.HandleAdminGetFeatureGroups)
	adminGroup.Post("/feature-groups", controllers.HandleAdminCreateFeatureGroup)
	adminGroup.Patch("/feature-groups/:id", controllers.HandleAdminUpdateFeatureGroup)
	adminGroup.Delete("/feature-groups/:id", controllers.HandleAdminDeleteFeatureGroup)
	adminGroup.Get("/features", controllers.HandleAdminGetFeatures)
	adminGroup.Post("/features", controllers.HandleAdminCreateFeature)
	adminGroup.Patch("/features/:id", controllers.HandleAdminUpdateFeature)
	adminGroup.Delete("/features/:id", controllers.HandleAdminDeleteFeature)
	adminGroup.Get("/plan-features", controllers.HandleAdminGetPlanFeatures)
	adminGroup.Post("/plan-features/batch", controllers.HandleAdminBatchUpsertPlanFeatures)
	adminGroup.Delete("/plan-features/:featureId/:planId", controllers.HandleAdminDeletePlanFeature)

	// Site content
	adminGroup.Get("/site-content", controllers.HandleAdminGetSiteContent)
	adminGroup.Put("/site-content/:key", controllers.HandleAdminUpsertSiteContent)
	adminGroup.Get("/content-blocks", controllers.HandleAdminGetContentBlocks)
	adminGroup.Post("/content-blocks", controllers.HandleAdminCreateContentBlock)
	adminGroup.Patch("/content-blocks/:id", controllers.HandleAdminUpdateContentBlock)
	adminGroup.Delete("/content-blocks/:id", controllers.HandleAdminDeleteContentBlock)

	// Navigation
	adminGroup.Get("/menu-links", controllers.HandleAdminGetMenuLinks)
	adminGroup.Post("/menu-links", controllers.HandleAdminCreateMenuLink)
	adminGroup.Patch("/menu-links/:id", controllers.HandleAdminUpdateMenuLink)
	adminGroup.Delete("/menu-links/:id", controllers.HandleAdminDeleteMenuLink)
	adminGroup.Get("/footer-links", controllers.HandleAdminGetFooterLinks)
	adminGroup.Post("/footer-links", controllers.HandleAdminCreateFooterLink)
	adminGroup.Patch("/footer-links/:id", controllers.HandleAdminUpdateFooterLink)
	adminGroup.Delete("/footer-links/:id", controllers.HandleAdminDeleteFooterLink)

	// Custom pages
	adminGroup.Get("/pages", controllers.HandleAdminGetPages)
	adminGroup.Get("/pages/:id", controllers.HandleAdminGetPage)
	adminGroup.Post("/pages", controllers.HandleAdminCreatePage)
	adminGroup.Patch("/pages/:id", controllers.HandleAdminUpdatePage)
	adminGroup.Delete("/pages/:id", controllers.HandleAdminDeletePage)

	// Captured leads (read only)
	adminGroup.Get("/leads", controllers.HandleAdminGetLeads)
	adminGroup.Get("/leads/:id", controllers.HandleAdminGetLead)

	// Settings
	adminGroup.Get("/seo-settings", controllers.HandleAdminGetSeoSettings)
	adminGroup.Put("/seo-settings", controllers.HandleAdminUpdateSeoSettings)
	adminGroup.Get("/particles-settings", controllers.HandleAdminGetParticlesSettings)
	adminGroup.Put("/particles-settings", controllers.HandleAdminUpdateParticlesSettings)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
