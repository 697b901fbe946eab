package router

import (
	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/namosistemos/namosite/app/controllers"
	"github.com/namosistemos/namosite/app/repository"
	"github.com/namosistemos/namosite/internal/pkg/database"
	"github.com/namosistemos/namosite/internal/pkg/middleware"
	"github.com/namosistemos/namosite/internal/pkg/oauth"
	"github.com/namosistemos/namosite/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Initialize repositories for the controllers
	repository.InitializeFactory(database.GetDB())

	// Apply AdminContext middleware globally as first middleware
	app.Use(middleware.AdminContextMiddleware)

	h.registerPublicRoutes(app)
}

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Crawler documents
	app.Get("/sitemap.xml", controllers.HandleSitemap)
	app.Get("/robots.txt", controllers.HandleRobots)

	// Delegated admin login (only the configured provider is registered).
	// The logout route must come first or :provider would swallow it.
	app.Get("/auth/logout", controllers.HandleOAuthLogout)
	app.Get("/auth/:provider", gothfiber.BeginAuthHandler)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
