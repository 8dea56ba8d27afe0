package routes

import (
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"
	v1 "jobmatch/internal/delivery/http/routes/v1"
	"jobmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	v1     v1.Handlers
	ws     *ws.Handler
	auth   *middleware.AuthMiddleware
}

func NewRegistry(health *handler.HealthHandler, handlers v1.Handlers, wsHandler *ws.Handler, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{health: health, v1: handlers, ws: wsHandler, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1, r.auth.Middleware())
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws == nil {
		return
	}
	r.ws.RegisterRoutes(app, r.auth.WithQueryToken().Middleware())
}
