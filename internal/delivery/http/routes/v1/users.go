package v1

import (
	"jobmatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterUsers(r fiber.Router, preferencesHandler *handler.PreferencesHandler) {
	if r == nil {
		return
	}
	if preferencesHandler == nil {
		return
	}

	preferencesHandler.RegisterRoutes(r)
}
