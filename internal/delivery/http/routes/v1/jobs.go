package v1

import (
	"jobmatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, matchHandler *handler.MatchHandler, recommendationHandler *handler.JobRecommendationHandler) {
	if r == nil {
		return
	}

	if recommendationHandler != nil {
		recommendationHandler.RegisterRoutes(r)
	}
	if matchHandler != nil {
		matchHandler.RegisterRoutes(r)
	}
}
