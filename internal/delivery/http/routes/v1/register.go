package v1

import (
	"jobmatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Match           *handler.MatchHandler
	Recommendations *handler.JobRecommendationHandler
	Preferences     *handler.PreferencesHandler
}

// Register mounts every v1 route behind auth.
func Register(r fiber.Router, h Handlers, auth fiber.Handler) {
	if r == nil {
		return
	}

	protected := r.Group("", auth)
	RegisterJobs(protected, h.Match, h.Recommendations)
	RegisterUsers(protected, h.Preferences)
}
