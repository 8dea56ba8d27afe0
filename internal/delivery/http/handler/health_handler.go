package handler

import (
	"context"
	"time"

	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type healthStatus struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// HealthHandler reports database reachability. The cache is informational
// only since recommendations work without it.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	st := healthStatus{Database: probe(ctx, h.db), Cache: probe(ctx, h.cache)}
	if st.Database == "down" {
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, st)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}

func probe(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
