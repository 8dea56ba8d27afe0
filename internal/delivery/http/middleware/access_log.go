package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxRequestIDKey = "request_id"

	headerRequestID = "X-Request-ID"
)

// AccessLogMiddleware writes one line per request. It runs before auth, so
// the caller's user_id is read from Locals after the chain returns.
type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := strings.TrimSpace(c.Get(headerRequestID))
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(headerRequestID, rid)
		c.Locals(CtxRequestIDKey, rid)

		err := c.Next()

		if m == nil || m.logger == nil {
			return err
		}

		route := c.Route().Path
		m.logger.Printf(
			"[HTTP] access | rid=%s user_id=%s method=%s route=%s kind=%s path=%s status=%d latency=%s ip=%s resp_bytes=%d",
			rid,
			userIDString(c),
			c.Method(),
			route,
			routeKind(c.Path()),
			c.OriginalURL(),
			c.Response().StatusCode(),
			time.Since(start),
			c.IP(),
			len(c.Response().Body()),
		)
		return err
	}
}

// routeKind tags a request path for log filtering.
func routeKind(path string) string {
	switch {
	case strings.HasSuffix(path, "/match"), strings.HasSuffix(path, "/jobs/recommendations"):
		return "scoring"
	case strings.HasSuffix(path, "/preferences"):
		return "preferences"
	case strings.HasPrefix(path, "/ws/"):
		return "ws"
	default:
		return "other"
	}
}

func requestID(c fiber.Ctx) string {
	if rid, ok := c.Locals(CtxRequestIDKey).(string); ok {
		return rid
	}
	return "-"
}

func userIDString(c fiber.Ctx) string {
	if id, ok := c.Locals(CtxUserIDKey).(uuid.UUID); ok && id != uuid.Nil {
		return id.String()
	}
	return "-"
}
