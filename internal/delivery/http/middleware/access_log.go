package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// AccessLogMiddleware logs one line per request. A request id is taken from
// X-Request-ID or generated, and echoed back so resume uploads can be
// correlated with extraction log lines.
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

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("X-Request-ID", rid)

		err := c.Next()

		if m == nil || m.logger == nil {
			return err
		}

		m.logger.Printf(
			"[HTTP] rid=%s method=%s path=%s status=%d latency=%s ip=%s bytes_in=%d bytes_out=%d ua=%q",
			rid,
			c.Method(),
			c.OriginalURL(),
			c.Response().StatusCode(),
			time.Since(start),
			c.IP(),
			c.Request().Header.ContentLength(),
			c.Response().Header.ContentLength(),
			c.Get("User-Agent"),
		)

		return err
	}
}
