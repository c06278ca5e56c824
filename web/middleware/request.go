package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// VisitorCookie keys the per-visitor modal and toast queue
	VisitorCookie = "tm_visitor"

	localRequestID = "request_id"
	localVisitorID = "visitor_id"
)

// RequestID tags every request with an X-Request-ID
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(localRequestID, requestID)
		c.Set(fiber.HeaderXRequestID, requestID)
		return c.Next()
	}
}

// Visitor assigns an anonymous visitor id cookie on first contact
func Visitor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		visitorID := c.Cookies(VisitorCookie)
		if _, err := uuid.Parse(visitorID); err != nil {
			visitorID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     VisitorCookie,
				Value:    visitorID,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
				Expires:  time.Now().Add(30 * 24 * time.Hour),
			})
		}
		c.Locals(localVisitorID, visitorID)
		return c.Next()
	}
}

// VisitorID returns the id assigned by Visitor
func VisitorID(c *fiber.Ctx) string {
	id, _ := c.Locals(localVisitorID).(string)
	return id
}

// GetRequestID returns the id assigned by RequestID
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(localRequestID).(string)
	return id
}

// Logger writes one structured line per request
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("query", string(c.Request().URI().QueryString())),
			zap.String("ip", c.IP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", GetRequestID(c)),
			zap.String("visitor_id", VisitorID(c)),
		}

		if status >= 500 {
			logger.Error("Server error", fields...)
		} else if status >= 400 {
			logger.Warn("Client error", fields...)
		} else {
			logger.Debug("Request", fields...)
		}
		return err
	}
}
