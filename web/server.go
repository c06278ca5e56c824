package web

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/coder-yr/taste-link/web/components"
	"github.com/coder-yr/taste-link/web/handlers"
	"github.com/coder-yr/taste-link/web/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

// Server represents the web server
type Server struct {
	app *fiber.App
	log *zap.Logger
}

// NewServer creates a new Fiber server serving the marketplace
func NewServer(deps handlers.Deps, production bool) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
		deps.Logger = log
	}
	h := handlers.New(deps)

	// Initialize template engine
	engine := html.NewFileSystem(subFS(templateFS, "templates"), ".html")

	// Add custom template functions
	engine.AddFunc("formatCurrency", components.FormatCurrency)
	engine.AddFunc("formatNumber", components.FormatNumber)
	engine.AddFunc("formatDuration", func(d time.Duration) string {
		if d < time.Millisecond {
			return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1000)
		}
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1000000)
	})

	// Create Fiber app with template engine
	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: production,
		ErrorHandler:          errorHandler(log),
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !production,
	}))
	app.Use(cors.New())
	if !production {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
		}))
	}
	app.Use(middleware.RequestID())
	app.Use(middleware.Visitor())
	app.Use(middleware.Logger(log))

	// Inject the request's SQL queries for the debug panel
	app.Use(middleware.SQLDebugMiddleware(h.Recorder()))

	// Method override middleware for HTML forms
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost {
			if method := c.FormValue("_method"); method != "" {
				c.Method(strings.ToUpper(method))
			}
		}
		return c.Next()
	})

	// Static files
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   subFS(staticFS, "static"),
		MaxAge: 3600,
	}))

	setupRoutes(app, h)

	return &Server{app: app, log: log}
}

// errorHandler renders the error page, or JSON for API clients
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		fields := []zap.Field{
			zap.Int("status", code),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("request failed", fields...)
		} else {
			log.Warn("request rejected", fields...)
		}

		message := err.Error()
		if fe == nil {
			message = "Internal Server Error"
		}

		// Check if it's an API request
		if wantsJSON(c) {
			return c.Status(code).JSON(fiber.Map{
				"error": message,
			})
		}

		// HTML error page
		return c.Status(code).Render("pages/error", fiber.Map{
			"Title": "Error",
			"Error": message,
			"Code":  code,
		}, "layouts/base")
	}
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/") ||
		c.Get(fiber.HeaderContentType) == fiber.MIMEApplicationJSON ||
		strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

// App exposes the Fiber app, mainly for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the server
func (s *Server) Start(port string) error {
	s.log.Info("Server starting", zap.String("addr", "http://localhost:"+port))
	return s.app.Listen(":" + port)
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, h *handlers.Handler) {
	// Pages
	app.Get("/", h.HomePage)
	app.Get("/healthz", h.Healthz)
	app.Get("/events", h.Events)

	// Vendor area
	vendor := app.Group("/vendor")
	vendor.Get("/", h.VendorDashboard)
	vendor.Get("/suppliers", h.SupplierList)
	vendor.Post("/suppliers/:id/contact", h.ContactSupplier)
	vendor.Post("/group-buys/:id/join", h.QuickJoinGroupBuy)

	// Supplier join campaigns; cancel must be before /:id routes
	groupBuyers := app.Group("/group-buyers")
	groupBuyers.Get("/", h.GroupBuyers)
	groupBuyers.Post("/join/cancel", h.CancelJoin)
	groupBuyers.Post("/:id/join", h.JoinCampaign)

	// API endpoints
	api := app.Group("/api")
	api.Get("/suppliers", h.GetSuppliers)
	api.Get("/group-buys", h.GetGroupBuys)

	// Debug endpoint for SQL logs
	api.Get("/debug/sql", h.GetSQLLogs)
	api.Delete("/debug/sql", h.ClearSQLLogs)
}
