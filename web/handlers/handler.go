package handlers

import (
	"time"

	"github.com/coder-yr/taste-link/config"
	"github.com/coder-yr/taste-link/database"
	"github.com/coder-yr/taste-link/marketplace"
	"github.com/coder-yr/taste-link/notify"
	"github.com/coder-yr/taste-link/web/components"
	"github.com/coder-yr/taste-link/web/middleware"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// layout wraps every page
const layout = "layouts/base"

// Deps are the collaborators the handlers need
type Deps struct {
	Catalog  database.Catalog
	Modals   *marketplace.ModalRegistry
	Hub      *notify.Hub
	Recorder *database.QueryRecorder
	Logger   *zap.Logger
	Join     config.JoinConfig
	// Health reports storage reachability for /healthz; nil means always healthy
	Health func() error
}

// Handler serves the marketplace pages and APIs
type Handler struct {
	catalog   database.Catalog
	modals    *marketplace.ModalRegistry
	hub       *notify.Hub
	recorder  *database.QueryRecorder
	log       *zap.Logger
	join      config.JoinConfig
	health    func() error
	heartbeat time.Duration
}

// New creates the handler set
func New(deps Deps) *Handler {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	recorder := deps.Recorder
	if recorder == nil {
		recorder = database.SQLLogger
	}
	return &Handler{
		catalog:   deps.Catalog,
		modals:    deps.Modals,
		hub:       deps.Hub,
		recorder:  recorder,
		log:       log,
		join:      deps.Join,
		health:    deps.Health,
		heartbeat: 30 * time.Second,
	}
}

// page fills the values every layout render needs: title, header, pending
// toasts and the SQL debug panel
func (h *Handler) page(c *fiber.Ctx, title string, userType components.UserType, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	if userType != "" {
		notifications := 0
		if summary, err := h.catalog.VendorSummary(c.UserContext()); err == nil {
			notifications = summary.Notifications
		}
		header := components.NewHeader(userType, c.Path(), "John Doe", notifications)
		data["Header"] = &header
	}
	data["Toasts"] = h.hub.Drain(middleware.VisitorID(c))
	return data
}

// render renders a page in the base layout with the request's SQL panel
func (h *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	queries := middleware.RequestQueries(c, h.recorder)
	data["SQLQueries"] = queries
	data["TotalSQLQueries"] = len(queries)
	return c.Render(name, data, layout)
}

// isAsync reports whether the request came from the fetch helper in app.js,
// which expects a toast over the event stream instead of a redirect
func isAsync(c *fiber.Ctx) bool {
	return c.Get(fiber.HeaderXRequestedWith) == "fetch"
}

// toast delivers t to the visitor, then answers 204 to fetch requests and
// redirects plain form posts to back
func (h *Handler) toast(c *fiber.Ctx, t notify.Toast, back string) error {
	visitor := middleware.VisitorID(c)
	if isAsync(c) {
		h.hub.Notify(visitor, t)
		return c.SendStatus(fiber.StatusNoContent)
	}
	h.hub.Flash(visitor, t)
	return c.Redirect(back, fiber.StatusSeeOther)
}

// Recorder returns the SQL query recorder the debug endpoints read
func (h *Handler) Recorder() *database.QueryRecorder {
	return h.recorder
}
