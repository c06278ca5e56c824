package handlers

import (
	"bufio"
	"fmt"
	"time"

	"github.com/coder-yr/taste-link/notify"
	"github.com/coder-yr/taste-link/web/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Events streams the visitor's toasts as Server-Sent Events
// GET /events
func (h *Handler) Events(c *fiber.Ctx) error {
	visitorID := middleware.VisitorID(c)
	client := notify.NewClient(uuid.New().String(), visitorID)
	h.hub.Register(client)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	heartbeat := h.heartbeat
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer h.hub.Unregister(client.ID)

		fmt.Fprintf(w, "event: connected\ndata: {\"client_id\":\"%s\"}\n\n", client.ID)
		if err := w.Flush(); err != nil {
			return
		}

		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()

		for {
			select {
			case event, ok := <-client.Events:
				if !ok {
					return
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.EventType, event.Data)
			case <-ticker.C:
				fmt.Fprint(w, ": keepalive\n\n")
			}
			// a failed flush means the client went away
			if err := w.Flush(); err != nil {
				return
			}
		}
	})
	return nil
}
