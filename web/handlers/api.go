package handlers

import (
	"github.com/coder-yr/taste-link/marketplace"
	"github.com/coder-yr/taste-link/models"
	"github.com/gofiber/fiber/v2"
)

// groupBuyResponse adds the derived figures to a group buy
type groupBuyResponse struct {
	models.GroupBuy
	Percentage int `json:"percentage"`
	Discount   int `json:"discount"`
}

// GetSuppliers returns the filtered supplier directory as JSON
func (h *Handler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.catalog.Suppliers(c.UserContext())
	if err != nil {
		return err
	}
	results := marketplace.Search(suppliers, supplierQuery(c))
	return c.JSON(fiber.Map{
		"count":     len(results),
		"suppliers": results,
	})
}

// GetGroupBuys returns the group buys of ?board= (campaigns by default)
func (h *Handler) GetGroupBuys(c *fiber.Ctx) error {
	board := models.Board(c.Query("board", string(models.BoardCampaigns)))
	if board != models.BoardCampaigns && board != models.BoardDashboard {
		return fiber.NewError(fiber.StatusBadRequest, "unknown board")
	}

	groupBuys, err := h.catalog.GroupBuys(c.UserContext(), board)
	if err != nil {
		return err
	}
	out := make([]groupBuyResponse, len(groupBuys))
	for i, g := range groupBuys {
		out[i] = groupBuyResponse{
			GroupBuy:   g,
			Percentage: marketplace.ProgressPercentage(g.Progress.Current, g.Progress.Target),
			Discount:   marketplace.DiscountPercentage(g.Product.OriginalPrice, g.Product.GroupPrice),
		}
	}
	return c.JSON(out)
}

// GetSQLLogs returns recent SQL logs
func (h *Handler) GetSQLLogs(c *fiber.Ctx) error {
	queries := h.recorder.Recent(c.QueryInt("limit", 20))
	return c.JSON(queries)
}

// ClearSQLLogs clears all SQL logs
func (h *Handler) ClearSQLLogs(c *fiber.Ctx) error {
	h.recorder.Clear()
	return c.SendStatus(fiber.StatusOK)
}

// Healthz reports whether the app and its storage are reachable
func (h *Handler) Healthz(c *fiber.Ctx) error {
	if h.health != nil {
		if err := h.health(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
				"error":  err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
