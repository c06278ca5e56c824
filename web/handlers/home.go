package handlers

import (
	"errors"

	"github.com/coder-yr/taste-link/database"
	"github.com/coder-yr/taste-link/models"
	"github.com/coder-yr/taste-link/notify"
	"github.com/coder-yr/taste-link/web/components"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is a selling point on the landing page
type Feature struct {
	Icon        string
	Title       string
	Description string
	Color       string
}

var landingFeatures = []Feature{
	{"users", "Connect with Trusted Suppliers", "Find verified suppliers in your area with transparent ratings and reviews.", "text-primary"},
	{"shopping-cart", "Join Group Buying", "Team up with other vendors to get better prices through bulk purchasing.", "text-secondary"},
	{"shield", "Secure Transactions", "All transactions are protected with our trust-based verification system.", "text-accent"},
	{"trending-up", "Track Your Savings", "Monitor your cost savings and optimize your supply chain efficiency.", "text-primary"},
}

// HomePage handles the landing page
func (h *Handler) HomePage(c *fiber.Ctx) error {
	return h.render(c, "pages/index", h.page(c, "TrustedMarket", "", fiber.Map{
		"Features": landingFeatures,
	}))
}

// TopSupplierRow is a row of the dashboard's top suppliers panel
type TopSupplierRow struct {
	models.TopSupplier
	Initial string
}

// VendorDashboard handles the vendor dashboard
func (h *Handler) VendorDashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()

	summary, err := h.catalog.VendorSummary(ctx)
	if err != nil {
		return err
	}
	groupBuys, err := h.catalog.GroupBuys(ctx, models.BoardDashboard)
	if err != nil {
		return err
	}
	orders, err := h.catalog.RecentOrders(ctx)
	if err != nil {
		return err
	}
	top, err := h.catalog.TopSuppliers(ctx)
	if err != nil {
		return err
	}

	rows := make([]TopSupplierRow, len(top))
	for i, s := range top {
		rows[i] = TopSupplierRow{TopSupplier: s, Initial: components.Initial(s.Name)}
	}

	return h.render(c, "pages/vendor_dashboard", h.page(c, "Vendor Dashboard", components.UserVendor, fiber.Map{
		"Summary":      summary,
		"Stats":        components.DashboardStats(summary, components.FormatCurrency),
		"GroupBuys":    components.GroupBuyCards(groupBuys),
		"RecentOrders": orders,
		"TopSuppliers": rows,
	}))
}

// QuickJoinGroupBuy handles the dashboard's "Join Group Buy" button
func (h *Handler) QuickJoinGroupBuy(c *fiber.Ctx) error {
	g, err := h.catalog.GroupBuy(c.UserContext(), c.Params("id"))
	if errors.Is(err, database.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Group buy not found")
	}
	if err != nil {
		return err
	}

	h.log.Info("vendor joined group buy", zap.String("group_buy_id", g.ID))
	return h.toast(c, notify.JoinedGroupBuy(), "/vendor")
}
