package handlers

import (
	"errors"
	"net/url"

	"github.com/coder-yr/taste-link/database"
	"github.com/coder-yr/taste-link/marketplace"
	"github.com/coder-yr/taste-link/notify"
	"github.com/coder-yr/taste-link/web/components"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// supplierQuery reads the filter bar from the query string
func supplierQuery(c *fiber.Ctx) marketplace.SupplierQuery {
	return marketplace.SupplierQuery{
		Text:     c.Query("q"),
		Category: c.Query("category", marketplace.CategoryAll),
		Sort:     c.Query("sort", marketplace.SortRating),
	}
}

// SupplierList handles the supplier directory with search, category and sort
func (h *Handler) SupplierList(c *fiber.Ctx) error {
	suppliers, err := h.catalog.Suppliers(c.UserContext())
	if err != nil {
		return err
	}

	query := supplierQuery(c)
	results := marketplace.Search(suppliers, query)

	return h.render(c, "pages/suppliers", h.page(c, "Find Trusted Suppliers", components.UserVendor, fiber.Map{
		"Query":       query,
		"Suppliers":   components.SupplierCards(results),
		"Count":       len(results),
		"Categories":  marketplace.Categories(),
		"SortOptions": marketplace.SortOptions(),
	}))
}

// ContactSupplier handles the supplier card's Contact button
func (h *Handler) ContactSupplier(c *fiber.Ctx) error {
	supplier, err := h.catalog.Supplier(c.UserContext(), c.Params("id"))
	if errors.Is(err, database.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Supplier not found")
	}
	if err != nil {
		return err
	}

	h.log.Info("contact request sent", zap.String("supplier_id", supplier.ID))
	return h.toast(c, notify.ContactSent(supplier.Name), backToSuppliers(c))
}

// backToSuppliers keeps the filter bar state across the redirect
func backToSuppliers(c *fiber.Ctx) string {
	q := url.Values{}
	for _, key := range []string{"q", "category", "sort"} {
		if v := c.FormValue(key); v != "" {
			q.Set(key, v)
		}
	}
	if len(q) == 0 {
		return "/vendor/suppliers"
	}
	return "/vendor/suppliers?" + q.Encode()
}
