package handlers

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/coder-yr/taste-link/database"
	"github.com/coder-yr/taste-link/marketplace"
	"github.com/coder-yr/taste-link/models"
	"github.com/coder-yr/taste-link/notify"
	"github.com/coder-yr/taste-link/web/components"
	"github.com/coder-yr/taste-link/web/middleware"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const groupBuyersPath = "/group-buyers"

// GroupBuyers handles the campaign list. ?join=<id> opens the supplier join
// modal for that campaign.
func (h *Handler) GroupBuyers(c *fiber.Ctx) error {
	visitorID := middleware.VisitorID(c)

	id := c.Query("join")
	if id == "" {
		// browsing the list keeps no per-visitor state
		var snap marketplace.ModalSnapshot
		if modal, ok := h.modals.Peek(visitorID); ok {
			snap = modal.Snapshot()
		}
		return h.renderGroupBuyers(c, snap)
	}

	if _, err := h.campaign(c.UserContext(), id); err != nil {
		return err
	}
	modal := h.modals.Get(visitorID)
	if err := modal.Open(id); err != nil && !errors.Is(err, marketplace.ErrSubmissionInFlight) {
		return err
	}
	return h.renderGroupBuyers(c, modal.Snapshot())
}

// JoinCampaign handles the join modal's submit
func (h *Handler) JoinCampaign(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.campaign(c.UserContext(), id); err != nil {
		return err
	}

	var form marketplace.JoinForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}

	modal := h.modals.Get(middleware.VisitorID(c))
	snap := modal.Snapshot()
	editing := snap.State == marketplace.StateOpen || snap.State == marketplace.StateSubmitting
	if !editing || snap.CampaignID != id {
		if err := modal.Open(id); err != nil {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
	}

	ctx, cancel := h.submitContext(c.UserContext())
	defer cancel()

	err := modal.Submit(ctx, form)

	var fieldErrs marketplace.FieldErrors
	switch {
	case err == nil:
		h.log.Info("join request submitted", zap.String("campaign_id", id))
		h.hub.Flash(middleware.VisitorID(c), notify.JoinedCampaign())
		return c.Redirect(groupBuyersPath, fiber.StatusSeeOther)
	case errors.As(err, &fieldErrs):
		c.Status(fiber.StatusUnprocessableEntity)
		return h.renderGroupBuyers(c, modal.Snapshot())
	case errors.Is(err, marketplace.ErrSubmissionInFlight):
		return fiber.NewError(fiber.StatusConflict, "Your join request is still being submitted")
	default:
		h.log.Error("join request failed", zap.String("campaign_id", id), zap.Error(err))
		h.hub.Flash(middleware.VisitorID(c), notify.JoinFailed())
		return c.Redirect(groupBuyersPath, fiber.StatusSeeOther)
	}
}

// CancelJoin handles the join modal's Cancel button
func (h *Handler) CancelJoin(c *fiber.Ctx) error {
	modal, ok := h.modals.Peek(middleware.VisitorID(c))
	if ok {
		if err := modal.Cancel(); errors.Is(err, marketplace.ErrSubmissionInFlight) {
			return fiber.NewError(fiber.StatusConflict, "Your join request is still being submitted")
		}
	}
	return c.Redirect(groupBuyersPath, fiber.StatusSeeOther)
}

// submitContext bounds the submission by JOIN_SUBMIT_TIMEOUT when set
func (h *Handler) submitContext(parent context.Context) (context.Context, context.CancelFunc) {
	if h.join.SubmitTimeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, h.join.SubmitTimeout)
}

func (h *Handler) campaign(ctx context.Context, id string) (models.GroupBuy, error) {
	g, err := h.catalog.GroupBuy(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return g, fiber.NewError(fiber.StatusNotFound, "Campaign not found")
	}
	return g, err
}

func (h *Handler) renderGroupBuyers(c *fiber.Ctx, snap marketplace.ModalSnapshot) error {
	campaigns, err := h.catalog.GroupBuys(c.UserContext(), models.BoardCampaigns)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"Campaigns": components.GroupBuyCards(campaigns),
		"Modal":     snap,
		"Offerings": marketplace.ProductOfferings(),
	}
	if snap.State == marketplace.StateSuccess {
		data["RefreshAfter"] = refreshAfter(snap.CloseAt, time.Now())
		data["RefreshURL"] = groupBuyersPath
	}
	return h.render(c, "pages/group_buyers", h.page(c, "Active Group Buy Campaigns", components.UserVendor, data))
}

// refreshAfter is the meta refresh delay in whole seconds, at least 1
func refreshAfter(closeAt, now time.Time) int {
	secs := int(math.Ceil(closeAt.Sub(now).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
