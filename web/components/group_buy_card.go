package components

import (
	"fmt"

	"github.com/coder-yr/taste-link/marketplace"
	"github.com/coder-yr/taste-link/models"
)

// GroupBuyCard is the view model of a group-buy or campaign card
type GroupBuyCard struct {
	ID              string
	Title           string
	SupplierName    string
	SupplierImage   string
	SupplierInitial string
	Location        string
	Rating          float64
	ProductName     string
	ProductImage    string
	OriginalPrice   string
	GroupPrice      string
	Current         int
	Target          int
	Percentage      int
	BarWidth        int
	Discount        int
	TimeLeft        string
	Participants    int
	IsJoined        bool
}

// NewGroupBuyCard derives discount and progress from g. Degenerate targets
// and prices render as 0%.
func NewGroupBuyCard(g models.GroupBuy) GroupBuyCard {
	pct := marketplace.ProgressPercentage(g.Progress.Current, g.Progress.Target)
	return GroupBuyCard{
		ID:              g.ID,
		Title:           g.Title,
		SupplierName:    g.Supplier.Name,
		SupplierImage:   g.Supplier.Image,
		SupplierInitial: Initial(g.Supplier.Name),
		Location:        g.Supplier.Location,
		Rating:          g.Supplier.Rating,
		ProductName:     g.Product.Name,
		ProductImage:    g.Product.Image,
		OriginalPrice:   FormatCurrency(g.Product.OriginalPrice),
		GroupPrice:      FormatCurrency(g.Product.GroupPrice),
		Current:         g.Progress.Current,
		Target:          g.Progress.Target,
		Percentage:      pct,
		BarWidth:        marketplace.BarWidth(pct),
		Discount:        marketplace.DiscountPercentage(g.Product.OriginalPrice, g.Product.GroupPrice),
		TimeLeft:        g.TimeLeft,
		Participants:    g.Participants,
		IsJoined:        g.IsJoined,
	}
}

// GroupBuyCards builds one card per group buy
func GroupBuyCards(groupBuys []models.GroupBuy) []GroupBuyCard {
	cards := make([]GroupBuyCard, 0, len(groupBuys))
	for _, g := range groupBuys {
		cards = append(cards, NewGroupBuyCard(g))
	}
	return cards
}

func (c GroupBuyCard) DiscountLabel() string {
	return fmt.Sprintf("-%d%% OFF", c.Discount)
}

func (c GroupBuyCard) ProgressLabel() string {
	return fmt.Sprintf("%d / %d units", c.Current, c.Target)
}

func (c GroupBuyCard) TimeLeftLabel() string {
	return c.TimeLeft + " left"
}
