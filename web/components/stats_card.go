// Package components turns catalog records into the view models rendered by
// the card and header partials.
package components

import (
	"fmt"

	"github.com/coder-yr/taste-link/models"
)

// CardVariant selects the StatsCard colour scheme
type CardVariant string

const (
	VariantDefault   CardVariant = "default"
	VariantAccent    CardVariant = "accent"
	VariantSecondary CardVariant = "secondary"
)

// StatsCard is a single headline figure on the dashboard
type StatsCard struct {
	Title    string
	Value    string
	Subtitle string
	Icon     string
	Trend    *models.Trend
	Variant  CardVariant
}

// CardClass returns the card container classes for the variant
func (s StatsCard) CardClass() string {
	switch s.Variant {
	case VariantAccent:
		return "bg-gradient-warm border-accent/20 shadow-warm"
	case VariantSecondary:
		return "bg-gradient-blue border-secondary/20 shadow-glow"
	default:
		return "hover:shadow-soft transition-all duration-200"
	}
}

// IconClass returns the icon colour for the variant
func (s StatsCard) IconClass() string {
	switch s.Variant {
	case VariantAccent:
		return "text-accent-foreground"
	case VariantSecondary:
		return "text-secondary-foreground"
	default:
		return "text-muted-foreground"
	}
}

// TrendLabel renders the trend as "+15%" or "-4%"; empty without a trend
func (s StatsCard) TrendLabel() string {
	if s.Trend == nil {
		return ""
	}
	if s.Trend.IsPositive {
		return fmt.Sprintf("+%d%%", s.Trend.Value)
	}
	return fmt.Sprintf("%d%%", s.Trend.Value)
}

// TrendBadge is the badge variant for the trend
func (s StatsCard) TrendBadge() string {
	if s.Trend != nil && !s.Trend.IsPositive {
		return "destructive"
	}
	return "default"
}

// DashboardStats builds the four dashboard cards from the vendor summary
func DashboardStats(summary models.VendorSummary, fmtCurrency func(float64) string) []StatsCard {
	return []StatsCard{
		{
			Title:    "Active Orders",
			Value:    fmt.Sprint(summary.ActiveOrders),
			Subtitle: fmt.Sprintf("%d pending delivery", summary.PendingDeliveries),
			Icon:     "shopping-cart",
			Trend:    models.TrendOf(summary.ActiveOrdersTrend),
		},
		{
			Title:    "Monthly Savings",
			Value:    fmtCurrency(summary.MonthlySavings),
			Subtitle: "From group buys",
			Icon:     "trending-up",
			Trend:    models.TrendOf(summary.SavingsTrend),
			Variant:  VariantAccent,
		},
		{
			Title:    "Trusted Suppliers",
			Value:    fmt.Sprint(summary.TrustedSuppliers),
			Subtitle: "In your network",
			Icon:     "users",
			Variant:  VariantSecondary,
		},
		{
			Title:    "Group Buys Joined",
			Value:    fmt.Sprint(summary.GroupBuysJoined),
			Subtitle: "This month",
			Icon:     "package",
			Trend:    models.TrendOf(summary.GroupBuysTrend),
		},
	}
}
