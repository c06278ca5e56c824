// Package marketplace holds the vendor/supplier group-buy rules: derived
// campaign metrics, supplier search and the join-request flow.
package marketplace

import (
	"errors"
	"math"
)

var (
	ErrInvalidTarget = errors.New("marketplace: target quantity must be positive")
	ErrInvalidPrice  = errors.New("marketplace: original price must be positive")
)

// Progress returns round(current/target*100). The result is not clamped,
// so an over-subscribed campaign reports more than 100.
func Progress(current, target int) (int, error) {
	if target <= 0 {
		return 0, ErrInvalidTarget
	}
	return int(math.Round(float64(current) * 100 / float64(target))), nil
}

// ProgressPercentage is Progress with degenerate targets reported as 0.
func ProgressPercentage(current, target int) int {
	pct, err := Progress(current, target)
	if err != nil {
		return 0
	}
	return pct
}

// Discount returns round((original-group)/original*100).
func Discount(original, group float64) (int, error) {
	if !(original > 0) || math.IsInf(original, 0) {
		return 0, ErrInvalidPrice
	}
	return int(math.Round((original - group) * 100 / original)), nil
}

// DiscountPercentage is Discount with degenerate prices reported as 0.
func DiscountPercentage(original, group float64) int {
	pct, err := Discount(original, group)
	if err != nil {
		return 0
	}
	return pct
}

// BarWidth clamps a percentage to the drawable range of a progress bar.
func BarWidth(pct int) int {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}
