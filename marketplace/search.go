package marketplace

import (
	"sort"
	"strings"

	"github.com/coder-yr/taste-link/models"
	"golang.org/x/text/cases"
)

// Sort keys offered by the supplier list
const (
	SortRating   = "rating"
	SortDistance = "distance"
	SortTrust    = "trust"
	SortDeals    = "deals"
)

// CategoryAll disables category filtering
const CategoryAll = "all"

// Category is an entry of the supplier list's category select
type Category struct {
	Value    string
	Label    string
	Keywords []string
}

// Categories returns the selectable supplier categories in display order
func Categories() []Category {
	return []Category{
		{Value: CategoryAll, Label: "All Categories"},
		{Value: "grains", Label: "Rice & Grains", Keywords: []string{"rice", "grain"}},
		{Value: "vegetables", Label: "Fresh Produce", Keywords: []string{"vegetable", "fruit", "produce"}},
		{Value: "spices", Label: "Spices & Seasonings", Keywords: []string{"spice", "herb", "seasoning", "condiment"}},
		{Value: "frozen", Label: "Frozen Foods", Keywords: []string{"frozen"}},
		{Value: "dairy", Label: "Dairy Products", Keywords: []string{"dairy"}},
	}
}

// SortOption is an entry of the supplier list's sort select
type SortOption struct {
	Value string
	Label string
}

// SortOptions returns the supported sort keys in display order
func SortOptions() []SortOption {
	return []SortOption{
		{Value: SortRating, Label: "Highest Rated"},
		{Value: SortDistance, Label: "Nearest First"},
		{Value: SortTrust, Label: "Trust Score"},
		{Value: SortDeals, Label: "Most Deals"},
	}
}

// SupplierQuery is the state of the supplier list's filter bar
type SupplierQuery struct {
	Text     string
	Category string
	Sort     string
}

// MatchesText reports whether q is a case-insensitive substring of the
// supplier's name or of any of its specialties. An empty q matches.
func MatchesText(s models.Supplier, q string) bool {
	fold := cases.Fold()
	needle := fold.String(q)
	if needle == "" {
		return true
	}
	if strings.Contains(fold.String(s.Name), needle) {
		return true
	}
	for _, specialty := range s.Specialties {
		if strings.Contains(fold.String(specialty), needle) {
			return true
		}
	}
	return false
}

// FilterSuppliers keeps suppliers matching q, preserving order.
func FilterSuppliers(suppliers []models.Supplier, q string) []models.Supplier {
	out := make([]models.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if MatchesText(s, q) {
			out = append(out, s)
		}
	}
	return out
}

// MatchesCategory reports whether any specialty falls in the category.
// Unknown categories and CategoryAll match everything.
func MatchesCategory(s models.Supplier, category string) bool {
	c, ok := findCategory(category)
	if !ok || len(c.Keywords) == 0 {
		return true
	}
	fold := cases.Fold()
	for _, specialty := range s.Specialties {
		folded := fold.String(specialty)
		for _, kw := range c.Keywords {
			if strings.Contains(folded, kw) {
				return true
			}
		}
	}
	return false
}

// Search applies the text filter, the category filter and the sort key.
func Search(suppliers []models.Supplier, q SupplierQuery) []models.Supplier {
	out := make([]models.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if MatchesText(s, q.Text) && MatchesCategory(s, q.Category) {
			out = append(out, s)
		}
	}
	SortSuppliers(out, q.Sort)
	return out
}

// SortSuppliers orders suppliers in place. Ties and unknown keys keep the
// incoming order; suppliers without a parseable distance sort last.
func SortSuppliers(suppliers []models.Supplier, key string) {
	var less func(a, b models.Supplier) bool
	switch key {
	case SortRating:
		less = func(a, b models.Supplier) bool { return a.Rating > b.Rating }
	case SortTrust:
		less = func(a, b models.Supplier) bool { return a.TrustScore > b.TrustScore }
	case SortDeals:
		less = func(a, b models.Supplier) bool { return a.ActiveGroupBuys > b.ActiveGroupBuys }
	case SortDistance:
		less = func(a, b models.Supplier) bool {
			da, okA := a.DistanceKm()
			db, okB := b.DistanceKm()
			if okA != okB {
				return okA
			}
			return da < db
		}
	default:
		return
	}
	sort.SliceStable(suppliers, func(i, j int) bool {
		return less(suppliers[i], suppliers[j])
	})
}

func findCategory(value string) (Category, bool) {
	for _, c := range Categories() {
		if c.Value == value {
			return c, true
		}
	}
	return Category{}, false
}
