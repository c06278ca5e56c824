package marketplace

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/coder-yr/taste-link/models"
	"github.com/google/uuid"
)

// Form field names, shared by the HTML form and the error map
const (
	FieldSupplierName     = "supplierName"
	FieldSupplierID       = "supplierId"
	FieldProductOffering  = "productOffering"
	FieldPricePerUnit     = "pricePerUnit"
	FieldMinOrderQuantity = "minOrderQuantity"
)

// ProductOffering is an entry of the join form's product select
type ProductOffering struct {
	Value string
	Label string
}

// ProductOfferings returns the fixed set of things a supplier can offer
func ProductOfferings() []ProductOffering {
	return []ProductOffering{
		{Value: "rice-bowls", Label: "Rice Bowls & Containers"},
		{Value: "vegetables", Label: "Fresh Vegetables"},
		{Value: "utensils", Label: "Compostable Utensils"},
		{Value: "packaging", Label: "Food Packaging"},
		{Value: "ingredients", Label: "Cooking Ingredients"},
		{Value: "other", Label: "Other"},
	}
}

// JoinForm holds the raw values typed into the join modal
type JoinForm struct {
	SupplierName     string `form:"supplierName"`
	SupplierID       string `form:"supplierId"`
	ProductOffering  string `form:"productOffering"`
	PricePerUnit     string `form:"pricePerUnit"`
	MinOrderQuantity string `form:"minOrderQuantity"`
}

// FieldErrors maps a field name to its error text
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid join form: " + strings.Join(parts, "; ")
}

// Validate checks every field and returns nil when the form is valid.
func (f JoinForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if utf8.RuneCountInString(f.SupplierName) < 2 {
		errs[FieldSupplierName] = "Supplier name must be at least 2 characters"
	}
	if utf8.RuneCountInString(f.SupplierID) < 3 {
		errs[FieldSupplierID] = "Supplier ID must be at least 3 characters"
	}
	if !isProductOffering(f.ProductOffering) {
		errs[FieldProductOffering] = "Please select a product offering"
	}
	if _, ok := parsePositive(f.PricePerUnit); !ok {
		errs[FieldPricePerUnit] = "Price must be a positive number"
	}
	if _, ok := parsePositive(f.MinOrderQuantity); !ok {
		errs[FieldMinOrderQuantity] = "Minimum order quantity must be a positive number"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ToJoinRequest converts a valid form into a pending join request.
func (f JoinForm) ToJoinRequest(campaignID string, now time.Time) (models.JoinRequest, error) {
	if errs := f.Validate(); errs != nil {
		return models.JoinRequest{}, errs
	}
	price, _ := parsePositive(f.PricePerUnit)
	qty, _ := parsePositive(f.MinOrderQuantity)

	return models.JoinRequest{
		ID:               uuid.New().String(),
		CampaignID:       campaignID,
		SupplierName:     f.SupplierName,
		SupplierCode:     f.SupplierID,
		ProductOffering:  f.ProductOffering,
		PricePerUnit:     price,
		MinOrderQuantity: qty,
		Status:           models.JoinPending,
		SubmittedAt:      now,
	}, nil
}

func isProductOffering(v string) bool {
	for _, o := range ProductOfferings() {
		if o.Value == v {
			return true
		}
	}
	return false
}

// parsePositive accepts decimal strings surrounded by optional whitespace.
func parsePositive(v string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, false
	}
	return n, true
}
