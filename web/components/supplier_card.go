package components

import (
	"fmt"

	"github.com/coder-yr/taste-link/models"
)

// maxSpecialties is how many specialty badges a card shows before "+N more"
const maxSpecialties = 3

// SupplierCard is the view model of a supplier directory card
type SupplierCard struct {
	ID              string
	Name            string
	Image           string
	Initial         string
	Location        string
	Distance        string
	Rating          float64
	ReviewCount     int
	Specialties     []string
	MoreSpecialties int
	TrustScore      int
	DeliveryTime    string
	ActiveGroupBuys int
	IsVerified      bool
}

// NewSupplierCard builds the card for s
func NewSupplierCard(s models.Supplier) SupplierCard {
	card := SupplierCard{
		ID:              s.ID,
		Name:            s.Name,
		Image:           s.Image,
		Initial:         Initial(s.Name),
		Location:        s.Location,
		Distance:        s.Distance,
		Rating:          s.Rating,
		ReviewCount:     s.ReviewCount,
		TrustScore:      s.TrustScore,
		DeliveryTime:    s.DeliveryTime,
		ActiveGroupBuys: s.ActiveGroupBuys,
		IsVerified:      s.IsVerified,
	}

	card.Specialties = s.Specialties
	if len(s.Specialties) > maxSpecialties {
		card.Specialties = s.Specialties[:maxSpecialties]
		card.MoreSpecialties = len(s.Specialties) - maxSpecialties
	}
	return card
}

// SupplierCards builds one card per supplier
func SupplierCards(suppliers []models.Supplier) []SupplierCard {
	cards := make([]SupplierCard, 0, len(suppliers))
	for _, s := range suppliers {
		cards = append(cards, NewSupplierCard(s))
	}
	return cards
}

// MoreLabel is the overflow badge text, empty when every specialty fits
func (c SupplierCard) MoreLabel() string {
	if c.MoreSpecialties <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d more", c.MoreSpecialties)
}

// TrustLabel renders "Trust Score: N/100"
func (c SupplierCard) TrustLabel() string {
	return fmt.Sprintf("Trust Score: %d/100", c.TrustScore)
}

// Initial is the avatar fallback: the first character of name
func Initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}
