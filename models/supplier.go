package models

import (
	"strconv"
	"strings"
	"time"
)

// Supplier represents suppliers table
type Supplier struct {
	ID              string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name            string     `gorm:"type:varchar(200);not null" json:"name"`
	Image           string     `gorm:"type:varchar(255)" json:"image,omitempty"`
	Location        string     `gorm:"type:varchar(200)" json:"location"`
	Distance        string     `gorm:"type:varchar(20)" json:"distance"`
	Rating          float64    `gorm:"type:decimal(2,1);check:rating >= 0 AND rating <= 5" json:"rating"`
	ReviewCount     int        `gorm:"default:0" json:"review_count"`
	Specialties     StringList `gorm:"type:text" json:"specialties"`
	TrustScore      int        `gorm:"check:trust_score >= 0 AND trust_score <= 100" json:"trust_score"`
	DeliveryTime    string     `gorm:"type:varchar(50)" json:"delivery_time"`
	ActiveGroupBuys int        `gorm:"default:0" json:"active_group_buys"`
	IsVerified      bool       `gorm:"default:false" json:"is_verified"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName specifies the table name for Supplier
func (Supplier) TableName() string {
	return "suppliers"
}

// DistanceKm parses labels like "2.3 km". ok is false for anything else.
func (s Supplier) DistanceKm() (km float64, ok bool) {
	label := strings.TrimSpace(strings.ToLower(s.Distance))
	label = strings.TrimSpace(strings.TrimSuffix(label, "km"))
	v, err := strconv.ParseFloat(label, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TopSupplier is a row in the dashboard's "Top Suppliers" sidebar
type TopSupplier struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"type:varchar(200);not null" json:"name"`
	Rating float64 `gorm:"type:decimal(2,1)" json:"rating"`
	Orders int     `json:"orders"`
}

// TableName specifies the table name for TopSupplier
func (TopSupplier) TableName() string {
	return "top_suppliers"
}
