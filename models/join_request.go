package models

import "time"

// JoinStatus is the review state of a supplier join request
type JoinStatus string

const (
	JoinPending  JoinStatus = "PENDING"
	JoinApproved JoinStatus = "APPROVED"
	JoinRejected JoinStatus = "REJECTED"
)

// JoinRequest represents join_requests table: a supplier asking to
// fulfil a group buy campaign
type JoinRequest struct {
	ID               string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CampaignID       string     `gorm:"type:varchar(36);index;not null" json:"campaign_id"`
	SupplierName     string     `gorm:"type:varchar(200);not null" json:"supplier_name"`
	SupplierCode     string     `gorm:"type:varchar(50);not null" json:"supplier_id"`
	ProductOffering  string     `gorm:"type:varchar(50);not null" json:"product_offering"`
	PricePerUnit     float64    `gorm:"type:decimal(10,2);not null;check:price_per_unit > 0" json:"price_per_unit"`
	MinOrderQuantity float64    `gorm:"not null;check:min_order_quantity > 0" json:"min_order_quantity"`
	Status           JoinStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	SubmittedAt      time.Time  `json:"submitted_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

// TableName specifies the table name for JoinRequest
func (JoinRequest) TableName() string {
	return "join_requests"
}
