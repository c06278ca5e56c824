package models

import "time"

// Board identifies which page a group buy is listed on
type Board string

const (
	BoardDashboard Board = "dashboard"
	BoardCampaigns Board = "campaigns"
)

// GroupBuySupplier is the supplier summary shown on a group buy card
type GroupBuySupplier struct {
	Name     string  `gorm:"type:varchar(200);not null" json:"name"`
	Image    string  `gorm:"type:varchar(255)" json:"image,omitempty"`
	Location string  `gorm:"type:varchar(200)" json:"location"`
	Rating   float64 `gorm:"type:decimal(2,1)" json:"rating"`
}

// GroupBuyProduct is the product on offer
type GroupBuyProduct struct {
	Name          string  `gorm:"type:varchar(200);not null" json:"name"`
	Image         string  `gorm:"type:varchar(255)" json:"image,omitempty"`
	OriginalPrice float64 `gorm:"type:decimal(10,2);not null" json:"original_price"`
	GroupPrice    float64 `gorm:"type:decimal(10,2);not null" json:"group_price"`
}

// GroupBuyProgress holds the raw unit counts. The percentage is derived
// by marketplace.ProgressPercentage and never stored.
type GroupBuyProgress struct {
	Current int `gorm:"not null;default:0" json:"current"`
	Target  int `gorm:"not null" json:"target"`
}

// GroupBuy represents group_buys table
type GroupBuy struct {
	ID           string           `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Board        Board            `gorm:"type:varchar(20);index;not null" json:"board"`
	Position     int              `gorm:"not null;default:0" json:"-"`
	Title        string           `gorm:"type:varchar(200);not null" json:"title"`
	Supplier     GroupBuySupplier `gorm:"embedded;embeddedPrefix:supplier_" json:"supplier"`
	Product      GroupBuyProduct  `gorm:"embedded;embeddedPrefix:product_" json:"product"`
	Progress     GroupBuyProgress `gorm:"embedded;embeddedPrefix:progress_" json:"progress"`
	TimeLeft     string           `gorm:"type:varchar(50)" json:"time_left"`
	Participants int              `gorm:"default:0" json:"participants"`
	IsJoined     bool             `gorm:"default:false" json:"is_joined"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// TableName specifies the table name for GroupBuy
func (GroupBuy) TableName() string {
	return "group_buys"
}
