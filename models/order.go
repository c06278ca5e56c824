package models

// OrderStatus type for order status
type OrderStatus string

const (
	OrderDelivered OrderStatus = "Delivered"
	OrderInTransit OrderStatus = "In Transit"
)

// RecentOrder represents recent_orders table
type RecentOrder struct {
	ID        string      `gorm:"primaryKey;type:varchar(20)" json:"id"`
	Supplier  string      `gorm:"type:varchar(200);not null" json:"supplier"`
	Items     string      `gorm:"type:varchar(255)" json:"items"`
	Amount    float64     `gorm:"type:decimal(10,2)" json:"amount"`
	Status    OrderStatus `gorm:"type:varchar(20)" json:"status"`
	DateLabel string      `gorm:"type:varchar(50)" json:"date"`
	Position  int         `gorm:"not null;default:0" json:"-"`
}

// TableName specifies the table name for RecentOrder
func (RecentOrder) TableName() string {
	return "recent_orders"
}

// IsDelivered reports whether the order reached the vendor
func (o RecentOrder) IsDelivered() bool {
	return o.Status == OrderDelivered
}
