package models

// Trend is a month-over-month change in percent
type Trend struct {
	Value      int  `json:"value"`
	IsPositive bool `json:"is_positive"`
}

// VendorSummary represents vendor_summaries table. It backs the stats
// grid on the vendor dashboard.
type VendorSummary struct {
	VendorID          uint    `gorm:"primaryKey;column:vendor_id" json:"vendor_id"`
	VendorName        string  `gorm:"type:varchar(100)" json:"vendor_name"`
	ActiveOrders      int     `json:"active_orders"`
	PendingDeliveries int     `json:"pending_deliveries"`
	ActiveOrdersTrend int     `json:"active_orders_trend"`
	MonthlySavings    float64 `gorm:"type:decimal(12,2)" json:"monthly_savings"`
	SavingsTrend      int     `json:"savings_trend"`
	TrustedSuppliers  int     `json:"trusted_suppliers"`
	GroupBuysJoined   int     `json:"group_buys_joined"`
	GroupBuysTrend    int     `json:"group_buys_trend"`
	Notifications     int     `json:"notifications"`
}

// TableName specifies the table name for VendorSummary
func (VendorSummary) TableName() string {
	return "vendor_summaries"
}

// TrendOf wraps a signed percentage; zero means no trend to show
func TrendOf(v int) *Trend {
	if v == 0 {
		return nil
	}
	return &Trend{Value: v, IsPositive: v > 0}
}
