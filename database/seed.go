package database

import (
	"fmt"

	"github.com/coder-yr/taste-link/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const placeholderImage = "/static/img/placeholder.svg"

// SeedSuppliers returns the supplier directory shown to vendors
func SeedSuppliers() []models.Supplier {
	return []models.Supplier{
		{
			ID:              "1",
			Name:            "GreenField Supplies",
			Image:           placeholderImage,
			Location:        "Downtown District",
			Distance:        "2.3 km",
			Rating:          4.9,
			ReviewCount:     156,
			Specialties:     models.StringList{"Rice", "Grains", "Cooking Oil", "Spices"},
			TrustScore:      98,
			DeliveryTime:    "Same day",
			ActiveGroupBuys: 3,
			IsVerified:      true,
		},
		{
			ID:              "2",
			Name:            "FarmFresh Direct",
			Image:           placeholderImage,
			Location:        "Suburban Area",
			Distance:        "4.1 km",
			Rating:          4.8,
			ReviewCount:     89,
			Specialties:     models.StringList{"Vegetables", "Fruits", "Organic Produce"},
			TrustScore:      95,
			DeliveryTime:    "Next day",
			ActiveGroupBuys: 5,
			IsVerified:      true,
		},
		{
			ID:              "3",
			Name:            "Quality Foods Co",
			Image:           placeholderImage,
			Location:        "Industrial Zone",
			Distance:        "6.7 km",
			Rating:          4.7,
			ReviewCount:     234,
			Specialties:     models.StringList{"Frozen Foods", "Dairy", "Beverages", "Snacks"},
			TrustScore:      92,
			DeliveryTime:    "2-3 days",
			ActiveGroupBuys: 2,
			IsVerified:      false,
		},
		{
			ID:              "4",
			Name:            "Spice Masters Ltd",
			Image:           placeholderImage,
			Location:        "Traditional Market",
			Distance:        "3.2 km",
			Rating:          4.6,
			ReviewCount:     67,
			Specialties:     models.StringList{"Spices", "Herbs", "Seasonings", "Condiments"},
			TrustScore:      88,
			DeliveryTime:    "Same day",
			ActiveGroupBuys: 1,
			IsVerified:      true,
		},
	}
}

// SeedGroupBuys returns the dashboard group buys followed by the open
// supplier campaigns
func SeedGroupBuys() []models.GroupBuy {
	return []models.GroupBuy{
		{
			ID:       "d1",
			Board:    models.BoardDashboard,
			Position: 1,
			Title:    "Premium Rice Bulk Order",
			Supplier: models.GroupBuySupplier{Name: "GreenField Supplies", Image: placeholderImage, Location: "Downtown", Rating: 4.8},
			Product:  models.GroupBuyProduct{Name: "Jasmine Rice 25kg bags", OriginalPrice: 45, GroupPrice: 32},
			Progress: models.GroupBuyProgress{Current: 147, Target: 200},
			TimeLeft: "2 days", Participants: 23,
		},
		{
			ID:       "d2",
			Board:    models.BoardDashboard,
			Position: 2,
			Title:    "Fresh Vegetable Package",
			Supplier: models.GroupBuySupplier{Name: "FarmFresh Direct", Image: placeholderImage, Location: "Suburb", Rating: 4.9},
			Product:  models.GroupBuyProduct{Name: "Mixed Vegetable Box", OriginalPrice: 28, GroupPrice: 22},
			Progress: models.GroupBuyProgress{Current: 89, Target: 100},
			TimeLeft: "5 hours", Participants: 34, IsJoined: true,
		},
		{
			ID:       "c1",
			Board:    models.BoardCampaigns,
			Position: 1,
			Title:    "Premium Rice Bowls",
			Supplier: models.GroupBuySupplier{Name: "GreenPack Solutions", Location: "Downtown District"},
			Product:  models.GroupBuyProduct{Name: "Eco-friendly Rice Containers", Image: placeholderImage, OriginalPrice: 3.20, GroupPrice: 2.50},
			Progress: models.GroupBuyProgress{Current: 150, Target: 500},
			TimeLeft: "3 days", Participants: 12,
		},
		{
			ID:       "c2",
			Board:    models.BoardCampaigns,
			Position: 2,
			Title:    "Organic Vegetables",
			Supplier: models.GroupBuySupplier{Name: "Farm Fresh Co.", Location: "Market Square"},
			Product:  models.GroupBuyProduct{Name: "Fresh Seasonal Vegetables", Image: placeholderImage, OriginalPrice: 6.50, GroupPrice: 4.80},
			Progress: models.GroupBuyProgress{Current: 80, Target: 200},
			TimeLeft: "5 days", Participants: 8,
		},
		{
			ID:       "c3",
			Board:    models.BoardCampaigns,
			Position: 3,
			Title:    "Compostable Utensils",
			Supplier: models.GroupBuySupplier{Name: "EcoSupply Ltd.", Location: "City Center"},
			Product:  models.GroupBuyProduct{Name: "Biodegradable Cutlery Set", Image: placeholderImage, OriginalPrice: 0.65, GroupPrice: 0.45},
			Progress: models.GroupBuyProgress{Current: 300, Target: 1000},
			TimeLeft: "1 week", Participants: 15,
		},
	}
}

// SeedRecentOrders returns the vendor's latest orders
func SeedRecentOrders() []models.RecentOrder {
	return []models.RecentOrder{
		{ID: "ORD-001", Supplier: "GreenField Supplies", Items: "Rice, Oil, Spices", Amount: 156, Status: models.OrderDelivered, DateLabel: "2 days ago", Position: 1},
		{ID: "ORD-002", Supplier: "FarmFresh Direct", Items: "Vegetables, Fruits", Amount: 89, Status: models.OrderInTransit, DateLabel: "1 day ago", Position: 2},
	}
}

// SeedTopSuppliers returns the vendor's most used suppliers
func SeedTopSuppliers() []models.TopSupplier {
	return []models.TopSupplier{
		{ID: 1, Name: "GreenField Supplies", Rating: 4.9, Orders: 15},
		{ID: 2, Name: "FarmFresh Direct", Rating: 4.8, Orders: 12},
		{ID: 3, Name: "Quality Foods Co", Rating: 4.7, Orders: 8},
	}
}

// SeedVendorSummary returns the dashboard figures for the demo vendor
func SeedVendorSummary() models.VendorSummary {
	return models.VendorSummary{
		VendorID:          1,
		VendorName:        "John",
		ActiveOrders:      12,
		PendingDeliveries: 3,
		ActiveOrdersTrend: 15,
		MonthlySavings:    2847,
		SavingsTrend:      23,
		TrustedSuppliers:  18,
		GroupBuysJoined:   7,
		GroupBuysTrend:    8,
		Notifications:     3,
	}
}

// SeedData seeds the mock marketplace records into empty tables
func SeedData(db *gorm.DB, log *zap.Logger) error {
	log.Info("Checking if database needs seeding...")

	var count int64
	if err := db.Model(&models.Supplier{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count suppliers: %w", err)
	}
	if count > 0 {
		log.Info("Database already has data. Skipping seed.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		suppliers := SeedSuppliers()
		if err := tx.Create(&suppliers).Error; err != nil {
			return fmt.Errorf("failed to seed suppliers: %w", err)
		}

		groupBuys := SeedGroupBuys()
		if err := tx.Create(&groupBuys).Error; err != nil {
			return fmt.Errorf("failed to seed group buys: %w", err)
		}

		orders := SeedRecentOrders()
		if err := tx.Create(&orders).Error; err != nil {
			return fmt.Errorf("failed to seed recent orders: %w", err)
		}

		top := SeedTopSuppliers()
		if err := tx.Create(&top).Error; err != nil {
			return fmt.Errorf("failed to seed top suppliers: %w", err)
		}

		summary := SeedVendorSummary()
		if err := tx.Create(&summary).Error; err != nil {
			return fmt.Errorf("failed to seed vendor summary: %w", err)
		}

		log.Info("Seed completed",
			zap.Int("suppliers", len(suppliers)),
			zap.Int("group_buys", len(groupBuys)),
			zap.Int("recent_orders", len(orders)),
		)
		return nil
	})
}

// SeededTables lists seeded tables in reverse dependency order, for
// clearing before a forced re-seed
func SeededTables() []string {
	return []string{
		"join_requests",
		"group_buys",
		"recent_orders",
		"top_suppliers",
		"vendor_summaries",
		"suppliers",
	}
}
