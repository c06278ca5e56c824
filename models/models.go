package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables
		&Supplier{},
		&TopSupplier{},
		&VendorSummary{},
		&RecentOrder{},
		&GroupBuy{},

		// 2. Tables with dependencies
		&JoinRequest{}, // depends on: GroupBuy
	}
}
