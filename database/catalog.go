package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/coder-yr/taste-link/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a catalog record does not exist
var ErrNotFound = errors.New("database: record not found")

// Catalog is the read side of the marketplace shown by the pages
type Catalog interface {
	Suppliers(ctx context.Context) ([]models.Supplier, error)
	Supplier(ctx context.Context, id string) (models.Supplier, error)
	GroupBuys(ctx context.Context, board models.Board) ([]models.GroupBuy, error)
	GroupBuy(ctx context.Context, id string) (models.GroupBuy, error)
	RecentOrders(ctx context.Context) ([]models.RecentOrder, error)
	TopSuppliers(ctx context.Context) ([]models.TopSupplier, error)
	VendorSummary(ctx context.Context) (models.VendorSummary, error)
}

// MemoryCatalog serves the seed records from memory
type MemoryCatalog struct {
	mu           sync.RWMutex
	suppliers    []models.Supplier
	groupBuys    []models.GroupBuy
	orders       []models.RecentOrder
	topSuppliers []models.TopSupplier
	summary      models.VendorSummary
	joinRequests []models.JoinRequest
}

// NewMemoryCatalog creates a catalog holding the seed data
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		suppliers:    SeedSuppliers(),
		groupBuys:    SeedGroupBuys(),
		orders:       SeedRecentOrders(),
		topSuppliers: SeedTopSuppliers(),
		summary:      SeedVendorSummary(),
	}
}

// Suppliers returns every supplier in directory order
func (c *MemoryCatalog) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Supplier, len(c.suppliers))
	for i, s := range c.suppliers {
		s.Specialties = append(models.StringList(nil), s.Specialties...)
		out[i] = s
	}
	return out, nil
}

// Supplier finds a supplier by id
func (c *MemoryCatalog) Supplier(ctx context.Context, id string) (models.Supplier, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, s := range c.suppliers {
		if s.ID == id {
			s.Specialties = append(models.StringList(nil), s.Specialties...)
			return s, nil
		}
	}
	return models.Supplier{}, fmt.Errorf("supplier %s: %w", id, ErrNotFound)
}

// GroupBuys returns the group buys listed on board
func (c *MemoryCatalog) GroupBuys(ctx context.Context, board models.Board) ([]models.GroupBuy, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []models.GroupBuy{}
	for _, g := range c.groupBuys {
		if g.Board == board {
			out = append(out, g)
		}
	}
	return out, nil
}

// GroupBuy finds a group buy by id
func (c *MemoryCatalog) GroupBuy(ctx context.Context, id string) (models.GroupBuy, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, g := range c.groupBuys {
		if g.ID == id {
			return g, nil
		}
	}
	return models.GroupBuy{}, fmt.Errorf("group buy %s: %w", id, ErrNotFound)
}

// RecentOrders returns the vendor's latest orders
func (c *MemoryCatalog) RecentOrders(ctx context.Context) ([]models.RecentOrder, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.RecentOrder(nil), c.orders...), nil
}

// TopSuppliers returns the vendor's most used suppliers
func (c *MemoryCatalog) TopSuppliers(ctx context.Context) ([]models.TopSupplier, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.TopSupplier(nil), c.topSuppliers...), nil
}

// VendorSummary returns the dashboard figures
func (c *MemoryCatalog) VendorSummary(ctx context.Context) (models.VendorSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.summary, nil
}

// Submit records a join request in memory
func (c *MemoryCatalog) Submit(ctx context.Context, req models.JoinRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.GroupBuy(ctx, req.CampaignID); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.joinRequests = append(c.joinRequests, req)
	return nil
}

// JoinRequests returns the recorded join requests
func (c *MemoryCatalog) JoinRequests() []models.JoinRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.JoinRequest(nil), c.joinRequests...)
}

// GormCatalog reads the catalog through GORM
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a catalog backed by db
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// Suppliers returns every supplier in directory order
func (c *GormCatalog) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := c.db.WithContext(ctx).Order("id").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}

// Supplier finds a supplier by id
func (c *GormCatalog) Supplier(ctx context.Context, id string) (models.Supplier, error) {
	var s models.Supplier
	err := c.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s, fmt.Errorf("supplier %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return s, fmt.Errorf("get supplier %s: %w", id, err)
	}
	return s, nil
}

// GroupBuys returns the group buys listed on board
func (c *GormCatalog) GroupBuys(ctx context.Context, board models.Board) ([]models.GroupBuy, error) {
	var groupBuys []models.GroupBuy
	err := c.db.WithContext(ctx).
		Where("board = ?", board).
		Order("position").
		Find(&groupBuys).Error
	if err != nil {
		return nil, fmt.Errorf("list group buys: %w", err)
	}
	return groupBuys, nil
}

// GroupBuy finds a group buy by id
func (c *GormCatalog) GroupBuy(ctx context.Context, id string) (models.GroupBuy, error) {
	var g models.GroupBuy
	err := c.db.WithContext(ctx).Where("id = ?", id).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return g, fmt.Errorf("group buy %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return g, fmt.Errorf("get group buy %s: %w", id, err)
	}
	return g, nil
}

// RecentOrders returns the vendor's latest orders
func (c *GormCatalog) RecentOrders(ctx context.Context) ([]models.RecentOrder, error) {
	var orders []models.RecentOrder
	if err := c.db.WithContext(ctx).Order("position").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	return orders, nil
}

// TopSuppliers returns the vendor's most used suppliers
func (c *GormCatalog) TopSuppliers(ctx context.Context) ([]models.TopSupplier, error) {
	var top []models.TopSupplier
	if err := c.db.WithContext(ctx).Order("orders DESC").Find(&top).Error; err != nil {
		return nil, fmt.Errorf("list top suppliers: %w", err)
	}
	return top, nil
}

// VendorSummary returns the dashboard figures
func (c *GormCatalog) VendorSummary(ctx context.Context) (models.VendorSummary, error) {
	var summary models.VendorSummary
	err := c.db.WithContext(ctx).Order("vendor_id").First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return summary, fmt.Errorf("vendor summary: %w", ErrNotFound)
	}
	if err != nil {
		return summary, fmt.Errorf("get vendor summary: %w", err)
	}
	return summary, nil
}

// Submit persists a join request after checking its campaign exists
func (c *GormCatalog) Submit(ctx context.Context, req models.JoinRequest) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.GroupBuy{}).Where("id = ?", req.CampaignID).Count(&count).Error; err != nil {
			return fmt.Errorf("check campaign %s: %w", req.CampaignID, err)
		}
		if count == 0 {
			return fmt.Errorf("group buy %s: %w", req.CampaignID, ErrNotFound)
		}
		if err := tx.Create(&req).Error; err != nil {
			return fmt.Errorf("save join request: %w", err)
		}
		return nil
	})
}

// JoinRequests lists persisted join requests for a campaign, oldest first
func (c *GormCatalog) JoinRequests(ctx context.Context, campaignID string) ([]models.JoinRequest, error) {
	var reqs []models.JoinRequest
	err := c.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("submitted_at").
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("list join requests: %w", err)
	}
	return reqs, nil
}
