package item

import (
	"ReliefStock-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		AddItem(ctx context.Context, item *entities.Item) error
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		UpdateItem(ctx context.Context, item *entities.Item) error
		GetItems(ctx context.Context, category, donorID string, page, limit int) ([]*entities.Item, int64, error)
		GetExpiringItems(ctx context.Context, from, to time.Time) ([]*entities.Item, error)
		GetExpiredItems(ctx context.Context, today time.Time) ([]*entities.Item, error)
		CountDonationsForItem(ctx context.Context, itemID string) (int64, error)
		GetDashboardStats(ctx context.Context, today time.Time) (map[string]int64, error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) AddItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) GetItems(ctx context.Context, category, donorID string, page, limit int) ([]*entities.Item, int64, error) {
	var items []*entities.Item
	var count int64

	offset := (page - 1) * limit

	// Inventory listings only show items still in stock.
	query := r.db.WithContext(ctx).Where("quantity > 0")

	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if donorID != "" {
		query = query.Where("donor_id = ?", donorID)
	}

	if err := query.Model(&entities.Item{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Donor").
		Offset(offset).Limit(limit).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *itemRepository) GetExpiringItems(ctx context.Context, from, to time.Time) ([]*entities.Item, error) {
	var items []*entities.Item

	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("expiry_date >= ? AND expiry_date <= ? AND quantity > 0", from, to).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) GetExpiredItems(ctx context.Context, today time.Time) ([]*entities.Item, error) {
	var items []*entities.Item

	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("expiry_date < ? AND quantity > 0", today).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) CountDonationsForItem(ctx context.Context, itemID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("item_id = ?", itemID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *itemRepository) GetDashboardStats(ctx context.Context, today time.Time) (map[string]int64, error) {
	var totalItems, totalDonors, totalReceivers, totalDonations, totalAlerts int64
	var expiringSoon, expiredItems, lowStockItems int64

	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Count(&totalItems).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Donor{}).
		Count(&totalDonors).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Receiver{}).
		Count(&totalReceivers).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Donation{}).
		Count(&totalDonations).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Alert{}).
		Where("is_acknowledged = ?", false).
		Count(&totalAlerts).Error; err != nil {
		return nil, err
	}

	weekAhead := today.AddDate(0, 0, 7)
	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("expiry_date >= ? AND expiry_date <= ? AND quantity > 0", today, weekAhead).
		Count(&expiringSoon).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("expiry_date < ? AND quantity > 0", today).
		Count(&expiredItems).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("quantity <= ? AND quantity > 0", 10).
		Count(&lowStockItems).Error; err != nil {
		return nil, err
	}

	stats := map[string]int64{
		"total_items":     totalItems,
		"total_donors":    totalDonors,
		"total_receivers": totalReceivers,
		"total_donations": totalDonations,
		"total_alerts":    totalAlerts,
		"expiring_soon":   expiringSoon,
		"expired_items":   expiredItems,
		"low_stock_items": lowStockItems,
	}

	return stats, nil
}
