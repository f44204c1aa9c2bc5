package repository

import (
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderLine(tx *gorm.DB, l *entity.OrderLine) error {
	return tx.Create(l).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard writes the new status only while the stored status is
// still in the expected set. Zero rows affected means the caller's view of
// the order is stale (or the order is gone).
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from []entity.OrderStatus, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ListOrdersForUser returns every order of the user, newest first, with its
// lines preloaded.
func (r *OrderRepository) ListOrdersForUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Lines").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// CanteenNamesForOrders resolves, best effort, a canteen name per order by
// walking order lines back to their originating food item. Orders whose food
// items were deleted simply miss from the map.
func (r *OrderRepository) CanteenNamesForOrders(orderIDs []uint) (map[uint]string, error) {
	names := make(map[uint]string)
	if len(orderIDs) == 0 {
		return names, nil
	}

	var rows []struct {
		OrderID uint
		Name    string
	}
	err := r.DB.Table("order_lines AS ol").
		Select("ol.order_id, c.name").
		Joins("JOIN food_items fi ON fi.id = ol.food_item_id").
		Joins("JOIN canteens c ON c.id = fi.canteen_id").
		Where("ol.order_id IN ?", orderIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if _, ok := names[row.OrderID]; !ok {
			names[row.OrderID] = row.Name
		}
	}
	return names, nil
}

// OrderIDsForCanteen collects the distinct orders containing at least one
// line that traces back to the canteen's food items.
func (r *OrderRepository) OrderIDsForCanteen(canteenID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Table("order_lines AS ol").
		Distinct("ol.order_id").
		Joins("JOIN food_items fi ON fi.id = ol.food_item_id").
		Where("fi.canteen_id = ?", canteenID).
		Pluck("ol.order_id", &ids).Error
	return ids, err
}

// OrderBelongsToCanteen reports whether any line of the order traces back
// to the canteen. Used to authorize seller status transitions.
func (r *OrderRepository) OrderBelongsToCanteen(orderID, canteenID uint) (bool, error) {
	var cnt int64
	err := r.DB.Table("order_lines AS ol").
		Joins("JOIN food_items fi ON fi.id = ol.food_item_id").
		Where("ol.order_id = ? AND fi.canteen_id = ?", orderID, canteenID).
		Count(&cnt).Error
	return cnt > 0, err
}

// ListActiveOrdersByIDs fetches full orders for the id set, excluding
// terminal storage statuses, newest first.
func (r *OrderRepository) ListActiveOrdersByIDs(ids []uint) ([]entity.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []entity.Order
	err := r.DB.Where("id IN ? AND status NOT IN ?", ids,
		[]entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled}).
		Preload("Lines").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
