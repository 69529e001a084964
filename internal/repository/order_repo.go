package repository

import (
	"time"

	"go-storepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	CreateWithItems(order *model.Order, items []model.OrderItem) error
	FindAll() ([]model.Order, error)
	FindByID(id uuid.UUID) (*model.Order, error)
	FindByUser(userID uuid.UUID) ([]model.Order, error)
	FindUncompleteByUser(userID uuid.UUID, page, perPage int, search string) ([]model.Order, int, error)
	FindBetween(start, end time.Time) ([]model.Order, error)
	FindBetweenByUser(userID uuid.UUID, start, end time.Time) ([]model.Order, error)
	Update(order *model.Order) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

// CreateWithItems persists the order and its lines in one transaction: either
// every line lands or none does. Each line debits the product counter with a
// single atomic update, so two simultaneous orders against the same product
// cannot lose a decrement. A zero-row debit means the product no longer
// exists and rolls the whole order back. There is deliberately no
// availability check; quantity may go negative.
func (r *orderRepo) CreateWithItems(order *model.Order, items []model.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID

			res := tx.Model(&model.Product{}).
				Where("id = ?", items[i].ProductID).
				Update("quantity", gorm.Expr("quantity - ?", items[i].Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}

			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("User").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.
		Preload("Items.Product").
		Preload("Service").
		Preload("User").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) FindByUser(userID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// FindUncompleteByUser pages through the caller's orders still in PENDING or
// PROCESS, optionally filtered by customer name.
func (r *orderRepo) FindUncompleteByUser(userID uuid.UUID, page, perPage int, search string) ([]model.Order, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	query := r.db.Model(&model.Order{}).
		Where("user_id = ?", userID).
		Where("status IN ?", []model.OrderStatus{model.OrderPending, model.OrderProcess})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	err := query.
		Preload("Service").
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return orders, totalPages, nil
}

func (r *orderRepo) FindBetween(start, end time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Preload("Items").
		Preload("User").
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindBetweenByUser(userID uuid.UUID, start, end time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Update(order *model.Order) error {
	return r.db.Save(order).Error
}
