package repository

import (
	"go-storepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindPage(page, perPage int, search string) ([]model.Product, int, error)
	FindPublishedPage(page, perPage int, search string) ([]model.Product, int, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) findPage(page, perPage int, search string, publishedOnly bool) ([]model.Product, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	query := r.db.Model(&model.Product{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := query.
		Preload("Category").
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return products, totalPages, nil
}

func (r *productRepo) FindPage(page, perPage int, search string) ([]model.Product, int, error) {
	return r.findPage(page, perPage, search, false)
}

func (r *productRepo) FindPublishedPage(page, perPage int, search string) ([]model.Product, int, error) {
	return r.findPage(page, perPage, search, true)
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.
		Preload("Category").
		Preload("InventoryEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

// Delete removes the product; its order items cascade away at the database
// level while the orders themselves survive.
func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}
