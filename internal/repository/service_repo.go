package repository

import (
	"go-storepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(service *model.Service) error
	FindPage(page, perPage int, search string) ([]model.Service, int, error)
	FindPublishedPage(page, perPage int, search string) ([]model.Service, int, error)
	FindByID(id uuid.UUID) (*model.Service, error)
	Update(service *model.Service) error
	Delete(id uuid.UUID) error
}

type serviceRepo struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) ServiceRepository {
	return &serviceRepo{db}
}

func (r *serviceRepo) Create(service *model.Service) error {
	return r.db.Create(service).Error
}

func (r *serviceRepo) findPage(page, perPage int, search string, publishedOnly bool) ([]model.Service, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	query := r.db.Model(&model.Service{})
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

	var services []model.Service
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&services).Error
	if err != nil {
		return nil, 0, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return services, totalPages, nil
}

func (r *serviceRepo) FindPage(page, perPage int, search string) ([]model.Service, int, error) {
	return r.findPage(page, perPage, search, false)
}

func (r *serviceRepo) FindPublishedPage(page, perPage int, search string) ([]model.Service, int, error) {
	return r.findPage(page, perPage, search, true)
}

func (r *serviceRepo) FindByID(id uuid.UUID) (*model.Service, error) {
	var service model.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepo) Update(service *model.Service) error {
	return r.db.Save(service).Error
}

func (r *serviceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Service{}, "id = ?", id).Error
}
