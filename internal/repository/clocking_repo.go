package repository

import (
	"go-storepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClockingRepository interface {
	Create(clocking *model.Clocking) error
	Update(clocking *model.Clocking) error
	FindByID(id uuid.UUID) (*model.Clocking, error)
	FindByUser(userID uuid.UUID) ([]model.Clocking, error)
	FindLatestByUser(userID uuid.UUID) (*model.Clocking, error)
	FindOpenByUser(userID uuid.UUID) (*model.Clocking, error)
}

type clockingRepo struct {
	db *gorm.DB
}

func NewClockingRepo(db *gorm.DB) ClockingRepository {
	return &clockingRepo{db}
}

func (r *clockingRepo) Create(clocking *model.Clocking) error {
	return r.db.Create(clocking).Error
}

func (r *clockingRepo) Update(clocking *model.Clocking) error {
	return r.db.Save(clocking).Error
}

func (r *clockingRepo) FindByID(id uuid.UUID) (*model.Clocking, error) {
	var clocking model.Clocking
	if err := r.db.First(&clocking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &clocking, nil
}

func (r *clockingRepo) FindByUser(userID uuid.UUID) ([]model.Clocking, error) {
	var clockings []model.Clocking
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&clockings).Error
	return clockings, err
}

func (r *clockingRepo) FindLatestByUser(userID uuid.UUID) (*model.Clocking, error) {
	var clocking model.Clocking
	err := r.db.Where("user_id = ?", userID).Order("date DESC").First(&clocking).Error
	if err != nil {
		return nil, err
	}
	return &clocking, nil
}

// FindOpenByUser returns the running session, if any.
func (r *clockingRepo) FindOpenByUser(userID uuid.UUID) (*model.Clocking, error) {
	var clocking model.Clocking
	err := r.db.
		Where("user_id = ? AND end_at IS NULL", userID).
		Order("date DESC").
		First(&clocking).Error
	if err != nil {
		return nil, err
	}
	return &clocking, nil
}
