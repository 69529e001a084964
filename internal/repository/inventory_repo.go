package repository

import (
	"go-storepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	Adjust(productID uuid.UUID, isPlus bool, amount int) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

// Adjust applies the signed delta to the product counter and appends the
// matching ledger row in one transaction, so the ledger can never disagree
// with the counter. The counter update is a single atomic statement; a
// zero-row update means the product does not exist and rolls everything back.
func (r *inventoryRepo) Adjust(productID uuid.UUID, isPlus bool, amount int) error {
	delta := amount
	if !isPlus {
		delta = -amount
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Product{}).
			Where("id = ?", productID).
			Update("quantity", gorm.Expr("quantity + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		entry := &model.InventoryEntry{
			ProductID: productID,
			IsPlus:    isPlus,
			Amount:    amount,
		}
		return tx.Create(entry).Error
	})
}
