package model

import "github.com/google/uuid"

// InventoryEntry is one row of the append-only stock ledger. Rows are written
// by the manual adjustment operation only; sales decrements are not logged
// here. Immutable once created.
type InventoryEntry struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product   *Product  `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty" validate:"-"`
	IsPlus    bool      `gorm:"default:true" json:"is_plus"`
	Amount    int       `gorm:"not null" json:"amount" validate:"required,gt=0"`
}
