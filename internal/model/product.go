package model

import "github.com/google/uuid"

// Product is a stock-tracked catalog item sold by the physical-goods store.
// Price is stored as numeric(15,0) and carried as a string on the wire.
// Quantity is only mutated by order placement and manual adjustment; it is
// allowed to go negative.
type Product struct {
	BaseModel
	Name        string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string     `gorm:"type:text" json:"description" validate:"required"`
	Image       *string    `gorm:"type:varchar(255)" json:"image" validate:"omitempty,url"`
	IsPublished bool       `gorm:"default:true" json:"is_published"`
	Price       string     `gorm:"type:numeric(15,0);not null" json:"price" validate:"required"`
	Quantity    int        `gorm:"default:0" json:"quantity"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Category    *Category  `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`

	InventoryEntries []InventoryEntry `json:"inventory_entries,omitempty"`
	OrderItems       []OrderItem      `json:"order_items,omitempty"`
}
