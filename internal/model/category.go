package model

// Category groups products for the physical-goods store.
type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`

	Products []Product `gorm:"constraint:OnDelete:SET NULL" json:"products,omitempty"`
}
