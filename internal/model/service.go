package model

// Service is a catalog item of the service store. Services are not
// stock-tracked.
type Service struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description" validate:"required"`
	IsPublished bool   `gorm:"default:true" json:"is_published"`
	Price       string `gorm:"type:numeric(15,0);not null" json:"price" validate:"required"`

	Orders []Order `gorm:"constraint:OnDelete:SET NULL" json:"orders,omitempty"`
}
