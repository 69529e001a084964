package model

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderPending OrderStatus = "PENDING"
	OrderProcess OrderStatus = "PROCESS"
	OrderSuccess OrderStatus = "SUCCESS"
	OrderFailed  OrderStatus = "FAILED"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Order is one customer transaction: either a set of product lines or exactly
// one service. Name holds the customer name. TotalPrice is numeric(15,0)
// carried as a string.
type Order struct {
	BaseModel
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Status      OrderStatus   `gorm:"type:varchar(20);not null;default:'PROCESS'" json:"status"`
	Payment     PaymentStatus `gorm:"type:varchar(20);not null;default:'PAID'" json:"payment"`
	TotalPrice  string        `gorm:"type:numeric(15,0);not null" json:"total_price"`
	Method      string        `gorm:"type:varchar(255)" json:"method"`
	Description string        `gorm:"type:text" json:"description,omitempty"`
	UserID      *uuid.UUID    `gorm:"type:uuid;index" json:"user_id"`
	User        *User         `gorm:"constraint:OnDelete:SET NULL" json:"user,omitempty"`
	ServiceID   *uuid.UUID    `gorm:"type:uuid;index" json:"service_id"`
	Service     *Service      `gorm:"constraint:OnDelete:SET NULL" json:"service,omitempty"`

	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem joins a product to an order with the line quantity. The composite
// primary key allows at most one line per product per order; duplicate lines
// in a request are merged before insert.
type OrderItem struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey" json:"product_id"`
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"order_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`

	Product *Product `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Order   *Order   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the join table name explicit
func (OrderItem) TableName() string {
	return "order_items"
}
