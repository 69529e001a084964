package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleStoreOne UserRole = "STOREONE" // physical-goods store
	RoleStoreTwo UserRole = "STORETWO" // service store
)

type EmploymentStatus string

const (
	StatusEmployed EmploymentStatus = "EMPLOYED"
	StatusPending  EmploymentStatus = "PENDING"
	StatusResign   EmploymentStatus = "RESIGN"
)

// User represents an employee or admin account.
type User struct {
	BaseModel
	Name     string           `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Username string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"username" validate:"required,min=4,max=20"`
	Email    string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Phone    string           `gorm:"type:varchar(255)" json:"phone"`
	Image    *string          `gorm:"type:varchar(255)" json:"image,omitempty"`
	Password string           `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Role     UserRole         `gorm:"type:varchar(20);not null;default:'STOREONE'" json:"role" validate:"required,oneof=ADMIN STOREONE STORETWO"`
	Status   EmploymentStatus `gorm:"type:varchar(20);not null;default:'EMPLOYED'" json:"status" validate:"omitempty,oneof=EMPLOYED PENDING RESIGN"`

	// Relations
	Clockings []Clocking `gorm:"constraint:OnDelete:CASCADE" json:"clockings,omitempty"`
	Orders    []Order    `gorm:"constraint:OnDelete:SET NULL" json:"orders,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without the password hash)
type UserResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Image     *string          `json:"image,omitempty"`
	Role      UserRole         `json:"role"`
	Status    EmploymentStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	Clockings []Clocking       `json:"clockings,omitempty"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Image:     u.Image,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		Clockings: u.Clockings,
	}
}
