package service

import (
	"errors"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"
	"go-storepos/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user with same email/username already exist")
)

type UserService interface {
	CreateEmployee(req *CreateEmployeeRequest) (*model.User, error)
	UpdateEmployee(userID uuid.UUID, req *UpdateEmployeeRequest) (*model.User, error)
	ChangePassword(userID uuid.UUID, newPassword string) error
	DeleteEmployee(userID uuid.UUID) error
	GetAllEmployees() ([]model.UserResponse, error)
	GetEmployeeByID(id uuid.UUID) (*EmployeeDetail, error)
}

type CreateEmployeeRequest struct {
	Name     string         `json:"name" validate:"required"`
	Username string         `json:"username" validate:"required,min=4,max=20,lowercase,alphanum"`
	Email    string         `json:"email" validate:"required,email"`
	Phone    string         `json:"phone"`
	Image    *string        `json:"image" validate:"omitempty,url"`
	Password string         `json:"password" validate:"required,min=8"`
	Role     model.UserRole `json:"role" validate:"required,oneof=ADMIN STOREONE STORETWO"`
}

type UpdateEmployeeRequest struct {
	Name     string                 `json:"name" validate:"required"`
	Username string                 `json:"username" validate:"required,min=4,max=20,lowercase,alphanum"`
	Email    string                 `json:"email" validate:"required,email"`
	Phone    string                 `json:"phone"`
	Image    *string                `json:"image" validate:"omitempty,url"`
	Role     model.UserRole         `json:"role" validate:"required,oneof=ADMIN STOREONE STORETWO"`
	Status   model.EmploymentStatus `json:"status" validate:"required,oneof=EMPLOYED PENDING RESIGN"`
}

// EmployeeDetail is the employee page payload: the account with its full
// clocking history plus the summed worked seconds.
type EmployeeDetail struct {
	Employee   model.UserResponse `json:"employee"`
	TotalClock int                `json:"total_clock"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateEmployee(req *CreateEmployeeRequest) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, ErrUserExists
	}
	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return nil, ErrUserExists
	}

	user := &model.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Image:    req.Image,
		Role:     req.Role,
		Status:   model.StatusEmployed,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateEmployee(userID uuid.UUID, req *UpdateEmployeeRequest) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user.Name = req.Name
	user.Username = req.Username
	user.Email = req.Email
	user.Phone = req.Phone
	user.Image = req.Image
	user.Role = req.Role
	user.Status = req.Status

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) ChangePassword(userID uuid.UUID, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err := user.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash password")
	}

	return s.userRepo.UpdatePassword(user.ID, user.Password)
}

func (s *userService) DeleteEmployee(userID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(userID)
}

func (s *userService) GetAllEmployees() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetEmployeeByID(id uuid.UUID) (*EmployeeDetail, error) {
	user, err := s.userRepo.FindByIDWithClockings(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	totalClock := 0
	for _, clocking := range user.Clockings {
		if clocking.TotalHour != nil {
			totalClock += *clocking.TotalHour
		}
	}

	return &EmployeeDetail{
		Employee:   user.ToResponse(),
		TotalClock: totalClock,
	}, nil
}
