package service

import (
	"errors"
	"fmt"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"
	"go-storepos/internal/ws"
	"go-storepos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductMissing  = errors.New("one or more ordered products no longer exist")
	ErrUnpaidSuccess   = errors.New("payment must be completed before the status is changed to successful")
	ErrServiceNotFound = errors.New("service not found")
)

type OrderService interface {
	PlaceProductOrder(req *PlaceProductOrderRequest, employeeID string) (*model.Order, error)
	PlaceServiceOrder(req *PlaceServiceOrderRequest, employeeID string) (*model.Order, error)
	UpdateOrder(req *UpdateOrderRequest) (*model.Order, error)
	GetAllOrders() ([]model.Order, error)
	GetOrdersByEmployee(employeeID string) ([]model.Order, error)
	GetUncompleteOrders(employeeID string, page, perPage int, search string) ([]model.Order, int, error)
	GetOrderByID(id uuid.UUID) (*model.Order, error)
}

// OrderLine is one requested product line. Duplicate lines for the same
// product are merged before insert because the join table keys on
// (product_id, order_id).
type OrderLine struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type PlaceProductOrderRequest struct {
	Name       string              `json:"name" validate:"required"`
	Status     model.OrderStatus   `json:"status" validate:"omitempty,oneof=PENDING PROCESS SUCCESS FAILED"`
	Payment    model.PaymentStatus `json:"payment" validate:"omitempty,oneof=PENDING PAID FAILED"`
	TotalPrice string              `json:"total_price" validate:"required,number"`
	Method     string              `json:"method" validate:"required"`
	Products   []OrderLine         `json:"products" validate:"required,min=1,dive"`
}

type PlaceServiceOrderRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description" validate:"required"`
	Status      model.OrderStatus   `json:"status" validate:"omitempty,oneof=PENDING PROCESS SUCCESS FAILED"`
	Payment     model.PaymentStatus `json:"payment" validate:"omitempty,oneof=PENDING PAID FAILED"`
	TotalPrice  string              `json:"total_price" validate:"required,number"`
	ServiceID   string              `json:"service_id" validate:"required,uuid4"`
}

type UpdateOrderRequest struct {
	OrderID string              `json:"order_id" validate:"required,uuid4"`
	Status  model.OrderStatus   `json:"status" validate:"required,oneof=PENDING PROCESS SUCCESS FAILED"`
	Payment model.PaymentStatus `json:"payment" validate:"required,oneof=PENDING PAID FAILED"`
	Method  *string             `json:"method"`
}

type orderService struct {
	orderRepo   repository.OrderRepository
	serviceRepo repository.ServiceRepository
	wsHub       *ws.Hub
}

func NewOrderService(oRepo repository.OrderRepository, sRepo repository.ServiceRepository, hub *ws.Hub) OrderService {
	return &orderService{
		orderRepo:   oRepo,
		serviceRepo: sRepo,
		wsHub:       hub,
	}
}

// mergeOrderLines collapses duplicate product lines by summing quantities,
// preserving first-seen order.
func mergeOrderLines(lines []OrderLine) []OrderLine {
	merged := make([]OrderLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		if i, ok := index[line.ProductID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}
	return merged
}

// PlaceProductOrder builds the order with its merged lines and hands them to
// the repository as one atomic unit: either every line lands and debits its
// product, or none does. There is deliberately no availability check;
// quantity may go negative, matching the store's over-sell policy.
func (s *orderService) PlaceProductOrder(req *PlaceProductOrderRequest, employeeID string) (*model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	userID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, errors.New("invalid employee ID")
	}

	if req.Status == "" {
		req.Status = model.OrderProcess
	}
	if req.Payment == "" {
		req.Payment = model.PaymentPending
	}

	lines := mergeOrderLines(req.Products)
	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, ErrProductMissing
		}
		items = append(items, model.OrderItem{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	order := &model.Order{
		Name:       req.Name,
		Status:     req.Status,
		Payment:    req.Payment,
		TotalPrice: req.TotalPrice,
		Method:     req.Method,
		UserID:     &userID,
	}

	if err := s.orderRepo.CreateWithItems(order, items); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductMissing
		}
		return nil, err
	}

	go s.wsHub.BroadcastEvent(ws.Event{
		Type:    "order_created",
		Message: fmt.Sprintf("Order for '%s' placed with %d product line(s)", order.Name, len(lines)),
		Data: map[string]interface{}{
			"order_id":    order.ID,
			"total_price": order.TotalPrice,
			"lines":       len(lines),
		},
	})

	return order, nil
}

// PlaceServiceOrder records a service-store sale. Services are not
// stock-tracked so this is a single insert.
func (s *orderService) PlaceServiceOrder(req *PlaceServiceOrderRequest, employeeID string) (*model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	userID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, errors.New("invalid employee ID")
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, ErrServiceNotFound
	}
	if _, err := s.serviceRepo.FindByID(serviceID); err != nil {
		return nil, ErrServiceNotFound
	}

	if req.Status == "" {
		req.Status = model.OrderProcess
	}
	if req.Payment == "" {
		req.Payment = model.PaymentPending
	}

	order := &model.Order{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Payment:     req.Payment,
		TotalPrice:  req.TotalPrice,
		UserID:      &userID,
		ServiceID:   &serviceID,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastEvent(ws.Event{
		Type:    "order_created",
		Message: fmt.Sprintf("Service order for '%s' placed", order.Name),
		Data: map[string]interface{}{
			"order_id":    order.ID,
			"service_id":  serviceID,
			"total_price": order.TotalPrice,
		},
	})

	return order, nil
}

// UpdateOrder transitions status/payment/method. An order may only move to
// SUCCESS once its payment is PAID; violations surface as a field-level error
// on status.
func (s *orderService) UpdateOrder(req *UpdateOrderRequest) (*model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	if req.Status == model.OrderSuccess && req.Payment != model.PaymentPaid {
		return nil, &validator.FieldError{Field: "status", Message: ErrUnpaidSuccess.Error()}
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	order.Status = req.Status
	order.Payment = req.Payment
	if req.Method != nil {
		order.Method = *req.Method
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderService) GetAllOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) GetOrdersByEmployee(employeeID string) ([]model.Order, error) {
	userID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, errors.New("invalid employee ID")
	}
	return s.orderRepo.FindByUser(userID)
}

func (s *orderService) GetUncompleteOrders(employeeID string, page, perPage int, search string) ([]model.Order, int, error) {
	userID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, 0, errors.New("invalid employee ID")
	}
	return s.orderRepo.FindUncompleteByUser(userID, page, perPage, search)
}

func (s *orderService) GetOrderByID(id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
