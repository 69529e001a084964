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
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type ProductService interface {
	CreateProduct(req *model.Product) error
	UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	AddQuantity(req *AdjustQuantityRequest) (*model.Product, error)
	GetProducts(page, perPage int, search string) ([]model.Product, int, error)
	GetPublishedProducts(page, perPage int, search string) ([]model.Product, int, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
}

// AdjustQuantityRequest is the manual inventory adjustment input: a signed
// delta expressed as an is_plus flag plus a magnitude.
type AdjustQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	IsPlus    bool   `json:"is_plus"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type productService struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	inventoryRepo repository.InventoryRepository
	wsHub         *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, iRepo repository.InventoryRepository, hub *ws.Hub) ProductService {
	return &productService{
		productRepo:   pRepo,
		categoryRepo:  cRepo,
		inventoryRepo: iRepo,
		wsHub:         hub,
	}
}

func (s *productService) CreateProduct(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validator.FirstError(errs)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			return ErrCategoryNotFound
		}
	}

	return s.productRepo.Create(req)
}

func (s *productService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
	}

	// Quantity is deliberately not updatable here; it only moves through
	// order placement and AddQuantity.
	existing.Name = req.Name
	existing.Description = req.Description
	existing.Image = req.Image
	existing.IsPublished = req.IsPublished
	existing.Price = req.Price
	existing.CategoryID = req.CategoryID

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *productService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}

// AddQuantity applies a signed stock delta and appends one ledger row; the
// repository runs both in a single transaction so the ledger can never
// disagree with the counter.
func (s *productService) AddQuantity(req *AdjustQuantityRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if err := s.inventoryRepo.Adjust(productID, req.IsPlus, req.Quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, err
	}

	verb := "added to"
	if !req.IsPlus {
		verb = "removed from"
	}
	go s.wsHub.BroadcastEvent(ws.Event{
		Type:    "stock_adjusted",
		Message: fmt.Sprintf("%d units %s '%s'", req.Quantity, verb, product.Name),
		Data: map[string]interface{}{
			"product_id":   product.ID,
			"is_plus":      req.IsPlus,
			"amount":       req.Quantity,
			"new_quantity": product.Quantity,
		},
	})

	return product, nil
}

func (s *productService) GetProducts(page, perPage int, search string) ([]model.Product, int, error) {
	return s.productRepo.FindPage(page, perPage, search)
}

func (s *productService) GetPublishedProducts(page, perPage int, search string) ([]model.Product, int, error) {
	return s.productRepo.FindPublishedPage(page, perPage, search)
}

func (s *productService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
