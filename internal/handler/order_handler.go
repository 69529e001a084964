package handler

import (
	"errors"
	"strconv"

	"go-storepos/internal/service"
	"go-storepos/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers to read user info from the JWT context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return ""
	}
	return userID.(string)
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key, strconv.Itoa(def)))
	if err != nil || v < 1 {
		return def
	}
	return v
}

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// CreateProductOrder places a product-store order
// POST /api/v1/store/orders/product
func (h *OrderHandler) CreateProductOrder(c *fiber.Ctx) error {
	var req service.PlaceProductOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.PlaceProductOrder(&req, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrProductMissing) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": order})
}

// CreateServiceOrder places a service-store order
// POST /api/v1/store/orders/service
func (h *OrderHandler) CreateServiceOrder(c *fiber.Ctx) error {
	var req service.PlaceServiceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.PlaceServiceOrder(&req, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": order})
}

// UpdateOrder transitions status/payment/method
// PUT /api/v1/store/orders/:id
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	var req service.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	req.OrderID = c.Params("id")

	order, err := h.service.UpdateOrder(&req)
	if err != nil {
		var fieldErr *validator.FieldError
		if errors.As(err, &fieldErr) {
			return c.Status(400).JSON(fiber.Map{"error": fieldErr.Message, "field": fieldErr.Field})
		}
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Order updated", "data": order})
}

// GetAllOrders lists every order with the employee who took it (admin view)
// GET /api/v1/admin/orders
func (h *OrderHandler) GetAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

// GetMyOrders lists the caller's own orders
// GET /api/v1/store/orders
func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrdersByEmployee(getUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

// GetUncompleteOrders pages the caller's PENDING/PROCESS orders
// GET /api/v1/store/orders/uncomplete?page=&per_page=&search=
func (h *OrderHandler) GetUncompleteOrders(c *fiber.Ctx) error {
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 10)
	search := c.Query("search")

	orders, totalPages, err := h.service.GetUncompleteOrders(getUserID(c), page, perPage, search)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{
		"orders":      orders,
		"total_pages": totalPages,
	})
}

// GetOrder returns one order with its lines, service and employee
// GET /api/v1/store/orders/:id (and /admin/orders/:id)
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Order not found"})
	}
	return c.JSON(order)
}
