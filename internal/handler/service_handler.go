package handler

import (
	"go-storepos/internal/model"
	"go-storepos/internal/repository"
	"go-storepos/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ServiceHandler manages the service-store catalog. Services carry no stock,
// so like categories this works straight on the repository.
type ServiceHandler struct {
	repo repository.ServiceRepository
}

func NewServiceHandler(repo repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

// GET /api/v1/admin/services?page=&per_page=&search=
func (h *ServiceHandler) GetServices(c *fiber.Ctx) error {
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 10)
	search := c.Query("search")

	services, totalPages, err := h.repo.FindPage(page, perPage, search)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{
		"services":    services,
		"total_pages": totalPages,
	})
}

// GET /api/v1/store/services
func (h *ServiceHandler) GetPublishedServices(c *fiber.Ctx) error {
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 10)
	search := c.Query("search")

	services, totalPages, err := h.repo.FindPublishedPage(page, perPage, search)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{
		"services":    services,
		"total_pages": totalPages,
	})
}

func (h *ServiceHandler) GetService(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	svc, err := h.repo.FindByID(serviceID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Service not found"})
	}
	return c.JSON(svc)
}

func (h *ServiceHandler) CreateService(c *fiber.Ctx) error {
	var svc model.Service
	if err := c.BodyParser(&svc); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&svc); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs).Error()})
	}

	if err := h.repo.Create(&svc); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create service"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Service created", "data": svc})
}

func (h *ServiceHandler) UpdateService(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	var req model.Service
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.FirstError(errs).Error()})
	}

	svc, err := h.repo.FindByID(serviceID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Service not found"})
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.IsPublished = req.IsPublished
	svc.Price = req.Price

	if err := h.repo.Update(svc); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update service"})
	}

	return c.JSON(fiber.Map{"message": "Service updated", "data": svc})
}

func (h *ServiceHandler) DeleteService(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	if _, err := h.repo.FindByID(serviceID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Service not found"})
	}

	if err := h.repo.Delete(serviceID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete service"})
	}

	return c.JSON(fiber.Map{"message": "Service deleted"})
}
