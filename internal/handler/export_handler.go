package handler

import (
	"fmt"
	"time"

	"go-storepos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ExportHandler struct {
	service service.ExportService
}

func NewExportHandler(s service.ExportService) *ExportHandler {
	return &ExportHandler{service: s}
}

// OrdersCSV downloads the orders of a date window as CSV
// GET /api/v1/admin/exports/orders.csv?start=2006-01-02&end=2006-01-02
func (h *ExportHandler) OrdersCSV(c *fiber.Ctx) error {
	now := time.Now()
	start := now.AddDate(0, -1, 0)
	end := now

	if v := c.Query("start"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid start date, use YYYY-MM-DD"})
		}
		start = parsed
	}
	if v := c.Query("end"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end date, use YYYY-MM-DD"})
		}
		// Inclusive end date
		end = parsed.AddDate(0, 0, 1)
	}

	data, err := h.service.OrdersCSV(start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export orders"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	return c.Send(data)
}

// MonthlyReportXLSX downloads a one-month sales workbook
// GET /api/v1/admin/exports/sales.xlsx?year=2026&month=8
func (h *ExportHandler) MonthlyReportXLSX(c *fiber.Ctx) error {
	now := time.Now()
	year := queryInt(c, "year", now.Year())
	month := queryInt(c, "month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid month"})
	}

	data, name, err := h.service.MonthlySalesXLSX(year, time.Month(month))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Send(data)
}

// InvoicePDF downloads a printable invoice for one order
// GET /api/v1/admin/orders/:id/invoice.pdf
func (h *ExportHandler) InvoicePDF(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	data, err := h.service.InvoicePDF(orderID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Order not found"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, orderID))
	return c.Send(data)
}
