package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type ExportService interface {
	OrdersCSV(start, end time.Time) ([]byte, error)
	MonthlySalesXLSX(year int, month time.Month) ([]byte, string, error)
	InvoicePDF(orderID uuid.UUID) ([]byte, error)
}

type exportService struct {
	orderRepo repository.OrderRepository
}

func NewExportService(orderRepo repository.OrderRepository) ExportService {
	return &exportService{orderRepo: orderRepo}
}

func orderKind(order *model.Order) string {
	if order.ServiceID != nil {
		return "SERVICE"
	}
	return "PRODUCT"
}

func employeeName(order *model.Order) string {
	if order.User != nil {
		return order.User.Name
	}
	return ""
}

// OrdersCSV renders the orders of a window as CSV, newest first.
func (s *exportService) OrdersCSV(start, end time.Time) ([]byte, error) {
	orders, err := s.orderRepo.FindBetween(start, end)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "customer", "kind", "status", "payment", "method", "total_price", "items", "employee", "created_at"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range orders {
		order := &orders[i]
		row := []string{
			order.ID.String(),
			order.Name,
			orderKind(order),
			string(order.Status),
			string(order.Payment),
			order.Method,
			order.TotalPrice,
			strconv.Itoa(countProducts(order)),
			employeeName(order),
			order.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MonthlySalesXLSX builds a one-sheet sales report for the given month and
// returns the workbook bytes plus a suggested file name.
func (s *exportService) MonthlySalesXLSX(year int, month time.Month) ([]byte, string, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	orders, err := s.orderRepo.FindBetween(start, end)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sales"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Customer", "Kind", "Status", "Payment", "Method", "Items", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	var revenue int64
	for i := range orders {
		order := &orders[i]
		revenue += parseAmount(order.TotalPrice)
		values := []interface{}{
			order.CreatedAt.Format("2006-01-02 15:04"),
			order.Name,
			orderKind(order),
			string(order.Status),
			string(order.Payment),
			order.Method,
			countProducts(order),
			parseAmount(order.TotalPrice),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	totalRow := len(orders) + 2
	totalLabel, _ := excelize.CoordinatesToCellName(7, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(8, totalRow)
	f.SetCellValue(sheet, totalLabel, "Total revenue")
	f.SetCellValue(sheet, totalCell, revenue)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	name := fmt.Sprintf("sales-%04d-%02d.xlsx", year, int(month))
	return buf.Bytes(), name, nil
}

// InvoicePDF renders a printable invoice for one order.
func (s *exportService) InvoicePDF(orderID uuid.UUID) ([]byte, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Invoice")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Order: %s", order.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", order.Name))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", order.CreatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Payment: %s (%s)", order.Payment, order.Method))
	pdf.Ln(10)

	if order.ServiceID != nil && order.Service != nil {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(120, 7, "Service")
		pdf.Cell(40, 7, "Price")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(120, 7, order.Service.Name)
		pdf.Cell(40, 7, order.Service.Price)
		pdf.Ln(7)
	} else {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(90, 7, "Product")
		pdf.Cell(30, 7, "Qty")
		pdf.Cell(40, 7, "Price")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		for _, item := range order.Items {
			name := item.ProductID.String()
			price := ""
			if item.Product != nil {
				name = item.Product.Name
				price = item.Product.Price
			}
			pdf.Cell(90, 7, name)
			pdf.Cell(30, 7, strconv.Itoa(item.Quantity))
			pdf.Cell(40, 7, price)
			pdf.Ln(7)
		}
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s", order.TotalPrice))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
