package service

import (
	"errors"
	"strconv"
	"time"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"

	"github.com/google/uuid"
)

type DashboardService interface {
	GetOverview() ([]OrderOverview, error)
	GetEmployeeOverview(employeeID string) ([]OrderOverview, error)
	GetCards() (*DashboardCards, error)
}

// OrderOverview is one order decorated with its summed line quantity for the
// recent-sales table.
type OrderOverview struct {
	model.Order
	CountProduct int `json:"count_product"`
}

// CardMetric compares the current window against the prior one. ChangePct is
// 0 when the prior window total is 0, regardless of the current value.
type CardMetric struct {
	Current   int64   `json:"current"`
	Previous  int64   `json:"previous"`
	ChangePct float64 `json:"change_pct"`
}

type DashboardCards struct {
	Revenue         CardMetric `json:"revenue"`
	Customers       CardMetric `json:"customers"`
	ItemsSold       CardMetric `json:"items_sold"`
	ActiveEmployees int64      `json:"active_employees"`
}

type dashboardService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

func NewDashboardService(orderRepo repository.OrderRepository, userRepo repository.UserRepository) DashboardService {
	return &dashboardService{orderRepo: orderRepo, userRepo: userRepo}
}

// parseAmount reads a numeric(15,0) string; malformed values count as zero
// rather than poisoning a whole window's total.
func parseAmount(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// percentChange guards against a zero prior-period denominator.
func percentChange(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

func countProducts(order *model.Order) int {
	sub := 0
	for _, item := range order.Items {
		sub += item.Quantity
	}
	return sub
}

func toOverview(orders []model.Order) []OrderOverview {
	overview := make([]OrderOverview, len(orders))
	for i, order := range orders {
		overview[i] = OrderOverview{Order: order, CountProduct: countProducts(&orders[i])}
	}
	return overview
}

// GetOverview returns all orders of the last three months, newest first.
func (s *dashboardService) GetOverview() ([]OrderOverview, error) {
	now := time.Now()
	orders, err := s.orderRepo.FindBetween(now.AddDate(0, -3, 0), now)
	if err != nil {
		return nil, err
	}
	return toOverview(orders), nil
}

// GetEmployeeOverview is the same window scoped to the caller's own sales.
func (s *dashboardService) GetEmployeeOverview(employeeID string) ([]OrderOverview, error) {
	userID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, errors.New("invalid employee ID")
	}

	now := time.Now()
	orders, err := s.orderRepo.FindBetweenByUser(userID, now.AddDate(0, -3, 0), now)
	if err != nil {
		return nil, err
	}
	return toOverview(orders), nil
}

// GetCards recomputes the dashboard cards from the raw rows on every call:
// current month vs the month before, for revenue, order count and items sold,
// plus the employed head count. Service orders count as one item each.
func (s *dashboardService) GetCards() (*DashboardCards, error) {
	now := time.Now()
	oneMonthAgo := now.AddDate(0, -1, 0)
	twoMonthsAgo := now.AddDate(0, -2, 0)

	recent, err := s.orderRepo.FindBetween(oneMonthAgo, now)
	if err != nil {
		return nil, err
	}
	prior, err := s.orderRepo.FindBetween(twoMonthsAgo, oneMonthAgo)
	if err != nil {
		return nil, err
	}

	employed, err := s.userRepo.CountByStatus(model.StatusEmployed)
	if err != nil {
		return nil, err
	}

	sumWindow := func(orders []model.Order) (revenue int64, items int64) {
		for i := range orders {
			revenue += parseAmount(orders[i].TotalPrice)
			items += int64(countProducts(&orders[i]))
			if orders[i].ServiceID != nil {
				items++
			}
		}
		return
	}

	curRevenue, curItems := sumWindow(recent)
	prevRevenue, prevItems := sumWindow(prior)
	curCustomers := int64(len(recent))
	prevCustomers := int64(len(prior))

	return &DashboardCards{
		Revenue: CardMetric{
			Current:   curRevenue,
			Previous:  prevRevenue,
			ChangePct: percentChange(curRevenue, prevRevenue),
		},
		Customers: CardMetric{
			Current:   curCustomers,
			Previous:  prevCustomers,
			ChangePct: percentChange(curCustomers, prevCustomers),
		},
		ItemsSold: CardMetric{
			Current:   curItems,
			Previous:  prevItems,
			ChangePct: percentChange(curItems, prevItems),
		},
		ActiveEmployees: employed,
	}, nil
}
