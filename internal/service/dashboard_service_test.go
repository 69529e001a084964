package service

import (
	"testing"
	"time"

	"go-storepos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func orderAt(created time.Time, total string, items ...int) model.Order {
	order := model.Order{
		BaseModel:  model.BaseModel{ID: uuid.New(), CreatedAt: created},
		Name:       "customer",
		Status:     model.OrderSuccess,
		Payment:    model.PaymentPaid,
		TotalPrice: total,
	}
	for _, qty := range items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID: uuid.New(),
			OrderID:   order.ID,
			Quantity:  qty,
		})
	}
	return order
}

func serviceOrderAt(created time.Time, total string) model.Order {
	serviceID := uuid.New()
	order := orderAt(created, total)
	order.ServiceID = &serviceID
	return order
}

func Test_PercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		expected float64
	}{
		{name: "growth", current: 150, previous: 100, expected: 50},
		{name: "decline", current: 50, previous: 100, expected: -50},
		{name: "flat", current: 100, previous: 100, expected: 0},
		{name: "zero prior window is 0 not infinity", current: 500, previous: 0, expected: 0},
		{name: "both zero", current: 0, previous: 0, expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, percentChange(tc.current, tc.previous))
		})
	}
}

func Test_ParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{name: "plain integer", input: "15000", expected: 15000},
		{name: "zero", input: "0", expected: 0},
		{name: "malformed counts as zero", input: "12.5k", expected: 0},
		{name: "empty counts as zero", input: "", expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseAmount(tc.input))
		})
	}
}

func Test_GetCards_MonthOverMonth(t *testing.T) {
	now := time.Now()
	recent := now.AddDate(0, 0, -7)
	prior := now.AddDate(0, -1, -7)

	orderRepo := &fakeOrderRepo{orders: []model.Order{
		orderAt(recent, "1000", 2, 3),     // 5 items
		serviceOrderAt(recent, "500"),     // service counts as 1 item
		orderAt(prior, "500", 2),          // prior window
		orderAt(now.AddDate(0, -4, 0), "9999", 9), // outside both windows
	}}
	userRepo := &fakeUserRepo{users: []model.User{
		{BaseModel: model.BaseModel{ID: uuid.New()}, Status: model.StatusEmployed},
		{BaseModel: model.BaseModel{ID: uuid.New()}, Status: model.StatusEmployed},
		{BaseModel: model.BaseModel{ID: uuid.New()}, Status: model.StatusResign},
	}}

	cards, err := NewDashboardService(orderRepo, userRepo).GetCards()
	assert.NoError(t, err)

	assert.Equal(t, int64(1500), cards.Revenue.Current)
	assert.Equal(t, int64(500), cards.Revenue.Previous)
	assert.Equal(t, float64(200), cards.Revenue.ChangePct)

	assert.Equal(t, int64(2), cards.Customers.Current)
	assert.Equal(t, int64(1), cards.Customers.Previous)
	assert.Equal(t, float64(100), cards.Customers.ChangePct)

	assert.Equal(t, int64(6), cards.ItemsSold.Current)
	assert.Equal(t, int64(2), cards.ItemsSold.Previous)
	assert.Equal(t, float64(200), cards.ItemsSold.ChangePct)

	assert.Equal(t, int64(2), cards.ActiveEmployees)
}

func Test_GetCards_EmptyPriorWindow(t *testing.T) {
	now := time.Now()
	orderRepo := &fakeOrderRepo{orders: []model.Order{
		orderAt(now.AddDate(0, 0, -3), "800", 1),
	}}
	userRepo := &fakeUserRepo{}

	cards, err := NewDashboardService(orderRepo, userRepo).GetCards()
	assert.NoError(t, err)

	assert.Equal(t, int64(800), cards.Revenue.Current)
	assert.Equal(t, int64(0), cards.Revenue.Previous)
	assert.Equal(t, float64(0), cards.Revenue.ChangePct)
	assert.Equal(t, float64(0), cards.Customers.ChangePct)
	assert.Equal(t, float64(0), cards.ItemsSold.ChangePct)
}

func Test_GetCards_MalformedPriceCountsAsZero(t *testing.T) {
	now := time.Now()
	orderRepo := &fakeOrderRepo{orders: []model.Order{
		orderAt(now.AddDate(0, 0, -1), "1000", 1),
		orderAt(now.AddDate(0, 0, -2), "oops", 1),
	}}

	cards, err := NewDashboardService(orderRepo, &fakeUserRepo{}).GetCards()
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), cards.Revenue.Current)
	assert.Equal(t, int64(2), cards.Customers.Current)
}

func Test_GetOverview_SumsLineQuantities(t *testing.T) {
	now := time.Now()
	orderRepo := &fakeOrderRepo{orders: []model.Order{
		orderAt(now.AddDate(0, 0, -1), "1000", 2, 3),
		serviceOrderAt(now.AddDate(0, 0, -2), "500"),
		orderAt(now.AddDate(0, -4, 0), "700", 1), // older than three months
	}}

	overview, err := NewDashboardService(orderRepo, &fakeUserRepo{}).GetOverview()
	assert.NoError(t, err)
	assert.Len(t, overview, 2)
	assert.Equal(t, 5, overview[0].CountProduct)
	assert.Equal(t, 0, overview[1].CountProduct)
}

func Test_GetEmployeeOverview_ScopesToCaller(t *testing.T) {
	now := time.Now()
	mine := uuid.New()
	other := uuid.New()

	o1 := orderAt(now.AddDate(0, 0, -1), "1000", 1)
	o1.UserID = &mine
	o2 := orderAt(now.AddDate(0, 0, -2), "500", 1)
	o2.UserID = &other

	svc := NewDashboardService(&fakeOrderRepo{orders: []model.Order{o1, o2}}, &fakeUserRepo{})

	overview, err := svc.GetEmployeeOverview(mine.String())
	assert.NoError(t, err)
	assert.Len(t, overview, 1)
	assert.Equal(t, o1.ID, overview[0].ID)

	_, err = svc.GetEmployeeOverview("not-a-uuid")
	assert.Error(t, err)
}
