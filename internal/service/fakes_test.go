package service

import (
	"errors"
	"strings"
	"time"

	"go-storepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes used across the service tests.

type fakeOrderRepo struct {
	orders []model.Order
	items  []model.OrderItem
	stock  map[uuid.UUID]int
}

func (r *fakeOrderRepo) Create(order *model.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders = append(r.orders, *order)
	return nil
}

// CreateWithItems mirrors the real repository's all-or-nothing semantics:
// the debits and item rows land only when every referenced product exists.
func (r *fakeOrderRepo) CreateWithItems(order *model.Order, items []model.OrderItem) error {
	for _, item := range items {
		if _, ok := r.stock[item.ProductID]; !ok {
			return gorm.ErrRecordNotFound
		}
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range items {
		items[i].OrderID = order.ID
		r.stock[items[i].ProductID] -= items[i].Quantity
	}
	r.items = append(r.items, items...)
	r.orders = append(r.orders, *order)
	return nil
}

func (r *fakeOrderRepo) itemsFor(orderID uuid.UUID) []model.OrderItem {
	var out []model.OrderItem
	for _, item := range r.items {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out
}

func (r *fakeOrderRepo) FindAll() ([]model.Order, error) {
	return r.orders, nil
}

func (r *fakeOrderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return &r.orders[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOrderRepo) FindByUser(userID uuid.UUID) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if o.UserID != nil && *o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindUncompleteByUser(userID uuid.UUID, page, perPage int, search string) ([]model.Order, int, error) {
	var out []model.Order
	for _, o := range r.orders {
		if o.UserID == nil || *o.UserID != userID {
			continue
		}
		if o.Status != model.OrderPending && o.Status != model.OrderProcess {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(o.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, o)
	}
	return out, 1, nil
}

func (r *fakeOrderRepo) FindBetween(start, end time.Time) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if !o.CreatedAt.Before(start) && o.CreatedAt.Before(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindBetweenByUser(userID uuid.UUID, start, end time.Time) ([]model.Order, error) {
	orders, _ := r.FindBetween(start, end)
	var out []model.Order
	for _, o := range orders {
		if o.UserID != nil && *o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(order *model.Order) error {
	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = *order
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeUserRepo struct {
	users []model.User
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			return &r.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			return &r.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByIDWithClockings(id uuid.UUID) (*model.User, error) {
	return r.FindByID(id)
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	return r.users, nil
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	for i := range r.users {
		if r.users[i].ID == userID {
			r.users[i].Password = hashedPassword
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Delete(id uuid.UUID) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) CountByStatus(status model.EmploymentStatus) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeClockingRepo struct {
	clockings []model.Clocking
}

func (r *fakeClockingRepo) Create(clocking *model.Clocking) error {
	if clocking.ID == uuid.Nil {
		clocking.ID = uuid.New()
	}
	r.clockings = append(r.clockings, *clocking)
	return nil
}

func (r *fakeClockingRepo) Update(clocking *model.Clocking) error {
	for i := range r.clockings {
		if r.clockings[i].ID == clocking.ID {
			r.clockings[i] = *clocking
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeClockingRepo) FindByID(id uuid.UUID) (*model.Clocking, error) {
	for i := range r.clockings {
		if r.clockings[i].ID == id {
			c := r.clockings[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeClockingRepo) FindByUser(userID uuid.UUID) ([]model.Clocking, error) {
	var out []model.Clocking
	for _, c := range r.clockings {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClockingRepo) FindLatestByUser(userID uuid.UUID) (*model.Clocking, error) {
	var latest *model.Clocking
	for i := range r.clockings {
		c := &r.clockings[i]
		if c.UserID != userID {
			continue
		}
		if latest == nil || c.Date.After(latest.Date) {
			latest = c
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	out := *latest
	return &out, nil
}

func (r *fakeClockingRepo) FindOpenByUser(userID uuid.UUID) (*model.Clocking, error) {
	for i := range r.clockings {
		c := r.clockings[i]
		if c.UserID == userID && c.EndAt == nil {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeClockingRepo) openCount(userID uuid.UUID) int {
	count := 0
	for _, c := range r.clockings {
		if c.UserID == userID && c.EndAt == nil {
			count++
		}
	}
	return count
}

type fakeCategoryRepo struct {
	categories []model.Category
}

func (r *fakeCategoryRepo) FindAll() ([]model.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	for i := range r.categories {
		if r.categories[i].ID == id {
			return &r.categories[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) Create(category *model.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.categories = append(r.categories, *category)
	return nil
}

func (r *fakeCategoryRepo) Update(category *model.Category) error {
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			r.categories[i] = *category
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) Delete(id uuid.UUID) error {
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeProductRepo struct {
	products []model.Product
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products = append(r.products, *product)
	return nil
}

func (r *fakeProductRepo) FindPage(page, perPage int, search string) ([]model.Product, int, error) {
	return r.products, 1, nil
}

func (r *fakeProductRepo) FindPublishedPage(page, perPage int, search string) ([]model.Product, int, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.IsPublished {
			out = append(out, p)
		}
	}
	return out, 1, nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Update(product *model.Product) error {
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Delete(id uuid.UUID) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// fakeInventoryRepo adjusts the counters held by a fakeProductRepo so tests
// can check that the ledger and the counter move together.
type fakeInventoryRepo struct {
	products *fakeProductRepo
	entries  []model.InventoryEntry
}

func (r *fakeInventoryRepo) Adjust(productID uuid.UUID, isPlus bool, amount int) error {
	product, err := r.products.FindByID(productID)
	if err != nil {
		return gorm.ErrRecordNotFound
	}

	delta := amount
	if !isPlus {
		delta = -amount
	}
	product.Quantity += delta

	r.entries = append(r.entries, model.InventoryEntry{
		ProductID: productID,
		IsPlus:    isPlus,
		Amount:    amount,
	})
	return nil
}

type fakeServiceRepo struct {
	services []model.Service
}

func (r *fakeServiceRepo) Create(service *model.Service) error {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	r.services = append(r.services, *service)
	return nil
}

func (r *fakeServiceRepo) FindPage(page, perPage int, search string) ([]model.Service, int, error) {
	return r.services, 1, nil
}

func (r *fakeServiceRepo) FindPublishedPage(page, perPage int, search string) ([]model.Service, int, error) {
	var out []model.Service
	for _, s := range r.services {
		if s.IsPublished {
			out = append(out, s)
		}
	}
	return out, 1, nil
}

func (r *fakeServiceRepo) FindByID(id uuid.UUID) (*model.Service, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			return &r.services[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeServiceRepo) Update(service *model.Service) error {
	return errors.New("not implemented")
}

func (r *fakeServiceRepo) Delete(id uuid.UUID) error {
	return errors.New("not implemented")
}
