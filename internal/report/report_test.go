package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"comandas-be/internal/client"
	"comandas-be/internal/menu"
	"comandas-be/internal/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockOrders struct {
	mock.Mock
}

func (m *MockOrders) List(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDishes struct {
	mock.Mock
}

func (m *MockDishes) List(ctx context.Context, filter menu.Filter) ([]*menu.Dish, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Dish), args.Error(1)
}

type MockClients struct {
	mock.Mock
}

func (m *MockClients) List(ctx context.Context) ([]*client.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*client.Client), args.Error(1)
}

// --- Fixtures ---

var day = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func entry(id, name, price string) order.CatalogEntry {
	return order.CatalogEntry{ID: id, Name: name, UnitPrice: decimal.RequireFromString(price)}
}

func newOrder(customer string, at time.Time, payment order.PaymentStatus, lines []order.LineItem) *order.Order {
	o := &order.Order{
		Lines:         lines,
		Status:        order.StatusCompleted,
		PaymentStatus: payment,
		CreatedAt:     at,
	}
	if customer != "" {
		o.CustomerName = &customer
	}
	return o
}

func fixtures() ([]*order.Order, []*menu.Dish, []*client.Client) {
	burger := entry("d1", "Hamburguesa", "12.50")
	fries := entry("d2", "Papas Fritas", "5.00")
	soda := entry("d3", "Limonada", "3.00")

	twoBurgersFries := order.AddLine(order.SetLineQuantity(order.AddLine(nil, burger), "d1", 2), fries)
	friesOnly := order.SetLineQuantity(order.AddLine(nil, fries), "d2", 3)
	retired := order.AddLine(nil, entry("old", "Sopa del Día", "6.00"))
	sodas := order.SetLineQuantity(order.AddLine(nil, soda), "d3", 9)

	cancelled := newOrder("", day.Add(-24*time.Hour), order.PaymentPending, sodas)
	cancelled.Status = order.StatusCancelled

	orders := []*order.Order{
		newOrder("Carlos García", day.Add(14*time.Hour), order.PaymentPaid, twoBurgersFries),
		newOrder("carlos garcía ", day.Add(20*time.Hour), order.PaymentPending, friesOnly),
		newOrder("", day.Add(-24*time.Hour), order.PaymentPaid, retired),
		cancelled,
	}

	dishes := []*menu.Dish{
		{ID: "d1", Name: "Hamburguesa", Category: "Platos Principales"},
		{ID: "d2", Name: "Papas Fritas", Category: "Entradas"},
		{ID: "d3", Name: "Limonada", Category: "Bebidas"},
		{ID: "d4", Name: "Agua", Category: "Bebidas"},
	}

	clients := []*client.Client{
		{ID: "1", Status: client.StatusActive},
		{ID: "2", Status: client.StatusActive},
		{ID: "3", Status: client.StatusInactive},
	}
	return orders, dishes, clients
}

func newTestService() Service {
	orders, dishes, clients := fixtures()

	o := new(MockOrders)
	o.On("List", mock.Anything, order.Filter{}).Return(orders, nil)
	d := new(MockDishes)
	d.On("List", mock.Anything, menu.Filter{}).Return(dishes, nil)
	c := new(MockClients)
	c.On("List", mock.Anything).Return(clients, nil)

	return NewService(o, d, c)
}

// --- Tests ---

func TestService_Dashboard(t *testing.T) {
	svc := newTestService()

	d, err := svc.Dashboard(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", d.Date)
	assert.Equal(t, 4, d.DishCount)
	assert.Equal(t, 2, d.OrdersToday)
	assert.Equal(t, 2, d.ActiveClients)
	assert.Equal(t, "30.00", d.SalesToday.StringFixed(2))

	require.Len(t, d.TopDishes, 3)
	assert.Equal(t, "Papas Fritas", d.TopDishes[0].Name)
	assert.Equal(t, 4, d.TopDishes[0].Quantity)
	assert.Equal(t, "Hamburguesa", d.TopDishes[1].Name)
	assert.Equal(t, "Sopa del Día", d.TopDishes[2].Name)

	require.Len(t, d.LeastDishes, 5)
	assert.Equal(t, "Agua", d.LeastDishes[0].Name)
	assert.Equal(t, 0, d.LeastDishes[0].Quantity)
	assert.Equal(t, "Limonada", d.LeastDishes[1].Name)
	assert.Equal(t, 0, d.LeastDishes[1].Quantity, "cancelled orders do not count as sold")
}

func TestService_Dashboard_Error(t *testing.T) {
	o := new(MockOrders)
	o.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := NewService(o, new(MockDishes), new(MockClients)).Dashboard(context.Background(), day)
	assert.Error(t, err)
}

func TestService_ClientStats(t *testing.T) {
	svc := newTestService()

	stats, err := svc.ClientStats(context.Background(), "Carlos García")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Orders)
	assert.Equal(t, "30.00", stats.Spent.StringFixed(2))
	require.NotNil(t, stats.LastVisit)
	assert.Equal(t, day.Add(20*time.Hour), *stats.LastVisit)

	none, err := svc.ClientStats(context.Background(), "Nadie")
	require.NoError(t, err)
	assert.Equal(t, 0, none.Orders)
	assert.Nil(t, none.LastVisit)
}

func TestService_CategoryDishCounts(t *testing.T) {
	svc := newTestService()

	counts, err := svc.CategoryDishCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{
		{Category: "Bebidas", Dishes: 2},
		{Category: "Entradas", Dishes: 1},
		{Category: "Platos Principales", Dishes: 1},
	}, counts)
}
