// Package seed loads the demo restaurant data used by local and memory-backed deployments.
package seed

import (
	"context"
	"fmt"
	"time"

	"comandas-be/internal/category"
	"comandas-be/internal/client"
	"comandas-be/internal/logger"
	"comandas-be/internal/menu"
	"comandas-be/internal/order"
	"comandas-be/internal/purchase"
	"comandas-be/internal/restaurant"
	"comandas-be/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Targets are the stores the demo data is written to. Clients and restaurants are written
// straight to their repositories so their historical counters survive.
type Targets struct {
	Menu        menu.Service
	Categories  category.Service
	Orders      order.Service
	Purchases   purchase.Service
	Users       user.Service
	Clients     client.Repository
	Restaurants restaurant.Repository
}

type dishSeed struct {
	name     string
	price    string
	category string
}

var dishes = []dishSeed{
	{"Hamburguesa Clásica", "12.50", "Principales"},
	{"Pizza Margherita", "15.00", "Pizzas"},
	{"Ensalada César", "8.50", "Ensaladas"},
	{"Papas Fritas", "5.00", "Acompañantes"},
	{"Pasta Carbonara", "11.00", "Pastas"},
	{"Sopa de Tomate", "6.50", "Entradas"},
	{"Tacos de Pollo", "9.00", "Principales"},
	{"Quesadillas", "7.50", "Principales"},
	{"Coca Cola", "2.50", "Bebidas"},
	{"Agua Mineral", "2.00", "Bebidas"},
	{"Cerveza Corona", "4.50", "Bebidas"},
	{"Tiramisu", "6.00", "Postres"},
	{"Flan de Caramelo", "5.50", "Postres"},
	{"Brownie", "5.00", "Postres"},
	{"Nachos con Queso", "6.50", "Entradas"},
	{"Alitas BBQ", "8.00", "Entradas"},
}

var categories = []category.CategoryInput{
	{Name: "Entradas", DishCount: 8, Color: "bg-blue-500", Icon: "ri-bowl-line"},
	{Name: "Principales", DishCount: 15, Color: "bg-red-500", Icon: "ri-restaurant-line"},
	{Name: "Pizzas", DishCount: 12, Color: "bg-orange-500", Icon: "ri-cake-2-line"},
	{Name: "Pastas", DishCount: 10, Color: "bg-yellow-500", Icon: "ri-git-fork-line"},
	{Name: "Ensaladas", DishCount: 6, Color: "bg-green-500", Icon: "ri-leaf-line"},
	{Name: "Postres", DishCount: 7, Color: "bg-pink-500", Icon: "ri-cake-line"},
	{Name: "Bebidas", DishCount: 20, Color: "bg-cyan-500", Icon: "ri-cup-line"},
	{Name: "Acompañantes", DishCount: 5, Color: "bg-purple-500", Icon: "ri-knife-line"},
}

type lineSeed struct {
	dish     string
	quantity int
}

type orderSeed struct {
	customer    string
	table       string
	lines       []lineSeed
	status      order.Status
	payment     order.PaymentStatus
	createdAt   string
	completedAt string
}

var orders = []orderSeed{
	{
		customer:    "Carlos García",
		table:       "5",
		lines:       []lineSeed{{"Hamburguesa Clásica", 2}, {"Papas Fritas", 1}},
		status:      order.StatusCompleted,
		payment:     order.PaymentPaid,
		createdAt:   "2024-01-15 14:30",
		completedAt: "2024-01-15 15:00",
	},
	{
		customer:    "María López",
		table:       "2",
		lines:       []lineSeed{{"Pizza Margherita", 1}, {"Coca Cola", 2}},
		status:      order.StatusCompleted,
		payment:     order.PaymentPending,
		createdAt:   "2024-01-15 14:15",
		completedAt: "2024-01-15 14:45",
	},
	{
		customer:  "Juan Pérez",
		table:     "8",
		lines:     []lineSeed{{"Ensalada César", 1}, {"Pasta Carbonara", 1}},
		status:    order.StatusInPreparation,
		payment:   order.PaymentPending,
		createdAt: "2024-01-15 14:25",
	},
}

// Run writes the demo data. It does nothing when the menu already has dishes.
func Run(ctx context.Context, t Targets) error {
	log := logger.FromCtx(ctx).With(zap.String("layer", "seed"))

	existing, err := t.Menu.List(ctx, menu.Filter{})
	if err != nil {
		return fmt.Errorf("seed: list menu: %w", err)
	}
	if len(existing) > 0 {
		log.Info("menu already populated, skipping seed", zap.Int("dishes", len(existing)))
		return nil
	}

	// 1. Catalog
	dishIDs := make(map[string]string, len(dishes))
	for _, d := range dishes {
		created, err := t.Menu.Create(ctx, menu.DishInput{
			Name:     d.name,
			Price:    decimal.RequireFromString(d.price),
			Category: d.category,
		})
		if err != nil {
			return fmt.Errorf("seed: dish %q: %w", d.name, err)
		}
		dishIDs[d.name] = created.ID
	}

	for _, c := range categories {
		if _, err := t.Categories.Create(ctx, c); err != nil {
			return fmt.Errorf("seed: category %q: %w", c.Name, err)
		}
	}

	// 2. Order history
	for _, o := range orders {
		if err := seedOrder(ctx, t.Orders, dishIDs, o); err != nil {
			return err
		}
	}

	// 3. Back office
	if err := seedClients(ctx, t.Clients); err != nil {
		return err
	}
	if err := seedUsers(ctx, t.Users); err != nil {
		return err
	}
	if err := seedPurchases(ctx, t.Purchases); err != nil {
		return err
	}
	if err := seedRestaurants(ctx, t.Restaurants); err != nil {
		return err
	}

	log.Info("seed data loaded",
		zap.Int("dishes", len(dishes)),
		zap.Int("orders", len(orders)),
	)
	return nil
}

func seedOrder(ctx context.Context, svc order.Service, dishIDs map[string]string, o orderSeed) error {
	lines := make([]order.LineItem, 0, len(o.lines))
	for _, l := range o.lines {
		d := findDish(l.dish)
		lines = append(lines, order.LineItem{
			ID:        dishIDs[l.dish],
			Name:      d.name,
			UnitPrice: decimal.RequireFromString(d.price),
			Quantity:  l.quantity,
		})
	}

	input := order.ImportOrderInput{
		TableID:       o.table,
		CustomerName:  &o.customer,
		Lines:         lines,
		Status:        o.status,
		PaymentStatus: o.payment,
		CreatedAt:     mustLocal(order.TicketTimeLayout, o.createdAt),
	}
	if o.completedAt != "" {
		at := mustLocal(order.TicketTimeLayout, o.completedAt)
		input.CompletedAt = &at
	}

	if _, err := svc.CreateFromLines(ctx, input); err != nil {
		return fmt.Errorf("seed: order for %q: %w", o.customer, err)
	}
	return nil
}

func findDish(name string) dishSeed {
	for _, d := range dishes {
		if d.name == name {
			return d
		}
	}
	panic("seed: unknown dish " + name)
}

func seedClients(ctx context.Context, repo client.Repository) error {
	list := []struct {
		name, email, phone, address, spent, lastVisit string
		orders                                        int
		status                                        client.Status
	}{
		{"Carlos García", "carlos@email.com", "+1 234-567-8901", "Calle 123, Ciudad", "245.50", "2024-01-15", 15, client.StatusActive},
		{"María López", "maria@email.com", "+1 234-567-8902", "Avenida 456, Ciudad", "156.30", "2024-01-12", 8, client.StatusActive},
		{"Juan Pérez", "juan@email.com", "+1 234-567-8903", "Plaza 789, Ciudad", "387.90", "2024-01-10", 22, client.StatusActive},
		{"Ana Martínez", "ana@email.com", "+1 234-567-8904", "Carrera 321, Ciudad", "45.20", "2023-12-20", 3, client.StatusInactive},
	}

	for _, c := range list {
		address := c.address
		err := repo.Create(ctx, &client.Client{
			ID:          uuid.NewString(),
			Name:        c.name,
			Email:       c.email,
			Phone:       c.phone,
			Address:     &address,
			TotalOrders: c.orders,
			TotalSpent:  decimal.RequireFromString(c.spent),
			LastVisit:   mustLocal(time.DateOnly, c.lastVisit),
			Status:      c.status,
		})
		if err != nil {
			return fmt.Errorf("seed: client %q: %w", c.name, err)
		}
	}
	return nil
}

func seedUsers(ctx context.Context, svc user.Service) error {
	list := []user.UserInput{
		{Username: "vendedor1", Email: "vendedor@restaurant.com", FullName: "María García", Phone: strPtr("+1234567891"), Role: user.RoleSeller, Password: "vend123"},
		{Username: "mesero1", Email: "mesero@restaurant.com", FullName: "Carlos López", Phone: strPtr("+1234567892"), Role: user.RoleWaiter, Password: "mes456"},
	}

	for _, u := range list {
		u.ConfirmPassword = u.Password
		if _, err := svc.Create(ctx, u); err != nil {
			return fmt.Errorf("seed: user %q: %w", u.Username, err)
		}
	}
	return nil
}

func seedPurchases(ctx context.Context, svc purchase.Service) error {
	item := func(name string, qty int, price string) purchase.ItemInput {
		return purchase.ItemInput{Name: name, Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
	}

	list := []purchase.PurchaseInput{
		{
			Supplier:      "Distribuidora Alimentaria XYZ",
			InvoiceNumber: "INV-001",
			Items:         []purchase.ItemInput{item("Carne de Res", 10, "12.50"), item("Pollo Fresco", 8, "8.00")},
			Date:          mustLocal(time.DateOnly, "2024-01-15"),
			Status:        purchase.StatusReceived,
		},
		{
			Supplier:      "Verduras Frescas S.A.",
			InvoiceNumber: "INV-002",
			Items:         []purchase.ItemInput{item("Tomates", 15, "3.20"), item("Lechuga", 20, "1.50"), item("Cebollas", 5, "2.80")},
			Date:          mustLocal(time.DateOnly, "2024-01-14"),
			Status:        purchase.StatusPending,
		},
		{
			Supplier:      "Lácteos Premium",
			InvoiceNumber: "INV-003",
			Items:         []purchase.ItemInput{item("Queso Mozzarella", 6, "8.50"), item("Leche Fresca", 12, "2.20")},
			Date:          mustLocal(time.DateOnly, "2024-01-13"),
			Status:        purchase.StatusReceived,
		},
	}

	for _, p := range list {
		if _, err := svc.Create(ctx, p); err != nil {
			return fmt.Errorf("seed: purchase %q: %w", p.InvoiceNumber, err)
		}
	}
	return nil
}

func seedRestaurants(ctx context.Context, repo restaurant.Repository) error {
	list := []struct {
		name, email, password, address, phone, createdAt, sales string
		orders                                                  int
		active                                                  bool
	}{
		{"Restaurante La Plaza", "admin@laplaza.com", "plaza123", "Av. Principal 123, Centro", "+1234567890", "2024-01-01", "15420.50", 324, true},
		{"Pizzería Roma", "admin@pizzeriaroma.com", "roma456", "Calle Roma 456, Norte", "+1234567891", "2024-01-15", "8750.25", 198, true},
		{"Café Central", "admin@cafecentral.com", "cafe789", "Plaza Central 789, Downtown", "+1234567892", "2024-02-01", "3250.00", 87, false},
	}

	for _, r := range list {
		hashed, err := user.HashPassword(r.password)
		if err != nil {
			return fmt.Errorf("seed: restaurant %q: %w", r.name, err)
		}
		phone := r.phone
		err = repo.Create(ctx, &restaurant.Restaurant{
			ID:                uuid.NewString(),
			Name:              r.name,
			AdminEmail:        r.email,
			AdminPasswordHash: hashed,
			Address:           r.address,
			Phone:             &phone,
			IsActive:          r.active,
			CreatedAt:         mustLocal(time.DateOnly, r.createdAt),
			TotalSales:        decimal.RequireFromString(r.sales),
			TotalOrders:       r.orders,
		})
		if err != nil {
			return fmt.Errorf("seed: restaurant %q: %w", r.name, err)
		}
	}
	return nil
}

func mustLocal(layout, value string) time.Time {
	t, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string {
	return &s
}
