package report

import (
	"context"
	"sort"
	"strings"
	"time"

	"comandas-be/internal/client"
	"comandas-be/internal/logger"
	"comandas-be/internal/menu"
	"comandas-be/internal/order"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// rankingSize is how many dishes the top and least selling lists hold.
const rankingSize = 5

type OrderLister interface {
	List(ctx context.Context, filter order.Filter) ([]*order.Order, error)
}

type DishLister interface {
	List(ctx context.Context, filter menu.Filter) ([]*menu.Dish, error)
}

type ClientLister interface {
	List(ctx context.Context) ([]*client.Client, error)
}

type DishSales struct {
	DishID   string          `json:"dish_id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type Dashboard struct {
	Date          string          `json:"date"`
	DishCount     int             `json:"dish_count"`
	OrdersToday   int             `json:"orders_today"`
	ActiveClients int             `json:"active_clients"`
	SalesToday    decimal.Decimal `json:"sales_today"`
	TopDishes     []DishSales     `json:"top_dishes"`
	LeastDishes   []DishSales     `json:"least_dishes"`
}

type ClientStats struct {
	Name      string          `json:"name"`
	Orders    int             `json:"orders"`
	Spent     decimal.Decimal `json:"spent"`
	LastVisit *time.Time      `json:"last_visit,omitempty"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Dishes   int    `json:"dishes"`
}

// Service computes read-only projections over orders, dishes and clients. Nothing here is
// stored; every call recomputes from the current state.
type Service interface {
	Dashboard(ctx context.Context, day time.Time) (*Dashboard, error)
	ClientStats(ctx context.Context, name string) (*ClientStats, error)
	CategoryDishCounts(ctx context.Context) ([]CategoryCount, error)
}

type service struct {
	orders  OrderLister
	dishes  DishLister
	clients ClientLister
}

func NewService(orders OrderLister, dishes DishLister, clients ClientLister) Service {
	return &service{orders: orders, dishes: dishes, clients: clients}
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (s *service) Dashboard(ctx context.Context, day time.Time) (*Dashboard, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Dashboard"),
		zap.String("date", day.Format(time.DateOnly)),
	)

	// 1. Load everything the projection needs
	orders, err := s.orders.List(ctx, order.Filter{})
	if err != nil {
		log.Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	dishes, err := s.dishes.List(ctx, menu.Filter{})
	if err != nil {
		log.Error("failed to list dishes", zap.Error(err))
		return nil, err
	}
	clients, err := s.clients.List(ctx)
	if err != nil {
		log.Error("failed to list clients", zap.Error(err))
		return nil, err
	}

	d := &Dashboard{
		Date:       day.Format(time.DateOnly),
		DishCount:  len(dishes),
		SalesToday: decimal.Zero,
	}

	for _, c := range clients {
		if c.Status == client.StatusActive {
			d.ActiveClients++
		}
	}

	// 2. Day figures
	for _, o := range orders {
		if !sameDay(o.CreatedAt, day) {
			continue
		}
		d.OrdersToday++
		if o.PaymentStatus == order.PaymentPaid {
			d.SalesToday = d.SalesToday.Add(o.Total())
		}
	}

	// 3. Dish rankings over all orders
	ranking := rankDishes(orders, dishes)
	d.TopDishes = topSelling(ranking)
	d.LeastDishes = leastSelling(ranking)

	log.Info("dashboard computed",
		zap.Int("orders_today", d.OrdersToday),
		zap.String("sales_today", d.SalesToday.StringFixed(2)),
	)
	return d, nil
}

// rankDishes sums sold quantity per dish. Every menu dish appears, with zero when unsold;
// dishes no longer on the menu appear under the name they were sold with.
func rankDishes(orders []*order.Order, dishes []*menu.Dish) []DishSales {
	index := make(map[string]int, len(dishes))
	out := make([]DishSales, 0, len(dishes))

	for _, dish := range dishes {
		index[dish.ID] = len(out)
		out = append(out, DishSales{DishID: dish.ID, Name: dish.Name, Revenue: decimal.Zero})
	}

	for _, o := range orders {
		if o.Status == order.StatusCancelled {
			continue
		}
		for _, l := range o.Lines {
			i, ok := index[l.ID]
			if !ok {
				i = len(out)
				index[l.ID] = i
				out = append(out, DishSales{DishID: l.ID, Name: l.Name, Revenue: decimal.Zero})
			}
			out[i].Quantity += l.Quantity
			out[i].Revenue = out[i].Revenue.Add(l.Subtotal)
		}
	}
	return out
}

func topSelling(ranking []DishSales) []DishSales {
	sorted := make([]DishSales, 0, len(ranking))
	for _, r := range ranking {
		if r.Quantity > 0 {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Quantity != sorted[j].Quantity {
			return sorted[i].Quantity > sorted[j].Quantity
		}
		return sorted[i].Name < sorted[j].Name
	})
	if len(sorted) > rankingSize {
		sorted = sorted[:rankingSize]
	}
	return sorted
}

func leastSelling(ranking []DishSales) []DishSales {
	sorted := append([]DishSales(nil), ranking...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Quantity != sorted[j].Quantity {
			return sorted[i].Quantity < sorted[j].Quantity
		}
		return sorted[i].Name < sorted[j].Name
	})
	if len(sorted) > rankingSize {
		sorted = sorted[:rankingSize]
	}
	return sorted
}

// ClientStats derives a client's order count and spend from orders taken under that
// customer name. Only paid orders count as spend.
func (s *service) ClientStats(ctx context.Context, name string) (*ClientStats, error) {
	orders, err := s.orders.List(ctx, order.Filter{})
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	stats := &ClientStats{Name: name, Spent: decimal.Zero}

	for _, o := range orders {
		if o.CustomerName == nil || !strings.EqualFold(strings.TrimSpace(*o.CustomerName), name) {
			continue
		}
		stats.Orders++
		if o.PaymentStatus == order.PaymentPaid {
			stats.Spent = stats.Spent.Add(o.Total())
		}
		if stats.LastVisit == nil || o.CreatedAt.After(*stats.LastVisit) {
			at := o.CreatedAt
			stats.LastVisit = &at
		}
	}
	return stats, nil
}

func (s *service) CategoryDishCounts(ctx context.Context) ([]CategoryCount, error) {
	dishes, err := s.dishes.List(ctx, menu.Filter{})
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, d := range dishes {
		counts[d.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for category, n := range counts {
		out = append(out, CategoryCount{Category: category, Dishes: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}
