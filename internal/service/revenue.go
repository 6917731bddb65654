package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"trasua/internal/domain"
	"trasua/internal/repository"
)

// Revenue report groupings and scopes as the statistics screen queries
// them.
const (
	RevenueTypeDay   = "day"
	RevenueTypeMonth = "month"

	RevenueScopeRevenue  = "revenue"
	RevenueScopeProduct  = "product"
	RevenueScopeToppings = "toppings"
	RevenueScopeDiscount = "discount"
)

// RevenueRow is one aggregated row. Monetary sums are serialized as decimal
// strings, matching the upstream reporting API.
type RevenueRow struct {
	Date          string `json:"date,omitempty"`
	Revenue       string `json:"revenue,omitempty"`
	OrderCount    int64  `json:"order_count,omitempty"`
	ProductName   string `json:"product_name,omitempty"`
	ToppingName   string `json:"topping_name,omitempty"`
	TotalQuantity string `json:"total_quantity,omitempty"`
	TotalRevenue  string `json:"total_revenue,omitempty"`
	TotalDiscount string `json:"total_discount,omitempty"`
}

// RevenueReport wraps the rows with summary figures for the header cards.
type RevenueReport struct {
	Rows          []RevenueRow `json:"data"`
	TotalRevenue  string       `json:"total_revenue"`
	TotalOrders   int64        `json:"total_orders"`
	AvgOrderValue string       `json:"avg_order_value"`
}

// RevenueQuery selects the window and shape of the report.
type RevenueQuery struct {
	Start time.Time
	End   time.Time
	Type  string // day | month
	Scope string // revenue | product | toppings | discount
}

// RevenueService aggregates placed orders for the statistics screen and the
// report CLI.
type RevenueService struct {
	orders repository.OrderRepository
}

func NewRevenueService(orders repository.OrderRepository) *RevenueService {
	return &RevenueService{orders: orders}
}

// Report aggregates orders inside [Start, End] (whole days, inclusive).
func (s *RevenueService) Report(ctx context.Context, q RevenueQuery) (*RevenueReport, error) {
	switch q.Type {
	case RevenueTypeDay, RevenueTypeMonth:
	default:
		return nil, ErrInvalidInput
	}
	switch q.Scope {
	case RevenueScopeRevenue, RevenueScopeProduct, RevenueScopeToppings, RevenueScopeDiscount:
	default:
		return nil, ErrInvalidInput
	}
	if q.End.Before(q.Start) {
		return nil, ErrInvalidInput
	}

	all, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	end := q.End.AddDate(0, 0, 1) // inclusive end date
	var window []domain.Order
	for _, o := range all {
		if o.OrderTime.Before(q.Start) || !o.OrderTime.Before(end) {
			continue
		}
		window = append(window, o)
	}

	report := &RevenueReport{}
	totalRevenue := decimal.Zero
	for _, o := range window {
		totalRevenue = totalRevenue.Add(decimal.NewFromInt(o.TotalAmount))
	}
	report.TotalRevenue = totalRevenue.String()
	report.TotalOrders = int64(len(window))
	if len(window) > 0 {
		report.AvgOrderValue = totalRevenue.
			DivRound(decimal.NewFromInt(int64(len(window))), 2).String()
	} else {
		report.AvgOrderValue = decimal.Zero.String()
	}

	switch q.Scope {
	case RevenueScopeRevenue:
		report.Rows = bucketOrders(window, q.Type, func(o domain.Order) decimal.Decimal {
			return decimal.NewFromInt(o.TotalAmount)
		}, false)
	case RevenueScopeDiscount:
		report.Rows = bucketOrders(window, q.Type, func(o domain.Order) decimal.Decimal {
			return decimal.NewFromInt(o.DiscountAmount)
		}, true)
	case RevenueScopeProduct:
		report.Rows = bucketProducts(window)
	case RevenueScopeToppings:
		report.Rows = bucketToppings(window)
	}
	return report, nil
}

func bucketKey(t time.Time, groupBy string) string {
	if groupBy == RevenueTypeMonth {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

func bucketOrders(orders []domain.Order, groupBy string, amount func(domain.Order) decimal.Decimal, discount bool) []RevenueRow {
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int64)
	for _, o := range orders {
		key := bucketKey(o.OrderTime, groupBy)
		sums[key] = sums[key].Add(amount(o))
		counts[key]++
	}

	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]RevenueRow, 0, len(keys))
	for _, k := range keys {
		row := RevenueRow{Date: k, OrderCount: counts[k]}
		if discount {
			row.TotalDiscount = sums[k].String()
		} else {
			row.Revenue = sums[k].String()
		}
		rows = append(rows, row)
	}
	return rows
}

func bucketProducts(orders []domain.Order) []RevenueRow {
	type agg struct {
		qty     decimal.Decimal
		revenue decimal.Decimal
	}
	byName := make(map[string]*agg)
	for _, o := range orders {
		for _, item := range o.Items {
			a := byName[item.ProductName]
			if a == nil {
				a = &agg{}
				byName[item.ProductName] = a
			}
			a.qty = a.qty.Add(decimal.NewFromInt(item.Quantity))
			a.revenue = a.revenue.Add(decimal.NewFromInt(item.UnitPrice * item.Quantity))
		}
	}

	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	// highest revenue first, name as tie-break
	sort.Slice(names, func(i, j int) bool {
		ri, rj := byName[names[i]].revenue, byName[names[j]].revenue
		if !ri.Equal(rj) {
			return ri.GreaterThan(rj)
		}
		return names[i] < names[j]
	})

	rows := make([]RevenueRow, 0, len(names))
	for _, n := range names {
		rows = append(rows, RevenueRow{
			ProductName:   n,
			TotalQuantity: byName[n].qty.String(),
			TotalRevenue:  byName[n].revenue.String(),
		})
	}
	return rows
}

func bucketToppings(orders []domain.Order) []RevenueRow {
	type agg struct {
		qty     decimal.Decimal
		revenue decimal.Decimal
	}
	byName := make(map[string]*agg)
	for _, o := range orders {
		for _, item := range o.Items {
			for _, t := range item.Toppings {
				a := byName[t.Name]
				if a == nil {
					a = &agg{}
					byName[t.Name] = a
				}
				a.qty = a.qty.Add(decimal.NewFromInt(item.Quantity))
				a.revenue = a.revenue.Add(decimal.NewFromInt(t.Price * item.Quantity))
			}
		}
	}

	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := byName[names[i]].revenue, byName[names[j]].revenue
		if !ri.Equal(rj) {
			return ri.GreaterThan(rj)
		}
		return names[i] < names[j]
	})

	rows := make([]RevenueRow, 0, len(names))
	for _, n := range names {
		rows = append(rows, RevenueRow{
			ToppingName:   n,
			TotalQuantity: byName[n].qty.String(),
			TotalRevenue:  byName[n].revenue.String(),
		})
	}
	return rows
}
