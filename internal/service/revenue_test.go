package service

import (
	"context"
	"testing"
	"time"

	"trasua/internal/domain"
	"trasua/internal/repository"
)

func seedOrders(t *testing.T, store *repository.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	pearl := domain.Topping{Name: "Trân châu đen", Price: 5000}
	at := func(day, hour int) time.Time {
		return time.Date(2025, 3, day, hour, 0, 0, 0, time.UTC)
	}
	fixtures := []domain.Order{
		{
			PaymentMethodID: domain.PaymentMethodCash,
			OrderTime:       at(1, 9),
			TotalAmount:     30000,
			Items: []domain.OrderItem{
				{ProductName: "Trà sữa truyền thống", Quantity: 1, UnitPrice: 25000, Toppings: []domain.Topping{pearl}},
			},
		},
		{
			PaymentMethodID: domain.PaymentMethodCash,
			OrderTime:       at(1, 14),
			TotalAmount:     50000,
			DiscountAmount:  5000,
			Items: []domain.OrderItem{
				{ProductName: "Trà sữa matcha", Quantity: 2, UnitPrice: 27500},
			},
		},
		{
			PaymentMethodID: domain.PaymentMethodTransfer,
			OrderTime:       at(2, 10),
			TotalAmount:     25000,
			Items: []domain.OrderItem{
				{ProductName: "Trà sữa truyền thống", Quantity: 1, UnitPrice: 25000},
			},
		},
		// outside every queried window
		{
			PaymentMethodID: domain.PaymentMethodCash,
			OrderTime:       time.Date(2025, 4, 15, 9, 0, 0, 0, time.UTC),
			TotalAmount:     99000,
		},
	}
	for i := range fixtures {
		if err := store.CreateOrder(ctx, &fixtures[i]); err != nil {
			t.Fatal(err)
		}
	}
}

func TestReport_RevenueByDay(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedOrders(t, store)
	svc := NewRevenueService(store)

	report, err := svc.Report(ctx, RevenueQuery{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Type:  RevenueTypeDay,
		Scope: RevenueScopeRevenue,
	})
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if report.TotalOrders != 3 || report.TotalRevenue != "105000" {
		t.Fatalf("summary: orders=%d revenue=%s", report.TotalOrders, report.TotalRevenue)
	}
	if report.AvgOrderValue != "35000" {
		t.Fatalf("avg = %s", report.AvgOrderValue)
	}

	want := []RevenueRow{
		{Date: "2025-03-01", Revenue: "80000", OrderCount: 2},
		{Date: "2025-03-02", Revenue: "25000", OrderCount: 1},
	}
	if len(report.Rows) != len(want) {
		t.Fatalf("rows = %+v", report.Rows)
	}
	for i, w := range want {
		if report.Rows[i] != w {
			t.Fatalf("row %d = %+v, want %+v", i, report.Rows[i], w)
		}
	}
}

func TestReport_RevenueByMonth(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedOrders(t, store)
	svc := NewRevenueService(store)

	report, err := svc.Report(ctx, RevenueQuery{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		Type:  RevenueTypeMonth,
		Scope: RevenueScopeRevenue,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []RevenueRow{
		{Date: "2025-03", Revenue: "105000", OrderCount: 3},
		{Date: "2025-04", Revenue: "99000", OrderCount: 1},
	}
	if len(report.Rows) != 2 || report.Rows[0] != want[0] || report.Rows[1] != want[1] {
		t.Fatalf("rows = %+v", report.Rows)
	}
}

func TestReport_ProductScope(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedOrders(t, store)
	svc := NewRevenueService(store)

	report, err := svc.Report(ctx, RevenueQuery{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Type:  RevenueTypeDay,
		Scope: RevenueScopeProduct,
	})
	if err != nil {
		t.Fatal(err)
	}
	// matcha 55000 outranks truyền thống 50000
	want := []RevenueRow{
		{ProductName: "Trà sữa matcha", TotalQuantity: "2", TotalRevenue: "55000"},
		{ProductName: "Trà sữa truyền thống", TotalQuantity: "2", TotalRevenue: "50000"},
	}
	if len(report.Rows) != 2 || report.Rows[0] != want[0] || report.Rows[1] != want[1] {
		t.Fatalf("rows = %+v", report.Rows)
	}
}

func TestReport_ToppingsScope(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedOrders(t, store)
	svc := NewRevenueService(store)

	report, err := svc.Report(ctx, RevenueQuery{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Type:  RevenueTypeDay,
		Scope: RevenueScopeToppings,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := RevenueRow{ToppingName: "Trân châu đen", TotalQuantity: "1", TotalRevenue: "5000"}
	if len(report.Rows) != 1 || report.Rows[0] != want {
		t.Fatalf("rows = %+v", report.Rows)
	}
}

func TestReport_DiscountScope(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	seedOrders(t, store)
	svc := NewRevenueService(store)

	report, err := svc.Report(ctx, RevenueQuery{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Type:  RevenueTypeDay,
		Scope: RevenueScopeDiscount,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := RevenueRow{Date: "2025-03-01", TotalDiscount: "5000", OrderCount: 2}
	if len(report.Rows) != 1 || report.Rows[0] != want {
		t.Fatalf("rows = %+v", report.Rows)
	}
}

func TestReport_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewRevenueService(repository.NewMemoryStore())

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	cases := []RevenueQuery{
		{Start: day, End: day, Type: "week", Scope: RevenueScopeRevenue},
		{Start: day, End: day, Type: RevenueTypeDay, Scope: "tips"},
		{Start: day.AddDate(0, 0, 1), End: day, Type: RevenueTypeDay, Scope: RevenueScopeRevenue},
	}
	for _, q := range cases {
		if _, err := svc.Report(ctx, q); err != ErrInvalidInput {
			t.Fatalf("%+v: got %v", q, err)
		}
	}
}

func TestReport_EmptyWindow(t *testing.T) {
	ctx := context.Background()
	svc := NewRevenueService(repository.NewMemoryStore())

	report, err := svc.Report(ctx, RevenueQuery{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Type:  RevenueTypeDay,
		Scope: RevenueScopeRevenue,
	})
	if err != nil {
		t.Fatal(err)
	}
	if report.TotalOrders != 0 || report.TotalRevenue != "0" || report.AvgOrderValue != "0" {
		t.Fatalf("empty report = %+v", report)
	}
	if len(report.Rows) != 0 {
		t.Fatalf("rows = %+v", report.Rows)
	}
}
