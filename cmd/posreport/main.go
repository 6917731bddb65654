package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"trasua/internal/config"
	"trasua/internal/repository"
	"trasua/internal/service"
)

func main() {
	var (
		startDate = flag.String("start", firstOfMonth(), "start date (YYYY-MM-DD)")
		endDate   = flag.String("end", today(), "end date (YYYY-MM-DD), inclusive")
		groupBy   = flag.String("type", service.RevenueTypeDay, "grouping: day or month")
		scope     = flag.String("scope", service.RevenueScopeRevenue, "scope: revenue, product, toppings or discount")
	)
	flag.Parse()

	start, err := time.Parse("2006-01-02", *startDate)
	if err != nil {
		log.Fatalf("invalid start date: %v", err)
	}
	end, err := time.Parse("2006-01-02", *endDate)
	if err != nil {
		log.Fatalf("invalid end date: %v", err)
	}

	cfg := config.FromEnv()
	if cfg.MySQL.Host == "" {
		log.Fatal("posreport needs MYSQL_HOST; the in-memory store has no history")
	}
	store, err := repository.OpenMySQL(cfg.MySQL.DSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}

	ctx := context.Background()
	report, err := service.NewRevenueService(store).Report(ctx, service.RevenueQuery{
		Start: start,
		End:   end,
		Type:  *groupBy,
		Scope: *scope,
	})
	if err != nil {
		log.Fatalf("report: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	switch *scope {
	case service.RevenueScopeRevenue:
		fmt.Fprintln(w, "DATE\tORDERS\tREVENUE")
		for _, row := range report.Rows {
			fmt.Fprintf(w, "%s\t%d\t%s\n", row.Date, row.OrderCount, row.Revenue)
		}
	case service.RevenueScopeDiscount:
		fmt.Fprintln(w, "DATE\tORDERS\tDISCOUNT")
		for _, row := range report.Rows {
			fmt.Fprintf(w, "%s\t%d\t%s\n", row.Date, row.OrderCount, row.TotalDiscount)
		}
	case service.RevenueScopeProduct:
		fmt.Fprintln(w, "PRODUCT\tQTY\tREVENUE")
		for _, row := range report.Rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", row.ProductName, row.TotalQuantity, row.TotalRevenue)
		}
	case service.RevenueScopeToppings:
		fmt.Fprintln(w, "TOPPING\tQTY\tREVENUE")
		for _, row := range report.Rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", row.ToppingName, row.TotalQuantity, row.TotalRevenue)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "total orders\t%d\n", report.TotalOrders)
	fmt.Fprintf(w, "total revenue\t%s\n", report.TotalRevenue)
	fmt.Fprintf(w, "avg order value\t%s\n", report.AvgOrderValue)
	w.Flush()
}

func firstOfMonth() string {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
}

func today() string {
	return time.Now().Format("2006-01-02")
}
