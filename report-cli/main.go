package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

type sale struct {
	OrderNumber   string          `json:"order_number"`
	OrderType     string          `json:"order_type"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

type dayRevenue struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type productRank struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type dashboard struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalOrders  int64           `json:"totalOrders"`
	TodayRevenue decimal.Decimal `json:"todayRevenue"`
	TodayOrders  int64           `json:"todayOrders"`
	RecentSales  []sale          `json:"recentSales"`
	RevenueData  []dayRevenue    `json:"revenueData"`
	TopProducts  []productRank   `json:"topProducts"`
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8080", "api-gateway or analytics-svc base URL")
		timeout = flag.Duration("timeout", 10*time.Second, "request timeout")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	d, err := fetchDashboard(ctx, http.DefaultClient, *baseURL)
	if err != nil {
		log.Fatalf("failed to fetch dashboard: %v", err)
	}
	if err := render(os.Stdout, d); err != nil {
		log.Fatalf("failed to render report: %v", err)
	}
}

func fetchDashboard(ctx context.Context, client *http.Client, baseURL string) (*dashboard, error) {
	url := strings.TrimRight(baseURL, "/") + "/api/analytics/dashboard"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("GET %s: %s: %s", url, resp.Status, strings.TrimSpace(string(body)))
	}

	var envelope struct {
		Status string    `json:"status"`
		Data   dashboard `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode dashboard: %w", err)
	}
	return &envelope.Data, nil
}

func render(w io.Writer, d *dashboard) error {
	headline := tablewriter.NewWriter(w)
	headline.Header("Metric", "Value")
	rows := [][]string{
		{"Total revenue", d.TotalRevenue.StringFixed(2)},
		{"Total orders", strconv.FormatInt(d.TotalOrders, 10)},
		{"Today revenue", d.TodayRevenue.StringFixed(2)},
		{"Today orders", strconv.FormatInt(d.TodayOrders, 10)},
	}
	for _, row := range rows {
		if err := headline.Append(row); err != nil {
			return err
		}
	}
	if err := headline.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nRevenue, last 7 days")
	series := tablewriter.NewWriter(w)
	series.Header("Day", "Revenue")
	for _, day := range d.RevenueData {
		if err := series.Append([]string{day.Name, day.Value.StringFixed(2)}); err != nil {
			return err
		}
	}
	if err := series.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nTop products")
	top := tablewriter.NewWriter(w)
	top.Header("#", "Product", "Sold")
	for i, p := range d.TopProducts {
		if err := top.Append([]string{strconv.Itoa(i + 1), p.Name, strconv.FormatInt(p.Value, 10)}); err != nil {
			return err
		}
	}
	if err := top.Render(); err != nil {
		return err
	}

	if len(d.RecentSales) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\nRecent sales")
	recent := tablewriter.NewWriter(w)
	recent.Header("Order", "Type", "Payment", "Status", "Total", "Created")
	for _, s := range d.RecentSales {
		row := []string{s.OrderNumber, s.OrderType, s.PaymentMethod, s.Status,
			s.TotalAmount.StringFixed(2), s.CreatedAt.Local().Format("2006-01-02 15:04")}
		if err := recent.Append(row); err != nil {
			return err
		}
	}
	return recent.Render()
}
