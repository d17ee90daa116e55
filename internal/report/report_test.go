package report

import (
	"math"
	"testing"
	"time"

	"github.com/ortosalon/backoffice/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testDocument() *models.Document {
	doc := models.NewDocument(10.0)
	doc.Sales = []models.Sale{
		{ID: "sale_1", Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: 100},
		{ID: "sale_2", Outlet: "Ortosalon Siema", Date: "2026-03-15", Amount: 200},
		{ID: "sale_3", Outlet: "Ortosalon Munisa", Date: "2026-03-31", Amount: 300},
		{ID: "sale_4", Outlet: "Ortosalon Munisa", Date: "2026-04-01", Amount: 1000},
	}
	doc.Expenses = []models.Expense{
		{ID: "expense_1", Category: "Rent", Date: "2026-03-10", Amount: 50},
		{ID: "expense_2", Category: "Transport", Date: "2026-03-20", Amount: 20},
		{ID: "expense_3", Category: "Rent", Date: "2026-04-02", Amount: 999},
	}
	doc.Purchases = []models.Purchase{
		{ID: "purchase_1", SupplierID: "supplier_1", Date: "2026-03-05", Amount: 40, AmountUSD: 4, Currency: models.CurrencyTJS},
	}
	doc.SupplierPayments = []models.SupplierPayment{
		{ID: "supplierpayment_1", SupplierID: "supplier_1", Date: "2026-03-06", Amount: 10, AmountUSD: 1, Currency: models.CurrencyTJS},
	}
	doc.SalaryPayments = []models.SalaryPayment{
		{ID: "salary_1", EmployeeID: "employee_1", Date: "2026-03-07", Amount: 30},
	}
	doc.Suppliers = []models.Supplier{
		{ID: "supplier_1", Name: "Karavan Trade", Country: "TJ", Debt: 900, DebtUSD: 90},
		{ID: "supplier_2", Name: "Pamir Goods", Country: "RU", Debt: 100, DebtUSD: 10},
		{ID: "supplier_3", Name: "Vostok Ltd", Country: "RU", Debt: 50, DebtUSD: 5},
	}
	return doc
}

func TestSummarize(t *testing.T) {
	doc := testDocument()

	s, err := Summarize(doc, "2026-03-01", "2026-03-31", 0.30)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if !almostEqual(s.Revenue, 600) {
		t.Errorf("Revenue = %v, expected 600 (April sale excluded)", s.Revenue)
	}
	if !almostEqual(s.Expenses, 70) {
		t.Errorf("Expenses = %v, expected 70", s.Expenses)
	}
	if !almostEqual(s.Profit, 180) {
		t.Errorf("Profit = %v, expected 180 at ratio 0.30", s.Profit)
	}
	// 180 - 70 - 40 - 10 - 30
	if !almostEqual(s.Balance, 30) {
		t.Errorf("Balance = %v, expected 30", s.Balance)
	}
}

func TestSummarizeToDateInclusive(t *testing.T) {
	doc := testDocument()

	s, err := Summarize(doc, "2026-03-31", "2026-03-31", 0.30)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if !almostEqual(s.Revenue, 300) {
		t.Errorf("Revenue = %v, expected the to-date sale included", s.Revenue)
	}
}

func TestSummarizeBadPeriod(t *testing.T) {
	doc := testDocument()

	tests := []struct {
		name string
		from string
		to   string
	}{
		{"bad from", "03-01-2026", "2026-03-31"},
		{"bad to", "2026-03-01", "yesterday"},
		{"inverted", "2026-03-31", "2026-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Summarize(doc, tt.from, tt.to, 0.30); err == nil {
				t.Error("Summarize() expected error")
			}
		})
	}
}

func TestDashboard(t *testing.T) {
	doc := testDocument()
	now := time.Date(2026, 3, 31, 15, 0, 0, 0, time.UTC)

	m := Dashboard(doc, now, 0.30)

	// Windows are open-ended, so the future-dated April sale counts into
	// every window and the grand total.
	if !almostEqual(m.TodayRevenue, 1300) {
		t.Errorf("TodayRevenue = %v, expected 1300", m.TodayRevenue)
	}
	if !almostEqual(m.TotalRevenue, 1600) {
		t.Errorf("TotalRevenue = %v, expected 1600", m.TotalRevenue)
	}
	if !almostEqual(m.MonthRevenue, 1600) {
		t.Errorf("MonthRevenue = %v, expected all March-and-later sales", m.MonthRevenue)
	}
	if !almostEqual(m.NetProfit, 480) {
		t.Errorf("NetProfit = %v, expected 480", m.NetProfit)
	}
}

func TestDashboardRecentSalesCapped(t *testing.T) {
	doc := models.NewDocument(10.0)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		doc.Sales = append(doc.Sales, models.Sale{
			ID:        models.NewID("sale"),
			Outlet:    "Ortosalon Munisa",
			Date:      "2026-03-01",
			Amount:    float64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
	}

	m := Dashboard(doc, base.Add(time.Hour), 0.30)
	if len(m.RecentSales) != 10 {
		t.Fatalf("RecentSales has %d items, expected 10", len(m.RecentSales))
	}
	if !almostEqual(m.RecentSales[0].Amount, 15) {
		t.Errorf("most recent sale amount = %v, expected 15", m.RecentSales[0].Amount)
	}
}

func TestDailySales(t *testing.T) {
	doc := testDocument()
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	outlets := []string{"Ortosalon Munisa", "Ortosalon Siema"}

	series := DailySales(doc, now, outlets, 30)

	if len(series.Dates) != 30 {
		t.Fatalf("Dates has %d entries, expected 30", len(series.Dates))
	}
	if series.Dates[29] != "2026-03-31" {
		t.Errorf("last date = %s, expected today", series.Dates[29])
	}
	if series.Dates[0] != "2026-03-02" {
		t.Errorf("first date = %s, expected 2026-03-02", series.Dates[0])
	}

	munisa := series.Outlets["Ortosalon Munisa"]
	if !almostEqual(munisa[29], 300) {
		t.Errorf("Munisa today = %v, expected 300", munisa[29])
	}
	siema := series.Outlets["Ortosalon Siema"]
	if !almostEqual(siema[13], 200) {
		t.Errorf("Siema on 2026-03-15 = %v, expected 200", siema[13])
	}
}

func TestOutletComparison(t *testing.T) {
	doc := testDocument()
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

	totals := OutletComparison(doc, now, []string{"Ortosalon Munisa", "Ortosalon Siema"})
	if len(totals) != 2 {
		t.Fatalf("totals has %d entries, expected 2", len(totals))
	}

	// Windows are open-ended, so the future-dated April sale counts too.
	munisa := totals[0]
	if !almostEqual(munisa.Today, 1300) {
		t.Errorf("Munisa today = %v, expected 1300", munisa.Today)
	}
	if !almostEqual(munisa.LastWeek, 1300) {
		t.Errorf("Munisa week = %v, expected 1300", munisa.LastWeek)
	}
	siema := totals[1]
	if !almostEqual(siema.LastWeek, 0) {
		t.Errorf("Siema week = %v, expected the March 15 sale excluded", siema.LastWeek)
	}
}

func TestDebtByCountry(t *testing.T) {
	doc := testDocument()

	summary := DebtByCountry(doc, []string{"TJ", "RU", "TR", "CN"})

	if !almostEqual(summary.ByCountry["TJ"].Debt, 900) {
		t.Errorf("TJ debt = %v, expected 900", summary.ByCountry["TJ"].Debt)
	}
	if !almostEqual(summary.ByCountry["RU"].Debt, 150) {
		t.Errorf("RU debt = %v, expected both RU suppliers summed", summary.ByCountry["RU"].Debt)
	}
	if got, ok := summary.ByCountry["CN"]; !ok || got.Debt != 0 {
		t.Error("CN should appear with zero balances")
	}
	if !almostEqual(summary.Total, 1050) || !almostEqual(summary.TotalUSD, 105) {
		t.Errorf("Total = %v TJS / %v USD, expected 1050 / 105", summary.Total, summary.TotalUSD)
	}
}

func TestExpensesByCategory(t *testing.T) {
	doc := testDocument()

	byCategory, err := ExpensesByCategory(doc, "2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("ExpensesByCategory() error = %v", err)
	}
	if !almostEqual(byCategory["Rent"], 50) {
		t.Errorf("Rent = %v, expected 50 (April excluded)", byCategory["Rent"])
	}
	if !almostEqual(byCategory["Transport"], 20) {
		t.Errorf("Transport = %v, expected 20", byCategory["Transport"])
	}
}

func TestAuditWindow(t *testing.T) {
	doc := models.NewDocument(10.0)
	doc.AuditLog = []models.AuditEntry{
		{ID: "audit_2", Timestamp: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)},
		{ID: "audit_1", Timestamp: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)},
	}

	entries, err := AuditWindow(doc, "2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("AuditWindow() error = %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "audit_2" {
		t.Errorf("entries = %+v, expected only the March entry", entries)
	}
}
