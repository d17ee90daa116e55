// Package report computes dashboard and period-report views from a ledger
// document snapshot. Everything here is a pure function over the snapshot:
// nothing is cached and nothing is mutated.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/ortosalon/backoffice/internal/models"
)

const dateLayout = "2006-01-02"

// Summary is the period report: totals per collection plus the derived
// profit estimate and balance.
type Summary struct {
	From             string  `json:"from"`
	To               string  `json:"to"`
	Revenue          float64 `json:"revenue"`
	Expenses         float64 `json:"expenses"`
	Profit           float64 `json:"profit"`
	Purchases        float64 `json:"purchases"`
	SupplierPayments float64 `json:"supplierPayments"`
	SalaryPayments   float64 `json:"salaryPayments"`
	Balance          float64 `json:"balance"`
}

// Summarize filters every collection to [from, to] (end of day inclusive)
// and sums the amounts. Profit is a fixed share of revenue, a business
// constant configured per deployment, not a computed margin.
func Summarize(doc *models.Document, from, to string, profitRatio float64) (*Summary, error) {
	start, end, err := periodBounds(from, to)
	if err != nil {
		return nil, err
	}

	s := &Summary{From: from, To: to}

	for _, sale := range doc.Sales {
		if dateInRange(sale.Date, start, end) {
			s.Revenue += sale.Amount
		}
	}
	for _, expense := range doc.Expenses {
		if dateInRange(expense.Date, start, end) {
			s.Expenses += expense.Amount
		}
	}
	for _, purchase := range doc.Purchases {
		if dateInRange(purchase.Date, start, end) {
			s.Purchases += purchase.Amount
		}
	}
	for _, payment := range doc.SupplierPayments {
		if dateInRange(payment.Date, start, end) {
			s.SupplierPayments += payment.Amount
		}
	}
	for _, payment := range doc.SalaryPayments {
		if dateInRange(payment.Date, start, end) {
			s.SalaryPayments += payment.Amount
		}
	}

	s.Profit = s.Revenue * profitRatio
	s.Balance = s.Profit - s.Expenses - s.Purchases - s.SupplierPayments - s.SalaryPayments

	return s, nil
}

// Metrics are the dashboard headline numbers.
type Metrics struct {
	TodayRevenue float64       `json:"todayRevenue"`
	WeekRevenue  float64       `json:"weekRevenue"`
	MonthRevenue float64       `json:"monthRevenue"`
	TotalRevenue float64       `json:"totalRevenue"`
	NetProfit    float64       `json:"netProfit"`
	RecentSales  []models.Sale `json:"recentSales"`
}

// Dashboard computes the headline metrics: revenue for today, the trailing
// week, the calendar month and overall, the profit estimate, and the ten
// most recently entered sales.
func Dashboard(doc *models.Document, now time.Time, profitRatio float64) *Metrics {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := now.AddDate(0, 0, -7)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	m := &Metrics{}
	for _, sale := range doc.Sales {
		d, err := time.ParseInLocation(dateLayout, sale.Date, now.Location())
		if err != nil {
			continue
		}
		m.TotalRevenue += sale.Amount
		if !d.Before(startOfToday) {
			m.TodayRevenue += sale.Amount
		}
		if !d.Before(startOfWeek) {
			m.WeekRevenue += sale.Amount
		}
		if !d.Before(startOfMonth) {
			m.MonthRevenue += sale.Amount
		}
	}
	m.NetProfit = m.TotalRevenue * profitRatio

	recent := make([]models.Sale, len(doc.Sales))
	copy(recent, doc.Sales)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}
	m.RecentSales = recent

	return m
}

// DailySeries is per-outlet daily revenue over a trailing window, oldest
// day first.
type DailySeries struct {
	Dates   []string             `json:"dates"`
	Outlets map[string][]float64 `json:"outlets"`
}

// DailySales builds the per-outlet daily revenue series for the trailing
// number of days ending today.
func DailySales(doc *models.Document, now time.Time, outlets []string, days int) *DailySeries {
	series := &DailySeries{
		Dates:   make([]string, days),
		Outlets: make(map[string][]float64, len(outlets)),
	}

	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, i-days+1).Format(dateLayout)
		series.Dates[i] = date
		index[date] = i
	}
	for _, outlet := range outlets {
		series.Outlets[outlet] = make([]float64, days)
	}

	for _, sale := range doc.Sales {
		i, ok := index[sale.Date]
		if !ok {
			continue
		}
		if values, ok := series.Outlets[sale.Outlet]; ok {
			values[i] += sale.Amount
		}
	}

	return series
}

// OutletTotals compares one outlet's revenue over three trailing windows.
type OutletTotals struct {
	Outlet   string  `json:"outlet"`
	Today    float64 `json:"today"`
	Last3    float64 `json:"last3Days"`
	LastWeek float64 `json:"lastWeek"`
}

// OutletComparison computes today / 3-day / 7-day revenue per outlet.
func OutletComparison(doc *models.Document, now time.Time, outlets []string) []OutletTotals {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	last3 := now.AddDate(0, 0, -3)
	lastWeek := now.AddDate(0, 0, -7)

	totals := make([]OutletTotals, len(outlets))
	byOutlet := make(map[string]*OutletTotals, len(outlets))
	for i, outlet := range outlets {
		totals[i].Outlet = outlet
		byOutlet[outlet] = &totals[i]
	}

	for _, sale := range doc.Sales {
		t, ok := byOutlet[sale.Outlet]
		if !ok {
			continue
		}
		d, err := time.ParseInLocation(dateLayout, sale.Date, now.Location())
		if err != nil {
			continue
		}
		if !d.Before(startOfToday) {
			t.Today += sale.Amount
		}
		if !d.Before(last3) {
			t.Last3 += sale.Amount
		}
		if !d.Before(lastWeek) {
			t.LastWeek += sale.Amount
		}
	}

	return totals
}

// CountryDebt is the aggregate supplier debt for one country.
type CountryDebt struct {
	Debt    float64 `json:"debt"`
	DebtUSD float64 `json:"debtUSD"`
}

// DebtSummary is the supplier debt broken down by country.
type DebtSummary struct {
	ByCountry map[string]CountryDebt `json:"byCountry"`
	Total     float64                `json:"total"`
	TotalUSD  float64                `json:"totalUSD"`
}

// DebtByCountry sums supplier debt per country and overall. Countries with
// no suppliers appear with zero balances.
func DebtByCountry(doc *models.Document, countries []string) *DebtSummary {
	summary := &DebtSummary{
		ByCountry: make(map[string]CountryDebt, len(countries)),
	}
	for _, c := range countries {
		summary.ByCountry[c] = CountryDebt{}
	}

	for _, supplier := range doc.Suppliers {
		cd := summary.ByCountry[supplier.Country]
		cd.Debt += supplier.Debt
		cd.DebtUSD += supplier.DebtUSD
		summary.ByCountry[supplier.Country] = cd
		summary.Total += supplier.Debt
		summary.TotalUSD += supplier.DebtUSD
	}

	return summary
}

// ExpensesByCategory sums period expenses per category.
func ExpensesByCategory(doc *models.Document, from, to string) (map[string]float64, error) {
	start, end, err := periodBounds(from, to)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]float64)
	for _, expense := range doc.Expenses {
		if dateInRange(expense.Date, start, end) {
			byCategory[expense.Category] += expense.Amount
		}
	}
	return byCategory, nil
}

// AuditWindow returns the audit entries whose timestamps fall within the
// period, newest first. The log is already ordered newest first.
func AuditWindow(doc *models.Document, from, to string) ([]models.AuditEntry, error) {
	start, end, err := periodBounds(from, to)
	if err != nil {
		return nil, err
	}

	entries := []models.AuditEntry{}
	for _, entry := range doc.AuditLog {
		if !entry.Timestamp.Before(start) && entry.Timestamp.Before(end) {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// periodBounds parses the period into [start, end) where end is the instant
// after the last day, making the to-date inclusive through end of day.
func periodBounds(from, to string) (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, from)
	if err != nil {
		return start, end, fmt.Errorf("invalid from date %q: %w", from, err)
	}
	end, err = time.Parse(dateLayout, to)
	if err != nil {
		return start, end, fmt.Errorf("invalid to date %q: %w", to, err)
	}
	if start.After(end) {
		return start, end, fmt.Errorf("from date %s is after to date %s", from, to)
	}
	return start, end.AddDate(0, 0, 1), nil
}

// dateInRange reports whether a YYYY-MM-DD record date falls in [start, end).
func dateInRange(date string, start, end time.Time) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return !d.Before(start) && d.Before(end)
}
