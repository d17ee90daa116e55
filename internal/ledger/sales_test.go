package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/ortosalon/backoffice/internal/models"
)

func TestAddSaleValidation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.CreateSaleRequest
	}{
		{"missing outlet", models.CreateSaleRequest{Date: "2026-03-01", Amount: 100}},
		{"unknown outlet", models.CreateSaleRequest{Outlet: "Ortosalon Nowhere", Date: "2026-03-01", Amount: 100}},
		{"missing date", models.CreateSaleRequest{Outlet: "Ortosalon Munisa", Amount: 100}},
		{"zero amount", models.CreateSaleRequest{Outlet: "Ortosalon Munisa", Date: "2026-03-01"}},
		{"negative amount", models.CreateSaleRequest{Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddSale(ctx, "admin1", tt.req)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("AddSale() error = %v, expected ValidationError", err)
			}
		})
	}
}

func TestImportSalesSingleAuditEntry(t *testing.T) {
	s, gw := newTestStore(t)
	savesBefore := gw.saves

	count, err := s.ImportSales(context.Background(), "admin1", models.ImportSalesRequest{
		Sales: []models.ImportedSale{
			{Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: 120},
			{Outlet: "Ortosalon Siema", Date: "2026-03-01", Amount: 80},
			{Outlet: "Ortosalon Munisa", Date: "2026-03-02", Amount: 45.5},
		},
	})
	if err != nil {
		t.Fatalf("ImportSales() error = %v", err)
	}
	if count != 3 {
		t.Errorf("ImportSales() = %d, expected 3", count)
	}

	doc := s.Snapshot()
	if len(doc.Sales) != 3 {
		t.Fatalf("sales = %d, expected 3", len(doc.Sales))
	}
	for _, sale := range doc.Sales {
		if sale.AddedBy != "import" {
			t.Errorf("imported sale AddedBy = %q, expected import", sale.AddedBy)
		}
	}
	if len(doc.AuditLog) != 1 {
		t.Errorf("audit log has %d entries, expected 1 for the batch", len(doc.AuditLog))
	}
	if gw.saves != savesBefore+1 {
		t.Errorf("saves = %d, expected one persist for the batch", gw.saves-savesBefore)
	}
}

func TestImportSalesRejectsBadRows(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.ImportSalesRequest
	}{
		{"empty batch", models.ImportSalesRequest{}},
		{"missing outlet", models.ImportSalesRequest{Sales: []models.ImportedSale{{Date: "2026-03-01", Amount: 10}}}},
		{"bad amount", models.ImportSalesRequest{Sales: []models.ImportedSale{
			{Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: 10},
			{Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: 0},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ImportSales(ctx, "admin1", tt.req)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("ImportSales() error = %v, expected ValidationError", err)
			}
			if len(s.Snapshot().Sales) != 0 {
				t.Error("rejected batch must not store any rows")
			}
		})
	}
}

func TestDeleteSale(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	sale, err := s.AddSale(ctx, "admin1", models.CreateSaleRequest{
		Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: 100,
	})
	if err != nil {
		t.Fatalf("AddSale() error = %v", err)
	}

	if err := s.DeleteSale(ctx, "admin1", sale.ID); err != nil {
		t.Fatalf("DeleteSale() error = %v", err)
	}
	if len(s.Snapshot().Sales) != 0 {
		t.Error("sale should be removed")
	}

	if err := s.DeleteSale(ctx, "admin1", sale.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteSale() error = %v, expected ErrNotFound", err)
	}
}

func TestSalaryPaymentSnapshotsName(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	emp, err := s.AddEmployee(ctx, "admin1", models.CreateEmployeeRequest{
		Name: "Farrukh", Position: "Consultant", Salary: 2000, Commission: 5,
	})
	if err != nil {
		t.Fatalf("AddEmployee() error = %v", err)
	}

	payment, err := s.AddSalaryPayment(ctx, "admin1", models.CreateSalaryPaymentRequest{
		EmployeeID: emp.ID, Type: models.SalaryTypeBase, Amount: 2000, Date: "2026-03-05",
	})
	if err != nil {
		t.Fatalf("AddSalaryPayment() error = %v", err)
	}
	if payment.EmployeeName != "Farrukh" {
		t.Errorf("EmployeeName = %q, expected snapshot of the employee name", payment.EmployeeName)
	}

	// Deleting the employee keeps the payout and its name snapshot.
	if err := s.DeleteEmployee(ctx, "admin1", emp.ID); err != nil {
		t.Fatalf("DeleteEmployee() error = %v", err)
	}
	doc := s.Snapshot()
	if len(doc.SalaryPayments) != 1 || doc.SalaryPayments[0].EmployeeName != "Farrukh" {
		t.Error("salary payment should survive employee deletion with its name snapshot")
	}

	// A payout to a deleted employee is refused.
	if _, err := s.AddSalaryPayment(ctx, "admin1", models.CreateSalaryPaymentRequest{
		EmployeeID: emp.ID, Type: models.SalaryTypeBase, Amount: 500, Date: "2026-03-06",
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddSalaryPayment() error = %v, expected ErrNotFound", err)
	}
}
