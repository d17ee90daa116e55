package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/ortosalon/backoffice/internal/models"
)

// AddEmployee registers a staff member.
func (s *Store) AddEmployee(ctx context.Context, actor string, req models.CreateEmployeeRequest) (*models.Employee, error) {
	if req.Name == "" {
		return nil, validationErr("name", "name is required")
	}
	if req.Position == "" {
		return nil, validationErr("position", "position is required")
	}
	if req.Salary < 0 {
		return nil, validationErr("salary", "salary must not be negative")
	}
	if req.Commission < 0 || req.Commission > 100 {
		return nil, validationErr("commission", "commission must be between 0 and 100")
	}

	employee := models.Employee{
		ID:         models.NewID("employee"),
		Name:       req.Name,
		Position:   req.Position,
		Salary:     req.Salary,
		Commission: req.Commission,
		AddedBy:    actor,
		Timestamp:  time.Now(),
	}

	s.mu.Lock()
	s.doc.Employees = append(s.doc.Employees, employee)
	s.appendAudit(actor, models.ActionAdded, models.EntityEmployee,
		fmt.Sprintf("%s - %s", employee.Name, employee.Position))
	s.commit(ctx)

	return &employee, nil
}

// DeleteEmployee removes an employee. Existing salary payments keep their
// name snapshot.
func (s *Store) DeleteEmployee(ctx context.Context, actor, id string) error {
	s.mu.Lock()

	idx := -1
	for i := range s.doc.Employees {
		if s.doc.Employees[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return ErrNotFound
	}

	employee := s.doc.Employees[idx]
	s.doc.Employees = append(s.doc.Employees[:idx], s.doc.Employees[idx+1:]...)
	s.appendAudit(actor, models.ActionDeleted, models.EntityEmployee,
		fmt.Sprintf("%s - %s", employee.Name, employee.Position))
	s.commit(ctx)

	return nil
}

// AddSalaryPayment records a salary payout to an existing employee.
func (s *Store) AddSalaryPayment(ctx context.Context, actor string, req models.CreateSalaryPaymentRequest) (*models.SalaryPayment, error) {
	if req.EmployeeID == "" {
		return nil, validationErr("employeeId", "employee is required")
	}
	if req.Type != models.SalaryTypeBase && req.Type != models.SalaryTypeCommission {
		return nil, validationErr("type", fmt.Sprintf("unknown payment type %q", req.Type))
	}
	if req.Date == "" {
		return nil, validationErr("date", "date is required")
	}
	if req.Amount <= 0 {
		return nil, validationErr("amount", "amount must be positive")
	}

	s.mu.Lock()

	var employee *models.Employee
	for i := range s.doc.Employees {
		if s.doc.Employees[i].ID == req.EmployeeID {
			employee = &s.doc.Employees[i]
			break
		}
	}
	if employee == nil {
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	payment := models.SalaryPayment{
		ID:           models.NewID("salary"),
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		Type:         req.Type,
		TypeLabel:    models.SalaryTypeLabel(req.Type),
		Amount:       req.Amount,
		Date:         req.Date,
		AddedBy:      actor,
		Timestamp:    time.Now(),
	}

	s.doc.SalaryPayments = append(s.doc.SalaryPayments, payment)
	s.appendAudit(actor, models.ActionAdded, models.EntitySalaryPayment,
		fmt.Sprintf("%s - %s - %.2f TJS", payment.EmployeeName, payment.TypeLabel, payment.Amount))
	s.commit(ctx)

	return &payment, nil
}

// DeleteSalaryPayment removes a salary payout record.
func (s *Store) DeleteSalaryPayment(ctx context.Context, actor, id string) error {
	s.mu.Lock()

	idx := -1
	for i := range s.doc.SalaryPayments {
		if s.doc.SalaryPayments[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return ErrNotFound
	}

	payment := s.doc.SalaryPayments[idx]
	s.doc.SalaryPayments = append(s.doc.SalaryPayments[:idx], s.doc.SalaryPayments[idx+1:]...)
	s.appendAudit(actor, models.ActionDeleted, models.EntitySalaryPayment,
		fmt.Sprintf("%s - %s - %.2f TJS", payment.EmployeeName, payment.TypeLabel, payment.Amount))
	s.commit(ctx)

	return nil
}
