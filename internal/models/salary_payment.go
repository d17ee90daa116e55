package models

import "time"

// Salary payment types.
const (
	SalaryTypeBase       = "base"       // fixed salary, paid on the 15th
	SalaryTypeCommission = "commission" // percent of sales, paid at month end
)

// SalaryPayment represents a salary payout to an employee. EmployeeName is a
// snapshot taken at payment time so history survives employee removal.
type SalaryPayment struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Type         string    `json:"type"` // base or commission
	TypeLabel    string    `json:"typeLabel"`
	Amount       float64   `json:"amount"`
	Date         string    `json:"date"` // YYYY-MM-DD
	AddedBy      string    `json:"addedBy"`
	Timestamp    time.Time `json:"timestamp"`
}

// CreateSalaryPaymentRequest represents the request to record a salary payout.
type CreateSalaryPaymentRequest struct {
	EmployeeID string  `json:"employeeId"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
}

// SalaryTypeLabel returns the human-readable label for a salary payment type.
func SalaryTypeLabel(paymentType string) string {
	switch paymentType {
	case SalaryTypeBase:
		return "Base salary (15th)"
	case SalaryTypeCommission:
		return "Sales commission (month end)"
	default:
		return paymentType
	}
}
