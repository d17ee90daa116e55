package models

import "time"

// Employee represents a staff member.
type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	Salary     float64   `json:"salary"`     // monthly base salary, TJS
	Commission float64   `json:"commission"` // percent of sales, 0..100
	AddedBy    string    `json:"addedBy"`
	Timestamp  time.Time `json:"timestamp"`
}

// CreateEmployeeRequest represents the request to add an employee.
type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Salary     float64 `json:"salary"`
	Commission float64 `json:"commission"`
}
