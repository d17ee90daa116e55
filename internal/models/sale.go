package models

import "time"

// Sale represents a single day's revenue entry for one outlet.
type Sale struct {
	ID        string    `json:"id"`
	Outlet    string    `json:"outlet"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Amount    float64   `json:"amount"`
	AddedBy   string    `json:"addedBy"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateSaleRequest represents the request to record a sale.
type CreateSaleRequest struct {
	Outlet string  `json:"outlet"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// ImportedSale is one parsed row of a sales export file.
type ImportedSale struct {
	Outlet string  `json:"outlet"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Amount float64 `json:"amount"`
}

// ImportSalesRequest represents a batch sales import.
type ImportSalesRequest struct {
	Sales []ImportedSale `json:"sales"`
}
