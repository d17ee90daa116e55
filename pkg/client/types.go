package client

// SaleRow is one sales record submitted in a batch import.
type SaleRow struct {
	Outlet string  `json:"outlet"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Amount float64 `json:"amount"`
}

// Summary is the period report returned by the reports endpoint.
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

// DebtSummary is the supplier debt breakdown returned by the debt endpoint.
type DebtSummary struct {
	ByCountry map[string]struct {
		Debt    float64 `json:"debt"`
		DebtUSD float64 `json:"debtUSD"`
	} `json:"byCountry"`
	Total    float64 `json:"total"`
	TotalUSD float64 `json:"totalUSD"`
}

type loginResponse struct {
	Token       string `json:"token"`
	DisplayName string `json:"display_name"`
}

type importResponse struct {
	Imported int `json:"imported"`
}

type summaryResponse struct {
	Summary Summary `json:"summary"`
}

type debtResponse struct {
	Debt DebtSummary `json:"debt"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
