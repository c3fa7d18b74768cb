package model

// Income is one record of money received
type Income struct {
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"` // YYYY-MM-DD
}

// Expense is one record of money spent
type Expense struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"` // YYYY-MM-DD
}

// CategoryAmount is the total spent in one category
type CategoryAmount struct {
	Category string
	Amount   float64
}

// Report is the combined view printed as the finance summary.
// Categories keep the order in which they first appear among the expenses.
type Report struct {
	TotalIncome   float64
	TotalExpenses float64
	Balance       float64
	Categories    []CategoryAmount
}
