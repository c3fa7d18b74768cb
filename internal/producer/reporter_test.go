package producer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chucky-1/pocketledger/internal/model"
)

func TestReporter_Money(t *testing.T) {
	testTable := []struct {
		name   string
		amount float64
		result string
	}{
		{
			name:   "Zero",
			amount: 0,
			result: "₹0.00",
		},
		{
			name:   "Below thousand",
			amount: 200,
			result: "₹200.00",
		},
		{
			name:   "Thousands separator",
			amount: 4800,
			result: "₹4,800.00",
		},
		{
			name:   "Rounded to cents",
			amount: 1234567.891,
			result: "₹1,234,567.89",
		},
	}

	r := NewReporter(DefaultCurrencySymbol)
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.result, r.Money(testCase.amount))
		})
	}
}

func TestReporter_Summary(t *testing.T) {
	r := NewReporter("$")
	report := &model.Report{
		TotalIncome:   5000,
		TotalExpenses: 1150,
		Balance:       3850,
		Categories: []model.CategoryAmount{
			{Category: "Food", Amount: 150},
			{Category: "Rent", Amount: 1000},
		},
	}

	want := "==== Finance Summary ====\n" +
		"Balance: $3,850.00\n" +
		"Income: $5,000.00\n" +
		"Expenses: $1,150.00\n" +
		"\n" +
		"Expenses by Category:\n" +
		"  Food: $150.00\n" +
		"  Rent: $1,000.00\n"
	require.Equal(t, want, r.Summary(report))
}

func TestReporter_SummaryWithoutExpenses(t *testing.T) {
	r := NewReporter("$")

	got := r.Summary(&model.Report{})
	require.Contains(t, got, "Expenses by Category:\n  (no expenses)\n")
}

func TestReporter_Listings(t *testing.T) {
	r := NewReporter("$")

	got := r.Expenses("All Expenses", []model.Expense{
		{Category: "Food", Amount: 100, Date: "2024-01-01"},
		{Category: "Rent", Amount: 1000, Date: "2024-01-01"},
		{Category: "Travel", Amount: 12.5, Date: "2024-01-15"},
	})
	want := "--- All Expenses ---\n" +
		"2024-01-01  Food    $100.00\n" +
		"2024-01-01  Rent    $1,000.00\n" +
		"2024-01-15  Travel  $12.50\n"
	require.Equal(t, want, got)

	got = r.Incomes("All Incomes", nil)
	require.Equal(t, "--- All Incomes ---\n(no entries)\n", got)
}

func TestReporter_Balance(t *testing.T) {
	r := NewReporter(DefaultCurrencySymbol)

	require.Equal(t, "Current Balance: ₹4,800.00\n", r.Balance(4800))
}
