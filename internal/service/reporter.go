package service

import (
	"context"
	"time"

	"github.com/chucky-1/pocketledger/internal/model"
)

// Report covers every entry in the ledger.
func (l *Ledger) Report(ctx context.Context) (*model.Report, error) {
	ledger, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return buildReport(ledger.Incomes, ledger.Expenses), nil
}

// MonthlyReport covers the entries dated within the given month, formatted YYYY-MM.
func (l *Ledger) MonthlyReport(ctx context.Context, month string) (*model.Report, error) {
	first, err := time.Parse(monthLayout, month)
	if err != nil {
		return nil, &InvalidDateFormatError{Value: month, Expected: "YYYY-MM", Err: err}
	}
	last := first.AddDate(0, 1, -1)

	ledger, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}

	incomes := make([]model.Income, 0)
	for _, e := range ledger.Incomes {
		ok, err := withinDays(e.Date, first, last)
		if err != nil {
			return nil, err
		}
		if ok {
			incomes = append(incomes, e)
		}
	}
	expenses := make([]model.Expense, 0)
	for _, e := range ledger.Expenses {
		ok, err := withinDays(e.Date, first, last)
		if err != nil {
			return nil, err
		}
		if ok {
			expenses = append(expenses, e)
		}
	}
	return buildReport(incomes, expenses), nil
}

const monthLayout = "2006-01"

func withinDays(date string, first, last time.Time) (bool, error) {
	d, err := ParseDate(date)
	if err != nil {
		return false, err
	}
	return !d.Before(first) && !d.After(last), nil
}

func buildReport(incomes []model.Income, expenses []model.Expense) *model.Report {
	income := totalIncome(incomes)
	spent := totalExpenses(expenses)
	return &model.Report{
		TotalIncome:   income,
		TotalExpenses: spent,
		Balance:       income - spent,
		Categories:    summarize(expenses),
	}
}
