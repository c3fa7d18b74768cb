// Package consumer holds the front-ends of the ledger: the command line, the interactive menu and the telegram bot.
package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/chucky-1/pocketledger/internal/model"
	"github.com/chucky-1/pocketledger/internal/producer"
	"github.com/chucky-1/pocketledger/internal/service"
)

const (
	labelMaxLength   = 64
	operationTimeout = 10 * time.Second
)

type Ledger interface {
	AddIncome(ctx context.Context, source string, amount float64, date string) error
	AddExpense(ctx context.Context, category string, amount float64, date string) error
	ListIncomes(ctx context.Context) ([]model.Income, error)
	ListExpenses(ctx context.Context) ([]model.Expense, error)
	Balance(ctx context.Context) (float64, error)
	SummaryByCategory(ctx context.Context) ([]model.CategoryAmount, error)
	FilterExpensesByDate(ctx context.Context, start, end string) ([]model.Expense, error)
	Report(ctx context.Context) (*model.Report, error)
	MonthlyReport(ctx context.Context, month string) (*model.Report, error)
}

var _ Ledger = (*service.Ledger)(nil)

// Commands parses raw user input, calls the ledger and renders the answer.
// Every front-end goes through it, so they all accept and print the same things.
type Commands struct {
	ledger    Ledger
	reporter  *producer.Reporter
	validator *validator.Validate
}

func NewCommands(ledger Ledger, reporter *producer.Reporter, validator *validator.Validate) *Commands {
	return &Commands{
		ledger:    ledger,
		reporter:  reporter,
		validator: validator,
	}
}

// AddIncome stores an income. An empty date means today.
func (c *Commands) AddIncome(ctx context.Context, source, amount, date string) (string, error) {
	value, date, err := c.entry("source", source, amount, date)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	if err = c.ledger.AddIncome(ctx, source, value, date); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added income %s: %s on %s\n", source, c.reporter.Money(value), date), nil
}

// AddExpense stores an expense. An empty date means today.
func (c *Commands) AddExpense(ctx context.Context, category, amount, date string) (string, error) {
	value, date, err := c.entry("category", category, amount, date)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	if err = c.ledger.AddExpense(ctx, category, value, date); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added expense %s: %s on %s\n", category, c.reporter.Money(value), date), nil
}

// entry checks user input before anything is persisted.
func (c *Commands) entry(field, label, amount, date string) (float64, string, error) {
	if err := c.validator.Var(label, fmt.Sprintf("required,max=%d", labelMaxLength)); err != nil {
		return 0, "", fmt.Errorf("%s must be 1 to %d characters long", field, labelMaxLength)
	}
	value, err := service.ParseAmount(amount)
	if err != nil {
		return 0, "", err
	}
	if date == "" {
		return value, service.Today(), nil
	}
	if _, err = service.ParseDate(date); err != nil {
		return 0, "", err
	}
	return value, date, nil
}

func (c *Commands) Incomes(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	incomes, err := c.ledger.ListIncomes(ctx)
	if err != nil {
		return "", err
	}
	return c.reporter.Incomes("All Incomes", incomes), nil
}

func (c *Commands) Expenses(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	expenses, err := c.ledger.ListExpenses(ctx)
	if err != nil {
		return "", err
	}
	return c.reporter.Expenses("All Expenses", expenses), nil
}

func (c *Commands) Balance(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	balance, err := c.ledger.Balance(ctx)
	if err != nil {
		return "", err
	}
	return c.reporter.Balance(balance), nil
}

func (c *Commands) Categories(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	categories, err := c.ledger.SummaryByCategory(ctx)
	if err != nil {
		return "", err
	}
	return c.reporter.Categories(categories), nil
}

// Summary renders the whole ledger, or a single month when month is YYYY-MM.
func (c *Commands) Summary(ctx context.Context, month string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	var (
		report *model.Report
		err    error
	)
	if month == "" {
		report, err = c.ledger.Report(ctx)
	} else {
		report, err = c.ledger.MonthlyReport(ctx, month)
	}
	if err != nil {
		return "", err
	}
	return c.reporter.Summary(report), nil
}

func (c *Commands) Filter(ctx context.Context, start, end string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	expenses, err := c.ledger.FilterExpensesByDate(ctx, start, end)
	if err != nil {
		return "", err
	}
	return c.reporter.Expenses(fmt.Sprintf("Expenses from %s to %s", start, end), expenses), nil
}
