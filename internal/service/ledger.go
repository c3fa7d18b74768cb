package service

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/chucky-1/pocketledger/internal/model"
	"github.com/chucky-1/pocketledger/internal/producer"
	"github.com/chucky-1/pocketledger/internal/repository"
)

// Ledger reads the whole document from its repository on every call;
// nothing is cached between calls.
type Ledger struct {
	name      string
	repo      repository.Document
	publisher producer.Publisher
	// mu is held across load-mutate-save so concurrent adds don't overwrite each other
	mu sync.Mutex
}

func NewLedger(name string, repo repository.Document, publisher producer.Publisher) *Ledger {
	return &Ledger{
		name:      name,
		repo:      repo,
		publisher: publisher,
	}
}

// Load returns the persisted ledger, or an empty one if nothing was saved yet.
func (l *Ledger) Load(ctx context.Context) (*model.Ledger, error) {
	data, err := l.repo.Read(ctx)
	if errors.Is(err, repository.NotFoundErr) {
		return model.NewLedger(), nil
	}
	if err != nil {
		return nil, &StorageReadError{Err: err}
	}
	ledger, err := model.Decode(data)
	if err != nil {
		return nil, &StorageReadError{Err: err}
	}
	return ledger, nil
}

// Save overwrites the persisted ledger with ledger.
func (l *Ledger) Save(ctx context.Context, ledger *model.Ledger) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save(ctx, ledger)
}

func (l *Ledger) save(ctx context.Context, ledger *model.Ledger) error {
	data, err := model.Encode(ledger)
	if err != nil {
		return &StorageWriteError{Err: err}
	}
	if err = l.repo.Write(ctx, data); err != nil {
		return &StorageWriteError{Err: err}
	}
	return nil
}

func (l *Ledger) update(ctx context.Context, mutate func(ledger *model.Ledger)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ledger, err := l.Load(ctx)
	if err != nil {
		return err
	}
	mutate(ledger)
	return l.save(ctx, ledger)
}

func (l *Ledger) AddIncome(ctx context.Context, source string, amount float64, date string) error {
	err := l.update(ctx, func(ledger *model.Ledger) {
		ledger.Incomes = append(ledger.Incomes, model.Income{Source: source, Amount: amount, Date: date})
	})
	if err != nil {
		return err
	}
	logrus.Debugf("ledger %s: added income %s %.2f %s", l.name, source, amount, date)
	l.publish(ctx, producer.NewEntryAdded(l.name, producer.IncomeKind, source, amount, date))
	return nil
}

func (l *Ledger) AddExpense(ctx context.Context, category string, amount float64, date string) error {
	err := l.update(ctx, func(ledger *model.Ledger) {
		ledger.Expenses = append(ledger.Expenses, model.Expense{Category: category, Amount: amount, Date: date})
	})
	if err != nil {
		return err
	}
	logrus.Debugf("ledger %s: added expense %s %.2f %s", l.name, category, amount, date)
	l.publish(ctx, producer.NewEntryAdded(l.name, producer.ExpenseKind, category, amount, date))
	return nil
}

// publish is best effort: the entry is already persisted when it runs.
func (l *Ledger) publish(ctx context.Context, event producer.EntryAdded) {
	if l.publisher == nil {
		return
	}
	if err := l.publisher.Publish(ctx, event); err != nil {
		logrus.Errorf("ledger %s: couldn't publish %s event %s: %v", l.name, event.Kind, event.ID, err)
	}
}

func (l *Ledger) ListIncomes(ctx context.Context) ([]model.Income, error) {
	ledger, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Incomes, nil
}

func (l *Ledger) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	ledger, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Expenses, nil
}

func (l *Ledger) Balance(ctx context.Context) (float64, error) {
	ledger, err := l.Load(ctx)
	if err != nil {
		return 0, err
	}
	return totalIncome(ledger.Incomes) - totalExpenses(ledger.Expenses), nil
}

// SummaryByCategory sums expenses per category. Categories keep the order
// in which they first appear; categories without expenses are absent.
func (l *Ledger) SummaryByCategory(ctx context.Context) ([]model.CategoryAmount, error) {
	ledger, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(ledger.Expenses), nil
}

// FilterExpensesByDate returns the expenses dated within [start, end], both inclusive.
// A stored expense with a malformed date fails the whole call.
func (l *Ledger) FilterExpensesByDate(ctx context.Context, start, end string) ([]model.Expense, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return nil, err
	}

	ledger, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.Expense, 0)
	for _, e := range ledger.Expenses {
		date, err := ParseDate(e.Date)
		if err != nil {
			return nil, err
		}
		if date.Before(startDate) || date.After(endDate) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func totalIncome(incomes []model.Income) float64 {
	var total float64
	for _, e := range incomes {
		total += e.Amount
	}
	return total
}

func totalExpenses(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

func summarize(expenses []model.Expense) []model.CategoryAmount {
	summary := make([]model.CategoryAmount, 0)
	index := make(map[string]int)
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(summary)
			index[e.Category] = i
			summary = append(summary, model.CategoryAmount{Category: e.Category})
		}
		summary[i].Amount += e.Amount
	}
	return summary
}
