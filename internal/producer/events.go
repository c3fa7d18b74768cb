package producer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	IncomeKind  = "income"
	ExpenseKind = "expense"
)

// EntryAdded is emitted after an entry has been persisted.
// Label is the income source or the expense category.
type EntryAdded struct {
	ID         string    `json:"id"`
	Ledger     string    `json:"ledger"`
	Kind       string    `json:"kind"`
	Label      string    `json:"label"`
	Amount     float64   `json:"amount"`
	Date       string    `json:"date"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEntryAdded(ledger, kind, label string, amount float64, date string) EntryAdded {
	return EntryAdded{
		ID:         uuid.New().String(),
		Ledger:     ledger,
		Kind:       kind,
		Label:      label,
		Amount:     amount,
		Date:       date,
		OccurredAt: time.Now().UTC(),
	}
}

//go:generate mockery --name=Publisher

type Publisher interface {
	Publish(ctx context.Context, event EntryAdded) error
	Close() error
}

// LogPublisher only logs events. It is used when no broker is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, event EntryAdded) error {
	logrus.WithFields(logrus.Fields{
		"id":     event.ID,
		"ledger": event.Ledger,
		"kind":   event.Kind,
		"label":  event.Label,
		"amount": event.Amount,
		"date":   event.Date,
	}).Debug("entry added")
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}

var _ Publisher = (*LogPublisher)(nil)
