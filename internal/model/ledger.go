package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	incomeKey   = "income"
	expensesKey = "expenses"
)

// Ledger is the whole persisted document. It is always read and written as one unit.
type Ledger struct {
	Incomes  []Income  `json:"income"`
	Expenses []Expense `json:"expenses"`
}

func NewLedger() *Ledger {
	return &Ledger{
		Incomes:  make([]Income, 0),
		Expenses: make([]Expense, 0),
	}
}

// incomeRecord and expenseRecord mirror the stored entries with pointer fields
// so that a missing key can be told apart from a zero value.
type incomeRecord struct {
	Source *string  `json:"source"`
	Amount *float64 `json:"amount"`
	Date   *string  `json:"date"`
}

type expenseRecord struct {
	Category *string  `json:"category"`
	Amount   *float64 `json:"amount"`
	Date     *string  `json:"date"`
}

// MarshalJSON never writes null for an empty sequence.
func (l Ledger) MarshalJSON() ([]byte, error) {
	doc := struct {
		Incomes  []Income  `json:"income"`
		Expenses []Expense `json:"expenses"`
	}{
		Incomes:  l.Incomes,
		Expenses: l.Expenses,
	}
	if doc.Incomes == nil {
		doc.Incomes = make([]Income, 0)
	}
	if doc.Expenses == nil {
		doc.Expenses = make([]Expense, 0)
	}
	return json.Marshal(doc)
}

// UnmarshalJSON rejects documents that do not carry both sequences
// or whose entries lack one of their fields.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errors.New("ledger document is null")
	}

	incomeData, err := requiredArray(raw, incomeKey)
	if err != nil {
		return err
	}
	expensesData, err := requiredArray(raw, expensesKey)
	if err != nil {
		return err
	}

	var incomeRecords []incomeRecord
	if err = json.Unmarshal(incomeData, &incomeRecords); err != nil {
		return fmt.Errorf("%q: %w", incomeKey, err)
	}
	var expenseRecords []expenseRecord
	if err = json.Unmarshal(expensesData, &expenseRecords); err != nil {
		return fmt.Errorf("%q: %w", expensesKey, err)
	}

	incomes := make([]Income, 0, len(incomeRecords))
	for i, r := range incomeRecords {
		if r.Source == nil || r.Amount == nil || r.Date == nil {
			return fmt.Errorf("%q entry %d: source, amount and date are required", incomeKey, i)
		}
		incomes = append(incomes, Income{Source: *r.Source, Amount: *r.Amount, Date: *r.Date})
	}
	expenses := make([]Expense, 0, len(expenseRecords))
	for i, r := range expenseRecords {
		if r.Category == nil || r.Amount == nil || r.Date == nil {
			return fmt.Errorf("%q entry %d: category, amount and date are required", expensesKey, i)
		}
		expenses = append(expenses, Expense{Category: *r.Category, Amount: *r.Amount, Date: *r.Date})
	}

	l.Incomes = incomes
	l.Expenses = expenses
	return nil
}

func requiredArray(raw map[string]json.RawMessage, key string) (json.RawMessage, error) {
	v, ok := raw[key]
	if !ok {
		return nil, fmt.Errorf("missing %q", key)
	}
	if string(v) == "null" {
		return nil, fmt.Errorf("%q is null", key)
	}
	return v, nil
}

// Encode serializes the ledger the way finance_data.json has always been written: 4-space indent.
func Encode(l *Ledger) ([]byte, error) {
	return json.MarshalIndent(l, "", "    ")
}

func Decode(data []byte) (*Ledger, error) {
	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
