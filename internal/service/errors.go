package service

import "fmt"

// StorageReadError means the persisted ledger exists but couldn't be read or parsed.
type StorageReadError struct {
	Err error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("couldn't read ledger: %v", e.Err)
}

func (e *StorageReadError) Unwrap() error {
	return e.Err
}

// StorageWriteError means the ledger couldn't be serialized or persisted.
type StorageWriteError struct {
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("couldn't write ledger: %v", e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}

// InvalidDateFormatError means Value is not a calendar date in the Expected layout.
// An empty Expected stands for YYYY-MM-DD.
type InvalidDateFormatError struct {
	Value    string
	Expected string
	Err      error
}

func (e *InvalidDateFormatError) Error() string {
	expected := e.Expected
	if expected == "" {
		expected = "YYYY-MM-DD"
	}
	return fmt.Sprintf("invalid date %q, expected %s", e.Value, expected)
}

func (e *InvalidDateFormatError) Unwrap() error {
	return e.Err
}

// InvalidInputError means a value typed by the user couldn't be parsed.
type InvalidInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be a number", e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}
