package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	testTable := []struct {
		name   string
		input  string
		result float64
	}{
		{name: "Integer", input: "5000", result: 5000},
		{name: "Decimal", input: "200.75", result: 200.75},
		{name: "Surrounding spaces", input: "  42.5 ", result: 42.5},
		{name: "Negative kept", input: "-12.5", result: -12.5},
		{name: "Zero", input: "0", result: 0},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			amount, err := ParseAmount(testCase.input)
			if err != nil {
				t.Fatal(err)
			}
			require.Equal(t, testCase.result, amount)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "12,50", "1.2.3", "₹100", "1e400", "-1e400"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseAmount(input)
			var inputErr *InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			require.Equal(t, "amount", inputErr.Field)
			require.Equal(t, input, inputErr.Value)
		})
	}
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2024-02-29")
	require.NoError(t, err)

	_, err = ParseDate("2024-02-30")
	var dateErr *InvalidDateFormatError
	require.ErrorAs(t, err, &dateErr)
	require.Equal(t, `invalid date "2024-02-30", expected YYYY-MM-DD`, err.Error())

	_, err = ParseDate(Today())
	require.NoError(t, err)
}

func TestParseAmount_Overflow(t *testing.T) {
	_, err := ParseAmount("1e400")
	var inputErr *InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	require.ErrorIs(t, err, errOutOfRange)
	var writeErr *StorageWriteError
	require.False(t, errors.As(err, &writeErr))
}
