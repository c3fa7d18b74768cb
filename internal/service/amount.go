package service

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var errOutOfRange = errors.New("out of range")

// ParseAmount parses an amount typed at the menu, the CLI or the bot.
// Signs are kept; values beyond the float64 range are rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, &InvalidInputError{Field: "amount", Value: s, Err: err}
	}
	v := d.InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &InvalidInputError{Field: "amount", Value: s, Err: errOutOfRange}
	}
	return v, nil
}
