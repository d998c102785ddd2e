package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a currency amount with two fraction digits on the wire ("12.99").
// It accepts either a JSON string or a JSON number on input.
type Money struct {
	decimal.Decimal
}

// MustMoney parses s and panics on malformed input. Intended for seed data and tests.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney parses a decimal string such as "24.99".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", s, err)
	}
	return Money{Decimal: d}, nil
}

// MaxMoney is the largest amount a stored price or total can hold (NUMERIC(10,2)).
var MaxMoney = MustMoney("99999999.99")

// Check reports why m cannot be stored exactly: a negative amount, more than
// two fraction digits, or an amount above MaxMoney.
func (m Money) Check() error {
	switch {
	case m.IsNegative():
		return errors.New("must not be negative")
	case !m.Equal(m.Truncate(2)):
		return errors.New("must have at most 2 decimal places")
	case m.GreaterThan(MaxMoney.Decimal):
		return fmt.Errorf("must not exceed %s", MaxMoney)
	}
	return nil
}

func (m Money) String() string {
	return m.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// Rating is a 0-5 score with one fraction digit on the wire ("4.5").
type Rating struct {
	decimal.Decimal
}

// MustRating parses s and panics on malformed input. Intended for seed data and tests.
func MustRating(s string) Rating {
	r, err := ParseRating(s)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRating parses a decimal string such as "4.8".
func ParseRating(s string) (Rating, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rating{}, fmt.Errorf("parse rating %q: %w", s, err)
	}
	return Rating{Decimal: d}, nil
}

func (r Rating) String() string {
	return r.StringFixed(1)
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}
