package internal

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

type CurrencyCode string

// NewCurrencyCode normalizes s to an upper-case ISO 4217 code.
func NewCurrencyCode(s string) (CurrencyCode, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "", fmt.Errorf("currency is empty")
	}
	unit, err := currency.ParseISO(raw)
	if err != nil {
		return "", fmt.Errorf("unsupported currency %q: %w", s, err)
	}
	return CurrencyCode(unit.String()), nil
}

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	JPY CurrencyCode = "JPY"
	CAD CurrencyCode = "CAD"
	RUB CurrencyCode = "RUB"
)

func (c CurrencyCode) String() string { return string(c) }

func (c CurrencyCode) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

func (c *CurrencyCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := strings.Trim(string(b), "\"")
	ccy, err := NewCurrencyCode(s)
	if err != nil {
		return err
	}
	*c = ccy
	return nil
}

// CurrencyPair is an ordered conversion direction.
type CurrencyPair struct {
	From CurrencyCode
	To   CurrencyCode
}

func NewCurrencyPair(from, to string) (CurrencyPair, error) {
	f, err := NewCurrencyCode(from)
	if err != nil {
		return CurrencyPair{}, fmt.Errorf("from: %w", err)
	}
	t, err := NewCurrencyCode(to)
	if err != nil {
		return CurrencyPair{}, fmt.Errorf("to: %w", err)
	}
	return CurrencyPair{From: f, To: t}, nil
}

// MustCurrencyPair is NewCurrencyPair for literals known to be valid.
func MustCurrencyPair(from, to string) CurrencyPair {
	p, err := NewCurrencyPair(from, to)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseCurrencyPair accepts "USD/EUR" and "USD_EUR".
func ParseCurrencyPair(s string) (CurrencyPair, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '/' || r == '_'
	})
	if len(parts) != 2 {
		return CurrencyPair{}, fmt.Errorf("invalid currency pair %q", s)
	}
	return NewCurrencyPair(parts[0], parts[1])
}

func (p CurrencyPair) String() string {
	return fmt.Sprintf("%s/%s", p.From, p.To)
}
