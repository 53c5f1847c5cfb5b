// Package currency provides a small registry of the currencies the bank
// operates in, keyed by ISO 4217 code.
package currency

import (
	"errors"
	"regexp"
)

// DefaultCurrency is the bank's operating currency (Botswana Pula).
const DefaultCurrency = Code("BWP")

// DefaultDecimals is the number of decimal places assumed for currencies
// without registered metadata.
const DefaultDecimals = 2

// Code represents an ISO 4217 currency code (e.g., "BWP", "USD").
type Code string

// Meta holds currency-specific metadata.
type Meta struct {
	Decimals int
	Symbol   string
}

// ErrUnsupportedCurrency is returned when a currency code is not registered.
var ErrUnsupportedCurrency = errors.New("currency not supported")

var codeFormat = regexp.MustCompile(`^[A-Z]{3}$`)

var registered = map[Code]Meta{
	"BWP": {Decimals: 2, Symbol: "P"},
	"ZAR": {Decimals: 2, Symbol: "R"},
	"USD": {Decimals: 2, Symbol: "$"},
	"EUR": {Decimals: 2, Symbol: "€"},
	"GBP": {Decimals: 2, Symbol: "£"},
}

// IsValidFormat reports whether s looks like an ISO 4217 code
// (three uppercase letters).
func IsValidFormat(s string) bool {
	return codeFormat.MatchString(s)
}

// IsSupported reports whether the code is registered.
func IsSupported(c Code) bool {
	_, ok := registered[c]
	return ok
}

// Get returns the metadata for a registered currency code.
func Get(c Code) (Meta, error) {
	meta, ok := registered[c]
	if !ok {
		return Meta{}, ErrUnsupportedCurrency
	}
	return meta, nil
}
