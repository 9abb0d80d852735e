// Package currency handles display currencies: a fixed table of supported
// codes with formatting rules, local conversion through USD-anchored rates,
// and the backend endpoints that persist a user's preference.
package currency

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const Default = "USD"

var (
	ErrUnsupported = errors.New("currency: unsupported currency code")
	ErrNegative    = errors.New("currency: amount cannot be negative")
	ErrTooLarge    = errors.New("currency: amount is too large")
)

// maxAmount bounds user-entered amounts before they reach the backend.
const maxAmount = 999_999_999

// Info describes how one currency is shown.
type Info struct {
	Code          string
	Symbol        string
	Name          string
	DecimalPlaces int
	SymbolAfter   bool
}

// Supported is the fixed set of display currencies, USD-anchored rates
// alongside. Rates are snapshot values refreshed through UpdateRates.
var Supported = []Info{
	{Code: "USD", Symbol: "$", Name: "US Dollar", DecimalPlaces: 2},
	{Code: "EUR", Symbol: "€", Name: "Euro", DecimalPlaces: 2},
	{Code: "GBP", Symbol: "£", Name: "British Pound", DecimalPlaces: 2},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", DecimalPlaces: 0},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", DecimalPlaces: 2},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", DecimalPlaces: 2},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc", DecimalPlaces: 2, SymbolAfter: true},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan", DecimalPlaces: 2},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", DecimalPlaces: 2},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real", DecimalPlaces: 2},
	{Code: "MXN", Symbol: "$", Name: "Mexican Peso", DecimalPlaces: 2},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won", DecimalPlaces: 0},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar", DecimalPlaces: 2},
	{Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar", DecimalPlaces: 2},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar", DecimalPlaces: 2},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona", DecimalPlaces: 2, SymbolAfter: true},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone", DecimalPlaces: 2, SymbolAfter: true},
	{Code: "DKK", Symbol: "kr", Name: "Danish Krone", DecimalPlaces: 2, SymbolAfter: true},
	{Code: "PLN", Symbol: "zł", Name: "Polish Zloty", DecimalPlaces: 2, SymbolAfter: true},
	{Code: "CZK", Symbol: "Kč", Name: "Czech Koruna", DecimalPlaces: 2, SymbolAfter: true},
	{Code: "LKR", Symbol: "Rs", Name: "Sri Lankan Rupee", DecimalPlaces: 2},
}

// Converter holds the rate table and the active display currency. Not safe
// for concurrent mutation; the UI owns a single instance.
type Converter struct {
	current string
	rates   map[string]float64
}

func NewConverter() *Converter {
	return &Converter{
		current: Default,
		rates: map[string]float64{
			"USD": 1.0, "EUR": 0.85, "GBP": 0.73, "JPY": 110.0,
			"CAD": 1.25, "AUD": 1.35, "CHF": 0.92, "CNY": 6.45,
			"INR": 74.0, "BRL": 5.2, "MXN": 20.0, "KRW": 1180.0,
			"SGD": 1.35, "HKD": 7.8, "NZD": 1.42, "SEK": 8.6,
			"NOK": 8.9, "DKK": 6.3, "PLN": 3.9, "CZK": 21.7,
			"LKR": 320.0,
		},
	}
}

// InfoFor returns the display rules for a code, false when unsupported.
func InfoFor(code string) (Info, bool) {
	for _, c := range Supported {
		if c.Code == code {
			return c, true
		}
	}
	return Info{}, false
}

func Valid(code string) bool {
	_, ok := InfoFor(code)
	return ok
}

// SetCurrent switches the display currency; unsupported codes fall back to
// the default.
func (c *Converter) SetCurrent(code string) {
	if Valid(code) {
		c.current = code
		return
	}
	c.current = Default
}

func (c *Converter) Current() string {
	return c.current
}

// Rate returns how many units of `to` one unit of `from` buys.
func (c *Converter) Rate(from, to string) float64 {
	if from == to {
		return 1.0
	}
	fromRate, ok := c.rates[from]
	if !ok {
		fromRate = 1.0
	}
	toRate, ok := c.rates[to]
	if !ok {
		toRate = 1.0
	}
	return toRate / fromRate
}

// Convert translates an amount between two supported currencies through the
// USD anchor.
func (c *Converter) Convert(amount float64, from, to string) (float64, error) {
	if !Valid(from) || !Valid(to) {
		return 0, ErrUnsupported
	}
	return amount * c.Rate(from, to), nil
}

// UpdateRates merges fresh USD-anchored rates over the snapshot.
func (c *Converter) UpdateRates(rates map[string]float64) {
	for code, rate := range rates {
		if rate > 0 {
			c.rates[code] = rate
		}
	}
}

// Format renders an amount with the currency's symbol, position and decimal
// places. Unsupported codes fall back to "amount CODE".
func Format(amount float64, code string) string {
	info, ok := InfoFor(code)
	if !ok {
		return fmt.Sprintf("%.2f %s", amount, code)
	}
	value := strconv.FormatFloat(amount, 'f', info.DecimalPlaces, 64)
	if info.SymbolAfter {
		return value + " " + info.Symbol
	}
	return info.Symbol + value
}

// FormatIn converts and then formats in one step.
func (c *Converter) FormatIn(amount float64, from, to string) (string, error) {
	if from == to {
		return Format(amount, to), nil
	}
	converted, err := c.Convert(amount, from, to)
	if err != nil {
		return "", err
	}
	return Format(converted, to), nil
}

// ParseAmount extracts the numeric amount from user input, tolerating a
// currency symbol and grouping characters.
func ParseAmount(input string) float64 {
	clean := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, input)
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return v
}

// ValidateAmount checks a user-entered amount before submission.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) {
		return fmt.Errorf("currency: amount must be a number")
	}
	if amount < 0 {
		return ErrNegative
	}
	if amount > maxAmount {
		return ErrTooLarge
	}
	return nil
}
