package currency

import (
	"math"
	"testing"
)

func TestConvertThroughAnchor(t *testing.T) {
	c := NewConverter()

	got, err := c.Convert(100, "USD", "EUR")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if math.Abs(got-85) > 1e-9 {
		t.Fatalf("100 USD = %v EUR, want 85", got)
	}

	// Cross rate goes through USD: EUR -> USD -> JPY.
	got, err = c.Convert(10, "EUR", "JPY")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := 10 / 0.85 * 110.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("10 EUR = %v JPY, want %v", got, want)
	}

	got, err = c.Convert(42.5, "GBP", "GBP")
	if err != nil || got != 42.5 {
		t.Fatalf("same-currency convert = %v, %v; want identity", got, err)
	}

	if _, err := c.Convert(1, "USD", "XXX"); err != ErrUnsupported {
		t.Fatalf("unknown code error = %v, want ErrUnsupported", err)
	}
}

func TestRate(t *testing.T) {
	c := NewConverter()
	if r := c.Rate("USD", "USD"); r != 1.0 {
		t.Fatalf("identity rate = %v", r)
	}
	want := 110.0 / 0.85
	if r := c.Rate("EUR", "JPY"); math.Abs(r-want) > 1e-9 {
		t.Fatalf("EUR->JPY rate = %v, want %v", r, want)
	}
}

func TestUpdateRates(t *testing.T) {
	c := NewConverter()
	c.UpdateRates(map[string]float64{"EUR": 0.9, "JPY": 0})
	got, _ := c.Convert(100, "USD", "EUR")
	if math.Abs(got-90) > 1e-9 {
		t.Fatalf("after update 100 USD = %v EUR, want 90", got)
	}
	// Zero and negative rates are rejected, the snapshot survives.
	got, _ = c.Convert(1, "USD", "JPY")
	if math.Abs(got-110) > 1e-9 {
		t.Fatalf("zero-rate update applied, 1 USD = %v JPY", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{1234.5, "USD", "$1234.50"},
		{1234.5, "JPY", "¥1235"},
		{1180, "KRW", "₩1180"},
		{99.9, "CHF", "99.90 CHF"},
		{50, "SEK", "50.00 kr"},
		{12.345, "PLN", "12.35 zł"},
		{320, "LKR", "Rs320.00"},
		{7, "XXX", "7.00 XXX"},
	}
	for _, tc := range cases {
		if got := Format(tc.amount, tc.code); got != tc.want {
			t.Errorf("Format(%v, %q) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestSetCurrentFallsBack(t *testing.T) {
	c := NewConverter()
	c.SetCurrent("EUR")
	if c.Current() != "EUR" {
		t.Fatalf("current = %q", c.Current())
	}
	c.SetCurrent("DOGE")
	if c.Current() != Default {
		t.Fatalf("unsupported code kept, current = %q", c.Current())
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$1,234.56", 1234.56},
		{"99.90 CHF", 99.9},
		{"₩1180", 1180},
		{"", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(100); err != nil {
		t.Fatalf("valid amount rejected: %v", err)
	}
	if err := ValidateAmount(math.NaN()); err == nil {
		t.Fatal("NaN accepted")
	}
	if err := ValidateAmount(-1); err != ErrNegative {
		t.Fatalf("negative amount error = %v, want ErrNegative", err)
	}
	if err := ValidateAmount(1e12); err != ErrTooLarge {
		t.Fatalf("oversized amount error = %v, want ErrTooLarge", err)
	}
}
