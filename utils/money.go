package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// ParsePrice coerces a price coming from a loosely typed payload into a
// non-negative decimal. Strings may carry currency symbols, thousands
// separators and a decimal comma ("€1.299,99").
func ParsePrice(v any) (decimal.Decimal, error) {
	switch p := v.(type) {
	case float64:
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return decimal.Zero, ErrInvalidPrice
		}
		return decimal.NewFromFloat(p), nil
	case int:
		if p < 0 {
			return decimal.Zero, ErrInvalidPrice
		}
		return decimal.NewFromInt(int64(p)), nil
	case string:
		return parsePriceString(p)
	default:
		return decimal.Zero, ErrInvalidPrice
	}
}

func parsePriceString(s string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	// With both separators present, the rightmost one is the decimal point
	// and the other is a thousands separator.
	dot := strings.LastIndex(cleaned, ".")
	comma := strings.LastIndex(cleaned, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case comma >= 0:
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return d, nil
}

// ParseQuantity accepts a numeric or numeric-string quantity and returns it
// as an integer >= 1.
func ParseQuantity(v any) (int, error) {
	var q float64
	switch n := v.(type) {
	case float64:
		q = n
	case int:
		q = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, ErrInvalidQuantity
		}
		q = parsed
	default:
		return 0, ErrInvalidQuantity
	}

	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return 0, ErrInvalidQuantity
	}
	qty := int(math.Round(q))
	if qty < 1 {
		return 0, ErrInvalidQuantity
	}
	return qty, nil
}

// Round2 rounds half up to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatMoney renders an amount with two decimals for human-readable output.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
