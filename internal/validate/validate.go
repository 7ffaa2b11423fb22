// Package validate cleans raw request values before they reach the shop document.
// Every helper is pure and total: bad input yields a zero value or a false flag, never a panic.
package validate

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Quantity bounds for a single order.
const (
	MinQuantity = 1
	MaxQuantity = 20
)

const maxImageLength = 500

// Past this magnitude a float64 carries no cent digits, and scaling by 100 can overflow.
const roundLimit = 1e15

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	httpURLRegex = regexp.MustCompile(`(?i)^https?://`)
)

// Text trims value and truncates it to max characters.
func Text(value string, max int) string {
	trimmed := strings.TrimSpace(value)
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(trimmed) <= max {
		return trimmed
	}
	runes := []rune(trimmed)
	return string(runes[:max])
}

// Round2 rounds v to two decimal places. Values too large to have cents are returned as is.
func Round2(v float64) float64 {
	if math.Abs(v) >= roundLimit || math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}

// Price returns n rounded to cents when it is a finite, non-negative number.
func Price(n Number) (float64, bool) {
	if !n.Valid || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) || n.Value < 0 {
		return 0, false
	}
	return Round2(n.Value), true
}

// PriceValue is Price for an already decoded float, such as a stored meal price.
func PriceValue(v float64) (float64, bool) {
	return Price(Number{Value: v, Valid: true})
}

// Quantity returns n as an int when it is a whole number within [MinQuantity, MaxQuantity].
func Quantity(n Number) (int, bool) {
	if !n.Valid || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return 0, false
	}
	if n.Value != math.Trunc(n.Value) || n.Value < MinQuantity || n.Value > MaxQuantity {
		return 0, false
	}
	return int(n.Value), true
}

// Date accepts a strict YYYY-MM-DD string that names a real calendar day.
func Date(value string) (string, bool) {
	text := strings.TrimSpace(value)
	if !datePattern.MatchString(text) {
		return "", false
	}
	if _, err := time.Parse(time.DateOnly, text); err != nil {
		return "", false
	}
	return text, true
}

// ImageURL keeps absolute paths, paths under images/, and http(s) URLs. Anything else becomes "".
func ImageURL(value string) string {
	url := Text(value, maxImageLength)
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "/") || strings.HasPrefix(url, "images/") || httpURLRegex.MatchString(url) {
		return url
	}
	return ""
}
