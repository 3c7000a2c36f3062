// Package normalize cleans raw cell text from the shoot history export.
// Nothing here validates; malformed values pass through stripped.
package normalize

import "strings"

// Zero placeholders for empty monetary cells.
const (
	ZeroPlain   = "0"
	ZeroDecimal = "0.00"
)

var moneyReplacer = strings.NewReplacer("$", "", ",", "")

// Text trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(s)
}

// EmailKey lowercases and trims an email for use as the client key.
func EmailKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Money strips currency symbols and thousands separators. An empty result
// becomes zero. The value stays text so no rounding ever happens.
func Money(s, zero string) string {
	cleaned := strings.TrimSpace(moneyReplacer.Replace(s))
	if cleaned == "" {
		return zero
	}
	return cleaned
}

// Percent strips percent signs; empty becomes "0".
func Percent(s string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	if cleaned == "" {
		return ZeroPlain
	}
	return cleaned
}

// Date trims a free-form date. When nullable, an empty date is nil.
func Date(s string, nullable bool) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" && nullable {
		return nil
	}
	return &trimmed
}
