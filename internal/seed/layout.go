// Package seed turns decoded shoot history rows into deduplicated clients
// and an ordered list of shoots.
package seed

import (
	"errors"
	"fmt"
	"strings"

	"shootseeder/internal/normalize"
)

// Layout selects which document a conversion produces and how empty
// values are rendered.
type Layout string

const (
	// LayoutClients emits only the deduplicated client list.
	LayoutClients Layout = "clients"
	// LayoutHistory emits {"clients": [...], "shoots": [...]}.
	LayoutHistory Layout = "history"
	// LayoutShoots emits only the shoot list.
	LayoutShoots Layout = "shoots"
)

var ErrUnknownLayout = errors.New("unknown layout")

var layouts = []Layout{LayoutClients, LayoutHistory, LayoutShoots}

// Layouts lists every supported layout.
func Layouts() []Layout {
	out := make([]Layout, len(layouts))
	copy(out, layouts)
	return out
}

func ParseLayout(s string) (Layout, error) {
	l := Layout(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range layouts {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

var (
	clientColumns = []string{
		"Client Email",
		"Client Phone",
		"Client Company",
		"User Account Created By",
	}

	shootColumns = []string{
		"Client Email",
		"Photographer",
		"Scheduled",
		"Completed",
		"Address",
		"Address2",
		"City",
		"State",
		"Zip",
		"Services",
		"Base Quote",
		"Tax",
		"Tax Amount",
		"Total Quote",
		"Total Paid",
		"Last Payment Date",
		"Last Payment Type",
		"Tour Purchased",
		"Shoot Notes",
		"Photographer Notes",
		"User Account Created By",
	}
)

// RequiredColumns returns the header names a layout cannot run without.
// The history layout reads leniently and requires nothing.
func (l Layout) RequiredColumns() []string {
	switch l {
	case LayoutClients:
		return append([]string(nil), clientColumns...)
	case LayoutShoots:
		return append([]string(nil), shootColumns...)
	}
	return nil
}

// Options control how rows are normalized.
type Options struct {
	Layout Layout
	// NullDates renders empty scheduled, completed and last payment dates
	// as null instead of "".
	NullDates bool
	// Zero replaces empty monetary values.
	Zero string
}

// DefaultOptions returns the conventions each layout has always used:
// history keeps empty dates as "" with a "0" money placeholder, shoots
// uses null dates and "0.00".
func DefaultOptions(l Layout) Options {
	switch l {
	case LayoutShoots:
		return Options{Layout: l, NullDates: true, Zero: normalize.ZeroDecimal}
	default:
		return Options{Layout: l, NullDates: false, Zero: normalize.ZeroPlain}
	}
}
