package festival

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/klauspost/lctime"
)

// Month is a calendar month. Constants are declared in calendar order and
// that order is the natural order used by Agenda.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// ErrUnknownMonth is returned by ParseMonth for labels that name no month.
var ErrUnknownMonth = errors.New("unknown month")

// Valid reports whether m is one of the declared months.
func (m Month) Valid() bool {
	return m >= January && m <= December
}

// String returns the upper-case label, e.g. "MARCH".
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return strings.ToUpper(time.Month(m).String())
}

// LocalName returns the month name in the given POSIX locale (e.g. "es_ES").
func (m Month) LocalName(locale string) (string, error) {
	if !m.Valid() {
		return "", fmt.Errorf("month %d: %w", int(m), ErrUnknownMonth)
	}
	// Noon avoids timezone issues when formatting
	t := time.Date(2000, time.Month(m), 1, 12, 0, 0, 0, time.UTC)
	return lctime.StrftimeLoc(locale, "%B", t)
}

// ParseMonth resolves a label case-insensitively ("march", "MARCH").
func ParseMonth(s string) (Month, error) {
	label := strings.TrimSpace(s)
	for m := January; m <= December; m++ {
		if strings.EqualFold(label, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("parse %q: %w", s, ErrUnknownMonth)
}

// Months returns every month in natural order.
func Months() []Month {
	out := make([]Month, 0, 12)
	for m := January; m <= December; m++ {
		out = append(out, m)
	}
	return out
}
