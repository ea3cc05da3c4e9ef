package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/klabast/wb-services/festival-agenda/internal/festival"
)

// WriteAgenda writes the full agenda, months in calendar order
func WriteAgenda(w io.Writer, agenda *festival.Agenda) {
	if agenda.Len() == 0 {
		writeString(w, MsgEmptyAgenda+"\n")
		return
	}
	writeString(w, agenda.Render())
}

// WriteCount writes the festival count of a month. A month without an
// entry in the agenda is reported as not scheduled instead of zero.
func WriteCount(w io.Writer, month festival.Month, count int) {
	if count == festival.NotScheduled {
		writeString(w, fmt.Sprintf("%s: %s\n", month, MsgNotScheduled))
		return
	}
	writeString(w, fmt.Sprintf("%s: %d\n", month, count))
}

// WriteStyles writes one line per style with its festival names
func WriteStyles(w io.Writer, groups []festival.StyleGroup) {
	if len(groups) == 0 {
		writeString(w, MsgEmptyAgenda+"\n")
		return
	}
	for _, g := range groups {
		writeString(w, fmt.Sprintf("%s: %s\n", g.Style, strings.Join(g.Names, ", ")))
	}
}

// WriteMonths writes every scheduled month with its localized name and
// festival count
func WriteMonths(w io.Writer, agenda *festival.Agenda, locale string) error {
	for _, m := range agenda.Months() {
		name, err := m.LocalName(locale)
		if err != nil {
			return fmt.Errorf("failed to localize %s for %s: %w", m, locale, err)
		}
		writeString(w, fmt.Sprintf("%-12s %d\n", name, agenda.CountInMonth(m)))
	}
	return nil
}
