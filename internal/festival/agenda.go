// Package festival keeps an in-memory agenda of festivals grouped by month.
//
// Agenda is not safe for concurrent use. A caller sharing one between
// goroutines must guard it with a single lock.
package festival

import (
	"maps"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NotScheduled is what CountInMonth returns for a month with no festivals.
// It is distinct from zero on purpose; use Festivals for an explicit
// presence flag.
const NotScheduled = -1

// Agenda stores festivals per month. Only months holding at least one
// festival have an entry, and each month's festivals are kept sorted by
// name ignoring case, earlier insertions first among equal names.
type Agenda struct {
	byMonth map[Month][]Festival
	logger  *zerolog.Logger
}

// StyleGroup is one entry of GroupByStyle: a style and the sorted, distinct
// names of the festivals tagged with it.
type StyleGroup struct {
	Style Style
	Names []string
}

// NewAgenda returns an empty agenda logging through the global logger.
func NewAgenda() *Agenda {
	return &Agenda{byMonth: make(map[Month][]Festival)}
}

// SetLogger replaces the logger used to trace insertions.
func (a *Agenda) SetLogger(l zerolog.Logger) {
	a.logger = &l
}

func (a *Agenda) eventLogger() *zerolog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return &log.Logger
}

// Add inserts f into the list of its month, in name order.
func (a *Agenda) Add(f Festival) {
	if a.byMonth == nil {
		a.byMonth = make(map[Month][]Festival)
	}

	m := f.Month()
	list := a.byMonth[m]
	i := insertionIndex(list, f)
	a.byMonth[m] = slices.Insert(list, i, f)

	a.eventLogger().Debug().
		Str("festival", f.Name()).
		Stringer("month", m).
		Int("position", i).
		Msg("festival added")
}

// insertionIndex scans from the front and stops at the first festival whose
// name sorts after f's, so equal names keep their insertion order.
func insertionIndex(list []Festival, f Festival) int {
	for i, existing := range list {
		if CompareNames(existing.Name(), f.Name()) > 0 {
			return i
		}
	}
	return len(list)
}

// Render lists each month in natural order followed by its festivals, one
// blank line closing every month block.
func (a *Agenda) Render() string {
	var sb strings.Builder
	for _, m := range a.Months() {
		sb.WriteString(m.String())
		sb.WriteString(":\n")
		for _, f := range a.byMonth[m] {
			sb.WriteString(f.String())
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (a *Agenda) String() string {
	return a.Render()
}

// CountInMonth returns how many festivals are stored for m, or NotScheduled
// if m has no entry.
func (a *Agenda) CountInMonth(m Month) int {
	list, ok := a.byMonth[m]
	if !ok {
		return NotScheduled
	}
	return len(list)
}

// Festivals returns a copy of the festivals stored for m in stored order.
func (a *Agenda) Festivals(m Month) ([]Festival, bool) {
	list, ok := a.byMonth[m]
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// Months returns the months that hold festivals, in natural order.
func (a *Agenda) Months() []Month {
	return slices.Sorted(maps.Keys(a.byMonth))
}

// Len is the total number of festivals across all months.
func (a *Agenda) Len() int {
	n := 0
	for _, list := range a.byMonth {
		n += len(list)
	}
	return n
}

// GroupByStyle collects the names of every festival under each of its
// styles. Groups come back in style order and names in plain string order.
func (a *Agenda) GroupByStyle() []StyleGroup {
	sets := make(map[Style]map[string]struct{})
	for _, list := range a.byMonth {
		for _, f := range list {
			for _, s := range f.styles {
				if sets[s] == nil {
					sets[s] = make(map[string]struct{})
				}
				sets[s][f.Name()] = struct{}{}
			}
		}
	}

	groups := make([]StyleGroup, 0, len(sets))
	for _, s := range slices.Sorted(maps.Keys(sets)) {
		groups = append(groups, StyleGroup{
			Style: s,
			Names: slices.Sorted(maps.Keys(sets[s])),
		})
	}
	return groups
}
