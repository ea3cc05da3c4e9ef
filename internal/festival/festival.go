package festival

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout is the dd-MM-yyyy layout used when rendering festivals.
const DateLayout = "02-01-2006"

// Festival is an immutable festival record. Construct it with NewFestival.
type Festival struct {
	name   string
	start  time.Time
	days   int
	styles []Style
}

// NewFestival builds a festival starting on start and lasting days days.
// Styles are treated as a set: duplicates are dropped and the rest kept in
// natural order. A duration below one day counts as one day.
func NewFestival(name string, start time.Time, days int, styles ...Style) Festival {
	if days < 1 {
		days = 1
	}
	set := slices.Clone(styles)
	slices.Sort(set)
	set = slices.Compact(set)

	return Festival{
		name:   name,
		start:  start,
		days:   days,
		styles: set,
	}
}

// Name is the festival name as given, used for ordering and grouping.
func (f Festival) Name() string { return f.name }

// Month is the month the festival starts in.
func (f Festival) Month() Month { return Month(f.start.Month()) }

// Start is the first day of the festival.
func (f Festival) Start() time.Time { return f.start }

// Days is the duration in days, at least one.
func (f Festival) Days() int { return f.days }

// End returns the last day of the festival.
func (f Festival) End() time.Time { return f.start.AddDate(0, 0, f.days-1) }

// Styles returns a copy of the festival's styles in natural order.
func (f Festival) Styles() []Style { return slices.Clone(f.styles) }

// HasStyle reports whether the festival is tagged with s.
func (f Festival) HasStyle(s Style) bool {
	_, found := slices.BinarySearch(f.styles, s)
	return found
}

// String renders the festival as two lines: name and styles, then dates.
func (f Festival) String() string {
	labels := make([]string, len(f.styles))
	for i, s := range f.styles {
		labels[i] = s.String()
	}

	dates := f.start.Format(DateLayout)
	if f.days > 1 {
		dates += " - " + f.End().Format(DateLayout)
	}

	return fmt.Sprintf("%-20s[%s]\n%s", cases.Upper(language.Spanish).String(f.name), strings.Join(labels, ", "), dates)
}

// CompareNames orders festival names ignoring case. Runes are compared one
// at a time after mapping to upper and then lower case, so no mapping ever
// changes a name's length ("ß" stays distinct from "ss"). Names that agree
// on their common prefix order by rune count.
func CompareNames(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	for i := 0; i < min(len(ra), len(rb)); i++ {
		c1, c2 := ra[i], rb[i]
		if c1 == c2 {
			continue
		}
		c1, c2 = unicode.ToUpper(c1), unicode.ToUpper(c2)
		if c1 == c2 {
			continue
		}
		c1, c2 = unicode.ToLower(c1), unicode.ToLower(c2)
		if c1 != c2 {
			return int(c1) - int(c2)
		}
	}
	return len(ra) - len(rb)
}
