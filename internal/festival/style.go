package festival

import (
	"errors"
	"fmt"
	"strings"
)

// Style is a musical genre. Declaration order is the natural order and
// drives the ordering of GroupByStyle results.
type Style int

const (
	Blues Style = iota
	Electronic
	Folk
	HipHop
	Indie
	Jazz
	Metal
	Pop
	Punk
	Reggae
	Rock
	Techno
)

var styleLabels = [...]string{
	Blues:      "BLUES",
	Electronic: "ELECTRONIC",
	Folk:       "FOLK",
	HipHop:     "HIPHOP",
	Indie:      "INDIE",
	Jazz:       "JAZZ",
	Metal:      "METAL",
	Pop:        "POP",
	Punk:       "PUNK",
	Reggae:     "REGGAE",
	Rock:       "ROCK",
	Techno:     "TECHNO",
}

// ErrUnknownStyle is returned by ParseStyle for labels that name no style.
var ErrUnknownStyle = errors.New("unknown style")

// Valid reports whether s is one of the declared styles.
func (s Style) Valid() bool {
	return s >= Blues && int(s) < len(styleLabels)
}

// String returns the upper-case label, e.g. "INDIE".
func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleLabels[s]
}

// ParseStyle resolves a label case-insensitively.
func ParseStyle(s string) (Style, error) {
	label := strings.TrimSpace(s)
	for i, l := range styleLabels {
		if strings.EqualFold(label, l) {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("parse %q: %w", s, ErrUnknownStyle)
}

// Styles returns every style in natural order.
func Styles() []Style {
	out := make([]Style, len(styleLabels))
	for i := range styleLabels {
		out[i] = Style(i)
	}
	return out
}
