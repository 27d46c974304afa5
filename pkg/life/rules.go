package life

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// maxNeighbours is the largest count a Moore neighbourhood can produce.
const maxNeighbours = 8

// NeighbourSet is a set of neighbour counts in the range [0, 8].
type NeighbourSet uint16

// NewNeighbourSet builds a set from the given counts. Counts outside [0, 8]
// can never be observed and are dropped.
func NewNeighbourSet(counts ...int) NeighbourSet {
	var s NeighbourSet
	for _, n := range counts {
		if n < 0 || n > maxNeighbours {
			continue
		}
		s |= 1 << uint(n)
	}
	return s
}

// Has reports whether n is a member of the set.
func (s NeighbourSet) Has(n int) bool {
	if n < 0 || n > maxNeighbours {
		return false
	}
	return s&(1<<uint(n)) != 0
}

// Counts returns the members in ascending order.
func (s NeighbourSet) Counts() []int {
	var out []int
	for n := 0; n <= maxNeighbours; n++ {
		if s.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

func (s NeighbourSet) String() string {
	var b strings.Builder
	for _, n := range s.Counts() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// Rules holds the birth and survival sets of a life-like automaton.
type Rules struct {
	Birth   NeighbourSet
	Survive NeighbourSet
}

// Conway is the classic B3/S23 rule.
var Conway = Rules{Birth: NewNeighbourSet(3), Survive: NewNeighbourSet(2, 3)}

// String renders the rules in B/S notation, e.g. "B3/S23".
func (r Rules) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survive.String()
}

var presets = map[string]string{
	"life":       "B3/S23",
	"highlife":   "B36/S23",
	"seeds":      "B2/S",
	"daynight":   "B3678/S34678",
	"maze":       "B3/S12345",
	"replicator": "B1357/S1357",
	"diamoeba":   "B35678/S5678",
	"2x2":        "B36/S125",
	"morley":     "B368/S245",
}

// Presets returns the names of the built-in rule sets in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupRules resolves either a preset name or a rule in B/S notation.
func LookupRules(s string) (Rules, error) {
	if notation, ok := presets[strings.ToLower(strings.TrimSpace(s))]; ok {
		return ParseRules(notation)
	}
	return ParseRules(s)
}

// ParseRules parses B/S notation ("B3/S23", case-insensitive, either order)
// or the older survival/birth digits form ("23/3").
func ParseRules(s string) (Rules, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rules{}, errors.Errorf("[ParseRules] rule %q must have exactly one '/'", s)
	}

	var r Rules
	var haveBirth, haveSurvive bool
	for i, part := range parts {
		part = strings.TrimSpace(part)
		kind := byte(0)
		if part != "" {
			switch part[0] {
			case 'B', 'b':
				kind = 'B'
				part = part[1:]
			case 'S', 's':
				kind = 'S'
				part = part[1:]
			}
		}
		if kind == 0 {
			// Digits-only form lists survival first.
			kind = "SB"[i]
		}
		set, err := parseCounts(part)
		if err != nil {
			return Rules{}, errors.Wrapf(err, "[ParseRules] rule %q", s)
		}
		switch kind {
		case 'B':
			if haveBirth {
				return Rules{}, errors.Errorf("[ParseRules] rule %q names the birth set twice", s)
			}
			r.Birth, haveBirth = set, true
		case 'S':
			if haveSurvive {
				return Rules{}, errors.Errorf("[ParseRules] rule %q names the survival set twice", s)
			}
			r.Survive, haveSurvive = set, true
		}
	}
	return r, nil
}

func parseCounts(digits string) (NeighbourSet, error) {
	var s NeighbourSet
	for _, c := range digits {
		if c < '0' || c > '0'+maxNeighbours {
			return 0, errors.Errorf("invalid neighbour count %q", c)
		}
		n := int(c - '0')
		if s.Has(n) {
			return 0, errors.Errorf("neighbour count %d repeated", n)
		}
		s |= 1 << uint(n)
	}
	return s, nil
}
