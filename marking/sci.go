package marking

import (
	"sort"
	"strings"
)

// SciControl is a parsed Sensitive Compartmented Information segment: a
// control identifier plus compartments, each with ordered sub-compartments.
// Values are immutable once parsed; there is no update operation.
type SciControl struct {
	control      string
	compartments Compartments
}

// Compartments is a read-only ordered mapping from compartment name to its
// sub-compartment list. Names are held in ascending lexicographic order
// regardless of the order they appeared in the input; this is deliberate
// canonicalization, not a hash-table accident. Sub-compartment order is the
// input order, exactly.
//
// Accessors return copies, so callers cannot reach the parser's state.
type Compartments struct {
	names []string
	subs  map[string][]string
}

// Len returns the number of compartments.
func (c Compartments) Len() int {
	return len(c.names)
}

// Names returns the compartment names in ascending lexicographic order.
func (c Compartments) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Subs returns the sub-compartments of a compartment in input order, and
// whether the compartment exists at all. A missing compartment is data, not
// an error: the first return is nil and the second false.
func (c Compartments) Subs(name string) ([]string, bool) {
	subs, ok := c.subs[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out, true
}

// ParseSci parses an SCI segment of the nominal shape
// CONTROL[-COMPARTMENT[ SUB SUB ...]][-COMPARTMENT...].
//
// The split on `-` follows the trailing-empty-discard policy of
// splitDiscardTrailing: "SI---" parses like "SI", while "-TK" keeps its empty
// control and interior doubled hyphens keep an empty compartment token. The
// empty string parses to an empty control with zero compartments.
func ParseSci(s string) SciControl {
	parts := splitDiscardTrailing(s, "-")

	ctl := SciControl{
		compartments: Compartments{subs: make(map[string][]string)},
	}
	if len(parts) > 0 {
		ctl.control = parts[0]
	}

	rest := parts
	if len(rest) > 0 {
		rest = rest[1:]
	}
	for _, seg := range rest {
		pieces := splitDiscardTrailing(seg, " ")
		name := ""
		if len(pieces) > 0 {
			name = pieces[0]
		}
		var subs []string
		if len(pieces) > 1 {
			subs = append(subs, pieces[1:]...)
		}
		if _, seen := ctl.compartments.subs[name]; !seen {
			ctl.compartments.names = append(ctl.compartments.names, name)
		}
		ctl.compartments.subs[name] = subs
	}
	sort.Strings(ctl.compartments.names)
	return ctl
}

// Control returns the control identifier, verbatim from the input. It is the
// empty string when the input was empty or began with a hyphen.
func (c SciControl) Control() string {
	return c.control
}

// Compartments returns the compartment mapping.
func (c SciControl) Compartments() Compartments {
	return c.compartments
}

// String renders the canonical banner form: the control, then each compartment
// in sorted order joined with `-`, sub-compartments joined with spaces.
func (c SciControl) String() string {
	var b strings.Builder
	b.WriteString(c.control)
	for _, name := range c.compartments.names {
		b.WriteByte('-')
		b.WriteString(name)
		for _, sub := range c.compartments.subs[name] {
			b.WriteByte(' ')
			b.WriteString(sub)
		}
	}
	return b.String()
}
