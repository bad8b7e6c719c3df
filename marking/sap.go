package marking

import "strings"

// MultiplePrograms is the literal sentinel a banner carries in place of four
// or more named programs. Recognition is exact: no case folding, no near-miss
// matching.
const MultiplePrograms = "MULTIPLE PROGRAMS"

type sapKind int

const (
	sapPrograms sapKind = iota
	sapMultiple
	sapHvsaco
)

// SapControl is a parsed Special Access Program segment. It is a tagged
// three-way variant: a program list, the multiple-programs sentinel, or the
// parameterless HVSACO sentinel. Exactly one shape holds; the tag makes the
// other two unrepresentable.
type SapControl struct {
	kind     sapKind
	programs []string
}

// NewHvsaco returns the HVSACO sentinel. It is the only construction path
// that produces it.
func NewHvsaco() SapControl {
	return SapControl{kind: sapHvsaco}
}

// ParseSap parses a SAP segment. The exact literal MultiplePrograms yields
// the multiple-programs sentinel with an empty program list. Any other input
// splits on `/` under the trailing-empty-discard policy: "BP/" parses like
// "BP", "/BP" keeps its leading empty program, "BP//GB" keeps the interior
// one, and "///" yields no programs at all.
//
// The "at most three programs, else MULTIPLE PROGRAMS" convention is a rule
// for generating banners, not for reading them; the parser accepts any count.
func ParseSap(s string) SapControl {
	if s == MultiplePrograms {
		return SapControl{kind: sapMultiple}
	}
	return SapControl{programs: splitDiscardTrailing(s, "/")}
}

// Programs returns the program names in input order. Both sentinel shapes
// report an empty list. The returned slice is a copy.
func (c SapControl) Programs() []string {
	out := make([]string, len(c.programs))
	copy(out, c.programs)
	return out
}

// IsMultiple reports the multiple-programs sentinel.
func (c SapControl) IsMultiple() bool {
	return c.kind == sapMultiple
}

// IsHvsaco reports the HVSACO sentinel.
func (c SapControl) IsHvsaco() bool {
	return c.kind == sapHvsaco
}

// String renders the canonical banner form. The program join round-trips any
// empty entries the parse preserved, so ["BP", "", "GB"] renders "SAR-BP//GB".
func (c SapControl) String() string {
	switch c.kind {
	case sapHvsaco:
		return "HVSACO"
	case sapMultiple:
		return "SAR-" + MultiplePrograms
	default:
		return "SAR-" + strings.Join(c.programs, "/")
	}
}
