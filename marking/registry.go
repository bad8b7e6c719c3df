package marking

import (
	"strings"

	"github.com/montge/bannerkit/errors"
)

// controlEntry binds one control value to its canonical identifier and its
// two alias spaces. The first banner name is the primary one used for
// display; any further aliases exist purely to widen matching.
type controlEntry[T comparable] struct {
	value   T
	ident   string
	banner  []string
	portion []string
}

// Registry is a fixed-vocabulary lookup engine over an immutable set of
// control entries. Banner names and portion names form two independent key
// spaces: a string that matches only a portion name resolves through
// ByPortionName and never through ByBannerName, and vice versa. Within one
// registry, banner names are pairwise distinct across entries and so are
// portion names; the two spaces may overlap each other freely.
//
// Registries are built once at package init and never mutated, so they are
// safe for unsynchronized concurrent reads.
type Registry[T comparable] struct {
	vocabulary string
	entries    []controlEntry[T]
	byIdent    map[string]T
	byBanner   map[string]T
	byPortion  map[string]T
	names      map[T]string
	portions   map[T]string
}

// newRegistry builds the lookup tables for a vocabulary. It panics on alias
// collisions within one key space, since the vocabulary is static data and a
// collision is a bug in the table, not a runtime condition.
func newRegistry[T comparable](vocabulary string, entries []controlEntry[T]) *Registry[T] {
	r := &Registry[T]{
		vocabulary: vocabulary,
		entries:    entries,
		byIdent:    make(map[string]T, len(entries)),
		byBanner:   make(map[string]T, len(entries)),
		byPortion:  make(map[string]T, len(entries)),
		names:      make(map[T]string, len(entries)),
		portions:   make(map[T]string, len(entries)),
	}
	for _, e := range entries {
		if _, dup := r.byIdent[e.ident]; dup {
			panic("marking: duplicate identifier in " + vocabulary + ": " + e.ident)
		}
		r.byIdent[e.ident] = e.value
		r.names[e.value] = e.banner[0]
		r.portions[e.value] = e.portion[0]
		for _, b := range e.banner {
			if _, dup := r.byBanner[b]; dup {
				panic("marking: duplicate banner name in " + vocabulary + ": " + b)
			}
			r.byBanner[b] = e.value
		}
		for _, p := range e.portion {
			if _, dup := r.byPortion[p]; dup {
				panic("marking: duplicate portion name in " + vocabulary + ": " + p)
			}
			r.byPortion[p] = e.value
		}
	}
	return r
}

// ByBannerName returns the control whose banner-name aliases contain s as an
// exact, case- and whitespace-sensitive match. The empty string, an unknown
// string, and a string matching only a portion name all report not-found.
// A nil registry also reports not-found; contrast PrefixMatcher.Match.
func (r *Registry[T]) ByBannerName(s string) (T, bool) {
	var zero T
	if r == nil || s == "" {
		return zero, false
	}
	v, ok := r.byBanner[s]
	return v, ok
}

// ByPortionName is the symmetric lookup over the portion-name space. It never
// falls back to the banner space.
func (r *Registry[T]) ByPortionName(s string) (T, bool) {
	var zero T
	if r == nil || s == "" {
		return zero, false
	}
	v, ok := r.byPortion[s]
	return v, ok
}

// ValueOf resolves a canonical identifier, exactly and case-sensitively.
// An identifier outside the fixed vocabulary is a programming error at the
// call site and yields errors.ErrUnknownIdentifier.
func (r *Registry[T]) ValueOf(ident string) (T, error) {
	v, ok := r.byIdent[ident]
	if !ok {
		var zero T
		return zero, errors.NewUnknownIdentifier(r.vocabulary, ident)
	}
	return v, nil
}

// Name returns the primary banner name of a control: the first banner alias,
// the one used for display. Unregistered values yield the empty string.
func (r *Registry[T]) Name(v T) string {
	if r == nil {
		return ""
	}
	return r.names[v]
}

// Portion returns the primary portion marking of a control: the first portion
// alias. Unregistered values yield the empty string.
func (r *Registry[T]) Portion(v T) string {
	if r == nil {
		return ""
	}
	return r.portions[v]
}

// Idents returns the canonical identifiers of the vocabulary in entry order.
func (r *Registry[T]) Idents() []string {
	idents := make([]string, len(r.entries))
	for i, e := range r.entries {
		idents[i] = e.ident
	}
	return idents
}

// PrefixMatcher answers whether a text run starts with any banner or portion
// alias of a registry's vocabulary. It uses character-prefix semantics, not
// whole-token semantics: an alias plus an arbitrary suffix still matches, a
// non-prefix substring does not.
type PrefixMatcher struct {
	aliases []string
}

// Matcher builds a PrefixMatcher over the registry's combined banner and
// portion alias lists.
func (r *Registry[T]) Matcher() *PrefixMatcher {
	var aliases []string
	for _, e := range r.entries {
		aliases = append(aliases, e.banner...)
		aliases = append(aliases, e.portion...)
	}
	return &PrefixMatcher{aliases: aliases}
}

// Match reports whether s starts with at least one alias.
//
// Unlike the registry lookups, which tolerate missing input and report
// not-found, Match on a nil matcher panics. The asymmetry is deliberate,
// inherited contract: callers distinguish "no input" from "no match" by it.
// Do not add a nil guard here.
func (m *PrefixMatcher) Match(s string) bool {
	for _, a := range m.aliases {
		if strings.HasPrefix(s, a) {
			return true
		}
	}
	return false
}
