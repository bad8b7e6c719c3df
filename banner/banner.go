// Package banner splits a full classification banner line into its
// `//`-separated segments and dispatches each one to the marking parsers.
// It is the upstream collaborator of package marking: marking reads single
// segments, banner decides which parser a segment belongs to.
package banner

import (
	"strings"

	"github.com/montge/bannerkit/errors"
	"github.com/montge/bannerkit/logger"
	"github.com/montge/bannerkit/marking"
)

// sciSystems names the SCI control systems this dispatcher claims: a segment
// whose leading hyphen token is one of these parses as an SCI control.
var sciSystems = map[string]bool{
	"SI":  true,
	"TK":  true,
	"HCS": true,
	"KDK": true,
}

// Banner is a fully decoded banner marking line.
type Banner struct {
	Classification marking.Classification
	Sci            []marking.SciControl
	Sap            *marking.SapControl
	Dissem         []marking.DisseminationControl
	Other          []marking.OtherDissemControl

	// FreeText holds dissemination runs claimed by prefix matching rather
	// than whole-token lookup ("REL TO USA, GBR", "ACCM-NICKNAME"). They are
	// kept verbatim so String can reproduce them.
	FreeText []string
}

// Parse decodes a full banner line, e.g.
// "TOP SECRET//SI-TK ALFA BRAVO//SAR-BP/GB//NOFORN/OC".
//
// The first `//`-segment must be a classification level; every further
// segment must be claimed by exactly one of the SCI, SAP, or dissemination
// dispatchers or Parse fails with ErrUnknownSegment.
func Parse(s string) (*Banner, error) {
	if s == "" {
		return nil, errors.WithStack(errors.ErrEmptyBanner)
	}

	segments := strings.Split(s, "//")

	class, ok := marking.Classifications.ByBannerName(segments[0])
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownClassification, "%q", segments[0])
	}

	b := &Banner{Classification: class}
	for _, seg := range segments[1:] {
		if err := b.dispatch(seg); err != nil {
			return nil, errors.Wrapf(err, "banner %q", s)
		}
	}
	return b, nil
}

var (
	dissemMatcher = marking.DisseminationControls.Matcher()
	otherMatcher  = marking.OtherDissemControls.Matcher()
)

// dispatch routes one `//`-segment to the parser that claims it.
func (b *Banner) dispatch(seg string) error {
	switch {
	case seg == "HVSACO":
		sap := marking.NewHvsaco()
		b.Sap = &sap
		return nil
	case strings.HasPrefix(seg, "SAR-"):
		sap := marking.ParseSap(strings.TrimPrefix(seg, "SAR-"))
		b.Sap = &sap
		return nil
	case sciSystems[leadToken(seg)]:
		b.Sci = append(b.Sci, marking.ParseSci(seg))
		return nil
	}
	return b.dispatchDissem(seg)
}

// runPrefixes are aliases that never stand alone: the control name glues
// directly onto free text (country lists, ACCM nicknames), so a segment
// starting with one is a single run and must not be `/`-tokenized —
// "REL TO USA/GBR" is one run, not a token list.
var runPrefixes = []string{"REL TO ", "DISPLAY ONLY ", "ACCM-"}

// eyesOnlySuffix is the one run-style control that trails its country list.
const eyesOnlySuffix = " EYES ONLY"

// dispatchDissem resolves a dissemination segment. Run-style controls are
// claimed whole before `/`-tokenization.
func (b *Banner) dispatchDissem(seg string) error {
	if c, ok := marking.DisseminationControls.ByBannerName(seg); ok {
		b.Dissem = append(b.Dissem, c)
		return nil
	}
	if c, ok := marking.OtherDissemControls.ByBannerName(seg); ok {
		b.Other = append(b.Other, c)
		return nil
	}
	for _, prefix := range runPrefixes {
		if strings.HasPrefix(seg, prefix) {
			b.FreeText = append(b.FreeText, seg)
			return nil
		}
	}
	if strings.HasSuffix(seg, eyesOnlySuffix) {
		b.FreeText = append(b.FreeText, seg)
		return nil
	}

	for _, tok := range strings.Split(seg, "/") {
		if c, ok := marking.DisseminationControls.ByBannerName(tok); ok {
			b.Dissem = append(b.Dissem, c)
			continue
		}
		if c, ok := marking.DisseminationControls.ByPortionName(tok); ok {
			logger.Debugw("dissemination token resolved via portion space", "token", tok)
			b.Dissem = append(b.Dissem, c)
			continue
		}
		if c, ok := marking.OtherDissemControls.ByBannerName(tok); ok {
			b.Other = append(b.Other, c)
			continue
		}
		if c, ok := marking.OtherDissemControls.ByPortionName(tok); ok {
			b.Other = append(b.Other, c)
			continue
		}
		if dissemMatcher.Match(tok) || otherMatcher.Match(tok) {
			b.FreeText = append(b.FreeText, tok)
			continue
		}
		return errors.Wrapf(errors.ErrUnknownSegment, "%q", tok)
	}
	return nil
}

// leadToken returns the text before the first hyphen.
func leadToken(seg string) string {
	if i := strings.IndexByte(seg, '-'); i >= 0 {
		return seg[:i]
	}
	return seg
}

// String reassembles the canonical banner form: classification, SCI, SAP,
// then dissemination controls by primary banner name with any prefix-claimed
// runs appended verbatim, then other-dissemination controls.
func (b *Banner) String() string {
	parts := []string{b.Classification.String()}
	for _, sci := range b.Sci {
		parts = append(parts, sci.String())
	}
	if b.Sap != nil {
		parts = append(parts, b.Sap.String())
	}

	var dissem []string
	for _, c := range b.Dissem {
		dissem = append(dissem, c.String())
	}
	dissem = append(dissem, b.FreeText...)
	if len(dissem) > 0 {
		parts = append(parts, strings.Join(dissem, "/"))
	}

	var other []string
	for _, c := range b.Other {
		other = append(other, c.String())
	}
	if len(other) > 0 {
		parts = append(parts, strings.Join(other, "/"))
	}

	return strings.Join(parts, "//")
}
