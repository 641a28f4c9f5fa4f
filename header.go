// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package rinexobs

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Style of the observation type declaration encountered in the header
type obsLineStyle int

const (
	styleNone obsLineStyle = iota
	styleV2                // "# / TYPES OF OBSERV"
	styleV3                // "SYS / # / OBS TYPES"
)

// Accumulated header state. The version flag and the line style are
// recorded independently and checked for agreement once the end marker
// is reached.
type headerState struct {
	versionSeen bool
	v3          bool
	style       obsLineStyle
	count       int // declared observation type count
	types       []string
}

// Read and validate the header. Consumes lines up to and including the
// end-of-header marker; reaching end of input first is a failure.
func (p *parser) readHeader() error {
	st := &headerState{count: -1}
	for {
		line, ok := p.next()
		if !ok {
			break
		}
		switch {
		case strings.Contains(line, labelVersion):
			st.versionSeen = true
			st.v3 = isV3Version(line)
		case strings.Contains(line, labelObsV3):
			if err := st.readTypesV3(p, line); err != nil {
				return err
			}
		case strings.Contains(line, labelObsV2):
			if err := st.readTypesV2(p, line); err != nil {
				return err
			}
		case strings.Contains(line, labelEnd):
			if err := st.validate(); err != nil {
				return err
			}
			p.obs.IsV3 = st.v3
			p.obs.Types = st.types
			return nil
		}
	}
	if err := p.s.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return fmt.Errorf("%w: end of input before %q", ErrMissingHeader, labelEnd)
}

// Detect the version from the first 20 columns of the version line:
// a value starting with 3 or 4 selects v3 mode, anything else v2.
func isV3Version(line string) bool {
	if len(line) > 20 {
		line = line[:20]
	}
	v := Trim(line)
	return len(v) > 0 && (v[0] == '3' || v[0] == '4')
}

// Read a "SYS / # / OBS TYPES" declaration. Only the GPS row matters;
// other constellations are skipped. The declared count sits in columns
// 4-6, the codes start at column 8 and continue on further lines that
// repeat the label, with codes from column 1.
func (st *headerState) readTypesV3(p *parser, line string) error {
	st.style = styleV3
	if len(line) == 0 || line[0] != GPS {
		return nil
	}
	if c := parseTypeCount(line); c <= 0 {
		return fmt.Errorf("%w: declared count %d", ErrInvalidTypeCount, c)
	} else {
		st.count = c
	}
	var n int
	if len(line) >= 6 {
		n, _ = strconv.Atoi(Trim(line[3:6]))
	}
	st.take(ExtractTypesFromLine(headerBody(line), 7, 3, 4, typeStartChars), n)
	for len(st.types) < n {
		l2, ok := p.next()
		if !ok {
			break
		}
		if !strings.Contains(l2, labelObsV3) {
			p.unread(l2)
			break
		}
		st.take(ExtractTypesFromLine(headerBody(l2), 0, 3, 4, typeStartChars), n)
	}
	return nil
}

// Read a "# / TYPES OF OBSERV" declaration. The declared count sits in
// columns 1-6, the codes start at column 7. Continuation lines carry no
// leading count and are read until the declared count is satisfied or a
// line contributes nothing.
func (st *headerState) readTypesV2(p *parser, line string) error {
	st.style = styleV2
	if c := parseTypeCount(line); c <= 0 {
		return fmt.Errorf("%w: declared count %d", ErrInvalidTypeCount, c)
	} else {
		st.count = c
	}
	var n int
	if len(line) >= 6 {
		n, _ = strconv.Atoi(Trim(line[:6]))
	}
	st.take(ExtractTypesFromLine(headerBody(line), 6, 2, 3, typeStartChars), n)
	for len(st.types) < n {
		l2, ok := p.next()
		if !ok {
			break
		}
		// continuation lines repeat the "# / TYPES OF OBSERV" label;
		// any other label means the list ended short
		if strings.Contains(l2, labelVersion) || strings.Contains(l2, labelObsV3) || strings.Contains(l2, labelEnd) {
			p.unread(l2)
			break
		}
		got := ExtractTypesFromLine(headerBody(l2), 0, 2, 3, typeStartChars)
		if len(got) == 0 {
			p.unread(l2)
			break
		}
		st.take(got, n)
	}
	return nil
}

// Append extracted tokens up to the target count, dropping extras
func (st *headerState) take(fld []string, n int) {
	for _, t := range fld {
		if len(st.types) >= n {
			break
		}
		st.types = append(st.types, t)
	}
}

// Validate the assembled header. Each check is a distinct hard failure
// and the order is significant; no partial header is ever accepted.
func (st *headerState) validate() error {
	if st.versionSeen && st.style != styleNone && st.v3 != (st.style == styleV3) {
		return fmt.Errorf("%w: observation type line style disagrees with the declared version", ErrInvalidTypeCount)
	}
	if !st.versionSeen {
		return fmt.Errorf("%w: no %q line", ErrMissingHeader, labelVersion)
	}
	if st.style == styleNone {
		return fmt.Errorf("%w: no observation type line", ErrMissingHeader)
	}
	if st.count <= 0 {
		return fmt.Errorf("%w: declared count %d", ErrInvalidTypeCount, st.count)
	}
	if len(st.types) == 0 {
		return fmt.Errorf("%w: no observation type codes extracted", ErrInvalidTypeCount)
	}
	if len(st.types) != st.count {
		return fmt.Errorf("%w: declared %d, extracted %d", ErrInvalidTypeCount, st.count, len(st.types))
	}
	return st.checkCodeVersions()
}

// Reject a type list contaminated by the other version's codes: a v2
// list must not carry codes ending in a v3 tracking attribute, a v3 list
// must not carry the legacy two-character codes.
func (st *headerState) checkCodeVersions() error {
	if st.style == styleV2 {
		for _, t := range st.types {
			if len(t) == 3 && strings.ContainsRune(v3AttrChars, rune(t[2])) {
				return fmt.Errorf("%w: v3 code %q in a v2 type list", ErrIncompatibleTypes, t)
			}
		}
		return nil
	}
	for _, t := range st.types {
		if slices.Contains(legacyV2Codes, t) {
			return fmt.Errorf("%w: legacy v2 code %q in a v3 type list", ErrIncompatibleTypes, t)
		}
	}
	return nil
}
