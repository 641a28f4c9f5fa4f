// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package rinexobs

import (
	"fmt"
	"strconv"
)

// Type representing satellite name like "G10"
type SatType string

// Type representing satellite system like 'G'
type SysType byte

// Extract satellite system from satellite name
func (p *SatType) Sys() SysType {
	return SysType((*p)[0])
}

// Extract satellite number from satellite name
func (p *SatType) Num() int {
	i, err := strconv.Atoi(string((*p)[1:]))
	if err != nil {
		return 0
	}
	return i
}

// Check whether a raw satellite identifier token belongs to GPS.
// RINEX 2 epoch records often write a bare PRN, so a token with a
// leading digit is treated as GPS as well.
func IsGPS(token string) bool {
	if len(token) == 0 {
		return false
	}
	if token[0] == GPS {
		return true
	}
	return isDigit(token[0])
}

// Map a raw satellite token to the canonical "G%02d" form. A token that
// already carries the system letter is returned unchanged, a bare PRN is
// prefixed and zero padded. Never fails: a token that cannot be
// interpreted comes back trimmed but otherwise as-is, so callers must
// tolerate a non-canonical identifier.
func NormalizeID(token string) SatType {
	t := Trim(token)
	if t == "" {
		return SatType(t)
	}
	if t[0] == GPS {
		return SatType(t)
	}
	if isDigit(t[0]) {
		i := 1
		for i < len(t) && isDigit(t[i]) {
			i++
		}
		if prn, err := strconv.Atoi(t[:i]); err == nil {
			return SatType(fmt.Sprintf("%c%02d", GPS, prn))
		}
	}
	return SatType(t)
}
