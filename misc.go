// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package rinexobs

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/slices"
)

// ------------------------------------
// Debug print functions
// ------------------------------------

func PrintA(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
}

func PrintAIf(cond bool, format string, a ...any) {
	if cond {
		PrintA(format, a...)
	}
}

// Debug display level
var DBG_ int

// Debug display
func PrintD(v int, format string, a ...any) {
	PrintAIf(DBG_ >= v, format, a...)
}

func PrintE(err error) {
	fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
}

// ------------------------------------
// For command argument parsing
// ------------------------------------

// Date and Time Parser (for command arguments)
type TimeStr time.Time

func (p *TimeStr) MarshalText() (text []byte, err error) {
	text, err = time.Time(*p).MarshalText()
	if err != nil {
		return nil, err
	}
	return text, nil
}

func (p *TimeStr) UnmarshalText(text []byte) error {
	s := string(text)
	t, err := time.Parse("2006/01/02 15:04:05", s)
	if err != nil {
		return err
	}
	*p = TimeStr(t)
	return nil
}

func NewTimeStr(t time.Time) *TimeStr {
	m := new(TimeStr)
	*m = TimeStr(t)
	return m
}

// ------------------------------------
// Others
// ------------------------------------

// Sort the list of satellite names by system and PRN
func Sorted(s []SatType) []SatType {
	s2 := make([]SatType, len(s))
	copy(s2, s)
	slices.SortFunc(s2, func(a, b SatType) int {
		if a.Sys() != b.Sys() {
			return int(a.Sys()) - int(b.Sys())
		}
		return a.Num() - b.Num()
	})
	return s2
}
