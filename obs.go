// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package rinexobs

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// Measurement pair kept per satellite: the values of the first and second
// declared observation types, by convention L1 and L2.
type L1L2 struct {
	L1 float64
	L2 float64
}

// Structure to store all satellite measurements of one timestamped block
type Epoch struct {
	Year  int     // two digits in RINEX 2 files, four in RINEX 3
	Month int
	Day   int
	Hour  int
	Min   int
	Sec   float64 // fractional seconds
	Flag  int     // epoch event flag (0: OK, 1: power failure, >1: special event)
	NSat  int     // declared satellite count of the epoch

	// Measurements per canonical satellite name. Only GPS satellites are
	// populated, so len(Sats) <= NSat.
	Sats map[SatType]L1L2
}

// Return the epoch time. Two-digit years are expanded with the usual
// RINEX 2 window (80-99 -> 19xx, 00-79 -> 20xx).
func (p *Epoch) Time() time.Time {
	y := p.Year
	if y < 80 {
		y += 2000
	} else if y < 100 {
		y += 1900
	}
	sec := int(p.Sec)
	nsec := int((p.Sec - float64(sec)) * 1e9)
	return time.Date(y, time.Month(p.Month), p.Day, p.Hour, p.Min, sec, nsec, time.UTC)
}

// Return the epoch time as GPS week and second
func (p *Epoch) GTime() GTime {
	return *NewGTime(p.Time())
}

// Return satellite names ordered by system and PRN
func (p *Epoch) SatList() []SatType {
	s := make([]SatType, 0, len(p.Sats))
	for k := range p.Sats {
		s = append(s, k)
	}
	return Sorted(s)
}

// Structure to store a parsed observation file
type Obs struct {
	IsV3   bool     // false for RINEX 2.x, true for 3.x/4.x
	Types  []string // observation type codes in header column order
	Epochs []*Epoch // epochs in file order

	// Number of duplicate satellite identifiers seen within single
	// epochs. In lenient mode the last value wins; a caller that cares
	// can warn when this is non-zero.
	DupSats int
}

// Display observation data overview
func (p *Obs) String() string {
	if len(p.Epochs) == 0 {
		return "NO DATA"
	}
	// Satellite list over all epochs
	sl := []SatType{}
	for _, ep := range p.Epochs {
		for sat := range ep.Sats {
			if !slices.Contains(sl, sat) {
				sl = append(sl, sat)
			}
		}
	}
	sl = Sorted(sl)
	var sb strings.Builder
	for _, sat := range sl {
		sb.WriteString(fmt.Sprintf(" %s", sat))
	}
	ver := "2"
	if p.IsV3 {
		ver = "3"
	}
	a := `
version: %s
datetime:
	%s - %s (%d)

sats (%2d):%s
types (%2d): %s
`
	return fmt.Sprintf(a, ver,
		p.Epochs[0].Time().UTC().Format("2006/01/02 15:04:05.000"),
		p.Epochs[len(p.Epochs)-1].Time().UTC().Format("2006/01/02 15:04:05.000"),
		len(p.Epochs), len(sl), sb.String(), len(p.Types), strings.Join(p.Types, " "))
}
