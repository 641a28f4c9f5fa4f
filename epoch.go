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
)

// The data section runs as a two-state machine: idle until an epoch
// header line opens a block, then in-epoch until the declared number of
// satellite records has been consumed. The v2 and v3 layouts differ in
// how the epoch header looks and where the satellite identifiers live,
// so each version gets its own loop.

// Consume the data section of a RINEX 3 file. Epoch headers start with
// '>' and every satellite record line carries its own identifier.
func (p *parser) readEpochsV3() {
	var cur *Epoch
	remaining := 0
	for {
		line, ok := p.next()
		if !ok {
			return
		}
		if strings.HasPrefix(line, ">") {
			ep, _, err := parseEpochFields(strings.Fields(line[1:]))
			if err != nil {
				p.dropEpochHeader(line, err)
				cur, remaining = nil, 0
				continue
			}
			cur, remaining = ep, ep.NSat
			if remaining == 0 {
				p.obs.Epochs = append(p.obs.Epochs, cur)
				cur = nil
			}
			continue
		}
		if cur == nil || remaining <= 0 {
			continue
		}
		fld := strings.Fields(line)
		if len(fld) > 0 {
			p.storeSat(cur, fld[0], fld[1:])
		}
		remaining--
		if remaining == 0 {
			p.obs.Epochs = append(p.obs.Epochs, cur)
			cur = nil
		}
	}
}

// Consume the data section of a RINEX 2 file. The epoch header is eight
// whitespace-delimited numeric fields; the satellite identifiers trail
// the header line and continuation lines, then one data line per
// identifier follows in the collected order.
func (p *parser) readEpochsV2() {
	var cur *Epoch
	var ids []string
	row := 0
	for {
		line, ok := p.next()
		if !ok {
			return
		}
		if cur == nil {
			if Trim(line) == "" {
				continue
			}
			ep, rest, err := parseEpochFields(strings.Fields(line))
			if err != nil {
				p.dropEpochHeader(line, err)
				continue
			}
			cur, ids, row = ep, rest, 0
			if len(ids) > cur.NSat {
				ids = ids[:cur.NSat]
			}
			if cur.NSat == 0 {
				p.obs.Epochs = append(p.obs.Epochs, cur)
				cur = nil
			}
			continue
		}
		if len(ids) < cur.NSat {
			// still collecting satellite identifiers
			ids = append(ids, strings.Fields(line)...)
			if len(ids) > cur.NSat {
				ids = ids[:cur.NSat]
			}
			continue
		}
		p.storeSat(cur, ids[row], strings.Fields(line))
		row++
		if row == cur.NSat {
			p.obs.Epochs = append(p.obs.Epochs, cur)
			cur = nil
		}
	}
}

// Read the eight epoch header fields common to both layouts
// (year month day hour minute seconds flag nsat) and return any trailing
// tokens, which in the v2 layout are satellite identifiers.
func parseEpochFields(fld []string) (*Epoch, []string, error) {
	if len(fld) < 8 {
		return nil, nil, fmt.Errorf("need 8 epoch fields, got %d", len(fld))
	}
	var ep Epoch
	var err error
	for i, dst := range []*int{&ep.Year, &ep.Month, &ep.Day, &ep.Hour, &ep.Min} {
		if *dst, err = strconv.Atoi(fld[i]); err != nil {
			return nil, nil, fmt.Errorf("epoch field %d: %v", i, err)
		}
	}
	if ep.Sec, err = strconv.ParseFloat(fld[5], 64); err != nil {
		return nil, nil, fmt.Errorf("epoch seconds: %v", err)
	}
	if ep.Flag, err = strconv.Atoi(fld[6]); err != nil {
		return nil, nil, fmt.Errorf("epoch flag: %v", err)
	}
	if ep.NSat, err = strconv.Atoi(fld[7]); err != nil {
		return nil, nil, fmt.Errorf("satellite count: %v", err)
	}
	if ep.NSat < 0 {
		return nil, nil, fmt.Errorf("negative satellite count %d", ep.NSat)
	}
	ep.Sats = make(map[SatType]L1L2, ep.NSat)
	return &ep, fld[8:], nil
}

// Handle a malformed epoch header: dropped in lenient mode, fatal in strict
func (p *parser) dropEpochHeader(line string, err error) {
	if p.opt.Strict {
		p.err = fmt.Errorf("malformed epoch header %q: %v", line, err)
		return
	}
	PrintD(2, "dropping malformed epoch header %q: %s\n", line, err.Error())
}

// Store one satellite record into the epoch. Non-GPS satellites are
// skipped (their record still counts against the epoch). The first two
// value columns become the (L1, L2) pair; malformed or missing fields
// are stored as zero.
func (p *parser) storeSat(ep *Epoch, id string, vals []string) {
	if !IsGPS(id) {
		return
	}
	sat := NormalizeID(id)
	if _, dup := ep.Sats[sat]; dup {
		p.obs.DupSats++
		if p.opt.Strict {
			p.err = fmt.Errorf("duplicate satellite %s within one epoch", sat)
			return
		}
		PrintD(2, "duplicate satellite %s within one epoch\n", sat)
	}
	ep.Sats[sat] = L1L2{
		L1: numOrZero(vals, 0),
		L2: numOrZero(vals, 1),
	}
}

// Read value i of the record, defaulting to zero when absent or malformed
func numOrZero(vals []string, i int) float64 {
	if i >= len(vals) {
		return 0
	}
	s := Trim(vals[i])
	if !IsNumber(s) {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
