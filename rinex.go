// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package rinexobs

import (
	"bufio"
	"fmt"
	"io"
)

// Options for a single parse.
type Options struct {
	// Strict promotes the anomalies that are normally absorbed while
	// reading the data section (a malformed epoch header, a duplicate
	// satellite identifier within one epoch) to parse failures. The
	// default keeps the historical behavior: drop the malformed header,
	// let the last duplicate win.
	Strict bool
}

// Parser state for one invocation of ReadObs. Constructed fresh per call,
// so concurrent parses of different readers are independent.
type parser struct {
	s   *bufio.Scanner
	opt Options
	obs *Obs

	// one-line pushback for header continuation reads
	pending    string
	hasPending bool

	// first hard failure raised in strict mode
	err error
}

// Read observation data.
// The header is interpreted and validated completely before any data
// line is touched; a header failure aborts the parse with no epochs
// read. Within the data section malformed epoch headers are dropped and
// missing numeric fields default to zero, so the parse can still succeed
// with a best-effort epoch set. An empty epoch set is the distinct
// failure ErrNoEpochs, never an empty success.
func ReadObs(r io.Reader) (*Obs, error) {
	return ReadObsWith(r, Options{})
}

// Read observation data with explicit options
func ReadObsWith(r io.Reader, opt Options) (*Obs, error) {
	p := &parser{
		s:   bufio.NewScanner(r),
		opt: opt,
		obs: &Obs{},
	}

	if err := p.readHeader(); err != nil {
		return nil, err
	}

	if p.obs.IsV3 {
		p.readEpochsV3()
	} else {
		p.readEpochsV2()
	}
	if p.err != nil {
		return nil, p.err
	}
	if err := p.s.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	if len(p.obs.Epochs) == 0 {
		return nil, fmt.Errorf("%w: the data section yielded nothing", ErrNoEpochs)
	}
	return p.obs, nil
}

// Return the next input line, honoring a pushed back line first
func (p *parser) next() (string, bool) {
	if p.hasPending {
		p.hasPending = false
		return p.pending, true
	}
	if p.err != nil {
		return "", false
	}
	if !p.s.Scan() {
		return "", false
	}
	return p.s.Text(), true
}

// Push a line back so that the main loop sees it again
func (p *parser) unread(line string) {
	p.pending = line
	p.hasPending = true
}
