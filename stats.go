// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package rinexobs

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// Summary statistics over a parsed observation set. Zero-valued
// measurements (absent observations stored as 0.0) are excluded from the
// L1/L2 figures.
type Stats struct {
	Epochs  int
	Sats    int // distinct satellites over all epochs
	MinSats int // smallest populated epoch
	MaxSats int // largest populated epoch

	L1Mean, L1Std float64
	L2Mean, L2Std float64

	// Mean and standard deviation of the sampling interval [s]
	IntervalMean, IntervalStd float64
}

// Compute summary statistics
func (p *Obs) Summarize() *Stats {
	st := &Stats{Epochs: len(p.Epochs)}
	if len(p.Epochs) == 0 {
		return st
	}

	var sats []SatType
	var l1, l2, iv []float64
	st.MinSats = len(p.Epochs[0].Sats)
	for i, ep := range p.Epochs {
		if n := len(ep.Sats); n < st.MinSats {
			st.MinSats = n
		} else if n > st.MaxSats {
			st.MaxSats = n
		}
		for sat, pair := range ep.Sats {
			if !slices.Contains(sats, sat) {
				sats = append(sats, sat)
			}
			if pair.L1 != 0 {
				l1 = append(l1, pair.L1)
			}
			if pair.L2 != 0 {
				l2 = append(l2, pair.L2)
			}
		}
		if i > 0 {
			iv = append(iv, ep.Time().Sub(p.Epochs[i-1].Time()).Seconds())
		}
	}
	st.Sats = len(sats)
	st.L1Mean, st.L1Std = meanStd(l1)
	st.L2Mean, st.L2Std = meanStd(l2)
	st.IntervalMean, st.IntervalStd = meanStd(iv)
	return st
}

// Sample mean and standard deviation; zero rather than NaN for short input
func meanStd(v []float64) (mean, sd float64) {
	if len(v) == 0 {
		return 0, 0
	}
	mean = stat.Mean(v, nil)
	if len(v) > 1 {
		sd = stat.StdDev(v, nil)
	}
	return mean, sd
}

// Display summary statistics
func (p *Stats) String() string {
	a := `
epochs:   %d (interval %.1f +- %.1f s)
sats:     %d (%d - %d per epoch)
L1:       mean %.3f, sd %.3f
L2:       mean %.3f, sd %.3f
`
	return fmt.Sprintf(a, p.Epochs, p.IntervalMean, p.IntervalStd,
		p.Sats, p.MinSats, p.MaxSats,
		p.L1Mean, p.L1Std, p.L2Mean, p.L2Std)
}
