// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package rinexobs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	assert := assert.New(t)

	obs := &Obs{
		Types: []string{"L1", "L2"},
		Epochs: []*Epoch{
			{Year: 2024, Month: 1, Day: 2, Sec: 0, NSat: 2,
				Sats: map[SatType]L1L2{"G01": {10, 1}, "G02": {20, 2}}},
			{Year: 2024, Month: 1, Day: 2, Sec: 30, NSat: 2,
				Sats: map[SatType]L1L2{"G01": {30, 3}, "G02": {40, 4}}},
		},
	}

	st := obs.Summarize()
	assert.Equal(2, st.Epochs)
	assert.Equal(2, st.Sats)
	assert.Equal(2, st.MinSats)
	assert.Equal(2, st.MaxSats)
	assert.InDelta(25.0, st.L1Mean, 1e-9)
	assert.InDelta(math.Sqrt(500.0/3.0), st.L1Std, 1e-9)
	assert.InDelta(2.5, st.L2Mean, 1e-9)
	assert.InDelta(30.0, st.IntervalMean, 1e-9)
	assert.Equal(0.0, st.IntervalStd, "one interval has no spread")
}

func TestSummarizeSkipsZeroValues(t *testing.T) {
	assert := assert.New(t)

	obs := &Obs{
		Epochs: []*Epoch{
			{Year: 2024, Month: 1, Day: 2, NSat: 2,
				Sats: map[SatType]L1L2{"G01": {10, 0}, "G02": {0, 2}}},
		},
	}

	st := obs.Summarize()
	assert.InDelta(10.0, st.L1Mean, 1e-9, "zero L1 of G02 is absent, not a sample")
	assert.InDelta(2.0, st.L2Mean, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	st := (&Obs{}).Summarize()
	assert.Equal(t, 0, st.Epochs)
	assert.Equal(t, 0.0, st.L1Mean)
}
