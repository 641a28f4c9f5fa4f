// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package rinexobs

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// minimal v2 file: two declared types, one epoch of two satellites
func v2File() string {
	return hline(v2VersionLine, labelVersion) +
		hline("     2    L1    L2", labelObsV2) +
		hline("", labelEnd) +
		" 24  1  2  0  0  0.0000000  0  2 G01 G02\n" +
		"  23629347.915   -53875.632\n" +
		"  20891534.064   -41981.375\n"
}

func TestReadObsV2(t *testing.T) {
	assert := assert.New(t)

	obs, err := ReadObs(strings.NewReader(v2File()))
	assert.NoError(err)
	assert.False(obs.IsV3)
	assert.Equal([]string{"L1", "L2"}, obs.Types)
	assert.Len(obs.Epochs, 1)

	ep := obs.Epochs[0]
	assert.Equal(2, ep.NSat)
	assert.Equal(0, ep.Flag)
	assert.Len(ep.Sats, 2)
	assert.Equal(L1L2{L1: 23629347.915, L2: -53875.632}, ep.Sats["G01"])
	assert.Equal(L1L2{L1: 20891534.064, L2: -41981.375}, ep.Sats["G02"])
	assert.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), ep.Time())
}

func TestReadObsV2BarePRNsAndContinuation(t *testing.T) {
	assert := assert.New(t)

	// identifiers as bare PRNs, supplied on a continuation line
	file := hline(v2VersionLine, labelVersion) +
		hline("     2    L1    L2", labelObsV2) +
		hline("", labelEnd) +
		" 24  1  2  0  0 30.0000000  0  2\n" +
		" 1 17\n" +
		"  23629347.915   -53875.632\n" +
		"  20891534.064   -41981.375\n"

	obs, err := ReadObs(strings.NewReader(file))
	assert.NoError(err)
	assert.Len(obs.Epochs, 1)

	ep := obs.Epochs[0]
	assert.Len(ep.Sats, 2)
	assert.Contains(ep.Sats, SatType("G01"))
	assert.Contains(ep.Sats, SatType("G17"))
	assert.Equal(30.0, ep.Sec)
}

func TestReadObsV3(t *testing.T) {
	assert := assert.New(t)

	file := hline(v3VersionLine, labelVersion) +
		hline("G    4 C1C L1C C2W L2W", labelObsV3) +
		hline("", labelEnd) +
		"> 2024  1  2  0  0  0.0000000  0  3\n" +
		"G01  20000000.123   1234.567   20000001.001   2345.678\n" +
		"R05  19000000.000   1111.111\n" +
		"G17  21000000.456\n" +
		"> 2024  1  2  0  0 30.0000000  0  1\n" +
		"G01  20000100.789   1240.000\n"

	obs, err := ReadObs(strings.NewReader(file))
	assert.NoError(err)
	assert.True(obs.IsV3)
	assert.Len(obs.Epochs, 2)

	ep := obs.Epochs[0]
	assert.Equal(3, ep.NSat)
	// the GLONASS record is consumed but not stored
	assert.Len(ep.Sats, 2)
	assert.Equal(L1L2{L1: 20000000.123, L2: 1234.567}, ep.Sats["G01"])
	// missing trailing fields default to zero
	assert.Equal(L1L2{L1: 21000000.456, L2: 0}, ep.Sats["G17"])

	assert.Equal(L1L2{L1: 20000100.789, L2: 1240.000}, obs.Epochs[1].Sats["G01"])
}

func TestReadObsNoEpochs(t *testing.T) {
	file := hline(v2VersionLine, labelVersion) +
		hline("     2    L1    L2", labelObsV2) +
		hline("", labelEnd)

	_, err := ReadObs(strings.NewReader(file))
	assert.ErrorIs(t, err, ErrNoEpochs)
}

func TestReadObsDroppedEpochHeader(t *testing.T) {
	assert := assert.New(t)

	// the first epoch header is malformed and silently dropped; its
	// satellite line is ignored because no epoch is open
	file := hline(v3VersionLine, labelVersion) +
		hline("G    2 C1C L1C", labelObsV3) +
		hline("", labelEnd) +
		"> 2024  1  2  0  0  0.0000000  0  xx\n" +
		"G01  20000000.123   1234.567\n" +
		"> 2024  1  2  0  0 30.0000000  0  1\n" +
		"G01  20000100.789   1240.000\n"

	obs, err := ReadObs(strings.NewReader(file))
	assert.NoError(err)
	assert.Len(obs.Epochs, 1)
	assert.Equal(30.0, obs.Epochs[0].Sec)

	// strict mode promotes the drop to a failure
	_, err = ReadObsWith(strings.NewReader(file), Options{Strict: true})
	assert.Error(err)
}

func TestReadObsDuplicateSatellite(t *testing.T) {
	assert := assert.New(t)

	file := hline(v2VersionLine, labelVersion) +
		hline("     2    L1    L2", labelObsV2) +
		hline("", labelEnd) +
		" 24  1  2  0  0  0.0000000  0  2 G01 G01\n" +
		"  23629347.915   -53875.632\n" +
		"  20891534.064   -41981.375\n"

	// lenient: last write wins, duplicate is counted
	obs, err := ReadObs(strings.NewReader(file))
	assert.NoError(err)
	assert.Equal(1, obs.DupSats)
	assert.Len(obs.Epochs[0].Sats, 1)
	assert.Equal(L1L2{L1: 20891534.064, L2: -41981.375}, obs.Epochs[0].Sats["G01"])

	// strict: hard failure
	_, err = ReadObsWith(strings.NewReader(file), Options{Strict: true})
	assert.Error(err)
}

func TestObsString(t *testing.T) {
	obs, err := ReadObs(strings.NewReader(v2File()))
	assert.NoError(t, err)
	s := obs.String()
	assert.Contains(t, s, "G01")
	assert.Contains(t, s, "G02")
	assert.Contains(t, s, "L1 L2")
}
