// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package rinexobs

// Only GPS observations are populated into epochs for now.
const GPS = 'G'

// Header labels of the RINEX observation format. They occupy column 61
// onward but are matched as substrings of the whole line.
// RINEX 2.11: https://files.igs.org/pub/data/format/rinex211.txt
// RINEX 3.04: https://files.igs.org/pub/data/format/rinex304.pdf
const (
	labelVersion = "RINEX VERSION / TYPE"
	labelObsV3   = "SYS / # / OBS TYPES"
	labelObsV2   = "# / TYPES OF OBSERV"
	labelEnd     = "END OF HEADER"
)

// Leading characters of valid observation type codes
// (pseudorange, carrier phase, doppler, signal strength, P-code, transit)
const typeStartChars = "CLDSPT"

// Tracking attribute letters that end a RINEX 3 observation code (C1C, L2W etc.)
const v3AttrChars = "ABCDILMNPQSWXYZ"

// Two-character observation codes of RINEX 2 that never appear in a RINEX 3 type list
var legacyV2Codes = []string{"L1", "L2", "C1", "C2", "P1", "P2", "D1", "D2", "S1", "S2"}
