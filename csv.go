// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package rinexobs

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Time format of the CSV time column
const csvTimeFormat = "2006/01/02 15:04:05.000"

// Write the epochs of an observation set as "time,sat,l1,l2" rows.
// Satellites are emitted in sorted order within each epoch so the output
// is deterministic. The writer is buffered here; the caller owns the
// underlying destination.
func WriteCSV(w io.Writer, obs *Obs, header bool) error {
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)

	if header {
		if err := cw.Write([]string{"time", "sat", "l1", "l2"}); err != nil {
			return fmt.Errorf("csv write header: %w", err)
		}
	}
	for _, ep := range obs.Epochs {
		t := ep.Time().UTC().Format(csvTimeFormat)
		for _, sat := range ep.SatList() {
			pair := ep.Sats[sat]
			rec := []string{
				t,
				string(sat),
				strconv.FormatFloat(pair.L1, 'f', 3, 64),
				strconv.FormatFloat(pair.L2, 'f', 3, 64),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("csv write row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	return bw.Flush()
}
