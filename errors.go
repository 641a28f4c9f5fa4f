// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package rinexobs

import "errors"

// Parse failure classifications. Each is terminal for the whole parse:
// no partial observation set is returned alongside an error. Callers
// classify with errors.Is.
var (
	// The line source could not be read.
	ErrSourceUnavailable = errors.New("observation source unavailable")

	// The version line or the observation type line is absent, or the
	// end-of-header marker was never reached.
	ErrMissingHeader = errors.New("missing or unterminated header")

	// The declared observation type count is non-positive, the extracted
	// tokens do not match it, or the observation type line style
	// disagrees with the detected version.
	ErrInvalidTypeCount = errors.New("invalid observation type count")

	// A v2 type list carries v3-style codes or vice versa.
	ErrIncompatibleTypes = errors.New("observation type codes incompatible with version")

	// The header validated but no epoch could be assembled.
	ErrNoEpochs = errors.New("no epochs found")
)
