// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.12
//

package rinexobs

import (
	"strconv"
	"strings"
)

// Strip leading and trailing spaces, tabs, carriage returns and newlines
func Trim(s string) string {
	return strings.Trim(s, " \t\r\n")
}

// Check whether a token looks like a floating point number.
// The check is deliberately lenient: interior spaces and tabs are ignored
// and the position of the sign is not enforced, so a token like "1-2"
// passes. At most one sign, at most one decimal point and at least one
// digit are required.
func IsNumber(s string) bool {
	dot, sign, digit := false, false, false
	for _, c := range s {
		switch {
		case c == ' ' || c == '\t':
		case c == '+' || c == '-':
			if sign {
				return false
			}
			sign = true
		case c == '.':
			if dot {
				return false
			}
			dot = true
		case c >= '0' && c <= '9':
			digit = true
		case c == 'e' || c == 'E':
		default:
			return false
		}
	}
	return digit
}

// Split the content of a header line after skip characters on whitespace
// and keep the tokens that look like observation type codes: length within
// [minLen, maxLen] and first character in validStart.
func ExtractTypesFromLine(line string, skip, minLen, maxLen int, validStart string) []string {
	if skip >= len(line) {
		return nil
	}
	var fld []string
	for _, w := range strings.Fields(line[skip:]) {
		if len(w) >= minLen && len(w) <= maxLen && strings.ContainsRune(validStart, rune(w[0])) {
			fld = append(fld, w)
		}
	}
	return fld
}

// Read the first run of digits in the line as the declared observation
// type count. Returns -1 if the line carries no integer.
func parseTypeCount(line string) int {
	i := 0
	for i < len(line) && !isDigit(line[i]) {
		i++
	}
	start := i
	for i < len(line) && isDigit(line[i]) {
		i++
	}
	if start == i {
		return -1
	}
	n, err := strconv.Atoi(line[start:i])
	if err != nil {
		return -1
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Cut a header line off at column 60 so that the HEADER LABEL region is
// never mistaken for data (the v3 label itself contains "SYS", which
// would pass the type token filter).
func headerBody(line string) string {
	if len(line) > 60 {
		return line[:60]
	}
	return line
}
