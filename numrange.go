// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"regexp"
	"strconv"
	"strings"
)

// numberRangeRE recognizes a whole "{int..int}" brace span.
var numberRangeRE = regexp.MustCompile(`^\{[+\-]?\d+\.\.[+\-]?\d+\}$`)

// numberCaptureExpr is the regexp group emitted in place of one numeric range token.
const numberCaptureExpr = `([+\-]?\d+)`

// parseNumberRange reports whether a brace span (braces included) is a numeric
// range token and returns its bounds. Bounds that overflow int are not ranges.
func parseNumberRange(span string) (NumberRange, bool) {
	if !numberRangeRE.MatchString(span) {
		return NumberRange{}, false
	}

	lo, hi, _ := strings.Cut(span[1:len(span)-1], "..")
	minValue, err := strconv.Atoi(lo)
	if err != nil {
		return NumberRange{}, false
	}

	maxValue, err := strconv.Atoi(hi)
	if err != nil {
		return NumberRange{}, false
	}

	return NumberRange{Min: minValue, Max: maxValue}, true
}

// rangeAccepts checks one captured number against its declared range.
//
// Zero-padded numbers such as "010" never match. Only the first byte is
// inspected, so a sign followed by zeros is range-checked as usual.
func rangeAccepts(r NumberRange, captured string) bool {
	if len(captured) > 1 && captured[0] == '0' {
		return false
	}

	n, err := strconv.Atoi(captured)
	if err != nil {
		return false
	}

	return r.contains(n)
}
