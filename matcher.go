// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"fmt"
	"regexp"
	"slices"
)

// Glob is one compiled section pattern. It is immutable and safe for concurrent use.
type Glob struct {
	re      *regexp.Regexp
	pattern string
	// ranges[i] bounds capture group i+1.
	ranges []NumberRange
}

// Pattern returns the source glob text.
func (g *Glob) Pattern() string {
	return g.pattern
}

// Expr returns the translated regular expression source.
func (g *Glob) Expr() string {
	return g.re.String()
}

// NumberRanges returns declared numeric ranges in left-to-right order.
func (g *Glob) NumberRanges() []NumberRange {
	return slices.Clone(g.ranges)
}

// Match reports whether candidate matches the glob.
//
// Candidate is a slash-separated path relative to the configuration file
// directory. After a structural match every numeric capture must be an
// unpadded integer inside its declared range; the first failing capture
// turns the result into "no match".
func (g *Glob) Match(candidate string) (bool, error) {
	if len(g.ranges) == 0 {
		return g.re.MatchString(candidate), nil
	}

	loc := g.re.FindStringSubmatchIndex(candidate)
	if loc == nil {
		return false, nil
	}

	if len(loc) < 2*(len(g.ranges)+1) {
		return false, fmt.Errorf("%w: %q yields %d groups for %d ranges", ErrMatchFailed, g.pattern, len(loc)/2-1, len(g.ranges))
	}

	for i, r := range g.ranges {
		start, end := loc[2*i+2], loc[2*i+3]
		if start < 0 {
			// Group sits in an alternation branch that did not participate.
			continue
		}

		if !rangeAccepts(r, candidate[start:end]) {
			return false, nil
		}
	}

	return true, nil
}
