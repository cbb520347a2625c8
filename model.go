// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

// Configuration limits shared with consumers of parsed sections and properties.
const (
	// MaxSectionNameLength is the longest accepted section name; longer headers are skipped.
	MaxSectionNameLength = 4096
	// MaxPropertyNameLength is the longest accepted property name; longer pairs are skipped.
	MaxPropertyNameLength = 50
	// MaxPropertyValueLength is the longest accepted property value; longer pairs are skipped.
	MaxPropertyValueLength = 255
	// MaxPatternLength is the longest glob pattern CompileGlob accepts.
	MaxPatternLength = 4096
	// MaxLineLength bounds one physical line; longer lines are truncated to MaxLineLength-1 bytes.
	MaxLineLength = 5000
)

// maxTranslatedLength bounds the regexp source produced for one pattern.
const maxTranslatedLength = 2 * MaxPatternLength

// Handler receives one property with the section it belongs to.
//
// Returning false marks the property as rejected; parsing continues and the
// first rejected line is reported in the returned *ParseError.
type Handler func(section, name, value string) bool

// ParseOptions controls parser behavior.
type ParseOptions struct {
	// AllowMultiline treats indented non-empty lines as continuation values
	// of the previous property name.
	AllowMultiline bool `json:"allow_multiline,omitempty" yaml:"allow_multiline,omitempty"`
}

// NumberRange is the inclusive bound pair declared by one "{min..max}" token.
type NumberRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// contains reports whether n lies inside the inclusive range.
func (r NumberRange) contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Property is one resolved name/value pair.
type Property struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}
