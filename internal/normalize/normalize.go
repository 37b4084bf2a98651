package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	slugCharsRe  = regexp.MustCompile(`[^a-z0-9_áéíóúñ]`)
)

// Text stringifies and trims a cell value; absent values read as "".
func Text(s string) string {
	return strings.TrimSpace(s)
}

// SlugKey turns an arbitrary sheet header into a machine-safe extras key:
// lower-cased, whitespace runs collapsed to "_", everything outside
// [a-z0-9_] plus the accented vowels and ñ stripped, underscores trimmed.
func SlugKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespaceRe.ReplaceAllString(s, "_")
	s = slugCharsRe.ReplaceAllString(s, "")
	return strings.Trim(s, "_")
}

// Float parses a loosely-typed numeric cell. Blank or unparseable values
// coerce to zero instead of failing the row.
func Float(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// StrictFloat parses a numeric cell that is expected well-formed. Blank
// still reads as zero, but anything non-numeric is an error.
func StrictFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, err)
	}
	return f, nil
}
