package entity

import (
	"encoding/json"
	"strconv"
)

// ExtraKind tags the scalar type of an extras value.
type ExtraKind int

const (
	ExtraString ExtraKind = iota
	ExtraNumber
	ExtraDate
)

// ExtraValue is one unmapped spreadsheet cell carried through under its
// slugified header. Numbers marshal as JSON numbers, dates as "YYYY-MM-DD"
// strings, everything else as plain strings.
type ExtraValue struct {
	Kind ExtraKind
	Str  string
	Num  float64
}

func StringExtra(s string) ExtraValue {
	return ExtraValue{Kind: ExtraString, Str: s}
}

func NumberExtra(f float64) ExtraValue {
	return ExtraValue{Kind: ExtraNumber, Num: f}
}

func DateExtra(iso string) ExtraValue {
	return ExtraValue{Kind: ExtraDate, Str: iso}
}

func (v ExtraValue) MarshalJSON() ([]byte, error) {
	if v.Kind == ExtraNumber {
		return []byte(strconv.FormatFloat(v.Num, 'f', -1, 64)), nil
	}
	return json.Marshal(v.Str)
}

func (v *ExtraValue) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*v = NumberExtra(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*v = StringExtra(s)
	return nil
}

// Extras maps slugified source headers to their cell values. Keys marshal in
// sorted order, keeping the output deterministic for identical input.
type Extras map[string]ExtraValue
