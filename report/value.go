// SPDX-License-Identifier: GPL-3.0-or-later

package report

import (
	"fmt"
	"math"
	"strconv"
)

type ValueKind uint8

const (
	// KindNA is the "not available" sentinel. The zero Value is NA.
	KindNA ValueKind = iota
	// KindNumber is a finite float64.
	KindNumber
	// KindString is a raw string kept verbatim from the source file.
	KindString
)

// Value is a single cell of a parsed record: a finite number,
// the NA sentinel, or a raw string.
type Value struct {
	kind ValueKind
	num  float64
	str  string
}

// NA is the "not available" sentinel value.
var NA = Value{}

// Num returns a number Value.
func Num(v float64) Value {
	return Value{kind: KindNumber, num: v}
}

// Str returns a raw string Value.
func Str(s string) Value {
	return Value{kind: KindString, str: s}
}

// ParseValue converts a raw token into a Value: "NA" becomes the NA
// sentinel, a finite float parse becomes a number, anything else is
// kept as a raw string.
func ParseValue(s string) Value {
	if s == "NA" {
		return NA
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return Num(v)
	}
	return Str(s)
}

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNA() bool { return v.kind == KindNA }

// Float returns the numeric value and whether the Value holds one.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	default:
		return "NA"
	}
}

// MarshalJSON writes numbers as JSON numbers, NA as the string "NA"
// and raw strings as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return []byte(strconv.FormatFloat(v.num, 'g', -1, 64)), nil
	case KindString:
		return []byte(strconv.Quote(v.str)), nil
	default:
		return []byte(`"NA"`), nil
	}
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("empty value")
	}
	if b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		*v = ParseValue(s)
		if _, ok := v.Float(); ok { // quoted numbers stay strings
			*v = Str(s)
		}
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*v = Num(f)
	return nil
}

// Record maps field names to values. One per sample per source file.
type Record map[string]Value

// Dataset maps unique sample names to records.
type Dataset map[string]Record
