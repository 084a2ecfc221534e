// SPDX-License-Identifier: GPL-3.0-or-later

package report

// Column describes how a single field is rendered in a table.
// Column order in a slice is the display order.
type Column struct {
	// ID is the field name in the records.
	ID          string
	Title       string
	Description string

	// Format is an fmt verb applied to numeric values, e.g. "%.3f".
	Format string
	Suffix string

	Min, Max float64
	// Scale is the color scale hint for the host renderer.
	Scale string

	Hidden bool

	// SharedKey marks columns whose scaling is shared across tables.
	SharedKey string

	// Modify transforms the value before formatting (NA passes through
	// untouched by convention of the modifiers themselves).
	Modify func(Value) Value
}

// Defaults is a base set of rendering parameters applied to a column.
// Only zero fields of the column are filled in, so per-column settings
// always win.
type Defaults struct {
	Format   string
	Suffix   string
	Min, Max float64
	Scale    string
	Modify   func(Value) Value
}

// Apply composes the defaults with a column spec.
func (d Defaults) Apply(c Column) Column {
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.Suffix == "" {
		c.Suffix = d.Suffix
	}
	if c.Min == 0 && c.Max == 0 {
		c.Min, c.Max = d.Min, d.Max
	}
	if c.Scale == "" {
		c.Scale = d.Scale
	}
	if c.Modify == nil {
		c.Modify = d.Modify
	}
	return c
}

// AllNA reports whether every record's value for the field is the NA
// sentinel. Records missing the field entirely are not counted.
func AllNA(data Dataset, field string) bool {
	for _, rec := range data {
		if v, ok := rec[field]; ok && !v.IsNA() {
			return false
		}
	}
	return true
}

// AllEqual reports whether every record holds exactly the given value
// for the field.
func AllEqual(data Dataset, field string, want Value) bool {
	for _, rec := range data {
		if v, ok := rec[field]; !ok || v != want {
			return false
		}
	}
	return true
}
