// SPDX-License-Identifier: GPL-3.0-or-later

package report

import (
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// grouped number formatting, e.g. "%.1f" -> 1,234,567.8
var printer = message.NewPrinter(language.English)

// RenderTable renders a dataset as an HTML table following the given
// column specs. Hidden columns are omitted. Column visibility is
// decided once over the full dataset before rendering, not per record.
func RenderTable(data Dataset, cols []Column) template.HTML {
	shown := make([]Column, 0, len(cols))
	for _, col := range cols {
		if !col.Hidden {
			shown = append(shown, col)
		}
	}

	var b strings.Builder

	b.WriteString("<table class=\"seqreport-table\">\n<thead>\n<tr><th>Sample</th>")
	for _, col := range shown {
		title := col.Title
		if title == "" {
			title = col.ID
		}
		if col.Max > col.Min {
			fmt.Fprintf(&b, "<th title=\"%s\" data-min=\"%g\" data-max=\"%g\">%s</th>",
				template.HTMLEscapeString(col.Description), col.Min, col.Max, template.HTMLEscapeString(title))
		} else {
			fmt.Fprintf(&b, "<th title=\"%s\">%s</th>",
				template.HTMLEscapeString(col.Description), template.HTMLEscapeString(title))
		}
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, sname := range sortedSamples(data) {
		rec := data[sname]
		fmt.Fprintf(&b, "<tr><td>%s</td>", template.HTMLEscapeString(sname))
		for _, col := range shown {
			v, ok := rec[col.ID]
			if !ok {
				b.WriteString("<td></td>")
				continue
			}
			fmt.Fprintf(&b, "<td data-scale=\"%s\">%s</td>",
				template.HTMLEscapeString(col.Scale), template.HTMLEscapeString(col.FormatValue(v)))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")

	return template.HTML(b.String())
}

// FormatValue applies the column's modifier and number format to a value.
func (c Column) FormatValue(v Value) string {
	if c.Modify != nil {
		v = c.Modify(v)
	}

	num, ok := v.Float()
	if !ok {
		return v.String()
	}

	format := c.Format
	if format == "" {
		format = "%.1f"
	}
	return printer.Sprintf(format, num) + c.Suffix
}
