// SPDX-License-Identifier: GPL-3.0-or-later

package rseqc

import (
	"html/template"
	"regexp"
	"strconv"

	"github.com/seqreport/seqreport/report"
	"github.com/seqreport/seqreport/report/bargraph"
)

// Line-anchored field patterns of the junction_annotation stderr report.
// Note the double space in the "Total splicing" lines: it is present in
// the tool's output.
var junctionRegexes = map[string]*regexp.Regexp{
	"total_splicing_events":            regexp.MustCompile(`(?m)^Total splicing  Events:\s*(\d+)$`),
	"known_splicing_events":            regexp.MustCompile(`(?m)^Known Splicing Events:\s*(\d+)$`),
	"partial_novel_splicing_events":    regexp.MustCompile(`(?m)^Partial Novel Splicing Events:\s*(\d+)$`),
	"novel_splicing_events":            regexp.MustCompile(`(?m)^Novel Splicing Events:\s*(\d+)$`),
	"total_splicing_junctions":         regexp.MustCompile(`(?m)^Total splicing  Junctions:\s*(\d+)$`),
	"known_splicing_junctions":         regexp.MustCompile(`(?m)^Known Splicing Junctions:\s*(\d+)$`),
	"partial_novel_splicing_junctions": regexp.MustCompile(`(?m)^Partial Novel Splicing Junctions:\s*(\d+)$`),
	"novel_splicing_junctions":         regexp.MustCompile(`(?m)^Novel Splicing Junctions:\s*(\d+)$`),
}

// parseJunctionAnnotation extracts the counter fields from a report and
// derives percentage-of-total fields per group. Fields whose pattern
// does not match are absent from the record; the first match wins when
// a line repeats.
func parseJunctionAnnotation(text string) report.Record {
	rec := make(report.Record)

	for field, re := range junctionRegexes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		rec[field] = report.Num(v)
	}

	addPercentages(rec, "events")
	addPercentages(rec, "junctions")

	return rec
}

// addPercentages stores "<field>_pct" for each count of the group that
// is present alongside the group's total.
func addPercentages(rec report.Record, group string) {
	total, ok := rec["total_splicing_"+group].Float()
	if !ok || total == 0 {
		return
	}

	for _, part := range []string{"known", "partial_novel", "novel"} {
		field := part + "_splicing_" + group
		if v, ok := rec[field].Float(); ok {
			rec[field+"_pct"] = report.Num(v / total * 100.0)
		}
	}
}

func (c *Collector) junctionAnnotationSection(rep *report.Report, data report.Dataset) template.HTML {
	eventsPlot := c.renderBargraph(rep, data,
		[]bargraph.Category{
			{ID: "known_splicing_events", Name: "Known Splicing Events"},
			{ID: "partial_novel_splicing_events", Name: "Partial Novel Splicing Events"},
			{ID: "novel_splicing_events", Name: "Novel Splicing Events"},
		},
		bargraph.Config{
			ID:          "rseqc_junction_annotation_events_plot",
			Title:       "STAR: Splicing Events",
			YLab:        "# Events",
			CountsLabel: "Number of Events",
		})

	juncPlot := c.renderBargraph(rep, data,
		[]bargraph.Category{
			{ID: "known_splicing_junctions", Name: "Known Splicing Junctions"},
			{ID: "partial_novel_splicing_junctions", Name: "Partial Novel Splicing Junctions"},
			{ID: "novel_splicing_junctions", Name: "Novel Splicing Junctions"},
		},
		bargraph.Config{
			ID:          "rseqc_junction_annotation_junctions_plot",
			Title:       "STAR: Splicing Junctions",
			YLab:        "# Junctions",
			CountsLabel: "Number of Junctions",
		})

	return "<p>This program compares detected splice junctions to" +
		" a reference gene model. An RNA read can be spliced 2" +
		" or more times, each time is called a splicing event.</p>" +
		eventsPlot +
		"<hr><p>Multiple splicing events spanning the same" +
		" intron can be consolidated into one splicing junction.</p>" +
		juncPlot
}

func (c *Collector) renderBargraph(rep *report.Report, data report.Dataset, cats []bargraph.Category, cfg bargraph.Config) template.HTML {
	frag, err := bargraph.Render(rep, data, cats, cfg)
	if err != nil {
		c.Warningf("plot '%s': %v", cfg.ID, err)
		return ""
	}
	return frag
}
