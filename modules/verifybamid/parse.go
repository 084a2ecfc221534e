// SPDX-License-Identifier: GPL-3.0-or-later

package verifybamid

import (
	"strings"

	"github.com/seqreport/seqreport/agent/discovery"
	"github.com/seqreport/seqreport/report"
)

// parseSelfSM reads one selfSM file: the first line is the header row,
// every following line one sample record. The first column is the
// sample name, the remaining cells are parsed into numbers where
// possible and kept as raw strings otherwise ("NA" stays the NA
// sentinel).
//
// The second return value reports whether any row holds chip data: a
// value other than "NA" in a column literally named "CHIP".
func (c *Collector) parseSelfSM(f discovery.File) (report.Dataset, bool) {
	parsed := make(report.Dataset)
	chipSeen := false

	var headers []string

	for _, line := range strings.Split(f.Text(), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		s := strings.Split(line, "\t")

		if headers == nil {
			headers = s
			continue
		}

		// rows shorter than the header are malformed, skip them
		if len(s) < len(headers) {
			c.Debugf("row with %d fields, header has %d, skipping ('%s')", len(s), len(headers), f.Path)
			continue
		}

		sname := discovery.CleanSampleName(s[0], f.Root)
		rec := make(report.Record)

		for i, v := range s {
			if i == 0 || i >= len(headers) {
				continue
			}
			if headers[i] == "CHIP" && v != "NA" {
				chipSeen = true
			}
			rec[headers[i]] = report.ParseValue(v)
		}

		parsed[sname] = rec
	}

	return parsed, chipSeen
}
