// SPDX-License-Identifier: GPL-3.0-or-later

// Package rseqc parses reports produced by the RSeQC toolkit.
// Currently covered: junction_annotation.py output.
package rseqc

import (
	"context"

	"github.com/seqreport/seqreport/agent/discovery"
	"github.com/seqreport/seqreport/agent/module"
	"github.com/seqreport/seqreport/report"
)

const junctionAnnotationKey = "rseqc/junction_annotation"

func init() {
	module.Register("rseqc", module.Creator{
		Create: func() module.Module { return New() },
		Patterns: []discovery.Pattern{
			{Key: junctionAnnotationKey, Contents: "Partial Novel Splicing Events"},
		},
		Order: 20,
	})
}

func New() *Collector {
	return &Collector{
		junctionData: make(report.Dataset),
		dataSources:  make(map[string]string),
	}
}

type Collector struct {
	module.Base

	junctionData report.Dataset
	// dataSources remembers which file each sample's record came from.
	dataSources map[string]string
}

func (c *Collector) Init(context.Context) error { return nil }

func (c *Collector) Collect(ctx context.Context, found discovery.Found) error {
	for _, f := range found[junctionAnnotationKey] {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rec := parseJunctionAnnotation(f.Text())
		if len(rec) == 0 {
			c.Debugf("no junction_annotation fields in '%s', skipping", f.Path)
			continue
		}

		if _, ok := c.junctionData[f.SName]; ok {
			c.Debugf("duplicate sample name found! Overwriting: %s", f.SName)
		}
		c.junctionData[f.SName] = rec
		c.dataSources[f.SName] = f.Path
	}

	if len(c.junctionData) == 0 {
		return module.ErrNoData
	}
	return nil
}

func (c *Collector) Report(_ context.Context, rep *report.Report) error {
	data := rep.RemoveIgnored(c.junctionData)
	if len(data) == 0 {
		return module.ErrNoData
	}

	c.Infof("found %d junction_annotation reports", len(data))

	for sname, path := range c.dataSources {
		if _, ok := data[sname]; ok {
			rep.AddDataSource("rseqc", sname, path)
		}
	}

	if err := rep.WriteDataFile("multiqc_rseqc_junction_annotation", data); err != nil {
		return err
	}

	rep.AddSection(report.Section{
		Name:    "Junction Annotation",
		Anchor:  "rseqc_junction_annotation",
		Content: c.junctionAnnotationSection(rep, data),
	})

	return nil
}
