// SPDX-License-Identifier: GPL-3.0-or-later

// Package verifybamid parses VerifyBamID *.selfSM output, which
// estimates sample contamination and sample swaps.
package verifybamid

import (
	"context"

	"github.com/seqreport/seqreport/agent/discovery"
	"github.com/seqreport/seqreport/agent/module"
	"github.com/seqreport/seqreport/report"
)

const selfSMKey = "verifybamid/selfsm"

func init() {
	module.Register("verifybamid", module.Creator{
		Create: func() module.Module { return New() },
		Patterns: []discovery.Pattern{
			{Key: selfSMKey, FileName: "*.selfSM"},
		},
		Order: 30,
	})
}

func New() *Collector {
	return &Collector{
		data:        make(report.Dataset),
		dataSources: make(map[string]string),
		// chip columns stay hidden until a file proves chip data exists
		hideChipCols: true,
	}
}

type Collector struct {
	module.Base

	data        report.Dataset
	dataSources map[string]string

	// hideChipCols controls the visibility of the CHIP* columns. It is
	// flipped at most once per run and never reverts.
	hideChipCols bool
}

func (c *Collector) Init(context.Context) error { return nil }

func (c *Collector) Collect(ctx context.Context, found discovery.Found) error {
	for _, f := range found[selfSMKey] {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		parsed, chipSeen := c.parseSelfSM(f)
		if chipSeen {
			c.hideChipCols = false
		}

		for sname, rec := range parsed {
			if _, ok := c.data[sname]; ok {
				c.Debugf("duplicate sample name found! Overwriting: %s", sname)
			}
			c.data[sname] = rec
			c.dataSources[sname] = f.Path
		}
	}

	if len(c.data) == 0 {
		return module.ErrNoData
	}
	return nil
}

func (c *Collector) Report(_ context.Context, rep *report.Report) error {
	data := rep.RemoveIgnored(c.data)
	if len(data) == 0 {
		return module.ErrNoData
	}

	c.Infof("found %d reports", len(data))

	for sname, path := range c.dataSources {
		if _, ok := data[sname]; ok {
			rep.AddDataSource("verifybamid", sname, path)
		}
	}

	if err := rep.WriteDataFile("multiqc_verifybamid", data); err != nil {
		return err
	}

	rep.AddGeneralStats(data, c.generalStatsColumns())

	cols := c.tableColumns(data)
	if err := rep.AddTableSheet("VerifyBAMID", data, cols); err != nil {
		return err
	}
	rep.AddSection(report.Section{
		Anchor:  "verifybamid-table",
		Content: report.RenderTable(data, cols),
	})

	return nil
}
