// SPDX-License-Identifier: GPL-3.0-or-later

// Package bargraph renders stacked per-sample bar plots with go-echarts.
// Each plot is written as a standalone HTML file under the report's
// plots directory and embedded in its section as an iframe.
package bargraph

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"

	"github.com/seqreport/seqreport/report"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

type Config struct {
	// ID names the plot file and the DOM anchor.
	ID    string
	Title string
	// YLab is the value axis label.
	YLab string
	// CountsLabel names the counts in tooltips, e.g. "Number of Junctions".
	CountsLabel string
}

// Category is one stacked segment, in display order.
type Category struct {
	// ID is the field name in the records.
	ID   string
	Name string
}

// Render builds the plot for the dataset and returns the embeddable
// fragment. Samples holding none of the category fields are left out.
func Render(rep *report.Report, data report.Dataset, cats []Category, cfg Config) (template.HTML, error) {
	if cfg.ID == "" {
		return "", fmt.Errorf("bargraph: empty plot id")
	}

	snames := plotSamples(data, cats)
	if len(snames) == 0 {
		return "", fmt.Errorf("bargraph %s: no samples with plottable fields", cfg.ID)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros, PageTitle: cfg.Title}),
		charts.WithTitleOpts(opts.Title{Title: cfg.Title}),
		charts.WithYAxisOpts(opts.YAxis{Name: cfg.YLab}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	bar.SetXAxis(snames)
	for _, cat := range cats {
		items := make([]opts.BarData, 0, len(snames))
		for _, sname := range snames {
			v, _ := data[sname][cat.ID].Float()
			items = append(items, opts.BarData{Name: cfg.CountsLabel, Value: v})
		}
		bar.AddSeries(cat.Name, items, charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))
	}

	path := filepath.Join(rep.PlotsDir(), cfg.ID+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	if err := bar.Render(f); err != nil {
		return "", fmt.Errorf("bargraph %s: render: %v", cfg.ID, err)
	}

	frag := fmt.Sprintf(
		"<div class=\"seqreport-plot\" id=\"%s\"><iframe src=\"plots/%s.html\" width=\"100%%\" height=\"450\" frameborder=\"0\"></iframe></div>",
		template.HTMLEscapeString(cfg.ID), template.HTMLEscapeString(cfg.ID))

	return template.HTML(frag), nil
}

func plotSamples(data report.Dataset, cats []Category) []string {
	var snames []string
	for sname, rec := range data {
		for _, cat := range cats {
			if _, ok := rec[cat.ID]; ok {
				snames = append(snames, sname)
				break
			}
		}
	}
	sort.Strings(snames)
	return snames
}
