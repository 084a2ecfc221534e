// SPDX-License-Identifier: GPL-3.0-or-later

// Package report implements the report assembly side of seqreport:
// the per-sample data model, table column specs and rendering, the
// persisted data files and the final HTML report.
package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/seqreport/seqreport/logger"
	"github.com/seqreport/seqreport/pkg/matcher"

	"github.com/xuri/excelize/v2"
)

type Config struct {
	OutDir string
	// IgnoreSamples are matcher expressions (see pkg/matcher); matching
	// sample names are stripped from every module's dataset.
	IgnoreSamples []string
}

// Section is a single module contribution to the report body.
type Section struct {
	Name    string
	Anchor  string
	Content template.HTML
}

type source struct {
	Module string
	Sample string
	Path   string
}

// Report accumulates module output and writes the final artifacts.
type Report struct {
	*logger.Logger

	outDir string
	ignore matcher.Matcher

	sections []Section

	gsData Dataset
	gsCols []Column

	sources []source

	wb *excelize.File
}

func New(cfg Config) (*Report, error) {
	if cfg.OutDir == "" {
		return nil, fmt.Errorf("empty output directory")
	}

	ignore := matcher.FALSE()
	if len(cfg.IgnoreSamples) > 0 {
		expr := matcher.SimpleExpr{Includes: cfg.IgnoreSamples}
		m, err := expr.Parse()
		if err != nil {
			return nil, fmt.Errorf("ignore samples: %v", err)
		}
		ignore = m
	}

	for _, dir := range []string{cfg.OutDir, filepath.Join(cfg.OutDir, "data"), filepath.Join(cfg.OutDir, "plots")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	return &Report{
		Logger: logger.New().With("component", "report"),
		outDir: cfg.OutDir,
		ignore: ignore,
		gsData: make(Dataset),
		wb:     excelize.NewFile(),
	}, nil
}

func (r *Report) OutDir() string   { return r.outDir }
func (r *Report) DataDir() string  { return filepath.Join(r.outDir, "data") }
func (r *Report) PlotsDir() string { return filepath.Join(r.outDir, "plots") }

// AddSection appends a section to the ordered section list.
func (r *Report) AddSection(s Section) {
	r.sections = append(r.sections, s)
}

func (r *Report) Sections() []Section { return r.sections }

// RemoveIgnored returns the dataset without the samples matching the
// configured ignore list.
func (r *Report) RemoveIgnored(data Dataset) Dataset {
	for sname := range data {
		if r.ignore.MatchString(sname) {
			r.Debugf("removing ignored sample '%s'", sname)
			delete(data, sname)
		}
	}
	return data
}

// AddGeneralStats merges per-sample values and their column specs into
// the general statistics table shown at the top of the report.
func (r *Report) AddGeneralStats(data Dataset, cols []Column) {
	for sname, rec := range data {
		dst, ok := r.gsData[sname]
		if !ok {
			dst = make(Record)
			r.gsData[sname] = dst
		}
		for _, col := range cols {
			if v, ok := rec[col.ID]; ok {
				dst[col.ID] = v
			}
		}
	}
	r.gsCols = append(r.gsCols, cols...)
}

// AddDataSource records which file a sample's data came from.
func (r *Report) AddDataSource(module, sname, path string) {
	r.sources = append(r.sources, source{Module: module, Sample: sname, Path: path})
}

// Workbook is the xlsx workbook the tables are exported to.
func (r *Report) Workbook() *excelize.File { return r.wb }

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Sequencing QC Report</title>
</head>
<body>
<h1>Sequencing QC Report</h1>
<p class="generated">Generated on {{.Generated}}</p>
{{if .GeneralStats}}
<section id="general_stats">
<h2>General Statistics</h2>
{{.GeneralStats}}
</section>
{{end}}
{{range .Sections}}
<section id="{{.Anchor}}">
{{if .Name}}<h2>{{.Name}}</h2>{{end}}
{{.Content}}
</section>
{{end}}
</body>
</html>
`))

// Finalize renders report.html, saves the xlsx workbook and writes the
// data sources file.
func (r *Report) Finalize() error {
	var gs template.HTML
	if len(r.gsData) > 0 {
		gs = RenderTable(r.gsData, r.gsCols)
		if err := r.AddTableSheet("General Statistics", r.gsData, r.gsCols); err != nil {
			return fmt.Errorf("general stats sheet: %v", err)
		}
	}

	f, err := os.Create(filepath.Join(r.outDir, "report.html"))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	err = reportTmpl.Execute(f, map[string]any{
		"Generated":    time.Now().Format(time.RFC1123),
		"GeneralStats": gs,
		"Sections":     r.sections,
	})
	if err != nil {
		return fmt.Errorf("render report: %v", err)
	}

	if err := r.writeSources(); err != nil {
		return fmt.Errorf("write sources: %v", err)
	}

	return r.saveWorkbook()
}

func (r *Report) writeSources() error {
	if len(r.sources) == 0 {
		return nil
	}

	f, err := os.Create(filepath.Join(r.DataDir(), "seqreport_sources.txt"))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	srcs := make([]source, len(r.sources))
	copy(srcs, r.sources)
	sort.Slice(srcs, func(i, j int) bool {
		if srcs[i].Module != srcs[j].Module {
			return srcs[i].Module < srcs[j].Module
		}
		return srcs[i].Sample < srcs[j].Sample
	})

	if _, err := fmt.Fprintf(f, "Module\tSample\tSource\n"); err != nil {
		return err
	}
	for _, s := range srcs {
		if _, err := fmt.Fprintf(f, "%s\t%s\t%s\n", s.Module, s.Sample, s.Path); err != nil {
			return err
		}
	}
	return nil
}

func sortedSamples(data Dataset) []string {
	snames := make([]string, 0, len(data))
	for sname := range data {
		snames = append(snames, sname)
	}
	sort.Strings(snames)
	return snames
}
