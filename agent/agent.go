// SPDX-License-Identifier: GPL-3.0-or-later

// Package agent ties the pieces together: it discovers log files for
// the registered modules, runs each module over its matches and
// finalizes the report. Modules run strictly one after another; a
// failing or empty module only loses its own contribution.
package agent

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/seqreport/seqreport/agent/discovery"
	"github.com/seqreport/seqreport/agent/module"
	"github.com/seqreport/seqreport/logger"
	"github.com/seqreport/seqreport/report"
)

// DefaultOutDir is used when neither the command line nor the config
// file sets an output directory.
const DefaultOutDir = "seqreport_data"

type Config struct {
	Dirs     []string
	OutDir   string
	ConfPath string
	// RunModules restricts the run to the named modules (empty = all).
	RunModules    []string
	IgnoreSamples []string

	// Registry defaults to module.DefaultRegistry.
	Registry module.Registry
}

type Agent struct {
	*logger.Logger

	Config
}

func New(cfg Config) *Agent {
	if cfg.Registry == nil {
		cfg.Registry = module.DefaultRegistry
	}
	return &Agent{
		Logger: logger.New().With("component", "agent"),
		Config: cfg,
	}
}

// Run executes one full report build.
func (a *Agent) Run(ctx context.Context) error {
	fileCfg, err := loadFileConfig(a.ConfPath)
	if err != nil {
		return fmt.Errorf("config: %v", err)
	}

	outDir := a.OutDir
	if outDir == "" {
		outDir = fileCfg.OutDir
	}
	if outDir == "" {
		outDir = DefaultOutDir
	}
	ignore := append([]string{}, fileCfg.SampleNamesIgnore...)
	ignore = append(ignore, a.IgnoreSamples...)

	selected := a.selectModules(fileCfg.Modules)
	if len(selected) == 0 {
		return errors.New("no modules selected")
	}

	var patterns []discovery.Pattern
	for _, name := range selected {
		patterns = append(patterns, a.Registry[name].Patterns...)
	}

	disc, err := discovery.New(discovery.Config{
		Dirs:      a.Dirs,
		Patterns:  patterns,
		SizeLimit: fileCfg.LogFilesizeLimit,
	})
	if err != nil {
		return fmt.Errorf("discovery: %v", err)
	}

	found, err := disc.Run(ctx)
	if err != nil {
		return fmt.Errorf("discovery: %v", err)
	}

	rep, err := report.New(report.Config{
		OutDir:        outDir,
		IgnoreSamples: ignore,
	})
	if err != nil {
		return fmt.Errorf("report: %v", err)
	}

	for _, name := range selected {
		a.runModule(ctx, name, found, rep)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	if err := rep.Finalize(); err != nil {
		return fmt.Errorf("finalize report: %v", err)
	}

	a.Infof("report written to '%s'", outDir)
	return nil
}

func (a *Agent) runModule(ctx context.Context, name string, found discovery.Found, rep *report.Report) {
	mod := a.Registry[name].Create()
	mod.GetBase().Logger = logger.New().With("component", "module", "module", name)

	if err := mod.Init(ctx); err != nil {
		a.Warningf("module '%s' init: %v", name, err)
		return
	}

	if err := mod.Collect(ctx, found); err != nil {
		if errors.Is(err, module.ErrNoData) {
			a.Infof("module '%s': no reports found", name)
		} else {
			a.Warningf("module '%s' collect: %v", name, err)
		}
		return
	}

	if err := mod.Report(ctx, rep); err != nil {
		if errors.Is(err, module.ErrNoData) {
			a.Infof("module '%s': no samples left to report", name)
		} else {
			a.Warningf("module '%s' report: %v", name, err)
		}
	}
}

// selectModules returns the registered module names to run, honoring
// both restriction lists, ordered by Creator.Order then name.
func (a *Agent) selectModules(fromConfig []string) []string {
	var names []string
	for name := range a.Registry {
		if len(a.RunModules) > 0 && !slices.Contains(a.RunModules, name) {
			continue
		}
		if len(fromConfig) > 0 && !slices.Contains(fromConfig, name) {
			continue
		}
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		oi, oj := a.Registry[names[i]].Order, a.Registry[names[j]].Order
		if oi != oj {
			return oi < oj
		}
		return names[i] < names[j]
	})

	return names
}
