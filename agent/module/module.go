// SPDX-License-Identifier: GPL-3.0-or-later

package module

import (
	"context"
	"errors"

	"github.com/seqreport/seqreport/agent/discovery"
	"github.com/seqreport/seqreport/logger"
	"github.com/seqreport/seqreport/report"
)

// ErrNoData is returned by a module whose search patterns matched no
// usable reports. The agent logs it and moves on: an absent tool output
// only removes that module's contribution, never the run.
var ErrNoData = errors.New("no reports found")

// Module is an interface that represents a report module.
type Module interface {
	// Init does initialization.
	// If it returns an error, the module is skipped.
	Init(context.Context) error

	// Collect parses the discovered files into the module's dataset.
	// It returns ErrNoData when nothing usable was found.
	Collect(ctx context.Context, found discovery.Found) error

	// Report emits the module's contribution: persisted data files,
	// table columns, plots and report sections.
	Report(ctx context.Context, rep *report.Report) error

	GetBase() *Base
}

// Base is a helper struct. All modules should embed this struct.
type Base struct {
	*logger.Logger
}

func (b *Base) GetBase() *Base { return b }
