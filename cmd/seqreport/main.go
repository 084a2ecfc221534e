// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/seqreport/seqreport/agent"
	"github.com/seqreport/seqreport/logger"
	"github.com/seqreport/seqreport/pkg/cli"

	_ "github.com/seqreport/seqreport/modules/rseqc"
	_ "github.com/seqreport/seqreport/modules/verifybamid"
)

// set at build time
var version = "dev"

func main() {
	opts := parseCLI()

	if opts.Version {
		fmt.Printf("seqreport, version: %s\n", version)
		return
	}

	if lvl := os.Getenv("SEQREPORT_LOG_LEVEL"); lvl != "" {
		logger.Level.SetByName(lvl)
	}
	if opts.Debug {
		logger.Level.Set(slog.LevelDebug)
	}

	dirs := opts.Args.AnalysisDirs
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	a := agent.New(agent.Config{
		Dirs:          dirs,
		OutDir:        opts.OutDir,
		ConfPath:      opts.ConfPath,
		RunModules:    opts.Modules,
		IgnoreSamples: opts.IgnoreSamples,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		a.Errorf("run: %v", err)
		os.Exit(1)
	}
}

func parseCLI() *cli.Option {
	opt, err := cli.Parse(os.Args[1:])
	if err != nil {
		if cli.IsHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}
	return opt
}
