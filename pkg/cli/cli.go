// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"errors"

	"github.com/jessevdk/go-flags"
)

// Option defines command line options.
type Option struct {
	OutDir        string   `short:"o" long:"outdir" description:"Directory for report output (default: seqreport_data)"`
	ConfPath      string   `short:"c" long:"config" description:"Path to a YAML config file"`
	Modules       []string `short:"m" long:"module" description:"Run only the given module (can be given multiple times)"`
	IgnoreSamples []string `long:"ignore-samples" description:"Sample name patterns to strip from the report"`
	Debug         bool     `short:"d" long:"debug" description:"Debug mode"`
	Version       bool     `short:"V" long:"version" description:"Print version and exit"`
	Args          struct {
		AnalysisDirs []string `positional-arg-name:"analysis-dir" description:"Directories to scan for QC tool output"`
	} `positional-args:"yes"`
}

// Parse returns parsed command-line flags in Option struct
func Parse(args []string) (*Option, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = "seqreport"
	parser.Usage = "[OPTIONS] [analysis-dir...]"

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	return opt, nil
}

// IsHelp returns true if the error is a flags.Error with ErrHelp type
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}
