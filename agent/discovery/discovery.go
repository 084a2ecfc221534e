// SPDX-License-Identifier: GPL-3.0-or-later

// Package discovery locates QC tool output files for the registered
// modules: it walks the analysis directories and matches every regular
// file against the modules' search patterns.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/seqreport/seqreport/logger"
	"github.com/seqreport/seqreport/pkg/matcher"
)

// Pattern describes how one module recognizes its log files.
// At least one of FileName and Contents must be set; when both are set
// both must match.
type Pattern struct {
	// Key identifies the pattern, e.g. "verifybamid/selfsm".
	Key string
	// FileName is a glob matched against the file's base name.
	FileName string
	// Contents is a substring searched for in the file's content.
	Contents string
}

// File is a discovered log file.
type File struct {
	Path string
	Root string
	// SName is the sample name inferred from the file name.
	SName string
	Data  []byte
}

func (f File) Text() string { return string(f.Data) }

// Found maps pattern keys to the files that matched them.
type Found map[string][]File

const defaultSizeLimit = 10 * 1024 * 1024

type Config struct {
	Dirs     []string
	Patterns []Pattern
	// SizeLimit is the per-file size limit in bytes (default 10MiB).
	SizeLimit int64
}

type compiledPattern struct {
	key      string
	fileName matcher.Matcher
	contents matcher.Matcher
}

type Discovery struct {
	*logger.Logger

	dirs     []string
	patterns []compiledPattern
	limit    int64
}

func New(cfg Config) (*Discovery, error) {
	if len(cfg.Dirs) == 0 {
		return nil, errors.New("no analysis directories")
	}
	if len(cfg.Patterns) == 0 {
		return nil, errors.New("no search patterns")
	}

	d := &Discovery{
		Logger: logger.New().With("component", "discovery"),
		dirs:   cfg.Dirs,
		limit:  cfg.SizeLimit,
	}
	if d.limit <= 0 {
		d.limit = defaultSizeLimit
	}

	for _, p := range cfg.Patterns {
		cp, err := compilePattern(p)
		if err != nil {
			return nil, fmt.Errorf("search pattern '%s': %v", p.Key, err)
		}
		d.patterns = append(d.patterns, cp)
	}

	return d, nil
}

func compilePattern(p Pattern) (compiledPattern, error) {
	if p.Key == "" {
		return compiledPattern{}, errors.New("empty key")
	}
	if p.FileName == "" && p.Contents == "" {
		return compiledPattern{}, errors.New("neither filename nor contents set")
	}

	cp := compiledPattern{key: p.Key}

	if p.FileName != "" {
		m, err := matcher.NewGlobMatcher(p.FileName)
		if err != nil {
			return compiledPattern{}, fmt.Errorf("filename glob: %v", err)
		}
		cp.fileName = m
	}
	if p.Contents != "" {
		m, err := matcher.NewStringMatcher(p.Contents, false, false)
		if err != nil {
			return compiledPattern{}, fmt.Errorf("contents: %v", err)
		}
		cp.contents = m
	}

	return cp, nil
}

// Run walks the analysis directories once and returns all matches.
// Unreadable or oversized files are skipped with a diagnostic, never an
// error: a missing tool output only means an empty module contribution.
func (d *Discovery) Run(ctx context.Context) (Found, error) {
	found := make(Found)

	for _, dir := range d.dirs {
		err := filepath.WalkDir(dir, func(path string, de fs.DirEntry, err error) error {
			if err != nil {
				d.Warningf("walk '%s': %v", path, err)
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if de.IsDir() || !de.Type().IsRegular() {
				return nil
			}
			d.matchFile(dir, path, found)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	for _, p := range d.patterns {
		d.Debugf("pattern '%s': %d files", p.key, len(found[p.key]))
	}

	return found, nil
}

func (d *Discovery) matchFile(root, path string, found Found) {
	base := filepath.Base(path)

	var data []byte
	loaded := false

	for _, p := range d.patterns {
		if p.fileName != nil && !p.fileName.MatchString(base) {
			continue
		}

		if !loaded {
			bs, err := d.readFile(path)
			if err != nil {
				d.Debugf("skipping '%s': %v", path, err)
				return
			}
			data, loaded = bs, true
		}

		if p.contents != nil && !p.contents.Match(data) {
			continue
		}

		found[p.key] = append(found[p.key], File{
			Path:  path,
			Root:  root,
			SName: CleanSampleName(base, root),
			Data:  data,
		})
	}
}
