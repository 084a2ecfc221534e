// SPDX-License-Identifier: GPL-3.0-or-later

package discovery

import (
	"path/filepath"
	"strings"
)

// cleanExts are suffixes stripped from raw names when deriving sample
// names, applied repeatedly until none match.
var cleanExts = []string{
	".gz",
	".fastq",
	".fq",
	".bam",
	".sam",
	".selfSM",
	".junction_annotation",
	".txt",
	".log",
	".out",
}

// CleanSampleName derives a sample name from a raw token: a path under
// root is reduced to its base name, known tool extensions are stripped
// and surrounding whitespace removed. An empty result falls back to the
// trimmed input.
func CleanSampleName(name, root string) string {
	s := strings.TrimSpace(name)

	if root != "" && strings.HasPrefix(s, root) {
		s = strings.TrimPrefix(s, root)
		s = strings.TrimLeft(s, string(filepath.Separator))
	}
	if strings.ContainsRune(s, filepath.Separator) {
		s = filepath.Base(s)
	}

	for changed := true; changed; {
		changed = false
		for _, ext := range cleanExts {
			if n := len(s) - len(ext); n > 0 && strings.EqualFold(s[n:], ext) {
				s = s[:n]
				changed = true
			}
		}
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return strings.TrimSpace(name)
	}
	return s
}
