// SPDX-License-Identifier: GPL-3.0-or-later

package discovery

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// readFile loads a log file's content, transparently decompressing
// gzip. Oversized and binary files are rejected.
func (d *Discovery) readFile(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.Size() > d.limit {
		return nil, fmt.Errorf("size %d exceeds limit %d", fi.Size(), d.limit)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip: %v", err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	data, err := io.ReadAll(io.LimitReader(r, d.limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > d.limit {
		return nil, fmt.Errorf("uncompressed size exceeds limit %d", d.limit)
	}

	if isBinary(data) {
		return nil, fmt.Errorf("binary content")
	}

	return data, nil
}

// isBinary reports whether the content looks like a binary file.
func isBinary(data []byte) bool {
	probe := data
	if len(probe) > 1024 {
		probe = probe[:1024]
	}
	return bytes.IndexByte(probe, 0) != -1
}
