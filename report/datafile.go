// SPDX-License-Identifier: GPL-3.0-or-later

package report

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteDataFile persists a dataset under <outdir>/data/<name>.json as a
// generic sample -> field -> value mapping for downstream consumption.
func (r *Report) WriteDataFile(name string, data Dataset) error {
	bs, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return err
	}
	bs = append(bs, '\n')

	path := filepath.Join(r.DataDir(), name+".json")
	if err := os.WriteFile(path, bs, 0o644); err != nil {
		return err
	}

	r.Debugf("wrote data file '%s' (%d samples)", path, len(data))
	return nil
}
