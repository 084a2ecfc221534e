// SPDX-License-Identifier: GPL-3.0-or-later

package agent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// fileConfig is the YAML config file layout. Everything is optional;
// command line options win over file values.
type fileConfig struct {
	OutDir            string   `yaml:"outdir"`
	Modules           []string `yaml:"modules"`
	SampleNamesIgnore []string `yaml:"sample_names_ignore"`
	LogFilesizeLimit  int64    `yaml:"log_filesize_limit"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(bs, &cfg); err != nil {
		return cfg, fmt.Errorf("parse '%s': %v", path, err)
	}
	return cfg, nil
}
