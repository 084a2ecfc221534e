// SPDX-License-Identifier: GPL-3.0-or-later

package agent

import (
	"context"
	"html/template"
	"os"
	"path/filepath"
	"testing"

	"github.com/seqreport/seqreport/agent/discovery"
	"github.com/seqreport/seqreport/agent/module"
	"github.com/seqreport/seqreport/pkg/cli"
	"github.com/seqreport/seqreport/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockModule struct {
	module.Base

	key     string
	files   int
	initErr error
}

func (m *mockModule) Init(context.Context) error { return m.initErr }

func (m *mockModule) Collect(_ context.Context, found discovery.Found) error {
	m.files = len(found[m.key])
	if m.files == 0 {
		return module.ErrNoData
	}
	return nil
}

func (m *mockModule) Report(_ context.Context, rep *report.Report) error {
	rep.AddSection(report.Section{
		Name:    "Mock",
		Anchor:  "mock",
		Content: template.HTML("<p>mock section</p>"),
	})
	return nil
}

func TestAgent_Run(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample_01.log"), []byte("mock tool output\n"), 0o644))

	mock := &mockModule{key: "mock/log"}
	reg := module.Registry{}
	reg.Register("mock", module.Creator{
		Create:   func() module.Module { return mock },
		Patterns: []discovery.Pattern{{Key: "mock/log", FileName: "*.log"}},
	})

	outDir := filepath.Join(t.TempDir(), "out")
	a := New(Config{
		Dirs:     []string{dir},
		OutDir:   outDir,
		Registry: reg,
	})

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, 1, mock.files)

	bs, err := os.ReadFile(filepath.Join(outDir, "report.html"))
	require.NoError(t, err)
	assert.Contains(t, string(bs), "<p>mock section</p>")
	assert.FileExists(t, filepath.Join(outDir, "seqreport.xlsx"))
}

func TestAgent_Run_moduleWithoutDataIsSkipped(t *testing.T) {
	mock := &mockModule{key: "mock/log"}
	reg := module.Registry{}
	reg.Register("mock", module.Creator{
		Create:   func() module.Module { return mock },
		Patterns: []discovery.Pattern{{Key: "mock/log", FileName: "*.does-not-exist"}},
	})

	outDir := filepath.Join(t.TempDir(), "out")
	a := New(Config{
		Dirs:     []string{t.TempDir()},
		OutDir:   outDir,
		Registry: reg,
	})

	require.NoError(t, a.Run(context.Background()))

	bs, err := os.ReadFile(filepath.Join(outDir, "report.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(bs), "mock section")
}

func TestAgent_Run_initFailureIsSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample_01.log"), []byte("mock tool output\n"), 0o644))

	mock := &mockModule{key: "mock/log", initErr: assert.AnError}
	reg := module.Registry{}
	reg.Register("mock", module.Creator{
		Create:   func() module.Module { return mock },
		Patterns: []discovery.Pattern{{Key: "mock/log", FileName: "*.log"}},
	})

	outDir := filepath.Join(t.TempDir(), "out")
	a := New(Config{Dirs: []string{dir}, OutDir: outDir, Registry: reg})

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 0, mock.files)
}

func TestAgent_Run_noModulesSelected(t *testing.T) {
	a := New(Config{
		Dirs:       []string{t.TempDir()},
		OutDir:     filepath.Join(t.TempDir(), "out"),
		RunModules: []string{"unknown"},
		Registry:   module.Registry{},
	})

	assert.Error(t, a.Run(context.Background()))
}

func TestAgent_Run_outDirPrecedence(t *testing.T) {
	newRegistry := func() module.Registry {
		reg := module.Registry{}
		reg.Register("mock", module.Creator{
			Create:   func() module.Module { return &mockModule{key: "mock/log"} },
			Patterns: []discovery.Pattern{{Key: "mock/log", FileName: "*.log"}},
		})
		return reg
	}
	writeConf := func(outDir string) string {
		path := filepath.Join(t.TempDir(), "seqreport.yaml")
		require.NoError(t, os.WriteFile(path, []byte("outdir: "+outDir+"\n"), 0o644))
		return path
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample_01.log"), []byte("mock tool output\n"), 0o644))

	t.Run("config file value is used without -o", func(t *testing.T) {
		fileOutDir := filepath.Join(t.TempDir(), "from_file")

		// wire the agent the way the binary does, CLI parse included
		opt, err := cli.Parse(nil)
		require.NoError(t, err)

		a := New(Config{
			Dirs:     []string{dir},
			OutDir:   opt.OutDir,
			ConfPath: writeConf(fileOutDir),
			Registry: newRegistry(),
		})

		require.NoError(t, a.Run(context.Background()))
		assert.FileExists(t, filepath.Join(fileOutDir, "report.html"))
		assert.NoDirExists(t, DefaultOutDir)
	})

	t.Run("-o wins over the config file", func(t *testing.T) {
		cliOutDir := filepath.Join(t.TempDir(), "from_cli")
		fileOutDir := filepath.Join(t.TempDir(), "from_file")

		opt, err := cli.Parse([]string{"-o", cliOutDir})
		require.NoError(t, err)

		a := New(Config{
			Dirs:     []string{dir},
			OutDir:   opt.OutDir,
			ConfPath: writeConf(fileOutDir),
			Registry: newRegistry(),
		})

		require.NoError(t, a.Run(context.Background()))
		assert.FileExists(t, filepath.Join(cliOutDir, "report.html"))
		assert.NoDirExists(t, fileOutDir)
	})

	t.Run("default when neither is set", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		opt, err := cli.Parse(nil)
		require.NoError(t, err)

		a := New(Config{
			Dirs:     []string{dir},
			OutDir:   opt.OutDir,
			Registry: newRegistry(),
		})

		require.NoError(t, a.Run(context.Background()))
		assert.FileExists(t, filepath.Join(DefaultOutDir, "report.html"))
	})
}

func TestAgent_selectModules(t *testing.T) {
	creator := func(order int) module.Creator {
		return module.Creator{Create: func() module.Module { return &mockModule{} }, Order: order}
	}
	reg := module.Registry{
		"zmod": creator(10),
		"amod": creator(20),
		"bmod": creator(20),
	}

	tests := map[string]struct {
		runModules []string
		fromConfig []string
		want       []string
	}{
		"all, ordered by Order then name": {
			want: []string{"zmod", "amod", "bmod"},
		},
		"restricted by command line": {
			runModules: []string{"amod"},
			want:       []string{"amod"},
		},
		"restricted by config file": {
			fromConfig: []string{"bmod", "zmod"},
			want:       []string{"zmod", "bmod"},
		},
		"both restrictions intersect": {
			runModules: []string{"amod", "zmod"},
			fromConfig: []string{"amod", "bmod"},
			want:       []string{"amod"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			a := New(Config{RunModules: test.runModules, Registry: reg})

			assert.Equal(t, test.want, a.selectModules(test.fromConfig))
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	t.Run("empty path is an empty config", func(t *testing.T) {
		cfg, err := loadFileConfig("")
		require.NoError(t, err)
		assert.Equal(t, fileConfig{}, cfg)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := loadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("parses all fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seqreport.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
outdir: my_report
modules:
  - verifybamid
sample_names_ignore:
  - control_*
log_filesize_limit: 1048576
`), 0o644))

		cfg, err := loadFileConfig(path)
		require.NoError(t, err)
		assert.Equal(t, fileConfig{
			OutDir:            "my_report",
			Modules:           []string{"verifybamid"},
			SampleNamesIgnore: []string{"control_*"},
			LogFilesizeLimit:  1048576,
		}, cfg)
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seqreport.yaml")
		require.NoError(t, os.WriteFile(path, []byte("outdir: [unterminated\n"), 0o644))

		_, err := loadFileConfig(path)
		assert.Error(t, err)
	})
}
