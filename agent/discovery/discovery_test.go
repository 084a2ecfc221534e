// SPDX-License-Identifier: GPL-3.0-or-later

package discovery

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := map[string]struct {
		cfg     Config
		wantErr bool
	}{
		"ok": {
			cfg: Config{
				Dirs:     []string{"."},
				Patterns: []Pattern{{Key: "k", FileName: "*.selfSM"}},
			},
		},
		"no dirs": {
			cfg:     Config{Patterns: []Pattern{{Key: "k", FileName: "*.selfSM"}}},
			wantErr: true,
		},
		"no patterns": {
			cfg:     Config{Dirs: []string{"."}},
			wantErr: true,
		},
		"pattern without key": {
			cfg: Config{
				Dirs:     []string{"."},
				Patterns: []Pattern{{FileName: "*.selfSM"}},
			},
			wantErr: true,
		},
		"pattern without filename and contents": {
			cfg: Config{
				Dirs:     []string{"."},
				Patterns: []Pattern{{Key: "k"}},
			},
			wantErr: true,
		},
		"bad filename glob": {
			cfg: Config{
				Dirs:     []string{"."},
				Patterns: []Pattern{{Key: "k", FileName: "[unclosed"}},
			},
			wantErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := New(test.cfg)

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, d)
		})
	}
}

func TestDiscovery_Run(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("sample_01.selfSM", "SEQ_ID\tFREEMIX\nSample1\t0.02\n")
	write("sample_01.junction_annotation.txt", "Partial Novel Splicing Events\t525\t2.497\n")
	write("notes.txt", "nothing relevant\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	write(filepath.Join("nested", "sample_02.selfSM"), "SEQ_ID\tFREEMIX\nSample2\t0.01\n")

	d, err := New(Config{
		Dirs: []string{dir},
		Patterns: []Pattern{
			{Key: "verifybamid/selfsm", FileName: "*.selfSM"},
			{Key: "rseqc/junction_annotation", Contents: "Partial Novel Splicing Events"},
		},
	})
	require.NoError(t, err)

	found, err := d.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, found["verifybamid/selfsm"], 2)
	require.Len(t, found["rseqc/junction_annotation"], 1)

	f := found["rseqc/junction_annotation"][0]
	assert.Equal(t, filepath.Join(dir, "sample_01.junction_annotation.txt"), f.Path)
	assert.Equal(t, dir, f.Root)
	assert.Equal(t, "sample_01", f.SName)
	assert.Contains(t, f.Text(), "Partial Novel Splicing Events")

	snames := []string{found["verifybamid/selfsm"][0].SName, found["verifybamid/selfsm"][1].SName}
	assert.ElementsMatch(t, []string{"sample_01", "sample_02"}, snames)
}

func TestDiscovery_Run_gzip(t *testing.T) {
	dir := t.TempDir()

	f, err := os.Create(filepath.Join(dir, "sample_01.junction_annotation.txt.gz"))
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte("Partial Novel Splicing Events\t525\t2.497\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	d, err := New(Config{
		Dirs:     []string{dir},
		Patterns: []Pattern{{Key: "k", Contents: "Partial Novel Splicing Events"}},
	})
	require.NoError(t, err)

	found, err := d.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, found["k"], 1)
	assert.Equal(t, "sample_01", found["k"][0].SName)
	assert.Equal(t, "Partial Novel Splicing Events\t525\t2.497\n", found["k"][0].Text())
}

func TestDiscovery_Run_skipsOversizedAndBinary(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "big.selfSM"), []byte("SEQ_ID\tFREEMIX\nSample1\t0.02\nSample2\t0.01\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "binary.selfSM"), []byte("SEQ\x00ID"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "small.selfSM"), []byte("ok\n"), 0o644))

	d, err := New(Config{
		Dirs:      []string{dir},
		Patterns:  []Pattern{{Key: "k", FileName: "*.selfSM"}},
		SizeLimit: 10,
	})
	require.NoError(t, err)

	found, err := d.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, found["k"], 1)
	assert.Equal(t, filepath.Join(dir, "small.selfSM"), found["k"][0].Path)
}

func TestDiscovery_Run_missingDir(t *testing.T) {
	d, err := New(Config{
		Dirs:     []string{filepath.Join(t.TempDir(), "does_not_exist")},
		Patterns: []Pattern{{Key: "k", FileName: "*.selfSM"}},
	})
	require.NoError(t, err)

	found, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, found["k"])
}

func TestDiscovery_Run_canceledContext(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.selfSM"), []byte("x\n"), 0o644))

	d, err := New(Config{
		Dirs:     []string{dir},
		Patterns: []Pattern{{Key: "k", FileName: "*.selfSM"}},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = d.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCleanSampleName(t *testing.T) {
	tests := map[string]struct {
		name string
		root string
		want string
	}{
		"plain name":            {name: "Sample1", want: "Sample1"},
		"single extension":      {name: "sample_01.selfSM", want: "sample_01"},
		"stacked extensions":    {name: "sample_01.junction_annotation.txt.gz", want: "sample_01"},
		"case insensitive":      {name: "sample_01.SELFSM", want: "sample_01"},
		"root prefix trimmed":   {name: filepath.Join("data", "run1", "sample_01.txt"), root: "data", want: "sample_01"},
		"path without root":     {name: filepath.Join("some", "dir", "sample_01.txt"), want: "sample_01"},
		"whitespace trimmed":    {name: "  sample_01.txt  ", want: "sample_01"},
		"only extensions input": {name: ".txt", want: ".txt"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, CleanSampleName(test.name, test.root))
		})
	}
}
