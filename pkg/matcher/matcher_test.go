// SPDX-License-Identifier: GPL-3.0-or-later

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		line      string
		wantErr   bool
		matches   []string
		noMatches []string
	}{
		"bare expression is a glob": {
			line:      "sample_*",
			matches:   []string{"sample_01", "sample_"},
			noMatches: []string{"control_01", "Xsample_01"},
		},
		"glob format": {
			line:      "glob:sample_0[12]",
			matches:   []string{"sample_01", "sample_02"},
			noMatches: []string{"sample_03"},
		},
		"string format is a full match": {
			line:      "string:sample_01",
			matches:   []string{"sample_01"},
			noMatches: []string{"sample_012", "Xsample_01"},
		},
		"regexp format": {
			line:      "regexp:^sample_\\d+$",
			matches:   []string{"sample_01", "sample_123"},
			noMatches: []string{"sample_", "sample_01x"},
		},
		"unknown format falls back to glob": {
			line:      "custom:expr",
			matches:   []string{"custom:expr"},
			noMatches: []string{"custom"},
		},
		"empty line": {
			line:    "",
			wantErr: true,
		},
		"bad glob": {
			line:    "[unclosed",
			wantErr: true,
		},
		"bad regexp": {
			line:    "regexp:[unclosed",
			wantErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := Parse(test.line)

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, s := range test.matches {
				assert.Truef(t, m.MatchString(s), "expected '%s' to match", s)
				assert.Truef(t, m.Match([]byte(s)), "expected '%s' to match", s)
			}
			for _, s := range test.noMatches {
				assert.Falsef(t, m.MatchString(s), "expected '%s' not to match", s)
			}
		})
	}
}

func TestNewGlobMatcher(t *testing.T) {
	t.Run("star matches everything", func(t *testing.T) {
		m, err := NewGlobMatcher("*")
		require.NoError(t, err)
		assert.True(t, m.MatchString("anything"))
		assert.True(t, m.MatchString(""))
	})

	t.Run("empty pattern matches only the empty string", func(t *testing.T) {
		m, err := NewGlobMatcher("")
		require.NoError(t, err)
		assert.True(t, m.MatchString(""))
		assert.False(t, m.MatchString("x"))
	})

	t.Run("question mark", func(t *testing.T) {
		m, err := NewGlobMatcher("sample_0?")
		require.NoError(t, err)
		assert.True(t, m.MatchString("sample_01"))
		assert.False(t, m.MatchString("sample_012"))
	})
}

func TestNewStringMatcher(t *testing.T) {
	tests := map[string]struct {
		startWith, endWith bool
		matches            []string
		noMatches          []string
	}{
		"full":    {startWith: true, endWith: true, matches: []string{"mix"}, noMatches: []string{"mixed", "remix"}},
		"prefix":  {startWith: true, endWith: false, matches: []string{"mix", "mixed"}, noMatches: []string{"remix"}},
		"suffix":  {startWith: false, endWith: true, matches: []string{"mix", "remix"}, noMatches: []string{"mixed"}},
		"partial": {startWith: false, endWith: false, matches: []string{"mix", "mixed", "remix"}, noMatches: []string{"mi"}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := NewStringMatcher("mix", test.startWith, test.endWith)
			require.NoError(t, err)
			for _, s := range test.matches {
				assert.Truef(t, m.MatchString(s), "expected '%s' to match", s)
			}
			for _, s := range test.noMatches {
				assert.Falsef(t, m.MatchString(s), "expected '%s' not to match", s)
			}
		})
	}
}

func TestLogicalMatchers(t *testing.T) {
	assert.True(t, TRUE().MatchString("x"))
	assert.False(t, FALSE().MatchString("x"))
	assert.False(t, Not(TRUE()).MatchString("x"))

	glob := Must(NewGlobMatcher("sample_*"))
	assert.True(t, Or(FALSE(), glob).MatchString("sample_01"))
	assert.False(t, And(FALSE(), glob).MatchString("sample_01"))
	assert.True(t, And(TRUE(), glob).MatchString("sample_01"))
}

func TestSimpleExpr_Parse(t *testing.T) {
	tests := map[string]struct {
		expr      SimpleExpr
		wantErr   error
		matches   []string
		noMatches []string
	}{
		"empty": {
			expr:    SimpleExpr{},
			wantErr: ErrEmptyExpr,
		},
		"includes only": {
			expr:      SimpleExpr{Includes: []string{"sample_*", "control_*"}},
			matches:   []string{"sample_01", "control_01"},
			noMatches: []string{"blank_01"},
		},
		"excludes only, everything else matches": {
			expr:      SimpleExpr{Excludes: []string{"control_*"}},
			matches:   []string{"sample_01"},
			noMatches: []string{"control_01"},
		},
		"excludes win over includes": {
			expr:      SimpleExpr{Includes: []string{"sample_*"}, Excludes: []string{"*_bad"}},
			matches:   []string{"sample_01"},
			noMatches: []string{"sample_bad"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := test.expr.Parse()

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			for _, s := range test.matches {
				assert.Truef(t, m.MatchString(s), "expected '%s' to match", s)
			}
			for _, s := range test.noMatches {
				assert.Falsef(t, m.MatchString(s), "expected '%s' not to match", s)
			}
		})
	}
}
