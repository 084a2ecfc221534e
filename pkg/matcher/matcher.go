// SPDX-License-Identifier: GPL-3.0-or-later

package matcher

import (
	"errors"
	"fmt"
	"strings"
)

// Matcher is an interface that wraps the Match methods.
type Matcher interface {
	// Match performs match against given []byte
	Match(b []byte) bool
	// MatchString performs match against given string
	MatchString(string) bool
}

type Format string

const (
	// FmtString is a string match format.
	FmtString Format = "string"
	// FmtGlob is a glob match format.
	FmtGlob Format = "glob"
	// FmtRegExp is a regex match format.
	FmtRegExp Format = "regexp"
)

// Separator is used to separate method and expression.
const Separator = ":"

// New create a matcher with the given format and expression.
func New(format Format, expr string) (Matcher, error) {
	switch format {
	case FmtString:
		return NewStringMatcher(expr, true, true)
	case FmtGlob:
		return NewGlobMatcher(expr)
	case FmtRegExp:
		return NewRegExpMatcher(expr)
	default:
		return nil, fmt.Errorf("unsupported matcher format: '%s'", format)
	}
}

// Parse parses an expression of the form "<format>:<expr>".
// An expression without a format prefix is treated as a glob.
func Parse(line string) (Matcher, error) {
	if line == "" {
		return nil, errors.New("empty expression")
	}
	format, expr, found := strings.Cut(line, Separator)
	if !found {
		return New(FmtGlob, line)
	}
	switch Format(format) {
	case FmtString, FmtGlob, FmtRegExp:
		return New(Format(format), expr)
	default:
		return New(FmtGlob, line)
	}
}

// Must is a helper that wraps a call to a function returning (Matcher, error)
// and panics if the error is non-nil.
func Must(m Matcher, err error) Matcher {
	if err != nil {
		panic(err)
	}
	return m
}
