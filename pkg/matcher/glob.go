// SPDX-License-Identifier: GPL-3.0-or-later

package matcher

import (
	"github.com/bmatcuk/doublestar/v4"
)

// globMatcher implements Matcher, it uses doublestar.Match to match.
type globMatcher string

// NewGlobMatcher create a new matcher with glob format
func NewGlobMatcher(expr string) (Matcher, error) {
	switch expr {
	case "":
		return stringFullMatcher(""), nil
	case "*":
		return TRUE(), nil
	}

	// validate the pattern upfront so Match never sees a bad pattern
	if _, err := doublestar.Match(expr, ""); err != nil {
		return nil, err
	}

	return globMatcher(expr), nil
}

func (m globMatcher) Match(b []byte) bool {
	return m.MatchString(string(b))
}

func (m globMatcher) MatchString(line string) bool {
	ok, _ := doublestar.Match(string(m), line)
	return ok
}
