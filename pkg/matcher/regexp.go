// SPDX-License-Identifier: GPL-3.0-or-later

package matcher

import "regexp"

// regExpMatcher implements Matcher, it wraps a compiled regexp.
type regExpMatcher struct {
	*regexp.Regexp
}

// NewRegExpMatcher create a new matcher with RegExp format
func NewRegExpMatcher(expr string) (Matcher, error) {
	switch expr {
	case "", "^", "$":
		return TRUE(), nil
	case "^$", "$^":
		return NewStringMatcher("", true, true)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return regExpMatcher{re}, nil
}

func (m regExpMatcher) Match(b []byte) bool          { return m.Regexp.Match(b) }
func (m regExpMatcher) MatchString(line string) bool { return m.Regexp.MatchString(line) }
