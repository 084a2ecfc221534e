// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package matcher implements several formats of string matcher.

Supported formats:

	string
	glob
	regexp

An expression has the form "<format>:<pattern>"; an expression without a
format prefix is treated as a glob.

The string matcher reports whether the given value equals the pattern.

The glob matcher reports whether the given value matches the wildcard
pattern. The pattern syntax is the doublestar one, which extends
path/filepath.Match with '**'.

The regexp matcher reports whether the given value matches the RegExp
pattern. The RegExp syntax is described at
https://golang.org/pkg/regexp/syntax/.
*/
package matcher
