// Package pattern compiles file-name selection patterns into anchored
// regular expressions. Two pattern kinds are supported: simple wildcard
// strings using `*` and `?`, and case-insensitive file-extension sets.
package pattern

import (
	"regexp"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"
)

// Compiled is an immutable, compiled file-name pattern.
// The zero value matches nothing.
type Compiled struct {
	re *regexp.Regexp
}

// Match reports whether name satisfies the pattern.
func (c *Compiled) Match(name string) bool {
	if c == nil || c.re == nil {
		return false
	}
	return c.re.MatchString(name)
}

// String returns the underlying regular expression source, or the empty
// string for the match-nothing pattern.
func (c *Compiled) String() string {
	if c == nil || c.re == nil {
		return ""
	}
	return c.re.String()
}

// WildcardRegexp translates a wildcard pattern into a regular expression
// string anchored at both ends. `*` becomes "zero or more characters" and
// `?` becomes "exactly one character"; every other character is escaped
// literally, so any input is a legal pattern.
func WildcardRegexp(pattern string) string {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return sb.String()
}

// Wildcard compiles a wildcard pattern. The result matches whole file
// names only, never substrings. Compilation cannot fail: malformed regex
// syntax in the input is escaped literally.
func Wildcard(pattern string) *Compiled {
	return &Compiled{re: regexp.MustCompile(WildcardRegexp(pattern))}
}

// Extensions compiles a set of file extensions (without the leading dot)
// into a case-insensitive suffix pattern: a name matches when it ends in a
// dot followed by one of the extensions. An empty set compiles to the
// match-nothing pattern.
func Extensions(exts ...string) *Compiled {
	if len(exts) == 0 {
		return &Compiled{}
	}
	quoted := make([]string, 0, len(exts))
	for _, ext := range exts {
		quoted = append(quoted, regexp.QuoteMeta(strings.TrimPrefix(ext, ".")))
	}
	return &Compiled{re: regexp.MustCompile(`(?i)^.+\.(` + strings.Join(quoted, "|") + `)$`)}
}

var wildcardCache = xsync.NewMap[string, *Compiled]()

// CachedWildcard is Wildcard with a process-wide cache. Compilation is
// pure, so a duplicate compile on a racing first lookup is harmless.
func CachedWildcard(pattern string) *Compiled {
	if c, ok := wildcardCache.Load(pattern); ok {
		return c
	}
	c := Wildcard(pattern)
	wildcardCache.Store(pattern, c)
	return c
}
