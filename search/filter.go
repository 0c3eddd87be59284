package search

import "github.com/avendal/filekit/pattern"

// Predicate decides whether a Node qualifies. Used both as an inclusion
// matcher (keep if true) and as an exclusion filter (drop if true).
type Predicate func(Node) bool

// MatchPattern adapts a compiled pattern into a predicate over the node
// name.
func MatchPattern(p *pattern.Compiled) Predicate {
	return func(n Node) bool {
		return p.Match(n.Name)
	}
}

// MatchWildcard matches node names against a wildcard pattern.
func MatchWildcard(wildcard string) Predicate {
	return MatchPattern(pattern.CachedWildcard(wildcard))
}

// MatchExtensions matches node names against a case-insensitive extension
// set.
func MatchExtensions(exts ...string) Predicate {
	return MatchPattern(pattern.Extensions(exts...))
}

// MatchName matches nodes by exact name. Handy as an exclusion filter for
// pruning a directory such as ".git" at any depth.
func MatchName(name string) Predicate {
	return func(n Node) bool {
		return n.Name == name
	}
}

// MatchDirs matches directory nodes only.
func MatchDirs() Predicate {
	return func(n Node) bool {
		return n.IsDir
	}
}
