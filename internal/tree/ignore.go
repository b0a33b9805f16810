package tree

import (
	"sort"
	"strings"
)

const (
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// NodeModulesDirectoryName is the name of the npm dependency directory.
	NodeModulesDirectoryName = "node_modules"
)

// IgnoreSet is an immutable set of directory base names that are neither
// listed nor descended into. The zero value ignores nothing.
type IgnoreSet struct {
	names map[string]struct{}
}

// NewIgnoreSet builds an IgnoreSet from the provided names. Blank names and
// names carrying a trailing slash are normalized.
func NewIgnoreSet(names ...string) IgnoreSet {
	set := IgnoreSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		normalized := normalizeIgnoreName(name)
		if normalized == "" {
			continue
		}
		set.names[normalized] = struct{}{}
	}
	return set
}

// DefaultIgnoreSet returns the set of names skipped when nothing else is configured.
func DefaultIgnoreSet() IgnoreSet {
	return NewIgnoreSet(GitDirectoryName, NodeModulesDirectoryName)
}

// Contains reports whether name is in the set.
func (set IgnoreSet) Contains(name string) bool {
	_, exists := set.names[name]
	return exists
}

// Len returns the number of names in the set.
func (set IgnoreSet) Len() int {
	return len(set.names)
}

// Names returns the names in byte order.
func (set IgnoreSet) Names() []string {
	names := make([]string, 0, len(set.names))
	for name := range set.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// With returns a new set holding the receiver's names plus additional ones.
// The receiver is left untouched.
func (set IgnoreSet) With(additional ...string) IgnoreSet {
	return NewIgnoreSet(append(set.Names(), additional...)...)
}

func normalizeIgnoreName(name string) string {
	trimmed := strings.TrimSpace(name)
	return strings.TrimRight(trimmed, "/\\")
}
