package routing

import (
	"sort"
	"strings"
)

// EscapeMatcher classifies request paths as "leaving the edit context".
type EscapeMatcher struct {
	routes []EscapeRoute
}

func NewEscapeMatcher(routes []EscapeRoute) *EscapeMatcher {
	copied := make([]EscapeRoute, 0, len(routes))
	for _, route := range routes {
		route.Path = strings.TrimSpace(route.Path)
		if route.Path == "" {
			continue
		}
		copied = append(copied, route)
	}

	sort.SliceStable(copied, func(i, j int) bool {
		return len(copied[i].Path) > len(copied[j].Path)
	})

	return &EscapeMatcher{
		routes: copied,
	}
}

// IsEscape reports whether the path is an edit-context-exit destination.
func (m *EscapeMatcher) IsEscape(path string) bool {
	path = normalizePath(path)
	for _, route := range m.routes {
		switch route.Match {
		case MatchExact:
			if path == route.Path {
				return true
			}
		case MatchPrefix:
			if HasPathPrefixOnBoundary(path, route.Path) {
				return true
			}
		}
	}
	return false
}

func normalizePath(path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// HasPathPrefixOnBoundary matches prefix only on a path-segment boundary, so
// "/bulk-update" covers "/bulk-update/anything" but not "/bulk-updates".
func HasPathPrefixOnBoundary(path, prefix string) bool {
	if prefix == "" {
		return false
	}

	if prefix == "/" {
		return strings.HasPrefix(path, "/")
	}

	if !strings.HasPrefix(path, prefix) {
		return false
	}

	if len(path) == len(prefix) {
		return true
	}

	if strings.HasSuffix(prefix, "/") {
		return true
	}

	return path[len(prefix)] == '/'
}
