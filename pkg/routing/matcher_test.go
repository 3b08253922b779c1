package routing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoutes() []EscapeRoute {
	return []EscapeRoute{
		{Path: "/courts", Match: MatchExact},
		{Path: "/bulk-update", Match: MatchPrefix},
		{Path: "/lists", Match: MatchPrefix},
		{Path: "/audits", Match: MatchExact},
	}
}

func TestEscapeMatcher_ExactMatch(t *testing.T) {
	m := NewEscapeMatcher(testRoutes())

	assert.True(t, m.IsEscape("/courts"))
	assert.True(t, m.IsEscape("/courts/"))
	assert.True(t, m.IsEscape("/audits"))

	// Sub-paths of an exact entry are still inside the edit context.
	assert.False(t, m.IsEscape("/courts/central-london/edit"))
	assert.False(t, m.IsEscape("/courts/any-slug/edit/opening-hours"))
}

func TestEscapeMatcher_PrefixMatch(t *testing.T) {
	m := NewEscapeMatcher(testRoutes())

	assert.True(t, m.IsEscape("/bulk-update"))
	assert.True(t, m.IsEscape("/bulk-update/anything"))
	assert.True(t, m.IsEscape("/lists/contact-types"))

	// Boundary-aware: a sibling path sharing the prefix text is unrelated.
	assert.False(t, m.IsEscape("/bulk-updates"))
	assert.False(t, m.IsEscape("/listsx"))
}

func TestEscapeMatcher_NoMatch(t *testing.T) {
	m := NewEscapeMatcher(testRoutes())

	assert.False(t, m.IsEscape("/"))
	assert.False(t, m.IsEscape("/login"))
	assert.False(t, m.IsEscape(""))
}

func TestHasPathPrefixOnBoundary(t *testing.T) {
	assert.True(t, HasPathPrefixOnBoundary("/a/b", "/a"))
	assert.True(t, HasPathPrefixOnBoundary("/a", "/a"))
	assert.True(t, HasPathPrefixOnBoundary("/a/b", "/a/"))
	assert.False(t, HasPathPrefixOnBoundary("/ab", "/a"))
	assert.False(t, HasPathPrefixOnBoundary("/b", "/a"))
	assert.False(t, HasPathPrefixOnBoundary("/a", ""))
}

func TestLoadEscapeRoutes(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "escape_routes.yaml")
	content := `version: 1
routes:
  - path: /courts
    match: exact
  - path: /bulk-update
    match: prefix
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	routes, err := LoadEscapeRoutes(path)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, "/courts", routes[0].Path)
	assert.Equal(t, MatchExact, routes[0].Match)
	assert.Equal(t, MatchPrefix, routes[1].Match)
}

func TestLoadEscapeRoutes_Invalid(t *testing.T) {
	tmp := t.TempDir()

	for name, content := range map[string]string{
		"bad_version": "version: 2\nroutes: []\n",
		"bad_policy":  "version: 1\nroutes:\n  - path: /courts\n    match: fuzzy\n",
		"bad_path":    "version: 1\nroutes:\n  - path: courts\n    match: exact\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(tmp, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
			_, err := LoadEscapeRoutes(path)
			require.Error(t, err)
		})
	}
}

func TestLoadEscapeRoutes_NotFound(t *testing.T) {
	_, err := LoadEscapeRoutes(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrEscapeRoutesNotFound)
}
