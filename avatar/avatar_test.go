package avatar

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSVG(t *testing.T, uri string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
	require.NoError(t, err)
	return string(raw)
}

func TestPlaceholder(t *testing.T) {
	svg := decodeSVG(t, Placeholder("alice"))
	assert.Contains(t, svg, ">A</text>")

	// Same username always produces the same avatar.
	assert.Equal(t, Placeholder("alice"), Placeholder("alice"))
}

func TestPlaceholderEmptyUsername(t *testing.T) {
	svg := decodeSVG(t, Placeholder(""))
	assert.Contains(t, svg, ">?</text>")
	assert.Contains(t, svg, palette[0])
}

func TestPlaceholderEscapesInitial(t *testing.T) {
	svg := decodeSVG(t, Placeholder("<script>"))
	assert.NotContains(t, svg, "<script")
	assert.Contains(t, svg, "&lt;")
}

func TestInitial(t *testing.T) {
	assert.Equal(t, "A", Initial("alice"))
	assert.Equal(t, "Ü", Initial("über"))
	assert.Equal(t, "?", Initial(""))
}
