package templates

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	for _, name := range []string{"index.html", "show.html", "not_found.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestNotFoundView(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "not_found.html", map[string]any{
		"title":   "Not found",
		"site":    "News",
		"message": "news <gone> not found",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "news &lt;gone&gt; not found")
}
