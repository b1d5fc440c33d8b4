package web

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup("index.html"))
}

func TestStaticServesAssets(t *testing.T) {
	for _, name := range []string{"/app.js", "/admin.js", "/app.css", "/img/hero.svg"} {
		f, err := Static().Open(name)
		require.NoError(t, err, name)
		b, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.NotEmpty(t, b, name)
		f.Close()
	}
}
