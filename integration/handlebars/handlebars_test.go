package handlebars

import (
	"os"
	"testing"

	"github.com/bmeg/vitelink/manifest"
	"github.com/bmeg/vitelink/vite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func production(t *testing.T) *vite.Vite {
	t.Helper()
	raw, err := os.ReadFile("../../manifest/testdata/sample_manifest.json")
	require.NoError(t, err)
	m, err := manifest.Parse(raw)
	require.NoError(t, err)
	v, err := vite.New(vite.Production{Manifest: m})
	require.NoError(t, err)
	return v
}

func TestRenderDevelopment(t *testing.T) {
	v, err := vite.New(vite.Development{ServerOrigin: "http://localhost:5173"})
	require.NoError(t, err)

	out, err := Render(`{{vite "app.js"}}`, nil, v)
	require.NoError(t, err)
	expected := `<script type="module" src="http://localhost:5173/@vite/client"></script>
<script type="module" src="http://localhost:5173/app.js"></script>`
	assert.Equal(t, expected, out)
}

func TestRenderProduction(t *testing.T) {
	out, err := Render(`<head>{{vite "views/foo.js"}}</head>`, nil, production(t))
	require.NoError(t, err)
	expected := `<head><link rel="stylesheet" href="assets/foo-5UjPuW-k.css" />
<link rel="stylesheet" href="assets/shared-ChJ_j-JJ.css" />
<script type="module" src="assets/foo-BRBmoGS9.js"></script>
<link rel="modulepreload" href="assets/shared-B7PI925R.js" /></head>`
	assert.Equal(t, expected, out)
}

func TestRenderListFromContext(t *testing.T) {
	ctx := map[string]interface{}{
		"entries": []interface{}{"views/foo.js", "views/bar.js"},
	}
	out, err := Render(`{{vite entries}}`, ctx, production(t))
	require.NoError(t, err)
	assert.Contains(t, out, `<script type="module" src="assets/foo-BRBmoGS9.js"></script>
<script type="module" src="assets/bar-gkvgaI9m.js"></script>`)
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(`{{vite "missing.js"}}`, nil, production(t))
	assert.ErrorIs(t, err, vite.ErrUnknownEntry)

	_, err = Render(`{{vite entries}}`, map[string]interface{}{}, production(t))
	assert.ErrorContains(t, err, "vite helper")

	_, err = Render(`{{vite "a.js"`, nil, production(t))
	assert.Error(t, err)
}

func TestReactRefreshHelper(t *testing.T) {
	v, err := vite.New(vite.Development{ServerOrigin: "http://localhost:5173"})
	require.NoError(t, err)
	out, err := Render(`{{vite_react_refresh}}`, nil, v)
	require.NoError(t, err)
	assert.Contains(t, out, `"http://localhost:5173/@react-refresh"`)

	out, err = Render(`{{vite_react_refresh}}`, nil, production(t))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
