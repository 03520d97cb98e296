package htmltemplate

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/bmeg/vitelink/manifest"
	"github.com/bmeg/vitelink/vite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, v *vite.Vite, src string, data any) (string, error) {
	t.Helper()
	tpl, err := template.New("page").Funcs(Funcs(v)).Parse(src)
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	err = tpl.Execute(buf, data)
	return buf.String(), err
}

func production(t *testing.T) *vite.Vite {
	t.Helper()
	m, err := manifest.Parse([]byte(`{
		"a.js": {"file": "assets/a.js", "css": ["assets/a.css"]},
		"b.js": {"file": "assets/b.js", "css": ["assets/a.css", "assets/b.css"]}
	}`))
	require.NoError(t, err)
	v, err := vite.New(vite.Production{Manifest: m})
	require.NoError(t, err)
	return v
}

func TestVariadic(t *testing.T) {
	out, err := render(t, production(t), `{{vite "a.js" "b.js"}}`, nil)
	require.NoError(t, err)
	assert.Equal(t, `<link rel="stylesheet" href="assets/a.css" />
<link rel="stylesheet" href="assets/b.css" />
<script type="module" src="assets/a.js"></script>
<script type="module" src="assets/b.js"></script>`, out)
}

func TestListArgument(t *testing.T) {
	out, err := render(t, production(t), `{{vite .Entries}}`, map[string]any{"Entries": []string{"b.js"}})
	require.NoError(t, err)
	assert.Contains(t, out, `<script type="module" src="assets/b.js"></script>`)
}

func TestErrorsAbortExecution(t *testing.T) {
	_, err := render(t, production(t), `{{vite "missing.js"}}`, nil)
	assert.ErrorIs(t, err, vite.ErrUnknownEntry)

	_, err = render(t, production(t), `{{vite}}`, nil)
	assert.Error(t, err)
}

func TestReactRefresh(t *testing.T) {
	v, err := vite.New(vite.Development{ServerOrigin: "http://localhost:5173"})
	require.NoError(t, err)
	out, err := render(t, v, `{{viteReactRefresh}}`, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "window.__vite_plugin_react_preamble_installed__ = true")
}
