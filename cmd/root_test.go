package cmd

import (
	"bytes"
	"testing"

	"github.com/bmeg/vitelink/vite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command. Flag values persist between runs, so
// every call passes the root flags explicitly.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("VITE_MODE", "")
	out := &bytes.Buffer{}
	RootCmd.SetOut(out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func production(args ...string) []string {
	return append(args, "--config", "", "--mode", "production", "--manifest", "testdata/manifest.json")
}

func TestRender(t *testing.T) {
	out, err := run(t, production("render", "views/foo.js", "--entries", "")...)
	require.NoError(t, err)
	assert.Equal(t, `<link rel="stylesheet" href="assets/foo-5UjPuW-k.css" />
<link rel="stylesheet" href="assets/shared-ChJ_j-JJ.css" />
<script type="module" src="assets/foo-BRBmoGS9.js"></script>
<link rel="modulepreload" href="assets/shared-B7PI925R.js" />
`, out)
}

func TestRenderEntriesFlag(t *testing.T) {
	out, err := run(t, production("render", "--entries", "'views/foo.js' views/bar.js")...)
	require.NoError(t, err)
	assert.Contains(t, out, `<script type="module" src="assets/foo-BRBmoGS9.js"></script>
<script type="module" src="assets/bar-gkvgaI9m.js"></script>`)

	_, err = run(t, production("render", "--entries", "")...)
	assert.ErrorContains(t, err, "no entries")
}

func TestRenderDevelopment(t *testing.T) {
	out, err := run(t, "render", "src/main.ts", "--entries", "", "--config", "", "--mode", "dev", "--host", "http://localhost:3000/", "--manifest", "")
	require.NoError(t, err)
	assert.Equal(t, `<script type="module" src="http://localhost:3000/@vite/client"></script>
<script type="module" src="http://localhost:3000/src/main.ts"></script>
`, out)
}

func TestRenderUnknownEntry(t *testing.T) {
	_, err := run(t, production("render", "missing.js", "--entries", "")...)
	assert.ErrorIs(t, err, vite.ErrUnknownEntry)
}

func TestConfigFile(t *testing.T) {
	out, err := run(t, "render", "views/bar.js", "--entries", "", "--config", "testdata/vitelink.yaml", "--mode", "", "--host", "", "--manifest", "")
	require.NoError(t, err)
	assert.Contains(t, out, `<script type="module" src="https://cdn.example.com/assets/bar-gkvgaI9m.js"></script>`)
}

func TestResolve(t *testing.T) {
	out, err := run(t, production("resolve", "views/foo.js", "--json=false")...)
	require.NoError(t, err)
	assert.Equal(t, `preloads:
- assets/shared-B7PI925R.js
scripts:
- assets/foo-BRBmoGS9.js
styles:
- assets/foo-5UjPuW-k.css
- assets/shared-ChJ_j-JJ.css
`, out)

	out, err = run(t, production("resolve", "views/bar.js", "--json")...)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"scripts": ["assets/bar-gkvgaI9m.js"],
		"styles": ["assets/shared-ChJ_j-JJ.css"],
		"preloads": ["assets/shared-B7PI925R.js"]
	}`, out)
}

func TestCheck(t *testing.T) {
	out, err := run(t, production("check")...)
	require.NoError(t, err)
	assert.Equal(t, "ok: 5 chunks\n", out)

	_, err = run(t, "check", "--config", "", "--mode", "production", "--manifest", "testdata/dangling.json")
	assert.ErrorContains(t, err, "2 dangling imports")
}

func TestViz(t *testing.T) {
	out, err := run(t, production("viz", "--dynamic")...)
	require.NoError(t, err)
	assert.Contains(t, out, "digraph manifest {\n")
	assert.Contains(t, out, "\t4 [label=\"views/foo.js\" shape=doubleoctagon]\n")
	assert.Contains(t, out, "\t4 -> 0\n")
	assert.Contains(t, out, "\t3 -> 1 [style=dashed]\n")
}

func TestTemplate(t *testing.T) {
	out, err := run(t, production("template", "testdata/page.hbs", "--data", "testdata/page.yaml")...)
	require.NoError(t, err)
	assert.Equal(t, `<head>
<link rel="stylesheet" href="assets/foo-5UjPuW-k.css" />
<link rel="stylesheet" href="assets/shared-ChJ_j-JJ.css" />
<script type="module" src="assets/foo-BRBmoGS9.js"></script>
<link rel="modulepreload" href="assets/shared-B7PI925R.js" />
</head>
`, out)
}

func TestScript(t *testing.T) {
	out, err := run(t, production("script", "testdata/page.js")...)
	require.NoError(t, err)
	assert.Equal(t, `<link rel="stylesheet" href="assets/shared-ChJ_j-JJ.css" />
<script type="module" src="assets/bar-gkvgaI9m.js"></script>
<link rel="modulepreload" href="assets/shared-B7PI925R.js" />
`, out)
}

func TestAssetsCheckArgs(t *testing.T) {
	_, err := run(t, production("assets-check", "/tmp/not-s3", "-n", "4")...)
	assert.ErrorContains(t, err, "not an s3+http(s) URL")

	_, err = run(t, production("assets-check", "s3+http://localhost:9000/bucket", "-n", "0")...)
	assert.ErrorContains(t, err, "nworkers")
}
