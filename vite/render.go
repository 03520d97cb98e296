package vite

import (
	"fmt"
	"html"
	"strings"
)

var (
	stylesheetFmt = `<link rel="stylesheet" href="%s" />`
	moduleFmt     = `<script type="module" src="%s"></script>`
	preloadFmt    = `<link rel="modulepreload" href="%s" />`
)

// Render formats assets as HTML, one tag per line: the dev client, then
// stylesheets, module scripts and module preloads.
func Render(assets *ResolvedAssets) string {
	if assets == nil {
		return ""
	}
	lines := make([]string, 0, 1+len(assets.Styles)+len(assets.Scripts)+len(assets.Preloads))
	if assets.Client != "" {
		lines = append(lines, tag(moduleFmt, assets.Client))
	}
	for _, s := range assets.Styles {
		lines = append(lines, tag(stylesheetFmt, s))
	}
	for _, s := range assets.Scripts {
		lines = append(lines, tag(moduleFmt, s))
	}
	for _, s := range assets.Preloads {
		lines = append(lines, tag(preloadFmt, s))
	}
	return strings.Join(lines, "\n")
}

func tag(format string, uri string) string {
	return fmt.Sprintf(format, html.EscapeString(uri))
}

var reactRefreshFmt = `<script type="module">
import RefreshRuntime from "%s/@react-refresh"
RefreshRuntime.injectIntoGlobalHook(window)
window.$RefreshReg$ = () => {}
window.$RefreshSig$ = () => (type) => type
window.__vite_plugin_react_preamble_installed__ = true
</script>`

func renderReactRefresh(origin string) string {
	return fmt.Sprintf(reactRefreshFmt, origin)
}
