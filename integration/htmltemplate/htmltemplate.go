// Package htmltemplate provides vitelink functions for html/template.
package htmltemplate

import (
	"html/template"

	"github.com/bmeg/vitelink/integration"
)

// Funcs returns a FuncMap with vite and viteReactRefresh. vite accepts
// either several string arguments or a single list:
//
//	{{vite "views/foo.js" "views/bar.js"}}
//	{{vite .Entries}}
func Funcs(r integration.Renderer) template.FuncMap {
	return template.FuncMap{
		"vite": func(args ...any) (template.HTML, error) {
			var arg any = args
			if len(args) == 1 {
				arg = args[0]
			}
			entries, err := integration.NormalizeEntries(arg)
			if err != nil {
				return "", err
			}
			out, err := r.ResolveAndRender(entries)
			if err != nil {
				return "", err
			}
			return template.HTML(out), nil
		},
		"viteReactRefresh": func() template.HTML {
			return template.HTML(r.ReactRefresh())
		},
	}
}
