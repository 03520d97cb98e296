// Package handlebars exposes vitelink to raymond templates:
//
//	{{vite "views/foo.js"}}
//	{{vite entries}}
//	{{vite_react_refresh}}
//
// Both helpers return raymond.SafeString, so the markup is not escaped.
package handlebars

import (
	"fmt"

	"github.com/aymerick/raymond"
	"github.com/bmeg/vitelink/integration"
)

// Helpers returns the helper set for r. A failing resolution panics with
// the error, which raymond's Exec recovers and returns to the caller.
func Helpers(r integration.Renderer) map[string]interface{} {
	return map[string]interface{}{
		"vite": func(entries interface{}) raymond.SafeString {
			list, err := integration.NormalizeEntries(entries)
			if err != nil {
				panic(fmt.Errorf("vite helper: %w", err))
			}
			out, err := r.ResolveAndRender(list)
			if err != nil {
				panic(fmt.Errorf("vite helper: %w", err))
			}
			return raymond.SafeString(out)
		},
		"vite_react_refresh": func() raymond.SafeString {
			return raymond.SafeString(r.ReactRefresh())
		},
	}
}

// Render parses source, registers the helpers on that template only and
// executes it against ctx.
func Render(source string, ctx interface{}, r integration.Renderer) (string, error) {
	tpl, err := raymond.Parse(source)
	if err != nil {
		return "", err
	}
	tpl.RegisterHelpers(Helpers(r))
	return tpl.Exec(ctx)
}
