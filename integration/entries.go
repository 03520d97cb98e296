// Package integration holds what the template engine bindings share.
package integration

import (
	"fmt"
	"strings"
)

// Renderer is the single call a template binding makes.
type Renderer interface {
	ResolveAndRender(requested []string) (string, error)
	ReactRefresh() string
}

// NormalizeEntries turns the argument shapes template engines hand over (a
// single path or a list of paths) into the list ResolveAndRender expects.
func NormalizeEntries(arg any) ([]string, error) {
	out := []string{}
	switch v := arg.(type) {
	case string:
		out = append(out, v)
	case []string:
		out = append(out, v...)
	case []any:
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("entry %d must be a string, got %T", i, e)
			}
			out = append(out, s)
		}
	default:
		return nil, fmt.Errorf("entries must be a string or a list of strings, got %T", arg)
	}
	for i, s := range out {
		if strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("entry %d is empty", i)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no entries given")
	}
	return out, nil
}
