package vite

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/bmeg/vitelink/manifest"
)

// ResolvedAssets lists the references needed to load a set of entries.
type ResolvedAssets struct {
	// Client is the dev server's @vite/client script. Empty in production.
	Client string `json:"client,omitempty"`
	// Scripts holds one module script per requested entry, in request order.
	Scripts []string `json:"scripts"`
	// Styles holds every stylesheet reachable from the entries, deduplicated
	// in order of first encounter.
	Styles []string `json:"styles"`
	// Preloads holds the JS chunks imported by the entries.
	Preloads []string `json:"preloads"`
}

// Resolve maps the requested entries to asset references.
//
// In development every entry becomes a URL on the dev server and nothing is
// walked. In production each entry is looked up in the manifest and its
// imports are walked depth first, in manifest order, entries left to right.
// A chunk is visited at most once per call, so shared chunks contribute
// their stylesheets once and import cycles terminate.
func Resolve(requested []string, mode Mode) (*ResolvedAssets, error) {
	switch m := mode.(type) {
	case Development:
		return resolveDevelopment(requested, m.ServerOrigin)
	case Production:
		return resolveProduction(requested, m.Manifest)
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidMode, mode)
}

func resolveDevelopment(requested []string, origin string) (*ResolvedAssets, error) {
	base, err := normalizeOrigin(origin)
	if err != nil {
		return nil, err
	}
	out := &ResolvedAssets{
		Client:   devURL(base, "@vite/client"),
		Scripts:  make([]string, 0, len(requested)),
		Styles:   []string{},
		Preloads: []string{},
	}
	for _, p := range requested {
		out.Scripts = append(out.Scripts, devURL(base, p))
	}
	return out, nil
}

// normalizeOrigin checks that origin is an absolute http(s) URL and strips
// trailing slashes.
func normalizeOrigin(origin string) (string, error) {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidServerOrigin)
	}
	u, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidServerOrigin, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidServerOrigin, origin)
	}
	return strings.TrimRight(origin, "/"), nil
}

func devURL(origin, p string) string {
	return origin + "/" + strings.TrimLeft(p, "/")
}

func resolveProduction(requested []string, m *manifest.Manifest) (*ResolvedAssets, error) {
	out := &ResolvedAssets{
		Scripts:  make([]string, 0, len(requested)),
		Styles:   []string{},
		Preloads: []string{},
	}

	roots := make([]*manifest.Chunk, 0, len(requested))
	isRoot := map[string]bool{}
	for _, p := range requested {
		c, ok := m.Lookup(p)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, p)
		}
		roots = append(roots, c)
		isRoot[p] = true
		out.Scripts = append(out.Scripts, c.File)
	}

	w := &walker{
		manifest: m,
		isRoot:   isRoot,
		visited:  map[string]bool{},
		styles:   map[string]bool{},
		preloads: map[string]bool{},
		out:      out,
	}
	for _, c := range roots {
		if err := w.walk(c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type walker struct {
	manifest *manifest.Manifest
	isRoot   map[string]bool
	visited  map[string]bool
	styles   map[string]bool
	preloads map[string]bool
	out      *ResolvedAssets
}

// walk is a preorder depth-first traversal using an explicit stack, so the
// depth of an import chain is bounded by memory rather than the call stack.
// Children are pushed in reverse to pop them in manifest order.
func (w *walker) walk(root *manifest.Chunk) error {
	stack := []*manifest.Chunk{root}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.visited[c.Key] {
			continue
		}
		w.visited[c.Key] = true

		for _, css := range c.CSS {
			if !w.styles[css] {
				w.styles[css] = true
				w.out.Styles = append(w.out.Styles, css)
			}
		}
		if !w.isRoot[c.Key] && isModule(c.File) && !w.preloads[c.File] {
			w.preloads[c.File] = true
			w.out.Preloads = append(w.out.Preloads, c.File)
		}

		for i := len(c.Imports) - 1; i >= 0; i-- {
			key := c.Imports[i]
			dep, ok := w.manifest.Lookup(key)
			if !ok {
				return fmt.Errorf("%w: %s imports %s", ErrDanglingReference, c.Key, key)
			}
			if !w.visited[key] {
				stack = append(stack, dep)
			}
		}
	}
	return nil
}

func isModule(file string) bool {
	switch path.Ext(file) {
	case ".js", ".mjs":
		return true
	}
	return false
}
