// Package vite turns requested Vite entrypoints into the HTML tags a page
// needs, either pointing at the dev server or at the hashed files listed in
// a production build manifest.
package vite

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmeg/vitelink/config"
	"github.com/bmeg/vitelink/logger"
	"github.com/bmeg/vitelink/manifest"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Vite holds a fixed Mode and renders tags for it. It is safe for
// concurrent use.
type Vite struct {
	mode  Mode
	base  string
	cache *lru.Cache[string, string]
}

type Option func(*Vite) error

// WithCache keeps up to size rendered production fragments, keyed by the
// requested entries. Zero disables caching.
func WithCache(size int) Option {
	return func(v *Vite) error {
		if size <= 0 {
			v.cache = nil
			return nil
		}
		c, err := lru.New[string, string](size)
		if err != nil {
			return err
		}
		v.cache = c
		return nil
	}
}

// WithBase prefixes production asset paths with the public base the build
// is served from, e.g. "/" or "https://cdn.example.com/".
func WithBase(base string) Option {
	return func(v *Vite) error {
		v.base = base
		return nil
	}
}

// New validates the mode and builds a Vite. A bad dev server origin is
// reported here rather than on the first request.
func New(mode Mode, opts ...Option) (*Vite, error) {
	switch m := mode.(type) {
	case Development:
		origin, err := normalizeOrigin(m.ServerOrigin)
		if err != nil {
			return nil, err
		}
		mode = Development{ServerOrigin: origin}
	case Production:
		if m.Manifest == nil {
			return nil, fmt.Errorf("%w: production mode without a manifest", ErrInvalidMode)
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidMode, mode)
	}
	v := &Vite{mode: mode}
	for _, o := range opts {
		if err := o(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// NewFromConfig builds a Vite from configuration, reading the manifest in
// production mode.
func NewFromConfig(ctx context.Context, cfg *config.Config) (*Vite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Mode == config.Development {
		logger.Debug("Using dev server", "host", cfg.Host)
		return New(Development{ServerOrigin: cfg.Host}, WithBase(cfg.Base))
	}

	var m *manifest.Manifest
	var err error
	if cfg.ManifestSource != "" {
		m, err = manifest.Parse([]byte(cfg.ManifestSource))
	} else {
		m, err = manifest.LoadFile(ctx, cfg.ManifestPath)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded manifest", "path", cfg.ManifestPath, "chunks", m.Len())
	return New(Production{Manifest: m}, WithCache(cfg.CacheSize), WithBase(cfg.Base))
}

func (v *Vite) Mode() Mode {
	return v.mode
}

func (v *Vite) IsDevelopment() bool {
	_, ok := v.mode.(Development)
	return ok
}

// Resolve resolves entries in the configured mode, applying the public base
// to production paths.
func (v *Vite) Resolve(requested []string) (*ResolvedAssets, error) {
	assets, err := Resolve(requested, v.mode)
	if err != nil {
		return nil, err
	}
	if v.base != "" && !v.IsDevelopment() {
		assets = withBase(assets, v.base)
	}
	return assets, nil
}

// ResolveAndRender is the call template integrations make: resolve the
// entries and render their tags.
func (v *Vite) ResolveAndRender(requested []string) (string, error) {
	key := strings.Join(requested, "\x00")
	if v.cache != nil {
		if out, ok := v.cache.Get(key); ok {
			return out, nil
		}
	}
	assets, err := v.Resolve(requested)
	if err != nil {
		logger.Debug("Resolve failed", "entries", requested, "error", err)
		return "", err
	}
	out := Render(assets)
	if v.cache != nil {
		v.cache.Add(key, out)
	}
	return out, nil
}

// ReactRefresh returns the @vitejs/plugin-react preamble in development
// mode and an empty string in production.
func (v *Vite) ReactRefresh() string {
	if d, ok := v.mode.(Development); ok {
		return renderReactRefresh(d.ServerOrigin)
	}
	return ""
}

func withBase(assets *ResolvedAssets, base string) *ResolvedAssets {
	prefix := func(in []string) []string {
		out := make([]string, len(in))
		for i, p := range in {
			out[i] = strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
		}
		return out
	}
	return &ResolvedAssets{
		Client:   assets.Client,
		Scripts:  prefix(assets.Scripts),
		Styles:   prefix(assets.Styles),
		Preloads: prefix(assets.Preloads),
	}
}
