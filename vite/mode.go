package vite

import "github.com/bmeg/vitelink/manifest"

// Mode decides which resolution runs. It is fixed when a Vite is built and
// never changes while requests are served.
type Mode interface {
	isMode()
}

// Development resolves entries to URLs on a running Vite dev server.
type Development struct {
	ServerOrigin string
}

// Production resolves entries through a build manifest.
type Production struct {
	Manifest *manifest.Manifest
}

func (Development) isMode() {}
func (Production) isMode()  {}
