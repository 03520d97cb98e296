// Package manifest decodes the build manifest written by Vite
// (`.vite/manifest.json`) into an immutable lookup table of chunks.
//
// See https://vitejs.dev/guide/backend-integration for the format.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

type Error string

func (e Error) Error() string {
	return string(e)
}

var ErrMalformed = Error("malformed manifest")

// Chunk is one entry of the manifest, keyed by the source path it was built from.
type Chunk struct {
	Key            string
	File           string
	Name           string
	Src            string
	CSS            []string
	Assets         []string
	Imports        []string
	DynamicImports []string
	IsEntry        bool
	IsDynamicEntry bool
}

// chunkRecord mirrors the JSON document. File is a pointer so a missing
// field can be told apart from an empty one.
type chunkRecord struct {
	File           *string  `json:"file"`
	Name           string   `json:"name"`
	Src            string   `json:"src"`
	CSS            []string `json:"css"`
	Assets         []string `json:"assets"`
	Imports        []string `json:"imports"`
	DynamicImports []string `json:"dynamicImports"`
	IsEntry        bool     `json:"isEntry"`
	IsDynamicEntry bool     `json:"isDynamicEntry"`
}

// Manifest maps source paths to chunks. It is never modified after Parse
// returns, so it can be shared between goroutines without locking.
type Manifest struct {
	chunks map[string]*Chunk
}

// Parse decodes a manifest document. Imports are not checked against the
// manifest keys here; a dangling import only matters once a resolution
// actually walks it.
func Parse(raw []byte) (*Manifest, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformed)
	}
	records := map[string]json.RawMessage{}
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := &Manifest{chunks: make(map[string]*Chunk, len(records))}
	for _, k := range keys {
		data := bytes.TrimSpace(records[k])
		if len(data) == 0 || data[0] != '{' {
			return nil, fmt.Errorf("%w: entry %q is not an object", ErrMalformed, k)
		}
		rec := chunkRecord{}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %s", ErrMalformed, k, err)
		}
		if rec.File == nil || *rec.File == "" {
			return nil, fmt.Errorf("%w: entry %q is missing file", ErrMalformed, k)
		}
		out.chunks[k] = &Chunk{
			Key:            k,
			File:           *rec.File,
			Name:           rec.Name,
			Src:            rec.Src,
			CSS:            orEmpty(rec.CSS),
			Assets:         orEmpty(rec.Assets),
			Imports:        orEmpty(rec.Imports),
			DynamicImports: orEmpty(rec.DynamicImports),
			IsEntry:        rec.IsEntry,
			IsDynamicEntry: rec.IsDynamicEntry,
		}
	}
	return out, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Lookup returns the chunk built from the given source path.
func (m *Manifest) Lookup(key string) (*Chunk, bool) {
	if m == nil {
		return nil, false
	}
	c, ok := m.chunks[key]
	return c, ok
}

func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.chunks)
}

// Keys returns every source path in the manifest, sorted.
func (m *Manifest) Keys() []string {
	out := []string{}
	if m == nil {
		return out
	}
	for k := range m.chunks {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Entries returns the sorted source paths of chunks flagged isEntry.
func (m *Manifest) Entries() []string {
	out := []string{}
	for _, k := range m.Keys() {
		if m.chunks[k].IsEntry {
			out = append(out, k)
		}
	}
	return out
}

// DanglingImport is an imports edge whose target is not a manifest key.
type DanglingImport struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (d DanglingImport) String() string {
	return fmt.Sprintf("%s -> %s", d.From, d.To)
}

// Check lists every dangling import, ordered by importing chunk and then
// by position in its imports list.
func (m *Manifest) Check() []DanglingImport {
	out := []DanglingImport{}
	for _, k := range m.Keys() {
		for _, imp := range m.chunks[k].Imports {
			if _, ok := m.chunks[imp]; !ok {
				out = append(out, DanglingImport{From: k, To: imp})
			}
		}
	}
	return out
}

// Files returns every output path the manifest references (file, css and
// assets of each chunk), deduplicated and sorted.
func (m *Manifest) Files() []string {
	seen := map[string]bool{}
	out := []string{}
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, k := range m.Keys() {
		c := m.chunks[k]
		add(c.File)
		for _, p := range c.CSS {
			add(p)
		}
		for _, p := range c.Assets {
			add(p)
		}
	}
	sort.Strings(out)
	return out
}
