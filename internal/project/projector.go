package project

import (
	"fmt"
	"path/filepath"

	"github.com/confsift/confsift/internal/conf"
	"github.com/confsift/confsift/internal/provenance"
)

// Record is the common surface of all projected record variants.
type Record interface {
	RecordKind() Kind
}

// Projector turns one parsed stanza into a typed record. Implementations
// must be pure: identical input yields identical output, and no state is
// shared across invocations.
type Projector interface {
	Kind() Kind
	Project(st *conf.Stanza, runID string) Record
}

// Meta is copied onto every record: the caller-owned run identifier plus
// the source stanza's provenance. The projector only threads runID
// through; it attaches no meaning to it.
type Meta struct {
	RunID      string  `json:"run_id" yaml:"run_id"`
	SourcePath string  `json:"source_path" yaml:"source_path"`
	App        *string `json:"app,omitempty" yaml:"app,omitempty"`
	Scope      *string `json:"scope,omitempty" yaml:"scope,omitempty"`
	Layer      *string `json:"layer,omitempty" yaml:"layer,omitempty"`
}

// metaFor deep-copies the provenance so records never alias their source
// stanza.
func metaFor(p provenance.Provenance, runID string) Meta {
	return Meta{
		RunID:      runID,
		SourcePath: p.SourcePath,
		App:        cloneString(p.App),
		Scope:      cloneString(p.Scope),
		Layer:      cloneString(p.Layer),
	}
}

// Registry holds the projector for each conf kind plus the filename→kind
// dispatch table. Selecting which projector handles which file is the
// caller's concern; a projector only ever sees stanzas of its own kind.
type Registry struct {
	projectors map[Kind]Projector
	fileKinds  map[string]Kind
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		projectors: make(map[Kind]Projector),
		fileKinds:  make(map[string]Kind),
	}
}

// Default returns a registry with every built-in projector registered and
// the well-known conf filenames mapped.
func Default() *Registry {
	r := NewRegistry()
	r.Register(Inputs{})
	r.Register(Transforms{})
	r.Register(Indexes{})
	r.Register(Outputs{})
	for name, kind := range defaultFileKinds {
		r.MapFile(name, kind)
	}
	return r
}

// Register adds a projector. Registering the same kind twice is a
// programmer error and panics.
func (r *Registry) Register(p Projector) {
	if _, exists := r.projectors[p.Kind()]; exists {
		panic(fmt.Sprintf("projector for conf kind %q already registered", p.Kind()))
	}
	r.projectors[p.Kind()] = p
}

// ForKind returns the projector registered for kind.
func (r *Registry) ForKind(kind Kind) (Projector, bool) {
	p, ok := r.projectors[kind]
	return p, ok
}

// MapFile associates a conf file base name with a kind, overriding any
// previous association.
func (r *Registry) MapFile(name string, kind Kind) {
	r.fileKinds[name] = kind
}

// KindForFile resolves the conf kind for a path from its base name.
// Unmapped files have no kind and are simply not projected.
func (r *Registry) KindForFile(path string) (Kind, bool) {
	kind, ok := r.fileKinds[filepath.Base(path)]
	return kind, ok
}
