// Package provenance derives app/scope/layer metadata from a conf file's
// path. The extraction is a pure function of the path string and is
// independent of the file's contents.
package provenance

import "strings"

// Layer and scope values a path can expose.
const (
	LayerSystem = "system"
	LayerApp    = "app"

	ScopeLocal   = "local"
	ScopeDefault = "default"
)

// Provenance places a conf file in the Splunk deployment hierarchy.
// Fields other than SourcePath are nil when the path does not expose them;
// nothing is ever inferred or guessed.
type Provenance struct {
	// SourcePath is the path exactly as the caller supplied it. It does
	// not have to resolve on any filesystem.
	SourcePath string
	// App is the directory segment following an "apps" component.
	App *string
	// Scope is "local" or "default" when the file's immediate parent
	// directory is named that way.
	Scope *string
	// Layer is "system" when the path traverses a system directory,
	// "app" when an app was found, nil otherwise.
	Layer *string
}

// Extract derives Provenance from path. Unrecognized path shapes produce
// absent fields, never errors.
func Extract(path string) Provenance {
	p := Provenance{SourcePath: path}
	segs := splitPath(path)

	system := false
	for i, seg := range segs {
		if seg == "system" {
			system = true
		}
		if seg == "apps" && i+1 < len(segs) && p.App == nil {
			app := segs[i+1]
			p.App = &app
		}
	}

	if len(segs) >= 2 {
		if parent := segs[len(segs)-2]; parent == ScopeLocal || parent == ScopeDefault {
			scope := parent
			p.Scope = &scope
		}
	}

	switch {
	case system:
		layer := LayerSystem
		p.Layer = &layer
	case p.App != nil:
		layer := LayerApp
		p.Layer = &layer
	}
	return p
}

// splitPath splits on both separator styles since the path is caller
// supplied text, not a local filesystem path. Empty segments are dropped.
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}
