package project

import (
	"strings"

	"github.com/confsift/confsift/internal/conf"
)

// TransformRecord is the typed projection of a transforms.conf stanza.
type TransformRecord struct {
	Stanza  string  `json:"stanza" yaml:"stanza"`
	DestKey *string `json:"dest_key,omitempty" yaml:"dest_key,omitempty"`
	Regex   *string `json:"regex,omitempty" yaml:"regex,omitempty"`
	Format  *string `json:"format,omitempty" yaml:"format,omitempty"`

	// WritesMetaIndex marks transforms that rewrite the event's index
	// (DEST_KEY = _MetaData:Index, compared case-insensitively).
	WritesMetaIndex bool `json:"writes_meta_index" yaml:"writes_meta_index"`
	// WritesMetaSourcetype marks transforms that rewrite the sourcetype
	// (DEST_KEY = MetaData:Sourcetype or _MetaData:Sourcetype).
	WritesMetaSourcetype bool `json:"writes_meta_sourcetype" yaml:"writes_meta_sourcetype"`

	KV   map[string]string `json:"kv,omitempty" yaml:"kv,omitempty"`
	Meta `yaml:",inline"`
}

// RecordKind implements Record.
func (TransformRecord) RecordKind() Kind { return KindTransforms }

// Transforms projects transforms.conf stanzas.
type Transforms struct{}

// Kind implements Projector.
func (Transforms) Kind() Kind { return KindTransforms }

// Project extracts DEST_KEY, REGEX and FORMAT and derives the metadata
// rewrite flags from the destination key.
func (Transforms) Project(st *conf.Stanza, runID string) Record {
	rec := TransformRecord{
		Stanza:  st.Name,
		DestKey: take(st, "DEST_KEY"),
		Regex:   take(st, "REGEX"),
		Format:  take(st, "FORMAT"),
		Meta:    metaFor(st.Provenance, runID),
	}
	if rec.DestKey != nil {
		dest := *rec.DestKey
		rec.WritesMetaIndex = strings.EqualFold(dest, "_MetaData:Index")
		rec.WritesMetaSourcetype = strings.EqualFold(dest, "MetaData:Sourcetype") ||
			strings.EqualFold(dest, "_MetaData:Sourcetype")
	}
	rec.KV = remainder(st, "DEST_KEY", "REGEX", "FORMAT")
	return rec
}
