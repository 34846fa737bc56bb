package project

import "github.com/confsift/confsift/internal/conf"

// IndexRecord is the typed projection of an indexes.conf stanza. Only the
// stanza name is lifted; every setting stays verbatim in KV because index
// values mix byte sizes, retention periods, paths and Splunk variables
// such as $SPLUNK_DB, and coercing them here would lose information.
type IndexRecord struct {
	Name string            `json:"name" yaml:"name"`
	KV   map[string]string `json:"kv,omitempty" yaml:"kv,omitempty"`
	Meta `yaml:",inline"`
}

// RecordKind implements Record.
func (IndexRecord) RecordKind() Kind { return KindIndexes }

// Indexes projects indexes.conf stanzas.
type Indexes struct{}

// Kind implements Projector.
func (Indexes) Kind() Kind { return KindIndexes }

// Project lifts the stanza name and keeps all keys in KV untouched.
func (Indexes) Project(st *conf.Stanza, runID string) Record {
	return IndexRecord{
		Name: st.Name,
		KV:   remainder(st),
		Meta: metaFor(st.Provenance, runID),
	}
}
