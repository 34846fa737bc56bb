package project

import (
	"strings"

	"github.com/confsift/confsift/internal/conf"
)

// InputRecord is the typed projection of an inputs.conf stanza.
type InputRecord struct {
	Stanza     string            `json:"stanza" yaml:"stanza"`
	StanzaType *string           `json:"stanza_type,omitempty" yaml:"stanza_type,omitempty"`
	Index      *string           `json:"index,omitempty" yaml:"index,omitempty"`
	Sourcetype *string           `json:"sourcetype,omitempty" yaml:"sourcetype,omitempty"`
	Disabled   *bool             `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	KV         map[string]string `json:"kv,omitempty" yaml:"kv,omitempty"`
	Meta       `yaml:",inline"`
}

// RecordKind implements Record.
func (InputRecord) RecordKind() Kind { return KindInputs }

// Inputs projects inputs.conf stanzas.
type Inputs struct{}

// Kind implements Projector.
func (Inputs) Kind() Kind { return KindInputs }

// Project extracts index, sourcetype and disabled, derives the input type
// from the stanza name, and leaves every other key in KV. An unrecognized
// disabled value stays in KV so nothing is lost.
func (Inputs) Project(st *conf.Stanza, runID string) Record {
	rec := InputRecord{
		Stanza:     st.Name,
		StanzaType: stanzaType(st.Name),
		Index:      take(st, "index"),
		Sourcetype: take(st, "sourcetype"),
		Meta:       metaFor(st.Provenance, runID),
	}
	claimed := []string{"index", "sourcetype"}
	if raw, ok := st.Keys["disabled"]; ok {
		if b := parseBool(raw); b != nil {
			rec.Disabled = b
			claimed = append(claimed, "disabled")
		}
	}
	rec.KV = remainder(st, claimed...)
	return rec
}

// stanzaType is the scheme portion of an input stanza name, "monitor" in
// "monitor:///var/log/app.log". Names without a scheme separator are their
// own type; the implicit default block has none.
func stanzaType(name string) *string {
	if name == conf.DefaultStanzaName {
		return nil
	}
	t := name
	if i := strings.Index(name, "://"); i >= 0 {
		t = name[:i]
	}
	return &t
}
