package project

import "github.com/confsift/confsift/internal/conf"

// Servers is the forwarding target set of an output group.
type Servers struct {
	// Hosts are the comma-separated entries of the server key.
	Hosts []string `json:"hosts,omitempty" yaml:"hosts,omitempty"`
	URI   *string  `json:"uri,omitempty" yaml:"uri,omitempty"`
	// TargetGroups are the comma-separated entries of the target_group key.
	TargetGroups []string `json:"target_groups,omitempty" yaml:"target_groups,omitempty"`
}

// OutputRecord is the typed projection of an outputs.conf stanza.
type OutputRecord struct {
	GroupName string `json:"group_name" yaml:"group_name"`
	// Servers is nil when none of server, uri or target_group is set,
	// never an empty structure.
	Servers *Servers          `json:"servers,omitempty" yaml:"servers,omitempty"`
	KV      map[string]string `json:"kv,omitempty" yaml:"kv,omitempty"`
	Meta    `yaml:",inline"`
}

// RecordKind implements Record.
func (OutputRecord) RecordKind() Kind { return KindOutputs }

// Outputs projects outputs.conf stanzas.
type Outputs struct{}

// Kind implements Projector.
func (Outputs) Kind() Kind { return KindOutputs }

// Project lifts the stanza name as the group name and folds server, uri
// and target_group into the nested Servers structure.
func (Outputs) Project(st *conf.Stanza, runID string) Record {
	rec := OutputRecord{
		GroupName: st.Name,
		Meta:      metaFor(st.Provenance, runID),
	}
	var srv Servers
	found := false
	if v, ok := st.Keys["server"]; ok {
		srv.Hosts = splitList(v)
		found = true
	}
	if v := take(st, "uri"); v != nil {
		srv.URI = v
		found = true
	}
	if v, ok := st.Keys["target_group"]; ok {
		srv.TargetGroups = splitList(v)
		found = true
	}
	if found {
		rec.Servers = &srv
	}
	rec.KV = remainder(st, "server", "uri", "target_group")
	return rec
}
