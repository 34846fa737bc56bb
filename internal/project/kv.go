package project

import (
	"strings"

	"github.com/confsift/confsift/internal/conf"
)

// remainder copies the stanza's current values minus the claimed keys.
// It returns nil, not an empty map, when nothing is left.
func remainder(st *conf.Stanza, claimed ...string) map[string]string {
	kv := make(map[string]string, len(st.Keys))
	for k, v := range st.Keys {
		kv[k] = v
	}
	for _, k := range claimed {
		delete(kv, k)
	}
	if len(kv) == 0 {
		return nil
	}
	return kv
}

// take extracts the current value of key, nil when the key is unset.
func take(st *conf.Stanza, key string) *string {
	v, ok := st.Keys[key]
	if !ok {
		return nil
	}
	return &v
}

// parseBool interprets Splunk's boolean spellings case-insensitively.
// nil means unrecognized, which callers treat as "leave the raw value in
// kv and the typed field absent".
func parseBool(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		b := true
		return &b
	case "0", "false", "no":
		b := false
		return &b
	}
	return nil
}

// splitList splits a comma-separated value, trimming whitespace and
// dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
