package conf

import "github.com/confsift/confsift/internal/provenance"

// DefaultStanzaName is the name given to the implicit block of settings
// that precedes the first bracketed header in a file.
const DefaultStanzaName = "default"

// Stanza is one configuration block: the bracketed header plus every key
// assignment that followed it, in file order. Instances are built during a
// single parse and never mutated afterwards.
type Stanza struct {
	// Name is the header text verbatim, including characters such as ':'
	// and '/'. The implicit pre-header block is named "default".
	Name string

	// Keys holds the current value of each key. When a key repeats, the
	// last assignment wins.
	Keys map[string]string

	// KeyOrder lists keys exactly as they appeared, repeats included.
	KeyOrder []string

	// History maps each key to every value it was assigned, in file order.
	// Keys[k] is always the last element of History[k].
	History map[string][]string

	// Provenance describes where the defining file sits in the
	// app/scope/layer hierarchy.
	Provenance provenance.Provenance

	// OrderInFile is the zero-based emission index of this stanza among
	// the stanzas of the same file.
	OrderInFile int
}

func newStanza(name string) *Stanza {
	return &Stanza{
		Name:    name,
		Keys:    map[string]string{},
		History: map[string][]string{},
	}
}

func (s *Stanza) setKey(key, value string) {
	s.KeyOrder = append(s.KeyOrder, key)
	s.History[key] = append(s.History[key], value)
	s.Keys[key] = value
}

// Warning records a logical line that matched neither the header nor the
// key/value pattern. Warnings are collected, not raised: the rest of the
// file still parses.
type Warning struct {
	Line int // physical line number the logical line started on, 1-based
	Text string
}

// Result is the complete outcome of parsing one file.
type Result struct {
	Stanzas  []*Stanza
	Warnings []Warning
}
