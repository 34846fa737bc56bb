package conf

import (
	"strings"

	"github.com/confsift/confsift/internal/provenance"
)

// state is the parser's position relative to the first bracketed header.
type state int

const (
	// noStanzaYet means no header has been seen; assignments accumulate
	// into the implicit default block.
	noStanzaYet state = iota
	// inStanza means a bracketed header opened the current stanza.
	inStanza
)

// Parse runs the stanza state machine over text and returns the ordered
// stanza list together with any accumulated warnings. sourcePath is used
// only to derive provenance; it does not have to resolve on a filesystem.
//
// Fatal conditions are *EncodingError and *HeaderError; on either, no
// partial result is returned. Every other malformed line degrades to a
// Warning and parsing continues.
func Parse(text, sourcePath string) (*Result, error) {
	lines, err := Normalize(text)
	if err != nil {
		return nil, err
	}

	prov := provenance.Extract(sourcePath)
	res := &Result{}
	st := noStanzaYet
	cur := newStanza(DefaultStanzaName)
	order := 0

	emit := func(s *Stanza) {
		s.Provenance = prov
		s.OrderInFile = order
		order++
		res.Stanzas = append(res.Stanzas, s)
	}

	for _, ln := range lines {
		if strings.HasPrefix(ln.Text, "[") {
			name, terminated, clean := parseHeader(ln.Text)
			if !terminated {
				return nil, &HeaderError{Line: ln.Number, Text: ln.Text}
			}
			if !clean {
				res.Warnings = append(res.Warnings, Warning{Line: ln.Number, Text: ln.Text})
				continue
			}
			// Named stanzas are always emitted, even with zero keys;
			// the implicit default block only becomes a stanza when it
			// captured at least one assignment.
			if st == inStanza || len(cur.KeyOrder) > 0 {
				emit(cur)
			}
			cur = newStanza(name)
			st = inStanza
			continue
		}

		key, value, ok := parseKeyValue(ln.Text)
		if !ok {
			res.Warnings = append(res.Warnings, Warning{Line: ln.Number, Text: ln.Text})
			continue
		}
		cur.setKey(key, value)
	}

	// End of input emits the current stanza unconditionally: an empty or
	// headerless file still yields its implicit default block.
	emit(cur)
	return res, nil
}

// parseHeader inspects a '['-led line. terminated is false when no
// unescaped closing bracket exists at all, which is fatal. clean is false
// when the bracket closes before the end of the line; such a line matches
// neither syntax pattern and is demoted to a warning.
//
// The returned name is the text between the brackets verbatim, escape
// backslashes included.
func parseHeader(text string) (name string, terminated, clean bool) {
	inner := text[1:]
	escaped := false
	for i := 0; i < len(inner); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch inner[i] {
		case '\\':
			escaped = true
		case ']':
			return inner[:i], true, i == len(inner)-1
		}
	}
	return "", false, false
}

// parseKeyValue splits a logical line at its first '='. The key must be
// non-empty after trimming; the value may be empty and may contain
// anything, '=' and '#' included.
func parseKeyValue(text string) (key, value string, ok bool) {
	eq := strings.IndexByte(text, '=')
	if eq < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(text[:eq])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(text[eq+1:]), true
}
