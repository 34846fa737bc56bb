package conf

import (
	"strings"
	"unicode/utf8"
)

// Line is one logical line after continuation joining, comment removal and
// whitespace trimming.
type Line struct {
	// Number is the physical line the logical line started on, 1-based.
	Number int
	Text   string
}

// Normalize turns raw conf text into the logical line sequence the parser
// consumes. Continuation joining happens before any other interpretation,
// so a key=value continued across physical lines arrives as one logical
// line, and a joined line starting with '#' is still a comment.
//
// Inline trailing comments are not stripped: a '#' after the first
// non-whitespace character is data.
func Normalize(text string) ([]Line, error) {
	if idx := firstInvalidUTF8(text); idx >= 0 {
		return nil, &EncodingError{Offset: idx}
	}

	physical := strings.Split(text, "\n")
	var lines []Line
	for i := 0; i < len(physical); i++ {
		start := i
		raw := strings.TrimSuffix(physical[i], "\r")
		for endsInContinuation(raw) && i+1 < len(physical) {
			i++
			// Drop the joining backslash and concatenate with no
			// injected separator.
			raw = raw[:len(raw)-1] + strings.TrimSuffix(physical[i], "\r")
		}
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, Line{Number: start + 1, Text: trimmed})
	}
	return lines, nil
}

// endsInContinuation reports whether raw ends in an odd number of
// backslashes. An even run is escaped backslash data, not a continuation.
func endsInContinuation(raw string) bool {
	n := 0
	for i := len(raw) - 1; i >= 0 && raw[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func firstInvalidUTF8(s string) int {
	if utf8.ValidString(s) {
		return -1
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
