package conf

import "fmt"

// EncodingError is the fatal error returned when input is not valid UTF-8.
// No partial stanza list is produced; the whole file is rejected.
type EncodingError struct {
	Offset int // byte offset of the first invalid sequence
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("input is not valid UTF-8 (first invalid byte at offset %d)", e.Offset)
}

// HeaderError is the fatal error returned when a line opens a stanza header
// with '[' but no unescaped closing bracket exists even after continuation
// joining.
type HeaderError struct {
	Line int
	Text string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("unterminated stanza header on line %d: %q", e.Line, e.Text)
}
