package project

import "fmt"

// Kind identifies which conf file family a stanza came from. The set is
// closed: dispatch happens on this explicit tag, never on runtime type
// inspection.
type Kind string

const (
	KindInputs     Kind = "inputs"
	KindTransforms Kind = "transforms"
	KindIndexes    Kind = "indexes"
	KindOutputs    Kind = "outputs"
)

// ParseKind validates a kind spelled as text, as found in scan profiles.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindInputs, KindTransforms, KindIndexes, KindOutputs:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown conf kind %q", s)
}

// defaultFileKinds maps the well-known conf filenames to their kinds.
var defaultFileKinds = map[string]Kind{
	"inputs.conf":     KindInputs,
	"transforms.conf": KindTransforms,
	"indexes.conf":    KindIndexes,
	"outputs.conf":    KindOutputs,
}
