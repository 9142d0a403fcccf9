package ontology

import "fmt"

// UnsupportedTypeError reports a lookup against the fixed ontology
// mapping that has no entry. It is raised before any graph output is
// produced.
type UnsupportedTypeError struct {
	Kind  string // "feature type", "strand" or "relation"
	Value string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported %s %q", e.Kind, e.Value)
}
