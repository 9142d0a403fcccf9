// Package gff parses Generic Feature Format (GFF) version 2 and 3 files
// into normalized feature records.
//
// A Reader consumes one text source; multiple sources are concatenated by
// ParseFiles into a single logical stream so features may reference parents
// declared in another file. Parent references are kept as raw identifier
// strings since forward references are legal in GFF.
package gff

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Strand is the DNA strand of a feature.
type Strand string

// Strand values permitted by the GFF column seven.
const (
	// StrandForward is the forward (+) strand.
	StrandForward Strand = "+"

	// StrandReverse is the reverse (-) strand.
	StrandReverse Strand = "-"

	// StrandUnknown means the feature is stranded but the strand is not
	// known (?).
	StrandUnknown Strand = "?"

	// StrandNone means strandedness is not applicable (.).
	StrandNone Strand = "."
)

// ParseStrand validates a strand column value.
func ParseStrand(s string) (Strand, bool) {
	switch Strand(s) {
	case StrandForward, StrandReverse, StrandUnknown, StrandNone:
		return Strand(s), true
	}
	return "", false
}

// NoPhase marks a record without a CDS phase.
const NoPhase = -1

// Attributes holds the free-form attribute column as a multi-valued map.
type Attributes map[string][]string

// Get returns the first value for key, or "" when absent.
func (a Attributes) Get(key string) string {
	if vs := a[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Add appends a value under key.
func (a Attributes) Add(key, value string) {
	a[key] = append(a[key], value)
}

// Equal reports whether two attribute maps hold the same keys and ordered
// values.
func (a Attributes) Equal(b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for k, vs := range a {
		if !slices.Equal(vs, b[k]) {
			return false
		}
	}
	return true
}

// Keys returns the attribute keys in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FeatureRecord is one normalized GFF feature.
//
// Coordinates are 1-based inclusive with Start <= End. Parents holds raw
// parent identifiers in declaration order; resolution against the feature
// store happens after all input is ingested.
type FeatureRecord struct {
	ID         string
	Type       string
	SeqID      string
	Source     string
	Start      int
	End        int
	Strand     Strand
	Phase      int
	Parents    []string
	Attributes Attributes
}

// Equal reports whether two records carry identical content. The store uses
// it to accept idempotent re-insertion of the same record.
func (r *FeatureRecord) Equal(o *FeatureRecord) bool {
	if o == nil {
		return r == nil
	}
	return r.ID == o.ID &&
		r.Type == o.Type &&
		r.SeqID == o.SeqID &&
		r.Source == o.Source &&
		r.Start == o.Start &&
		r.End == o.End &&
		r.Strand == o.Strand &&
		r.Phase == o.Phase &&
		slices.Equal(r.Parents, o.Parents) &&
		r.Attributes.Equal(o.Attributes)
}

// Label returns the human-readable label used in the RDF graph.
func (r *FeatureRecord) Label() string {
	return r.Type + " " + r.ID
}

func (r *FeatureRecord) String() string {
	return fmt.Sprintf("%s %s %s:%d-%d(%s)", r.Type, r.ID, r.SeqID, r.Start, r.End, r.Strand)
}

// syntheticID builds a deterministic identifier for records that do not
// declare one. Such records cannot be referenced as parents.
func syntheticID(typ, seqid string, start, end int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%s:%d-%d", typ, seqid, start, end)
	return sb.String()
}
