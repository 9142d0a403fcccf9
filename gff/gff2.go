package gff

import (
	"fmt"
	"strings"
)

func init() {
	RegisterDialect(gff2Dialect{})
}

// gff2Dialect parses the GFF2 group column: semicolon-separated
// space-delimited "key value" pairs, values optionally double-quoted.
type gff2Dialect struct{}

func (gff2Dialect) Version() Version { return Version2 }

func (gff2Dialect) Attributes(field string) (Attributes, error) {
	attrs := Attributes{}
	for _, pair := range strings.Split(field, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, raw, found := strings.Cut(pair, " ")
		if !found {
			// A bare token is a flag-style attribute.
			attrs.Add(pair, "")
			continue
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, fmt.Errorf("missing value for attribute %q", key)
		}
		attrs.Add(key, strings.Trim(raw, `"`))
	}
	return attrs, nil
}

// transcriptTypes are the feature types grouped by transcript_id in GFF2
// annotations.
var transcriptTypes = map[string]struct{}{
	"mRNA":            {},
	"prim_transcript": {},
}

// Identify derives identifiers from GFF2 grouping tags. GFF2 has no ID or
// Parent attributes of its own, so genes are identified by gene_id,
// transcripts by transcript_id grouped under their gene, and any other
// feature is grouped under its transcript (or gene when no transcript tag
// is present).
func (gff2Dialect) Identify(rec *FeatureRecord) error {
	if id := rec.Attributes.Get("ID"); id != "" {
		rec.ID = id
		if parents := rec.Attributes["Parent"]; len(parents) > 0 {
			rec.Parents = append([]string(nil), parents...)
		}
		return nil
	}

	geneID := rec.Attributes.Get("gene_id")
	transcriptID := rec.Attributes.Get("transcript_id")

	switch {
	case rec.Type == "gene":
		rec.ID = geneID
	case isTranscriptType(rec.Type):
		rec.ID = transcriptID
		if geneID != "" {
			rec.Parents = []string{geneID}
		}
	default:
		switch {
		case transcriptID != "":
			rec.Parents = []string{transcriptID}
		case geneID != "":
			rec.Parents = []string{geneID}
		}
	}
	return nil
}

func isTranscriptType(typ string) bool {
	_, ok := transcriptTypes[typ]
	return ok
}
