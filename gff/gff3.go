package gff

import (
	"fmt"
	"net/url"
	"strings"
)

func init() {
	RegisterDialect(gff3Dialect{})
}

// gff3Dialect parses the GFF3 attribute column: semicolon-separated
// key=value pairs, values percent-encoded, multi-valued via commas.
type gff3Dialect struct{}

func (gff3Dialect) Version() Version { return Version3 }

func (gff3Dialect) Attributes(field string) (Attributes, error) {
	attrs := Attributes{}
	for _, pair := range strings.Split(field, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, raw, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("malformed key=value pair %q", pair)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("empty attribute key in %q", pair)
		}
		for _, v := range strings.Split(raw, ",") {
			unescaped, err := url.PathUnescape(v)
			if err != nil {
				return nil, fmt.Errorf("bad percent-encoding in value %q: %v", v, err)
			}
			attrs.Add(key, unescaped)
		}
	}
	return attrs, nil
}

// Identify takes the feature identifier from the ID attribute and parent
// references from the Parent attribute, in declared order.
func (gff3Dialect) Identify(rec *FeatureRecord) error {
	rec.ID = rec.Attributes.Get("ID")
	if parents := rec.Attributes["Parent"]; len(parents) > 0 {
		rec.Parents = append([]string(nil), parents...)
	}
	return nil
}
