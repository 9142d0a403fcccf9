package gff

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Version identifies a GFF syntax generation.
type Version int

// Supported GFF versions.
const (
	// VersionAuto detects the version from the ##gff-version pragma,
	// falling back to version 3.
	VersionAuto Version = 0

	// Version2 is GFF2 / GTF-style attribute syntax.
	Version2 Version = 2

	// Version3 is GFF3 attribute syntax.
	Version3 Version = 3
)

// Dialect handles the version-specific parts of a GFF line: the attribute
// column syntax and the derivation of feature and parent identifiers.
type Dialect interface {
	// Version returns the GFF version this dialect handles.
	Version() Version

	// Attributes parses the ninth column into a multi-valued map.
	Attributes(field string) (Attributes, error)

	// Identify assigns rec.ID and rec.Parents from the parsed attributes.
	Identify(rec *FeatureRecord) error
}

var (
	dialectMu sync.RWMutex
	dialects  = make(map[Version]Dialect)
)

// RegisterDialect adds a dialect to the registry. The built-in GFF2 and
// GFF3 dialects register themselves.
func RegisterDialect(d Dialect) {
	dialectMu.Lock()
	defer dialectMu.Unlock()
	dialects[d.Version()] = d
}

// DialectFor returns the dialect for a version.
func DialectFor(v Version) (Dialect, bool) {
	dialectMu.RLock()
	defer dialectMu.RUnlock()
	d, ok := dialects[v]
	return d, ok
}

// Column indices of a GFF line.
const (
	colSeqID = iota
	colSource
	colType
	colStart
	colEnd
	colScore
	colStrand
	colPhase
	colAttributes

	numColumns
)

// Reader reads feature records from one GFF text source.
type Reader struct {
	s       *bufio.Scanner
	file    string
	line    int
	version Version
	dialect Dialect
	types   map[string]struct{}
	done    bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithVersion declares the GFF version explicitly instead of auto-detecting
// it from the ##gff-version pragma.
func WithVersion(v Version) Option {
	return func(r *Reader) { r.version = v }
}

// WithTypes restricts the accepted feature types. A record whose type is
// not in the set is a hard ParseError, never silently dropped.
func WithTypes(types []string) Option {
	return func(r *Reader) {
		r.types = make(map[string]struct{}, len(types))
		for _, t := range types {
			r.types[t] = struct{}{}
		}
	}
}

// NewReader returns a Reader over r. The file name is used in error
// messages only.
func NewReader(r io.Reader, file string, opts ...Option) *Reader {
	rd := &Reader{
		s:       bufio.NewScanner(r),
		file:    file,
		version: VersionAuto,
	}
	rd.s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// Read returns the next feature record, or io.EOF when the source is
// exhausted. Comment and blank lines are skipped; directives are handled
// in place.
func (r *Reader) Read() (*FeatureRecord, error) {
	if r.done {
		return nil, io.EOF
	}
	for r.s.Scan() {
		r.line++
		line := strings.TrimRight(r.s.Text(), "\r\n")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			if err := r.directive(trimmed); err != nil {
				return nil, err
			}
			if r.done {
				return nil, io.EOF
			}
			continue
		}
		return r.parseLine(line)
	}
	if err := r.s.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", r.file, err)
	}
	r.done = true
	return nil, io.EOF
}

// ReadAll reads records until EOF.
func (r *Reader) ReadAll() ([]*FeatureRecord, error) {
	var recs []*FeatureRecord
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

// directive interprets ## pragma lines. The version pragma resolves
// VersionAuto; a FASTA section terminates the feature stream.
func (r *Reader) directive(line string) error {
	switch {
	case strings.HasPrefix(line, "##gff-version"):
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil
		}
		v, err := strconv.Atoi(strings.SplitN(fields[1], ".", 2)[0])
		if err != nil {
			return parseErrorf(r.file, r.line, "malformed gff-version pragma %q", line)
		}
		declared := Version(v)
		if declared != Version2 && declared != Version3 {
			return parseErrorf(r.file, r.line, "unsupported GFF version %d", v)
		}
		if r.version == VersionAuto {
			r.version = declared
		}
	case strings.HasPrefix(line, "##FASTA"):
		r.done = true
	}
	return nil
}

func (r *Reader) parseLine(line string) (*FeatureRecord, error) {
	if r.dialect == nil {
		if r.version == VersionAuto {
			r.version = Version3
		}
		d, ok := DialectFor(r.version)
		if !ok {
			return nil, parseErrorf(r.file, r.line, "no dialect registered for GFF version %d", r.version)
		}
		r.dialect = d
	}

	cols := strings.Split(line, "\t")
	if len(cols) != numColumns && len(cols) != numColumns-1 {
		return nil, parseErrorf(r.file, r.line, "expected %d tab-delimited columns, got %d", numColumns, len(cols))
	}

	start, err := strconv.Atoi(cols[colStart])
	if err != nil {
		return nil, parseErrorf(r.file, r.line, "non-numeric start coordinate %q", cols[colStart])
	}
	end, err := strconv.Atoi(cols[colEnd])
	if err != nil {
		return nil, parseErrorf(r.file, r.line, "non-numeric end coordinate %q", cols[colEnd])
	}
	if start < 1 {
		return nil, parseErrorf(r.file, r.line, "start coordinate %d is not 1-based", start)
	}
	if start > end {
		return nil, parseErrorf(r.file, r.line, "reversed coordinates %d > %d", start, end)
	}

	strand, ok := ParseStrand(cols[colStrand])
	if !ok {
		return nil, parseErrorf(r.file, r.line, "invalid strand %q", cols[colStrand])
	}

	typ := cols[colType]
	if r.types != nil {
		if _, ok := r.types[typ]; !ok {
			return nil, parseErrorf(r.file, r.line, "unsupported feature type %q", typ)
		}
	}

	phase, err := parsePhase(cols[colPhase], typ)
	if err != nil {
		return nil, parseErrorf(r.file, r.line, "%v", err)
	}

	rec := &FeatureRecord{
		Type:       typ,
		SeqID:      cols[colSeqID],
		Source:     cols[colSource],
		Start:      start,
		End:        end,
		Strand:     strand,
		Phase:      phase,
		Attributes: Attributes{},
	}

	if len(cols) == numColumns && cols[colAttributes] != "" && cols[colAttributes] != "." {
		attrs, err := r.dialect.Attributes(cols[colAttributes])
		if err != nil {
			return nil, parseErrorf(r.file, r.line, "attribute column: %v", err)
		}
		rec.Attributes = attrs
	}

	if err := r.dialect.Identify(rec); err != nil {
		return nil, parseErrorf(r.file, r.line, "%v", err)
	}
	if rec.ID == "" {
		rec.ID = syntheticID(rec.Type, rec.SeqID, rec.Start, rec.End)
	}
	return rec, nil
}

// parsePhase interprets the eighth column. Phase is recorded for CDS
// features only; other types carry NoPhase even when the column is set.
func parsePhase(field, typ string) (int, error) {
	if field == "" || field == "." {
		return NoPhase, nil
	}
	p, err := strconv.Atoi(field)
	if err != nil || p < 0 || p > 2 {
		return NoPhase, fmt.Errorf("invalid phase %q", field)
	}
	if typ != "CDS" {
		return NoPhase, nil
	}
	return p, nil
}

// ParseFiles reads every path as one logical stream: records from later
// files may reference parents declared in earlier ones and vice versa,
// provided identifiers stay globally unique.
func ParseFiles(paths []string, opts ...Option) ([]*FeatureRecord, error) {
	var all []*FeatureRecord
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open GFF file: %w", err)
		}
		recs, err := NewReader(f, path, opts...).ReadAll()
		f.Close()
		if err != nil {
			return nil, err
		}
		all = append(all, recs...)
	}
	return all, nil
}
