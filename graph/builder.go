package graph

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/semgff/semgff/gff"
	"github.com/semgff/semgff/integrity"
	"github.com/semgff/semgff/ontology"
	"github.com/semgff/semgff/store"
	"github.com/semgff/semgff/vocabulary"
	"github.com/semgff/semgff/vocabulary/faldo"
	"github.com/semgff/semgff/vocabulary/so"
)

// Provenance carries the dataset-level metadata attached to the genome
// node. Zero-valued fields are omitted from the graph.
type Provenance struct {
	CreatorURI string
	SourceURL  string
	TaxonID    int
}

// Builder walks a feature store and emits the RDF rendition of its
// contents. A Builder is stateless across runs; each Build call
// produces a fresh sealed graph.
type Builder struct {
	mapper *ontology.Mapper
	prov   Provenance
	logger *slog.Logger
	now    func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used for build progress.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) { b.logger = logger }
}

// WithClock overrides the clock used for the dcterms:created stamp.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = now }
}

// NewBuilder returns a Builder minting URIs through mapper.
func NewBuilder(mapper *ontology.Mapper, prov Provenance, opts ...BuilderOption) *Builder {
	b := &Builder{
		mapper: mapper,
		prov:   prov,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build converts the store contents into a sealed graph. Edges the
// integrity report did not retain produce no relation triples; the
// violating features keep their type and location triples. A nil
// report retains every edge. Any unsupported feature type or strand
// aborts the build before output is produced.
func (b *Builder) Build(ctx context.Context, st store.Store, rep *integrity.Report) (*Graph, error) {
	g := New()
	b.addGenome(g)

	n := 0
	for rec, err := range st.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("walking features: %w", err)
		}
		if err := b.addFeature(g, rec); err != nil {
			return nil, err
		}
		n++
	}

	for edge, err := range st.Edges(ctx) {
		if err != nil {
			return nil, fmt.Errorf("walking edges: %w", err)
		}
		if !rep.Retained(edge) {
			continue
		}
		if err := b.addRelation(ctx, g, st, edge); err != nil {
			return nil, err
		}
	}

	g.Seal()
	b.logger.Info("graph built", "features", n, "triples", g.Len())
	return g, nil
}

// addGenome emits the genome node, its dataset provenance and the NCBI
// taxon link.
func (b *Builder) addGenome(g *Graph) {
	genome := IRI(b.mapper.GenomeURI())
	g.Add(Triple{genome, IRI(vocabulary.RdfType), IRI(so.Genome)})
	g.Add(Triple{genome, IRI(vocabulary.RdfType), IRI(vocabulary.DcmiDataset)})
	if s := b.mapper.Species(); s != "" {
		label := String("genome of " + s)
		g.Add(Triple{genome, IRI(vocabulary.RdfsLabel), label})
		g.Add(Triple{genome, IRI(vocabulary.DcTitle), label})
	}
	g.Add(Triple{genome, IRI(vocabulary.DcCreated), Literal(b.now().Format("2006-01-02"), vocabulary.XsdDate)})
	if b.prov.CreatorURI != "" {
		g.Add(Triple{genome, IRI(vocabulary.DcCreator), IRI(b.prov.CreatorURI)})
	}
	if b.prov.SourceURL != "" {
		g.Add(Triple{genome, IRI(vocabulary.DcSource), IRI(b.prov.SourceURL)})
	}
	if b.prov.TaxonID > 0 {
		taxon := IRI(b.mapper.TaxonURI(b.prov.TaxonID))
		g.Add(Triple{genome, IRI(so.GenomeOf), taxon})
		g.Add(Triple{genome, IRI(so.InTaxon), taxon})
		g.Add(Triple{taxon, IRI(vocabulary.RdfsLabel), String("NCBI Taxonomy ID: " + strconv.Itoa(b.prov.TaxonID))})
		g.Add(Triple{taxon, IRI(vocabulary.DcIdentifier), Literal(strconv.Itoa(b.prov.TaxonID), vocabulary.XsdPositiveInteger)})
	}
}

// addFeature emits the type, label, identifier, description and FALDO
// location triples of one feature, plus the chromosome node its seqid
// names.
func (b *Builder) addFeature(g *Graph, rec *gff.FeatureRecord) error {
	class, err := b.mapper.ClassFor(rec.Type)
	if err != nil {
		return err
	}
	strandClass, err := b.mapper.StrandClass(rec.Strand)
	if err != nil {
		return err
	}
	featureURI, err := b.mapper.FeatureURI(rec.Type, rec.ID)
	if err != nil {
		return err
	}

	genome := IRI(b.mapper.GenomeURI())
	chrom := IRI(b.mapper.ChromosomeURI(rec.SeqID))
	feature := IRI(featureURI)
	region := IRI(b.mapper.RegionURI(rec.SeqID, rec.Start, rec.End))
	begin := IRI(b.mapper.PositionURI(rec.SeqID, rec.Start))
	end := IRI(b.mapper.PositionURI(rec.SeqID, rec.End))

	// Every seqid is taken to name a chromosome of the genome.
	g.Add(Triple{chrom, IRI(vocabulary.RdfType), IRI(so.Chromosome)})
	g.Add(Triple{chrom, IRI(vocabulary.RdfsLabel), String("chromosome " + rec.SeqID)})
	g.Add(Triple{chrom, IRI(so.PartOf), genome})

	id := ontology.NormalizeID(rec.ID)
	g.Add(Triple{feature, IRI(vocabulary.RdfType), IRI(class)})
	g.Add(Triple{feature, IRI(vocabulary.RdfsLabel), String(rec.Type + " " + id)})
	g.Add(Triple{feature, IRI(vocabulary.DcIdentifier), String(id)})
	if des := attributeDigest(rec.Attributes); des != "" {
		g.Add(Triple{feature, IRI(vocabulary.RdfsComment), String(des)})
	}

	g.Add(Triple{feature, IRI(faldo.Location), region})
	g.Add(Triple{region, IRI(vocabulary.RdfType), IRI(faldo.Region)})
	g.Add(Triple{region, IRI(vocabulary.RdfsLabel),
		Plain(fmt.Sprintf("region %d-%d on chromosome %s", rec.Start, rec.End, rec.SeqID))})
	g.Add(Triple{region, IRI(faldo.Begin), begin})
	g.Add(Triple{region, IRI(faldo.End), end})
	b.addPosition(g, begin, rec.Start, rec.SeqID, strandClass, chrom)
	b.addPosition(g, end, rec.End, rec.SeqID, strandClass, chrom)
	return nil
}

func (b *Builder) addPosition(g *Graph, pos Term, at int, seqid, strandClass string, chrom Term) {
	g.Add(Triple{pos, IRI(vocabulary.RdfType), IRI(faldo.ExactPosition)})
	g.Add(Triple{pos, IRI(vocabulary.RdfType), IRI(strandClass)})
	g.Add(Triple{pos, IRI(vocabulary.RdfsLabel),
		Plain(fmt.Sprintf("position at %d on chromosome %s", at, seqid))})
	g.Add(Triple{pos, IRI(faldo.PositionValue), Literal(strconv.Itoa(at), vocabulary.XsdPositiveInteger)})
	g.Add(Triple{pos, IRI(faldo.Reference), chrom})
}

// addRelation emits part_of child to parent, the inverse has_part, and
// transcribed_to for gene to transcript edges.
func (b *Builder) addRelation(ctx context.Context, g *Graph, st store.Store, edge store.Edge) error {
	child, err := st.Resolve(ctx, edge.ChildID)
	if err != nil {
		return fmt.Errorf("resolving child %q: %w", edge.ChildID, err)
	}
	parent, err := st.Resolve(ctx, edge.ParentID)
	if err != nil {
		return fmt.Errorf("resolving parent %q: %w", edge.ParentID, err)
	}

	childURI, err := b.mapper.FeatureURI(child.Type, child.ID)
	if err != nil {
		return err
	}
	parentURI, err := b.mapper.FeatureURI(parent.Type, parent.ID)
	if err != nil {
		return err
	}

	g.Add(Triple{IRI(childURI), IRI(so.PartOf), IRI(parentURI)})
	g.Add(Triple{IRI(parentURI), IRI(so.HasPart), IRI(childURI)})
	if parent.Type == "gene" && b.mapper.IsTranscript(child.Type) {
		g.Add(Triple{IRI(parentURI), IRI(so.TranscribedTo), IRI(childURI)})
	}
	return nil
}

// commentAttrs are the attribute keys folded into rdfs:comment, matched
// case-sensitively in both spellings.
var commentAttrs = []string{"Name", "Note", "Alias", "Ontology_term", "Interpro2go_term", "Sifter_term"}

// attributeDigest concatenates the descriptive attributes of a feature
// into one sorted "Key: value; Key: value" string. Empty when none of
// the keys are present.
func attributeDigest(attrs gff.Attributes) string {
	var parts []string
	for _, key := range commentAttrs {
		for _, k := range []string{key, strings.ToLower(key)} {
			if vals := attrs[k]; len(vals) > 0 {
				parts = append(parts, k+": "+strings.Join(vals, ", "))
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
