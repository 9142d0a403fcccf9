// Package so provides Sequence Ontology class and relation IRIs for the
// supported GFF feature types.
//
// The Sequence Ontology (SO) is the controlled vocabulary for genome
// annotation feature types and their part-whole relations. Class IRIs live
// in the OBO namespace as SO_nnnnnnn accession terms; the relation properties
// (SO_part_of, SO_has_part, SO_transcribed_to, SO_genome_of) are published
// in the same namespace.
//
// Reference: http://www.sequenceontology.org/
package so
