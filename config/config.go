// Package config provides configuration loading and management for semgff.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/semgff/semgff/export"
	"github.com/semgff/semgff/integrity"
	"github.com/semgff/semgff/ontology"
)

// Config represents the complete semgff configuration
type Config struct {
	URIs      URIConfig       `yaml:"uris"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Output    OutputConfig    `yaml:"output"`
	Integrity IntegrityConfig `yaml:"integrity"`
	DB        DBConfig        `yaml:"db"`
}

// URIConfig configures the URIs minted into and referenced by the graph
type URIConfig struct {
	// Base is the base URI of the RDF data space (required)
	Base string `yaml:"base"`
	// Creator is the URI identifying the dataset creator (e.g. an ORCID)
	Creator string `yaml:"creator"`
	// Source is the download URL of the source annotation file
	Source string `yaml:"source"`
}

// DatasetConfig describes the annotated genome
type DatasetConfig struct {
	// Species is the species name (e.g. "Solanum lycopersicum")
	Species string `yaml:"species"`
	// TaxonID is the NCBI Taxonomy ID (e.g. 4081)
	TaxonID int `yaml:"taxon_id"`
}

// OutputConfig configures serialization
type OutputConfig struct {
	// Format is the RDF serialization format (turtle, xml, nt, n3)
	Format string `yaml:"format"`
}

// IntegrityConfig configures the referential integrity policy
type IntegrityConfig struct {
	// Mode is "strict" or "lenient"
	Mode string `yaml:"mode"`
}

// DBConfig configures the feature database
type DBConfig struct {
	// Path is the SQLite database file (empty = derive from input file)
	Path string `yaml:"path"`
	// UniqueIDs mints a fresh ID on conflicting re-inserts instead of
	// failing
	UniqueIDs bool `yaml:"unique_ids"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: string(export.DefaultFormat),
		},
		Integrity: IntegrityConfig{
			Mode: "lenient",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.URIs.Base == "" {
		return fmt.Errorf("uris.base is required")
	}
	if _, err := ontology.ValidateBaseURI(c.URIs.Base); err != nil {
		return fmt.Errorf("uris.base: %w", err)
	}
	if c.URIs.Creator != "" {
		if _, err := ontology.ValidateBaseURI(c.URIs.Creator); err != nil {
			return fmt.Errorf("uris.creator: %w", err)
		}
	}
	if c.URIs.Source != "" {
		if _, err := ontology.ValidateBaseURI(c.URIs.Source); err != nil {
			return fmt.Errorf("uris.source: %w", err)
		}
	}
	if c.Dataset.TaxonID < 0 {
		return fmt.Errorf("dataset.taxon_id must not be negative")
	}
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := integrity.ParseMode(c.Integrity.Mode); err != nil {
		return fmt.Errorf("integrity.mode: %w", err)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.URIs.Base != "" {
		c.URIs.Base = other.URIs.Base
	}
	if other.URIs.Creator != "" {
		c.URIs.Creator = other.URIs.Creator
	}
	if other.URIs.Source != "" {
		c.URIs.Source = other.URIs.Source
	}

	if other.Dataset.Species != "" {
		c.Dataset.Species = other.Dataset.Species
	}
	if other.Dataset.TaxonID != 0 {
		c.Dataset.TaxonID = other.Dataset.TaxonID
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}

	if other.Integrity.Mode != "" {
		c.Integrity.Mode = other.Integrity.Mode
	}

	if other.DB.Path != "" {
		c.DB.Path = other.DB.Path
	}
	if other.DB.UniqueIDs {
		c.DB.UniqueIDs = true
	}
}
