package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "turtle" {
		t.Errorf("expected default format turtle, got %s", cfg.Output.Format)
	}
	if cfg.Integrity.Mode != "lenient" {
		t.Errorf("expected default integrity mode lenient, got %s", cfg.Integrity.Mode)
	}
	if cfg.DB.UniqueIDs {
		t.Error("expected unique-ID minting off by default")
	}
}

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.URIs.Base = "https://solgenomics.net"
	cfg.URIs.Creator = "https://orcid.org/0000-0001-2345-6789"
	cfg.URIs.Source = "ftp://ftp.solgenomics.net/tomato_genome/annotation/gene_models.gff3"
	cfg.Dataset.Species = "Solanum lycopersicum"
	cfg.Dataset.TaxonID = 4081
	return cfg
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing base URI",
			modify:  func(c *Config) { c.URIs.Base = "" },
			wantErr: true,
		},
		{
			name:    "base URI without scheme",
			modify:  func(c *Config) { c.URIs.Base = "solgenomics.net" },
			wantErr: true,
		},
		{
			name:    "creator URI with bad scheme",
			modify:  func(c *Config) { c.URIs.Creator = "mailto:someone@example.org" },
			wantErr: true,
		},
		{
			name:    "empty creator is fine",
			modify:  func(c *Config) { c.URIs.Creator = "" },
			wantErr: false,
		},
		{
			name:    "negative taxon ID",
			modify:  func(c *Config) { c.Dataset.TaxonID = -1 },
			wantErr: true,
		},
		{
			name:    "unknown output format",
			modify:  func(c *Config) { c.Output.Format = "jsonld" },
			wantErr: true,
		},
		{
			name:    "unknown integrity mode",
			modify:  func(c *Config) { c.Integrity.Mode = "pedantic" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "semgff.yaml")
	content := `uris:
  base: https://solgenomics.net
  creator: https://orcid.org/0000-0001-2345-6789
dataset:
  species: Solanum lycopersicum
  taxon_id: 4081
output:
  format: nt
integrity:
  mode: strict
db:
  unique_ids: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.URIs.Base != "https://solgenomics.net" {
		t.Errorf("base = %s", cfg.URIs.Base)
	}
	if cfg.Dataset.TaxonID != 4081 {
		t.Errorf("taxon_id = %d", cfg.Dataset.TaxonID)
	}
	if cfg.Output.Format != "nt" {
		t.Errorf("format = %s", cfg.Output.Format)
	}
	if cfg.Integrity.Mode != "strict" {
		t.Errorf("mode = %s", cfg.Integrity.Mode)
	}
	if !cfg.DB.UniqueIDs {
		t.Error("unique_ids not picked up")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "semgff.yaml")
	if err := os.WriteFile(path, []byte("uris:\n  base: https://example.org\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.Output.Format != "turtle" {
		t.Errorf("partial file must keep default format, got %s", cfg.Output.Format)
	}
}

func TestMerge(t *testing.T) {
	cfg := validConfig()
	other := &Config{}
	other.URIs.Base = "https://example.org/other"
	other.Output.Format = "xml"
	other.DB.UniqueIDs = true

	cfg.Merge(other)

	if cfg.URIs.Base != "https://example.org/other" {
		t.Errorf("base not overridden: %s", cfg.URIs.Base)
	}
	if cfg.Output.Format != "xml" {
		t.Errorf("format not overridden: %s", cfg.Output.Format)
	}
	if !cfg.DB.UniqueIDs {
		t.Error("unique_ids not overridden")
	}
	if cfg.Dataset.Species != "Solanum lycopersicum" {
		t.Errorf("zero-valued field must not clobber: %s", cfg.Dataset.Species)
	}
	if cfg.URIs.Creator != "https://orcid.org/0000-0001-2345-6789" {
		t.Errorf("creator clobbered: %s", cfg.URIs.Creator)
	}

	cfg.Merge(nil) // must be a no-op
	if cfg.URIs.Base != "https://example.org/other" {
		t.Error("Merge(nil) changed the config")
	}
}

func TestSaveToFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := validConfig()
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}
