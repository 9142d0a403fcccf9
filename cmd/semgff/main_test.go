package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/semgff/semgff/gff"
)

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.gff3", "b.gff3", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "c.gff3"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	files, err := expandGlobs([]string{filepath.Join(dir, "**", "*.gff3")})
	if err != nil {
		t.Fatalf("expandGlobs: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("got %d files, want 3: %v", len(files), files)
	}

	files, err = expandGlobs([]string{filepath.Join(dir, "a.gff3")})
	if err != nil || len(files) != 1 {
		t.Errorf("literal path: files=%v err=%v", files, err)
	}

	if _, err := expandGlobs([]string{filepath.Join(dir, "absent.gff3")}); err == nil {
		t.Error("missing literal path must fail")
	}
	if _, err := expandGlobs([]string{filepath.Join(dir, "*.gff2")}); err == nil {
		t.Error("pattern matching nothing must fail")
	}
}

func TestParseGFFVersion(t *testing.T) {
	tests := []struct {
		in      int
		want    gff.Version
		wantErr bool
	}{
		{0, gff.VersionAuto, false},
		{2, gff.Version2, false},
		{3, gff.Version3, false},
		{1, 0, true},
		{7, 0, true},
	}
	for _, tc := range tests {
		got, err := parseGFFVersion(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseGFFVersion(%d) error = %v", tc.in, err)
		}
		if err == nil && got != tc.want {
			t.Errorf("parseGFFVersion(%d) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
