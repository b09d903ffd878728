package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadOptionalText_Missing(t *testing.T) {
	got, err := ReadOptionalText(filepath.Join(t.TempDir(), "description.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestReadOptionalText_Trims(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x.txt")
	if err := os.WriteFile(p, []byte("\ufeff  Summer in Lisbon \n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadOptionalText(p)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Summer in Lisbon" {
		t.Fatalf("bad text: %q", got)
	}
}

func TestReadOptionalText_InvalidUTF8(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x.txt")
	if err := os.WriteFile(p, []byte{0xff, 0xfe, 0x00, 'h'}, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadOptionalText(p)
	if !errors.Is(err, ErrNotUTF8) {
		t.Fatalf("expected ErrNotUTF8, got %v", err)
	}
}

func TestReadOptionalText_Directory(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "description.txt")
	if err := os.Mkdir(p, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadOptionalText(p); err == nil {
		t.Fatal("expected error reading a directory")
	}
}
