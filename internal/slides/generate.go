package slides

import (
	"fmt"
	"os"

	"github.com/claes/slideshow/internal/store"
)

// Result describes a written manifest.
type Result struct {
	Count int
	Path  string
	Bytes int64
}

// Generate builds the slides under imagesDir and writes them to manifestPath.
// Unlike the live source it refuses to run without an images directory.
func Generate(imagesDir, manifestPath string) (Result, error) {
	fi, err := os.Stat(imagesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{}, fmt.Errorf("no images directory found at %s", imagesDir)
		}
		return Result{}, fmt.Errorf("stat images directory: %w", err)
	}
	if !fi.IsDir() {
		return Result{}, fmt.Errorf("images path %s is not a directory", imagesDir)
	}

	out, err := Build(imagesDir)
	if err != nil {
		return Result{}, fmt.Errorf("build slides: %w", err)
	}
	n, err := store.SaveManifest(manifestPath, out)
	if err != nil {
		return Result{}, fmt.Errorf("write manifest: %w", err)
	}
	return Result{Count: len(out), Path: manifestPath, Bytes: n}, nil
}
