package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/claes/slideshow/internal/model"
)

// ErrManifestLocked is returned when another process is writing the manifest.
var ErrManifestLocked = errors.New("manifest is being written by another process")

// LoadSlides reads the manifest at path.
// A missing file yields a single setup placeholder and a file that cannot be
// read or decoded yields a single error placeholder carrying the reason, so
// callers always get something to render. Parsed slides are returned as is.
func LoadSlides(path string) []model.Slide {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Slide{model.SetupRequiredSlide(filepath.Base(path))}
		}
		return []model.Slide{model.LoadErrorSlide(fmt.Errorf("read manifest: %w", err))}
	}
	var slides []model.Slide
	if err := json.Unmarshal(data, &slides); err != nil {
		return []model.Slide{model.LoadErrorSlide(fmt.Errorf("decode manifest: %w", err))}
	}
	return slides
}

// SaveManifest writes slides to path atomically, replacing any previous
// manifest. Concurrent writers are serialized through path+".lock"; a writer
// that finds the lock held gets ErrManifestLocked. It returns the number of
// bytes written.
func SaveManifest(path string, slides []model.Slide) (int64, error) {
	if slides == nil {
		slides = []model.Slide{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return 0, fmt.Errorf("lock manifest: %w", err)
	}
	if !locked {
		return 0, ErrManifestLocked
	}
	defer func() { _ = lock.Unlock() }()

	data, err := json.MarshalIndent(slides, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode manifest: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open tmp: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("write tmp: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("sync tmp: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("close tmp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("rename tmp: %w", err)
	}
	return int64(len(data)), nil
}
