package slides

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/claes/slideshow/internal/model"
	"github.com/claes/slideshow/internal/store"
)

// Source kinds accepted by NewSource.
const (
	KindLive     = "live"
	KindManifest = "manifest"
)

// Source yields the slide sequence for one page render. Implementations
// never fail; problems surface as placeholder slides.
type Source interface {
	Name() string
	Slides() []model.Slide
}

// LiveSource scans ImagesDir on every call.
type LiveSource struct {
	ImagesDir string
	Logger    *zap.Logger
}

func (s *LiveSource) Name() string { return KindLive }

func (s *LiveSource) Slides() []model.Slide {
	out, err := Build(s.ImagesDir)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("slide scan failed", zap.String("images_dir", s.ImagesDir), zap.Error(err))
		}
		return []model.Slide{model.LoadErrorSlide(err)}
	}
	return out
}

// ManifestSource reads a pre-generated manifest on every call.
type ManifestSource struct {
	Path string
}

func (s *ManifestSource) Name() string { return KindManifest }

func (s *ManifestSource) Slides() []model.Slide {
	return store.LoadSlides(s.Path)
}

// NewSource returns the source for kind, which must be KindLive or KindManifest.
func NewSource(kind, imagesDir, manifestPath string, logger *zap.Logger) (Source, error) {
	switch kind {
	case KindLive:
		return &LiveSource{ImagesDir: imagesDir, Logger: logger}, nil
	case KindManifest:
		return &ManifestSource{Path: manifestPath}, nil
	default:
		return nil, fmt.Errorf("unknown slide source %q (want %q or %q)", kind, KindLive, KindManifest)
	}
}
