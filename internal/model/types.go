package model

import "fmt"

// Slide is one unit of the presentation: either a folder transition marker
// or a captioned image. Field names match the manifest JSON.
type Slide struct {
	IsTransition      bool   `json:"is_transition"`
	SourceFolder      string `json:"source_folder"`
	FolderDescription string `json:"folder_description"`
	Image             string `json:"image,omitempty"` // relative to the static dir, e.g. images/<folder>/<file>
	Caption           string `json:"caption"`
	Title             string `json:"title,omitempty"` // placeholders only
}

// IsPlaceholder reports whether s is a synthetic slide standing in for
// missing or broken content.
func (s Slide) IsPlaceholder() bool {
	return !s.IsTransition && s.Image == "" && s.Title != ""
}

// NoContentSlide is returned when the images tree holds nothing to show.
func NoContentSlide() Slide {
	return Slide{
		Title:   "No Photos Found",
		Caption: "Add folders with images to static/images.",
	}
}

// SetupRequiredSlide is returned when the manifest has not been generated yet.
func SetupRequiredSlide(manifest string) Slide {
	return Slide{
		Title:   "Setup Required",
		Caption: fmt.Sprintf("Run `slideshow generate` to create %s.", manifest),
	}
}

// LoadErrorSlide carries the failure message of a broken slide source.
func LoadErrorSlide(err error) Slide {
	return Slide{
		Title:   "Error Loading Slides",
		Caption: err.Error(),
	}
}
