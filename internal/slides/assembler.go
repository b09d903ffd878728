package slides

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/claes/slideshow/internal/media"
	"github.com/claes/slideshow/internal/model"
	"github.com/claes/slideshow/internal/parser"
)

// DescriptionFile is the per-folder description read into transition slides.
const DescriptionFile = "description.txt"

// Build walks the immediate subfolders of imagesRoot and returns the slide
// sequence: one transition slide per folder that holds images, followed by
// that folder's images. When nothing qualifies the result is a single
// placeholder slide.
func Build(imagesRoot string) ([]model.Slide, error) {
	dirs, err := media.Subdirs(imagesRoot)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	var out []model.Slide
	for _, name := range dirs {
		folder, err := buildFolder(filepath.Join(imagesRoot, name), name)
		if err != nil {
			return nil, err
		}
		out = append(out, folder...)
	}

	if len(out) == 0 {
		return []model.Slide{model.NoContentSlide()}, nil
	}
	return out, nil
}

func buildFolder(dir, name string) ([]model.Slide, error) {
	images, err := media.ListMedia(dir, media.ImageExtensions)
	if err != nil {
		return nil, fmt.Errorf("list images in %s: %w", name, err)
	}
	if len(images) == 0 {
		return nil, nil
	}

	desc, err := parser.ReadOptionalText(filepath.Join(dir, DescriptionFile))
	if err != nil {
		return nil, fmt.Errorf("read description of %s: %w", name, err)
	}

	out := make([]model.Slide, 0, len(images)+1)
	out = append(out, model.Slide{
		IsTransition:      true,
		SourceFolder:      name,
		FolderDescription: desc,
	})
	for _, img := range images {
		caption, err := parser.ReadOptionalText(filepath.Join(dir, img.Stem()+".txt"))
		if err != nil {
			return nil, fmt.Errorf("read caption of %s/%s: %w", name, img.Name, err)
		}
		out = append(out, model.Slide{
			SourceFolder:      name,
			FolderDescription: desc,
			Image:             path.Join("images", name, img.Name),
			Caption:           caption,
		})
	}
	return out, nil
}
