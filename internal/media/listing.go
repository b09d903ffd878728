package media

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ImageExtensions are the file types shown as image slides.
var ImageExtensions = NewExtensions(".jpg", ".jpeg", ".png", ".webp", ".gif")

// AudioExtensions are the file types accepted as background audio.
var AudioExtensions = NewExtensions(".mp3", ".wav", ".ogg", ".m4a")

// Extensions is a set of lower-cased file extensions including the dot.
type Extensions map[string]struct{}

// NewExtensions builds a set from exts, normalizing case.
func NewExtensions(exts ...string) Extensions {
	set := make(Extensions, len(exts))
	for _, e := range exts {
		set[strings.ToLower(e)] = struct{}{}
	}
	return set
}

// Has reports whether name's extension is in the set, ignoring case.
func (e Extensions) Has(name string) bool {
	_, ok := e[strings.ToLower(filepath.Ext(name))]
	return ok
}

// File is a regular file found by ListMedia.
type File struct {
	Name string // base name with extension
	Path string // dir joined with Name
}

// Stem returns the file name without its extension.
func (f File) Stem() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}

// ListMedia returns the regular files in dir whose extension is in allowed,
// sorted by case-insensitive name. A missing dir yields an empty result.
func ListMedia(dir string, allowed Extensions) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var files []File
	for _, e := range entries {
		if !allowed.Has(e.Name()) || !resolveMode(dir, e).IsRegular() {
			continue
		}
		files = append(files, File{Name: e.Name(), Path: filepath.Join(dir, e.Name())})
	}
	sortByName(files, func(f File) string { return f.Name })
	return files, nil
}

// NameLess orders names by their lower-cased form, falling back to the raw
// name so the order stays total.
func NameLess(a, b string) bool {
	lower := cases.Lower(language.Und)
	return keyLess(lower.String(a), a, lower.String(b), b)
}

func keyLess(ka, a, kb, b string) bool {
	if ka == kb {
		return a < b
	}
	return ka < kb
}

// sortByName sorts items in NameLess order, lower-casing each name once.
func sortByName[T any](items []T, name func(T) string) {
	type keyed struct {
		key, name string
		item      T
	}
	lower := cases.Lower(language.Und)
	ks := make([]keyed, len(items))
	for i, it := range items {
		n := name(it)
		ks[i] = keyed{key: lower.String(n), name: n, item: it}
	}
	sort.Slice(ks, func(i, j int) bool {
		return keyLess(ks[i].key, ks[i].name, ks[j].key, ks[j].name)
	})
	for i := range ks {
		items[i] = ks[i].item
	}
}

// Subdirs returns the immediate, non-hidden subdirectories of dir in
// NameLess order. A missing dir yields an empty result.
func Subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") || !resolveMode(dir, e).IsDir() {
			continue
		}
		dirs = append(dirs, e.Name())
	}
	sortByName(dirs, func(d string) string { return d })
	return dirs, nil
}

// resolveMode follows symlinks so linked files and folders count as their
// targets. Broken links resolve to an irregular mode and are skipped.
func resolveMode(dir string, e fs.DirEntry) fs.FileMode {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.Type()
	}
	fi, err := os.Stat(filepath.Join(dir, e.Name()))
	if err != nil {
		return fs.ModeIrregular
	}
	return fi.Mode()
}
