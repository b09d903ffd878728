package slides

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/claes/slideshow/internal/model"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// layout creates a small images tree:
//
//	B/          2.png 1.jpg, description, caption for 1.jpg
//	a/          x.gif
//	empty/      notes.txt only
//	.hidden/    h.jpg
func layout(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write(t, filepath.Join(root, "B", "2.png"), "x")
	write(t, filepath.Join(root, "B", "1.jpg"), "x")
	write(t, filepath.Join(root, "B", "description.txt"), "  Beach week \n")
	write(t, filepath.Join(root, "B", "1.txt"), "\nsunset\n")
	write(t, filepath.Join(root, "a", "x.gif"), "x")
	write(t, filepath.Join(root, "empty", "notes.txt"), "nothing here")
	write(t, filepath.Join(root, ".hidden", "h.jpg"), "x")
	write(t, filepath.Join(root, "loose.jpg"), "x")
	return root
}

func TestBuild_OrderAndContent(t *testing.T) {
	got, err := Build(layout(t))
	if err != nil {
		t.Fatal(err)
	}
	want := []model.Slide{
		{IsTransition: true, SourceFolder: "a"},
		{SourceFolder: "a", Image: "images/a/x.gif"},
		{IsTransition: true, SourceFolder: "B", FolderDescription: "Beach week"},
		{SourceFolder: "B", FolderDescription: "Beach week", Image: "images/B/1.jpg", Caption: "sunset"},
		{SourceFolder: "B", FolderDescription: "Beach week", Image: "images/B/2.png"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("slides mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_CountIsFoldersPlusImages(t *testing.T) {
	root := t.TempDir()
	counts := map[string]int{"one": 1, "two": 2, "five": 5}
	total := 0
	for dir, n := range counts {
		for i := 0; i < n; i++ {
			write(t, filepath.Join(root, dir, string(rune('a'+i))+".jpg"), "x")
		}
		total += n
	}
	write(t, filepath.Join(root, "none", "readme.md"), "x")

	got, err := Build(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(counts)+total {
		t.Fatalf("expected %d slides, got %d", len(counts)+total, len(got))
	}

	transitions := 0
	for i, s := range got {
		if s.IsTransition {
			transitions++
			continue
		}
		// every image follows its own folder's transition
		if i == 0 || !strings.HasPrefix(s.Image, "images/"+s.SourceFolder+"/") {
			t.Fatalf("slide %d out of place: %+v", i, s)
		}
	}
	if transitions != len(counts) {
		t.Fatalf("expected %d transitions, got %d", len(counts), transitions)
	}
}

func TestBuild_NoContent(t *testing.T) {
	for name, root := range map[string]string{
		"empty root":   t.TempDir(),
		"missing root": filepath.Join(t.TempDir(), "missing"),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Build(root)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]model.Slide{model.NoContentSlide()}, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_OnlyEmptyFolders(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "a", "description.txt"), "described but empty")
	got, err := Build(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "No Photos Found" {
		t.Fatalf("expected no-content placeholder, got %+v", got)
	}
}

func TestBuild_UnreadableCaptionFails(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "a", "x.jpg"), "x")
	// a directory in place of the caption file cannot be read
	if err := os.MkdirAll(filepath.Join(root, "a", "x.txt"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := Build(root); err == nil {
		t.Fatal("expected error for unreadable caption")
	}
}
