package actions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmajeed/juno/internal/pkg/logger"
)

func TestCreateFolder(t *testing.T) {
	home := t.TempDir()
	files := NewFiles(home, logger.New(false))

	if err := files.CreateFolder("Folder_20240315_093000"); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(filepath.Join(home, "Documents", "Folder_20240315_093000"))
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Fatal("created path is not a directory")
	}
}

func TestCreateFolderRejectsEmptyName(t *testing.T) {
	files := NewFiles(t.TempDir(), logger.New(false))
	if err := files.CreateFolder(""); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestCleanDownloadsSortsByExtension(t *testing.T) {
	home := t.TempDir()
	downloads := filepath.Join(home, "Downloads")
	if err := os.MkdirAll(downloads, 0o755); err != nil {
		t.Fatal(err)
	}

	seed := map[string]string{
		"photo.JPG":    "Images",
		"diagram.png":  "Images",
		"report.pdf":   "Documents",
		"talk.mp4":     "Videos",
		"backup.zip":   "Archives",
		"tool.AppImage": "Others",
	}
	for name := range seed {
		if err := os.WriteFile(filepath.Join(downloads, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// directories and extension-less files stay put
	if err := os.MkdirAll(filepath.Join(downloads, "keepdir"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(downloads, "README"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	files := NewFiles(home, logger.New(false))
	stats, err := files.CleanDownloads()
	if err != nil {
		t.Fatal(err)
	}

	if stats.Images != 2 || stats.Documents != 1 || stats.Videos != 1 || stats.Archives != 1 || stats.Others != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.Total() != 6 {
		t.Fatalf("total = %d, want 6", stats.Total())
	}

	for name, folder := range seed {
		if _, err := os.Stat(filepath.Join(downloads, folder, name)); err != nil {
			t.Errorf("%s not in %s: %v", name, folder, err)
		}
	}
	if _, err := os.Stat(filepath.Join(downloads, "README")); err != nil {
		t.Error("extension-less file was moved")
	}
	if _, err := os.Stat(filepath.Join(downloads, "keepdir")); err != nil {
		t.Error("directory was moved")
	}
}

func TestCleanDownloadsMissingDirectory(t *testing.T) {
	files := NewFiles(t.TempDir(), logger.New(false))
	if _, err := files.CleanDownloads(); err == nil {
		t.Fatal("expected error when Downloads does not exist")
	}
}
