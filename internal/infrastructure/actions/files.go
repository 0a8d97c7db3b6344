package actions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmajeed/juno/internal/domain"
	"github.com/jmajeed/juno/internal/ports"
)

// Files performs the supported file operations under the user's home.
type Files struct {
	documentsDir string
	downloadsDir string
	logger       ports.Logger
}

// NewFiles builds the file manager rooted at the given home directory.
func NewFiles(homeDir string, logger ports.Logger) *Files {
	return &Files{
		documentsDir: filepath.Join(homeDir, "Documents"),
		downloadsDir: filepath.Join(homeDir, "Downloads"),
		logger:       logger,
	}
}

// CreateFolder makes a folder under Documents.
func (f *Files) CreateFolder(name string) error {
	if name == "" {
		return fmt.Errorf("empty folder name")
	}
	path := filepath.Join(f.documentsDir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}
	f.logger.Info("folder created", map[string]interface{}{"path": path})
	return nil
}

var cleanBuckets = []struct {
	folder     string
	extensions []string
}{
	{"Images", []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp"}},
	{"Documents", []string{".pdf", ".doc", ".docx", ".txt", ".xlsx", ".xls", ".ppt", ".pptx"}},
	{"Videos", []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv"}},
	{"Archives", []string{".zip", ".rar", ".7z", ".tar", ".gz"}},
}

// CleanDownloads moves loose files in Downloads into per-type folders and
// reports how many landed in each bucket. Files it cannot move are skipped,
// not fatal.
func (f *Files) CleanDownloads() (domain.CleanStats, error) {
	var stats domain.CleanStats

	entries, err := os.ReadDir(f.downloadsDir)
	if err != nil {
		return stats, fmt.Errorf("read downloads: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == "" {
			continue
		}

		folder := "Others"
		for _, bucket := range cleanBuckets {
			if containsExt(bucket.extensions, ext) {
				folder = bucket.folder
				break
			}
		}

		dest := filepath.Join(f.downloadsDir, folder)
		if err := os.MkdirAll(dest, 0o755); err != nil {
			f.logger.Warn("cannot create bucket folder", map[string]interface{}{"folder": dest})
			continue
		}
		src := filepath.Join(f.downloadsDir, entry.Name())
		if err := os.Rename(src, filepath.Join(dest, entry.Name())); err != nil {
			f.logger.Warn("cannot move file", map[string]interface{}{"file": entry.Name()})
			continue
		}

		switch folder {
		case "Images":
			stats.Images++
		case "Documents":
			stats.Documents++
		case "Videos":
			stats.Videos++
		case "Archives":
			stats.Archives++
		default:
			stats.Others++
		}
	}

	f.logger.Info("downloads organized", map[string]interface{}{"moved": stats.Total()})
	return stats, nil
}

func containsExt(extensions []string, ext string) bool {
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

var _ ports.FileManager = (*Files)(nil)
