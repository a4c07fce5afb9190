package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
)

func createFiles(t *testing.T, root string, files []string) {
	t.Helper()
	for _, file := range files {
		fullPath := filepath.Join(root, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(fullPath, []byte("test content"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}
}

func collect(t *testing.T, w *FileWalker, root string) ([]string, map[string]Entry) {
	t.Helper()
	var visited []string
	entries := make(map[string]Entry)
	err := w.Walk(root, func(e Entry) error {
		rel, _ := filepath.Rel(root, e.Path)
		rel = filepath.ToSlash(rel)
		visited = append(visited, rel)
		entries[rel] = e
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return visited, entries
}

func TestFileWalker_Walk(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, []string{
		"file2.txt",
		"file1.txt",
		".hidden_file",
		"subdir/file3.txt",
		".hidden_dir/.hidden_file2",
	})

	walker := NewFileWalker(afero.NewOsFs(), 255)
	visited, entries := collect(t, walker, tempDir)

	expected := []string{
		".",
		".hidden_dir",
		".hidden_dir/.hidden_file2",
		".hidden_file",
		"file1.txt",
		"file2.txt",
		"subdir",
		"subdir/file3.txt",
	}
	if len(visited) != len(expected) {
		t.Fatalf("Expected %d entries, got %d: %v", len(expected), len(visited), visited)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("entry %d = %s, want %s", i, visited[i], expected[i])
		}
	}

	if entries["."].Depth != 0 || entries["subdir"].Depth != 1 || entries["subdir/file3.txt"].Depth != 2 {
		t.Errorf("unexpected depths: %+v", entries)
	}
	if entries["."].SubDirs != 2 {
		t.Errorf("Expected root to have 2 subdirectories, got %d", entries["."].SubDirs)
	}
}

func TestFileWalker_MaxDepth(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, []string{"a.txt", "one/b.txt", "one/two/c.txt"})

	walker := NewFileWalker(afero.NewOsFs(), 1)
	visited, entries := collect(t, walker, tempDir)

	sort.Strings(visited)
	expected := []string{".", "a.txt", "one"}
	if len(visited) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, visited)
	}
	// 深度上限处的目录仍统计子目录
	if entries["one"].SubDirs != 1 {
		t.Errorf("Expected 1 subdirectory under one, got %d", entries["one"].SubDirs)
	}
}

func TestFileWalker_SkipDir(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, []string{"keep/a.txt", "skip/b.txt", "z.txt"})

	walker := NewFileWalker(afero.NewOsFs(), 255)
	var visited []string
	err := walker.Walk(tempDir, func(e Entry) error {
		if e.IsDir() && e.Info.Name() == "skip" {
			return SkipDir
		}
		rel, _ := filepath.Rel(tempDir, e.Path)
		visited = append(visited, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	for _, v := range visited {
		if v == "skip/b.txt" {
			t.Errorf("file under skipped directory was visited")
		}
	}
	if visited[len(visited)-1] != "z.txt" {
		t.Errorf("Expected walk to continue after skipped directory, got %v", visited)
	}
}

func TestFileWalker_NonExistentRoot(t *testing.T) {
	walker := NewFileWalker(afero.NewOsFs(), 255)
	err := walker.Walk("/non/existent/directory", func(Entry) error { return nil })
	if err == nil {
		t.Errorf("Expected error for non-existent root")
	}
}

func TestFileWalker_MemMapFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, f := range []string{"/data/x.log", "/data/sub/y.log", "/data/sub/deeper/z.log"} {
		if err := afero.WriteFile(fs, f, []byte("log"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	walker := NewFileWalker(fs, 255)
	visited, _ := collect(t, walker, "/data")
	if len(visited) != 6 {
		t.Errorf("Expected 6 entries, got %d: %v", len(visited), visited)
	}
}

func TestFileWalker_Walk_WithSymlinks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping symlink test in short mode")
	}

	tempDir := t.TempDir()
	createFiles(t, tempDir, []string{"file.txt"})

	linkPath := filepath.Join(tempDir, "link.txt")
	if err := os.Symlink(filepath.Join(tempDir, "file.txt"), linkPath); err != nil {
		t.Skipf("Skipping symlink test: %v", err)
	}
	if err := os.Symlink(filepath.Join(tempDir, "missing.txt"), filepath.Join(tempDir, "broken.txt")); err != nil {
		t.Skipf("Skipping symlink test: %v", err)
	}

	walker := NewFileWalker(afero.NewOsFs(), 255)
	count := 0
	err := walker.Walk(tempDir, func(e Entry) error {
		if !e.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 files (original + symlink), got %d", count)
	}

	walker.FollowSymlinks = false
	count = 0
	_ = walker.Walk(tempDir, func(e Entry) error {
		if !e.IsDir() {
			count++
		}
		return nil
	})
	if count != 1 {
		t.Errorf("Expected 1 file without following symlinks, got %d", count)
	}
}

func TestFileWalker_SymlinkLoop(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, []string{"a/file.txt"})

	if err := os.Symlink(tempDir, filepath.Join(tempDir, "a", "loop")); err != nil {
		t.Skipf("Skipping symlink test: %v", err)
	}

	walker := NewFileWalker(afero.NewOsFs(), 255)
	visited, _ := collect(t, walker, tempDir)

	files := 0
	for _, v := range visited {
		if filepath.Base(v) == "file.txt" {
			files++
		}
	}
	if files != 1 {
		t.Errorf("Expected file.txt once, got %d: %v", files, visited)
	}
}

func TestFileWalker_SymlinkedDirCountsAsSubDir(t *testing.T) {
	tempDir := t.TempDir()
	createFiles(t, tempDir, []string{"real/file.txt", "top.txt"})

	if err := os.Symlink(filepath.Join(tempDir, "real"), filepath.Join(tempDir, "linked")); err != nil {
		t.Skipf("Skipping symlink test: %v", err)
	}

	walker := NewFileWalker(afero.NewOsFs(), 255)
	_, entries := collect(t, walker, tempDir)
	if entries["."].SubDirs != 2 {
		t.Errorf("Expected root to have 2 subdirectories, got %d", entries["."].SubDirs)
	}

	walker = NewFileWalker(afero.NewOsFs(), 255)
	walker.FollowSymlinks = false
	_, entries = collect(t, walker, tempDir)
	if entries["."].SubDirs != 1 {
		t.Errorf("Expected unfollowed link not to count, got %d", entries["."].SubDirs)
	}
}
