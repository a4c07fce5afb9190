package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

var samples = map[string]string{
	"test.jpg":     "\xff\xd8\xff\xe0\x00\x10JFIF",
	"test.png":     "\x89PNG\r\n\x1a\n",
	"test.pdf":     "%PDF-1.4",
	"test.mp3":     "ID3\x04\x00\x00\x00\x00\x00\x00",
	"test.zip":     "PK\x03\x04",
	"test.unknown": "random content",
	"empty.bin":    "",
}

func TestClassifier_Category(t *testing.T) {
	tempDir := t.TempDir()
	for filename, content := range samples {
		if err := os.WriteFile(filepath.Join(tempDir, filename), []byte(content), 0644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
	}

	expected := map[string]string{
		"test.jpg":     Image,
		"test.png":     Image,
		"test.pdf":     Document,
		"test.mp3":     Audio,
		"test.zip":     Archive,
		"test.unknown": Unknown,
		"empty.bin":    Unknown,
	}

	cls := NewClassifier(afero.NewOsFs())
	for filename, want := range expected {
		got, err := cls.Category(filepath.Join(tempDir, filename))
		if err != nil {
			t.Fatalf("Category(%s) error = %v", filename, err)
		}
		if got != want {
			t.Errorf("Category(%s) = %s, want %s", filename, got, want)
		}
	}
}

func TestClassifier_MemMapFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/in/photo", []byte(samples["test.jpg"]), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}

	got, err := NewClassifier(fs).Category("/in/photo")
	if err != nil {
		t.Fatalf("Category() error = %v", err)
	}
	if got != Image {
		t.Errorf("Expected image, got %s", got)
	}
}

func TestClassifier_MissingFile(t *testing.T) {
	_, err := NewClassifier(afero.NewMemMapFs()).Category("/nope")
	if err == nil {
		t.Errorf("Expected error for missing file")
	}
}

func TestIsCategory(t *testing.T) {
	for _, name := range []string{"image", "VIDEO", "unknown"} {
		if !IsCategory(name) {
			t.Errorf("IsCategory(%s) = false", name)
		}
	}
	if IsCategory("spreadsheet") {
		t.Errorf("IsCategory(spreadsheet) = true")
	}
}
