// Package classifier 根据文件头识别内容类型并归入大类，供 --kind 过滤使用。
package classifier

import (
	"fmt"
	"io"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/spf13/afero"
)

const (
	// HeaderSize 类型检测读取的文件头大小
	HeaderSize = 8192

	Image    = "image"
	Video    = "video"
	Audio    = "audio"
	Document = "document"
	Archive  = "archive"
	Other    = "other"
	Unknown  = "unknown"
)

// Categories 全部可用于 --kind 的类别
var Categories = []string{Image, Video, Audio, Document, Archive, Other, Unknown}

// IsCategory 判断是否为已知类别
func IsCategory(name string) bool {
	name = strings.ToLower(name)
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

type Classifier struct {
	Fs afero.Fs
}

func NewClassifier(fs afero.Fs) *Classifier {
	return &Classifier{Fs: fs}
}

// Category 返回文件的内容类别，无法识别时为 Unknown
func (c *Classifier) Category(filePath string) (string, error) {
	fileType, err := c.DetectFileType(filePath)
	if err != nil {
		return "", err
	}
	return CategoryOf(fileType), nil
}

// DetectFileType 读取文件头并识别类型
func (c *Classifier) DetectFileType(filePath string) (types.Type, error) {
	head, err := c.readFileBuffer(filePath)
	if err != nil {
		return types.Unknown, err
	}
	// 空文件无法识别
	if len(head) == 0 {
		return types.Unknown, nil
	}
	return filetype.Match(head)
}

// CategoryOf 先按 MIME 前缀，再按扩展名归类
func CategoryOf(fileType types.Type) string {
	if fileType == types.Unknown {
		return Unknown
	}

	switch fileType.MIME.Type {
	case "image":
		return Image
	case "video":
		return Video
	case "audio":
		return Audio
	}

	switch fileType.Extension {
	case "pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "txt", "rtf", "odt", "ods", "odp", "epub":
		return Document
	case "zip", "tar", "gz", "bz2", "rar", "7z", "xz", "zst", "lz":
		return Archive
	}

	return Other
}

func (c *Classifier) readFileBuffer(filePath string) ([]byte, error) {
	file, err := c.Fs.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	buffer := make([]byte, HeaderSize)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("读取文件头部失败: %w", err)
	}

	return buffer[:n], nil
}
