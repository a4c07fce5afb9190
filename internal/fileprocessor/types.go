package fileprocessor

import (
	"errors"
	"time"

	"github.com/moyu-x/file-organiser/pkg/classifier"
	"github.com/moyu-x/file-organiser/pkg/criteria"
	"github.com/moyu-x/file-organiser/pkg/resource"
	"github.com/spf13/afero"
)

var (
	// ErrUnresolvedTarget 移动/复制的目标目录不存在且未能创建，本次运行退化为列出
	ErrUnresolvedTarget = errors.New("target directory unresolved")

	// ErrPrimitiveFailure 单个文件的重命名、复制或删除失败
	ErrPrimitiveFailure = errors.New("file operation failed")

	// ErrVerifyMismatch 复制后的校验和与源文件不一致
	ErrVerifyMismatch = errors.New("copy verification failed")
)

// Stats 保存一次运行的统计信息
type Stats struct {
	Dirs     int // 访问的目录数
	Excluded int // 被排除（未进入）的目录数
	Scanned  int // 检查过的文件数
	Matched  int // 满足条件的文件数
	Moved    int
	Copied   int
	Deleted  int
	Failed   int
}

// Processor 扫描并对匹配的文件执行一次批量操作
type Processor struct {
	Fs       afero.Fs           // 文件系统接口，便于测试和抽象
	Criteria *criteria.Criteria // 扫描条件与操作许可
	Tree     *resource.Tree     // 最近一次 Scan 的结果
	Stats    Stats              // 处理统计信息
	Now      func() time.Time   // 计算文件年龄的时间基准

	FollowSymlinks bool // 跟随符号链接
	SameFileSystem bool // 不进入其他文件系统
	Verify         bool // 复制后用 xxhash 校验

	classifier *classifier.Classifier
	target     string // 授权后的绝对目标目录
}
