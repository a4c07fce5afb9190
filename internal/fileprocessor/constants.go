package fileprocessor

const (
	// DirPerm 创建目标目录时使用的权限
	DirPerm = 0755

	// ProgressInterval 每处理多少个文件输出一次进度
	ProgressInterval = 10
)
