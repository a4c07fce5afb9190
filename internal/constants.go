package internal

const (
	// AppName 程序名，同时用于配置目录和环境变量前缀
	AppName = "file-organiser"

	// DefaultConfigName 配置文件名（不含扩展名）
	DefaultConfigName = "config"

	// DefaultMaxDepth 默认最大扫描深度
	DefaultMaxDepth = 255

	// DefaultLogLevel 默认日志级别
	DefaultLogLevel = "info"
)
