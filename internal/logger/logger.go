package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// Logger 全局日志实例，未初始化时丢弃所有日志
	Logger = zerolog.Nop()
)

// ParseLevel 解析日志级别 ("debug", "info", "warn", "error")，无法识别时为 info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Init 初始化日志配置
// 日志写到 stderr，标准输出只留给扫描报告；file 不为空时同时追加写入该文件
func Init(level string, file string) error {
	zerolog.TimeFieldFormat = time.RFC3339

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}

	var output io.Writer = console
	if file != "" {
		fileWriter, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		output = zerolog.MultiLevelWriter(console, fileWriter)
	}

	Logger = New(output, ParseLevel(level))
	log.Logger = Logger
	return nil
}

// New 创建带时间戳的日志实例
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// WithRunID 为本次运行生成 ID 并附加到全局日志上下文
func WithRunID() string {
	id := uuid.NewString()
	Logger = Logger.With().Str("run", id).Logger()
	log.Logger = Logger
	return id
}

// Debug 输出调试日志
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info 输出信息日志
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn 输出警告日志
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error 输出错误日志
func Error() *zerolog.Event {
	return Logger.Error()
}

// Progress 输出进度信息
func Progress(current, total int, message string) {
	if total > 0 {
		percentage := float64(current) / float64(total) * 100
		Info().
			Int("current", current).
			Int("total", total).
			Float64("percentage", percentage).
			Msg(message)
	} else {
		Info().
			Int("current", current).
			Msg(message)
	}
}
