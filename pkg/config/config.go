package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/moyu-x/file-organiser/internal"
)

type Config struct {
	Logging struct {
		Level string
		File  string
	}
	Scanner struct {
		FollowSymlinks bool `mapstructure:"follow_symlinks"`
		SameFileSystem bool `mapstructure:"same_file_system"`
		MaxDepth       int  `mapstructure:"max_depth"`
	}
	Copy struct {
		Verify bool
	}
}

// Load 读取配置文件，file 为空时按默认路径查找；找不到配置文件时使用默认值
// 环境变量 FILE_ORGANISER_LOGGING_LEVEL 等覆盖配置文件
func Load(file string) (*Config, error) {
	v := viper.New()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(internal.DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/." + internal.AppName)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/" + internal.AppName)
	}

	v.SetEnvPrefix(strings.ReplaceAll(internal.AppName, "-", "_"))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", internal.DefaultLogLevel)
	v.SetDefault("logging.file", "")
	v.SetDefault("scanner.follow_symlinks", true)
	v.SetDefault("scanner.same_file_system", true)
	v.SetDefault("scanner.max_depth", internal.DefaultMaxDepth)
	v.SetDefault("copy.verify", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
