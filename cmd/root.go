package cmd

import (
	"os"

	"github.com/moyu-x/file-organiser/internal"
	"github.com/moyu-x/file-organiser/internal/app"
	"github.com/spf13/cobra"
)

var opts = app.ScanOptions{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   internal.AppName + " [path]",
	Short: "按年龄、大小、扩展名和名称筛选文件，并批量列出、移动、复制或删除",
	Long: `File Organiser 是一个命令行工具，用于扫描目录树并批量整理文件。

主要功能:
- 按修改时间、大小、扩展名、名称模式和内容类型筛选文件
- 按目录汇总匹配文件的数量与大小，统计扩展名分布
- 将匹配的文件移动或复制到目标目录（保留相对路径）
- 确认后删除匹配的文件

路径的最后一段不存在时会被当作文件名模式，例如 ~/Downloads/*.zip`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts.Path = "."
		if len(args) > 0 {
			opts.Path = args[0]
		}
		opts.MaxDepthSet = cmd.Flags().Changed("max-depth")
		opts.Out = cmd.OutOrStdout()

		_, err := app.RunScan(&opts)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	in := &opts.Inputs

	// 筛选条件
	flags.StringVarP(&in.Before, "before", "b", "", "只匹配早于该年龄的文件，如 7d、3w、1-2y")
	flags.StringVarP(&in.After, "after", "a", "", "只匹配新于该年龄的文件，如 12h")
	flags.StringVarP(&in.Ext, "ext", "e", "", "包含的扩展名，逗号分隔，_ 表示无扩展名")
	flags.StringVarP(&in.NotExt, "not-ext", "n", "", "排除的扩展名，逗号分隔")
	flags.StringVarP(&in.ExcludeDirs, "exclude-dirs", "q", "", "排除的目录名，逗号分隔，以 / 开头时按根目录下的相对路径匹配")
	flags.StringVarP(&in.Pattern, "pattern", "p", "", "文件名包含的模式，支持 *")
	flags.StringVarP(&in.OmitPattern, "omit-pattern", "o", "", "文件名不能包含的模式")
	flags.StringVar(&in.StartsWith, "starts-with", "", "文件名开头的模式")
	flags.StringVar(&in.EndsWith, "ends-with", "", "文件名结尾的模式（忽略扩展名）")
	flags.StringVarP(&in.Size, "size", "s", "", "大小区间，如 10k、1m,10m")
	flags.StringVar(&in.Kind, "kind", "", "按内容类型筛选: image, video, audio, document, archive, other, unknown")
	flags.IntVarP(&in.MaxDepth, "max-depth", "d", internal.DefaultMaxDepth, "最大扫描深度")
	flags.BoolVarP(&in.Hidden, "hidden", "c", false, "包含隐藏文件和目录")
	flags.BoolVarP(&in.RegexMode, "regex-mode", "x", false, "模式按正则表达式解析")

	// 输出
	flags.BoolVarP(&opts.Detail.ShowFiles, "list", "l", false, "列出每个匹配的文件")
	flags.BoolVarP(&opts.Detail.ShowGroups, "groups", "g", false, "显示扩展名统计")
	flags.BoolVarP(&opts.Detail.ShowVoid, "void", "v", false, "显示没有匹配文件的目录")

	// 操作
	flags.StringVarP(&in.Move, "move", "m", "", "将匹配的文件移动到该目录")
	flags.StringVarP(&in.Copy, "copy", "k", "", "将匹配的文件复制到该目录")
	flags.BoolVarP(&in.Delete, "delete", "u", false, "删除匹配的文件（需要确认）")
	flags.BoolVarP(&in.Force, "force", "f", false, "与 --delete 一起使用时不再确认")
	flags.BoolVar(&opts.Verify, "verify", false, "复制后校验内容哈希")

	// 运行环境
	flags.StringVar(&opts.LogLevel, "log-level", "", "日志级别 (debug, info, warn, error)")
	flags.StringVar(&opts.LogFile, "log-file", "", "日志文件路径")
	flags.StringVar(&opts.ConfigFile, "config", "", "配置文件 (默认 $HOME/."+internal.AppName+"/config.yaml)")
}
