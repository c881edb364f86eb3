// Package runner 示例算例的运行与输出
package runner

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"pipecalc/calculator"
)

// SetupLogging 日志输出到 stderr, stdout 只保留计算报告
func SetupLogging(level string) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("日志级别无效, 使用 info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// Run 构建算例、分析并输出报告
func Run(w io.Writer, c Case, cfg calculator.Config) error {
	p, err := c.Build()
	if err != nil {
		return err
	}
	res, err := calculator.Analyze(p, cfg)
	if err != nil {
		log.WithFields(log.Fields{
			"case": c.Name,
			"err":  err,
		}).Error("分析失败")
		return err
	}
	return WriteReport(w, c, cfg, res)
}

// NewCommand 每个算例一个独立命令, 不接受参数和选项
func NewCommand(c Case) *cobra.Command {
	return &cobra.Command{
		Use:                   c.Name,
		Short:                 c.Title,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := calculator.LoadConfig(calculator.ResolveConfigPath(calculator.DefaultConfigPath))
			if err != nil {
				return err
			}
			SetupLogging(cfg.LogLevel)
			return Run(cmd.OutOrStdout(), c, cfg)
		},
	}
}

// Main 执行算例命令并返回进程退出码, 出错时错误写到 stderr
func Main(c Case, args []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(c)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}
