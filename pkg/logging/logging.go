// Package logging 配置全局 zerolog 日志
//
// 各子系统通过 For("component") 获取带 component 字段的子日志器，
// 输出形如: 10:04:05 INF map generated component=lanes lanes=30
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup 初始化全局日志器
//
// 参数:
//   - verbose: true 时输出 debug 级别，否则只输出 warn 及以上
//   - w: 输出目标，nil 时使用 os.Stderr
func Setup(verbose bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()
}

// For 返回带 component 字段的子日志器
func For(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}

// Discard 丢弃所有输出的日志器，测试中使用
func Discard() zerolog.Logger {
	return zerolog.Nop()
}
