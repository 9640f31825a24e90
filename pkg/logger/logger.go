// Package logger 构建服务统一的 zap Logger。
// 日志同时写控制台与滚动文件；文件滚动由 lumberjack 负责。
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options 是日志配置。
type Options struct {
	Path       string // 日志文件路径，为空时只写控制台
	Level      string // debug / info / warn / error，默认 info
	MaxSizeMB  int    // 单个日志文件上限（MB），默认 100
	MaxBackups int    // 保留的历史文件数，默认 5
	MaxAgeDays int    // 历史文件保留天数，默认 30
}

// New 按配置构建 Logger。
func New(opts Options) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.Set(opts.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stdout),
			level,
		),
	}

	if opts.Path != "" {
		sink := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    defaultInt(opts.MaxSizeMB, 100),
			MaxBackups: defaultInt(opts.MaxBackups, 5),
			MaxAge:     defaultInt(opts.MaxAgeDays, 30),
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(sink),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...))
}

func defaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
