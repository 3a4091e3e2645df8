package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// Init 按配置构建全局日志器。level 取 debug/info/warn/error，
// file 非空时同时写入该文件。未初始化时所有日志调用都是空操作。
func Init(level, file string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("无法识别的日志级别 %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	if file != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, file)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("构建日志器失败: %w", err)
	}
	log = l
	return nil
}

// L 返回全局日志器
func L() *zap.Logger {
	return log
}

// Sync 冲刷缓冲的日志，进程退出前调用
func Sync() {
	_ = log.Sync()
}
