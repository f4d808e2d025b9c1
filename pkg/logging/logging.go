package logging

import (
	"rna-structure-predict/config"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetupConsole 进程启动时的引导日志：仅控制台输出，
// 在配置加载完成之前使用
func SetupConsole() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Setup 按配置重建全局日志器：控制台 + 日志文件双路输出，
// 整个进程只配置一次
func Setup(cfg *config.LogConfig) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Errorf("日志级别错误: %v", err)
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stdout", cfg.FilePath}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return errors.Errorf("构建日志器失败: %v", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}
