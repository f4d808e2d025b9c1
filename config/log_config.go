package config

import (
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

type LogConfig struct {
	FilePath string `json:"filePath" yaml:"filePath"` // 日志文件路径，与控制台双路输出
	Level    string `json:"level" yaml:"level"`       // 日志级别
}

func (l *LogConfig) Validate() []error {
	var errs = make([]error, 0)
	if l.FilePath == "" {
		errs = append(errs, errors.Errorf("日志文件路径不能为空"))
	}
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		errs = append(errs, errors.Errorf("日志级别错误: %v", err))
	}
	return errs
}

func NewDefaultLogConfig() *LogConfig {
	return &LogConfig{
		FilePath: "data_processing.log",
		Level:    "info",
	}
}
