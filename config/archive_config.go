package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type ArchiveConfig struct {
	DBPath string `json:"dbPath" yaml:"dbPath"` // DuckDB 归档文件路径，空表示不归档
}

// Enabled 判断是否启用 DuckDB 归档
func (a *ArchiveConfig) Enabled() bool {
	return a != nil && a.DBPath != ""
}

func (a *ArchiveConfig) Validate() []error {
	var errs = make([]error, 0)
	if a.DBPath == "" {
		return errs
	}

	// 确保目录存在
	dir := filepath.Dir(a.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		errs = append(errs, errors.Errorf("创建 DuckDB 目录失败: %v", err))
	}

	return errs
}

func NewDefaultArchiveConfig() *ArchiveConfig {
	return &ArchiveConfig{
		DBPath: "",
	}
}

func (a *ArchiveConfig) DSN() string {
	return a.DBPath
}
