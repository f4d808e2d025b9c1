package config

import (
	"testing"
	"time"
)

func TestDefaultGlobalConfigIsValid(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Fatalf("默认配置应通过验证: %v", errs)
	}
}

func TestDatasetConfigValidate(t *testing.T) {
	cfg := &DatasetConfig{}
	if errs := cfg.Validate(); len(errs) != 4 {
		t.Fatalf("空数据集配置应有 4 个错误: %v", errs)
	}
}

func TestPredictorConfigTimeout(t *testing.T) {
	cfg := &PredictorConfig{BinaryPath: "ipknot"}
	if got := cfg.TimeoutDuration(); got != 0 {
		t.Fatalf("未配置超时应为 0: %v", got)
	}

	cfg.Timeout = "30s"
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Fatalf("合法超时不应报错: %v", errs)
	}
	if got := cfg.TimeoutDuration(); got != 30*time.Second {
		t.Fatalf("超时解析错误: %v", got)
	}

	cfg.Timeout = "not-a-duration"
	if errs := cfg.Validate(); len(errs) == 0 {
		t.Fatal("非法超时格式应报错")
	}
}

func TestArchiveConfigDisabledByDefault(t *testing.T) {
	cfg := NewDefaultArchiveConfig()
	if cfg.Enabled() {
		t.Fatal("归档默认应关闭")
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Fatalf("关闭状态不应报错: %v", errs)
	}
}

func TestLogConfigValidate(t *testing.T) {
	cfg := &LogConfig{FilePath: "x.log", Level: "nope"}
	if errs := cfg.Validate(); len(errs) == 0 {
		t.Fatal("非法日志级别应报错")
	}
}
