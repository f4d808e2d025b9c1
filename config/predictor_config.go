package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

type PredictorConfig struct {
	BinaryPath string `json:"binaryPath" yaml:"binaryPath"` // 外部预测工具的可执行文件路径
	Timeout    string `json:"timeout" yaml:"timeout"`       // 单次调用超时，空或 0 表示不限时
	WorkDir    string `json:"workDir" yaml:"workDir"`       // 临时 FASTA 文件目录，空表示系统临时目录
}

func (p *PredictorConfig) Validate() []error {
	var errs = make([]error, 0)
	if p.BinaryPath == "" {
		errs = append(errs, errors.Errorf("预测工具路径不能为空"))
	}
	if p.Timeout != "" {
		if _, err := cast.ToDurationE(p.Timeout); err != nil {
			errs = append(errs, errors.Errorf("超时时间格式错误: %v", err))
		}
	}
	return errs
}

// TimeoutDuration 返回配置的单次调用超时，未配置时为 0
func (p *PredictorConfig) TimeoutDuration() time.Duration {
	if p.Timeout == "" {
		return 0
	}
	return cast.ToDuration(p.Timeout)
}

func NewDefaultPredictorConfig() *PredictorConfig {
	return &PredictorConfig{
		BinaryPath: "ipknot",
	}
}
