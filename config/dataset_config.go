package config

import (
	"github.com/pkg/errors"
)

type DatasetConfig struct {
	InputPath      string `json:"inputPath" yaml:"inputPath"`           // 输入 CSV 文件路径
	OutputPath     string `json:"outputPath" yaml:"outputPath"`         // 输出 CSV 文件路径（同时作为断点续跑的检查点）
	SequenceColumn string `json:"sequenceColumn" yaml:"sequenceColumn"` // 核酸序列所在列名
	IDColumn       string `json:"idColumn" yaml:"idColumn"`             // 记录标识所在列名
}

func (d *DatasetConfig) Validate() []error {
	var errs = make([]error, 0)
	if d.InputPath == "" {
		errs = append(errs, errors.Errorf("输入文件路径不能为空"))
	}
	if d.OutputPath == "" {
		errs = append(errs, errors.Errorf("输出文件路径不能为空"))
	}
	if d.SequenceColumn == "" {
		errs = append(errs, errors.Errorf("序列列名不能为空"))
	}
	if d.IDColumn == "" {
		errs = append(errs, errors.Errorf("标识列名不能为空"))
	}
	return errs
}

func NewDefaultDatasetConfig() *DatasetConfig {
	return &DatasetConfig{
		InputPath:      "dataset/ENCORI_miRNA_lncRNA.csv",
		OutputPath:     "mirna_sequences.csv",
		SequenceColumn: "miRseq",
		IDColumn:       "miRNAid",
	}
}
