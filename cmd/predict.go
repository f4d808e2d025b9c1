package cmd

import (
	"errors"
	"os"

	"rna-structure-predict/config"
	"rna-structure-predict/pkg/archive"
	"rna-structure-predict/pkg/dataset"
	"rna-structure-predict/pkg/logging"
	"rna-structure-predict/pkg/predictor"
	"rna-structure-predict/pkg/service"
	"rna-structure-predict/pkg/signals"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewPredictCommand() *cobra.Command {
	var configFilePath string
	var inputPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "批量预测 RNA 序列的二级结构",
		Long:  "从 CSV 文件读取序列，按序列去重后逐条调用外部 ipknot 预测二级结构，每成功一条立即写入输出 CSV，输出文件同时作为断点续跑的检查点",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.TryLoadFromDisk(configFilePath)
			if err != nil {
				if !os.IsNotExist(err) {
					zap.S().Errorf("读取本地配置文件错误:%s", err.Error())
					return
				}
				// 没有配置文件时按默认值运行
				zap.S().Infof("未找到配置文件 %s，使用默认配置", configFilePath)
				cfg = config.NewDefaultGlobalConfig()
			}
			if inputPath != "" {
				cfg.Dataset.InputPath = inputPath
			}
			if outputPath != "" {
				cfg.Dataset.OutputPath = outputPath
			}
			if errs := cfg.Validate(); len(errs) > 0 {
				zap.S().Errorf("本地配置文件验证错误:%s", errors.Join(errs...))
				return
			}

			if err := logging.Setup(cfg.Log); err != nil {
				zap.S().Errorf("初始化日志错误:%s", err.Error())
				return
			}

			ctx := signals.SetupSignalHandler()

			table, err := dataset.Load(cfg.Dataset.InputPath, cfg.Dataset.SequenceColumn)
			if err != nil {
				zap.S().Errorf("加载输入数据失败:%s", err.Error())
				return
			}

			// 初始化 DuckDB 归档（可选）
			var resultArchive *archive.Archive
			if cfg.Archive.Enabled() {
				if err := archive.InitDuckDB(cfg.Archive); err != nil {
					zap.S().Errorf("DuckDB 连接错误:%s", err.Error())
					return
				}
				resultArchive = archive.NewArchive(archive.GetDuckDB())
				if err := resultArchive.EnsureSchema(ctx); err != nil {
					zap.S().Errorf("初始化归档表错误:%s", err.Error())
					return
				}
			}

			// 执行批量预测
			var sink service.ResultArchive
			if resultArchive != nil {
				sink = resultArchive
			}
			batchService := service.NewBatchService(predictor.NewIPknot(cfg.Predictor), sink)
			if _, err := batchService.Run(ctx, table, cfg.Dataset.SequenceColumn, cfg.Dataset.IDColumn, cfg.Dataset.OutputPath); err != nil {
				zap.S().Errorf("批量处理失败:%s", err.Error())
				return
			}

			// 显示统计信息
			if resultArchive != nil {
				count, err := resultArchive.GetProcessedSequenceCount(ctx)
				if err != nil {
					zap.S().Warnf("获取归档统计信息失败:%s", err.Error())
				} else {
					zap.S().Infof("DuckDB 归档中的序列数量: %d", count)
				}
			}
			zap.S().Infof("全部处理完成，结果已写入 %s", cfg.Dataset.OutputPath)
		},
	}

	cmd.Flags().StringVarP(&configFilePath, "config", "c", "./etc/config.yaml", "配置文件路径")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "输入 CSV 路径（覆盖配置文件）")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "输出 CSV 路径（覆盖配置文件）")
	return cmd
}
