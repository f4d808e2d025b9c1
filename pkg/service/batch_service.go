package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"rna-structure-predict/pkg/dataset"
	"rna-structure-predict/pkg/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StructurePredictor 对单条序列做结构预测。
// 返回空结构串表示该条序列预测失败（软失败），
// 返回 error 表示不可恢复的异常
type StructurePredictor interface {
	Predict(ctx context.Context, sequence, recordID string) (string, error)
}

// ResultArchive 将处理成功的记录镜像到归档库（可选）
type ResultArchive interface {
	InsertProcessedSequence(ctx context.Context, rec *model.ProcessedSequence) error
}

type BatchService struct {
	predictor StructurePredictor
	archive   ResultArchive // 可为 nil
	runID     string
}

func NewBatchService(p StructurePredictor, archive ResultArchive) *BatchService {
	return &BatchService{
		predictor: p,
		archive:   archive,
		runID:     uuid.NewString(),
	}
}

// Run 逐行处理输入表格：按序列列去重后依次调用预测器，
// 每成功一行立即把累积结果全量写入 outputPath（检查点）。
// outputPath 已存在时从该文件继续累积（断点续跑）。
// 预测失败的行记录警告后跳过，本次运行内不重试。
//
// TODO: 续跑时未按 idColumn 与检查点内容去重，已在检查点中的
// 记录会被重新预测并追加为重复行；修复方式是加载检查点后收集
// 其 idColumn 值集合，迭代时跳过已存在的记录
func (s *BatchService) Run(ctx context.Context, table *model.Table, sequenceColumn, idColumn, outputPath string) (*model.Table, error) {
	if !table.HasColumn(sequenceColumn) {
		return nil, fmt.Errorf("输入表格缺少序列列 %q", sequenceColumn)
	}
	if !table.HasColumn(idColumn) {
		return nil, fmt.Errorf("输入表格缺少标识列 %q", idColumn)
	}
	structureColumn := model.StructureColumn(sequenceColumn)

	acc, err := s.initAccumulator(table, structureColumn, outputPath)
	if err != nil {
		return nil, err
	}

	deduped := table.DeduplicateBy(sequenceColumn)
	zap.S().Infof("按 %q 列去重后剩余 %d 条待处理记录（运行 ID: %s）", sequenceColumn, deduped.Len(), s.runID)

	startTime := time.Now()
	processed := 0
	failed := 0

	for i, row := range deduped.Rows {
		if ctx.Err() != nil {
			zap.S().Warnf("收到停止信号，在第 %d 条记录前中断处理", i+1)
			break
		}

		seq, ok := deduped.Value(row, sequenceColumn)
		if !ok {
			zap.S().Warnf("第 %d 行缺少序列字段，跳过", i+1)
			failed++
			continue
		}
		id, _ := deduped.Value(row, idColumn)

		structure, err := s.predictor.Predict(ctx, seq, id)
		if err != nil {
			return acc, err
		}
		if structure == "" {
			zap.S().Warnf("记录 %s 未得到结构预测结果，跳过", id)
			failed++
			continue
		}

		acc.Append(s.mapRow(deduped, row, acc, structureColumn, structure))
		if err := dataset.Write(outputPath, acc); err != nil {
			return acc, fmt.Errorf("保存检查点失败: %v", err)
		}
		processed++
		zap.S().Infof("记录 %s 处理完成，检查点已保存（累计 %d 条）", id, acc.Len())

		if s.archive != nil {
			rec := &model.ProcessedSequence{
				RecordID:  id,
				RunID:     s.runID,
				Sequence:  seq,
				Structure: structure,
			}
			if err := s.archive.InsertProcessedSequence(ctx, rec); err != nil {
				zap.S().Warnf("记录 %s 写入归档失败: %v", id, err)
			}
		}
	}

	zap.S().Infof("处理完成: 成功 %d 条, 失败 %d 条", processed, failed)
	zap.S().Infof("耗时：%s", time.Since(startTime))
	return acc, nil
}

// initAccumulator 初始化累积表格：检查点文件存在时从它继续，
// 否则新建一张输入列加结构列的空表
func (s *BatchService) initAccumulator(table *model.Table, structureColumn, outputPath string) (*model.Table, error) {
	if _, err := os.Stat(outputPath); err == nil {
		acc, err := dataset.Read(outputPath)
		if err != nil {
			return nil, fmt.Errorf("加载检查点 %s 失败: %v", outputPath, err)
		}
		if !acc.HasColumn(structureColumn) {
			return nil, fmt.Errorf("检查点 %s 缺少结构列 %q，不是本工具的输出文件", outputPath, structureColumn)
		}
		if len(acc.Columns) != len(table.Columns)+1 {
			zap.S().Warnf("检查点 %s 的列结构与输入不一致，按列名对齐追加", outputPath)
		}
		zap.S().Infof("从检查点 %s 继续，已有 %d 条记录", outputPath, acc.Len())
		return acc, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("检查检查点文件失败: %v", err)
	}

	columns := append(append([]string(nil), table.Columns...), structureColumn)
	return model.NewTable(columns), nil
}

// mapRow 把输入行按列名对齐到累积表格的列结构，并填入结构列。
// 输入行中不存在的列留空
func (s *BatchService) mapRow(src *model.Table, row model.Row, acc *model.Table, structureColumn, structure string) model.Row {
	out := make(model.Row, len(acc.Columns))
	for i, col := range acc.Columns {
		if col == structureColumn {
			out[i] = structure
			continue
		}
		if v, ok := src.Value(row, col); ok {
			out[i] = v
		}
	}
	return out
}
