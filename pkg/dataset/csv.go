package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"rna-structure-predict/pkg/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Load 读取输入 CSV 并丢弃缺少必需列的行。
// 首行为表头；短行（字段数不足以覆盖必需列）视为该列缺失，
// 空字符串是正常存在的值，不会被丢弃。
// 读取或解析失败属于致命错误，记录日志后原样返回。
func Load(path, requiredColumn string) (*model.Table, error) {
	raw, err := Read(path)
	if err != nil {
		zap.S().Errorf("读取输入文件 %s 失败: %v", path, err)
		return nil, err
	}

	if !raw.HasColumn(requiredColumn) {
		err := errors.Errorf("输入文件 %s 缺少必需列 %q", path, requiredColumn)
		zap.S().Errorf("%v", err)
		return nil, err
	}

	out := model.NewTable(raw.Columns)
	for _, row := range raw.Rows {
		if _, ok := raw.Value(row, requiredColumn); !ok {
			continue
		}
		out.Append(row)
	}

	dropped := raw.Len() - out.Len()
	zap.S().Infof("输入共 %d 行，丢弃缺少 %q 列的 %d 行", raw.Len(), requiredColumn, dropped)
	return out, nil
}

// Read 读取一个 CSV 文件为内存表格，不做任何过滤。
// 用于加载检查点文件
func Read(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("打开文件失败: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // 允许短行，缺失字段由上层判断
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Errorf("解析 CSV 失败: %v", err)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("文件 %s 没有表头行", path)
	}

	t := model.NewTable(records[0])
	for _, rec := range records[1:] {
		t.Append(model.Row(rec))
	}
	return t, nil
}

// Write 将整张表格全量写入目标路径。
// 先写入同目录下的临时文件再重命名，检查点在任何时刻都是完整的
func Write(path string, t *model.Table) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".checkpoint-*.csv")
	if err != nil {
		return errors.Errorf("创建临时文件失败: %v", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	writeErr := w.Write(t.Columns)
	for _, row := range t.Rows {
		if writeErr != nil {
			break
		}
		writeErr = w.Write(row)
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}
	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmpName)
		return errors.Errorf("写入 CSV 失败: %v", writeErr)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Errorf("重命名检查点失败: %v", err)
	}
	return nil
}
