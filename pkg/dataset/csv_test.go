package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"rna-structure-predict/pkg/model"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写入测试文件失败: %v", err)
	}
	return path
}

func TestLoadDropsRowsMissingRequiredColumn(t *testing.T) {
	path := writeFile(t, "id,seq\nA,ACGU\nB\nC,GGUU\n")

	tbl, err := Load(path, "seq")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// B 行太短，seq 字段缺失，应被丢弃
	want := []model.Row{{"A", "ACGU"}, {"C", "GGUU"}}
	if !reflect.DeepEqual(tbl.Rows, want) {
		t.Fatalf("过滤结果不符: got=%v want=%v", tbl.Rows, want)
	}
}

func TestLoadKeepsEmptyString(t *testing.T) {
	path := writeFile(t, "id,seq\nA,ACGU\nB,\n")

	tbl, err := Load(path, "seq")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// 空字符串不是缺失，B 行保留
	if tbl.Len() != 2 {
		t.Fatalf("期望 2 行，得到 %d 行: %v", tbl.Len(), tbl.Rows)
	}
}

func TestLoadMissingRequiredColumnIsFatal(t *testing.T) {
	path := writeFile(t, "id,name\nA,x\n")

	if _, err := Load(path, "seq"); err == nil {
		t.Fatal("表头缺少必需列应返回错误")
	}
}

func TestLoadNonexistentFileIsFatal(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv"), "seq"); err == nil {
		t.Fatal("文件不存在应返回错误")
	}
}

func TestReadEmptyFileIsFatal(t *testing.T) {
	path := writeFile(t, "")

	if _, err := Read(path); err == nil {
		t.Fatal("没有表头行应返回错误")
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	tbl := model.NewTable([]string{"id", "seq", "seq_structure"})
	tbl.Append(model.Row{"A", "ACGU", "((..))"})
	tbl.Append(model.Row{"B", "", "...."})

	if err := Write(path, tbl); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !reflect.DeepEqual(got.Columns, tbl.Columns) {
		t.Fatalf("表头不符: got=%v want=%v", got.Columns, tbl.Columns)
	}
	if !reflect.DeepEqual(got.Rows, tbl.Rows) {
		t.Fatalf("数据行不符: got=%v want=%v", got.Rows, tbl.Rows)
	}
}

func TestWriteOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	old := model.NewTable([]string{"id"})
	old.Append(model.Row{"stale"})
	if err := Write(path, old); err != nil {
		t.Fatalf("Write: %v", err)
	}

	tbl := model.NewTable([]string{"id"})
	tbl.Append(model.Row{"A"})
	tbl.Append(model.Row{"B"})
	if err := Write(path, tbl); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Len() != 2 || got.Rows[0][0] != "A" {
		t.Fatalf("全量覆盖失败: %v", got.Rows)
	}

	// 目录里不应残留临时文件
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("目录中应只有输出文件: %v", entries)
	}
}
