package predictor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// fakeTool 写一个模拟 ipknot 的 shell 脚本，返回其路径
func fakeTool(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ipknot")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("写入脚本失败: %v", err)
	}
	return path
}

// assertWorkDirEmpty 校验临时 FASTA 文件已被清理
func assertWorkDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("临时文件未清理: %v", entries)
	}
}

func TestPredictParsesThirdLine(t *testing.T) {
	capture := filepath.Join(t.TempDir(), "input.fasta")
	tool := fakeTool(t, "cp \"$1\" "+capture+"\necho \">A\"\necho \"ACGU\"\necho \"((..))\"\n")
	workDir := t.TempDir()

	p := &IPknot{BinaryPath: tool, WorkDir: workDir}
	structure, err := p.Predict(context.Background(), "ACGU", "A")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if structure != "((..))" {
		t.Fatalf("应取标准输出第三行: %q", structure)
	}

	// 传给工具的 FASTA 内容应为单条记录
	got, err := os.ReadFile(capture)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != ">A\nACGU\n" {
		t.Fatalf("FASTA 内容不符: %q", got)
	}
	assertWorkDirEmpty(t, workDir)
}

func TestPredictNonZeroExitIsSoftFailure(t *testing.T) {
	tool := fakeTool(t, "exit 1\n")
	workDir := t.TempDir()

	p := &IPknot{BinaryPath: tool, WorkDir: workDir}
	structure, err := p.Predict(context.Background(), "ACGU", "X")
	if err != nil {
		t.Fatalf("非零退出应转为软失败，而不是错误: %v", err)
	}
	if structure != "" {
		t.Fatalf("软失败应返回空结构串: %q", structure)
	}
	assertWorkDirEmpty(t, workDir)
}

func TestPredictMissingBinaryIsFatal(t *testing.T) {
	workDir := t.TempDir()

	p := &IPknot{BinaryPath: filepath.Join(t.TempDir(), "no-such-tool"), WorkDir: workDir}
	if _, err := p.Predict(context.Background(), "ACGU", "X"); err == nil {
		t.Fatal("子进程无法启动应返回错误")
	}
	assertWorkDirEmpty(t, workDir)
}

func TestPredictShortOutputIsFatal(t *testing.T) {
	tool := fakeTool(t, "echo \">A\"\n")
	workDir := t.TempDir()

	p := &IPknot{BinaryPath: tool, WorkDir: workDir}
	if _, err := p.Predict(context.Background(), "ACGU", "A"); err == nil {
		t.Fatal("输出不足三行应返回错误")
	}
	assertWorkDirEmpty(t, workDir)
}
