package predictor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"rna-structure-predict/config"

	"go.uber.org/zap"
)

// IPknot 包装外部的 ipknot 二级结构预测工具。
// 每次调用写一个单条记录的临时 FASTA 文件，以文件路径为参数
// 启动子进程，成功时取标准输出的第三行作为结构串。
type IPknot struct {
	BinaryPath string
	Timeout    time.Duration // 0 表示不限时
	WorkDir    string        // 空表示系统临时目录
}

func NewIPknot(cfg *config.PredictorConfig) *IPknot {
	return &IPknot{
		BinaryPath: cfg.BinaryPath,
		Timeout:    cfg.TimeoutDuration(),
		WorkDir:    cfg.WorkDir,
	}
}

// Predict 对单条序列调用外部工具预测二级结构。
// 工具以非零状态退出时不视为错误：记录警告并返回空结构串
// （软失败，由调用方跳过该行）。临时文件创建失败、子进程
// 无法启动、输出行数不足三行等异常情况返回错误（致命）。
// 临时 FASTA 文件无论成功失败都会被删除。
func (p *IPknot) Predict(ctx context.Context, sequence, recordID string) (string, error) {
	tf, err := os.CreateTemp(p.WorkDir, "seq-*.fasta")
	if err != nil {
		return "", fmt.Errorf("创建临时 FASTA 文件失败: %v", err)
	}
	fname := tf.Name()
	defer os.Remove(fname)

	if _, err := fmt.Fprintf(tf, ">%s\n%s\n", recordID, sequence); err != nil {
		tf.Close()
		return "", fmt.Errorf("写入临时 FASTA 文件失败: %v", err)
	}
	if err := tf.Close(); err != nil {
		return "", fmt.Errorf("关闭临时 FASTA 文件失败: %v", err)
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	out, err := exec.CommandContext(ctx, p.BinaryPath, fname).Output()
	if err != nil {
		// 只有工具非零退出是软失败，启动失败等其他异常照常上抛
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			zap.S().Warnf("记录 %s 结构预测失败: %v", recordID, err)
			return "", nil
		}
		return "", fmt.Errorf("记录 %s 调用预测工具失败: %v", recordID, err)
	}

	// ipknot 的输出固定为三行：标识回显、序列回显、结构串，
	// 按位置取第三行，与工具的已知输出布局保持一致
	lines := strings.Split(string(out), "\n")
	if len(lines) < 3 {
		return "", fmt.Errorf("记录 %s 的预测输出只有 %d 行，无法解析结构", recordID, len(lines))
	}
	return lines[2], nil
}
