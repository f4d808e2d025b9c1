package archive

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"rna-structure-predict/config"
	"rna-structure-predict/pkg/model"

	_ "github.com/duckdb/duckdb-go/v2"
	"go.uber.org/zap"
)

var duckDB *sql.DB
var duckDBOnce sync.Once

// InitDuckDB 初始化 duckdb 连接
func InitDuckDB(cfg *config.ArchiveConfig) error {
	var err error
	duckDBOnce.Do(func() {
		duckDB, err = sql.Open("duckdb", cfg.DSN())
		if err != nil {
			zap.S().Errorf("连接 duckdb 失败: %v", err)
			return
		}

		// 测试连接
		if err = duckDB.Ping(); err != nil {
			zap.S().Errorf("duckdb 连接测试失败: %v", err)
			return
		}

		zap.S().Debug("duckdb 初始化完成...")
	})
	return err
}

// GetDuckDB 获取 DuckDB 连接
func GetDuckDB() *sql.DB {
	return duckDB
}

// Archive 将处理成功的序列记录镜像到 DuckDB，
// CSV 检查点仍是结果与续跑的唯一依据，归档失败不影响主流程
type Archive struct {
	db *sql.DB
}

func NewArchive(db *sql.DB) *Archive {
	return &Archive{db: db}
}

// EnsureSchema 创建归档表（如不存在）
func (a *Archive) EnsureSchema(ctx context.Context) error {
	if a.db == nil {
		return fmt.Errorf("DuckDB 连接未初始化")
	}

	createTableSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			record_id TEXT,
			run_id TEXT,
			sequence TEXT,
			structure TEXT
		)
	`, model.ProcessedSequence{}.TableName())

	if _, err := a.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("创建归档表失败: %v", err)
	}

	zap.S().Debug("DuckDB 归档表就绪")
	return nil
}

// InsertProcessedSequence 插入一条已处理序列
func (a *Archive) InsertProcessedSequence(ctx context.Context, rec *model.ProcessedSequence) error {
	if a.db == nil {
		return fmt.Errorf("DuckDB 连接未初始化")
	}

	insertSQL := fmt.Sprintf(`
		INSERT INTO %s (record_id, run_id, sequence, structure)
		VALUES (?, ?, ?, ?)
	`, rec.TableName())

	_, err := a.db.ExecContext(ctx, insertSQL,
		rec.RecordID,
		rec.RunID,
		rec.Sequence,
		rec.Structure,
	)

	if err != nil {
		return fmt.Errorf("插入归档数据失败: %v", err)
	}

	return nil
}

// GetProcessedSequenceCount 获取归档中的序列数量
func (a *Archive) GetProcessedSequenceCount(ctx context.Context) (int64, error) {
	if a.db == nil {
		return 0, fmt.Errorf("DuckDB 连接未初始化")
	}

	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", model.ProcessedSequence{}.TableName())
	if err := a.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("查询归档数量失败: %v", err)
	}

	return count, nil
}
