package model

// ProcessedSequence 表示归档到 DuckDB 的一条已处理序列
type ProcessedSequence struct {
	RecordID  string `json:"record_id"` // 来自 id 列的记录标识
	RunID     string `json:"run_id"`    // 本次运行的 UUID
	Sequence  string `json:"sequence"`  // 原始核酸序列
	Structure string `json:"structure"` // ipknot 预测出的二级结构
}

// TableName 指定归档表名
func (ProcessedSequence) TableName() string {
	return "processed_sequences"
}
