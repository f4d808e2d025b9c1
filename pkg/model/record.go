package model

// Table 表示一张内存中的表格：表头列名加若干数据行。
// 列结构在加载时一次性确定（固定模式），之后不再变化。
type Table struct {
	Columns []string
	Rows    []Row

	index map[string]int
}

// Row 表示表格中的一行，值的顺序与所属 Table 的 Columns 对齐。
// 短行（值的个数少于列数）表示尾部字段缺失。
type Row []string

// NewTable 创建一张只有表头的空表
func NewTable(columns []string) *Table {
	t := &Table{Columns: append([]string(nil), columns...)}
	t.buildIndex()
	return t
}

func (t *Table) buildIndex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		t.index[c] = i
	}
}

// ColumnIndex 返回列名对应的下标，列不存在时第二个返回值为 false
func (t *Table) ColumnIndex(name string) (int, bool) {
	if t.index == nil {
		t.buildIndex()
	}
	i, ok := t.index[name]
	return i, ok
}

// HasColumn 判断表头中是否存在指定列
func (t *Table) HasColumn(name string) bool {
	_, ok := t.ColumnIndex(name)
	return ok
}

// Value 取某一行指定列的值。列不存在或该行太短（字段缺失）时
// 第二个返回值为 false；空字符串是正常存在的值，不算缺失。
func (t *Table) Value(row Row, column string) (string, bool) {
	i, ok := t.ColumnIndex(column)
	if !ok || i >= len(row) {
		return "", false
	}
	return row[i], true
}

// Append 追加一行数据
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Len 返回数据行数
func (t *Table) Len() int {
	return len(t.Rows)
}

// DeduplicateBy 按指定列的值去重，保留首次出现的行，行序不变。
// 该列缺失的行不参与去重，原样保留（由上层决定如何处理）。
func (t *Table) DeduplicateBy(column string) *Table {
	out := NewTable(t.Columns)
	seen := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		v, ok := t.Value(row, column)
		if ok {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
		}
		out.Append(row)
	}
	return out
}

// StructureColumn 返回结构预测结果所在的派生列名
func StructureColumn(sequenceColumn string) string {
	return sequenceColumn + "_structure"
}
