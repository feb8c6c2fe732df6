package tabular

// ColumnType is the primitive type of a table column as carried on the wire.
type ColumnType string

const (
	TypeString   ColumnType = "string"
	TypeNumber   ColumnType = "number"
	TypeDatetime ColumnType = "datetime"
)

// Column describes one column of a table.
type Column struct {
	Name string
	Type ColumnType
}

// Table is an ordered, in-memory view of a delimited file. Column order
// follows the header row and row order follows the file. Cell values are
// string, float64, time.Time, or nil for an empty cell in a typed column.
type Table struct {
	Columns []Column
	Rows    [][]interface{}
}

// NumRows returns the number of data rows in the table.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
