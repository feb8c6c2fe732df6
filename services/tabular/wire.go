package tabular

import (
	"fmt"
	"time"

	"github.com/rcet-nz/rteqc-api/services"
)

// WireField describes one column in the wire-format schema.
type WireField struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// WireSchema carries the column set, in column order.
type WireSchema struct {
	Fields []WireField `json:"fields"`
}

// WireDocument is the self-describing JSON representation of a Table:
// a schema naming each column and its primitive type, and the rows as
// records in original order. Clients can reconstruct a typed table from
// it without external schema knowledge. No synthetic row index is carried.
type WireDocument struct {
	Schema WireSchema               `json:"schema"`
	Data   []map[string]interface{} `json:"data"`
}

// ToWire converts a Table to its wire-format document. Datetime cells are
// rendered as ISO-8601 text, numbers and strings pass through as-is.
func ToWire(t *Table) *WireDocument {
	fields := make([]WireField, len(t.Columns))
	for i, c := range t.Columns {
		fields[i] = WireField{Name: c.Name, Type: c.Type}
	}

	data := make([]map[string]interface{}, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make(map[string]interface{}, len(t.Columns))
		for i, c := range t.Columns {
			switch v := row[i].(type) {
			case time.Time:
				record[c.Name] = FormatTimestamp(v)
			default:
				record[c.Name] = v
			}
		}
		data = append(data, record)
	}

	return &WireDocument{Schema: WireSchema{Fields: fields}, Data: data}
}

// FromWire reconstructs a Table from a wire-format document. The schema
// fixes column order and types; rows are decoded in document order.
func FromWire(doc *WireDocument) (*Table, error) {
	columns := make([]Column, len(doc.Schema.Fields))
	for i, f := range doc.Schema.Fields {
		switch f.Type {
		case TypeString, TypeNumber, TypeDatetime:
		default:
			return nil, services.WrapError(services.ErrorTypeParse,
				fmt.Sprintf("unknown wire type %q for column %q", f.Type, f.Name), nil)
		}
		columns[i] = Column{Name: f.Name, Type: f.Type}
	}

	rows := make([][]interface{}, 0, len(doc.Data))
	for rowIdx, record := range doc.Data {
		row := make([]interface{}, len(columns))
		for i, c := range columns {
			value, err := decodeWireValue(record[c.Name], c.Type)
			if err != nil {
				return nil, services.WrapError(services.ErrorTypeParse,
					fmt.Sprintf("row %d column %q: %v", rowIdx, c.Name, err), err)
			}
			row[i] = value
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

func decodeWireValue(value interface{}, typ ColumnType) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	switch typ {
	case TypeNumber:
		v, ok := value.(float64)
		if !ok {
			return nil, fmt.Errorf("expected number, got %T", value)
		}
		return v, nil
	case TypeDatetime:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected datetime string, got %T", value)
		}
		ts, err := ParseTimestamp(s)
		if err != nil {
			return nil, err
		}
		return ts, nil
	default:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		return s, nil
	}
}
