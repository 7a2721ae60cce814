package jsonedit

import "fmt"

// Row type tags. RowArray and RowObject mark structural placeholder rows:
// their Value belongs to descendant nodes and is never inlined into
// normalized output.
const (
	RowString  = "string"
	RowNumber  = "number"
	RowBoolean = "boolean"
	RowNull    = "null"
	RowArray   = "array"
	RowObject  = "object"
)

// FieldRow is one displayed field of a node. Keyed is false only for the
// single unkeyed row of a node that is itself a scalar. Row lists are a
// derived projection of the document, rebuilt whenever a node is displayed
// and never mutated in place.
type FieldRow struct {
	Key   string
	Keyed bool
	Value any
	Type  string
}

// ScalarRow builds a keyed scalar row.
func ScalarRow(key string, value any, typ string) FieldRow {
	return FieldRow{Key: key, Keyed: true, Value: value, Type: typ}
}

// UnkeyedRow builds the single row of a node that is itself a scalar.
func UnkeyedRow(value any, typ string) FieldRow {
	return FieldRow{Value: value, Type: typ}
}

// Normalize collapses a node's displayed rows into canonical JSON text to
// seed an edit buffer.
//
// An empty row list yields "{}". A single unkeyed row yields the scalar's
// text directly, not object-wrapped: a string renders bare, every other
// scalar as its JSON literal. Otherwise keyed scalar rows become object
// members in row order; array/object placeholder rows and unkeyed rows are
// skipped.
//
// Normalize is total: it always returns text.
func Normalize(rows []FieldRow) []byte {
	if len(rows) == 0 {
		return []byte("{}")
	}
	if len(rows) == 1 && !rows[0].Keyed {
		return scalarText(rows[0].Value)
	}
	obj := NewObject()
	for _, row := range rows {
		if row.Type == RowArray || row.Type == RowObject {
			continue
		}
		if !row.Keyed {
			continue
		}
		obj.SetField(row.Key, rowValue(row.Value))
	}
	return obj.Encode()
}

func scalarText(v any) []byte {
	if s, ok := v.(string); ok {
		return []byte(s)
	}
	return rowValue(v).Encode()
}

func rowValue(v any) *Value {
	val, err := FromGo(v)
	if err != nil {
		// Row values come from a parsed document, so this does not happen in
		// practice; degrade to the printed form rather than fail.
		return FromString(fmt.Sprint(v))
	}
	return val
}
