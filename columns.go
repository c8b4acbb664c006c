package jsongrid

import (
	"regexp"

	gojson "github.com/goccy/go-json"
)

// CellType classifies a grid column.
type CellType string

const (
	TypeNull      CellType = "null"
	TypeUndefined CellType = "undefined"
	TypeString    CellType = "string"
	TypeNumber    CellType = "number"
	TypeBoolean   CellType = "boolean"
	TypeDate      CellType = "date"
	TypeObject    CellType = "object"
	TypeArray     CellType = "array"
)

// GridColumn is one derived column: its key and the type fixed by the first
// row that defines a value for it.
type GridColumn struct {
	Key  string
	Type CellType
}

// datePattern matches ISO-8601-like strings: YYYY-MM-DD, optionally followed
// by T or a space, HH:MM:SS, up to 3 fractional-second digits, and a Z or
// +-HH:MM offset.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}:\d{2}(\.\d{1,3})?(Z|[+-]\d{2}:\d{2})?)?$`)

// inferColumns derives the ordered column list from the primary rows: the
// ordered union of row keys, each typed by its first defined cell, or
// "undefined" when no row ever defines it.
func inferColumns(rows []GridRow) []GridColumn {
	var order []string
	seen := make(map[string]bool)
	for _, r := range rows {
		if r.Secondary {
			continue
		}
		for _, k := range r.Keys {
			if !seen[k] {
				seen[k] = true
				order = append(order, k)
			}
		}
	}

	cols := make([]GridColumn, 0, len(order))
	for _, k := range order {
		t := TypeUndefined
		for _, r := range rows {
			if r.Secondary {
				continue
			}
			if n := r.Nested[k]; n != nil {
				if n.Kind() == KindArray {
					t = TypeArray
				} else {
					t = TypeObject
				}
				break
			}
			cell, ok := r.Cells[k]
			if !ok {
				continue
			}
			t = cellType(cell)
			break
		}
		cols = append(cols, GridColumn{Key: k, Type: t})
	}
	return cols
}

func cellType(cell any) CellType {
	switch c := cell.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBoolean
	case gojson.Number:
		return TypeNumber
	case string:
		if datePattern.MatchString(c) {
			return TypeDate
		}
		return TypeString
	default:
		return TypeString
	}
}
