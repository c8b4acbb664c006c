package jsongrid

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

// GridRow is one normalized row. Keys lists the row's column names in order
// (stable keys first); Cells maps the keys that are actually defined to a
// presentational value. A stable key missing from an element stays in Keys but
// has no Cells entry, which renders as an undefined cell. Object and array
// fields are never inlined: the cell holds a short summary and Nested holds a
// lazily expandable view of the underlying structure.
type GridRow struct {
	Keys      []string
	Cells     map[string]any
	Nested    map[string]*Nested
	Secondary bool
}

// Defined reports whether the row carries a value for the column key.
func (r GridRow) Defined(key string) bool {
	_, ok := r.Cells[key]
	return ok
}

// Nested wraps an embedded object or array so its content can be revealed
// progressively without re-deriving from the source document. Expansion is
// lazy: Fields materializes one level on demand.
type Nested struct {
	val *Value
}

// Kind returns the wrapped value's kind (KindObject or KindArray).
func (n *Nested) Kind() Kind { return n.val.Kind }

// Value returns the wrapped document value.
func (n *Nested) Value() *Value { return n.val }

// Summary returns the short presentational form shown in the primary cell.
func (n *Nested) Summary() string { return summaryOf(n.val) }

// Fields expands one level of the wrapped value. Array elements are keyed by
// their index.
func (n *Nested) Fields() []NestedField {
	switch n.val.Kind {
	case KindObject:
		out := make([]NestedField, 0, len(n.val.Obj))
		for _, f := range n.val.Obj {
			out = append(out, nestedField(f.Key, f.Value))
		}
		return out
	case KindArray:
		out := make([]NestedField, 0, len(n.val.Arr))
		for i, el := range n.val.Arr {
			out = append(out, nestedField(fmt.Sprintf("%d", i), el))
		}
		return out
	default:
		return nil
	}
}

// NestedField is one entry of an expanded nested value: key, summarized value,
// and further nesting when the value is itself an object or array.
type NestedField struct {
	Key    string
	Value  any
	Nested *Nested
}

func nestedField(key string, v *Value) NestedField {
	if v != nil && (v.Kind == KindObject || v.Kind == KindArray) {
		child := &Nested{val: v}
		return NestedField{Key: key, Value: child.Summary(), Nested: child}
	}
	return NestedField{Key: key, Value: scalarCell(v)}
}

// normalizeRows converts the winning array's elements into rows. Total: every
// element maps to exactly one row. Synthetic value mode applies when the
// scorer classified the array as primitive; non-object elements inside an
// object-shaped array degrade per element to the same one-field form. An
// object array whose genuine stable key is literally "value" stays in object
// mode.
func normalizeRows(arr *Value, stableKeys []string, valueMode bool) []GridRow {
	rows := make([]GridRow, 0, len(arr.Arr))
	for _, el := range arr.Arr {
		if valueMode || el == nil || el.Kind != KindObject {
			rows = append(rows, valueRow(el))
			continue
		}
		rows = append(rows, objectRow(el, stableKeys))
	}
	return rows
}

func valueRow(el *Value) GridRow {
	row := GridRow{Keys: []string{SyntheticValueKey}, Cells: make(map[string]any, 1)}
	setCell(&row, SyntheticValueKey, el)
	return row
}

func objectRow(el *Value, stableKeys []string) GridRow {
	row := GridRow{
		Keys:  append([]string(nil), stableKeys...),
		Cells: make(map[string]any, len(el.Obj)),
	}
	known := make(map[string]bool, len(stableKeys))
	for _, k := range stableKeys {
		known[k] = true
	}
	for _, f := range el.Obj {
		if !known[f.Key] {
			known[f.Key] = true
			row.Keys = append(row.Keys, f.Key)
		}
		setCell(&row, f.Key, f.Value)
	}
	return row
}

func setCell(row *GridRow, key string, v *Value) {
	if v != nil && (v.Kind == KindObject || v.Kind == KindArray) {
		n := &Nested{val: v}
		row.Cells[key] = n.Summary()
		if row.Nested == nil {
			row.Nested = make(map[string]*Nested)
		}
		row.Nested[key] = n
		return
	}
	row.Cells[key] = scalarCell(v)
}

// scalarCell maps a scalar document value to its presentational form. Numbers
// surface as json.Number so callers keep the exact lexeme.
func scalarCell(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindNumber:
		return gojson.Number(v.Num)
	case KindString:
		return v.Str
	default:
		return nil
	}
}

func summaryOf(v *Value) string {
	switch v.Kind {
	case KindObject:
		return "{…}"
	case KindArray:
		if len(v.Arr) == 1 {
			return "[1 item]"
		}
		return fmt.Sprintf("[%d items]", len(v.Arr))
	default:
		return ""
	}
}
