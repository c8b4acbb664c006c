package jsongrid

import (
	"bytes"
	"fmt"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// EncodeJSON renders the document as compact JSON, preserving object key
// order and number lexemes. Together with Path.Set this gives callers the
// edit-back path: locate a cell, replace the scalar, re-serialize.
func EncodeJSON(v *Value) ([]byte, error) {
	var b bytes.Buffer
	if err := writeJSON(&b, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// EncodeJSONIndent is EncodeJSON followed by indentation.
func EncodeJSONIndent(v *Value, prefix, indent string) ([]byte, error) {
	compact, err := EncodeJSON(v)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := gojson.Indent(&out, compact, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// MarshalJSON implements json.Marshaler so a Value embeds naturally in other
// serialized structures.
func (v *Value) MarshalJSON() ([]byte, error) { return EncodeJSON(v) }

func writeJSON(b *bytes.Buffer, v *Value) error {
	if v == nil {
		b.WriteString("null")
		return nil
	}
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case KindNumber:
		if v.Num == "" {
			b.WriteByte('0')
		} else {
			b.WriteString(v.Num)
		}
	case KindString:
		return writeJSONString(b, v.Str)
	case KindArray:
		b.WriteByte('[')
		for i, el := range v.Arr {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSON(b, el); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, f := range v.Obj {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSONString(b, f.Key); err != nil {
				return err
			}
			b.WriteByte(':')
			if err := writeJSON(b, f.Value); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode kind %s", v.Kind)
	}
	return nil
}

func writeJSONString(b *bytes.Buffer, s string) error {
	esc, err := gojson.Marshal(s)
	if err != nil {
		return err
	}
	b.Write(esc)
	return nil
}
