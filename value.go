package jsongrid

// Kind enumerates the shapes a parsed document node can take.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Field is a single entry of an object value. Objects are stored as ordered
// field lists so that insertion order survives parsing, discovery, and
// re-serialization.
type Field struct {
	Key   string
	Value *Value
}

// Value is the tagged document variant. Exactly one payload field is
// meaningful, selected by Kind. Numbers keep their source lexeme so that
// re-serialization does not lose precision or formatting.
type Value struct {
	Kind Kind
	Bool bool
	Num  string // number lexeme, e.g. "1e3", "-0.5"
	Str  string
	Arr  []*Value
	Obj  []Field
}

// ---- constructors ----

// Null returns a null value.
func Null() *Value { return &Value{Kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

// Number returns a number value holding the given lexeme.
func Number(lexeme string) *Value { return &Value{Kind: KindNumber, Num: lexeme} }

// String returns a string value.
func String(s string) *Value { return &Value{Kind: KindString, Str: s} }

// Array returns an array value over the given elements.
func Array(items ...*Value) *Value { return &Value{Kind: KindArray, Arr: items} }

// Object returns an object value over the given fields, preserving order.
func Object(fields ...Field) *Value { return &Value{Kind: KindObject, Obj: fields} }

// ---- accessors ----

// Get returns the value of the named object field.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != KindObject {
		return nil, false
	}
	for _, f := range v.Obj {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the object field names in insertion order.
func (v *Value) Keys() []string {
	if v == nil || v.Kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.Obj))
	for i, f := range v.Obj {
		keys[i] = f.Key
	}
	return keys
}

// Len returns the element count for arrays and the field count for objects.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.Kind {
	case KindArray:
		return len(v.Arr)
	case KindObject:
		return len(v.Obj)
	default:
		return 0
	}
}

// setField writes key into the object. A duplicate key overwrites the earlier
// value in place, keeping the first position, which matches what a strict JSON
// decode into a map would observe while still preserving order.
func (v *Value) setField(key string, val *Value) {
	for i := range v.Obj {
		if v.Obj[i].Key == key {
			v.Obj[i].Value = val
			return
		}
	}
	v.Obj = append(v.Obj, Field{Key: key, Value: val})
}
