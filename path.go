package jsongrid

import (
	"fmt"
	"strconv"
	"strings"
)

// Seg is one path segment: either an object field name or an array index.
type Seg struct {
	Key     string
	Index   int
	IsIndex bool
}

// FieldSeg returns a field-name segment.
func FieldSeg(key string) Seg { return Seg{Key: key} }

// IndexSeg returns an array-index segment.
func IndexSeg(i int) Seg { return Seg{Index: i, IsIndex: true} }

// Path addresses a unique location inside a document value, rooted at the $
// sentinel. It is exact and reversible: String renders the display form,
// ParsePath reads it back, and Resolve/Set address the live document so a
// caller can locate or mutate the same spot later.
type Path []Seg

// Field returns a new path extended by a field segment. The receiver is not
// modified.
func (p Path) Field(key string) Path {
	return append(append(Path{}, p...), FieldSeg(key))
}

// Index returns a new path extended by an index segment. The receiver is not
// modified.
func (p Path) Index(i int) Path {
	return append(append(Path{}, p...), IndexSeg(i))
}

// String renders the path as a dotted display string. Index segments attach as
// a bracketed suffix to the preceding segment ($.data[0], never $.data.[0]).
// Field names unsafe for dotted rendering are bracket-quoted ($["a.b"]).
func (p Path) String() string {
	b := &strings.Builder{}
	b.WriteByte('$')
	for _, s := range p {
		switch {
		case s.IsIndex:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
		case isBareKey(s.Key):
			b.WriteByte('.')
			b.WriteString(s.Key)
		default:
			b.WriteByte('[')
			b.WriteString(strconv.Quote(s.Key))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// Resolve walks the path from root and returns the addressed value.
func (p Path) Resolve(root *Value) (*Value, bool) {
	cur := root
	for _, s := range p {
		if cur == nil {
			return nil, false
		}
		if s.IsIndex {
			if cur.Kind != KindArray || s.Index < 0 || s.Index >= len(cur.Arr) {
				return nil, false
			}
			cur = cur.Arr[s.Index]
			continue
		}
		v, ok := cur.Get(s.Key)
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, cur != nil
}

// Set replaces the value addressed by the path. The root itself cannot be
// replaced; an empty path reports false. The containing structure must already
// exist, Set does not create intermediate nodes.
func (p Path) Set(root *Value, v *Value) bool {
	if len(p) == 0 || root == nil || v == nil {
		return false
	}
	parent, ok := Path(p[:len(p)-1]).Resolve(root)
	if !ok {
		return false
	}
	last := p[len(p)-1]
	if last.IsIndex {
		if parent.Kind != KindArray || last.Index < 0 || last.Index >= len(parent.Arr) {
			return false
		}
		parent.Arr[last.Index] = v
		return true
	}
	if parent.Kind != KindObject {
		return false
	}
	for i := range parent.Obj {
		if parent.Obj[i].Key == last.Key {
			parent.Obj[i].Value = v
			return true
		}
	}
	return false
}

// ParsePath reads a display string produced by String back into a Path.
func ParsePath(s string) (Path, error) {
	if s == "" || s[0] != '$' {
		return nil, fmt.Errorf("path must start with $: %q", s)
	}
	var p Path
	rest := s[1:]
	for len(rest) > 0 {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			end := strings.IndexAny(rest, ".[")
			if end == -1 {
				end = len(rest)
			}
			if end == 0 {
				return nil, fmt.Errorf("empty field segment in %q", s)
			}
			p = append(p, FieldSeg(rest[:end]))
			rest = rest[end:]
		case '[':
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, fmt.Errorf("missing ] in %q", s)
			}
			inner := rest[1:end]
			if len(inner) > 0 && inner[0] == '"' {
				key, err := strconv.Unquote(inner)
				if err != nil {
					return nil, fmt.Errorf("bad quoted segment %s in %q", inner, s)
				}
				p = append(p, FieldSeg(key))
			} else {
				i, err := strconv.Atoi(inner)
				if err != nil || i < 0 {
					return nil, fmt.Errorf("bad index segment %q in %q", inner, s)
				}
				p = append(p, IndexSeg(i))
			}
			rest = rest[end+1:]
		default:
			return nil, fmt.Errorf("unexpected %q in path %q", rest[0], s)
		}
	}
	return p, nil
}

// isBareKey reports whether a field name can be rendered after a dot without
// quoting.
func isBareKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
