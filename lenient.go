package jsongrid

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// parseLenient reads a single JSON5-style document: comments, trailing commas,
// unquoted keys, and single-quoted strings are accepted on top of strict JSON.
// Missing values are still rejected, so broken input keeps failing here and
// surfaces as a ParseFailure downstream.
func parseLenient(text string) (*Value, error) {
	p := &lenientParser{src: text}
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		return nil, p.errf("unexpected content after top-level value")
	}
	return v, nil
}

type lenientParser struct {
	src string
	pos int
}

func (p *lenientParser) errf(format string, a ...any) error {
	return fmt.Errorf("offset %d: %s", p.pos, fmt.Sprintf(format, a...))
}

// skipTrivia consumes whitespace and // or /* */ comments.
func (p *lenientParser) skipTrivia() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f':
			p.pos++
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/':
			nl := strings.IndexByte(p.src[p.pos:], '\n')
			if nl == -1 {
				p.pos = len(p.src)
			} else {
				p.pos += nl + 1
			}
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*':
			end := strings.Index(p.src[p.pos+2:], "*/")
			if end == -1 {
				p.pos = len(p.src)
				return p.errf("unterminated block comment")
			}
			p.pos += 2 + end + 2
		default:
			return nil
		}
	}
	return nil
}

func (p *lenientParser) value() (*Value, error) {
	if p.pos >= len(p.src) {
		return nil, p.errf("value expected")
	}
	switch c := p.src[p.pos]; {
	case c == '{':
		return p.object()
	case c == '[':
		return p.array()
	case c == '"' || c == '\'':
		s, err := p.stringLit(c)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	case isIdentByte(c, true):
		return p.literal()
	default:
		return nil, p.errf("unexpected character %q", c)
	}
}

func (p *lenientParser) object() (*Value, error) {
	p.pos++ // '{'
	obj := Object()
	for {
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) {
			return nil, p.errf("unterminated object")
		}
		if p.src[p.pos] == '}' {
			p.pos++
			return obj, nil
		}
		key, err := p.key()
		if err != nil {
			return nil, err
		}
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			return nil, p.errf("expected : after key %q", key)
		}
		p.pos++
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		obj.setField(key, v)
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) {
			return nil, p.errf("unterminated object")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++ // trailing comma before '}' is fine, loop handles it
		case '}':
			p.pos++
			return obj, nil
		default:
			return nil, p.errf("expected , or } in object")
		}
	}
}

func (p *lenientParser) array() (*Value, error) {
	p.pos++ // '['
	arr := Array()
	for {
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) {
			return nil, p.errf("unterminated array")
		}
		if p.src[p.pos] == ']' {
			p.pos++
			return arr, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr.Arr = append(arr.Arr, v)
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.src) {
			return nil, p.errf("unterminated array")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return arr, nil
		default:
			return nil, p.errf("expected , or ] in array")
		}
	}
}

func (p *lenientParser) key() (string, error) {
	c := p.src[p.pos]
	if c == '"' || c == '\'' {
		return p.stringLit(c)
	}
	if !isIdentByte(c, true) {
		return "", p.errf("expected object key")
	}
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos], false) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func (p *lenientParser) stringLit(quote byte) (string, error) {
	p.pos++ // opening quote
	b := &strings.Builder{}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\n' || c == '\r':
			return "", p.errf("unescaped line break in string")
		case c == '\\':
			p.pos++
			if p.pos >= len(p.src) {
				return "", p.errf("unterminated escape")
			}
			switch e := p.src[p.pos]; e {
			case 'n':
				b.WriteByte('\n')
				p.pos++
			case 't':
				b.WriteByte('\t')
				p.pos++
			case 'r':
				b.WriteByte('\r')
				p.pos++
			case 'b':
				b.WriteByte('\b')
				p.pos++
			case 'f':
				b.WriteByte('\f')
				p.pos++
			case 'v':
				b.WriteByte('\v')
				p.pos++
			case '\n':
				p.pos++ // line continuation
			case 'u':
				r, err := p.uEscape()
				if err != nil {
					return "", err
				}
				if utf16.IsSurrogate(r) {
					// A high surrogate pairs with an immediately following
					// \u low surrogate escape.
					if p.pos+1 < len(p.src) && p.src[p.pos] == '\\' && p.src[p.pos+1] == 'u' {
						mark := p.pos
						p.pos++
						if r2, err := p.uEscape(); err == nil && utf16.IsSurrogate(r2) {
							if c := utf16.DecodeRune(r, r2); c != utf8.RuneError {
								b.WriteRune(c)
								continue
							}
						}
						p.pos = mark
					}
					// Unpaired halves degrade to U+FFFD.
					b.WriteRune(utf8.RuneError)
					continue
				}
				b.WriteRune(r)
			default:
				// JSON5: any other escaped character stands for itself.
				b.WriteByte(e)
				p.pos++
			}
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errf("unterminated string")
}

// uEscape reads the 4 hex digits of a \u escape with p.pos on the 'u' and
// advances past them.
func (p *lenientParser) uEscape() (rune, error) {
	if p.pos+5 > len(p.src) {
		return 0, p.errf("truncated \\u escape")
	}
	n, err := strconv.ParseUint(p.src[p.pos+1:p.pos+5], 16, 32)
	if err != nil {
		return 0, p.errf("bad \\u escape %q", p.src[p.pos+1:p.pos+5])
	}
	p.pos += 5
	return rune(n), nil
}

// number scans a JSON number with the JSON5 extras: optional leading +,
// leading or trailing decimal point, and 0x hex integers. The lexeme is
// normalized to valid strict JSON before it is stored.
func (p *lenientParser) number() (*Value, error) {
	start := p.pos
	if p.src[p.pos] == '+' || p.src[p.pos] == '-' {
		p.pos++
	}
	if strings.HasPrefix(p.src[p.pos:], "0x") || strings.HasPrefix(p.src[p.pos:], "0X") {
		p.pos += 2
		hexStart := p.pos
		for p.pos < len(p.src) && isHexByte(p.src[p.pos]) {
			p.pos++
		}
		if p.pos == hexStart {
			return nil, p.errf("bad hex number")
		}
		n, err := strconv.ParseUint(p.src[hexStart:p.pos], 16, 64)
		if err != nil {
			return nil, p.errf("bad hex number: %v", err)
		}
		lex := strconv.FormatUint(n, 10)
		if p.src[start] == '-' {
			lex = "-" + lex
		}
		return Number(lex), nil
	}
	digits := 0
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
		digits++
	}
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
			digits++
		}
	}
	if digits == 0 {
		return nil, p.errf("malformed number")
	}
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		expDigits := 0
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
			expDigits++
		}
		if expDigits == 0 {
			return nil, p.errf("malformed exponent")
		}
	}
	return Number(normalizeNumberLexeme(p.src[start:p.pos])), nil
}

func (p *lenientParser) literal() (*Value, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos], false) {
		p.pos++
	}
	switch p.src[start:p.pos] {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "null":
		return Null(), nil
	default:
		return nil, fmt.Errorf("offset %d: unexpected identifier %q", start, p.src[start:p.pos])
	}
}

// normalizeNumberLexeme rewrites JSON5 number spellings (+1, .5, 5.) into
// strict JSON so the lexeme can be re-serialized verbatim.
func normalizeNumberLexeme(lex string) string {
	lex = strings.TrimPrefix(lex, "+")
	neg := strings.HasPrefix(lex, "-")
	body := strings.TrimPrefix(lex, "-")
	if strings.HasPrefix(body, ".") {
		body = "0" + body
	}
	if i := strings.IndexByte(body, '.'); i != -1 {
		if i == len(body)-1 {
			body = body[:i]
		} else if body[i+1] == 'e' || body[i+1] == 'E' {
			body = body[:i] + body[i+1:]
		}
	}
	if neg {
		return "-" + body
	}
	return body
}

func isHexByte(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isIdentByte(c byte, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$':
		return true
	case c >= '0' && c <= '9':
		return !first
	case c >= utf8.RuneSelf:
		return true
	default:
		return false
	}
}
