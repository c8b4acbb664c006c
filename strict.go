package jsongrid

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// parseStrict decodes a single strict-JSON document into a Value, preserving
// object key order by folding the decoder's token stream instead of
// unmarshaling into a map.
func parseStrict(text string) (*Value, error) {
	dec := gojson.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	v, err := decodeToken(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after top-level value")
	}
	return v, nil
}

func decodeToken(dec *gojson.Decoder, tok gojson.Token) (*Value, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			return decodeObjectTokens(dec)
		case '[':
			return decodeArrayTokens(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case string:
		return String(t), nil
	case gojson.Number:
		return Number(string(t)), nil
	case float64:
		return Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %T", tok)
	}
}

func decodeObjectTokens(dec *gojson.Decoder) (*Value, error) {
	obj := Object()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not string", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := decodeToken(dec, valTok)
		if err != nil {
			return nil, err
		}
		obj.setField(key, v)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return obj, nil
}

func decodeArrayTokens(dec *gojson.Decoder) (*Value, error) {
	arr := Array()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := decodeToken(dec, tok)
		if err != nil {
			return nil, err
		}
		arr.Arr = append(arr.Arr, v)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}
	return arr, nil
}
