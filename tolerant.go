package jsongrid

import (
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseTolerant turns raw text into a document Value, trying strategies in
// order: lenient JSON5-style parse, strict JSON parse, then line-delimited
// recovery. When everything fails the error is a *ParseError carrying the
// lenient strategy's message, annotated with the last line-mode failure when
// line recovery was attempted.
//
// With Options.Repair set, a jsonrepair pass is tried as a last resort before
// giving up.
func ParseTolerant(text string, opts ...Options) (*Value, error) {
	opt := normalizeOptions(opts)

	v, lenientErr := parseLenient(text)
	if lenientErr == nil {
		return v, nil
	}
	if v, err := parseStrict(text); err == nil {
		return v, nil
	}

	lineAttempted := false
	var lastLineErr error
	if lines := nonBlankLines(text); len(lines) > 1 {
		lineAttempted = true
		arr := Array()
		for _, line := range lines {
			lv, err := parseLenient(line)
			if err != nil {
				lastLineErr = err // failing lines are dropped, not fatal
				continue
			}
			arr.Arr = append(arr.Arr, lv)
		}
		if len(arr.Arr) > 0 {
			return arr, nil
		}
	}

	if opt.Repair {
		if fixed, err := jsonrepair.JSONRepair(text); err == nil {
			if v, err := parseStrict(fixed); err == nil {
				return v, nil
			}
		}
	}

	msg := lenientErr.Error()
	if lineAttempted && lastLineErr != nil {
		msg += "; line mode: " + lastLineErr.Error()
	}
	return nil, &ParseError{Message: msg}
}

func nonBlankLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
