package jsongrid

import "errors"

// ParseError is the single error kind the engine produces. It is raised only
// when every parsing strategy has failed; all later stages are total and
// degrade to empty results instead of erroring.
type ParseError struct {
	// Message carries the lenient strategy's error, annotated with the last
	// line-mode failure when line-delimited recovery was attempted.
	Message string
}

func (e *ParseError) Error() string { return e.Message }

// AsParseError extracts a *ParseError from an error using errors.As internally.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
