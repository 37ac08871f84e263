package void

import (
	"fmt"

	"github.com/pkg/errors"
)

type Input string

const (
	PathInput      Input = "path"
	SelectorInput  Input = "selector"
	PersistedInput Input = "persisted value"
)

type ParseError struct {
	Input  Input
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Input, e.Value, e.Reason)
}

func InvalidInput(input Input, value string, reason string) error {
	return &ParseError{
		Input:  input,
		Value:  value,
		Reason: reason,
	}
}

// IsParseError reports whether err, or anything it wraps, is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

type UnknownRequestError struct {
	Request Request
}

func (e UnknownRequestError) Error() string {
	return fmt.Sprintf("unknown request: %d", int(e.Request))
}

func UnknownRequest(request Request) error {
	return errors.WithStack(UnknownRequestError{Request: request})
}
