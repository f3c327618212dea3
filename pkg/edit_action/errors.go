package edit_action

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic checking via errors.Is().
var (
	// ErrConstruction indicates an edge endpoint that is neither a node id nor a wildcard.
	ErrConstruction = errors.New("construction error")

	// ErrUnsupportedComparison indicates a partial comparison on content that is not an edge.
	ErrUnsupportedComparison = errors.New("unsupported comparison")

	// ErrParse indicates rendered edit text that could not be read back.
	ErrParse = errors.New("parse error")
)

// EdgeError reports an endpoint value that cannot become a node id.
type EdgeError struct {
	Value any
	Msg   string
}

func (e *EdgeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s: invalid endpoint %#v", ErrConstruction.Error(), e.Value)
	}
	return fmt.Sprintf("%s: %s", ErrConstruction.Error(), e.Msg)
}

func (e *EdgeError) Unwrap() error { return ErrConstruction }

// UnsupportedComparisonError is returned by partial comparison when one of the
// operands does not carry an edge.
type UnsupportedComparisonError struct {
	Content string
}

func (e *UnsupportedComparisonError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: partial match is not supported for %s content", ErrUnsupportedComparison.Error(), e.Content)
}

func (e *UnsupportedComparisonError) Unwrap() error { return ErrUnsupportedComparison }

// ParseError represents rendered text that is not a valid edit or edge.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: %q", ErrParse.Error(), e.Msg, e.Input)
}

func (e *ParseError) Unwrap() error { return ErrParse }
