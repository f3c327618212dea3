package act

import (
	"errors"
	"fmt"
)

var (
	// ErrRole indicates a role outside the vocabulary, or a role wrapping the wrong content.
	ErrRole = errors.New("role error")

	// ErrAgent indicates an agent name that would break the rendered form.
	ErrAgent = errors.New("invalid agent")

	// ErrParse indicates rendered act text that could not be read back.
	ErrParse = errors.New("parse error")
)

// RoleError reports an act that does not fit a protocol vocabulary.
type RoleError struct {
	Protocol ProtocolName
	Role     Role
	Msg      string
}

func (e *RoleError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: protocol %s: %s: %s", ErrRole.Error(), e.Protocol, e.Role, e.Msg)
}

func (e *RoleError) Unwrap() error { return ErrRole }

// ParseError wraps a failure to read a rendered act. Err, when set, is the
// underlying edit parsing or vocabulary error.
type ParseError struct {
	Input string
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %q: %v", ErrParse.Error(), e.Msg, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %s: %q", ErrParse.Error(), e.Msg, e.Input)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}
