package registry

import (
	"errors"
	"strings"
)

// Sentinel errors for consistent error handling.
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrResourceNotFound = errors.New("resource not found")
	ErrSynthesisFailure = errors.New("synthesis failed")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidConfig    = errors.New("invalid registry config")
)

// JSON-RPC 2.0 error codes, plus the MCP code for unknown resources.
const (
	ErrCodeParseError       = -32700
	ErrCodeInvalidRequest   = -32600
	ErrCodeMethodNotFound   = -32601
	ErrCodeInvalidParams    = -32602
	ErrCodeInternal         = -32603
	ErrCodeResourceNotFound = -32002
)

// ArgumentsError lists every violation found in one set of arguments.
type ArgumentsError struct {
	Violations []string
}

func (e *ArgumentsError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInvalidArguments.Error())
	b.WriteString(":")
	for _, v := range e.Violations {
		b.WriteString("\n- ")
		b.WriteString(v)
	}
	return b.String()
}

func (e *ArgumentsError) Unwrap() error { return ErrInvalidArguments }
