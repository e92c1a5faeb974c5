package rpc

import (
	"errors"
	"fmt"
)

// ErrorType classifies why a gas price fetch failed.
type ErrorType string

const (
	// ErrorTypeTransport covers network, TLS and timeout failures as well as
	// non-2xx HTTP responses.
	ErrorTypeTransport ErrorType = "transport"
	// ErrorTypeDecode means the response body was not valid JSON.
	ErrorTypeDecode ErrorType = "decode"
	// ErrorTypeRPC means the node answered with a JSON-RPC error object.
	ErrorTypeRPC ErrorType = "rpc"
	// ErrorTypeMissingResult means the response had neither error nor result.
	ErrorTypeMissingResult ErrorType = "missing_result"
	// ErrorTypeParse means the result could not be decoded as a hex quantity.
	ErrorTypeParse ErrorType = "parse"
)

// Error is the single error type returned by Client. Callers switch on Type
// instead of matching message text.
type Error struct {
	Type    ErrorType
	Message string
	// Code is the node's JSON-RPC error code; only set for ErrorTypeRPC.
	Code    int
	Err     error
	timeout bool
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Timeout reports whether a transport error was caused by the request
// exceeding its deadline.
func (e *Error) Timeout() bool { return e.timeout }

// IsType reports whether err is an *Error of type t.
func IsType(err error, t ErrorType) bool {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr.Type == t
	}
	return false
}

func transportError(msg string, err error, timeout bool) *Error {
	return &Error{Type: ErrorTypeTransport, Message: msg, Err: err, timeout: timeout}
}

func decodeError(err error) *Error {
	return &Error{Type: ErrorTypeDecode, Message: "invalid JSON response", Err: err}
}

func rpcError(e *RPCError) *Error {
	return &Error{Type: ErrorTypeRPC, Message: "RPC error: " + e.Message, Code: e.Code}
}

func missingResultError() *Error {
	return &Error{Type: ErrorTypeMissingResult, Message: "no result in response"}
}

func parseError(msg string, err error) *Error {
	return &Error{Type: ErrorTypeParse, Message: msg, Err: err}
}
