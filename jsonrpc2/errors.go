package jsonrpc2

import (
	"fmt"

	"github.com/wirerpc/wirerpc/protocol"
)

// Standard JSON-RPC 2.0 error codes, plus the local invalid-reply
// extension used for reply-side parse and validation failures.
const (
	ErrCodeParse          = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
	ErrCodeInvalidReply   = -32001
)

// ErrMethodNotFound is for dispatchers: returned when a request names a
// method that is not registered.
func ErrMethodNotFound(method string) *protocol.Error {
	return &protocol.Error{
		Code:    ErrCodeMethodNotFound,
		Message: fmt.Sprintf("method not found: %s", method),
	}
}

// ErrInvalidParams is for dispatchers: returned when a request's
// parameters do not fit the resolved method.
func ErrInvalidParams(message string) *protocol.Error {
	return &protocol.Error{
		Code:    ErrCodeInvalidParams,
		Message: fmt.Sprintf("invalid params: %s", message),
	}
}

func errParse(format string, args ...interface{}) *protocol.Error {
	return &protocol.Error{Code: ErrCodeParse, Message: fmt.Sprintf(format, args...)}
}

func errInvalidRequest(format string, args ...interface{}) *protocol.Error {
	return &protocol.Error{Code: ErrCodeInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

func errInvalidParams(format string, args ...interface{}) *protocol.Error {
	return &protocol.Error{Code: ErrCodeInvalidParams, Message: fmt.Sprintf(format, args...)}
}

func errInvalidReply(format string, args ...interface{}) *protocol.Error {
	return &protocol.Error{Code: ErrCodeInvalidReply, Message: fmt.Sprintf(format, args...)}
}
