package jsonrpc2

import (
	"github.com/wirerpc/wirerpc/codec"
	"github.com/wirerpc/wirerpc/protocol"
)

var _ protocol.Request = (*Request)(nil)
var _ protocol.Response = (*SuccessResponse)(nil)
var _ protocol.Response = (*ErrorResponse)(nil)

// Request is a JSON-RPC 2.0 request. One-way requests carry no id and
// serialize without one.
type Request struct {
	codec  codec.Codec
	method string
	uid    int64
	oneWay bool
	args   []interface{}
	kwargs map[string]interface{}
}

func (r *Request) Method() string { return r.method }

func (r *Request) UID() (int64, bool) { return r.uid, !r.oneWay }

func (r *Request) Args() []interface{} { return r.args }

func (r *Request) Kwargs() map[string]interface{} { return r.kwargs }

// Serialize encodes the request envelope. The id field is omitted
// entirely for one-way requests, and params is omitted entirely when
// neither args nor kwargs were supplied.
func (r *Request) Serialize() ([]byte, error) {
	env := codec.Envelope{
		"jsonrpc": Version,
		"method":  r.method,
	}
	if len(r.args) > 0 {
		env["params"] = r.args
	}
	if len(r.kwargs) > 0 {
		env["params"] = r.kwargs
	}
	if !r.oneWay {
		env["id"] = r.uid
	}
	return r.codec.Encode(env)
}

// SuccessResponse is a JSON-RPC 2.0 result reply.
type SuccessResponse struct {
	codec  codec.Codec
	uid    int64
	hasUID bool
	result interface{}
}

func (r *SuccessResponse) UID() (int64, bool) { return r.uid, r.hasUID }

func (r *SuccessResponse) Err() *protocol.Error { return nil }

func (r *SuccessResponse) Result() interface{} { return r.result }

func (r *SuccessResponse) Serialize() ([]byte, error) {
	return r.codec.Encode(codec.Envelope{
		"jsonrpc": Version,
		"id":      r.uid,
		"result":  r.result,
	})
}

// ErrorResponse is a JSON-RPC 2.0 error reply.
type ErrorResponse struct {
	codec   codec.Codec
	uid     int64
	hasUID  bool
	code    int
	message string
	data    interface{}
}

func (r *ErrorResponse) UID() (int64, bool) { return r.uid, r.hasUID }

func (r *ErrorResponse) Err() *protocol.Error {
	return &protocol.Error{Code: r.code, Message: r.message, Data: r.data}
}

func (r *ErrorResponse) Result() interface{} { return nil }

// Serialize encodes the error envelope. The id key is always present,
// null when the triggering request was never correlated.
func (r *ErrorResponse) Serialize() ([]byte, error) {
	errObj := map[string]interface{}{
		"code":    r.code,
		"message": r.message,
	}
	if r.data != nil {
		errObj["data"] = r.data
	}
	var id interface{}
	if r.hasUID {
		id = r.uid
	}
	return r.codec.Encode(codec.Envelope{
		"jsonrpc": Version,
		"id":      id,
		"error":   errObj,
	})
}
