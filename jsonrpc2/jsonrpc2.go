package jsonrpc2

import (
	"errors"
	"sync/atomic"

	"github.com/wirerpc/wirerpc/codec"
	"github.com/wirerpc/wirerpc/protocol"
)

const Version = "2.0"

// Protocol implements protocol.Protocol for JSON-RPC 2.0. It owns the
// request id counter; ids are assigned atomically, so concurrent
// request creation never observes a duplicate.
type Protocol struct {
	codec   codec.Codec
	counter int64
}

var _ protocol.Protocol = (*Protocol)(nil)

// New returns a JSON-RPC 2.0 protocol using the given envelope codec.
func New(c codec.Codec) *Protocol {
	return &Protocol{codec: c}
}

func (p *Protocol) nextUID() int64 {
	return atomic.AddInt64(&p.counter, 1)
}

func (p *Protocol) CreateRequest(method string, args []interface{}, kwargs map[string]interface{}, oneWay bool) (protocol.Request, error) {
	if len(args) > 0 && len(kwargs) > 0 {
		return nil, errInvalidRequest("args and kwargs are mutually exclusive")
	}
	req := &Request{
		codec:  p.codec,
		method: method,
		oneWay: oneWay,
		args:   args,
		kwargs: kwargs,
	}
	if !oneWay {
		req.uid = p.nextUID()
	}
	return req, nil
}

func (p *Protocol) CreateResponse(req protocol.Request, result interface{}) protocol.Response {
	uid, ok := req.UID()
	return &SuccessResponse{
		codec:  p.codec,
		uid:    uid,
		hasUID: ok,
		result: result,
	}
}

func (p *Protocol) CreateErrorResponse(err error, req protocol.Request) protocol.Response {
	resp := &ErrorResponse{
		codec:   p.codec,
		code:    ErrCodeInternal,
		message: "internal error",
	}
	var perr *protocol.Error
	if errors.As(err, &perr) {
		resp.code = perr.Code
		resp.message = perr.Message
		resp.data = perr.Data
	}
	if req != nil {
		if uid, ok := req.UID(); ok {
			resp.uid = uid
			resp.hasUID = true
		}
	}
	return resp
}
