package jsonrpc2

import (
	"encoding/json"

	"github.com/wirerpc/wirerpc/protocol"
)

// Allowed top-level envelope keys are closed sets; anything else is
// rejected.
var allowedRequestKeys = map[string]bool{
	"id":      true,
	"jsonrpc": true,
	"method":  true,
	"params":  true,
}

var allowedReplyKeys = map[string]bool{
	"id":      true,
	"jsonrpc": true,
	"error":   true,
	"result":  true,
}

// ParseRequest decodes and validates an inbound request. Malformed
// encodings fail with the parse error code, schema violations with the
// invalid-request code, and ill-shaped params with the invalid-params
// code.
func (p *Protocol) ParseRequest(data []byte) (protocol.Request, error) {
	env, err := p.codec.Decode(data)
	if err != nil {
		return nil, errParse("failed to parse request: %s", err)
	}

	for k := range env {
		if !allowedRequestKeys[k] {
			return nil, errInvalidRequest("key not allowed: %s", k)
		}
	}
	if v, _ := env["jsonrpc"].(string); v != Version {
		return nil, errInvalidRequest("wrong or missing jsonrpc version")
	}
	method, ok := env["method"].(string)
	if !ok {
		return nil, errInvalidRequest("method must be a string")
	}

	req := &Request{
		codec:  p.codec,
		method: method,
		oneWay: true,
	}
	// An explicit null id counts as absent: the request is one-way.
	if rawID, ok := env["id"]; ok && rawID != nil {
		uid, ok := asInt(rawID)
		if !ok {
			return nil, errInvalidRequest("id must be an integer")
		}
		req.uid = uid
		req.oneWay = false
	}
	if rawParams, ok := env["params"]; ok {
		switch params := rawParams.(type) {
		case []interface{}:
			req.args = params
		case map[string]interface{}:
			req.kwargs = params
		default:
			return nil, errInvalidParams("params must be a list or a map")
		}
	}
	return req, nil
}

// ParseResponse decodes and validates an inbound reply. Every failure,
// malformed encoding or schema violation alike, carries the
// invalid-reply code.
func (p *Protocol) ParseResponse(data []byte) (protocol.Response, error) {
	env, err := p.codec.Decode(data)
	if err != nil {
		return nil, errInvalidReply("failed to parse reply: %s", err)
	}

	for k := range env {
		if !allowedReplyKeys[k] {
			return nil, errInvalidReply("key not allowed: %s", k)
		}
	}
	if v, _ := env["jsonrpc"].(string); v != Version {
		return nil, errInvalidReply("wrong or missing jsonrpc version")
	}

	var uid int64
	var hasUID bool
	if rawID, ok := env["id"]; ok && rawID != nil {
		if uid, ok = asInt(rawID); !ok {
			return nil, errInvalidReply("id must be an integer")
		}
		hasUID = true
	}

	rawResult, hasResult := env["result"]
	rawError, hasError := env["error"]
	if hasResult == hasError {
		return nil, errInvalidReply("reply must carry exactly one of result and error")
	}

	if hasResult {
		return &SuccessResponse{
			codec:  p.codec,
			uid:    uid,
			hasUID: hasUID,
			result: rawResult,
		}, nil
	}

	errObj, ok := rawError.(map[string]interface{})
	if !ok {
		return nil, errInvalidReply("error must be an object")
	}
	code, ok := asInt(errObj["code"])
	if !ok {
		return nil, errInvalidReply("error code must be an integer")
	}
	message, ok := errObj["message"].(string)
	if !ok {
		return nil, errInvalidReply("error message must be a string")
	}
	return &ErrorResponse{
		codec:   p.codec,
		uid:     uid,
		hasUID:  hasUID,
		code:    int(code),
		message: message,
		data:    errObj["data"],
	}, nil
}

// asInt reports whether a decoded envelope value is an integer. JSON
// codecs yield json.Number; codecs with native integers yield int
// kinds. Fractional values are rejected.
func asInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		i := int64(n)
		return i, float64(i) == n
	default:
		return 0, false
	}
}
