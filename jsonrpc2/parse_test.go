package jsonrpc2

import (
	"errors"
	"testing"

	"github.com/wirerpc/wirerpc/protocol"
)

func assertErrCode(t *testing.T, err error, want int) {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error")
	}
	var perr *protocol.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *protocol.Error, got %T: %s", err, err)
	}
	if perr.Code != want {
		t.Errorf("got code: %d; want: %d (%s)", perr.Code, want, perr.Message)
	}
}

func TestParseRequestInvalid(t *testing.T) {
	p := newProtocol()
	cases := []struct {
		name     string
		payload  string
		wantCode int
	}{
		{"malformed bytes", `{"jsonrpc": "2.0`, ErrCodeParse},
		{"not an object", `[1,2,3]`, ErrCodeParse},
		{"key not allowed", `{"jsonrpc":"2.0","method":"m","extra":1}`, ErrCodeInvalidRequest},
		{"missing version", `{"method":"m"}`, ErrCodeInvalidRequest},
		{"wrong version", `{"jsonrpc":"1.0","method":"m"}`, ErrCodeInvalidRequest},
		{"version not a string", `{"jsonrpc":2,"method":"m"}`, ErrCodeInvalidRequest},
		{"missing method", `{"jsonrpc":"2.0"}`, ErrCodeInvalidRequest},
		{"method not a string", `{"jsonrpc":"2.0","method":7}`, ErrCodeInvalidRequest},
		{"id not an integer", `{"jsonrpc":"2.0","method":"m","id":"abc"}`, ErrCodeInvalidRequest},
		{"id fractional", `{"jsonrpc":"2.0","method":"m","id":1.5}`, ErrCodeInvalidRequest},
		{"id boolean", `{"jsonrpc":"2.0","method":"m","id":true}`, ErrCodeInvalidRequest},
		{"params scalar", `{"jsonrpc":"2.0","method":"m","id":1,"params":42}`, ErrCodeInvalidParams},
		{"params string", `{"jsonrpc":"2.0","method":"m","id":1,"params":"x"}`, ErrCodeInvalidParams},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.ParseRequest([]byte(tc.payload))
			assertErrCode(t, err, tc.wantCode)
		})
	}
}

func TestParseRequestShapes(t *testing.T) {
	p := newProtocol()

	req, err := p.ParseRequest([]byte(`{"jsonrpc":"2.0","method":"add","id":3,"params":[2,3]}`))
	if err != nil {
		t.Fatal(err)
	}
	uid, ok := req.UID()
	if !ok || uid != 3 {
		t.Errorf("got uid: %d (%v); want: 3", uid, ok)
	}
	assertEqualJSON(t, req.Args(), []interface{}{2, 3}, "positional params mismatch")

	req, err = p.ParseRequest([]byte(`{"jsonrpc":"2.0","method":"add","id":4,"params":{"a":2}}`))
	if err != nil {
		t.Fatal(err)
	}
	assertEqualJSON(t, req.Kwargs(), map[string]interface{}{"a": 2}, "keyword params mismatch")

	// No id at all: one-way.
	req, err = p.ParseRequest([]byte(`{"jsonrpc":"2.0","method":"ping"}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := req.UID(); ok {
		t.Error("request without id is not one-way")
	}

	// An explicit null id counts as absent.
	req, err = p.ParseRequest([]byte(`{"jsonrpc":"2.0","method":"ping","id":null}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := req.UID(); ok {
		t.Error("request with null id is not one-way")
	}
}

func TestParseResponseInvalid(t *testing.T) {
	p := newProtocol()
	cases := []struct {
		name    string
		payload string
	}{
		{"malformed bytes", `{"jsonrpc": "2.0`},
		{"key not allowed", `{"jsonrpc":"2.0","id":1,"result":5,"method":"m"}`},
		{"missing version", `{"id":1,"result":5}`},
		{"wrong version", `{"jsonrpc":"1.0","id":1,"result":5}`},
		{"id not an integer", `{"jsonrpc":"2.0","id":"abc","result":5}`},
		{"both result and error", `{"jsonrpc":"2.0","id":1,"result":5,"error":{"code":1,"message":"x"}}`},
		{"neither result nor error", `{"jsonrpc":"2.0","id":1}`},
		{"error not an object", `{"jsonrpc":"2.0","id":1,"error":"boom"}`},
		{"error code missing", `{"jsonrpc":"2.0","id":1,"error":{"message":"x"}}`},
		{"error code not an integer", `{"jsonrpc":"2.0","id":1,"error":{"code":"x","message":"x"}}`},
		{"error message missing", `{"jsonrpc":"2.0","id":1,"error":{"code":-32603}}`},
		{"error message not a string", `{"jsonrpc":"2.0","id":1,"error":{"code":-32603,"message":5}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.ParseResponse([]byte(tc.payload))
			assertErrCode(t, err, ErrCodeInvalidReply)
		})
	}
}

func TestParseResponseSuccess(t *testing.T) {
	p := newProtocol()

	resp, err := p.ParseResponse([]byte(`{"jsonrpc":"2.0","id":7,"result":[1,2]}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Err() != nil {
		t.Errorf("unexpected error: %s", resp.Err())
	}
	uid, ok := resp.UID()
	if !ok || uid != 7 {
		t.Errorf("got uid: %d (%v); want: 7", uid, ok)
	}
	assertEqualJSON(t, resp.Result(), []interface{}{1, 2}, "result mismatch")

	// A null result is still a success reply.
	resp, err = p.ParseResponse([]byte(`{"jsonrpc":"2.0","id":8,"result":null}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Result() != nil {
		t.Errorf("got result: %v; want nil", resp.Result())
	}
}

func TestParseResponseError(t *testing.T) {
	p := newProtocol()

	resp, err := p.ParseResponse([]byte(`{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"parse error","data":{"near":"{"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	perr := resp.Err()
	if perr == nil {
		t.Fatal("expected an error reply")
	}
	if perr.Code != ErrCodeParse {
		t.Errorf("got code: %d; want: %d", perr.Code, ErrCodeParse)
	}
	if perr.Message != "parse error" {
		t.Errorf("got message: %q; want: %q", perr.Message, "parse error")
	}
	assertEqualJSON(t, perr.Data, map[string]interface{}{"near": "{"}, "error data mismatch")
	if _, ok := resp.UID(); ok {
		t.Error("null id parsed as correlated")
	}
}

func TestResponseRoundTrip(t *testing.T) {
	p := newProtocol()

	req, err := p.CreateRequest("add", []interface{}{2, 3}, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	data, err := p.CreateResponse(req, 5).Serialize()
	if err != nil {
		t.Fatal(err)
	}
	resp, err := p.ParseResponse(data)
	if err != nil {
		t.Fatal(err)
	}
	assertEqualJSON(t, resp.Result(), 5, "result does not round-trip")

	data, err = p.CreateErrorResponse(ErrInvalidParams("want 2 args"), req).Serialize()
	if err != nil {
		t.Fatal(err)
	}
	resp, err = p.ParseResponse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got := resp.Err(); got == nil || got.Code != ErrCodeInvalidParams {
		t.Errorf("error does not round-trip: %v", got)
	}
}
