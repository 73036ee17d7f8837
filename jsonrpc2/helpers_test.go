package jsonrpc2

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/wirerpc/wirerpc/codec"
)

func assertEqualJSON(t *testing.T, a, b interface{}, format string, args ...interface{}) {
	t.Helper()

	aa, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	bb, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(aa, bb) {
		prefix := fmt.Sprintf(format, args...)
		t.Errorf(prefix+"\n   got: %q\n  want: %q", aa, bb)
	}
}

func decodeEnvelope(t *testing.T, data []byte) codec.Envelope {
	t.Helper()

	env, err := codec.JSONCodec{}.Decode(data)
	if err != nil {
		t.Fatalf("failed to decode envelope %q: %s", data, err)
	}
	return env
}
