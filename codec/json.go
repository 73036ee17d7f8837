package codec

import (
	"bytes"
	"encoding/json"
	"errors"
)

// JSONCodec encodes envelopes as JSON. Numbers decode as json.Number so
// integer ids survive the round trip instead of flattening to float64.
type JSONCodec struct{}

var _ Codec = JSONCodec{}

func (JSONCodec) Encode(env Envelope) ([]byte, error) {
	return json.Marshal(env)
}

func (JSONCodec) Decode(data []byte) (Envelope, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var env Envelope
	if err := dec.Decode(&env); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after envelope")
	}
	return env, nil
}
