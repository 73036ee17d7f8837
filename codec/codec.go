package codec

// Envelope is the structured message exchanged with a Codec: a mapping
// of string keys to values, produced by the protocol layer before
// encoding and recovered from raw bytes after decoding.
type Envelope map[string]interface{}

// Codec converts envelopes to and from a byte sequence. The format is
// opaque to the protocol layer; implementations must round-trip any
// envelope the protocol produces without loss.
type Codec interface {
	Encode(env Envelope) ([]byte, error)
	Decode(data []byte) (Envelope, error)
}
