// Package transport defines the boundary between the protocol layer
// and the byte-level transports that feed it. The listener
// implementations themselves live outside this module; subpackages
// provide framed message streams over established connections.
package transport

import "context"

// Handler is the pipeline entry point a transport delivers inbound
// messages to. A nil reply means no reply is to be sent (one-way
// request).
type Handler interface {
	Handle(ctx context.Context, message []byte) ([]byte, error)
}

// Transport supplies raw inbound messages to a Handler and delivers
// the Handler's replies back to the peer.
type Transport interface {
	// Start delivers inbound messages to h until Stop is called or the
	// context is done.
	Start(ctx context.Context, h Handler) error
	Stop() error
}

// Stream is a framed bidirectional connection carrying whole raw
// messages, as consumed by stream transports and the client.
type Stream interface {
	ReadMessage() ([]byte, error)
	WriteMessage(message []byte) error
	Close() error
}
