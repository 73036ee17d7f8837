// Websocket message stream implementation using the gobwas/ws library.
package gobwas

import (
	"context"
	"net"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"github.com/wirerpc/wirerpc/transport"
)

// Dial connects to a websocket endpoint and returns a client-side
// message stream.
func Dial(ctx context.Context, url string) (transport.Stream, error) {
	conn, _, _, err := ws.Dial(ctx, url)
	if err != nil {
		return nil, err
	}
	return ClientStream(conn), nil
}

// ClientStream wraps an established client-side websocket connection.
func ClientStream(conn net.Conn) transport.Stream {
	return &stream{conn: conn, state: ws.StateClientSide}
}

// ServerStream wraps an established server-side websocket connection,
// such as one produced by an HTTP upgrade.
func ServerStream(conn net.Conn) transport.Stream {
	return &stream{conn: conn, state: ws.StateServerSide}
}

var _ transport.Stream = &stream{}

type stream struct {
	conn  net.Conn
	state ws.State
}

func (s *stream) ReadMessage() ([]byte, error) {
	if s.state == ws.StateClientSide {
		return wsutil.ReadServerText(s.conn)
	}
	return wsutil.ReadClientText(s.conn)
}

func (s *stream) WriteMessage(message []byte) error {
	if s.state == ws.StateClientSide {
		return wsutil.WriteClientText(s.conn, message)
	}
	return wsutil.WriteServerText(s.conn, message)
}

func (s *stream) Close() error {
	return s.conn.Close()
}
