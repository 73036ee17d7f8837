// Websocket message stream implementation using Gorilla's websocket
// library.
package gorilla

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/wirerpc/wirerpc/transport"
)

// Dial connects to a websocket endpoint and returns a message stream.
func Dial(ctx context.Context, url string) (transport.Stream, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return Stream(conn), nil
}

// Stream wraps an established gorilla websocket connection. Reads and
// writes are serialized to satisfy the connection's single
// reader/writer requirement.
func Stream(conn *websocket.Conn) transport.Stream {
	return &stream{conn: conn}
}

var _ transport.Stream = &stream{}

type stream struct {
	muRead  sync.Mutex
	muWrite sync.Mutex
	conn    *websocket.Conn
}

func (s *stream) ReadMessage() ([]byte, error) {
	s.muRead.Lock()
	defer s.muRead.Unlock()
	_, data, err := s.conn.ReadMessage()
	return data, err
}

func (s *stream) WriteMessage(message []byte) error {
	s.muWrite.Lock()
	defer s.muWrite.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, message)
}

func (s *stream) Close() error {
	return s.conn.Close()
}
