// Package fakestream provides an in-memory transport.Stream pair for
// exercising the protocol layer without a network.
package fakestream

import (
	"errors"
	"sync"

	"github.com/wirerpc/wirerpc/transport"
)

// ErrClosed is returned once either side of a pair has been closed.
var ErrClosed = errors.New("fakestream: closed")

// Pair returns two connected streams: messages written to one side are
// read from the other. Closing either side closes both.
func Pair() (transport.Stream, transport.Stream) {
	aToB := make(chan []byte, 16)
	bToA := make(chan []byte, 16)
	done := make(chan struct{})
	var once sync.Once
	closeBoth := func() { once.Do(func() { close(done) }) }

	a := &stream{in: bToA, out: aToB, done: done, close: closeBoth}
	b := &stream{in: aToB, out: bToA, done: done, close: closeBoth}
	return a, b
}

type stream struct {
	in    chan []byte
	out   chan []byte
	done  chan struct{}
	close func()
}

func (s *stream) ReadMessage() ([]byte, error) {
	select {
	case msg := <-s.in:
		return msg, nil
	case <-s.done:
		return nil, ErrClosed
	}
}

func (s *stream) WriteMessage(message []byte) error {
	select {
	case s.out <- message:
		return nil
	case <-s.done:
		return ErrClosed
	}
}

func (s *stream) Close() error {
	s.close()
	return nil
}
