package server

import "context"

// Direction tags trace hook invocations.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// TraceFunc is a plain observability hook. It is called synchronously
// on the handling goroutine, so it stalls only the message it observes.
type TraceFunc func(dir Direction, message []byte)

// TraceContextFunc is an observability hook that may block on the
// handler's context, for hooks that suspend (remote sinks, bounded
// queues).
type TraceContextFunc func(ctx context.Context, dir Direction, message []byte)

func (s *Server) trace(ctx context.Context, dir Direction, message []byte) {
	if s.TraceContext != nil {
		s.TraceContext(ctx, dir, message)
		return
	}
	if s.Trace != nil {
		s.Trace(dir, message)
	}
}
