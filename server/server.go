// Package server drives the per-message handling sequence that ties
// together protocol decoding, method dispatch, and response encoding.
// It is transport-agnostic: transports hand it raw inbound messages
// and deliver whatever reply it produces.
package server

import (
	"context"

	"github.com/wirerpc/wirerpc/protocol"
	"github.com/wirerpc/wirerpc/transport"
)

// Outcome is the terminal state of handling one inbound message.
type Outcome int

const (
	// OutcomeReplied means an encoded reply must be delivered.
	OutcomeReplied Outcome = iota
	// OutcomeSilent means no reply is sent. Recognized one-way requests
	// end here, even when dispatch fails.
	OutcomeSilent
)

// Dispatcher resolves a request's method against a registry and
// invokes it with the request's args or kwargs.
type Dispatcher interface {
	Dispatch(ctx context.Context, req protocol.Request) (interface{}, error)
}

// Server handles inbound messages through a protocol and dispatcher.
// It holds no per-message state, so a single instance may handle many
// in-flight messages concurrently.
type Server struct {
	Protocol   protocol.Protocol
	Transport  transport.Transport
	Dispatcher Dispatcher

	// Trace and TraceContext observe raw incoming and outgoing
	// messages. At most one should be set; TraceContext wins when both
	// are. Hooks must not alter messages and have no way to abort the
	// pipeline.
	Trace        TraceFunc
	TraceContext TraceContextFunc
}

var _ transport.Handler = &Server{}

// Start begins serving through the configured transport.
func (s *Server) Start(ctx context.Context) error {
	return s.Transport.Start(ctx, s)
}

// Stop shuts down the configured transport.
func (s *Server) Stop() error {
	return s.Transport.Stop()
}

// Handle implements transport.Handler. A nil reply means the message
// ended silently.
func (s *Server) Handle(ctx context.Context, message []byte) ([]byte, error) {
	reply, outcome, err := s.HandleMessage(ctx, message)
	if err != nil {
		return nil, err
	}
	if outcome == OutcomeSilent {
		return nil, nil
	}
	return reply, nil
}

// HandleMessage runs one inbound message through the pipeline: decode,
// dispatch, respond, encode. Decode and dispatch failures become error
// replies; failures on a recognized one-way request are logged and
// dropped. The returned error is non-nil only when a due reply could
// not be encoded.
func (s *Server) HandleMessage(ctx context.Context, message []byte) ([]byte, Outcome, error) {
	s.trace(ctx, DirectionIncoming, message)

	var result interface{}
	req, err := s.Protocol.ParseRequest(message)
	if err == nil {
		result, err = s.Dispatcher.Dispatch(ctx, req)
	}

	var resp protocol.Response
	if err != nil {
		if req != nil {
			if _, ok := req.UID(); !ok {
				logger.Printf("one-way %q failed: %s", req.Method(), err)
				return nil, OutcomeSilent, nil
			}
		}
		resp = s.Protocol.CreateErrorResponse(err, req)
	} else {
		if _, ok := req.UID(); !ok {
			return nil, OutcomeSilent, nil
		}
		resp = s.Protocol.CreateResponse(req, result)
	}

	reply, err := resp.Serialize()
	if err != nil {
		logger.Printf("failed to encode reply: %s", err)
		return nil, OutcomeSilent, err
	}
	s.trace(ctx, DirectionOutgoing, reply)
	return reply, OutcomeReplied, nil
}
