// Package client drives the outbound side of a wire protocol: it
// creates correlated requests, writes them to a message stream, and
// routes replies back to the waiting caller. It is the mirror of the
// server pipeline and is equally protocol-agnostic.
package client

import (
	"context"
	"sync"

	"github.com/wirerpc/wirerpc/protocol"
	"github.com/wirerpc/wirerpc/transport"
)

// Client issues requests over a stream. Safe for concurrent calls; a
// single Serve loop routes replies by correlation id.
type Client struct {
	Protocol protocol.Protocol
	Stream   transport.Stream

	// PendingLimit is the number of unmatched replies to hold before
	// the oldest get discarded. PendingDiscard is how many get dropped
	// when the limit is reached. Zero disables eviction.
	PendingLimit   int
	PendingDiscard int

	mu      sync.Mutex
	pending map[int64]pendingReply
}

// Serve reads replies from the stream and routes them to waiting
// callers until the stream fails. Run it in its own goroutine.
func (c *Client) Serve() error {
	for {
		data, err := c.Stream.ReadMessage()
		if err != nil {
			return err
		}
		resp, err := c.Protocol.ParseResponse(data)
		if err != nil {
			logger.Printf("dropping invalid reply: %s", err)
			continue
		}
		uid, ok := resp.UID()
		if !ok {
			logger.Printf("dropping uncorrelated reply")
			continue
		}
		c.pendingChan(uid) <- resp
	}
}

// Call sends a request with positional args and waits for its reply.
func (c *Client) Call(ctx context.Context, method string, args ...interface{}) (interface{}, error) {
	return c.call(ctx, method, args, nil)
}

// CallKwargs sends a request with keyword args and waits for its reply.
func (c *Client) CallKwargs(ctx context.Context, method string, kwargs map[string]interface{}) (interface{}, error) {
	return c.call(ctx, method, nil, kwargs)
}

// Notify sends a one-way request. No reply is expected and no
// correlation id is spent.
func (c *Client) Notify(method string, args ...interface{}) error {
	req, err := c.Protocol.CreateRequest(method, args, nil, true)
	if err != nil {
		return err
	}
	data, err := req.Serialize()
	if err != nil {
		return err
	}
	return c.Stream.WriteMessage(data)
}

func (c *Client) call(ctx context.Context, method string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	req, err := c.Protocol.CreateRequest(method, args, kwargs, false)
	if err != nil {
		return nil, err
	}
	data, err := req.Serialize()
	if err != nil {
		return nil, err
	}
	uid, _ := req.UID()

	// Register before writing so a fast reply is never lost.
	ch := c.pendingChan(uid)
	if err := c.Stream.WriteMessage(data); err != nil {
		c.forget(uid)
		return nil, err
	}

	select {
	case resp := <-ch:
		c.forget(uid)
		if perr := resp.Err(); perr != nil {
			return nil, perr
		}
		return resp.Result(), nil
	case <-ctx.Done():
		c.forget(uid)
		return nil, ctx.Err()
	}
}
