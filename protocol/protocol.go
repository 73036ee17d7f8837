// Package protocol defines the contract between the message handling
// pipeline and a concrete wire protocol. A Protocol converts between
// raw bytes and request/response values; the values serialize
// themselves through the codec they were created with, so the pipeline
// never touches the wire format directly.
package protocol

// Protocol is the capability set a concrete wire protocol implements.
// Implementations must be safe for concurrent use: many in-flight
// messages may be parsed and many requests created at once.
type Protocol interface {
	// CreateRequest builds an outbound request. args and kwargs are
	// mutually exclusive; supplying both is an invalid request. A
	// one-way request gets no correlation id and expects no reply,
	// otherwise a fresh id is drawn from the protocol's counter.
	CreateRequest(method string, args []interface{}, kwargs map[string]interface{}, oneWay bool) (Request, error)

	// CreateResponse wraps a dispatch result for the given request,
	// echoing its correlation id. The result's shape is not validated.
	CreateResponse(req Request, result interface{}) Response

	// CreateErrorResponse converts a failure into an error reply. A
	// typed *Error keeps its code, message, and data; anything else
	// maps to the protocol's generic internal error. req may be nil
	// when the failure happened before an id was known.
	CreateErrorResponse(err error, req Request) Response

	// ParseRequest decodes and validates an inbound request.
	ParseRequest(data []byte) (Request, error)

	// ParseResponse decodes and validates an inbound reply, returning
	// either a success or an error response.
	ParseResponse(data []byte) (Response, error)
}

// Request is an inbound or outbound method call.
type Request interface {
	// Serialize encodes the request through its codec.
	Serialize() ([]byte, error)

	Method() string

	// UID returns the correlation id. ok is false for one-way
	// requests, which carry no id.
	UID() (uid int64, ok bool)

	// Args returns positional parameters. Mutually exclusive with
	// Kwargs.
	Args() []interface{}

	// Kwargs returns keyword parameters. Mutually exclusive with Args.
	Kwargs() map[string]interface{}
}

// Response is a reply to a two-way request: either a success carrying a
// result or an error carrying a code from the protocol's table.
type Response interface {
	// Serialize encodes the response through its codec.
	Serialize() ([]byte, error)

	// UID returns the correlation id of the originating request. ok is
	// false when the failure predates correlation (e.g. a parse error).
	UID() (uid int64, ok bool)

	// Err returns the protocol error carried by an error reply, or nil
	// for a success reply.
	Err() *Error

	// Result returns the success value, nil for error replies.
	Result() interface{}
}
