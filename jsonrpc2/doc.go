/*
	Package jsonrpc2 implements the JSON-RPC 2.0 wire protocol on top of
	a pluggable envelope codec.

	Protocol owns the envelope shape, the validation rules, the request
	id counter, and the standard error code table. It implements
	protocol.Protocol, so the server pipeline and the client never
	depend on JSON-RPC specifics.

	Requests and responses hold a reference to the codec they were
	created with and serialize themselves. One-way requests serialize
	without an id field and expect no reply.
*/
package jsonrpc2
