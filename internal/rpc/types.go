// Package rpc implements the JSON-RPC 2.0 client used to query an Ethereum
// node for its current gas price.
//
// The wire format is fixed by the Ethereum JSON-RPC API: every numeric value
// travels as a hex-encoded string, so the client decodes "result" into a
// string first and only then into a number.
package rpc

import "encoding/json"

// MethodGasPrice is the JSON-RPC method that returns the node's current gas
// price in wei.
const MethodGasPrice = "eth_gasPrice"

// Request is a JSON-RPC 2.0 request envelope.
//
// A gas price request always serializes to:
//
//	{"jsonrpc":"2.0","method":"eth_gasPrice","params":[],"id":1}
//
// Params must never be nil: nodes reject "params":null, so callers pass an
// empty slice when the method takes no arguments.
type Request struct {
	JSONRPC string        `json:"jsonrpc"` // Always "2.0"
	Method  string        `json:"method"`  // RPC method name, e.g. "eth_gasPrice"
	Params  []interface{} `json:"params"`  // Method arguments
	ID      int           `json:"id"`      // Always 1; one request per HTTP round trip
}

// NewRequest builds a request envelope for method with the given params.
func NewRequest(method string, params ...interface{}) Request {
	if params == nil {
		params = []interface{}{}
	}
	return Request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	}
}

// Response is a JSON-RPC 2.0 response envelope.
//
// Result is kept raw because its shape depends on the method. ID is raw
// because some gateways echo it back as a string. Error is a pointer so an
// absent "error" key (nil) can be told apart from an error object with empty
// fields.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error,omitempty"`
}

// HasResult reports whether the node sent a non-null result.
func (r *Response) HasResult() bool {
	return len(r.Result) > 0 && string(r.Result) != "null"
}

// RPCError is the error object a node returns instead of a result.
//
// Standard codes from the JSON-RPC 2.0 specification are in the -32700..-32600
// range; providers add their own (e.g. -32005 for rate limiting). Some public
// endpoints omit the code entirely, so only Message is relied upon.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
