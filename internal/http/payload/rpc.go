package payload

import (
	"bytes"
	"encoding/json"

	"github.com/jellydator/validation"
)

const Version = "2.0"

const (
	CodeMethodNotFound = -32601
	CodeServerError    = -32000
)

var nullID = json.RawMessage("null")

// RPCRequest is the envelope of a call. Members are kept raw so that a
// non-string method or an arbitrary id can be told apart from a bad body.
type RPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  json.RawMessage `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      json.RawMessage `json:"id"`
}

// MethodName returns the method member if it is a JSON string.
func (r RPCRequest) MethodName() (string, bool) {
	trimmed := bytes.TrimSpace(r.Method)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var name string
	if err := json.Unmarshal(trimmed, &name); err != nil {
		return "", false
	}
	return name, true
}

// Validate checks that the envelope names a method.
func (r RPCRequest) Validate() error {
	name, _ := r.MethodName()
	return validation.Errors{
		"method": validation.Validate(name, validation.Required.Error("must be a non-empty string")),
	}.Filter()
}

// EchoID returns the request id, or null when none was sent.
func (r RPCRequest) EchoID() json.RawMessage {
	if len(bytes.TrimSpace(r.ID)) == 0 {
		return nullID
	}
	return r.ID
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

func Result(id json.RawMessage, result any) RPCResponse {
	return RPCResponse{
		JSONRPC: Version,
		ID:      id,
		Result:  result,
	}
}

func MethodNotFound(id json.RawMessage) RPCResponse {
	return RPCResponse{
		JSONRPC: Version,
		ID:      id,
		Error: &RPCError{
			Code:    CodeMethodNotFound,
			Message: "Method not found",
		},
	}
}

// ServerError reports a failure. The id is always null.
func ServerError(err error) RPCResponse {
	return RPCResponse{
		JSONRPC: Version,
		ID:      nullID,
		Error: &RPCError{
			Code:    CodeServerError,
			Message: err.Error(),
		},
	}
}
