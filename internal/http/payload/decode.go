package payload

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 1 << 20

// Decoder reads JSON-RPC envelopes from request bodies.
type Decoder struct{}

// DecodeRPCRequest decodes the body of r into an RPCRequest. Unknown members
// are ignored.
func (Decoder) DecodeRPCRequest(w http.ResponseWriter, r *http.Request) (RPCRequest, error) {
	var req RPCRequest
	err := DecodePayload(http.MaxBytesReader(w, r.Body, MaxBodyBytes), &req)
	return req, err
}

func DecodePayload(body io.ReadCloser, object any) (err error) {
	defer func() {
		errClose := body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("close body: %w", errClose)
		}
	}()

	if err = json.NewDecoder(body).Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}
