package handler

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	"ledgerrpc/internal/core"
	"ledgerrpc/internal/http/handler/middleware"
	"ledgerrpc/internal/http/payload"

	"go.uber.org/zap"
)

// RPCEndpoint is the single route every method is served on.
var RPCEndpoint = "/"

type RPCHandler struct {
	logs          *zap.SugaredLogger
	decoder       RequestDecoder
	registry      MethodRegistry
	apiSecret     []byte
	allowedOrigin string
}

func NewRPCHandler(logger *zap.SugaredLogger, decoder RequestDecoder, registry MethodRegistry, apiSecret, allowedOrigin string) *RPCHandler {
	return &RPCHandler{
		logs:          logger,
		decoder:       decoder,
		registry:      registry,
		apiSecret:     []byte(apiSecret),
		allowedOrigin: allowedOrigin,
	}
}

// HandleRPC serves every call on a single endpoint. Protocol failures are
// reported inside a 200 response; only preflight and a bad API key use other
// status codes.
func (h *RPCHandler) HandleRPC(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	w.Header().Set(headerAllowOrigin, h.allowedOrigin)

	if r.Method == http.MethodOptions {
		w.Header().Set(headerAllowMethods, allowMethods)
		w.Header().Set(headerAllowHeaders, allowHeaders)
		w.Header().Set(headerMaxAge, preflightAge)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if !h.authorized(r) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(unauthorized))
		h.logs.Infow("rejected request with invalid api key",
			"remote_addr", r.RemoteAddr,
			"request_id", requestId)
		return
	}

	req, err := h.decoder.DecodeRPCRequest(w, r)
	if err != nil {
		h.respond(w, payload.ServerError(err), requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"request_id", requestId)
		return
	}

	if err := req.Validate(); err != nil {
		h.methodNotFound(w, req, requestId)
		return
	}

	name, _ := req.MethodName()
	method, ok := h.registry.Lookup(name)
	if !ok {
		h.methodNotFound(w, req, requestId)
		return
	}

	params, err := core.DecodeParams(req.Params)
	if err != nil {
		h.respond(w, payload.ServerError(err), requestId)
		h.logs.Errorw("failed to decode params",
			"error", err,
			"method", method,
			"request_id", requestId)
		return
	}

	result, err := h.registry.Call(r.Context(), method, params)
	if err != nil {
		h.respond(w, payload.ServerError(err), requestId)
		h.logs.Errorw("method call failed",
			"error", err,
			"method", method,
			"request_id", requestId)
		return
	}

	h.logs.Infow("method call served",
		"method", method,
		"request_id", requestId)
	h.respond(w, payload.Result(req.EchoID(), result), requestId)
}

func (h *RPCHandler) methodNotFound(w http.ResponseWriter, req payload.RPCRequest, requestId string) {
	h.respond(w, payload.MethodNotFound(req.EchoID()), requestId)
	h.logs.Infow("method not found",
		"method", string(req.Method),
		"request_id", requestId)
}

func (h *RPCHandler) authorized(r *http.Request) bool {
	key := r.Header.Get(headerAPIKey)
	if key == "" || len(h.apiSecret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), h.apiSecret) == 1
}

func (h *RPCHandler) respond(w http.ResponseWriter, resp payload.RPCResponse, requestId string) {
	body, err := json.Marshal(resp)
	if err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
		body, _ = json.Marshal(payload.ServerError(fmt.Errorf("encode response: %s", oopsErr)))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
