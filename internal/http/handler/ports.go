package handler

import (
	"context"
	"net/http"

	"ledgerrpc/internal/core"
	"ledgerrpc/internal/http/payload"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name MethodRegistry . MethodRegistry
type MethodRegistry interface {
	Lookup(name string) (core.Method, bool)
	Call(ctx context.Context, method core.Method, params core.Params) (any, error)
}

//counterfeiter:generate -o fake -fake-name RequestDecoder . RequestDecoder
type RequestDecoder interface {
	DecodeRPCRequest(w http.ResponseWriter, r *http.Request) (payload.RPCRequest, error)
}
