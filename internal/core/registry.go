package core

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

var ErrMethodNotFound = errors.New("method not found")

// Registry maps method names to their handlers and runs them against the
// storage handles. It holds no per-call state.
type Registry struct {
	logs     *zap.SugaredLogger
	stores   Handles
	handlers map[Method]Handler
}

// NewRegistry returns a registry serving every ledger method.
func NewRegistry(logger *zap.SugaredLogger, stores Handles) *Registry {
	return &Registry{
		logs:   logger,
		stores: stores,
		handlers: map[Method]Handler{
			CreateTransaction:     insertHandler(transactionHistoryTable, transactionHistoryStore, "success"),
			GetTransactionHistory: getTransactionHistory,
			CreateTransfer:        insertHandler(transfersTable, transfersStore, "success"),
			GetTransfer:           getTransfer,
			VaultCommit:           insertHandler(vaultTable, vaultStore, "recorded"),
			GetVault:              getVault,
			RecordPurchase:        insertHandler(purchasesTable, purchaseStore, "recorded"),
			GetPurchase:           getPurchase,
			ExecuteSwap:           insertHandler(swapsTable, swapStore, "swapped"),
			GetSwap:               getSwap,
			RedeemToken:           insertHandler(redemptionsTable, redemptionsStore, "redeemed"),
			GetRedemption:         getRedemption,
		},
	}
}

// Lookup resolves a client supplied method name.
func (r *Registry) Lookup(name string) (Method, bool) {
	method := Method(name)
	_, ok := r.handlers[method]
	return method, ok
}

// Methods lists the registered method names in sorted order.
func (r *Registry) Methods() []Method {
	methods := make([]Method, 0, len(r.handlers))
	for m := range r.handlers {
		methods = append(methods, m)
	}
	slices.Sort(methods)
	return methods
}

// Call runs method with params. Rejected query input comes back as a
// QueryError result, not as an error.
func (r *Registry) Call(ctx context.Context, method Method, params Params) (any, error) {
	handler, ok := r.handlers[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, method)
	}

	result, err := handler(ctx, params, r.stores)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	if rejected, ok := result.(QueryError); ok {
		r.logs.Infow("query rejected",
			"method", method,
			"reason", rejected.Error)
	}

	return result, nil
}
