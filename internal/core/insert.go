package core

import (
	"context"
	"fmt"
)

// insertHandler appends one row to t built from the params named after its
// columns. The acknowledgement differs per method and is kept as clients
// already expect it.
func insertHandler(t table, store func(Handles) Store, ack string) Handler {
	statement := t.insertSQL()

	return func(ctx context.Context, params Params, stores Handles) (any, error) {
		values, err := params.args(t.columns)
		if err != nil {
			return nil, err
		}

		if err := store(stores).Exec(ctx, statement, values...); err != nil {
			return nil, fmt.Errorf("insert into %s: %w", t.name, err)
		}

		return map[string]bool{ack: true}, nil
	}
}

func transactionHistoryStore(h Handles) Store { return h.TransactionHistory }
func transfersStore(h Handles) Store          { return h.Transfers }
func vaultStore(h Handles) Store              { return h.Vault }
func purchaseStore(h Handles) Store           { return h.Purchase }
func swapStore(h Handles) Store               { return h.Swap }
func redemptionsStore(h Handles) Store        { return h.Redemptions }
