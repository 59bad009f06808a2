package core

import (
	"context"
	"fmt"
)

func getTransactionHistory(ctx context.Context, params Params, stores Handles) (any, error) {
	if !params.has("quarter") {
		return QueryError{Error: msgMissingQueryParam}, nil
	}

	quarter, err := params.arg("quarter")
	if err != nil {
		return nil, err
	}

	q := selectFrom(transactionHistoryTable).where("quarter = ?", quarter)
	rows, err := runQuery(ctx, stores.TransactionHistory, q)
	if err != nil {
		return nil, err
	}
	return map[string][]Row{"transactionhistory": rows}, nil
}

func getTransfer(ctx context.Context, params Params, stores Handles) (any, error) {
	if !params.has("useraddress") && !params.has("chainstatus") {
		return QueryError{Error: msgMissingQueryParam}, nil
	}

	q := selectFrom(transfersTable)
	if params.has("useraddress") {
		user, err := params.arg("useraddress")
		if err != nil {
			return nil, err
		}
		q.where("(sender = ? OR recipient = ?)", user, user)
	}
	if params.has("chainstatus") {
		status, err := params.arg("chainstatus")
		if err != nil {
			return nil, err
		}
		q.where("chainstatus = ?", status)
	}

	if rejected := sortAndPaginate(q, params, transfersTable); rejected != nil {
		return *rejected, nil
	}

	rows, err := runQuery(ctx, stores.Transfers, q)
	if err != nil {
		return nil, err
	}
	return map[string][]Row{"transfers": rows}, nil
}

// vaultFilters are tried in order; the first truthy one is used.
var vaultFilters = []string{"useraddress", "depositstarttime", "committedquarters", "chainstatus"}

func getVault(ctx context.Context, params Params, stores Handles) (any, error) {
	if params.has("useraddress") && params.has("depositstarttime") {
		return QueryError{Error: msgUserOrDepositStart}, nil
	}

	var q *selectQuery
	for _, column := range vaultFilters {
		if !params.has(column) {
			continue
		}
		value, err := params.arg(column)
		if err != nil {
			return nil, err
		}
		q = selectFrom(vaultTable).where(column+" = ?", value)
		break
	}
	if q == nil {
		return QueryError{Error: msgMissingQueryParam}, nil
	}

	rows, err := runQuery(ctx, stores.Vault, q)
	if err != nil {
		return nil, err
	}
	return map[string][]Row{"vault": rows}, nil
}

// getPurchase filters by useraddress, else by chainstatus, else lists the
// whole table one page at a time.
func getPurchase(ctx context.Context, params Params, stores Handles) (any, error) {
	q := selectFrom(purchasesTable)
	switch {
	case params.has("useraddress"):
		user, err := params.arg("useraddress")
		if err != nil {
			return nil, err
		}
		q.where("useraddress = ?", user)
	case params.has("chainstatus"):
		status, err := params.arg("chainstatus")
		if err != nil {
			return nil, err
		}
		q.where("chainstatus = ?", status)
	}

	if rejected := sortAndPaginate(q, params, purchasesTable); rejected != nil {
		return *rejected, nil
	}

	rows, err := runQuery(ctx, stores.Purchase, q)
	if err != nil {
		return nil, err
	}
	return map[string][]Row{"purchases": rows}, nil
}

func getSwap(ctx context.Context, params Params, stores Handles) (any, error) {
	return singleFilterLookup(ctx, params, stores.Swap, swapLookupTable, "swaps")
}

func getRedemption(ctx context.Context, params Params, stores Handles) (any, error) {
	return singleFilterLookup(ctx, params, stores.Redemptions, redemptionLookupTable, "redemptions")
}

// singleFilterLookup requires exactly one of useraddress or chainstatus and
// returns one unsorted page of t under key.
func singleFilterLookup(ctx context.Context, params Params, store Store, t table, key string) (any, error) {
	hasUser, hasStatus := params.has("useraddress"), params.has("chainstatus")
	if hasUser && hasStatus {
		return QueryError{Error: msgUserOrChainStatus}, nil
	}

	column := "chainstatus"
	switch {
	case hasUser:
		column = "useraddress"
	case !hasStatus:
		return QueryError{Error: msgMissingQueryParam}, nil
	}

	value, err := params.arg(column)
	if err != nil {
		return nil, err
	}

	page, err := params.pageOptions()
	if err != nil {
		return QueryError{Error: err.Error()}, nil
	}

	q := selectFrom(t).where(column+" = ?", value).paginate(page)
	rows, err := runQuery(ctx, store, q)
	if err != nil {
		return nil, err
	}
	return map[string][]Row{key: rows}, nil
}

// sortAndPaginate applies sortBy/sortOrder and page/pageSize to q. A non-nil
// result means the input was rejected and should be returned to the caller.
func sortAndPaginate(q *selectQuery, params Params, t table) *QueryError {
	sort, err := params.sortOptions(t)
	if err != nil {
		return &QueryError{Error: err.Error()}
	}
	page, err := params.pageOptions()
	if err != nil {
		return &QueryError{Error: err.Error()}
	}
	q.sort(sort).paginate(page)
	return nil
}

func runQuery(ctx context.Context, store Store, q *selectQuery) ([]Row, error) {
	statement, args := q.build()
	rows, err := store.Query(ctx, statement, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", q.table, err)
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}
