package core

import (
	"context"
	"errors"
)

var ErrParamsNotObject = errors.New("params must be a JSON object")

// Method is the name a client uses to call a handler.
type Method string

const (
	CreateTransaction     Method = "createTransaction"
	GetTransactionHistory Method = "getTransactionHistory"
	CreateTransfer        Method = "createTransfer"
	GetTransfer           Method = "getTransfer"
	VaultCommit           Method = "vaultCommit"
	GetVault              Method = "getVault"
	RecordPurchase        Method = "recordPurchase"
	GetPurchase           Method = "getPurchase"
	ExecuteSwap           Method = "executeSwap"
	GetSwap               Method = "getSwap"
	RedeemToken           Method = "redeemToken"
	GetRedemption         Method = "getRedemption"
)

// Row is one result row keyed by column name.
type Row = map[string]any

// Handles are the named storage handles, one per table.
type Handles struct {
	TransactionHistory Store
	Transfers          Store
	Vault              Store
	Purchase           Store
	Swap               Store
	Redemptions        Store
}

// Handler runs one method against the storage handles.
type Handler func(ctx context.Context, params Params, stores Handles) (any, error)

// QueryError is returned as a method result when filter or paging input is
// rejected. It is data, not a protocol error.
type QueryError struct {
	Error string `json:"error"`
}

const (
	msgMissingQueryParam  = "Missing query parameter"
	msgUserOrDepositStart = "Please provide only one filter: useraddress or depositstarttime"
	msgUserOrChainStatus  = "Please provide only one filter: useraddress or chainstatus"
)
