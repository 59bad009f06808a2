package core

import (
	"fmt"
	"strings"
)

type table struct {
	name    string
	columns []string
}

var transactionHistoryTable = table{
	name: "transactionhistory",
	columns: []string{
		"txhash", "contractaddress", "calldata", "signature", "sender", "smartwallet", "poolamount",
		"token", "amount", "status", "chainstatus", "queuedat", "quarter",
		"processedat", "priority", "retrycount", "receipthash", "notes", "timestamp",
	},
}

var transfersTable = table{
	name: "transfers",
	columns: []string{
		"txhash", "contractaddress", "calldata", "signature", "sender", "smartwallet",
		"recipient", "token", "amount", "status", "chainstatus", "queuedat",
		"processedat", "priority", "retrycount", "receipthash", "notes", "timestamp",
	},
}

var vaultTable = table{
	name: "vault",
	columns: []string{
		"contractaddress", "useraddress", "depositamount", "paymentmethod",
		"ispending", "isclosed", "txhash", "signature", "depositstarttime",
		"calldata", "status", "chainstatus", "timestamp", "queuedat", "processedat",
		"retrycount", "notes", "receipthash", "smartwallet", "committedquarters",
	},
}

var purchasesTable = table{
	name: "purchases",
	columns: []string{
		"contractaddress", "useraddress", "asset", "amount", "quantity", "paymentmethod",
		"timestamp", "txhash", "signature", "calldata", "status", "chainstatus",
		"queuedat", "processedat", "priority", "retrycount", "notes",
		"receipthash", "smartwallet",
	},
}

var swapsTable = table{
	name: "swaps",
	columns: []string{
		"contractaddress", "useraddress", "direction", "amountin", "amountout", "exchangerate",
		"txhash", "signature", "calldata", "status", "chainstatus", "timestamp",
		"queuedat", "processedat", "priority", "retrycount", "notes", "smartwallet",
	},
}

var redemptionsTable = table{
	name: "redemptions",
	columns: []string{
		"contractaddress", "useraddress", "vaultid", "amount", "paymentmethod",
		"timestamp", "txhash", "signature", "calldata", "status", "chainstatus",
		"queuedat", "processedat", "priority", "retrycount", "notes",
		"receipthash", "smartwallet",
	},
}

// Swap and redemption lookups read the purchases table. Kept as deployed until
// product confirms which table those reads should target.
var (
	swapLookupTable       = purchasesTable
	redemptionLookupTable = purchasesTable
)

func (t table) insertSQL() string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, strings.Join(t.columns, ", "), placeholders)
}

// columnValues returns the column names typed for validation rules.
func (t table) columnValues() []any {
	values := make([]any, len(t.columns))
	for i, c := range t.columns {
		values[i] = c
	}
	return values
}
