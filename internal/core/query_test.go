package core_test

import (
	"context"
	"errors"

	"ledgerrpc/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Query methods", func() {
	var (
		registry *core.Registry
		stores   fakeHandles
		ctx      context.Context
		rows     []map[string]any
		params   core.Params
		result   any
		err      error
	)

	BeforeEach(func() {
		stores = newFakeHandles()
		ctx = context.Background()
		registry = core.NewRegistry(zap.NewNop().Sugar(), stores.handles())
		rows = []map[string]any{{"txhash": "0x1"}, {"txhash": "0x2"}}
		for _, s := range []interface {
			QueryReturns([]map[string]any, error)
		}{stores.transactionHistory, stores.transfers, stores.vault, stores.purchase, stores.swap, stores.redemptions} {
			s.QueryReturns(rows, nil)
		}
	})

	call := func(method core.Method) {
		result, err = registry.Call(ctx, method, params)
	}

	Describe("getTransactionHistory", func() {
		JustBeforeEach(func() { call(core.GetTransactionHistory) })

		When("quarter is missing", func() {
			BeforeEach(func() { params = mustParams(`{}`) })

			It("should return the missing parameter error as data", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(core.QueryError{Error: "Missing query parameter"}))
				Expect(stores.totalCalls()).To(Equal(0))
			})
		})

		When("quarter is given", func() {
			BeforeEach(func() {
				params = mustParams(`{"quarter":"2024Q1","page":3,"pageSize":1,"sortBy":"amount"}`)
			})

			It("should return every matching row unpaged", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(map[string][]map[string]any{"transactionhistory": rows}))

				_, statement, args := stores.transactionHistory.QueryArgsForCall(0)
				Expect(statement).To(Equal("SELECT * FROM transactionhistory WHERE quarter = ?"))
				Expect(args).To(Equal([]any{"2024Q1"}))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				params = mustParams(`{"quarter":"2024Q1"}`)
				stores.transactionHistory.QueryReturns(nil, errors.New("no such table: transactionhistory"))
			})

			It("should return the failure", func() {
				Expect(result).To(BeNil())
				Expect(err).To(MatchError(ContainSubstring("no such table")))
			})
		})
	})

	Describe("getTransfer", func() {
		JustBeforeEach(func() { call(core.GetTransfer) })

		When("no filter is given", func() {
			BeforeEach(func() { params = mustParams(`{"useraddress":"","chainstatus":null}`) })

			It("should return the missing parameter error", func() {
				Expect(result).To(Equal(core.QueryError{Error: "Missing query parameter"}))
				Expect(stores.transfers.QueryCallCount()).To(Equal(0))
			})
		})

		When("useraddress is given", func() {
			BeforeEach(func() { params = mustParams(`{"useraddress":"0xA"}`) })

			It("should match sender or recipient, newest first, first page of 10", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(map[string][]map[string]any{"transfers": rows}))

				_, statement, args := stores.transfers.QueryArgsForCall(0)
				Expect(statement).To(Equal("SELECT * FROM transfers WHERE (sender = ? OR recipient = ?) ORDER BY timestamp DESC LIMIT ? OFFSET ?"))
				Expect(args).To(Equal([]any{"0xA", "0xA", int64(10), int64(0)}))
			})
		})

		When("both filters, sorting and paging are given", func() {
			BeforeEach(func() {
				params = mustParams(`{"useraddress":"0xA","chainstatus":"confirmed","page":"3","pageSize":25,"sortBy":"amount","sortOrder":"ASC"}`)
			})

			It("should combine the filters", func() {
				Expect(err).NotTo(HaveOccurred())
				_, statement, args := stores.transfers.QueryArgsForCall(0)
				Expect(statement).To(Equal("SELECT * FROM transfers WHERE (sender = ? OR recipient = ?) AND chainstatus = ? ORDER BY amount ASC LIMIT ? OFFSET ?"))
				Expect(args).To(Equal([]any{"0xA", "0xA", "confirmed", int64(25), int64(50)}))
			})
		})

		When("sortBy is not a column", func() {
			BeforeEach(func() {
				params = mustParams(`{"chainstatus":"confirmed","sortBy":"timestamp; DROP TABLE transfers"}`)
			})

			It("should reject the request without querying", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(BeAssignableToTypeOf(core.QueryError{}))
				Expect(result.(core.QueryError).Error).To(ContainSubstring("sortBy"))
				Expect(stores.transfers.QueryCallCount()).To(Equal(0))
			})
		})

		When("sortOrder is not a direction", func() {
			BeforeEach(func() {
				params = mustParams(`{"chainstatus":"confirmed","sortOrder":"sideways"}`)
			})

			It("should reject the request", func() {
				Expect(result.(core.QueryError).Error).To(ContainSubstring("sortOrder"))
				Expect(stores.transfers.QueryCallCount()).To(Equal(0))
			})
		})

		When("page is not a positive integer", func() {
			BeforeEach(func() {
				params = mustParams(`{"chainstatus":"confirmed","page":0}`)
			})

			It("should reject the request", func() {
				Expect(result.(core.QueryError).Error).To(ContainSubstring("page"))
				Expect(stores.transfers.QueryCallCount()).To(Equal(0))
			})
		})

		When("pageSize is not numeric", func() {
			BeforeEach(func() {
				params = mustParams(`{"chainstatus":"confirmed","pageSize":"ten"}`)
			})

			It("should reject the request", func() {
				Expect(result).To(Equal(core.QueryError{Error: "pageSize: must be an integer"}))
			})
		})
	})

	Describe("getVault", func() {
		JustBeforeEach(func() { call(core.GetVault) })

		When("useraddress and depositstarttime are both given", func() {
			BeforeEach(func() { params = mustParams(`{"useraddress":"0xA","depositstarttime":123}`) })

			It("should ask for a single filter", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(core.QueryError{Error: "Please provide only one filter: useraddress or depositstarttime"}))
				Expect(stores.vault.QueryCallCount()).To(Equal(0))
			})
		})

		When("other filters are combined", func() {
			BeforeEach(func() {
				params = mustParams(`{"committedquarters":4,"chainstatus":"pending","depositstarttime":123}`)
			})

			It("should use the first filter in priority order", func() {
				Expect(err).NotTo(HaveOccurred())
				_, statement, args := stores.vault.QueryArgsForCall(0)
				Expect(statement).To(Equal("SELECT * FROM vault WHERE depositstarttime = ?"))
				Expect(args).To(Equal([]any{int64(123)}))
			})
		})

		When("only chainstatus is given", func() {
			BeforeEach(func() { params = mustParams(`{"chainstatus":"pending","committedquarters":0}`) })

			It("should ignore falsy filters", func() {
				Expect(result).To(Equal(map[string][]map[string]any{"vault": rows}))
				_, statement, args := stores.vault.QueryArgsForCall(0)
				Expect(statement).To(Equal("SELECT * FROM vault WHERE chainstatus = ?"))
				Expect(args).To(Equal([]any{"pending"}))
			})
		})

		When("no filter is given", func() {
			BeforeEach(func() { params = mustParams(`{"page":2}`) })

			It("should return the missing parameter error", func() {
				Expect(result).To(Equal(core.QueryError{Error: "Missing query parameter"}))
			})
		})
	})

	Describe("getPurchase", func() {
		JustBeforeEach(func() { call(core.GetPurchase) })

		When("useraddress and chainstatus are both given", func() {
			BeforeEach(func() { params = mustParams(`{"useraddress":"0xA","chainstatus":"confirmed"}`) })

			It("should filter by useraddress only", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(map[string][]map[string]any{"purchases": rows}))
				_, statement, args := stores.purchase.QueryArgsForCall(0)
				Expect(statement).To(Equal("SELECT * FROM purchases WHERE useraddress = ? ORDER BY timestamp DESC LIMIT ? OFFSET ?"))
				Expect(args).To(Equal([]any{"0xA", int64(10), int64(0)}))
			})
		})

		When("no filter is given", func() {
			BeforeEach(func() { params = mustParams(`{"page":2,"pageSize":5,"sortBy":"quantity","sortOrder":"asc"}`) })

			It("should page through the whole table", func() {
				_, statement, args := stores.purchase.QueryArgsForCall(0)
				Expect(statement).To(Equal("SELECT * FROM purchases ORDER BY quantity ASC LIMIT ? OFFSET ?"))
				Expect(args).To(Equal([]any{int64(5), int64(5)}))
			})
		})

		When("sortBy names a column of another table", func() {
			BeforeEach(func() { params = mustParams(`{"sortBy":"recipient"}`) })

			It("should reject the request", func() {
				Expect(result).To(BeAssignableToTypeOf(core.QueryError{}))
				Expect(stores.purchase.QueryCallCount()).To(Equal(0))
			})
		})
	})

	DescribeTable("getSwap and getRedemption",
		func(method core.Method, handle, key string) {
			params = mustParams(`{"useraddress":"0xA","sortBy":"amount","sortOrder":"asc"}`)
			call(method)

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(map[string][]map[string]any{key: rows}))

			target := stores.byName(handle)
			Expect(stores.totalCalls()).To(Equal(1))
			_, statement, args := target.QueryArgsForCall(0)
			Expect(statement).To(Equal("SELECT * FROM purchases WHERE useraddress = ? LIMIT ? OFFSET ?"))
			Expect(args).To(Equal([]any{"0xA", int64(10), int64(0)}))

			params = mustParams(`{"chainstatus":"failed","page":4,"pageSize":20}`)
			call(method)
			_, statement, args = target.QueryArgsForCall(1)
			Expect(statement).To(Equal("SELECT * FROM purchases WHERE chainstatus = ? LIMIT ? OFFSET ?"))
			Expect(args).To(Equal([]any{"failed", int64(20), int64(60)}))

			params = mustParams(`{"useraddress":"0xA","chainstatus":"failed"}`)
			call(method)
			Expect(result).To(Equal(core.QueryError{Error: "Please provide only one filter: useraddress or chainstatus"}))

			params = mustParams(`{}`)
			call(method)
			Expect(result).To(Equal(core.QueryError{Error: "Missing query parameter"}))

			Expect(target.QueryCallCount()).To(Equal(2))
		},
		Entry("getSwap", core.GetSwap, "swap", "swaps"),
		Entry("getRedemption", core.GetRedemption, "redemptions", "redemptions"),
	)

	When("a store returns no rows", func() {
		BeforeEach(func() {
			stores.vault.QueryReturns(nil, nil)
			params = mustParams(`{"useraddress":"0xnobody"}`)
		})

		It("should return an empty list", func() {
			call(core.GetVault)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(map[string][]map[string]any{"vault": {}}))
		})
	})
})
