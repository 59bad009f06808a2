package payload_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"

	"ledgerrpc/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	decode := func(body string) (payload.RPCRequest, error) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		return payload.Decoder{}.DecodeRPCRequest(httptest.NewRecorder(), req)
	}

	It("should keep members raw", func() {
		req, err := decode(`{"jsonrpc":"2.0","method":"getVault","params":{"useraddress":"0xA"},"id":7,"extra":true}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(req.JSONRPC).To(Equal("2.0"))
		Expect(string(req.ID)).To(Equal("7"))
		Expect(req.Params).To(MatchJSON(`{"useraddress":"0xA"}`))

		name, ok := req.MethodName()
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("getVault"))
	})

	It("should fail on an empty body", func() {
		_, err := decode(``)
		Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("should fail on malformed json", func() {
		_, err := decode(`{"method":`)
		Expect(err).To(HaveOccurred())
	})

	It("should fail on oversized bodies", func() {
		body := `{"method":"createTransfer","params":{"notes":"` + strings.Repeat("a", payload.MaxBodyBytes) + `"}}`
		_, err := decode(body)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("RPCRequest", func() {
	DescribeTable("method names",
		func(method string, valid bool) {
			req := payload.RPCRequest{Method: json.RawMessage(method)}
			_, ok := req.MethodName()
			if valid {
				Expect(ok).To(BeTrue())
				Expect(req.Validate()).To(Succeed())
			} else {
				Expect(req.Validate()).To(MatchError(ContainSubstring("method")))
			}
		},
		Entry("string", `"getTransfer"`, true),
		Entry("missing", ``, false),
		Entry("empty string", `""`, false),
		Entry("number", `12`, false),
		Entry("null", `null`, false),
		Entry("object", `{"name":"getTransfer"}`, false),
	)

	It("should echo the id or null", func() {
		Expect(string(payload.RPCRequest{ID: json.RawMessage(`"abc"`)}.EchoID())).To(Equal(`"abc"`))
		Expect(string(payload.RPCRequest{ID: json.RawMessage(`null`)}.EchoID())).To(Equal(`null`))
		Expect(string(payload.RPCRequest{}.EchoID())).To(Equal(`null`))
	})
})

var _ = Describe("Responses", func() {
	It("should encode results", func() {
		b, err := json.Marshal(payload.Result(json.RawMessage(`1`), map[string]bool{"success": true}))
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(MatchJSON(`{"jsonrpc":"2.0","id":1,"result":{"success":true}}`))
	})

	It("should encode method not found with the id", func() {
		b, err := json.Marshal(payload.MethodNotFound(json.RawMessage(`"x"`)))
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(MatchJSON(`{"jsonrpc":"2.0","id":"x","error":{"code":-32601,"message":"Method not found"}}`))
	})

	It("should encode server errors with a null id", func() {
		b, err := json.Marshal(payload.ServerError(errors.New("no such table: vault")))
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(MatchJSON(`{"jsonrpc":"2.0","id":null,"error":{"code":-32000,"message":"no such table: vault"}}`))
	})
})
