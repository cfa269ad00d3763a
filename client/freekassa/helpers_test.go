package freekassa

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"testing"

	"freekassa/client"
	"freekassa/msync"
)

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

var testConfig = Config{
	MerchantId:   "1234",
	FirstSecret:  "fs",
	SecondSecret: "secret2",
	WalletId:     "w1",
	WalletApiKey: "k1",
}

type sentRequest struct {
	method string
	url    string
	params map[string]string
}

// fakeTransport records every request and answers with resp or err.
type fakeTransport struct {
	sent *msync.Mu[[]sentRequest]
	resp *client.Response
	err  error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		sent: msync.NewMu([]sentRequest{}),
		resp: &client.Response{StatusCode: 200, Body: []byte(`{"status":"success"}`)},
	}
}

func (f *fakeTransport) Send(ctx context.Context, method string, url string, params map[string]string) (*client.Response, error) {
	f.sent.Update(func(sent []sentRequest) []sentRequest {
		return append(sent, sentRequest{method: method, url: url, params: params})
	})
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeTransport) count() int {
	return len(f.sent.Get())
}

func (f *fakeTransport) last(t *testing.T) sentRequest {
	t.Helper()
	sent := f.sent.Get()
	if len(sent) == 0 {
		t.Fatal("no request was sent")
	}
	return sent[len(sent)-1]
}

func newTestClient(config Config) (*Client, *fakeTransport) {
	transport := newFakeTransport()
	return NewClient(&config, WithTransport(transport)), transport
}
