package freekassa

import (
	"context"
	"log/slog"
	"time"

	"freekassa/client"
	httpclient "freekassa/http_client"

	"github.com/google/uuid"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	MerchantId   string
	FirstSecret  string
	SecondSecret string
	WalletId     string
	WalletApiKey string
}

// Transport sends one request and returns the response untouched. It fails
// with *httpclient.StatusError on a non-2xx status and *httpclient.NetworkError
// when the round trip itself fails; the client passes both through as is.
type Transport interface {
	Send(ctx context.Context, method string, url string, params map[string]string) (*client.Response, error)
}

// Client exposes one method per gateway operation. It holds no mutable state
// and is safe for concurrent use.
type Client struct {
	creds     Credentials
	transport Transport
	urls      map[Surface]string
}

type Option func(*Client)

func WithTransport(transport Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithTimeout replaces the transport with a default one using timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.transport = httpclient.NewHttpClient(timeout)
	}
}

func WithMerchantUrl(url string) Option {
	return func(c *Client) {
		c.urls[SURFACE_MERCHANT] = url
	}
}

func WithWalletUrl(url string) Option {
	return func(c *Client) {
		c.urls[SURFACE_WALLET] = url
	}
}

func WithFormUrl(url string) Option {
	return func(c *Client) {
		c.urls[SURFACE_FORM] = url
	}
}

func NewClient(config *Config, opts ...Option) *Client {
	c := &Client{
		creds: NewCredentials(
			config.MerchantId,
			config.FirstSecret,
			config.SecondSecret,
			config.WalletId,
			config.WalletApiKey,
		),
		transport: httpclient.NewHttpClient(defaultTimeout),
		urls: map[Surface]string{
			SURFACE_MERCHANT: merchantApiUrl,
			SURFACE_WALLET:   walletApiUrl,
			SURFACE_FORM:     formUrl,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Credentials() Credentials {
	return c.creds
}

func (c *Client) call(ctx context.Context, op Operation, fields ...field) (*client.Response, error) {
	params, r, err := c.buildParams(op, fields...)
	if err != nil {
		return nil, err
	}
	target := c.urls[r.surface]
	slog.Debug("[FreeKassa] Calling gateway", "operation", op, "method", r.method, "url", target)
	return c.transport.Send(ctx, r.method, target, params.Map())
}

// NewOrderId returns a random order id for callers without their own numbering.
func NewOrderId() string {
	return uuid.NewString()
}
