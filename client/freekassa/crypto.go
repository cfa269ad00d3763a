package freekassa

import (
	"context"
	"fmt"

	"freekassa/client"
)

func (c *Client) CreateCryptoAddress(ctx context.Context, crypto Crypto) (*client.Response, error) {
	ops, err := cryptoOps(crypto)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, ops.createAddress)
}

func (c *Client) CryptoAddress(ctx context.Context, crypto Crypto) (*client.Response, error) {
	ops, err := cryptoOps(crypto)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, ops.getAddress)
}

func (c *Client) CryptoTransaction(ctx context.Context, crypto Crypto, transactionId string) (*client.Response, error) {
	ops, err := cryptoOps(crypto)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, ops.transaction, param("transaction_id", transactionId))
}

func (c *Client) CreateBtcAddress(ctx context.Context) (*client.Response, error) {
	return c.CreateCryptoAddress(ctx, CRYPTO_BTC)
}

func (c *Client) CreateLtcAddress(ctx context.Context) (*client.Response, error) {
	return c.CreateCryptoAddress(ctx, CRYPTO_LTC)
}

func (c *Client) CreateEthAddress(ctx context.Context) (*client.Response, error) {
	return c.CreateCryptoAddress(ctx, CRYPTO_ETH)
}

func (c *Client) BtcAddress(ctx context.Context) (*client.Response, error) {
	return c.CryptoAddress(ctx, CRYPTO_BTC)
}

func (c *Client) LtcAddress(ctx context.Context) (*client.Response, error) {
	return c.CryptoAddress(ctx, CRYPTO_LTC)
}

func (c *Client) EthAddress(ctx context.Context) (*client.Response, error) {
	return c.CryptoAddress(ctx, CRYPTO_ETH)
}

func (c *Client) BtcTransaction(ctx context.Context, transactionId string) (*client.Response, error) {
	return c.CryptoTransaction(ctx, CRYPTO_BTC, transactionId)
}

func (c *Client) LtcTransaction(ctx context.Context, transactionId string) (*client.Response, error) {
	return c.CryptoTransaction(ctx, CRYPTO_LTC, transactionId)
}

func (c *Client) EthTransaction(ctx context.Context, transactionId string) (*client.Response, error) {
	return c.CryptoTransaction(ctx, CRYPTO_ETH, transactionId)
}

func cryptoOps(crypto Crypto) (cryptoOperations, error) {
	ops, ok := cryptos[crypto]
	if !ok {
		return cryptoOperations{}, fmt.Errorf("%w: %q", ErrUnsupportedCrypto, string(crypto))
	}
	return ops, nil
}
