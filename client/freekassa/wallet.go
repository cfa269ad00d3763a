package freekassa

import (
	"context"

	"freekassa/client"
)

// WalletBalance sends the literal wallet action get_balance.
func (c *Client) WalletBalance(ctx context.Context) (*client.Response, error) {
	return c.call(ctx, OP_WALLET_BALANCE)
}

// Cashout withdraws from the wallet to an external purse. Currency exchange
// is disabled unless EnableExchange is set.
func (c *Client) Cashout(ctx context.Context, req *CashoutRequest) (*client.Response, error) {
	disableExchange := "1"
	if req.EnableExchange {
		disableExchange = "0"
	}
	return c.call(ctx, OP_CASHOUT,
		param("purse", req.Purse),
		amountParam("amount", req.Amount),
		param("desc", req.Description),
		param("disable_exchange", disableExchange),
		param("currency", req.Currency),
	)
}

func (c *Client) PaymentStatus(ctx context.Context, paymentId string) (*client.Response, error) {
	return c.call(ctx, OP_GET_PAYMENT_STATUS, param("payment_id", paymentId))
}

func (c *Client) Transfer(ctx context.Context, req *TransferRequest) (*client.Response, error) {
	return c.call(ctx, OP_TRANSFER,
		param("purse", req.Purse),
		amountParam("amount", req.Amount),
	)
}

func (c *Client) OnlinePayment(ctx context.Context, req *OnlinePaymentRequest) (*client.Response, error) {
	return c.call(ctx, OP_ONLINE_PAYMENT,
		param("service_id", req.ServiceId),
		param("account", req.Account),
		amountParam("amount", req.Amount),
	)
}

// Providers lists the services OnlinePayment can pay.
func (c *Client) Providers(ctx context.Context) (*client.Response, error) {
	return c.call(ctx, OP_PROVIDERS)
}

func (c *Client) OnlinePaymentStatus(ctx context.Context, paymentId string) (*client.Response, error) {
	return c.call(ctx, OP_CHECK_ONLINE_PAYMENT, param("payment_id", paymentId))
}
