package freekassa

import "log/slog"

const formPay = "PAY"

// PaymentLink builds the hosted checkout url for a browser redirect. No
// request is sent. Empty Currency and Language fall back to
// DefaultFormCurrency and DefaultFormLanguage.
func (c *Client) PaymentLink(req *PaymentLinkRequest) (string, error) {
	currency := req.Currency
	if currency == "" {
		currency = DefaultFormCurrency
	}
	language := req.Language
	if language == "" {
		language = DefaultFormLanguage
	}

	params, r, err := c.buildParams(OP_GENERATE_PAYMENT_LINK,
		param(formOrderId, req.OrderId),
		amountParam(formAmount, req.Amount),
		param(formCurrency, currency),
		param("lang", language),
		param("pay", formPay),
		param("us_desc", req.Description),
	)
	if err != nil {
		return "", err
	}

	slog.Debug("[FreeKassa] Payment link built", "order_id", req.OrderId)
	return c.urls[r.surface] + "?" + params.Query(r.order...), nil
}
