package freekassa

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"freekassa/signer"

	"github.com/shopspring/decimal"
)

// NotificationReply is the body the gateway expects after a notification
// has been accepted.
const NotificationReply = "YES"

// Notification is a payment notification sent by the gateway to the
// merchant's result url.
type Notification struct {
	MerchantId string
	Amount     decimal.Decimal
	IntId      string
	OrderId    string
	Email      string
	Phone      string
	CurrencyId string
	Sign       string
	// Custom holds the us_* fields echoed back from the payment form.
	Custom map[string]string
}

// VerifyNotification parses a notification and checks that it was signed
// with this merchant's second secret. The signature covers AMOUNT exactly as
// received.
func (c *Client) VerifyNotification(values url.Values) (*Notification, error) {
	if err := c.creds.require(OP_NOTIFICATION, credMerchantId, credSecondSecret); err != nil {
		return nil, err
	}

	n := &Notification{
		MerchantId: values.Get("MERCHANT_ID"),
		IntId:      values.Get("intid"),
		OrderId:    values.Get("MERCHANT_ORDER_ID"),
		Email:      values.Get("P_EMAIL"),
		Phone:      values.Get("P_PHONE"),
		CurrencyId: values.Get("CUR_ID"),
		Sign:       values.Get("SIGN"),
		Custom:     make(map[string]string),
	}
	rawAmount := values.Get("AMOUNT")

	for _, name := range []string{"MERCHANT_ID", "AMOUNT", "MERCHANT_ORDER_ID", "SIGN"} {
		if values.Get(name) == "" {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformedNotification, name)
		}
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount %q: %v", ErrMalformedNotification, rawAmount, err)
	}
	n.Amount = amount

	for key := range values {
		if strings.HasPrefix(key, "us_") {
			n.Custom[key] = values.Get(key)
		}
	}

	if n.MerchantId != c.creds.merchantId {
		slog.Warn("[FreeKassa] Notification for another merchant", "merchant_id", n.MerchantId, "order_id", n.OrderId)
		return nil, ErrMerchantMismatch
	}
	if !signer.Equal(c.creds.NotificationSignature(rawAmount, n.OrderId), n.Sign) {
		slog.Warn("[FreeKassa] Notification signature mismatch", "order_id", n.OrderId, "intid", n.IntId)
		return nil, ErrInvalidSignature
	}
	return n, nil
}
