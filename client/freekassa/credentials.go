package freekassa

import "freekassa/signer"

// Credentials is the set of identifiers and secrets used by every signing
// scheme. It has no setters; build it once with NewCredentials.
type Credentials struct {
	merchantId   string
	firstSecret  string
	secondSecret string
	walletId     string
	walletApiKey string
}

func NewCredentials(merchantId, firstSecret, secondSecret, walletId, walletApiKey string) Credentials {
	return Credentials{
		merchantId:   merchantId,
		firstSecret:  firstSecret,
		secondSecret: secondSecret,
		walletId:     walletId,
		walletApiKey: walletApiKey,
	}
}

func (c Credentials) MerchantId() string {
	return c.merchantId
}

func (c Credentials) WalletId() string {
	return c.walletId
}

// MerchantApiSignature signs every merchant API call: md5(merchantId + secondSecret).
func (c Credentials) MerchantApiSignature() string {
	return signer.Sign("", c.merchantId, c.secondSecret)
}

// WalletBalanceSignature signs wallet calls that carry no variable fields:
// md5(walletId + walletApiKey).
func (c Credentials) WalletBalanceSignature() string {
	return signer.Sign("", c.walletId, c.walletApiKey)
}

// WalletActionSignature signs a wallet action. The wallet id is prepended and
// the api key appended to fields, and the whole list is joined by spaces.
func (c Credentials) WalletActionSignature(fields ...string) string {
	parts := make([]string, 0, len(fields)+2)
	parts = append(parts, c.walletId)
	parts = append(parts, fields...)
	parts = append(parts, c.walletApiKey)
	return signer.Sign(" ", parts...)
}

// FormSignature signs the payment form: md5(merchantId:amount:firstSecret:currency:orderId).
func (c Credentials) FormSignature(amount, orderId, currency string) string {
	return signer.Sign(":", c.merchantId, amount, c.firstSecret, currency, orderId)
}

// NotificationSignature is the SIGN the gateway puts on payment
// notifications: md5(merchantId:amount:secondSecret:orderId).
func (c Credentials) NotificationSignature(amount, orderId string) string {
	return signer.Sign(":", c.merchantId, amount, c.secondSecret, orderId)
}

type credential struct {
	name  string
	value func(c Credentials) string
}

var (
	credMerchantId   = credential{"merchant_id", func(c Credentials) string { return c.merchantId }}
	credFirstSecret  = credential{"first_secret", func(c Credentials) string { return c.firstSecret }}
	credSecondSecret = credential{"second_secret", func(c Credentials) string { return c.secondSecret }}
	credWalletId     = credential{"wallet_id", func(c Credentials) string { return c.walletId }}
	credWalletApiKey = credential{"wallet_api_key", func(c Credentials) string { return c.walletApiKey }}
)

func (c Credentials) require(op Operation, creds ...credential) error {
	for _, cred := range creds {
		if cred.value(c) == "" {
			return &ConfigError{Operation: op, Field: cred.name}
		}
	}
	return nil
}
