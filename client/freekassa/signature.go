package freekassa

// Signature is one of the request signing schemes. The set is closed:
// MerchantSignature, WalletBalanceSignature, WalletActionSignature and
// FormSignature.
type Signature interface {
	// field is the parameter name the digest is sent under.
	field() string
	requires() []credential
	sign(creds Credentials, params *Params) string
}

type MerchantSignature struct{}

func (MerchantSignature) field() string { return "s" }

func (MerchantSignature) requires() []credential {
	return []credential{credMerchantId, credSecondSecret}
}

func (MerchantSignature) sign(creds Credentials, _ *Params) string {
	return creds.MerchantApiSignature()
}

type WalletBalanceSignature struct{}

func (WalletBalanceSignature) field() string { return "sign" }

func (WalletBalanceSignature) requires() []credential {
	return []credential{credWalletId, credWalletApiKey}
}

func (WalletBalanceSignature) sign(creds Credentials, _ *Params) string {
	return creds.WalletBalanceSignature()
}

// WalletActionSignature lists, in signing order, the parameter names whose
// values sit between the wallet id and the api key.
type WalletActionSignature struct {
	Fields []string
}

func (WalletActionSignature) field() string { return "sign" }

func (WalletActionSignature) requires() []credential {
	return []credential{credWalletId, credWalletApiKey}
}

func (s WalletActionSignature) sign(creds Credentials, params *Params) string {
	values := make([]string, len(s.Fields))
	for i, name := range s.Fields {
		values[i] = params.Get(name)
	}
	return creds.WalletActionSignature(values...)
}

type FormSignature struct{}

func (FormSignature) field() string { return "s" }

func (FormSignature) requires() []credential {
	return []credential{credMerchantId, credFirstSecret}
}

func (FormSignature) sign(creds Credentials, params *Params) string {
	return creds.FormSignature(params.Get(formAmount), params.Get(formOrderId), params.Get(formCurrency))
}
