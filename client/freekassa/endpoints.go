package freekassa

import "net/http"

const (
	merchantApiUrl = "https://www.free-kassa.ru/api.php"
	walletApiUrl   = "https://www.fkwallet.ru/api_v1.php"
	formUrl        = "https://pay.freekassa.ru/"
)

type Surface int

const (
	SURFACE_MERCHANT Surface = iota
	SURFACE_WALLET
	SURFACE_FORM
)

// identity is the parameter carrying the account id on each surface.
func (s Surface) identity() string {
	switch s {
	case SURFACE_WALLET:
		return "wallet_id"
	case SURFACE_FORM:
		return "m"
	default:
		return "merchant_id"
	}
}

func (s Surface) id(creds Credentials) string {
	if s == SURFACE_WALLET {
		return creds.walletId
	}
	return creds.merchantId
}

const (
	formOrderId  = "o"
	formAmount   = "oa"
	formCurrency = "currency"
)

type route struct {
	surface   Surface
	method    string
	action    string
	signature Signature
	// order fixes the query string layout; only the form needs one.
	order []string
}

func merchantRoute(action string) route {
	return route{surface: SURFACE_MERCHANT, method: http.MethodPost, action: action, signature: MerchantSignature{}}
}

func walletRoute(action string, signature Signature) route {
	return route{surface: SURFACE_WALLET, method: http.MethodPost, action: action, signature: signature}
}

func walletAction(fields ...string) WalletActionSignature {
	return WalletActionSignature{Fields: fields}
}

var routes = map[Operation]route{
	OP_GET_BALANCE:          merchantRoute("get_balance"),
	OP_CHECK_ORDER_STATUS:   merchantRoute("check_order_status"),
	OP_GET_ORDERS:           merchantRoute("get_orders"),
	OP_PAYMENT:              merchantRoute("payment"),
	OP_CREATE_BILL:          merchantRoute("create_bill"),
	OP_WALLET_BALANCE:       walletRoute("get_balance", WalletBalanceSignature{}),
	OP_CASHOUT:              walletRoute("cashout", walletAction("currency", "amount", "purse")),
	OP_GET_PAYMENT_STATUS:   walletRoute("get_payment_status", walletAction("payment_id")),
	OP_TRANSFER:             walletRoute("transfer", walletAction("purse", "amount")),
	OP_ONLINE_PAYMENT:       walletRoute("online_payment", walletAction("amount", "account")),
	OP_PROVIDERS:            walletRoute("providers", WalletBalanceSignature{}),
	OP_CHECK_ONLINE_PAYMENT: walletRoute("check_online_payment", walletAction("payment_id")),
	OP_CREATE_BTC_ADDRESS:   walletRoute("create_btc_address", WalletBalanceSignature{}),
	OP_CREATE_LTC_ADDRESS:   walletRoute("create_ltc_address", WalletBalanceSignature{}),
	OP_CREATE_ETH_ADDRESS:   walletRoute("create_eth_address", WalletBalanceSignature{}),
	OP_GET_BTC_ADDRESS:      walletRoute("get_btc_address", WalletBalanceSignature{}),
	OP_GET_LTC_ADDRESS:      walletRoute("get_ltc_address", WalletBalanceSignature{}),
	OP_GET_ETH_ADDRESS:      walletRoute("get_eth_address", WalletBalanceSignature{}),
	OP_GET_BTC_TRANSACTION:  walletRoute("get_btc_transaction", walletAction("transaction_id")),
	OP_GET_LTC_TRANSACTION:  walletRoute("get_ltc_transaction", walletAction("transaction_id")),
	OP_GET_ETH_TRANSACTION:  walletRoute("get_eth_transaction", walletAction("transaction_id")),
	OP_GENERATE_PAYMENT_LINK: {
		surface:   SURFACE_FORM,
		method:    http.MethodGet,
		signature: FormSignature{},
		order:     []string{formOrderId, formAmount, "s", "m", formCurrency, "lang", "pay", "us_desc"},
	},
}

// Endpoint resolves an operation to its base url and http method.
func (c *Client) Endpoint(op Operation) (string, string, error) {
	r, ok := routes[op]
	if !ok {
		return "", "", &UnknownOperationError{Operation: op}
	}
	return c.urls[r.surface], r.method, nil
}
