package freekassa

import (
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

var allOperations = []Operation{
	OP_GET_BALANCE, OP_CHECK_ORDER_STATUS, OP_GET_ORDERS, OP_PAYMENT, OP_CREATE_BILL,
	OP_WALLET_BALANCE, OP_CASHOUT, OP_GET_PAYMENT_STATUS, OP_TRANSFER, OP_ONLINE_PAYMENT,
	OP_PROVIDERS, OP_CHECK_ONLINE_PAYMENT,
	OP_CREATE_BTC_ADDRESS, OP_CREATE_LTC_ADDRESS, OP_CREATE_ETH_ADDRESS,
	OP_GET_BTC_ADDRESS, OP_GET_LTC_ADDRESS, OP_GET_ETH_ADDRESS,
	OP_GET_BTC_TRANSACTION, OP_GET_LTC_TRANSACTION, OP_GET_ETH_TRANSACTION,
	OP_GENERATE_PAYMENT_LINK,
}

func TestRoutesCoverEveryOperation(t *testing.T) {
	if len(routes) != len(allOperations) {
		t.Errorf("routes has %d entries, want %d", len(routes), len(allOperations))
	}
	for _, op := range allOperations {
		if _, ok := routes[op]; !ok {
			t.Errorf("no route for %s", op)
		}
	}
}

func TestWalletActionFieldOrder(t *testing.T) {
	tests := []struct {
		op     Operation
		fields []string
	}{
		{OP_CASHOUT, []string{"currency", "amount", "purse"}},
		{OP_GET_PAYMENT_STATUS, []string{"payment_id"}},
		{OP_TRANSFER, []string{"purse", "amount"}},
		{OP_ONLINE_PAYMENT, []string{"amount", "account"}},
		{OP_CHECK_ONLINE_PAYMENT, []string{"payment_id"}},
		{OP_GET_BTC_TRANSACTION, []string{"transaction_id"}},
		{OP_GET_LTC_TRANSACTION, []string{"transaction_id"}},
		{OP_GET_ETH_TRANSACTION, []string{"transaction_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			sig, ok := routes[tt.op].signature.(WalletActionSignature)
			if !ok {
				t.Fatalf("signature is %T, want WalletActionSignature", routes[tt.op].signature)
			}
			if !reflect.DeepEqual(sig.Fields, tt.fields) {
				t.Errorf("Fields = %v, want %v", sig.Fields, tt.fields)
			}
		})
	}
}

func TestSignatureVariants(t *testing.T) {
	tests := []struct {
		op      Operation
		variant Signature
		surface Surface
		method  string
		action  string
	}{
		{OP_GET_BALANCE, MerchantSignature{}, SURFACE_MERCHANT, http.MethodPost, "get_balance"},
		{OP_CHECK_ORDER_STATUS, MerchantSignature{}, SURFACE_MERCHANT, http.MethodPost, "check_order_status"},
		{OP_GET_ORDERS, MerchantSignature{}, SURFACE_MERCHANT, http.MethodPost, "get_orders"},
		{OP_PAYMENT, MerchantSignature{}, SURFACE_MERCHANT, http.MethodPost, "payment"},
		{OP_CREATE_BILL, MerchantSignature{}, SURFACE_MERCHANT, http.MethodPost, "create_bill"},
		{OP_WALLET_BALANCE, WalletBalanceSignature{}, SURFACE_WALLET, http.MethodPost, "get_balance"},
		{OP_PROVIDERS, WalletBalanceSignature{}, SURFACE_WALLET, http.MethodPost, "providers"},
		{OP_CREATE_BTC_ADDRESS, WalletBalanceSignature{}, SURFACE_WALLET, http.MethodPost, "create_btc_address"},
		{OP_GET_ETH_ADDRESS, WalletBalanceSignature{}, SURFACE_WALLET, http.MethodPost, "get_eth_address"},
		{OP_GENERATE_PAYMENT_LINK, FormSignature{}, SURFACE_FORM, http.MethodGet, ""},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			r := routes[tt.op]
			if reflect.TypeOf(r.signature) != reflect.TypeOf(tt.variant) {
				t.Errorf("signature = %T, want %T", r.signature, tt.variant)
			}
			if r.surface != tt.surface || r.method != tt.method || r.action != tt.action {
				t.Errorf("route = (%v, %s, %q), want (%v, %s, %q)", r.surface, r.method, r.action, tt.surface, tt.method, tt.action)
			}
		})
	}
}

func TestEndpoint(t *testing.T) {
	c, _ := newTestClient(testConfig)
	tests := []struct {
		op     Operation
		url    string
		method string
	}{
		{OP_GET_BALANCE, merchantApiUrl, http.MethodPost},
		{OP_GET_ORDERS, merchantApiUrl, http.MethodPost},
		{OP_CASHOUT, walletApiUrl, http.MethodPost},
		{OP_GET_LTC_TRANSACTION, walletApiUrl, http.MethodPost},
		{OP_GENERATE_PAYMENT_LINK, formUrl, http.MethodGet},
	}
	for _, tt := range tests {
		url, method, err := c.Endpoint(tt.op)
		if err != nil {
			t.Fatalf("Endpoint(%s) error = %v", tt.op, err)
		}
		if url != tt.url || method != tt.method {
			t.Errorf("Endpoint(%s) = %s %s, want %s %s", tt.op, method, url, tt.method, tt.url)
		}
	}

	if _, _, err := c.Endpoint("refund"); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("Endpoint(refund) error = %v, want ErrUnknownOperation", err)
	}
}

// Re-signing the values found in the built parameters must reproduce the
// transmitted signature, whatever form the amount was given in.
func TestBuildParamsRoundTrip(t *testing.T) {
	c, _ := newTestClient(testConfig)
	creds := c.Credentials()

	for _, raw := range []string{"10", "10.0", "10.00", "010.000"} {
		amount := decimal.RequireFromString(raw)
		t.Run(raw, func(t *testing.T) {
			params, _, err := c.buildParams(OP_CASHOUT,
				param("purse", "P1"),
				amountParam("amount", amount),
				param("currency", "USD"),
			)
			if err != nil {
				t.Fatalf("buildParams() error = %v", err)
			}
			if got := params.Get("amount"); got != "10" {
				t.Errorf("amount = %q, want %q", got, "10")
			}
			resigned := creds.WalletActionSignature(params.Get("currency"), params.Get("amount"), params.Get("purse"))
			if params.Get("sign") != resigned {
				t.Errorf("sign = %s, re-signed = %s", params.Get("sign"), resigned)
			}
			if want := md5Hex("w1 USD 10 P1 k1"); params.Get("sign") != want {
				t.Errorf("sign = %s, want md5(%q)", params.Get("sign"), "w1 USD 10 P1 k1")
			}
		})
	}
}

func TestBuildParamsFractionalAmount(t *testing.T) {
	c, _ := newTestClient(testConfig)
	params, _, err := c.buildParams(OP_TRANSFER,
		param("purse", "P9"),
		amountParam("amount", decimal.RequireFromString("12.50")),
	)
	if err != nil {
		t.Fatalf("buildParams() error = %v", err)
	}
	if got := params.Get("amount"); got != "12.5" {
		t.Errorf("amount = %q, want 12.5", got)
	}
	if want := md5Hex("w1 P9 12.5 k1"); params.Get("sign") != want {
		t.Errorf("sign = %s, want md5(%q)", params.Get("sign"), "w1 P9 12.5 k1")
	}
}

func TestBuildParamsIdentityAndSignatureField(t *testing.T) {
	c, _ := newTestClient(testConfig)
	tests := []struct {
		op        Operation
		identity  string
		id        string
		signField string
		otherSign string
	}{
		{OP_GET_BALANCE, "merchant_id", "1234", "s", "sign"},
		{OP_WALLET_BALANCE, "wallet_id", "w1", "sign", "s"},
		{OP_GET_PAYMENT_STATUS, "wallet_id", "w1", "sign", "s"},
		{OP_GENERATE_PAYMENT_LINK, "m", "1234", "s", "sign"},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			params, _, err := c.buildParams(tt.op)
			if err != nil {
				t.Fatalf("buildParams() error = %v", err)
			}
			if got := params.Get(tt.identity); got != tt.id {
				t.Errorf("%s = %q, want %q", tt.identity, got, tt.id)
			}
			if params.Get(tt.signField) == "" {
				t.Errorf("%s is empty", tt.signField)
			}
			if _, ok := params.Map()[tt.otherSign]; ok {
				t.Errorf("unexpected %s field", tt.otherSign)
			}
		})
	}
}

func TestBuildParamsMissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		op     Operation
		field  string
	}{
		{"merchant without id", Config{SecondSecret: "s2"}, OP_GET_BALANCE, "merchant_id"},
		{"merchant without secret", Config{MerchantId: "1"}, OP_CREATE_BILL, "second_secret"},
		{"wallet without id", Config{WalletApiKey: "k"}, OP_WALLET_BALANCE, "wallet_id"},
		{"wallet action without key", Config{WalletId: "w"}, OP_CASHOUT, "wallet_api_key"},
		{"form without secret", Config{MerchantId: "1", SecondSecret: "s2"}, OP_GENERATE_PAYMENT_LINK, "first_secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(tt.config)
			_, _, err := c.buildParams(tt.op)
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("error = %v, want ErrConfiguration", err)
			}
			var configErr *ConfigError
			if !errors.As(err, &configErr) {
				t.Fatalf("error %T is not *ConfigError", err)
			}
			if configErr.Operation != tt.op || configErr.Field != tt.field {
				t.Errorf("ConfigError = %+v, want operation %s field %s", configErr, tt.op, tt.field)
			}
		})
	}
}

func TestBuildParamsUnknownOperation(t *testing.T) {
	c, _ := newTestClient(testConfig)
	if _, _, err := c.buildParams("refund"); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("error = %v, want ErrUnknownOperation", err)
	}
}

func TestParamsQueryOrder(t *testing.T) {
	p := newParams()
	p.Set("b", "2")
	p.Set("a", "1")
	p.Set("c", "x y")
	p.Set("b", "3")

	if got, want := p.Query(), "b=3&a=1&c=x+y"; got != want {
		t.Errorf("Query() = %q, want %q", got, want)
	}
	if got, want := p.Query("c", "missing", "a"), "c=x+y&a=1&b=3"; got != want {
		t.Errorf("Query(c, missing, a) = %q, want %q", got, want)
	}
	if got := p.Keys(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("Keys() = %v", got)
	}

	m := p.Map()
	m["a"] = "changed"
	if p.Get("a") != "1" {
		t.Error("Map() returned the internal map")
	}
}
