package freekassa

import (
	"time"

	"github.com/shopspring/decimal"
)

// Logical operations
type Operation string

const (
	OP_GET_BALANCE           Operation = "get_balance"
	OP_CHECK_ORDER_STATUS    Operation = "check_order_status"
	OP_GET_ORDERS            Operation = "get_orders"
	OP_PAYMENT               Operation = "payment"
	OP_CREATE_BILL           Operation = "create_bill"
	OP_WALLET_BALANCE        Operation = "wallet_get_balance"
	OP_CASHOUT               Operation = "cashout"
	OP_GET_PAYMENT_STATUS    Operation = "get_payment_status"
	OP_TRANSFER              Operation = "transfer"
	OP_ONLINE_PAYMENT        Operation = "online_payment"
	OP_PROVIDERS             Operation = "providers"
	OP_CHECK_ONLINE_PAYMENT  Operation = "check_online_payment"
	OP_CREATE_BTC_ADDRESS    Operation = "create_btc_address"
	OP_CREATE_LTC_ADDRESS    Operation = "create_ltc_address"
	OP_CREATE_ETH_ADDRESS    Operation = "create_eth_address"
	OP_GET_BTC_ADDRESS       Operation = "get_btc_address"
	OP_GET_LTC_ADDRESS       Operation = "get_ltc_address"
	OP_GET_ETH_ADDRESS       Operation = "get_eth_address"
	OP_GET_BTC_TRANSACTION   Operation = "get_btc_transaction"
	OP_GET_LTC_TRANSACTION   Operation = "get_ltc_transaction"
	OP_GET_ETH_TRANSACTION   Operation = "get_eth_transaction"
	OP_GENERATE_PAYMENT_LINK Operation = "generate_payment_link"

	// OP_NOTIFICATION is not sent anywhere; it names incoming payment
	// notifications in errors.
	OP_NOTIFICATION Operation = "notification"
)

func (o Operation) String() string {
	return string(o)
}

// Crypto currencies supported by the wallet
type Crypto string

const (
	CRYPTO_BTC Crypto = "btc"
	CRYPTO_LTC Crypto = "ltc"
	CRYPTO_ETH Crypto = "eth"
)

type cryptoOperations struct {
	createAddress Operation
	getAddress    Operation
	transaction   Operation
}

var cryptos = map[Crypto]cryptoOperations{
	CRYPTO_BTC: {OP_CREATE_BTC_ADDRESS, OP_GET_BTC_ADDRESS, OP_GET_BTC_TRANSACTION},
	CRYPTO_LTC: {OP_CREATE_LTC_ADDRESS, OP_GET_LTC_ADDRESS, OP_GET_LTC_TRANSACTION},
	CRYPTO_ETH: {OP_CREATE_ETH_ADDRESS, OP_GET_ETH_ADDRESS, OP_GET_ETH_TRANSACTION},
}

const (
	DefaultFormCurrency = "rub"
	DefaultFormLanguage = "ru"
	DefaultExportLimit  = 100

	// ExportDateLayout is the date format get_orders expects.
	ExportDateLayout = "2006-01-02 15:04:05"
)

// Check order status [check_order_status]
type OrderStatusRequest struct {
	OrderId string
	IntId   string
}

// Export orders [get_orders]
type ExportOrdersRequest struct {
	Status   string
	DateFrom time.Time
	DateTo   time.Time
	Limit    int
	Offset   int
}

// Withdraw merchant balance [payment]
type WithdrawRequest struct {
	Amount   decimal.Decimal
	Currency string
}

// Create invoice [create_bill]
type CreateBillRequest struct {
	Email       string
	Amount      decimal.Decimal
	Description string
}

// Wallet cashout [cashout]
type CashoutRequest struct {
	Purse          string
	Amount         decimal.Decimal
	Currency       string
	Description    string
	EnableExchange bool
}

// Wallet to wallet transfer [transfer]
type TransferRequest struct {
	Purse  string
	Amount decimal.Decimal
}

// Pay for an online service [online_payment]
type OnlinePaymentRequest struct {
	ServiceId string
	Account   string
	Amount    decimal.Decimal
}

// Redirect form link
type PaymentLinkRequest struct {
	OrderId     string
	Amount      decimal.Decimal
	Currency    string
	Description string
	Language    string
}
