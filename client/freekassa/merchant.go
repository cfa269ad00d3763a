package freekassa

import (
	"context"
	"strconv"
	"time"

	"freekassa/client"
)

func (c *Client) Balance(ctx context.Context) (*client.Response, error) {
	return c.call(ctx, OP_GET_BALANCE)
}

func (c *Client) OrderStatus(ctx context.Context, req *OrderStatusRequest) (*client.Response, error) {
	return c.call(ctx, OP_CHECK_ORDER_STATUS,
		param("order_id", req.OrderId),
		param("intid", req.IntId),
	)
}

// ExportOrders lists orders. A zero Limit asks for DefaultExportLimit rows.
func (c *Client) ExportOrders(ctx context.Context, req *ExportOrdersRequest) (*client.Response, error) {
	limit := req.Limit
	if limit == 0 {
		limit = DefaultExportLimit
	}
	return c.call(ctx, OP_GET_ORDERS,
		param("date_from", formatDate(req.DateFrom)),
		param("date_to", formatDate(req.DateTo)),
		param("status", req.Status),
		param("limit", strconv.Itoa(limit)),
		param("offset", strconv.Itoa(req.Offset)),
	)
}

// Withdraw pays the merchant balance out [payment].
func (c *Client) Withdraw(ctx context.Context, req *WithdrawRequest) (*client.Response, error) {
	return c.call(ctx, OP_PAYMENT,
		param("currency", req.Currency),
		amountParam("amount", req.Amount),
	)
}

func (c *Client) CreateBill(ctx context.Context, req *CreateBillRequest) (*client.Response, error) {
	return c.call(ctx, OP_CREATE_BILL,
		param("email", req.Email),
		amountParam("amount", req.Amount),
		param("desc", req.Description),
	)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ExportDateLayout)
}
