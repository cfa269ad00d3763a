package freekassa

import (
	"freekassa/client"

	"github.com/shopspring/decimal"
)

// Params is a flat request parameter set that remembers insertion order.
type Params struct {
	keys   []string
	values map[string]string
}

func newParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Set stores value under key. A key keeps the position of its first Set.
func (p *Params) Set(key string, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

func (p *Params) Get(key string) string {
	return p.values[key]
}

func (p *Params) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Map returns a copy of the parameters for the transport.
func (p *Params) Map() map[string]string {
	m := make(map[string]string, len(p.values))
	for k, v := range p.values {
		m[k] = v
	}
	return m
}

// Query encodes the parameters. Keys named in order come first in that
// order, the rest follow in insertion order.
func (p *Params) Query(order ...string) string {
	qb := client.NewQueryBuilder()
	seen := make(map[string]bool, len(p.keys))
	for _, key := range order {
		if value, ok := p.values[key]; ok && !seen[key] {
			qb.Add(key, value)
			seen[key] = true
		}
	}
	for _, key := range p.keys {
		if !seen[key] {
			qb.Add(key, p.values[key])
		}
	}
	return qb.String()
}

type field struct {
	key   string
	value string
}

func param(key string, value string) field {
	return field{key: key, value: value}
}

// amountParam formats an amount once. The same string is signed and sent,
// so 10, 10.0 and 10.00 all travel as "10".
func amountParam(key string, amount decimal.Decimal) field {
	return field{key: key, value: amount.String()}
}

// buildParams assembles the parameters for op: caller fields, the account
// identity, the action, and last the signature computed from the values
// already in the set.
func (c *Client) buildParams(op Operation, fields ...field) (*Params, route, error) {
	r, ok := routes[op]
	if !ok {
		return nil, route{}, &UnknownOperationError{Operation: op}
	}
	if err := c.creds.require(op, r.signature.requires()...); err != nil {
		return nil, route{}, err
	}

	params := newParams()
	for _, f := range fields {
		params.Set(f.key, f.value)
	}
	params.Set(r.surface.identity(), r.surface.id(c.creds))
	if r.action != "" {
		params.Set("action", r.action)
	}
	params.Set(r.signature.field(), r.signature.sign(c.creds, params))
	return params, r, nil
}
