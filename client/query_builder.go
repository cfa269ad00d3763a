package client

import (
	"fmt"
	"net/url"
	"strings"
)

// QueryBuilder writes a percent-encoded query string keeping the order in
// which parameters were added. url.Values.Encode sorts keys, which some
// redirect pages are strict about.
type QueryBuilder struct {
	sb      *strings.Builder
	isEmpty bool
}

func NewQueryBuilder() *QueryBuilder {
	q := &QueryBuilder{}
	q.isEmpty = true
	q.sb = &strings.Builder{}
	return q
}

func (q *QueryBuilder) Add(param string, value any) *QueryBuilder {
	amp := ""
	if q.isEmpty {
		q.isEmpty = false
	} else {
		amp = "&"
	}
	q.sb.WriteString(amp + url.QueryEscape(param) + "=" + url.QueryEscape(fmt.Sprintf("%v", value)))
	return q
}

func (q *QueryBuilder) String() string {
	return q.sb.String()
}
