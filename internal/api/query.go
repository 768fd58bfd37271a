package api

import (
	"net/url"
	"strings"
)

// Param is a single query string pair.
type Param struct {
	Key   string
	Value string
}

// Query is an ordered list of query parameters. Order is preserved as
// written, unlike url.Values which sorts keys on Encode.
type Query []Param

// Add appends a pair and returns the query for chaining.
func (q Query) Add(key, value string) Query {
	return append(q, Param{Key: key, Value: value})
}

// Encode renders the query string without a leading "?". Keys appear in
// insertion order.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Endpoint joins a path with the encoded query.
func (q Query) Endpoint(path string) string {
	qs := q.Encode()
	if qs == "" {
		return path
	}
	return path + "?" + qs
}
