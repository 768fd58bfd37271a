package api

import "testing"

func TestQueryEncode(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		expected string
	}{
		{
			name:     "empty query",
			query:    Query{},
			expected: "",
		},
		{
			name:     "single pair",
			query:    Query{}.Add("sort", "popular"),
			expected: "sort=popular",
		},
		{
			name:     "keys keep insertion order",
			query:    Query{}.Add("a", "1").Add("b", "2"),
			expected: "a=1&b=2",
		},
		{
			name:     "insertion order is not alphabetical order",
			query:    Query{}.Add("z", "1").Add("a", "2").Add("m", "3"),
			expected: "z=1&a=2&m=3",
		},
		{
			name:     "values are escaped",
			query:    Query{}.Add("search", "pasta & sauce"),
			expected: "search=pasta+%26+sauce",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Encode(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestQueryEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		path     string
		expected string
	}{
		{
			name:     "no params leaves path alone",
			query:    nil,
			path:     "/recipes",
			expected: "/recipes",
		},
		{
			name:     "params are appended in order",
			query:    Query{}.Add("a", "1").Add("b", "2"),
			path:     "/recipes",
			expected: "/recipes?a=1&b=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Endpoint(tt.path); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
