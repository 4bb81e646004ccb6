package utils

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "empty", raw: "", expected: []string{}},
		{name: "only separators and spaces", raw: " , ,, ", expected: []string{}},
		{name: "single", raw: "+15551234567", expected: []string{"+15551234567"}},
		{name: "trims entries", raw: "+15551234567, +15557654321", expected: []string{"+15551234567", "+15557654321"}},
		{name: "drops empty entries", raw: "a,,b, ,c,", expected: []string{"a", "b", "c"}},
		{name: "keeps duplicates and order", raw: "b, a, b", expected: []string{"b", "a", "b"}},
		{name: "tabs and newlines", raw: "\thttp://a.com\n,\nhttp://b.com ", expected: []string{"http://a.com", "http://b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitList(tt.raw)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("SplitList(%q) = %q, want %q", tt.raw, result, tt.expected)
			}
		})
	}
}

func TestSplitList_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"a",
		" a , b ,, c ",
		",,,x,,,",
		"http://a.com,http://b.com , http://c.com",
		"  +1 555 123 4567 , +1 555 765 4321",
	}

	for _, raw := range inputs {
		once := SplitList(raw)
		twice := SplitList(strings.Join(once, ","))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("SplitList not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("expected untouched string, got %q", got)
	}
	if got := Truncate("hello world", 8); got != "hello..." {
		t.Errorf("expected truncated string, got %q", got)
	}
	if got := Truncate("hello", 2); got != "he" {
		t.Errorf("expected hard cut, got %q", got)
	}
}
