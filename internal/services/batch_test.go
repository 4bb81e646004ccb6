package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunBatch_PreservesOrderAndLength(t *testing.T) {
	inputs := []string{
		"a",
		"a, b, c",
		" z ,, y , x ,",
		"http://a.com,http://b.com,http://c.com,http://d.com",
	}

	for _, raw := range inputs {
		items, err := ParseBatchInput(raw, "urls")
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}

		results, err := RunBatch(context.Background(), raw, "urls", func(_ context.Context, item string) string {
			return strings.ToUpper(item)
		})
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if len(results) != len(items) {
			t.Fatalf("expected %d results, got %d", len(items), len(results))
		}
		for i := range items {
			if results[i] != strings.ToUpper(items[i]) {
				t.Errorf("result[%d] = %q does not correspond to input %q", i, results[i], items[i])
			}
		}
	}
}

func TestRunBatch_ContinuesAfterFailedItem(t *testing.T) {
	var seen []string
	results, err := RunBatch(context.Background(), "ok1, bad, ok2", "phone_numbers", func(_ context.Context, item string) bool {
		seen = append(seen, item)
		return item != "bad"
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 3 {
		t.Errorf("expected every item to be processed, saw %v", seen)
	}
	if results[0] != true || results[1] != false || results[2] != true {
		t.Errorf("unexpected results %v", results)
	}
}

func TestRunBatch_EmptyInputIsValidationError(t *testing.T) {
	for _, raw := range []string{"", "   ", ",", " , , "} {
		calls := 0
		results, err := RunBatch(context.Background(), raw, "phone_numbers", func(_ context.Context, item string) string {
			calls++
			return item
		})

		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError for %q, got %v", raw, err)
		}
		if validationErr.Field != "phone_numbers" {
			t.Errorf("expected field phone_numbers, got %q", validationErr.Field)
		}
		if results != nil {
			t.Errorf("expected no results, got %v", results)
		}
		if calls != 0 {
			t.Errorf("item function must not run for %q, ran %d times", raw, calls)
		}
	}
}
