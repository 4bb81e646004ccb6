package services

import (
	"context"
	"fmt"

	"github.com/onegreenvn/outreach-dashboard/internal/utils"
)

// ValidationError is returned when a batch field holds no usable entries.
// It is the only batch failure surfaced to callers; item failures are data.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ParseBatchInput splits a comma-separated field into its entries
func ParseBatchInput(raw, field string) ([]string, error) {
	items := utils.SplitList(raw)
	if len(items) == 0 {
		return nil, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must contain at least one entry", field),
		}
	}
	return items, nil
}

// RunBatch applies fn to every entry of raw, one after another, and returns
// the results in input order. fn is never called when raw has no entries.
func RunBatch[R any](ctx context.Context, raw, field string, fn func(context.Context, string) R) ([]R, error) {
	items, err := ParseBatchInput(raw, field)
	if err != nil {
		return nil, err
	}

	results := make([]R, 0, len(items))
	for _, item := range items {
		results = append(results, fn(ctx, item))
	}
	return results, nil
}
