package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrArticleNotFound, "article not found"},
		{ErrInvalidArticle, "invalid article"},
		{ErrInvalidDateRange, "end date must not be before start date"},
		{ErrInvalidUsageQuery, "invalid usage query"},
	}
	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("unexpected message: got %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrArticleNotFound, ErrInvalidArticle, ErrInvalidDateRange, ErrInvalidUsageQuery}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%q must not match %q", a, b)
			}
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get article: %w", ErrArticleNotFound)
	if !errors.Is(wrapped, ErrArticleNotFound) {
		t.Fatal("errors.Is must match wrapped ErrArticleNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidArticle, errors.New("name is required"))
	if !errors.Is(wrapped2, ErrInvalidArticle) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidArticle")
	}
}
