package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MrJuicyBacon/sample-api/internal/domain"
)

func TestBookNotAvailableError_Message(t *testing.T) {
	err := &domain.BookNotAvailableError{BookID: 5, ShopID: 9}
	want := "book with id=5 is not available at the store with id=9"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestIsRejection(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "buyer invalid", err: domain.ErrBuyerInvalid, want: true},
		{name: "lines required", err: domain.ErrLinesRequired, want: true},
		{name: "lines malformed", err: domain.ErrLinesMalformed, want: true},
		{name: "unknown shops", err: domain.ErrUnknownShops, want: true},
		{name: "quantity invalid", err: domain.ErrQuantityInvalid, want: true},
		{name: "book not available", err: &domain.BookNotAvailableError{BookID: 1, ShopID: 2}, want: true},
		{name: "wrapped rejection", err: fmt.Errorf("validate: %w", domain.ErrUnknownShops), want: true},
		{name: "header rejected", err: domain.ErrOrderRejected, want: false},
		{name: "commit failed", err: domain.ErrOrderCommitFailed, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.IsRejection(tc.err); got != tc.want {
				t.Fatalf("IsRejection(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
