package errors

import (
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  Input("price not calculated"),
			want: "[INPUT_ERROR] price not calculated",
		},
		{
			name: "with cause",
			err:  Parsing("failed to parse rate card", fmt.Errorf("unexpected token")),
			want: "[PARSING_ERROR] failed to parse rate card: unexpected token",
		},
		{
			name: "unknown option",
			err:  UnknownOption("poster", "size", "B9"),
			want: `[INPUT_ERROR] poster: unknown size "B9"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsTypeFollowsWrapping(t *testing.T) {
	inner := RateCardf("banner: band %d out of order", 2)
	wrapped := fmt.Errorf("loading card: %w", inner)

	if !IsType(wrapped, TypeRateCard) {
		t.Error("expected wrapped rate card error to be detected")
	}
	if IsType(wrapped, TypeInput) {
		t.Error("wrapped rate card error must not match INPUT_ERROR")
	}
	if IsType(nil, TypeInput) {
		t.Error("nil error must not match any type")
	}
}

func TestWithContext(t *testing.T) {
	err := UnknownOption("flyer", "paper weight", "300")
	if err.Context["product"] != "flyer" {
		t.Errorf("expected product context, got %v", err.Context)
	}
	if err.Context["option"] != "paper weight" {
		t.Errorf("expected option context, got %v", err.Context)
	}
}

func TestIsOfType(t *testing.T) {
	err := NotFound("rate card", "card.hcl")
	if !err.IsOfType(TypeNotFound) {
		t.Errorf("expected %s, got %s", TypeNotFound, err.Type)
	}
	if err.IsOfType(TypeParsing) {
		t.Error("not found error must not match PARSING_ERROR")
	}
}
