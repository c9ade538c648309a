package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rankeval/rankeval/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("total relevant must be positive")

	if err.Error() != "total relevant must be positive" {
		t.Errorf("expected 'total relevant must be positive', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid judgment file", inner)

	if err.Error() != "invalid judgment file: parse failed" {
		t.Errorf("expected 'invalid judgment file: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("ranks not ascending")

	wrapped := fmt.Errorf("score query q1: %w", original)
	doubleWrapped := fmt.Errorf("run job: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "ranks not ascending" {
		t.Errorf("expected 'ranks not ascending', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("engine connection failed")
	wrapped := fmt.Errorf("execute query: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}
