package domain_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
)

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("cloning node: %w", &domain.ValidationError{
		Fields: map[string]string{"actor": "is required"},
	})

	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("errors.Is(err, ErrValidation) = false, want true")
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, want true")
	}
	if verr.Fields["actor"] != "is required" {
		t.Errorf("Fields[actor] = %q, want %q", verr.Fields["actor"], "is required")
	}
	if !strings.Contains(err.Error(), "actor: is required") {
		t.Errorf("Error() = %q, want it to contain the field message", err.Error())
	}
}

func TestErrConfiguration_IsDistinct(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("no form for node.article: %w", domain.ErrConfiguration)

	if !errors.Is(err, domain.ErrConfiguration) {
		t.Error("errors.Is(err, ErrConfiguration) = false, want true")
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = true, want false")
	}
}

func TestValidationError_SortedMessage(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"path.id":           "is required",
		"header.X-Actor-ID": "is required",
		"body.operation":    "must not be blank",
	}}

	want := "validation error: body.operation: must not be blank; header.X-Actor-ID: is required; path.id: is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
