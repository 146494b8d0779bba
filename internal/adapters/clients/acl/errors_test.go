package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
)

func response(status int, contentType, body string) *http.Response {
	resp := &http.Response{StatusCode: status, Header: http.Header{}}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	if body != "" {
		resp.Body = io.NopCloser(strings.NewReader(body))
	}
	return resp
}

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "404 maps to ErrNotFound", statusCode: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "400 maps to ErrValidation", statusCode: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{name: "422 maps to ErrValidation", statusCode: http.StatusUnprocessableEntity, wantErr: domain.ErrValidation},
		{name: "409 maps to ErrConflict", statusCode: http.StatusConflict, wantErr: domain.ErrConflict},
		{name: "401 maps to ErrForbidden", statusCode: http.StatusUnauthorized, wantErr: domain.ErrForbidden},
		{name: "403 maps to ErrForbidden", statusCode: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{name: "429 maps to ErrUnavailable", statusCode: http.StatusTooManyRequests, wantErr: domain.ErrUnavailable},
		{name: "500 maps to ErrUnavailable", statusCode: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{name: "503 maps to ErrUnavailable", statusCode: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := TranslateHTTPError(response(tt.statusCode, "", ""))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("TranslateHTTPError(%d) = %v, want %v", tt.statusCode, err, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_ProblemDetail(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(response(http.StatusNotFound,
		"application/problem+json", `{"detail":"entity node/7 has no group associations"}`))

	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "node/7") {
		t.Errorf("error %q does not carry the problem detail", err)
	}
}

func TestTranslateHTTPError_IgnoresOtherContentTypes(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(response(http.StatusConflict, "text/html", `{"detail":"ignored"}`))
	if strings.Contains(err.Error(), "ignored") {
		t.Errorf("error %q used a non problem+json body", err)
	}
	if !strings.Contains(err.Error(), http.StatusText(http.StatusConflict)) {
		t.Errorf("error %q should fall back to the status text", err)
	}
}

func TestTranslateHTTPError_ValidationFields(t *testing.T) {
	t.Parallel()

	body := `{"detail":"invalid query","errors":[` +
		`{"location":"query.entity_type","message":"must be one of node, paragraph"},` +
		`{"location":"entity_id","message":"is required"}]}`
	err := TranslateHTTPError(response(http.StatusUnprocessableEntity, "application/problem+json", body))

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T, want *domain.ValidationError", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("validation error should match ErrValidation")
	}
	want := map[string]string{
		"entity_type": "must be one of node, paragraph",
		"entity_id":   "is required",
	}
	for field, msg := range want {
		if verr.Fields[field] != msg {
			t.Errorf("Fields[%q] = %q, want %q", field, verr.Fields[field], msg)
		}
	}
}

func TestTranslateHTTPError_MalformedBody(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(response(http.StatusBadRequest, "application/problem+json", "{not json"))

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		t.Fatalf("malformed body should not produce field errors, got %v", verr.Fields)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(response(http.StatusTeapot, "", ""))
	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict, domain.ErrForbidden, domain.ErrUnavailable,
	} {
		if errors.Is(err, sentinel) {
			t.Errorf("418 should not map to %v", sentinel)
		}
	}
	if !strings.Contains(err.Error(), "418") {
		t.Errorf("error %q should mention the status", err)
	}
}
