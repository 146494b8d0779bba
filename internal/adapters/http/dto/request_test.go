package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/http/dto"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
)

func ptr[T any](v T) *T { return &v }

func TestCloneNodeRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        dto.CloneNodeRequest
		wantFields []string
	}{
		{name: "empty body", req: dto.CloneNodeRequest{}},
		{name: "operation and state", req: dto.CloneNodeRequest{Operation: "edit", FormState: map[string]any{"step": 2}}},
		{name: "blank operation", req: dto.CloneNodeRequest{Operation: "  "}, wantFields: []string{"operation"}},
		{
			name:       "reserved state key",
			req:        dto.CloneNodeRequest{FormState: map[string]any{form.StateGroupsKey: []any{}}},
			wantFields: []string{"form_state." + form.StateGroupsKey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("Fields = %v, want keys %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("Fields missing %q: %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestCloneNodeRequest_ToCloneRequest(t *testing.T) {
	t.Parallel()

	t.Run("carries operation, actor and state", func(t *testing.T) {
		t.Parallel()
		body := dto.CloneNodeRequest{Operation: " edit ", FormState: map[string]any{"step": 2}}

		got := body.ToCloneRequest("7")
		if got.Operation != "edit" {
			t.Errorf("Operation = %q, want %q", got.Operation, "edit")
		}
		if got.ActorID != "7" {
			t.Errorf("ActorID = %q, want %q", got.ActorID, "7")
		}
		if got.FormState["step"] != 2 {
			t.Errorf("FormState = %v, want step=2", got.FormState)
		}
		if got.Cleanup != nil {
			t.Error("Cleanup should be left to the caller")
		}
	})

	t.Run("empty state stays nil", func(t *testing.T) {
		t.Parallel()
		got := (&dto.CloneNodeRequest{FormState: map[string]any{}}).ToCloneRequest("7")
		if got.FormState != nil {
			t.Errorf("FormState = %v, want nil", got.FormState)
		}
	})
}

func TestSubmitFormRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.SubmitFormRequest
		wantErr bool
	}{
		{name: "nothing changed", req: dto.SubmitFormRequest{}},
		{name: "title and status", req: dto.SubmitFormRequest{Title: ptr("Launch"), Status: ptr(true)}},
		{name: "blank title", req: dto.SubmitFormRequest{Title: ptr(" ")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Validate() = %v, want ErrValidation", err)
			}
		})
	}
}

func TestSubmitFormRequest_ToSubmitInput(t *testing.T) {
	t.Parallel()

	title := ptr("Launch")
	got := (&dto.SubmitFormRequest{Title: title}).ToSubmitInput()
	if got.Title != title {
		t.Errorf("Title = %v, want %v", got.Title, title)
	}
	if got.Status != nil {
		t.Errorf("Status = %v, want nil", *got.Status)
	}
}
