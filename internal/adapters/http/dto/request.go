package dto

import (
	"strings"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
)

const (
	msgMustNotEmpty = "must not be empty"
	msgReserved     = "is reserved"
)

// CloneNodeRequest represents the JSON body for cloning a node. Both fields
// are optional; an empty body clones with the default form.
type CloneNodeRequest struct {
	Operation string         `json:"operation,omitempty"`
	FormState map[string]any `json:"form_state,omitempty"`
}

// Validate checks that the operation, if given, is not blank and that the
// form state does not set keys the clone owns.
// Returns a *domain.ValidationError if any checks fail.
func (r *CloneNodeRequest) Validate() error {
	fields := make(map[string]string)

	if r.Operation != "" && strings.TrimSpace(r.Operation) == "" {
		fields["operation"] = msgMustNotEmpty
	}
	if _, ok := r.FormState[form.StateGroupsKey]; ok {
		fields["form_state."+form.StateGroupsKey] = msgReserved
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToCloneRequest converts the body into the service request for actorID.
func (r *CloneNodeRequest) ToCloneRequest(actorID string) ports.CloneRequest {
	req := ports.CloneRequest{
		Operation: strings.TrimSpace(r.Operation),
		ActorID:   actorID,
	}
	if len(r.FormState) > 0 {
		req.FormState = form.State(r.FormState)
	}
	return req
}

// SubmitFormRequest represents the JSON body for submitting a clone form.
// All fields are optional; nil means "keep the cloned value.".
type SubmitFormRequest struct {
	Title  *string `json:"title,omitempty"`
	Status *bool   `json:"status,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *SubmitFormRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToSubmitInput converts the body into the service input.
func (r *SubmitFormRequest) ToSubmitInput() ports.SubmitInput {
	return ports.SubmitInput{Title: r.Title, Status: r.Status}
}
