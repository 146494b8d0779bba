package ports

import (
	"context"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
)

// CloneRequest carries the caller's side of a clone operation.
type CloneRequest struct {
	// Operation selects the form; empty means form.OperationDefault.
	Operation string

	// ActorID becomes the owner of the clone.
	ActorID string

	// FormState is merged into the state the form is built with.
	FormState form.State

	// Cleanup runs once after the form was built.
	Cleanup func(ctx context.Context)
}

// CloneService defines the service port for cloning nodes.
// Implemented by the application layer; called by inbound adapters.
type CloneService interface {
	// Clone deep-clones original and returns the form bound to the clone.
	// Returns domain.ErrValidation for an invalid request and
	// domain.ErrConfiguration when the bundle has no form.
	Clone(ctx context.Context, original *entity.Entity, req CloneRequest) (*form.Handle, error)

	// CloneByID loads the node and clones it.
	// Returns domain.ErrNotFound if the node does not exist.
	CloneByID(ctx context.Context, id string, req CloneRequest) (*form.Handle, error)

	// GetNode returns a stored node.
	// Returns domain.ErrNotFound if the node does not exist.
	GetNode(ctx context.Context, id string) (*entity.Entity, error)
}

// SubmitInput holds the values a user changed on a clone form.
type SubmitInput struct {
	Title  *string
	Status *bool
}

// FormService defines the service port for built forms.
type FormService interface {
	FormBuilder

	// Get returns a built, unsubmitted form.
	// Returns domain.ErrNotFound for unknown ids.
	Get(ctx context.Context, formID string) (*form.Handle, error)

	// Submit persists the form's entity and its unsaved owned sub-entities,
	// then discards the form.
	Submit(ctx context.Context, formID string, in SubmitInput) (*entity.Entity, error)
}
