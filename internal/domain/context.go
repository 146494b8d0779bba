package domain

import "context"

// Action is one persistence step with a compensating rollback. Saving a
// cloned node is split into actions so a failed save can undo the
// sub-entities that were already written.
type Action interface {
	// Execute performs the action.
	Execute(ctx context.Context) error

	// Rollback reverses a successful Execute. It is never called when
	// Execute failed.
	Rollback(ctx context.Context) error

	// Description is used in logs (e.g. "save paragraph text").
	Description() string
}

// WriteStager is the domain's view of the request-scoped context: it queues
// writes for a later commit or runs them immediately.
type WriteStager interface {
	// Stage caches entity under key and queues action for Commit. Later
	// reads of key observe the staged entity.
	Stage(key string, entity any, action Action) error

	// Execute runs action now, outside the commit queue and its rollback.
	Execute(action Action) error
}
