// Package form describes entity forms built around cloned entities.
package form

import (
	"time"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
)

// Operation names.
const (
	OperationDefault = "default"
	OperationEdit    = "edit"
)

// StateGroupsKey is the form state key holding the groups of the cloned
// entity's source.
const StateGroupsKey = "quick_node_clone_groups_storage"

// Definition is a form configured for an entity kind, optionally scoped to
// a bundle, and an operation.
type Definition struct {
	ID         string      `json:"id" yaml:"id"`
	EntityKind entity.Kind `json:"entity_kind" yaml:"kind"`
	Bundle     string      `json:"bundle,omitempty" yaml:"bundle"`
	Operation  string      `json:"operation" yaml:"operation"`
}

// State is the extra state a form is built with.
type State map[string]any

// Handle is a built form bound to an entity variant.
type Handle struct {
	ID         string
	Definition Definition
	Entity     *entity.Entity
	State      State
	BuiltAt    time.Time
}
