package ports

import (
	"context"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/group"
)

// EntityStore is the content storage collaborator. Implemented by outbound
// adapters; called by the application layer.
type EntityStore interface {
	// Load returns the entity with all references resolved.
	// Returns domain.ErrNotFound if it does not exist.
	Load(ctx context.Context, kind entity.Kind, id string) (*entity.Entity, error)

	// LoadRevision returns a specific revision of an entity.
	// Returns domain.ErrNotFound if the revision does not exist.
	LoadRevision(ctx context.Context, kind entity.Kind, revisionID string) (*entity.Entity, error)

	// CreateDuplicate returns a detached, unsaved copy of e with a fresh UUID.
	// Owned sub-references of a node are kept intact, not duplicated.
	CreateDuplicate(ctx context.Context, e *entity.Entity) (*entity.Entity, error)

	// CreateBlank instantiates an unsaved entity of the bundle populated with
	// the bundle's default values.
	// Returns domain.ErrConfiguration if the bundle is unknown.
	CreateBlank(ctx context.Context, kind entity.Kind, bundle string) (*entity.Entity, error)

	// FormDefinition returns the form for kind and operation, preferring a
	// bundle-specific definition.
	// Returns domain.ErrConfiguration if none is configured.
	FormDefinition(ctx context.Context, kind entity.Kind, bundle, operation string) (form.Definition, error)

	// Save persists e, assigning a storage id when new and a new revision id.
	Save(ctx context.Context, e *entity.Entity) error

	// Delete removes the entity and its revisions.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, kind entity.Kind, id string) error
}

// FormStore keeps built forms until they are submitted.
type FormStore interface {
	SaveForm(ctx context.Context, h *form.Handle) error

	// LoadForm returns domain.ErrNotFound for unknown ids.
	LoadForm(ctx context.Context, id string) (*form.Handle, error)

	DeleteForm(ctx context.Context, id string) error
}

// ScratchStore is a per-session key/value scratch area shared with other
// form widgets.
type ScratchStore interface {
	GetScratch(ctx context.Context, session, key string) (any, bool, error)
	SetScratch(ctx context.Context, session, key string, value any) error
	ClearScratch(ctx context.Context, session, key string) error
}

// GroupLookup loads the group associations of an entity.
type GroupLookup interface {
	GroupsForEntity(ctx context.Context, e *entity.Entity) ([]group.Group, error)
}

// SettingsReader reads the module settings namespace. Keys are dotted paths
// relative to the namespace, such as "exclude.node.article".
type SettingsReader interface {
	Get(key string) (any, bool)
}

// IdentityGenerator issues unique identifiers for new entities and layout
// components.
type IdentityGenerator interface {
	NewID() string
}

// Translator localizes strings for a language.
type Translator interface {
	// Translate returns the catalog translation of key for lang, or key
	// itself. Neither key nor the translation is treated as a format string.
	Translate(lang, key string) string

	// Sprintf formats key for lang, using a catalog translation of key when
	// one exists.
	Sprintf(lang, key string, args ...any) string
}

// FormBuilder builds a form around an entity variant.
type FormBuilder interface {
	Build(ctx context.Context, def form.Definition, e *entity.Entity, state form.State) (*form.Handle, error)
}
