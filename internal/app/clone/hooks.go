package clone

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
)

// Hooks holds the extension points notified while a node is cloned.
// Listeners run synchronously in registration order and may mutate the
// entities they receive. Registration is safe while clones are running.
type Hooks struct {
	mu       sync.RWMutex
	entity   []ports.ClonedEntityHook
	subField []ports.ClonedSubEntityFieldHook
}

// NewHooks returns an empty registry.
func NewHooks() *Hooks {
	return &Hooks{}
}

// OnClonedEntity registers hook for every cloned node variant.
func (h *Hooks) OnClonedEntity(hook ports.ClonedEntityHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entity = append(h.entity, hook)
}

// OnClonedSubEntityField registers hook for every field of every duplicated
// paragraph.
func (h *Hooks) OnClonedSubEntityField(hook ports.ClonedSubEntityFieldHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subField = append(h.subField, hook)
}

func (h *Hooks) clonedEntity(ctx context.Context, cloned, original *entity.Entity) {
	h.mu.RLock()
	hooks := slices.Clone(h.entity)
	h.mu.RUnlock()

	for _, hook := range hooks {
		hook.OnClonedEntity(ctx, cloned, original)
	}
}

func (h *Hooks) clonedSubEntityField(ctx context.Context, sub *entity.Entity, field string, settings map[string]any) {
	h.mu.RLock()
	hooks := slices.Clone(h.subField)
	h.mu.RUnlock()

	for _, hook := range hooks {
		hook.OnClonedSubEntityField(ctx, sub, field, settings)
	}
}
