package ports

import (
	"context"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
)

// ClonedEntityHook is notified once per language variant of a cloned node,
// after its sub-entities were duplicated. It may mutate cloned.
type ClonedEntityHook interface {
	OnClonedEntity(ctx context.Context, cloned, original *entity.Entity)
}

// ClonedSubEntityFieldHook is notified for every field of a duplicated
// paragraph, after the field was cleared if the policy excludes it. It may
// mutate sub.
type ClonedSubEntityFieldHook interface {
	OnClonedSubEntityField(ctx context.Context, sub *entity.Entity, field string, settings map[string]any)
}

// ClonedEntityFunc adapts a function to ClonedEntityHook.
type ClonedEntityFunc func(ctx context.Context, cloned, original *entity.Entity)

func (f ClonedEntityFunc) OnClonedEntity(ctx context.Context, cloned, original *entity.Entity) {
	f(ctx, cloned, original)
}

// ClonedSubEntityFieldFunc adapts a function to ClonedSubEntityFieldHook.
type ClonedSubEntityFieldFunc func(ctx context.Context, sub *entity.Entity, field string, settings map[string]any)

func (f ClonedSubEntityFieldFunc) OnClonedSubEntityField(
	ctx context.Context, sub *entity.Entity, field string, settings map[string]any,
) {
	f(ctx, sub, field, settings)
}
