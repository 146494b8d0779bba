package clone

import (
	"context"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
)

// duplicateOwnedSubEntities replaces every owned paragraph referenced by the
// variant with a fresh duplicate, then applies the paragraph exclusion policy
// and field hooks to each duplicate. Only the first level below the node is
// visited; deeper paragraphs are duplicated by the store but receive no
// policy or hooks. It returns the number of paragraphs duplicated.
//
// A paragraph that fails to duplicate keeps its original reference and the
// clone continues.
func (s *Service) duplicateOwnedSubEntities(ctx context.Context, variant *entity.Entity) int {
	duplicated := 0

	for _, def := range variant.Definitions() {
		if def.TargetType() != string(entity.KindParagraph) || variant.IsEmpty(def.Name) {
			continue
		}

		for i, item := range variant.Get(def.Name) {
			ref := item.Ref
			if ref == nil || !ref.Owned {
				continue
			}
			if ref.Entity == nil {
				s.logger.DebugContext(ctx, "skipping unresolved paragraph reference",
					slog.String("field", def.Name),
					slog.String("target_id", ref.TargetID),
				)
				continue
			}

			dup, err := s.store.CreateDuplicate(ctx, ref.Entity)
			if err != nil {
				s.logger.WarnContext(ctx, "failed to duplicate paragraph",
					slog.String("operation", "duplicateOwnedSubEntities"),
					slog.String("field", def.Name),
					slog.String("paragraph_uuid", ref.Entity.UUID()),
					slog.Any("error", err),
				)
				continue
			}

			s.prepareParagraph(ctx, dup)
			variant.SetReference(def.Name, i, &entity.Reference{
				TargetKind: dup.Kind(),
				Owned:      true,
				Entity:     dup,
			})
			duplicated++
		}
	}

	return duplicated
}

// prepareParagraph clears the excluded fields of a duplicated paragraph and
// notifies the field hooks, one field definition at a time.
func (s *Service) prepareParagraph(ctx context.Context, dup *entity.Entity) {
	excluded, _ := s.policy.ExcludedFields(ctx, ScopeParagraph, dup.Bundle())

	for _, def := range dup.Definitions() {
		if slices.Contains(excluded, def.Name) {
			dup.Clear(def.Name)
		}
		s.hooks.clonedSubEntityField(ctx, dup, def.Name, def.Settings)
	}
}
