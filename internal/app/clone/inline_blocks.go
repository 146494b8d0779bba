package clone

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/layout"
)

// rewriteLayout gives every inline block component of the variant's layout a
// new UUID and a freshly duplicated block, stored inline. Components backed
// by external plugins are left alone. Sections keep their positions and
// components keep their relative order. It returns the number of components
// rewritten.
func (s *Service) rewriteLayout(ctx context.Context, variant *entity.Entity) int {
	if !variant.Has(layout.FieldName) || variant.IsEmpty(layout.FieldName) {
		return 0
	}

	rewritten := 0
	for delta, item := range variant.Get(layout.FieldName) {
		section, ok := item.Value.(*layout.Section)
		if !ok {
			continue
		}

		section, _ = section.CloneValue().(*layout.Section)
		for _, component := range section.Components() {
			if !component.IsInlineBlock() {
				continue
			}
			if s.rewriteComponent(ctx, section, component) {
				rewritten++
			}
		}

		layout.InsertSection(variant, delta, section)
		layout.RemoveSection(variant, delta+1)
	}

	return rewritten
}

// rewriteComponent replaces component in section with a copy carrying a new
// UUID and, when the block resolves, a duplicated block payload.
func (s *Service) rewriteComponent(ctx context.Context, section *layout.Section, component *layout.Component) bool {
	config := entity.CloneMap(component.Configuration)
	if config == nil {
		config = make(map[string]any)
	}

	block, ok := s.resolveBlock(ctx, config)
	if ok {
		ok = s.inlineDuplicate(ctx, config, block)
	}
	if !ok && s.clearUnresolved {
		config[layout.ConfigBlockRevisionID] = nil
		config[layout.ConfigBlockSerialized] = nil
	}

	replacement := &layout.Component{
		UUID:          s.ids.NewID(),
		Region:        component.Region,
		Weight:        component.Weight,
		Configuration: config,
		Additional:    entity.CloneMap(component.Additional),
	}
	if err := section.InsertAfterComponent(component.UUID, replacement); err != nil {
		s.logger.WarnContext(ctx, "failed to place rewritten component",
			slog.String("operation", "rewriteLayout"),
			slog.String("component_uuid", component.UUID),
			slog.Any("error", err),
		)
		return false
	}
	section.RemoveComponent(component.UUID)
	return true
}

// resolveBlock returns the block content of an inline component: the inline
// serialized payload when one is present, else the referenced revision.
// Misses are logged and reported as (nil, false).
func (s *Service) resolveBlock(ctx context.Context, config map[string]any) (*entity.Entity, bool) {
	if raw, present := config[layout.ConfigBlockSerialized]; present && !isBlank(raw) {
		block, ok := layout.DecodeBlock(raw)
		if !ok {
			s.logger.DebugContext(ctx, "inline block payload could not be decoded")
		}
		return block, ok
	}

	revisionID, ok := revisionKey(config[layout.ConfigBlockRevisionID])
	if !ok {
		return nil, false
	}

	block, err := s.store.LoadRevision(ctx, entity.KindBlockContent, revisionID)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, domain.ErrNotFound) {
			level = slog.LevelDebug
		}
		s.logger.Log(ctx, level, "inline block revision not resolved",
			slog.String("revision_id", revisionID),
			slog.Any("error", err),
		)
		return nil, false
	}
	return block, true
}

// inlineDuplicate duplicates block and stores the duplicate as the inline
// payload of config, dropping the revision pointer.
func (s *Service) inlineDuplicate(ctx context.Context, config map[string]any, block *entity.Entity) bool {
	dup, err := s.store.CreateDuplicate(ctx, block)
	if err == nil {
		var payload string
		if payload, err = layout.EncodeBlock(dup); err == nil {
			config[layout.ConfigBlockRevisionID] = nil
			config[layout.ConfigBlockSerialized] = payload
			return true
		}
	}

	s.logger.WarnContext(ctx, "failed to duplicate inline block",
		slog.String("operation", "rewriteLayout"),
		slog.String("block_uuid", block.UUID()),
		slog.Any("error", err),
	)
	return false
}

// revisionKey normalizes a block_revision_id value. Configurations decoded
// from JSON or YAML carry numbers; zero and empty values mean "none".
func revisionKey(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, id != "" && id != "0"
	case int:
		return strconv.Itoa(id), id > 0
	case int64:
		return strconv.FormatInt(id, 10), id > 0
	case uint64:
		return strconv.FormatUint(id, 10), id > 0
	case float64:
		if id <= 0 || id != math.Trunc(id) {
			return "", false
		}
		return strconv.FormatInt(int64(id), 10), true
	default:
		return "", false
	}
}

func isBlank(v any) bool {
	switch b := v.(type) {
	case nil:
		return true
	case string:
		return b == ""
	case []byte:
		return len(b) == 0
	default:
		return false
	}
}
