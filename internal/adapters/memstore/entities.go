package memstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-memdb"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
)

// Load returns the entity with its references resolved. Targets referenced
// more than once resolve to the same pointer within one load.
func (s *Store) Load(_ context.Context, kind entity.Kind, id string) (*entity.Entity, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	e, err := s.loadEntity(txn, kind, id)
	if err != nil {
		return nil, err
	}
	s.resolve(txn, e, make(map[string]*entity.Entity))
	return e, nil
}

// LoadRevision returns the entity as it was at revisionID.
func (s *Store) LoadRevision(_ context.Context, kind entity.Kind, revisionID string) (*entity.Entity, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	e, err := s.loadRevision(txn, kind, revisionID)
	if err != nil {
		return nil, err
	}
	s.resolve(txn, e, make(map[string]*entity.Entity))
	return e, nil
}

func (s *Store) loadEntity(txn *memdb.Txn, kind entity.Kind, id string) (*entity.Entity, error) {
	raw, err := txn.First(tableEntity, indexID, string(kind), id)
	if err != nil {
		return nil, fmt.Errorf("loading %s %s: %w", kind, id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return raw.(*entityRow).entity.Copy(), nil
}

func (s *Store) loadRevision(txn *memdb.Txn, kind entity.Kind, revisionID string) (*entity.Entity, error) {
	raw, err := txn.First(tableRevision, indexID, string(kind), revisionID)
	if err != nil {
		return nil, fmt.Errorf("loading %s revision %s: %w", kind, revisionID, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s revision %s: %w", kind, revisionID, domain.ErrNotFound)
	}
	return raw.(*revisionRow).entity.Copy(), nil
}

// resolve attaches the targets of every reference of e. Owned references
// pinned to a revision load that revision. Dangling references stay
// unresolved.
func (s *Store) resolve(txn *memdb.Txn, e *entity.Entity, seen map[string]*entity.Entity) {
	e.EachReference(func(_, field string, ref *entity.Reference) {
		key := string(ref.TargetKind) + ":" + ref.TargetID + "@" + ref.TargetRevisionID
		if target, ok := seen[key]; ok {
			ref.Entity = target
			return
		}

		var (
			target *entity.Entity
			err    error
		)
		if ref.Owned && ref.TargetRevisionID != "" {
			target, err = s.loadRevision(txn, ref.TargetKind, ref.TargetRevisionID)
		} else {
			target, err = s.loadEntity(txn, ref.TargetKind, ref.TargetID)
		}
		if err != nil {
			s.logger.Debug("reference not resolved",
				slog.String("field", field),
				slog.String("target", key),
				slog.Any("error", err),
			)
			return
		}

		seen[key] = target
		ref.Entity = target
		s.resolve(txn, target, seen)
	})
}

// CreateDuplicate returns a detached copy of e with a new UUID. Paragraphs
// take their own owned paragraphs with them; the owned references of other
// kinds keep pointing at the original targets.
func (s *Store) CreateDuplicate(_ context.Context, e *entity.Entity) (*entity.Entity, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nothing to duplicate", domain.ErrValidation)
	}
	return s.duplicate(e, make(map[string]*entity.Entity)), nil
}

func (s *Store) duplicate(e *entity.Entity, done map[string]*entity.Entity) *entity.Entity {
	dup := e.Duplicate(s.ids.NewID())
	if e.Kind() != entity.KindParagraph {
		return dup
	}

	dup.EachReference(func(_, _ string, ref *entity.Reference) {
		if !ref.Owned || ref.Entity == nil || ref.Entity.Kind() != entity.KindParagraph {
			return
		}
		nested, ok := done[ref.Entity.UUID()]
		if !ok {
			nested = s.duplicate(ref.Entity, done)
			done[ref.Entity.UUID()] = nested
		}
		ref.Entity = nested
		ref.TargetID = ""
		ref.TargetRevisionID = ""
	})
	return dup
}

// CreateBlank returns a new, unsaved entity of the bundle with the bundle's
// default values.
func (s *Store) CreateBlank(_ context.Context, kind entity.Kind, bundle string) (*entity.Entity, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableBundle, indexID, string(kind), bundle)
	if err != nil {
		return nil, fmt.Errorf("loading bundle %s.%s: %w", kind, bundle, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: unknown bundle %s.%s", domain.ErrConfiguration, kind, bundle)
	}

	row := raw.(*bundleRow)
	e := entity.New(kind, bundle, s.ids.NewID(), row.language, row.defs...)
	for name, v := range entity.CloneMap(row.defaults) {
		e.SetValue(name, v)
	}
	return e, nil
}

// FormDefinition returns the bundle's form for operation, falling back to
// the kind-wide one.
func (s *Store) FormDefinition(_ context.Context, kind entity.Kind, bundle, operation string) (form.Definition, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	for _, b := range []string{bundle, anyBundle} {
		raw, err := txn.First(tableFormDef, indexID, string(kind), b, operation)
		if err != nil {
			return form.Definition{}, fmt.Errorf("loading form definition: %w", err)
		}
		if raw != nil {
			return raw.(*formDefRow).def, nil
		}
	}
	return form.Definition{}, fmt.Errorf("%w: no %s form for %s.%s", domain.ErrConfiguration, operation, kind, bundle)
}

// Save stores e. New entities get the next serial id of their kind. Every
// save creates a revision. References of e are updated to the current
// identifiers of their resolved targets.
func (s *Store) Save(_ context.Context, e *entity.Entity) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := s.put(txn, e, !e.IsNew()); err != nil {
		return err
	}
	txn.Commit()

	s.logger.Debug("entity saved",
		slog.String("kind", string(e.Kind())),
		slog.String("id", e.ID()),
		slog.String("revision_id", e.RevisionID()),
	)
	return nil
}

// put writes e and a revision inside txn. With mustExist the entity has to
// be stored already.
func (s *Store) put(txn *memdb.Txn, e *entity.Entity, mustExist bool) error {
	kind := string(e.Kind())

	if e.IsNew() {
		id, err := nextSeq(txn, kind)
		if err != nil {
			return fmt.Errorf("allocating %s id: %w", kind, err)
		}
		e.SetID(id)
	} else if mustExist {
		raw, err := txn.First(tableEntity, indexID, kind, e.ID())
		if err != nil {
			return fmt.Errorf("loading %s %s: %w", kind, e.ID(), err)
		}
		if raw == nil {
			return fmt.Errorf("%s %s: %w", kind, e.ID(), domain.ErrNotFound)
		}
	}
	if err := bumpSeq(txn, kind, e.ID()); err != nil {
		return err
	}

	if e.RevisionID() == "" || mustExist {
		rev, err := nextSeq(txn, seqRevision)
		if err != nil {
			return fmt.Errorf("allocating revision id: %w", err)
		}
		e.SetRevisionID(rev)
	} else if err := bumpSeq(txn, seqRevision, e.RevisionID()); err != nil {
		return err
	}

	stored := detach(e)
	if err := txn.Insert(tableEntity, &entityRow{
		kind:   kind,
		id:     e.ID(),
		uuid:   e.UUID(),
		bundle: e.Bundle(),
		entity: stored,
	}); err != nil {
		return fmt.Errorf("storing %s %s: %w", kind, e.ID(), err)
	}
	if err := txn.Insert(tableRevision, &revisionRow{
		kind:       kind,
		revisionID: e.RevisionID(),
		entityID:   e.ID(),
		entity:     stored,
	}); err != nil {
		return fmt.Errorf("storing %s revision %s: %w", kind, e.RevisionID(), err)
	}
	return nil
}

// detach syncs the references of e with their targets and returns a copy
// that holds identifiers only.
func detach(e *entity.Entity) *entity.Entity {
	e.EachReference(func(_, _ string, ref *entity.Reference) {
		if ref.Entity == nil || ref.Entity.IsNew() {
			return
		}
		ref.TargetKind = ref.Entity.Kind()
		ref.TargetID = ref.Entity.ID()
		ref.TargetRevisionID = ref.Entity.RevisionID()
	})

	stored := e.Copy()
	stored.EachReference(func(_, _ string, ref *entity.Reference) {
		ref.Entity = nil
	})
	return stored
}

// Delete removes the entity and all of its revisions.
func (s *Store) Delete(_ context.Context, kind entity.Kind, id string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableEntity, indexID, string(kind), id)
	if err != nil {
		return fmt.Errorf("loading %s %s: %w", kind, id, err)
	}
	if raw == nil {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	if err := txn.Delete(tableEntity, raw); err != nil {
		return fmt.Errorf("deleting %s %s: %w", kind, id, err)
	}
	if _, err := txn.DeleteAll(tableRevision, indexOwner, string(kind), id); err != nil {
		return fmt.Errorf("deleting %s %s revisions: %w", kind, id, err)
	}
	txn.Commit()
	return nil
}
