// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	appctx "github.com/jsamuelsen11/quick-node-clone/internal/app/context"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
)

// Compile-time check that FormService implements ports.FormService.
var _ ports.FormService = (*FormService)(nil)

// FormService implements ports.FormService. Built forms are kept in a
// FormStore until they are submitted; submission saves the bound entity and
// its new owned sub-entities as one unit of work.
type FormService struct {
	forms  ports.FormStore
	store  ports.EntityStore
	ids    ports.IdentityGenerator
	now    func() time.Time
	logger *slog.Logger
}

// NewFormService creates a FormService. If logger is nil, a no-op logger is
// used.
func NewFormService(
	forms ports.FormStore, store ports.EntityStore, ids ports.IdentityGenerator, logger *slog.Logger,
) *FormService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FormService{
		forms:  forms,
		store:  store,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

// Build creates and stores a form bound to e.
func (s *FormService) Build(ctx context.Context, def form.Definition, e *entity.Entity, state form.State) (*form.Handle, error) {
	if e == nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"entity": "is required"}}
	}
	if def.EntityKind != "" && def.EntityKind != e.Kind() {
		return nil, fmt.Errorf("%w: form %s is for %s, not %s", domain.ErrConfiguration, def.ID, def.EntityKind, e.Kind())
	}

	h := &form.Handle{
		ID:         s.ids.NewID(),
		Definition: def,
		Entity:     e,
		State:      state,
		BuiltAt:    s.now().UTC(),
	}
	if err := s.forms.SaveForm(ctx, h); err != nil {
		s.logger.ErrorContext(ctx, "failed to store form",
			slog.String("operation", "Build"),
			slog.String("form", def.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "form built",
		slog.String("form_id", h.ID),
		slog.String("form", def.ID),
		slog.String("language", e.Language()),
	)
	return h, nil
}

// Get returns a built form.
func (s *FormService) Get(ctx context.Context, formID string) (*form.Handle, error) {
	h, err := s.forms.LoadForm(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("loading form %s: %w", formID, err)
	}
	return h, nil
}

// Submit applies in to the form's entity and saves it. New owned sub-entities
// are saved first, deepest level first, each level in parallel; the node is
// saved last and the form is discarded. A failing step undoes the saves that
// already happened and the form stays available.
func (s *FormService) Submit(ctx context.Context, formID string, in ports.SubmitInput) (*entity.Entity, error) {
	s.logger.InfoContext(ctx, "submitting form", slog.String("form_id", formID))

	h, err := s.Get(ctx, formID)
	if err != nil {
		return nil, err
	}
	if err := applyInput(h.Entity, in); err != nil {
		return nil, err
	}

	rc := appctx.New(ctx)
	for _, level := range unsavedOwned(h.Entity) {
		actions := make([]domain.Action, 0, len(level))
		for _, sub := range level {
			actions = append(actions, &saveAction{store: s.store, entity: sub})
		}
		if err := rc.AddGroup(actions...); err != nil {
			return nil, err
		}
	}
	if err := rc.Stage("node:"+h.Entity.UUID(), h.Entity, &saveAction{store: s.store, entity: h.Entity}); err != nil {
		return nil, err
	}
	if err := rc.AddAction(&discardFormAction{forms: s.forms, handle: h}); err != nil {
		return nil, err
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to submit form",
			slog.String("operation", "Submit"),
			slog.String("form_id", formID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return h.Entity, nil
}

func applyInput(e *entity.Entity, in ports.SubmitInput) error {
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return &domain.ValidationError{Fields: map[string]string{"title": "must not be empty"}}
		}
		e.SetValue(entity.FieldTitle, title)
	}
	if in.Status != nil {
		e.SetValue(entity.FieldStatus, *in.Status)
	}
	return nil
}

// unsavedOwned returns the new owned sub-entities reachable from e, grouped
// by depth with the deepest level first, so children get storage ids before
// the entities referencing them are saved.
func unsavedOwned(e *entity.Entity) [][]*entity.Entity {
	var levels [][]*entity.Entity
	seen := make(map[string]bool)

	var walk func(parent *entity.Entity, depth int)
	walk = func(parent *entity.Entity, depth int) {
		parent.EachReference(func(_, _ string, ref *entity.Reference) {
			sub := ref.Entity
			if !ref.Owned || sub == nil || !sub.IsNew() || seen[sub.UUID()] {
				return
			}
			seen[sub.UUID()] = true
			if len(levels) <= depth {
				levels = append(levels, nil)
			}
			levels[depth] = append(levels[depth], sub)
			walk(sub, depth+1)
		})
	}
	walk(e, 0)

	slices.Reverse(levels)
	return levels
}

// saveAction saves a new entity. Rollback deletes it again and clears the
// storage identity so a later submit starts over.
type saveAction struct {
	store  ports.EntityStore
	entity *entity.Entity
	isNew  bool
}

func (a *saveAction) Execute(ctx context.Context) error {
	a.isNew = a.entity.IsNew()
	return a.store.Save(ctx, a.entity)
}

func (a *saveAction) Rollback(ctx context.Context) error {
	if !a.isNew {
		return nil
	}
	if err := a.store.Delete(ctx, a.entity.Kind(), a.entity.ID()); err != nil {
		return err
	}
	a.entity.SetID("")
	a.entity.SetRevisionID("")
	return nil
}

func (a *saveAction) Description() string {
	return fmt.Sprintf("save %s %s", a.entity.Kind(), a.entity.Bundle())
}

// discardFormAction removes a submitted form. Rollback stores it again.
type discardFormAction struct {
	forms  ports.FormStore
	handle *form.Handle
}

func (a *discardFormAction) Execute(ctx context.Context) error {
	return a.forms.DeleteForm(ctx, a.handle.ID)
}

func (a *discardFormAction) Rollback(ctx context.Context) error {
	return a.forms.SaveForm(ctx, a.handle)
}

func (a *discardFormAction) Description() string {
	return "discard form " + a.handle.ID
}
