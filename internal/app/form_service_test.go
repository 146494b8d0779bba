package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
	"github.com/jsamuelsen11/quick-node-clone/internal/platform/identity"
	"github.com/jsamuelsen11/quick-node-clone/internal/ports"
	"github.com/jsamuelsen11/quick-node-clone/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func ptr[T any](v T) *T { return &v }

var nodeFields = []entity.FieldDefinition{
	{Name: "title", Type: "string"},
	{Name: "status", Type: "boolean"},
	{Name: "field_paragraphs", Type: "entity_reference_revisions", Settings: map[string]any{"target_type": "paragraph"}},
}

// clonedGraph returns an unsaved node owning p1, which owns p2, plus a
// reference to an already stored paragraph.
func clonedGraph() (node, p1, p2 *entity.Entity) {
	p2 = entity.New(entity.KindParagraph, "text", "p2", "en")
	p1 = entity.New(entity.KindParagraph, "gallery", "p1", "en")
	p1.Set("field_items", entity.Item{Ref: &entity.Reference{TargetKind: entity.KindParagraph, Owned: true, Entity: p2}})

	stored := entity.New(entity.KindParagraph, "text", "p-stored", "en")
	stored.SetID("9")

	node = entity.New(entity.KindNode, "article", "node-new", "en", nodeFields...)
	node.SetValue(entity.FieldTitle, "Copy of Hello")
	node.Set("field_paragraphs",
		entity.Item{Ref: &entity.Reference{TargetKind: entity.KindParagraph, Owned: true, Entity: p1}},
		entity.Item{Ref: &entity.Reference{TargetKind: entity.KindParagraph, Owned: true, Entity: stored}},
	)
	de := node.AddTranslation("de")
	de.SetValue(entity.FieldTitle, "Kopie von Hallo")
	return node, p1, p2
}

// saveRecorder assigns ids on Save and records the order of saved UUIDs.
type saveRecorder struct {
	mu    sync.Mutex
	order []string
	fail  entity.Kind
}

func (r *saveRecorder) save(_ context.Context, e *entity.Entity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.Kind() == r.fail {
		return errors.New("disk full")
	}
	r.order = append(r.order, e.UUID())
	e.SetID("id-" + e.UUID())
	e.SetRevisionID("rev-" + e.UUID())
	return nil
}

// --- NewFormService ---

func TestNewFormService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewFormService(mocks.NewMockFormStore(t), mocks.NewMockEntityStore(t), identity.New(), nil)
	if svc.logger == nil {
		t.Fatal("NewFormService(nil logger) should create a no-op logger, got nil")
	}
}

// --- Build ---

func TestFormService_Build(t *testing.T) {
	t.Parallel()

	def := form.Definition{ID: "node.article.default", EntityKind: entity.KindNode, Bundle: "article", Operation: form.OperationDefault}

	t.Run("stores the form", func(t *testing.T) {
		t.Parallel()
		forms := mocks.NewMockFormStore(t)
		svc := NewFormService(forms, mocks.NewMockEntityStore(t), identity.NewSequence("form-"), discardLogger())
		svc.now = func() time.Time { return time.Date(2026, 10, 15, 11, 0, 0, 0, time.FixedZone("CEST", 7200)) }

		node, _, _ := clonedGraph()
		state := form.State{form.StateGroupsKey: nil}
		forms.EXPECT().SaveForm(mock.Anything, mock.AnythingOfType("*form.Handle")).Return(nil).Once()

		h, err := svc.Build(context.Background(), def, node, state)
		require.NoError(t, err)
		assert.Equal(t, "form-1", h.ID)
		assert.Same(t, node, h.Entity)
		assert.Equal(t, state, h.State)
		assert.Equal(t, time.UTC, h.BuiltAt.Location())
		assert.Equal(t, 9, h.BuiltAt.Hour())
	})

	t.Run("rejects a missing entity", func(t *testing.T) {
		t.Parallel()
		svc := NewFormService(mocks.NewMockFormStore(t), mocks.NewMockEntityStore(t), identity.New(), discardLogger())

		_, err := svc.Build(context.Background(), def, nil, nil)
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects a form for another kind", func(t *testing.T) {
		t.Parallel()
		svc := NewFormService(mocks.NewMockFormStore(t), mocks.NewMockEntityStore(t), identity.New(), discardLogger())

		_, err := svc.Build(context.Background(), def, entity.New(entity.KindParagraph, "text", "p", "en"), nil)
		require.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		t.Parallel()
		forms := mocks.NewMockFormStore(t)
		svc := NewFormService(forms, mocks.NewMockEntityStore(t), identity.New(), discardLogger())
		forms.EXPECT().SaveForm(mock.Anything, mock.Anything).Return(domain.ErrUnavailable).Once()

		node, _, _ := clonedGraph()
		_, err := svc.Build(context.Background(), def, node, nil)
		require.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

// --- Get ---

func TestFormService_Get_NotFound(t *testing.T) {
	t.Parallel()
	forms := mocks.NewMockFormStore(t)
	svc := NewFormService(forms, mocks.NewMockEntityStore(t), identity.New(), discardLogger())
	forms.EXPECT().LoadForm(mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// --- Submit ---

func TestFormService_Submit(t *testing.T) {
	t.Parallel()

	t.Run("saves children before parents and discards the form", func(t *testing.T) {
		t.Parallel()
		forms := mocks.NewMockFormStore(t)
		store := mocks.NewMockEntityStore(t)
		svc := NewFormService(forms, store, identity.New(), discardLogger())

		node, p1, p2 := clonedGraph()
		h := &form.Handle{ID: "f1", Entity: node}
		rec := &saveRecorder{}

		forms.EXPECT().LoadForm(mock.Anything, "f1").Return(h, nil).Once()
		store.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(rec.save).Times(3)
		forms.EXPECT().DeleteForm(mock.Anything, "f1").Return(nil).Once()

		saved, err := svc.Submit(context.Background(), "f1", ports.SubmitInput{Title: ptr("  Launch notes "), Status: ptr(true)})
		require.NoError(t, err)

		assert.Same(t, node, saved)
		assert.Equal(t, []string{"p2", "p1", "node-new"}, rec.order)
		assert.Equal(t, "Launch notes", saved.String(entity.FieldTitle))
		status, _ := saved.Value(entity.FieldStatus)
		assert.Equal(t, true, status)
		assert.False(t, p1.IsNew())
		assert.False(t, p2.IsNew())
	})

	t.Run("rolls back saved children when the node fails", func(t *testing.T) {
		t.Parallel()
		forms := mocks.NewMockFormStore(t)
		store := mocks.NewMockEntityStore(t)
		svc := NewFormService(forms, store, identity.New(), discardLogger())

		node, p1, p2 := clonedGraph()
		rec := &saveRecorder{fail: entity.KindNode}

		forms.EXPECT().LoadForm(mock.Anything, "f1").Return(&form.Handle{ID: "f1", Entity: node}, nil).Once()
		store.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(rec.save).Times(3)
		store.EXPECT().Delete(mock.Anything, entity.KindParagraph, "id-p1").Return(nil).Once()
		store.EXPECT().Delete(mock.Anything, entity.KindParagraph, "id-p2").Return(nil).Once()

		_, err := svc.Submit(context.Background(), "f1", ports.SubmitInput{})
		require.Error(t, err)

		assert.True(t, p1.IsNew(), "rolled back paragraphs lose their id")
		assert.True(t, p2.IsNew())
		assert.True(t, node.IsNew())
	})

	t.Run("undoes the node save when the form cannot be discarded", func(t *testing.T) {
		t.Parallel()
		forms := mocks.NewMockFormStore(t)
		store := mocks.NewMockEntityStore(t)
		svc := NewFormService(forms, store, identity.New(), discardLogger())

		node := entity.New(entity.KindNode, "page", "node-page", "en", nodeFields...)
		h := &form.Handle{ID: "f2", Entity: node}
		rec := &saveRecorder{}

		forms.EXPECT().LoadForm(mock.Anything, "f2").Return(h, nil).Once()
		store.EXPECT().Save(mock.Anything, node).RunAndReturn(rec.save).Once()
		forms.EXPECT().DeleteForm(mock.Anything, "f2").Return(domain.ErrUnavailable).Once()
		store.EXPECT().Delete(mock.Anything, entity.KindNode, "id-node-page").Return(nil).Once()

		_, err := svc.Submit(context.Background(), "f2", ports.SubmitInput{})
		require.ErrorIs(t, err, domain.ErrUnavailable)
		assert.True(t, node.IsNew())
	})

	t.Run("rejects a blank title before saving", func(t *testing.T) {
		t.Parallel()
		forms := mocks.NewMockFormStore(t)
		svc := NewFormService(forms, mocks.NewMockEntityStore(t), identity.New(), discardLogger())

		node, _, _ := clonedGraph()
		forms.EXPECT().LoadForm(mock.Anything, "f1").Return(&form.Handle{ID: "f1", Entity: node}, nil).Once()

		_, err := svc.Submit(context.Background(), "f1", ports.SubmitInput{Title: ptr("   ")})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "title")
	})

	t.Run("unknown form", func(t *testing.T) {
		t.Parallel()
		forms := mocks.NewMockFormStore(t)
		svc := NewFormService(forms, mocks.NewMockEntityStore(t), identity.New(), discardLogger())
		forms.EXPECT().LoadForm(mock.Anything, "nope").Return(nil, domain.ErrNotFound).Once()

		_, err := svc.Submit(context.Background(), "nope", ports.SubmitInput{})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUnsavedOwned(t *testing.T) {
	t.Parallel()

	node, p1, p2 := clonedGraph()
	sibling := entity.New(entity.KindParagraph, "text", "p-sibling", "en")
	node.Set("field_paragraphs", append(node.Get("field_paragraphs"),
		entity.Item{Ref: &entity.Reference{TargetKind: entity.KindParagraph, Owned: true, Entity: sibling}},
		entity.Item{Ref: &entity.Reference{TargetKind: entity.KindParagraph, Entity: entity.New(entity.KindParagraph, "text", "p-shared", "en")}},
	)...)

	levels := unsavedOwned(node)
	require.Len(t, levels, 2)
	assert.Equal(t, []*entity.Entity{p2}, levels[0])
	// p1 is also referenced from the de variant but appears once.
	assert.ElementsMatch(t, []string{p1.UUID(), sibling.UUID()}, uuids(levels[1]))
}

func uuids(es []*entity.Entity) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.UUID())
	}
	return out
}
