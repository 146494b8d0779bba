package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jsamuelsen11/quick-node-clone/internal/adapters/http/dto"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/group"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func testNode() *entity.Entity {
	e := entity.New(entity.KindNode, "article", "node-1", "en")
	e.SetID("1")
	e.SetRevisionID("40")
	e.SetValue(entity.FieldTitle, "Hello")
	e.SetValue(entity.FieldStatus, true)
	de := e.AddTranslation("de")
	de.SetValue(entity.FieldTitle, "Hallo")
	de.SetValue(entity.FieldStatus, false)
	return e
}

func TestToNodeResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		node   func() *entity.Entity
		verify func(t *testing.T, got dto.NodeResponse)
	}{
		{
			name: "maps identity and default variant",
			node: testNode,
			verify: func(t *testing.T, got dto.NodeResponse) {
				t.Helper()
				if got.ID != "1" || got.RevisionID != "40" || got.UUID != "node-1" {
					t.Errorf("identity = (%q, %q, %q), want (1, 40, node-1)", got.ID, got.RevisionID, got.UUID)
				}
				if got.Title != "Hello" {
					t.Errorf("Title = %q, want %q", got.Title, "Hello")
				}
				if !got.Published {
					t.Error("Published = false, want true")
				}
				if len(got.Languages) != 2 {
					t.Errorf("Languages = %v, want [en de]", got.Languages)
				}
				if len(got.Entity.Translations) != 2 {
					t.Errorf("len(Entity.Translations) = %d, want 2", len(got.Entity.Translations))
				}
			},
		},
		{
			name: "uses the bound variant",
			node: func() *entity.Entity {
				de, _ := testNode().Translation("de")
				return de
			},
			verify: func(t *testing.T, got dto.NodeResponse) {
				t.Helper()
				if got.Language != "de" || got.Title != "Hallo" || got.Published {
					t.Errorf("variant = (%q, %q, %v), want (de, Hallo, false)", got.Language, got.Title, got.Published)
				}
			},
		},
		{
			name: "unsaved node omits ids",
			node: func() *entity.Entity {
				return entity.New(entity.KindNode, "page", "node-new", "en")
			},
			verify: func(t *testing.T, got dto.NodeResponse) {
				t.Helper()
				data, err := json.Marshal(got)
				if err != nil {
					t.Fatalf("json.Marshal() error = %v", err)
				}
				var raw map[string]any
				if err := json.Unmarshal(data, &raw); err != nil {
					t.Fatalf("json.Unmarshal() error = %v", err)
				}
				if _, ok := raw["id"]; ok {
					t.Errorf("id present in %s", data)
				}
				if got.Published {
					t.Error("Published = true for a node without status")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.verify(t, dto.ToNodeResponse(tt.node()))
		})
	}
}

func TestToFormResponse(t *testing.T) {
	t.Parallel()

	node := testNode()
	h := &form.Handle{
		ID:         "form-1",
		Definition: form.Definition{ID: "node.article.default", EntityKind: entity.KindNode, Bundle: "article", Operation: form.OperationDefault},
		Entity:     node,
		State:      form.State{form.StateGroupsKey: []group.Group{{ID: "3", Label: "Editors", Type: "team"}}},
		BuiltAt:    testTime,
	}

	got := dto.ToFormResponse(h)

	if got.ID != "form-1" {
		t.Errorf("ID = %q, want %q", got.ID, "form-1")
	}
	if got.FormID != "node.article.default" || got.Operation != "default" {
		t.Errorf("definition = (%q, %q), want (node.article.default, default)", got.FormID, got.Operation)
	}
	if got.BuiltAt != "2026-02-12T15:04:05Z" {
		t.Errorf("BuiltAt = %q, want RFC 3339", got.BuiltAt)
	}
	if got.Node.UUID != "node-1" {
		t.Errorf("Node.UUID = %q, want %q", got.Node.UUID, "node-1")
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var decoded struct {
		State map[string][]group.Group `json:"state"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if groups := decoded.State[form.StateGroupsKey]; len(groups) != 1 || groups[0].Label != "Editors" {
		t.Errorf("state groups = %v, want [Editors]", groups)
	}
}

func TestToFormResponse_EmptyState(t *testing.T) {
	t.Parallel()

	got := dto.ToFormResponse(&form.Handle{ID: "form-2", Entity: testNode(), State: form.State{}, BuiltAt: testTime})
	if got.State != nil {
		t.Errorf("State = %v, want nil", got.State)
	}
}
