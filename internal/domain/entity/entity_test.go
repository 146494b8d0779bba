package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func articleDefs() []FieldDefinition {
	return []FieldDefinition{
		{Name: FieldTitle, Type: "string"},
		{Name: FieldStatus, Type: "boolean"},
		{Name: "field_paragraphs", Type: "entity_reference_revisions", Settings: map[string]any{"target_type": "paragraph"}},
		{Name: "field_tags", Type: "entity_reference", Settings: map[string]any{"target_type": "taxonomy_term"}},
	}
}

func newArticle() *Entity {
	e := New(KindNode, "article", "uuid-1", "en", articleDefs()...)
	e.SetID("1")
	e.SetRevisionID("10")
	e.SetValue(FieldTitle, "Hello")
	e.SetValue(FieldStatus, true)
	e.SetValue("field_meta", map[string]any{"keywords": []any{"a", "b"}})
	return e
}

func TestFieldDefinition_TargetType(t *testing.T) {
	t.Parallel()

	defs := articleDefs()
	if got := defs[2].TargetType(); got != "paragraph" {
		t.Errorf("TargetType() = %q, want %q", got, "paragraph")
	}
	if got := defs[0].TargetType(); got != "" {
		t.Errorf("TargetType() = %q, want empty", got)
	}
}

func TestEntity_Clear(t *testing.T) {
	t.Parallel()

	t.Run("removes present field", func(t *testing.T) {
		t.Parallel()
		e := newArticle()
		e.Clear(FieldTitle)
		if e.Has(FieldTitle) {
			t.Error("Has(title) = true after Clear, want false")
		}
		if !e.IsEmpty(FieldTitle) {
			t.Error("IsEmpty(title) = false after Clear, want true")
		}
	})

	t.Run("absent field is a no-op", func(t *testing.T) {
		t.Parallel()
		e := newArticle()
		before := e.FieldNames()
		e.Clear("field_missing")
		if diff := cmp.Diff(before, e.FieldNames()); diff != "" {
			t.Errorf("FieldNames() changed (-before +after):\n%s", diff)
		}
	})
}

func TestEntity_FieldNames(t *testing.T) {
	t.Parallel()

	e := newArticle()
	e.SetValue("alpha_extra", 1)

	want := []string{FieldTitle, FieldStatus, "alpha_extra", "field_meta"}
	if diff := cmp.Diff(want, e.FieldNames()); diff != "" {
		t.Errorf("FieldNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestEntity_Translations(t *testing.T) {
	t.Parallel()

	e := newArticle()
	fr := e.AddTranslation("fr")
	fr.SetValue(FieldTitle, "Bonjour")

	if got := e.String(FieldTitle); got != "Hello" {
		t.Errorf("en title = %q, want %q", got, "Hello")
	}
	if got := fr.String(FieldTitle); got != "Bonjour" {
		t.Errorf("fr title = %q, want %q", got, "Bonjour")
	}
	if fr.IsDefaultTranslation() {
		t.Error("fr.IsDefaultTranslation() = true, want false")
	}
	if fr.UUID() != e.UUID() {
		t.Errorf("fr.UUID() = %q, want shared %q", fr.UUID(), e.UUID())
	}
	if diff := cmp.Diff([]string{"en", "fr"}, e.Languages()); diff != "" {
		t.Errorf("Languages() mismatch (-want +got):\n%s", diff)
	}
	if again := e.AddTranslation("fr"); again.String(FieldTitle) != "Bonjour" {
		t.Error("AddTranslation on existing language reset its values")
	}
	if _, ok := e.Translation("de"); ok {
		t.Error("Translation(de) ok = true, want false")
	}
}

func TestEntity_Duplicate(t *testing.T) {
	t.Parallel()

	tag := New("taxonomy_term", "tags", "uuid-tag", "en")
	tag.SetID("7")

	e := newArticle()
	e.Set("field_tags", Item{Ref: &Reference{TargetKind: "taxonomy_term", TargetID: "7", Entity: tag}})

	d := e.Duplicate("uuid-2")

	if d.UUID() != "uuid-2" {
		t.Errorf("UUID() = %q, want %q", d.UUID(), "uuid-2")
	}
	if d.ID() != "" || d.RevisionID() != "" {
		t.Errorf("ID/RevisionID = %q/%q, want empty", d.ID(), d.RevisionID())
	}
	if !d.IsNew() {
		t.Error("IsNew() = false, want true")
	}

	// Structured values are detached.
	meta, _ := d.Value("field_meta")
	meta.(map[string]any)["keywords"].([]any)[0] = "changed"
	orig, _ := e.Value("field_meta")
	if got := orig.(map[string]any)["keywords"].([]any)[0]; got != "a" {
		t.Errorf("original field_meta mutated through duplicate, got %v", got)
	}

	// References are new values pointing at the same target.
	dref := d.Get("field_tags")[0].Ref
	oref := e.Get("field_tags")[0].Ref
	if dref == oref {
		t.Error("duplicate shares the Reference value with the original")
	}
	if dref.Entity != tag {
		t.Error("duplicate reference no longer points at the shared target")
	}

	d.SetValue(FieldTitle, "Other")
	if e.String(FieldTitle) != "Hello" {
		t.Error("original title mutated through duplicate")
	}
}

func TestEntity_SetReference(t *testing.T) {
	t.Parallel()

	e := newArticle()
	e.Set("field_paragraphs", Item{Ref: &Reference{TargetKind: KindParagraph, TargetID: "3", Owned: true}})

	if !e.SetReference("field_paragraphs", 0, &Reference{TargetKind: KindParagraph, Owned: true}) {
		t.Fatal("SetReference(0) = false, want true")
	}
	if got := e.Get("field_paragraphs")[0].Ref.TargetID; got != "" {
		t.Errorf("TargetID = %q, want empty", got)
	}
	if e.SetReference("field_paragraphs", 3, &Reference{}) {
		t.Error("SetReference(3) = true, want false for out-of-range index")
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	e := newArticle()
	e.Set("field_paragraphs", Item{Ref: &Reference{TargetKind: KindParagraph, TargetID: "3", Owned: true}})
	e.AddTranslation("fr").SetValue(FieldTitle, "Bonjour")

	got, ok := FromSnapshot(e.ToSnapshot())
	if !ok {
		t.Fatal("FromSnapshot() ok = false, want true")
	}
	if diff := cmp.Diff(e.ToSnapshot(), got.ToSnapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestFromSnapshot_Invalid(t *testing.T) {
	t.Parallel()

	if _, ok := FromSnapshot(Snapshot{Kind: KindBlockContent}); ok {
		t.Error("FromSnapshot() without translations ok = true, want false")
	}
}
