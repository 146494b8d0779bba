package entity

// Snapshot is the serializable form of an entity and all of its variants.
// Resolved reference targets are not included.
type Snapshot struct {
	Kind            Kind                  `json:"kind"`
	Bundle          string                `json:"bundle"`
	ID              string                `json:"id,omitempty"`
	RevisionID      string                `json:"revision_id,omitempty"`
	UUID            string                `json:"uuid"`
	DefaultLanguage string                `json:"default_language"`
	Definitions     []FieldDefinition     `json:"definitions,omitempty"`
	Translations    []TranslationSnapshot `json:"translations"`
}

// TranslationSnapshot holds the field values of one language variant.
type TranslationSnapshot struct {
	Language string                    `json:"language"`
	Fields   map[string][]ItemSnapshot `json:"fields"`
}

// ItemSnapshot is the serializable form of an Item.
type ItemSnapshot struct {
	Value any                `json:"value,omitempty"`
	Ref   *ReferenceSnapshot `json:"ref,omitempty"`
}

// ReferenceSnapshot is the serializable form of a Reference.
type ReferenceSnapshot struct {
	TargetKind       Kind   `json:"target_kind"`
	TargetID         string `json:"target_id,omitempty"`
	TargetRevisionID string `json:"target_revision_id,omitempty"`
	Owned            bool   `json:"owned,omitempty"`
}

// Snapshotter is implemented by structured values that have their own
// serializable form.
type Snapshotter interface {
	SnapshotValue() any
}

// ToSnapshot converts the entity into its serializable form.
func (e *Entity) ToSnapshot() Snapshot {
	s := Snapshot{
		Kind:            e.rec.kind,
		Bundle:          e.rec.bundle,
		ID:              e.rec.id,
		RevisionID:      e.rec.revisionID,
		UUID:            e.rec.uuid,
		DefaultLanguage: e.rec.defaultLang,
		Definitions:     e.Definitions(),
	}
	for _, lang := range e.rec.langs {
		t := &Entity{rec: e.rec, lang: lang}
		ts := TranslationSnapshot{Language: lang, Fields: make(map[string][]ItemSnapshot)}
		for _, name := range t.FieldNames() {
			items := t.values()[name]
			out := make([]ItemSnapshot, len(items))
			for i, it := range items {
				if it.Ref != nil {
					out[i].Ref = &ReferenceSnapshot{
						TargetKind:       it.Ref.TargetKind,
						TargetID:         it.Ref.TargetID,
						TargetRevisionID: it.Ref.TargetRevisionID,
						Owned:            it.Ref.Owned,
					}
					continue
				}
				if sv, ok := it.Value.(Snapshotter); ok {
					out[i].Value = sv.SnapshotValue()
					continue
				}
				out[i].Value = cloneValue(it.Value)
			}
			ts.Fields[name] = out
		}
		s.Translations = append(s.Translations, ts)
	}
	return s
}

// FromSnapshot rebuilds an entity from its serializable form. References are
// left unresolved. It returns false when the snapshot has no usable variant.
func FromSnapshot(s Snapshot) (*Entity, bool) {
	if s.Kind == "" || len(s.Translations) == 0 {
		return nil, false
	}
	lang := s.DefaultLanguage
	if lang == "" {
		lang = s.Translations[0].Language
	}
	e := New(s.Kind, s.Bundle, s.UUID, lang, s.Definitions...)
	e.rec.id = s.ID
	e.rec.revisionID = s.RevisionID
	for _, ts := range s.Translations {
		t := e.AddTranslation(ts.Language)
		clear(t.values())
		for name, items := range ts.Fields {
			out := make(Items, len(items))
			for i, is := range items {
				if is.Ref != nil {
					out[i].Ref = &Reference{
						TargetKind:       is.Ref.TargetKind,
						TargetID:         is.Ref.TargetID,
						TargetRevisionID: is.Ref.TargetRevisionID,
						Owned:            is.Ref.Owned,
					}
					continue
				}
				out[i].Value = is.Value
			}
			t.values()[name] = out
		}
	}
	return e, true
}
