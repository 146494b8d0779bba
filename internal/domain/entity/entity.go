// Package entity models content records: typed, bundled entities with
// per-language field values and references to other entities.
package entity

import "slices"

// Kind is the entity type, such as "node" or "paragraph".
type Kind string

// Entity kinds handled by the cloning core.
const (
	KindNode         Kind = "node"
	KindParagraph    Kind = "paragraph"
	KindBlockContent Kind = "block_content"
)

// record is the identity and storage shared by every language variant.
type record struct {
	kind        Kind
	bundle      string
	id          string
	revisionID  string
	uuid        string
	defaultLang string
	langs       []string
	defs        []FieldDefinition
	fields      map[string]map[string]Items
}

// Entity is one language variant of a content record. Variants obtained via
// Translation share identity and definitions but hold independent values.
type Entity struct {
	rec  *record
	lang string
}

// New creates an unsaved entity with a single language variant.
func New(kind Kind, bundle, uuid, language string, defs ...FieldDefinition) *Entity {
	rec := &record{
		kind:        kind,
		bundle:      bundle,
		uuid:        uuid,
		defaultLang: language,
		langs:       []string{language},
		defs:        slices.Clone(defs),
		fields:      map[string]map[string]Items{language: {}},
	}
	return &Entity{rec: rec, lang: language}
}

// Kind returns the entity kind.
func (e *Entity) Kind() Kind { return e.rec.kind }

// Bundle returns the sub-type of the kind.
func (e *Entity) Bundle() string { return e.rec.bundle }

// ID returns the storage identity, empty until saved.
func (e *Entity) ID() string { return e.rec.id }

// RevisionID returns the current revision identity, empty until saved.
func (e *Entity) RevisionID() string { return e.rec.revisionID }

// UUID returns the universally unique identity shared by all variants.
func (e *Entity) UUID() string { return e.rec.uuid }

// Language returns the language of this variant.
func (e *Entity) Language() string { return e.lang }

// DefaultLanguage returns the language of the default variant.
func (e *Entity) DefaultLanguage() string { return e.rec.defaultLang }

// IsDefaultTranslation reports whether this is the default variant.
func (e *Entity) IsDefaultTranslation() bool { return e.lang == e.rec.defaultLang }

// IsNew reports whether the entity has never been saved.
func (e *Entity) IsNew() bool { return e.rec.id == "" }

// SetID assigns the storage identity. Only stores call this.
func (e *Entity) SetID(id string) { e.rec.id = id }

// SetRevisionID assigns the revision identity. Only stores call this.
func (e *Entity) SetRevisionID(id string) { e.rec.revisionID = id }

// Languages returns the variant languages, default language first.
func (e *Entity) Languages() []string {
	return slices.Clone(e.rec.langs)
}

// Translation returns the variant for lang.
func (e *Entity) Translation(lang string) (*Entity, bool) {
	if _, ok := e.rec.fields[lang]; !ok {
		return nil, false
	}
	return &Entity{rec: e.rec, lang: lang}, true
}

// AddTranslation creates a variant for lang seeded with a copy of the
// default variant's values. An existing variant is returned unchanged.
func (e *Entity) AddTranslation(lang string) *Entity {
	if t, ok := e.Translation(lang); ok {
		return t
	}
	seed := make(map[string]Items, len(e.rec.fields[e.rec.defaultLang]))
	for name, items := range e.rec.fields[e.rec.defaultLang] {
		seed[name] = cloneItems(items)
	}
	e.rec.fields[lang] = seed
	e.rec.langs = append(e.rec.langs, lang)
	return &Entity{rec: e.rec, lang: lang}
}

// Definitions returns the field definitions of the bundle.
func (e *Entity) Definitions() []FieldDefinition {
	return slices.Clone(e.rec.defs)
}

// Definition returns the definition of the named field.
func (e *Entity) Definition(name string) (FieldDefinition, bool) {
	for _, d := range e.rec.defs {
		if d.Name == name {
			return d, true
		}
	}
	return FieldDefinition{}, false
}

// DefineField adds or replaces a field definition.
func (e *Entity) DefineField(def FieldDefinition) {
	for i, d := range e.rec.defs {
		if d.Name == def.Name {
			e.rec.defs[i] = def
			return
		}
	}
	e.rec.defs = append(e.rec.defs, def)
}

func (e *Entity) values() map[string]Items {
	return e.rec.fields[e.lang]
}

// Get returns a copy of the field's items. Reference targets are shared.
func (e *Entity) Get(name string) Items {
	return slices.Clone(e.values()[name])
}

// Set replaces the field's items.
func (e *Entity) Set(name string, items ...Item) {
	e.values()[name] = Items(items)
}

// SetValue replaces the field with a single plain value.
func (e *Entity) SetValue(name string, v any) {
	e.Set(name, Item{Value: v})
}

// Value returns the first plain value of the field.
func (e *Entity) Value(name string) (any, bool) {
	items := e.values()[name]
	if len(items) == 0 || items[0].Ref != nil {
		return nil, false
	}
	return items[0].Value, true
}

// String returns the first value of the field when it is a string.
func (e *Entity) String(name string) string {
	v, _ := e.Value(name)
	s, _ := v.(string)
	return s
}

// Has reports whether the field is present on this variant.
func (e *Entity) Has(name string) bool {
	_, ok := e.values()[name]
	return ok
}

// IsEmpty reports whether the field has no items.
func (e *Entity) IsEmpty(name string) bool {
	return len(e.values()[name]) == 0
}

// Clear removes the field's values from this variant. Clearing an absent
// field is a no-op.
func (e *Entity) Clear(name string) {
	delete(e.values(), name)
}

// SetReference replaces the i-th item of the field with ref. It reports
// false when the field has no such item.
func (e *Entity) SetReference(name string, i int, ref *Reference) bool {
	items := e.values()[name]
	if i < 0 || i >= len(items) {
		return false
	}
	items[i] = Item{Ref: ref}
	return true
}

// FieldNames returns the fields present on this variant: defined fields in
// definition order, then undefined ones sorted by name.
func (e *Entity) FieldNames() []string {
	vals := e.values()
	names := make([]string, 0, len(vals))
	seen := make(map[string]bool, len(e.rec.defs))
	for _, d := range e.rec.defs {
		seen[d.Name] = true
		if _, ok := vals[d.Name]; ok {
			names = append(names, d.Name)
		}
	}
	extra := make([]string, 0)
	for name := range vals {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	return append(names, extra...)
}

// EachReference calls fn for every reference of every variant, in language
// order then field order.
func (e *Entity) EachReference(fn func(lang, field string, ref *Reference)) {
	for _, lang := range e.rec.langs {
		t := &Entity{rec: e.rec, lang: lang}
		for _, name := range t.FieldNames() {
			for _, it := range t.values()[name] {
				if it.Ref != nil {
					fn(lang, name, it.Ref)
				}
			}
		}
	}
}
