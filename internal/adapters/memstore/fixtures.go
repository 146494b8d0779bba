package memstore

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/form"
	"github.com/jsamuelsen11/quick-node-clone/internal/domain/layout"
)

// Fixtures is the YAML seed format of the store.
//
//	bundles:
//	  - kind: node
//	    bundle: article
//	    language: en
//	    fields:
//	      - {name: field_paragraphs, type: entity_reference_revisions, settings: {target_type: paragraph}}
//	    defaults: {status: false}
//	forms:
//	  - {id: node.article.default, kind: node, bundle: article, operation: default}
//	entities:
//	  - kind: node
//	    bundle: article
//	    id: "1"
//	    uuid: 5b0f...
//	    translations:
//	      en:
//	        title: [Hello]
//	        field_paragraphs:
//	          - ref: {kind: paragraph, id: "2", revision_id: "2", owned: true}
//
// Entities take the field definitions of their bundle. A field item is a
// plain value, a {ref: ...} reference or a {section: ...} layout section.
type Fixtures struct {
	Bundles  []BundleFixture   `yaml:"bundles"`
	Forms    []form.Definition `yaml:"forms"`
	Entities []EntityFixture   `yaml:"entities"`
}

// BundleFixture declares a bundle.
type BundleFixture struct {
	Kind     entity.Kind    `yaml:"kind"`
	Bundle   string         `yaml:"bundle"`
	Language string         `yaml:"language"`
	Fields   []FieldFixture `yaml:"fields"`
	Defaults map[string]any `yaml:"defaults"`
}

// FieldFixture declares a field of a bundle.
type FieldFixture struct {
	Name     string         `yaml:"name"`
	Type     string         `yaml:"type"`
	Settings map[string]any `yaml:"settings"`
}

// EntityFixture is a stored entity. Language names the default translation
// and defaults to "en"; other translations start from its values.
type EntityFixture struct {
	Kind         entity.Kind                         `yaml:"kind"`
	Bundle       string                              `yaml:"bundle"`
	ID           string                              `yaml:"id"`
	RevisionID   string                              `yaml:"revision_id"`
	UUID         string                              `yaml:"uuid"`
	Language     string                              `yaml:"language"`
	Translations map[string]map[string][]ItemFixture `yaml:"translations"`
}

// ItemFixture is one field item.
type ItemFixture struct {
	Value   any
	Ref     *RefFixture
	Section *SectionFixture
}

// RefFixture is a reference item.
type RefFixture struct {
	Kind       entity.Kind `yaml:"kind"`
	ID         string      `yaml:"id"`
	RevisionID string      `yaml:"revision_id"`
	Owned      bool        `yaml:"owned"`
}

// SectionFixture is a layout section item.
type SectionFixture struct {
	LayoutID   string              `yaml:"layout_id"`
	Settings   map[string]any      `yaml:"settings"`
	Components []*layout.Component `yaml:"components"`
}

// UnmarshalYAML decodes a mapping with a single ref or section key as such
// and anything else as a plain value.
func (it *ItemFixture) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode && len(node.Content) == 2 {
		switch node.Content[0].Value {
		case "ref":
			it.Ref = &RefFixture{}
			return node.Content[1].Decode(it.Ref)
		case "section":
			it.Section = &SectionFixture{}
			return node.Content[1].Decode(it.Section)
		}
	}
	return node.Decode(&it.Value)
}

func (it ItemFixture) item() entity.Item {
	switch {
	case it.Ref != nil:
		return entity.Item{Ref: &entity.Reference{
			TargetKind:       it.Ref.Kind,
			TargetID:         it.Ref.ID,
			TargetRevisionID: it.Ref.RevisionID,
			Owned:            it.Ref.Owned,
		}}
	case it.Section != nil:
		return entity.Item{Value: layout.NewSection(it.Section.LayoutID, it.Section.Settings, it.Section.Components...)}
	default:
		return entity.Item{Value: it.Value}
	}
}

// LoadFixturesFile seeds the store from a YAML file.
func (s *Store) LoadFixturesFile(path string) error {
	f, err := os.Open(path) //nolint:gosec // path comes from trusted configuration
	if err != nil {
		return fmt.Errorf("opening fixtures: %w", err)
	}
	defer func() { _ = f.Close() }()
	return s.LoadFixtures(f)
}

// LoadFixtures seeds the store from YAML. Bundles and forms are registered
// first; entities are written in one transaction.
func (s *Store) LoadFixtures(r io.Reader) error {
	var fx Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding fixtures: %w", err)
	}

	defs := make(map[string][]entity.FieldDefinition, len(fx.Bundles))
	for _, b := range fx.Bundles {
		fields := make([]entity.FieldDefinition, 0, len(b.Fields))
		for _, f := range b.Fields {
			fields = append(fields, entity.FieldDefinition{Name: f.Name, Type: f.Type, Settings: f.Settings})
		}
		defs[string(b.Kind)+"."+b.Bundle] = fields
		if err := s.DefineBundle(b.Kind, b.Bundle, b.Language, fields, b.Defaults); err != nil {
			return err
		}
	}
	for _, def := range fx.Forms {
		if err := s.DefineForm(def); err != nil {
			return err
		}
	}

	txn := s.db.Txn(true)
	defer txn.Abort()
	for _, ef := range fx.Entities {
		e, err := ef.build(defs[string(ef.Kind)+"."+ef.Bundle])
		if err != nil {
			return err
		}
		if err := s.put(txn, e, false); err != nil {
			return fmt.Errorf("seeding %s %s: %w", ef.Kind, ef.ID, err)
		}
	}
	txn.Commit()
	return nil
}

func (ef EntityFixture) build(defs []entity.FieldDefinition) (*entity.Entity, error) {
	if ef.Kind == "" || ef.ID == "" || ef.UUID == "" {
		return nil, fmt.Errorf("fixture entity needs kind, id and uuid (got %q %q %q)", ef.Kind, ef.ID, ef.UUID)
	}

	lang := ef.Language
	if lang == "" {
		lang = "en"
	}
	if _, ok := ef.Translations[lang]; !ok && len(ef.Translations) > 0 {
		return nil, fmt.Errorf("fixture %s %s has no %q translation", ef.Kind, ef.ID, lang)
	}

	e := entity.New(ef.Kind, ef.Bundle, ef.UUID, lang, defs...)
	e.SetID(ef.ID)
	e.SetRevisionID(ef.RevisionID)

	setFields(e, ef.Translations[lang])
	for _, code := range slices.Sorted(maps.Keys(ef.Translations)) {
		if code == lang {
			continue
		}
		setFields(e.AddTranslation(code), ef.Translations[code])
	}
	return e, nil
}

func setFields(e *entity.Entity, fields map[string][]ItemFixture) {
	for name, items := range fields {
		out := make([]entity.Item, 0, len(items))
		for _, it := range items {
			out = append(out, it.item())
		}
		e.Set(name, out...)
	}
}
