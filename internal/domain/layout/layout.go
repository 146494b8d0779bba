// Package layout models the per-entity layout override: an ordered list of
// sections, each holding an ordered set of components placed in regions.
package layout

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
)

// FieldName is the entity field that stores layout sections, one per item.
const FieldName = "layout_builder__layout"

// Configuration keys used by inline block components.
const (
	ConfigPluginID        = "id"
	ConfigBlockSerialized = "block_serialized"
	ConfigBlockRevisionID = "block_revision_id"

	inlineBlockPlugin = "inline_block"
)

// ErrComponentNotFound is returned when a component UUID is not part of the
// section.
var ErrComponentNotFound = errors.New("layout: component not found")

// Component is a block placed in a section region.
type Component struct {
	UUID          string         `json:"uuid"`
	Region        string         `json:"region"`
	Weight        int            `json:"weight"`
	Configuration map[string]any `json:"configuration"`
	Additional    map[string]any `json:"additional,omitempty"`
}

// PluginID returns the block plugin id from the configuration.
func (c *Component) PluginID() string {
	id, _ := c.Configuration[ConfigPluginID].(string)
	return id
}

// IsInlineBlock reports whether the component is backed by an owned block
// content entity rather than an external plugin.
func (c *Component) IsInlineBlock() bool {
	base, _, _ := strings.Cut(c.PluginID(), ":")
	return base == inlineBlockPlugin
}

func (c *Component) clone() *Component {
	return &Component{
		UUID:          c.UUID,
		Region:        c.Region,
		Weight:        c.Weight,
		Configuration: entity.CloneMap(c.Configuration),
		Additional:    entity.CloneMap(c.Additional),
	}
}

// Section is an ordered mapping of components keyed by UUID.
type Section struct {
	LayoutID string
	Settings map[string]any

	order      []string
	components map[string]*Component
}

// NewSection creates a section holding components in the given order.
func NewSection(layoutID string, settings map[string]any, components ...*Component) *Section {
	s := &Section{
		LayoutID:   layoutID,
		Settings:   settings,
		components: make(map[string]*Component, len(components)),
	}
	for _, c := range components {
		s.AppendComponent(c)
	}
	return s
}

// Components returns the components in order.
func (s *Section) Components() []*Component {
	out := make([]*Component, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.components[id])
	}
	return out
}

// Component returns the component with the given UUID.
func (s *Section) Component(uuid string) (*Component, bool) {
	c, ok := s.components[uuid]
	return c, ok
}

// AppendComponent adds c at the end, replacing any component with the same
// UUID in place.
func (s *Section) AppendComponent(c *Component) {
	if s.components == nil {
		s.components = make(map[string]*Component)
	}
	if _, ok := s.components[c.UUID]; !ok {
		s.order = append(s.order, c.UUID)
	}
	s.components[c.UUID] = c
}

// InsertAfterComponent places c directly after the component precedingUUID.
func (s *Section) InsertAfterComponent(precedingUUID string, c *Component) error {
	i := slices.Index(s.order, precedingUUID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrComponentNotFound, precedingUUID)
	}
	if _, dup := s.components[c.UUID]; dup {
		return fmt.Errorf("layout: component %s already in section", c.UUID)
	}
	s.order = slices.Insert(s.order, i+1, c.UUID)
	s.components[c.UUID] = c
	return nil
}

// RemoveComponent deletes the component. Removing an unknown UUID is a no-op.
func (s *Section) RemoveComponent(uuid string) {
	if _, ok := s.components[uuid]; !ok {
		return
	}
	delete(s.components, uuid)
	s.order = slices.DeleteFunc(s.order, func(id string) bool { return id == uuid })
}

// CloneValue deep-copies the section so duplicated entities never share
// layout state with their source.
func (s *Section) CloneValue() any {
	out := &Section{
		LayoutID:   s.LayoutID,
		Settings:   entity.CloneMap(s.Settings),
		order:      slices.Clone(s.order),
		components: make(map[string]*Component, len(s.components)),
	}
	for id, c := range s.components {
		out.components[id] = c.clone()
	}
	return out
}

// SnapshotValue returns the serializable form of the section.
func (s *Section) SnapshotValue() any {
	return SectionSnapshot{
		LayoutID:   s.LayoutID,
		Settings:   s.Settings,
		Components: s.Components(),
	}
}

// SectionSnapshot is the serializable form of a Section.
type SectionSnapshot struct {
	LayoutID   string         `json:"layout_id"`
	Settings   map[string]any `json:"settings,omitempty"`
	Components []*Component   `json:"components"`
}

// Sections returns the layout sections of the entity variant in order.
// Items that do not hold a section are skipped.
func Sections(e *entity.Entity) []*Section {
	items := e.Get(FieldName)
	out := make([]*Section, 0, len(items))
	for _, it := range items {
		if s, ok := it.Value.(*Section); ok {
			out = append(out, s)
		}
	}
	return out
}

// InsertSection places s at delta, shifting later sections down.
func InsertSection(e *entity.Entity, delta int, s *Section) {
	items := e.Get(FieldName)
	delta = min(max(delta, 0), len(items))
	items = slices.Insert(items, delta, entity.Item{Value: s})
	e.Set(FieldName, items...)
}

// RemoveSection deletes the section at delta. Out-of-range deltas are ignored.
func RemoveSection(e *entity.Entity, delta int) {
	items := e.Get(FieldName)
	if delta < 0 || delta >= len(items) {
		return
	}
	e.Set(FieldName, slices.Delete(items, delta, delta+1)...)
}
