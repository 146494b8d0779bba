package entity

// Well-known field names shared by content entities.
const (
	FieldUID               = "uid"
	FieldCreated           = "created"
	FieldChanged           = "changed"
	FieldRevisionTimestamp = "revision_timestamp"
	FieldTitle             = "title"
	FieldStatus            = "status"
)

// FieldDefinition describes one field of a bundle.
type FieldDefinition struct {
	Name     string         `json:"name" yaml:"name"`
	Type     string         `json:"type" yaml:"type"`
	Settings map[string]any `json:"settings,omitempty" yaml:"settings"`
}

// TargetType returns the entity kind a reference field points at, or "" for
// non-reference fields.
func (d FieldDefinition) TargetType() string {
	s, _ := d.Settings["target_type"].(string)
	return s
}

// Reference points at another entity. Owned targets share the lifecycle of
// the referencing entity and must be duplicated with it; shared targets are
// independent records.
type Reference struct {
	TargetKind       Kind
	TargetID         string
	TargetRevisionID string
	Owned            bool

	// Entity is the resolved target, nil when the store did not load it.
	Entity *Entity
}

// Item is a single value of a field: a plain value or a reference.
type Item struct {
	Value any
	Ref   *Reference
}

// Items is the ordered list of values held by one field.
type Items []Item

// Values returns the plain values of the items, skipping references.
func (it Items) Values() []any {
	out := make([]any, 0, len(it))
	for _, i := range it {
		if i.Ref == nil {
			out = append(out, i.Value)
		}
	}
	return out
}

// Cloner is implemented by structured field values that need a deep copy
// when their entity is duplicated.
type Cloner interface {
	CloneValue() any
}

func cloneItems(items Items) Items {
	if items == nil {
		return nil
	}
	out := make(Items, len(items))
	for i, it := range items {
		out[i] = Item{Value: cloneValue(it.Value)}
		if it.Ref != nil {
			ref := *it.Ref
			out[i].Ref = &ref
		}
	}
	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case Cloner:
		return typed.CloneValue()
	case map[string]any:
		return cloneMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, e := range typed {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		out := make([]string, len(typed))
		copy(out, typed)
		return out
	default:
		return typed
	}
}

// CloneMap deep-copies a string-keyed map of field values.
func CloneMap(in map[string]any) map[string]any {
	return cloneMap(in)
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}
