package entity

import "slices"

// Duplicate returns a detached copy of every language variant with a fresh
// UUID and no storage identity. Field values are deep-copied; references are
// copied but keep pointing at the same targets, so owned sub-entities still
// need their own duplication. The receiver's variant is the one returned.
func (e *Entity) Duplicate(uuid string) *Entity {
	d := e.Copy()
	d.rec.uuid = uuid
	d.rec.id = ""
	d.rec.revisionID = ""
	return d
}

// Copy returns a deep copy that keeps the storage identity.
func (e *Entity) Copy() *Entity {
	rec := &record{
		kind:        e.rec.kind,
		bundle:      e.rec.bundle,
		id:          e.rec.id,
		revisionID:  e.rec.revisionID,
		uuid:        e.rec.uuid,
		defaultLang: e.rec.defaultLang,
		langs:       slices.Clone(e.rec.langs),
		defs:        make([]FieldDefinition, len(e.rec.defs)),
		fields:      make(map[string]map[string]Items, len(e.rec.fields)),
	}
	for i, d := range e.rec.defs {
		rec.defs[i] = FieldDefinition{Name: d.Name, Type: d.Type, Settings: cloneMap(d.Settings)}
	}
	for lang, vals := range e.rec.fields {
		cp := make(map[string]Items, len(vals))
		for name, items := range vals {
			cp[name] = cloneItems(items)
		}
		rec.fields[lang] = cp
	}
	return &Entity{rec: rec, lang: e.lang}
}
