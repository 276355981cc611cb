package ifc

// Psets resolves the named property sets attached to an entity through
// IfcRelDefinesByProperties relationships. The result maps set name to a
// property-name → value map. Properties without a name are skipped;
// select wrappers around nominal values are unwrapped.
func (m *Model) Psets(e *Entity) map[string]map[string]Value {
	psets := make(map[string]map[string]Value)

	for _, rel := range m.ByType("IfcRelDefinesByProperties") {
		if !m.relatesTo(rel, e) {
			continue
		}
		def, ok := rel.Attr("RelatingPropertyDefinition").Entity()
		if !ok || !def.Is("IfcPropertySet") {
			continue
		}
		name, ok := def.Attr("Name").Str()
		if !ok || name == "" {
			continue
		}

		props := psets[name]
		if props == nil {
			props = make(map[string]Value)
			psets[name] = props
		}
		members, _ := def.Attr("HasProperties").Items()
		for _, member := range members {
			prop, ok := member.Entity()
			if !ok || !prop.Is("IfcPropertySingleValue") {
				continue
			}
			propName, ok := prop.Attr("Name").Str()
			if !ok || propName == "" {
				continue
			}
			props[propName] = prop.Attr("NominalValue")
		}
	}

	return psets
}

// relatesTo reports whether the relationship's RelatedObjects list
// contains the given entity.
func (m *Model) relatesTo(rel *Entity, e *Entity) bool {
	members, _ := rel.Attr("RelatedObjects").Items()
	for _, member := range members {
		if target, ok := member.Entity(); ok && target.ID() == e.ID() {
			return true
		}
	}
	return false
}
