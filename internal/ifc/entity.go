package ifc

import (
	"strings"

	"github.com/boscotek/ifccheck/internal/step"
)

// Entity is one typed instance in the model. It is a non-owning view:
// the model owns all instances for the lifetime of one validation run.
type Entity struct {
	model *Model
	inst  *step.Instance
	typ   string
}

// ID returns the instance's STEP identifier.
func (e *Entity) ID() int64 { return e.inst.ID }

// Type returns the entity type in schema spelling, e.g. "IfcBuildingStorey".
func (e *Entity) Type() string { return e.typ }

// Is reports whether the entity is of the given type or a subtype of it.
// The comparison is case-insensitive.
func (e *Entity) Is(typeName string) bool {
	return isSubtype(e.typ, typeName)
}

// Attr returns the value of the named attribute. Unknown attribute names
// and attributes beyond the instance's parameter count are Absent, the
// same way a missing attribute reads as null from the file.
func (e *Entity) Attr(name string) Value {
	for i, attr := range attrsFor(e.typ) {
		if strings.EqualFold(attr, name) {
			if i >= len(e.inst.Params) {
				return Value{kind: Absent}
			}
			return e.model.convertValue(e.inst.Params[i])
		}
	}
	return Value{kind: Absent}
}

// Name returns the entity's Name attribute rendered for display, with
// absent names rendered as "None".
func (e *Entity) Name() string {
	return e.Attr("Name").Display()
}
