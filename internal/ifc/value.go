package ifc

import (
	"fmt"

	"github.com/boscotek/ifccheck/internal/step"
)

// ValueKind classifies an attribute value.
type ValueKind int

const (
	// Absent means the attribute is null ($), derived (*), or not defined
	// for the entity's type.
	Absent ValueKind = iota
	// EntityRef is a reference to another entity instance.
	EntityRef
	// Number is a raw numeric literal. Where the schema expects an entity
	// reference, a Number is the telltale of a broken export.
	Number
	// Text is a string literal.
	Text
	// Enum is an enumeration literal such as LENGTHUNIT or MILLI.
	Enum
	// List is an aggregate of values.
	List
)

// Value is one attribute value read from the model: a tagged variant over
// entity reference, raw literal, aggregate, or absence.
type Value struct {
	kind   ValueKind
	entity *Entity
	num    float64
	str    string
	list   []Value
}

// Kind returns the value's classification.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the attribute was null, derived, or undefined.
func (v Value) IsAbsent() bool { return v.kind == Absent }

// Entity returns the referenced entity. The second result is false unless
// the value is a resolvable entity reference.
func (v Value) Entity() (*Entity, bool) {
	if v.kind == EntityRef && v.entity != nil {
		return v.entity, true
	}
	return nil, false
}

// Str returns the text for Text and Enum values.
func (v Value) Str() (string, bool) {
	if v.kind == Text || v.kind == Enum {
		return v.str, true
	}
	return "", false
}

// Float returns the numeric value for Number values.
func (v Value) Float() (float64, bool) {
	if v.kind == Number {
		return v.num, true
	}
	return 0, false
}

// Items returns the members of a List value.
func (v Value) Items() ([]Value, bool) {
	if v.kind == List {
		return v.list, true
	}
	return nil, false
}

// Display renders the value for finding text. Absent values render as the
// literal "None", matching the report format the pipeline's log scrapers
// expect.
func (v Value) Display() string {
	switch v.kind {
	case Absent:
		return "None"
	case Text, Enum:
		return v.str
	case Number:
		return fmt.Sprintf("%v", v.num)
	case EntityRef:
		if v.entity != nil {
			return fmt.Sprintf("#%d=%s", v.entity.ID(), v.entity.Type())
		}
		return "None"
	case List:
		return fmt.Sprintf("(%d items)", len(v.list))
	default:
		return "None"
	}
}

// convertValue lifts a raw step value into the model's tagged variant.
func (m *Model) convertValue(raw step.Value) Value {
	switch raw.Kind {
	case step.KindNull, step.KindDerived:
		return Value{kind: Absent}
	case step.KindRef:
		// A dangling reference is deliberately not an Absent: it is a
		// reference, just not a resolvable one.
		return Value{kind: EntityRef, entity: m.entities[raw.Ref]}
	case step.KindInt:
		return Value{kind: Number, num: float64(raw.Int)}
	case step.KindReal:
		return Value{kind: Number, num: raw.Real}
	case step.KindString:
		return Value{kind: Text, str: raw.Str}
	case step.KindEnum:
		return Value{kind: Enum, str: raw.Str}
	case step.KindList:
		items := make([]Value, 0, len(raw.List))
		for _, member := range raw.List {
			items = append(items, m.convertValue(member))
		}
		return Value{kind: List, list: items}
	case step.KindTyped:
		// Select wrappers like IFCLABEL('x') carry one payload value.
		if raw.Inner == nil {
			return Value{kind: Absent}
		}
		return m.convertValue(*raw.Inner)
	default:
		return Value{kind: Absent}
	}
}
