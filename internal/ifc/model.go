package ifc

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/boscotek/ifccheck/internal/step"
)

// Model is a read-only IFC object graph decoded from one STEP file.
type Model struct {
	file     *step.File
	entities map[int64]*Entity
	order    []int64
}

// Open decodes the IFC file at the given path.
func Open(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening IFC file")
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodes an IFC model from a STEP stream.
func Decode(r io.Reader) (*Model, error) {
	f, err := step.Decode(r)
	if err != nil {
		return nil, err
	}

	m := &Model{
		file:     f,
		entities: make(map[int64]*Entity, len(f.Instances)),
		order:    f.Order,
	}
	for id, inst := range f.Instances {
		m.entities[id] = &Entity{
			model: m,
			inst:  inst,
			typ:   canonicalType(inst.Type),
		}
	}
	return m, nil
}

// Schema returns the declared schema identifier from the file header,
// e.g. "IFC4".
func (m *Model) Schema() string {
	return m.file.Schema
}

// ByType returns all entities of the given type or any of its subtypes,
// in file order. The lookup is case-insensitive.
func (m *Model) ByType(typeName string) []*Entity {
	var out []*Entity
	for _, id := range m.order {
		if e := m.entities[id]; e.Is(typeName) {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of entities matching the given type.
func (m *Model) Count(typeName string) int {
	return len(m.ByType(typeName))
}
