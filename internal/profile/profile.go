// Package profile defines the conformance rules ifccheck enforces.
//
// The built-in default profile encodes the Boscotek CAD-export rules:
// IFC4 schema, millimetre length units, and the Pset_BoscotekCabinet
// property set on every furnishing element. A profile file in YAML or
// TOML can override individual rules for other export pipelines.
package profile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Profile holds the rule constants the validator checks against.
type Profile struct {
	// Schema is the required IFC schema identifier.
	Schema string `yaml:"schema" toml:"schema"`

	// LengthPrefix is the required SI prefix of the project length unit.
	LengthPrefix string `yaml:"length_prefix" toml:"length_prefix"`

	// PsetName is the vendor property set every furnishing element
	// must carry.
	PsetName string `yaml:"pset_name" toml:"pset_name"`

	// RequiredProps are the property names required inside PsetName.
	// Order matters: missing names are reported in this order.
	RequiredProps []string `yaml:"required_props" toml:"required_props"`

	// SpatialTypes are the spatial-structure entity types skipped by the
	// product completeness check.
	SpatialTypes []string `yaml:"spatial_types" toml:"spatial_types"`
}

// Default returns the built-in Boscotek profile.
func Default() Profile {
	return Profile{
		Schema:        "IFC4",
		LengthPrefix:  "MILLI",
		PsetName:      "Pset_BoscotekCabinet",
		RequiredProps: []string{"BoscotekCode", "Family", "Manufacturer"},
		SpatialTypes:  []string{"IfcProject", "IfcSite", "IfcBuilding", "IfcBuildingStorey"},
	}
}

// Load reads a profile file, dispatching on the file extension.
// Fields left empty in the file keep their default values.
func Load(path string) (Profile, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, errors.Wrap(err, "reading profile")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return p, errors.Wrap(err, "unmarshaling yaml profile")
		}
	case ".toml":
		if err := toml.Unmarshal(data, &p); err != nil {
			return p, errors.Wrap(err, "unmarshaling toml profile")
		}
	default:
		return p, errors.Newf("unsupported profile format %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}

	return p, nil
}

// SkipsType reports whether the product completeness check skips the
// given entity type.
func (p Profile) SkipsType(entityType string) bool {
	for _, t := range p.SpatialTypes {
		if strings.EqualFold(t, entityType) {
			return true
		}
	}
	return false
}
