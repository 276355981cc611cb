package validator

import (
	"fmt"
	"strings"
)

// checkSchema verifies the declared schema identifier matches the profile.
func (v *Validator) checkSchema(f *Findings) {
	schema := v.model.Schema()
	if schema != v.profile.Schema {
		f.AddError(fmt.Sprintf("Schema must be %s, found: %s", v.profile.Schema, schema))
	} else {
		f.AddInfo(fmt.Sprintf("Schema: %s", schema))
	}
}

// checkUnits verifies the project length unit carries the required prefix.
// Only the first length unit found in the unit assignment is considered.
func (v *Validator) checkUnits(f *Findings) {
	projects := v.model.ByType("IfcProject")
	if len(projects) == 0 {
		f.AddError("No IfcProject found")
		return
	}
	project := projects[0]

	units, ok := project.Attr("UnitsInContext").Entity()
	if !ok {
		f.AddError("IfcProject.UnitsInContext is null (must be entity reference)")
		return
	}

	members, _ := units.Attr("Units").Items()
	for _, member := range members {
		unit, ok := member.Entity()
		if !ok {
			continue
		}
		unitType, ok := unit.Attr("UnitType").Str()
		if !ok || unitType != "LENGTHUNIT" {
			continue
		}

		prefix := unit.Attr("Prefix").Display()
		if prefix == v.profile.LengthPrefix {
			f.AddInfo(fmt.Sprintf("Units: %sMETRE (correct)", prefix))
		} else {
			f.AddWarning(fmt.Sprintf("Units: %sMETRE (spec requires %sMETRE)",
				prefix, v.profile.LengthPrefix))
		}
		return
	}

	f.AddError("No LENGTHUNIT found in UnitsInContext")
}

// checkSpatialHierarchy verifies the Project -> Site -> Building ->
// BuildingStorey chain is populated. The three spatial type checks run
// independently of each other.
func (v *Validator) checkSpatialHierarchy(f *Findings) {
	projects := v.model.ByType("IfcProject")
	if len(projects) == 0 {
		f.AddError("No IfcProject found")
		return
	}
	project := projects[0]

	contexts, ok := project.Attr("RepresentationContexts").Items()
	if !ok || len(contexts) == 0 {
		f.AddError("IfcProject.RepresentationContexts is null (must be entity list)")
	} else {
		f.AddInfo(fmt.Sprintf("Project has %d representation context(s)", len(contexts)))
	}

	sites := v.model.ByType("IfcSite")
	buildings := v.model.ByType("IfcBuilding")
	storeys := v.model.ByType("IfcBuildingStorey")

	if len(sites) == 0 {
		f.AddError("No IfcSite found (required)")
	} else {
		f.AddInfo(fmt.Sprintf("Found %d IfcSite(s)", len(sites)))
	}

	if len(buildings) == 0 {
		f.AddError("No IfcBuilding found (required)")
	} else {
		f.AddInfo(fmt.Sprintf("Found %d IfcBuilding(s)", len(buildings)))
	}

	if len(storeys) == 0 {
		f.AddError("No IfcBuildingStorey found (CRITICAL - required for valid hierarchy)")
	} else {
		f.AddInfo(fmt.Sprintf("Found %d IfcBuildingStorey(s)", len(storeys)))
	}
}

// checkPlacements verifies every product's ObjectPlacement is a proper
// IfcLocalPlacement entity reference. A raw numeric value where an entity
// belongs is the export defect this check exists to catch.
func (v *Validator) checkPlacements(f *Findings) {
	products := v.model.ByType("IfcProduct")

	for _, product := range products {
		placement := product.Attr("ObjectPlacement")

		if placement.IsAbsent() {
			f.AddError(fmt.Sprintf("%s: ObjectPlacement is null (must be IfcLocalPlacement)",
				product.Name()))
			continue
		}

		entity, ok := placement.Entity()
		if !ok {
			f.AddError(fmt.Sprintf("%s: ObjectPlacement is not an IFC entity (possibly float)",
				product.Name()))
			continue
		}

		if !entity.Is("IfcLocalPlacement") {
			f.AddWarning(fmt.Sprintf("%s: ObjectPlacement is %s (expected IfcLocalPlacement)",
				product.Name(), entity.Type()))
		}
	}

	f.AddInfo(fmt.Sprintf("Checked %d products for valid placements", len(products)))
}

// checkProducts verifies non-spatial products carry geometry and the
// vendor object type code.
func (v *Validator) checkProducts(f *Findings) {
	for _, product := range v.model.ByType("IfcProduct") {
		if v.profile.SkipsType(product.Type()) {
			continue
		}

		if product.Attr("Representation").IsAbsent() {
			f.AddWarning(fmt.Sprintf("%s: No Representation (geometry missing)", product.Name()))
			continue
		}

		objectType, ok := product.Attr("ObjectType").Str()
		if !ok || objectType == "" {
			f.AddWarning(fmt.Sprintf("%s: ObjectType not set (should be Boscotek code)",
				product.Name()))
		}
	}

	furnishings := v.model.ByType("IfcFurnishingElement")
	f.AddInfo(fmt.Sprintf("Found %d IfcFurnishingElement(s)", len(furnishings)))
}

// checkPropertySets verifies every furnishing element carries the vendor
// property set with all required properties. Missing vendor metadata is
// always a warning, never fatal.
func (v *Validator) checkPropertySets(f *Findings) {
	for _, element := range v.model.ByType("IfcFurnishingElement") {
		psets := v.model.Psets(element)

		props, ok := psets[v.profile.PsetName]
		if !ok {
			f.AddWarning(fmt.Sprintf("%s: Missing %s property set",
				element.Name(), v.profile.PsetName))
			continue
		}

		var missing []string
		for _, required := range v.profile.RequiredProps {
			if _, present := props[required]; !present {
				missing = append(missing, required)
			}
		}

		if len(missing) > 0 {
			f.AddWarning(fmt.Sprintf("%s: Missing properties: %s",
				element.Name(), strings.Join(missing, ", ")))
		} else {
			f.AddInfo(fmt.Sprintf("%s: Has complete %s", element.Name(), v.profile.PsetName))
		}
	}
}

// checkRelationships verifies aggregation and containment relationships
// use entity references on both ends, and that containment targets a
// storey rather than a building.
func (v *Validator) checkRelationships(f *Findings) {
	aggregates := v.model.ByType("IfcRelAggregates")
	for _, rel := range aggregates {
		if _, ok := rel.Attr("RelatingObject").Entity(); !ok {
			f.AddError("IfcRelAggregates.RelatingObject is not an entity (possibly float)")
		}

		related, _ := rel.Attr("RelatedObjects").Items()
		if len(related) == 0 {
			f.AddError("IfcRelAggregates.RelatedObjects is empty")
		} else {
			for _, member := range related {
				if _, ok := member.Entity(); !ok {
					f.AddError("IfcRelAggregates.RelatedObjects contains non-entity (possibly float)")
				}
			}
		}
	}

	containments := v.model.ByType("IfcRelContainedInSpatialStructure")
	for _, rel := range containments {
		structure, ok := rel.Attr("RelatingStructure").Entity()
		if !ok {
			f.AddError("IfcRelContainedInSpatialStructure.RelatingStructure is not an entity")
			continue
		}

		if structure.Is("IfcBuilding") {
			f.AddWarning("Products contained in IfcBuilding (should be IfcBuildingStorey)")
		} else if structure.Is("IfcBuildingStorey") {
			f.AddInfo("Products correctly contained in IfcBuildingStorey")
		}
	}

	f.AddInfo(fmt.Sprintf("Validated %d aggregation and %d containment relationships",
		len(aggregates), len(containments)))
}
