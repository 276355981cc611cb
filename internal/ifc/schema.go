package ifc

import "strings"

// superOf maps each known entity type to its direct supertype. The table
// covers the IFC4 subset a furniture export can reasonably contain; types
// outside it still decode but answer only exact-type queries.
var superOf = map[string]string{
	"IfcObjectDefinition": "IfcRoot",
	"IfcObject":           "IfcObjectDefinition",
	"IfcContext":          "IfcObjectDefinition",
	"IfcProject":          "IfcContext",

	"IfcProduct":                 "IfcObject",
	"IfcSpatialElement":          "IfcProduct",
	"IfcSpatialStructureElement": "IfcSpatialElement",
	"IfcSite":                    "IfcSpatialStructureElement",
	"IfcBuilding":                "IfcSpatialStructureElement",
	"IfcBuildingStorey":          "IfcSpatialStructureElement",
	"IfcSpace":                   "IfcSpatialStructureElement",

	"IfcElement":                "IfcProduct",
	"IfcFurnishingElement":      "IfcElement",
	"IfcFurniture":              "IfcFurnishingElement",
	"IfcSystemFurnitureElement": "IfcFurnishingElement",

	"IfcBuildingElement":      "IfcElement",
	"IfcBuildingElementProxy": "IfcBuildingElement",
	"IfcWall":                 "IfcBuildingElement",
	"IfcWallStandardCase":     "IfcWall",
	"IfcSlab":                 "IfcBuildingElement",
	"IfcBeam":                 "IfcBuildingElement",
	"IfcColumn":               "IfcBuildingElement",
	"IfcCovering":             "IfcBuildingElement",
	"IfcDoor":                 "IfcBuildingElement",
	"IfcWindow":               "IfcBuildingElement",
	"IfcMember":               "IfcBuildingElement",
	"IfcPlate":                "IfcBuildingElement",
	"IfcRailing":              "IfcBuildingElement",
	"IfcRoof":                 "IfcBuildingElement",
	"IfcStair":                "IfcBuildingElement",
	"IfcFooting":              "IfcBuildingElement",

	"IfcDistributionElement":     "IfcElement",
	"IfcDistributionFlowElement": "IfcDistributionElement",
	"IfcFlowTerminal":            "IfcDistributionFlowElement",

	"IfcAnnotation":         "IfcProduct",
	"IfcPositioningElement": "IfcProduct",
	"IfcGrid":               "IfcPositioningElement",

	"IfcRelationship":                   "IfcRoot",
	"IfcRelDecomposes":                  "IfcRelationship",
	"IfcRelAggregates":                  "IfcRelDecomposes",
	"IfcRelConnects":                    "IfcRelationship",
	"IfcRelContainedInSpatialStructure": "IfcRelConnects",
	"IfcRelDefines":                     "IfcRelationship",
	"IfcRelDefinesByProperties":         "IfcRelDefines",

	"IfcPropertyDefinition":    "IfcRoot",
	"IfcPropertySetDefinition": "IfcPropertyDefinition",
	"IfcPropertySet":           "IfcPropertySetDefinition",
	"IfcProperty":              "",
	"IfcSimpleProperty":        "IfcProperty",
	"IfcPropertySingleValue":   "IfcSimpleProperty",

	"IfcObjectPlacement": "",
	"IfcLocalPlacement":  "IfcObjectPlacement",
	"IfcGridPlacement":   "IfcObjectPlacement",

	"IfcNamedUnit":            "",
	"IfcSIUnit":               "IfcNamedUnit",
	"IfcConversionBasedUnit":  "IfcNamedUnit",
	"IfcContextDependentUnit": "IfcNamedUnit",

	"IfcRepresentationContext":             "",
	"IfcGeometricRepresentationContext":    "IfcRepresentationContext",
	"IfcGeometricRepresentationSubContext": "IfcGeometricRepresentationContext",

	"IfcProductRepresentation":  "",
	"IfcProductDefinitionShape": "IfcProductRepresentation",
}

// Leaf-less known types that never appear as a supertype of anything.
var standaloneTypes = []string{
	"IfcRoot", "IfcUnitAssignment", "IfcMonetaryUnit", "IfcDerivedUnit",
	"IfcAxis2Placement3D", "IfcAxis2Placement2D", "IfcCartesianPoint",
	"IfcDirection", "IfcShapeRepresentation", "IfcOwnerHistory",
}

// canonicalNames maps the upper-case spelling found in STEP files to the
// schema's mixed-case spelling.
var canonicalNames = map[string]string{}

func init() {
	register := func(name string) {
		canonicalNames[strings.ToUpper(name)] = name
	}
	for child, parent := range superOf {
		register(child)
		if parent != "" {
			register(parent)
		}
	}
	for _, name := range standaloneTypes {
		register(name)
	}
}

// canonicalType returns the schema spelling for a raw STEP type name, or
// the raw name unchanged when it is outside the known subset.
func canonicalType(raw string) string {
	if name, ok := canonicalNames[strings.ToUpper(raw)]; ok {
		return name
	}
	return raw
}

// isSubtype reports whether typ equals or descends from super.
func isSubtype(typ, super string) bool {
	for t := canonicalType(typ); t != ""; t = superOf[t] {
		if strings.EqualFold(t, super) {
			return true
		}
	}
	return false
}

// Attribute name tables in EXPRESS declaration order, inherited attributes
// first. Only the types whose attributes the checks read need exact tails;
// every other product subtype shares the seven-attribute product prefix.
var (
	rootAttrs    = []string{"GlobalId", "OwnerHistory", "Name", "Description"}
	objectAttrs  = append(rootAttrs[:4:4], "ObjectType")
	productAttrs = append(objectAttrs[:5:5], "ObjectPlacement", "Representation")
	spatialAttrs = append(productAttrs[:7:7], "LongName", "CompositionType")
)

var attrTable = map[string][]string{
	"IfcProject": {"GlobalId", "OwnerHistory", "Name", "Description", "ObjectType",
		"LongName", "Phase", "RepresentationContexts", "UnitsInContext"},

	"IfcSite": append(spatialAttrs[:9:9],
		"RefLatitude", "RefLongitude", "RefElevation", "LandTitleNumber", "SiteAddress"),
	"IfcBuilding": append(spatialAttrs[:9:9],
		"ElevationOfRefHeight", "ElevationOfTerrain", "BuildingAddress"),
	"IfcBuildingStorey": append(spatialAttrs[:9:9], "Elevation"),
	"IfcSpace": append(spatialAttrs[:9:9],
		"PredefinedType", "ElevationWithFlooring"),

	"IfcFurnishingElement":      append(productAttrs[:7:7], "Tag"),
	"IfcFurniture":              append(productAttrs[:7:7], "Tag", "PredefinedType"),
	"IfcSystemFurnitureElement": append(productAttrs[:7:7], "Tag", "PredefinedType"),
	"IfcBuildingElementProxy":   append(productAttrs[:7:7], "Tag", "PredefinedType"),

	"IfcRelAggregates": append(rootAttrs[:4:4], "RelatingObject", "RelatedObjects"),
	"IfcRelContainedInSpatialStructure": append(rootAttrs[:4:4],
		"RelatedElements", "RelatingStructure"),
	"IfcRelDefinesByProperties": append(rootAttrs[:4:4],
		"RelatedObjects", "RelatingPropertyDefinition"),

	"IfcPropertySet":         append(rootAttrs[:4:4], "HasProperties"),
	"IfcPropertySingleValue": {"Name", "Description", "NominalValue", "Unit"},

	"IfcUnitAssignment":      {"Units"},
	"IfcSIUnit":              {"Dimensions", "UnitType", "Prefix", "Name"},
	"IfcConversionBasedUnit": {"Dimensions", "UnitType", "Name", "ConversionFactor"},
	"IfcMonetaryUnit":        {"Currency"},

	"IfcLocalPlacement": {"PlacementRelTo", "RelativePlacement"},
	"IfcGeometricRepresentationContext": {"ContextIdentifier", "ContextType",
		"CoordinateSpaceDimension", "Precision", "WorldCoordinateSystem", "TrueNorth"},

	"IfcProductDefinitionShape": {"Name", "Description", "Representations"},
}

// attrsFor returns the attribute name table for a type. Product subtypes
// without an explicit entry fall back to the shared product prefix, so the
// placement and metadata attributes stay addressable for any element type.
func attrsFor(typ string) []string {
	t := canonicalType(typ)
	if attrs, ok := attrTable[t]; ok {
		return attrs
	}
	switch {
	case isSubtype(t, "IfcProduct"):
		return productAttrs
	case isSubtype(t, "IfcRoot"):
		return rootAttrs
	default:
		return nil
	}
}
