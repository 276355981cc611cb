// Package ifc provides a read-only typed object model over STEP-encoded
// IFC files.
//
// It plays the role an IFC toolkit plays elsewhere: open a file, look up
// entities by type name with supertype closure (asking for "IfcProduct"
// returns sites, storeys, and furnishing elements alike), read attributes
// by their EXPRESS names, and resolve property sets. Schema knowledge is
// limited to the IFC4 subset a furniture CAD export contains.
//
// Attribute values come back as a tagged [Value] variant. This makes the
// export defect this tool exists to catch, a raw numeric literal written
// where an entity reference belongs, a direct kind check rather than a
// reflection probe:
//
//	placement := product.Attr("ObjectPlacement")
//	if _, ok := placement.Entity(); !ok && !placement.IsAbsent() {
//		// emitted as a bare number instead of an entity reference
//	}
package ifc
