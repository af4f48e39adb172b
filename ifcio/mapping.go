package ifcio

import (
	"fmt"
	"strings"
)

// ElementKind is a Pensaer-side element kind that can be mapped to an IFC
// entity type. Ported from pensaer-ifc/src/mapping.rs's ElementType (kept
// as its own small enum local to this package rather than reused from
// element.Kind, since not every element.Kind has an IFC counterpart and
// the string table below is this package's own concern).
type ElementKind int

const (
	ElemWall ElementKind = iota
	ElemDoor
	ElemWindow
	ElemFloor
	ElemRoom
	ElemRoof
	ElemColumn
	ElemBeam
	ElemStair
	ElemOpening
)

// ParseElementKind parses a case-insensitive element kind name, accepting
// "slab" as a Floor alias and "space" as a Room alias the same way
// mapping.rs's ElementType::from_str does.
func ParseElementKind(s string) (ElementKind, bool) {
	switch strings.ToLower(s) {
	case "wall":
		return ElemWall, true
	case "door":
		return ElemDoor, true
	case "window":
		return ElemWindow, true
	case "floor", "slab":
		return ElemFloor, true
	case "room", "space":
		return ElemRoom, true
	case "roof":
		return ElemRoof, true
	case "column":
		return ElemColumn, true
	case "beam":
		return ElemBeam, true
	case "stair", "stairs":
		return ElemStair, true
	case "opening":
		return ElemOpening, true
	default:
		return 0, false
	}
}

// String returns the lowercase element kind name.
func (k ElementKind) String() string {
	switch k {
	case ElemWall:
		return "wall"
	case ElemDoor:
		return "door"
	case ElemWindow:
		return "window"
	case ElemFloor:
		return "floor"
	case ElemRoom:
		return "room"
	case ElemRoof:
		return "roof"
	case ElemColumn:
		return "column"
	case ElemBeam:
		return "beam"
	case ElemStair:
		return "stair"
	case ElemOpening:
		return "opening"
	default:
		return "unknown"
	}
}

// IfcEntity is an IFC entity type name this package maps to/from an
// ElementKind. Ported from mapping.rs's IfcEntityType.
type IfcEntity int

const (
	IfcWall IfcEntity = iota
	IfcWallStandardCase
	IfcDoor
	IfcWindow
	IfcSlab
	IfcSpace
	IfcRoof
	IfcColumn
	IfcBeam
	IfcStair
	IfcOpeningElement
	IfcBuildingStorey
	IfcBuilding
	IfcSite
	IfcProject
)

// Name returns the IFC entity name in its canonical mixed-case spelling
// (used for display; STEP output is always upper-cased).
func (e IfcEntity) Name() string {
	switch e {
	case IfcWall:
		return "IfcWall"
	case IfcWallStandardCase:
		return "IfcWallStandardCase"
	case IfcDoor:
		return "IfcDoor"
	case IfcWindow:
		return "IfcWindow"
	case IfcSlab:
		return "IfcSlab"
	case IfcSpace:
		return "IfcSpace"
	case IfcRoof:
		return "IfcRoof"
	case IfcColumn:
		return "IfcColumn"
	case IfcBeam:
		return "IfcBeam"
	case IfcStair:
		return "IfcStair"
	case IfcOpeningElement:
		return "IfcOpeningElement"
	case IfcBuildingStorey:
		return "IfcBuildingStorey"
	case IfcBuilding:
		return "IfcBuilding"
	case IfcSite:
		return "IfcSite"
	case IfcProject:
		return "IfcProject"
	default:
		return "IfcElement"
	}
}

// ParseIfcEntity parses a case-insensitive STEP entity type keyword.
func ParseIfcEntity(s string) (IfcEntity, bool) {
	switch strings.ToUpper(s) {
	case "IFCWALL":
		return IfcWall, true
	case "IFCWALLSTANDARDCASE":
		return IfcWallStandardCase, true
	case "IFCDOOR":
		return IfcDoor, true
	case "IFCWINDOW":
		return IfcWindow, true
	case "IFCSLAB":
		return IfcSlab, true
	case "IFCSPACE":
		return IfcSpace, true
	case "IFCROOF":
		return IfcRoof, true
	case "IFCCOLUMN":
		return IfcColumn, true
	case "IFCBEAM":
		return IfcBeam, true
	case "IFCSTAIR":
		return IfcStair, true
	case "IFCOPENINGELEMENT":
		return IfcOpeningElement, true
	case "IFCBUILDINGSTOREY":
		return IfcBuildingStorey, true
	case "IFCBUILDING":
		return IfcBuilding, true
	case "IFCSITE":
		return IfcSite, true
	case "IFCPROJECT":
		return IfcProject, true
	default:
		return 0, false
	}
}

// ElementToIfc maps a Pensaer element kind to its IFC entity type.
func ElementToIfc(k ElementKind) IfcEntity {
	switch k {
	case ElemWall:
		return IfcWallStandardCase
	case ElemDoor:
		return IfcDoor
	case ElemWindow:
		return IfcWindow
	case ElemFloor:
		return IfcSlab
	case ElemRoom:
		return IfcSpace
	case ElemRoof:
		return IfcRoof
	case ElemColumn:
		return IfcColumn
	case ElemBeam:
		return IfcBeam
	case ElemStair:
		return IfcStair
	default:
		return IfcOpeningElement
	}
}

// IfcToElement maps an IFC entity type back to its Pensaer element kind, or
// an error if ifc has no Pensaer equivalent (the spatial-structure entities
// IfcBuildingStorey/IfcBuilding/IfcSite/IfcProject).
func IfcToElement(ifc IfcEntity) (ElementKind, error) {
	switch ifc {
	case IfcWall, IfcWallStandardCase:
		return ElemWall, nil
	case IfcDoor:
		return ElemDoor, nil
	case IfcWindow:
		return ElemWindow, nil
	case IfcSlab:
		return ElemFloor, nil
	case IfcSpace:
		return ElemRoom, nil
	case IfcRoof:
		return ElemRoof, nil
	case IfcColumn:
		return ElemColumn, nil
	case IfcBeam:
		return ElemBeam, nil
	case IfcStair:
		return ElemStair, nil
	case IfcOpeningElement:
		return ElemOpening, nil
	default:
		return 0, NewMappingError(fmt.Sprintf("no Pensaer equivalent for %s", ifc.Name()))
	}
}
