// Package ifcio reads and writes IFC STEP-physical-file text: a simple,
// self-healing subset covering walls, rooms, and floor slabs, grounded on
// original_source/kernel/pensaer-ifc (error.rs, export.rs, import.rs,
// lib.rs, mapping.rs). Full IFC schema coverage is out of scope (spec.md's
// Non-goals); this package trades completeness for a predictable, always-
// parseable text format and a healing import that never hard-fails on a
// single bad entity.
package ifcio

// Version identifies a supported IFC schema version for FILE_SCHEMA.
type Version int

const (
	IFC2X3 Version = iota
	IFC4
	IFC4X3
)

// String returns the FILE_SCHEMA token for v.
func (v Version) String() string {
	switch v {
	case IFC2X3:
		return "IFC2X3"
	case IFC4X3:
		return "IFC4X3"
	default:
		return "IFC4"
	}
}

// mmPerMetre converts this kernel's millimetre coordinates to the metres
// IFCSIUNIT(.LENGTHUNIT.) declares on export.
const mmPerMetre = 1000.0

func toMetres(mm float64) float64 { return mm / mmPerMetre }
func toMillimetres(m float64) float64 { return m * mmPerMetre }
