package ifcio

import "fmt"

// Code discriminates Error's failure modes, ported from
// pensaer-ifc/src/error.rs's IfcError variants.
type Code int

const (
	CodeParseError Code = iota
	CodeInvalidStructure
	CodeUnsupportedVersion
	CodeElementNotFound
	CodeInvalidGeometry
	CodeMappingError
	CodeMissingAttribute
	CodeInvalidEntityGeometry
	CodeCoordinateOutOfRange
	CodeDegenerateGeometry
	CodeMappingFailed
	CodeBrokenReference
)

// Error is this package's error type. Go has no equivalent of thiserror's
// derive macro, so Error() is written out per code the same way
// mesh/errors.go and topology/errors.go hand-write their sentinel errors.
type Error struct {
	Code     Code
	Message  string
	EntityID uint64
	HasEntityID bool
}

func (e Error) Error() string { return e.Message }

// Recoverable reports whether this error can be healed (the entity
// skipped, clamped, or defaulted) rather than aborting the whole import,
// per pensaer-ifc/src/error.rs's IfcError::is_recoverable and spec.md §7.
func (e Error) Recoverable() bool {
	switch e.Code {
	case CodeMissingAttribute, CodeInvalidEntityGeometry, CodeCoordinateOutOfRange,
		CodeDegenerateGeometry, CodeBrokenReference:
		return true
	default:
		return false
	}
}

// EntityIDOf returns the entity id this error references, if any.
func (e Error) EntityIDOf() (uint64, bool) { return e.EntityID, e.HasEntityID }

func NewParseError(msg string) Error {
	return Error{Code: CodeParseError, Message: fmt.Sprintf("IFC parse error: %s", msg)}
}

func NewInvalidStructure(msg string) Error {
	return Error{Code: CodeInvalidStructure, Message: fmt.Sprintf("invalid IFC structure: %s", msg)}
}

func NewUnsupportedVersion(msg string) Error {
	return Error{Code: CodeUnsupportedVersion, Message: fmt.Sprintf("unsupported IFC version: %s", msg)}
}

func NewElementNotFound(msg string) Error {
	return Error{Code: CodeElementNotFound, Message: fmt.Sprintf("element not found: %s", msg)}
}

func NewInvalidGeometry(msg string) Error {
	return Error{Code: CodeInvalidGeometry, Message: fmt.Sprintf("invalid geometry: %s", msg)}
}

func NewMappingError(msg string) Error {
	return Error{Code: CodeMappingError, Message: fmt.Sprintf("type mapping error: %s", msg)}
}

func NewMissingAttribute(entityID uint64, entityType, attribute string) Error {
	return Error{
		Code:        CodeMissingAttribute,
		Message:     fmt.Sprintf("missing required attribute: entity #%d (%s) requires %s", entityID, entityType, attribute),
		EntityID:    entityID,
		HasEntityID: true,
	}
}

func NewInvalidEntityGeometry(entityID uint64, msg string) Error {
	return Error{
		Code:        CodeInvalidEntityGeometry,
		Message:     fmt.Sprintf("invalid geometry in entity #%d: %s", entityID, msg),
		EntityID:    entityID,
		HasEntityID: true,
	}
}

func NewCoordinateOutOfRange(entityID uint64, coord string, value, min, max float64) Error {
	return Error{
		Code:        CodeCoordinateOutOfRange,
		Message:     fmt.Sprintf("coordinate out of range in entity #%d: %s = %g (valid: %g..%g)", entityID, coord, value, min, max),
		EntityID:    entityID,
		HasEntityID: true,
	}
}

func NewDegenerateGeometry(entityID uint64, description string) Error {
	return Error{
		Code:        CodeDegenerateGeometry,
		Message:     fmt.Sprintf("degenerate geometry in entity #%d: %s", entityID, description),
		EntityID:    entityID,
		HasEntityID: true,
	}
}

func NewMappingFailed(sourceType, targetType, reason string) Error {
	return Error{
		Code:    CodeMappingFailed,
		Message: fmt.Sprintf("type mapping failed: %s -> %s (%s)", sourceType, targetType, reason),
	}
}

func NewBrokenReference(fromID, toID uint64) Error {
	return Error{
		Code:        CodeBrokenReference,
		Message:     fmt.Sprintf("broken reference: entity #%d references non-existent #%d", fromID, toID),
		EntityID:    fromID,
		HasEntityID: true,
	}
}

// HealingKind classifies the kind of self-healing fix applied to an
// entity during import, ported from error.rs's HealingType.
type HealingKind int

const (
	HealSkipped HealingKind = iota
	HealCoordinateClamped
	HealSnappedToZero
	HealDefaultApplied
	HealGeometryRepaired
	HealReferenceResolved
)

// String names the healing kind for log output.
func (h HealingKind) String() string {
	switch h {
	case HealSkipped:
		return "skipped"
	case HealCoordinateClamped:
		return "coordinate_clamped"
	case HealSnappedToZero:
		return "snapped_to_zero"
	case HealDefaultApplied:
		return "default_applied"
	case HealGeometryRepaired:
		return "geometry_repaired"
	case HealReferenceResolved:
		return "reference_resolved"
	default:
		return "unknown"
	}
}

// HealingLogEntry records one self-healing action taken during import, for
// structured logging (spec.md §7: "entity id, healing type, original
// error, fix description").
type HealingLogEntry struct {
	EntityID        uint64
	Kind            HealingKind
	OriginalError   string
	FixDescription  string
}
