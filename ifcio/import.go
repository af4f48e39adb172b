package ifcio

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pensaer/geokernel/element"
	"github.com/pensaer/geokernel/mathx"
)

// maxCoordinateMetres bounds a coordinate self-healing will accept before
// clamping, a generous 10 km — large enough for any real building, small
// enough to catch a corrupt or unit-mismatched file. Ported from
// spec.md §7's "clamp out-of-range coordinates" with a concrete bound
// import.rs itself never picks (its own coordinate parsing has no range
// check at all).
const maxCoordinateMetres = 10_000.0

// defaultWallHeight/defaultWallThickness/defaultFloorThickness/
// defaultRoomHeight stand in for attributes import.rs's own parser never
// extracts from an IFCWALLSTANDARDCASE's representation (it hardcodes the
// same defaults); kept here as named constants instead of inline magic
// numbers.
const (
	defaultWallHeight     = 2.7
	defaultWallThickness  = 0.2
	defaultFloorThickness = 0.3
	defaultRoomHeight     = 2.7
)

// ImportStatistics counts what an import healed or produced, ported from
// import.rs's ImportStatistics.
type ImportStatistics struct {
	WallsImported    int
	RoomsImported    int
	FloorsImported   int
	UnknownEntities  int
}

// Importer parses IFC STEP text and extracts elements with self-healing,
// ported from import.rs's IfcImporter.
type Importer struct {
	entities   map[uint64]Entity
	stats      ImportStatistics
	healingLog []HealingLogEntry
	logger     zerolog.Logger
}

// ImporterOption configures an Importer before use.
type ImporterOption func(*Importer)

// WithLogger installs a structured logger; each healing action logs one
// Warn event. Defaults to zerolog.Nop(), matching kernelexec.Executor's
// WithLogger default.
func WithLogger(logger zerolog.Logger) ImporterOption {
	return func(im *Importer) { im.logger = logger }
}

// NewImporter parses content's DATA section into entities. A syntax-level
// failure here (missing DATA/ENDSEC) is fatal per spec.md §7 and returned
// immediately; per-entity problems are healed lazily by Extract*.
func NewImporter(content string, opts ...ImporterOption) (*Importer, error) {
	entities, err := ParseEntities(content)
	if err != nil {
		return nil, err
	}
	im := &Importer{entities: entities, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(im)
	}
	return im, nil
}

// Statistics returns the import counters accumulated so far.
func (im *Importer) Statistics() ImportStatistics { return im.stats }

// EntityCount returns the total number of parsed STEP entities.
func (im *Importer) EntityCount() int { return len(im.entities) }

// Summary counts entities by type, ported from import.rs's get_summary.
func (im *Importer) Summary() map[string]int {
	out := make(map[string]int)
	for _, e := range im.entities {
		out[e.Type]++
	}
	return out
}

func (im *Importer) heal(entry HealingLogEntry) {
	im.healingLog = append(im.healingLog, entry)
	im.logger.Warn().
		Uint64("entity_id", entry.EntityID).
		Str("healing_type", entry.Kind.String()).
		Str("original_error", entry.OriginalError).
		Str("fix", entry.FixDescription).
		Msg("ifc import: healed entity")
}

// HealingLog returns every self-healing action taken so far.
func (im *Importer) HealingLog() []HealingLogEntry { return im.healingLog }

func (im *Importer) entitiesByType(types ...string) []Entity {
	var out []Entity
	for _, e := range im.entities {
		for _, t := range types {
			if e.Type == t {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// ExtractWalls extracts every IFCWALL/IFCWALLSTANDARDCASE entity into a
// WallElement, healing missing geometry with a unit default segment and
// missing attributes with the IFC defaults import.rs itself hardcodes.
func (im *Importer) ExtractWalls() []element.WallElement {
	var walls []element.WallElement
	for _, e := range im.entitiesByType("IFCWALL", "IFCWALLSTANDARDCASE") {
		w, ok := im.parseWall(e)
		if ok {
			walls = append(walls, w)
		}
	}
	im.stats.WallsImported = len(walls)
	return walls
}

func (im *Importer) parseWall(e Entity) (element.WallElement, bool) {
	if len(e.Params) < 3 {
		im.heal(HealingLogEntry{
			EntityID: e.ID, Kind: HealSkipped,
			OriginalError:  NewMissingAttribute(e.ID, e.Type, "GlobalId/Name").Error(),
			FixDescription: "skipped entity with fewer than 3 attributes",
		})
		return element.WallElement{}, false
	}
	globalID, _ := paramAt(e.Params, 0)
	name, _ := paramAt(e.Params, 2)

	id := im.resolveGlobalID(e.ID, unquote(globalID))
	start, end := im.extractWallGeometry(e)

	return element.WallElement{
		IDValue:   id,
		Metadata:  element.Metadata{Name: unquote(name)},
		Start:     start,
		End:       end,
		BaseZ:     0,
		Height:    toMillimetres(defaultWallHeight),
		Thickness: toMillimetres(defaultWallThickness),
		WallType:  "Basic",
	}, true
}

// extractWallGeometry walks ObjectPlacement -> IFCAXIS2PLACEMENT3D ->
// IFCCARTESIANPOINT to recover an origin, defaulting to a unit segment
// from the origin when placement is absent or unresolvable. Ported from
// import.rs's extract_wall_geometry, which makes the same simplification
// (it never reads the wall's actual length from its representation).
func (im *Importer) extractWallGeometry(e Entity) (mathx.Point2, mathx.Point2) {
	defaultStart, defaultEnd := mathx.Point2{X: 0, Y: 0}, mathx.Point2{X: 1000, Y: 0}

	placementRef, ok := paramAt(e.Params, 5)
	if !ok || placementRef == "$" {
		return defaultStart, defaultEnd
	}
	placementID, ok := parseRef(placementRef)
	if !ok {
		return defaultStart, defaultEnd
	}
	placement, ok := im.entities[placementID]
	if !ok {
		im.heal(HealingLogEntry{
			EntityID: e.ID, Kind: HealDefaultApplied,
			OriginalError:  NewBrokenReference(e.ID, placementID).Error(),
			FixDescription: "defaulted to unit segment from origin",
		})
		return defaultStart, defaultEnd
	}
	if placement.Type != "IFCLOCALPLACEMENT" || len(placement.Params) == 0 {
		return defaultStart, defaultEnd
	}
	axisRef, ok := paramAt(placement.Params, 1)
	if !ok {
		return defaultStart, defaultEnd
	}
	axisID, ok := parseRef(axisRef)
	if !ok {
		return defaultStart, defaultEnd
	}
	axis, ok := im.entities[axisID]
	if !ok {
		return defaultStart, defaultEnd
	}
	originRef, ok := paramAt(axis.Params, 0)
	if !ok {
		return defaultStart, defaultEnd
	}
	originID, ok := parseRef(originRef)
	if !ok {
		return defaultStart, defaultEnd
	}
	origin, ok := im.entities[originID]
	if !ok || origin.Type != "IFCCARTESIANPOINT" || len(origin.Params) == 0 {
		return defaultStart, defaultEnd
	}
	coords := parseFloats(origin.Params[0])
	if len(coords) < 2 {
		return defaultStart, defaultEnd
	}
	x, y := im.clampCoordinate(e.ID, "x", coords[0]), im.clampCoordinate(e.ID, "y", coords[1])
	start := mathx.Point2{X: toMillimetres(x), Y: toMillimetres(y)}
	return start, mathx.Point2{X: start.X + 1000, Y: start.Y}
}

// clampCoordinate clamps value (in metres) to ±maxCoordinateMetres,
// logging a CoordinateClamped healing entry when it fires.
func (im *Importer) clampCoordinate(entityID uint64, axis string, value float64) float64 {
	if value >= -maxCoordinateMetres && value <= maxCoordinateMetres {
		return value
	}
	clamped := value
	if clamped > maxCoordinateMetres {
		clamped = maxCoordinateMetres
	} else if clamped < -maxCoordinateMetres {
		clamped = -maxCoordinateMetres
	}
	im.heal(HealingLogEntry{
		EntityID: entityID, Kind: HealCoordinateClamped,
		OriginalError:  NewCoordinateOutOfRange(entityID, axis, value, -maxCoordinateMetres, maxCoordinateMetres).Error(),
		FixDescription: "clamped coordinate to valid range",
	})
	return clamped
}

// resolveGlobalID decodes globalID's first 22 hex characters back to a
// UUID, the inverse of export.go's generateGlobalID, falling back to a
// fresh UUID (logged as ReferenceResolved) when it doesn't parse, per
// spec.md §7 / import.rs's parse_global_id_to_uuid.
func (im *Importer) resolveGlobalID(entityID uint64, globalID string) string {
	if len(globalID) >= 22 {
		padded := globalID[:22] + strings.Repeat("0", 32-22)
		if raw, err := hex.DecodeString(padded); err == nil && len(raw) == 16 {
			var u uuid.UUID
			copy(u[:], raw)
			return u.String()
		}
	}
	im.heal(HealingLogEntry{
		EntityID: entityID, Kind: HealReferenceResolved,
		OriginalError:  NewMissingAttribute(entityID, "unknown", "GlobalId").Error(),
		FixDescription: "generated fresh UUID for unparseable GlobalId",
	})
	return uuid.NewString()
}

// ExtractRooms extracts every IFCSPACE entity into a RoomElement. Room
// boundary_points are never recovered from STEP geometry (IFCSPACE in this
// importer carries no representation parsing, matching import.rs), so
// rooms import with an empty boundary and an InvalidEntityGeometry healing entry noted
// for the caller to re-derive from the live topology graph instead.
func (im *Importer) ExtractRooms() []element.RoomElement {
	var rooms []element.RoomElement
	for _, e := range im.entitiesByType("IFCSPACE") {
		r, ok := im.parseRoom(e)
		if ok {
			rooms = append(rooms, r)
		}
	}
	im.stats.RoomsImported = len(rooms)
	return rooms
}

func (im *Importer) parseRoom(e Entity) (element.RoomElement, bool) {
	globalID, _ := paramAt(e.Params, 0)
	number, _ := paramAt(e.Params, 2)
	name, _ := paramAt(e.Params, 3)

	id := im.resolveGlobalID(e.ID, unquote(globalID))
	roomName := unquote(name)
	if roomName == "" {
		roomName = unquote(number)
	}

	im.heal(HealingLogEntry{
		EntityID: e.ID, Kind: HealDefaultApplied,
		OriginalError:  NewInvalidEntityGeometry(e.ID, "IFCSPACE carries no parsed boundary representation").Error(),
		FixDescription: "imported with empty boundary; re-derive from topology graph",
	})

	return element.RoomElement{
		IDValue:  id,
		Metadata: element.Metadata{Name: roomName},
		Number:   unquote(number),
		Height:   toMillimetres(defaultRoomHeight),
	}, true
}

// ExtractFloors extracts every IFCSLAB entity into a FloorElement, the same
// boundary-less simplification as ExtractRooms.
func (im *Importer) ExtractFloors() []element.FloorElement {
	var floors []element.FloorElement
	for _, e := range im.entitiesByType("IFCSLAB") {
		f, ok := im.parseFloor(e)
		if ok {
			floors = append(floors, f)
		}
	}
	im.stats.FloorsImported = len(floors)
	return floors
}

func (im *Importer) parseFloor(e Entity) (element.FloorElement, bool) {
	globalID, _ := paramAt(e.Params, 0)
	name, _ := paramAt(e.Params, 2)
	id := im.resolveGlobalID(e.ID, unquote(globalID))

	return element.FloorElement{
		IDValue:   id,
		Metadata:  element.Metadata{Name: unquote(name)},
		Thickness: toMillimetres(defaultFloorThickness),
		Level:     0,
	}, true
}
