package ifcio

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"

	"github.com/pensaer/geokernel/element"
)

// ProjectMetadata is the IFCPROJECT/IFCPERSON/IFCORGANIZATION metadata
// attached to an export, ported from export.rs's ProjectMetadata.
type ProjectMetadata struct {
	Name         string
	Author       string
	Organization string
	Description  string
	Timestamp    string // ISO-8601; caller-supplied since this package never reads the clock
}

// DefaultProjectMetadata mirrors export.rs's Default impl.
func DefaultProjectMetadata() ProjectMetadata {
	return ProjectMetadata{Name: "Untitled Project", Author: "Unknown", Organization: "Pensaer"}
}

// Exporter collects elements and serializes them to IFC STEP text.
// Ported from export.rs's IfcExporter.
type Exporter struct {
	Version  Version
	Metadata ProjectMetadata

	walls   []element.WallElement
	doors   []element.DoorElement
	windows []element.WindowElement
	rooms   []element.RoomElement
	floors  []element.FloorElement
	roofs   []element.RoofElement
}

// NewExporter returns an exporter with IFC4 and the given project/author,
// other metadata defaulted.
func NewExporter(projectName, author string) *Exporter {
	md := DefaultProjectMetadata()
	md.Name = projectName
	md.Author = author
	return &Exporter{Version: IFC4, Metadata: md}
}

func (x *Exporter) AddWall(w element.WallElement)     { x.walls = append(x.walls, w) }
func (x *Exporter) AddDoor(d element.DoorElement)     { x.doors = append(x.doors, d) }
func (x *Exporter) AddWindow(w element.WindowElement) { x.windows = append(x.windows, w) }
func (x *Exporter) AddRoom(r element.RoomElement)     { x.rooms = append(x.rooms, r) }
func (x *Exporter) AddFloor(f element.FloorElement)   { x.floors = append(x.floors, f) }
func (x *Exporter) AddRoof(r element.RoofElement)     { x.roofs = append(x.roofs, r) }

// ElementCount returns the total number of elements queued for export.
func (x *Exporter) ElementCount() int {
	return len(x.walls) + len(x.doors) + len(x.windows) + len(x.rooms) + len(x.floors) + len(x.roofs)
}

// Export serializes the added walls, rooms and floors to an ISO-10303-21
// STEP text, structurally ported from export.rs's IfcExporter::export: the
// same project/owner-history/person+org/context/units/site/building/storey
// boilerplate, the same aggregate chaining, and one
// IFCRELCONTAINEDINSPATIALSTRUCTURE tying every written element to the
// storey. Doors, windows and roofs added through AddDoor, AddWindow and
// AddRoof count toward ElementCount but are not written.
func (x *Exporter) Export() (string, error) {
	var out strings.Builder
	var id uint64 = 1
	next := func() uint64 { v := id; id++; return v }

	out.WriteString("ISO-10303-21;\n")
	out.WriteString("HEADER;\n")
	out.WriteString("FILE_DESCRIPTION(('ViewDefinition [CoordinationView]'),'2;1');\n")
	out.WriteString("FILE_NAME(" +
		quote(x.Metadata.Name) + "," + quote(x.Metadata.Timestamp) + ",(" + quote(x.Metadata.Author) + "),(" +
		quote(x.Metadata.Organization) + "),'Pensaer','Pensaer IFC Exporter','');\n")
	out.WriteString("FILE_SCHEMA((" + quote(x.Version.String()) + "));\n")
	out.WriteString("ENDSEC;\n\n")
	out.WriteString("DATA;\n")

	projectID := next()
	ownerHistoryID := next()
	personOrgID := next()
	personID := next()
	orgID := next()
	contextID := next()
	axisID := next()
	originID := next()
	unitsID := next()
	lengthUnitID := next()
	areaUnitID := next()
	siteID := next()
	buildingID := next()
	storeyID := next()

	out.WriteString(line(projectID, "IFCPROJECT", quote(generateGlobalID()), ref(ownerHistoryID),
		quote(x.Metadata.Name), quote(x.Metadata.Description), "*", "*", "*", refList(contextID), ref(unitsID)))
	out.WriteString(line(ownerHistoryID, "IFCOWNERHISTORY", ref(personOrgID), "$", ".NOCHANGE.", "$", "$", "$", "$", "0"))
	out.WriteString(line(personOrgID, "IFCPERSONANDORGANIZATION", ref(personID), ref(orgID), "$"))
	out.WriteString(line(personID, "IFCPERSON", "$", quote(x.Metadata.Author), "''", "()", "$", "$", "$", "$"))
	out.WriteString(line(orgID, "IFCORGANIZATION", "$", quote(x.Metadata.Organization), "''", "$", "$"))
	out.WriteString(line(contextID, "IFCGEOMETRICREPRESENTATIONCONTEXT", "$", quote("Model"), "3", "1.0E-05", ref(axisID), "*", "$"))
	out.WriteString(line(axisID, "IFCAXIS2PLACEMENT3D", ref(originID), "*", "$"))
	out.WriteString(line(originID, "IFCCARTESIANPOINT", "(0.,0.,0.)"))
	out.WriteString(line(unitsID, "IFCUNITASSIGNMENT", refList(lengthUnitID, areaUnitID)))
	out.WriteString(line(lengthUnitID, "IFCSIUNIT", "*", ".LENGTHUNIT.", "$", ".METRE."))
	out.WriteString(line(areaUnitID, "IFCSIUNIT", "*", ".AREAUNIT.", "$", ".SQUARE_METRE."))
	out.WriteString(line(siteID, "IFCSITE", quote(generateGlobalID()), ref(ownerHistoryID),
		quote("Default Site"), "$", "$", "$", "$", "$", ".ELEMENT.", "$", "$", "$", "$", "$"))
	out.WriteString(line(buildingID, "IFCBUILDING", quote(generateGlobalID()), ref(ownerHistoryID),
		quote("Default Building"), "$", "$", "$", "$", "$", ".ELEMENT.", "$", "$", "$"))
	out.WriteString(line(storeyID, "IFCBUILDINGSTOREY", quote(generateGlobalID()), ref(ownerHistoryID),
		quote("Level 1"), "$", "$", "$", "$", "$", ".ELEMENT.", "0."))
	out.WriteString(line(next(), "IFCRELAGGREGATES", quote(generateGlobalID()), ref(ownerHistoryID), "$", "$", ref(projectID), refList(siteID)))
	out.WriteString(line(next(), "IFCRELAGGREGATES", quote(generateGlobalID()), ref(ownerHistoryID), "$", "$", ref(siteID), refList(buildingID)))
	out.WriteString(line(next(), "IFCRELAGGREGATES", quote(generateGlobalID()), ref(ownerHistoryID), "$", "$", ref(buildingID), refList(storeyID)))

	var elementIDs []uint64
	for _, w := range x.walls {
		wallID := next()
		elementIDs = append(elementIDs, wallID)
		out.WriteString(x.exportWall(wallID, w, &next, ownerHistoryID))
	}
	for _, r := range x.rooms {
		roomID := next()
		elementIDs = append(elementIDs, roomID)
		out.WriteString(x.exportRoom(roomID, r, &next, ownerHistoryID))
	}
	for _, f := range x.floors {
		floorID := next()
		elementIDs = append(elementIDs, floorID)
		out.WriteString(x.exportFloor(floorID, f, &next, ownerHistoryID))
	}

	if len(elementIDs) > 0 {
		out.WriteString(line(next(), "IFCRELCONTAINEDINSPATIALSTRUCTURE", quote(generateGlobalID()),
			ref(ownerHistoryID), "$", "$", refList(elementIDs...), ref(storeyID)))
	}

	out.WriteString("ENDSEC;\n")
	out.WriteString("END-ISO-10303-21;\n")
	return out.String(), nil
}

func (x *Exporter) exportWall(wallID uint64, w element.WallElement, next *func() uint64, ownerHistoryID uint64) string {
	var out strings.Builder
	placementID := (*next)()
	axisID := (*next)()
	originID := (*next)()
	zDirID := (*next)()
	xDirID := (*next)()

	dir := w.End.Sub(w.Start)
	length := dir.Length()
	dirX, dirY := 1.0, 0.0
	if length > 0 {
		dirX, dirY = dir.X/length, dir.Y/length
	}

	out.WriteString(line(placementID, "IFCLOCALPLACEMENT", "$", ref(axisID)))
	out.WriteString(line(axisID, "IFCAXIS2PLACEMENT3D", ref(originID), ref(zDirID), ref(xDirID)))
	out.WriteString(line(originID, "IFCCARTESIANPOINT", "("+float6(toMetres(w.Start.X))+","+float6(toMetres(w.Start.Y))+","+float6(toMetres(w.BaseZ))+")"))
	out.WriteString(line(zDirID, "IFCDIRECTION", "(0.,0.,1.)"))
	out.WriteString(line(xDirID, "IFCDIRECTION", "("+float6(dirX)+","+float6(dirY)+",0.)"))

	wallType := w.WallType
	if wallType == "" {
		wallType = "Basic"
	}
	out.WriteString(line(wallID, "IFCWALLSTANDARDCASE", quote(generateGlobalID()), ref(ownerHistoryID),
		quote(w.Metadata.Name), quote(wallType), "$", ref(placementID), "$", "$", ".NOTDEFINED."))
	return out.String()
}

func (x *Exporter) exportRoom(roomID uint64, r element.RoomElement, next *func() uint64, ownerHistoryID uint64) string {
	var out strings.Builder
	placementID := (*next)()
	axisID := (*next)()
	originID := (*next)()

	centroid := r.Centroid()
	out.WriteString(line(placementID, "IFCLOCALPLACEMENT", "$", ref(axisID)))
	out.WriteString(line(axisID, "IFCAXIS2PLACEMENT3D", ref(originID), "$", "$"))
	out.WriteString(line(originID, "IFCCARTESIANPOINT", "("+float6(toMetres(centroid.X))+","+float6(toMetres(centroid.Y))+",0.)"))

	name := r.Metadata.Name
	if name == "" {
		name = r.Number
	}
	out.WriteString(line(roomID, "IFCSPACE", quote(generateGlobalID()), ref(ownerHistoryID),
		quote(r.Number), quote(name), "''", "$", ref(placementID), "$", ".INTERNAL.", ".ELEMENT.", "$"))
	return out.String()
}

func (x *Exporter) exportFloor(floorID uint64, f element.FloorElement, next *func() uint64, ownerHistoryID uint64) string {
	var out strings.Builder
	placementID := (*next)()
	axisID := (*next)()
	originID := (*next)()

	out.WriteString(line(placementID, "IFCLOCALPLACEMENT", "$", ref(axisID)))
	out.WriteString(line(axisID, "IFCAXIS2PLACEMENT3D", ref(originID), "$", "$"))
	out.WriteString(line(originID, "IFCCARTESIANPOINT", "(0.,0.,"+float6(toMetres(f.Level))+")"))

	out.WriteString(line(floorID, "IFCSLAB", quote(generateGlobalID()), ref(ownerHistoryID),
		quote(f.Metadata.Name), "''", "$", ref(placementID), "$", "$", ".FLOOR."))
	return out.String()
}

// generateGlobalID mints a 22-character IFC GlobalId the same simplified
// way export.rs's generate_global_id does: a fresh UUID, hex-encoded
// upper-case, truncated to 22 characters (not real base64 IFC GlobalId
// encoding, which this kernel's own import side never requires either).
func generateGlobalID() string {
	id := uuid.New()
	hexStr := strings.ToUpper(hex.EncodeToString(id[:]))
	return hexStr[:22]
}
