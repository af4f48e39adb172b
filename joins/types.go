package joins

import "github.com/pensaer/geokernel/mathx"

// JoinType classifies how two (or more) walls meet.
type JoinType int

const (
	// Butt: walls continue in roughly the same or exactly opposite direction.
	Butt JoinType = iota
	// LJoin: walls meet at roughly a right angle.
	LJoin
	// Miter: walls meet at some other angle, needing a full miter cut.
	Miter
	// TJoin: one wall's endpoint lands in the interior of another's baseline.
	TJoin
	// Cross: two wall baselines properly cross.
	Cross
)

// String returns the join type's name.
func (t JoinType) String() string {
	switch t {
	case Butt:
		return "Butt"
	case LJoin:
		return "LJoin"
	case Miter:
		return "Miter"
	case TJoin:
		return "TJoin"
	case Cross:
		return "Cross"
	default:
		return "Unknown"
	}
}

// WallRef is the minimal wall description the detector needs: an id, its
// centerline baseline, and its thickness.
type WallRef struct {
	ID        string
	Start     mathx.Point2
	End       mathx.Point2
	Thickness float64
}

// Baseline returns the wall's centerline as a segment.
func (w WallRef) Baseline() mathx.Segment2 { return mathx.Segment2{A: w.Start, B: w.End} }

// WallProfile is the four corners of a wall's end, trimmed to meet its
// join partner(s): inner/outer are the two long edges of the extruded
// wall (offset by half thickness along the wall's outward normal); near/far
// distinguish the corner nearest the join point from the one one thickness
// further back along the wall.
type WallProfile struct {
	WallID    string
	InnerNear mathx.Point2
	OuterNear mathx.Point2
	OuterFar  mathx.Point2
	InnerFar  mathx.Point2
}

// JoinGeometry is the resolved geometry of one join: the point where the
// walls meet, its classification, and one profile per participating wall.
type JoinGeometry struct {
	JoinPoint    mathx.Point2
	JoinType     JoinType
	WallProfiles []WallProfile
}

// Tolerances bounds join detection: Tau is the distance tolerance (mm),
// Alpha is the angular tolerance (radians).
type Tolerances struct {
	Tau   float64
	Alpha float64
}

// DefaultTolerances returns Tau = mathx.GeomTol, Alpha = 5 degrees.
func DefaultTolerances() Tolerances {
	return Tolerances{Tau: mathx.GeomTol, Alpha: 5.0 * (3.141592653589793 / 180.0)}
}
