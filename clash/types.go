package clash

import "github.com/pensaer/geokernel/mathx"

// Type classifies a detected clash.
type Type int

const (
	// Duplicate marks two candidates whose AABBs coincide within Tau on
	// all six bounds.
	Duplicate Type = iota
	// Hard marks two candidates whose AABBs overlap by more than Tau on
	// all three axes.
	Hard
	// Clearance marks two disjoint candidates whose gap lies strictly
	// within (Tau, Clearance).
	Clearance
)

func (t Type) String() string {
	switch t {
	case Duplicate:
		return "duplicate"
	case Hard:
		return "hard"
	case Clearance:
		return "clearance"
	default:
		return "unknown"
	}
}

// Candidate is one element offered to clash detection.
type Candidate struct {
	ID      string
	TypeTag string
	AABB    mathx.BBox3
}

// Tolerances bounds Duplicate/Hard classification (Tau) and gates
// Clearance reporting (Clearance <= 0 disables it entirely).
type Tolerances struct {
	Tau       float64
	Clearance float64
}

// DefaultTolerances returns GeomTol for Tau and clearance reporting
// disabled, matching spec §4.K's "only when clearance distance c > 0".
func DefaultTolerances() Tolerances {
	return Tolerances{Tau: mathx.GeomTol, Clearance: 0}
}

// FilterOptions narrows which pairs are considered at all.
type FilterOptions struct {
	// SuppressSameType skips any pair whose TypeTag matches.
	SuppressSameType bool
	// AllowedTypesA, if non-empty, restricts the first side of a pair to
	// these type tags (used by DetectClashesBetween; ignored by
	// DetectClashes, which has no inherent side).
	AllowedTypesA []string
	// AllowedTypesB restricts the second side the same way.
	AllowedTypesB []string
}

func (o FilterOptions) allowsSide(tags []string, tag string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Result is one detected clash between two candidates, by id.
type Result struct {
	A, B          string
	Type          Type
	OverlapCenter *mathx.Point3
	OverlapVolume float64
	ClosestPoint  *mathx.Point3
	GapDistance   float64
}
