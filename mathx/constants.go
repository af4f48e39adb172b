package mathx

// Canonical tolerance hierarchy, all in millimeters (the model's working
// unit) except Epsilon, which is a dimensionless relative tolerance used by
// Vector normalization. Per spec §6/§8:
//
//	UiSnap(10) > GeomTol(1) > SnapMerge(0.5) > Quantize(0.01)
const (
	// UiSnap is the coarse pointer/authoring-UI snap radius. Not enforced by
	// the kernel itself; exported so host UIs share one source of truth.
	UiSnap = 10.0

	// GeomTol is the general-purpose geometric tolerance used for collinearity
	// and angle comparisons during healing.
	GeomTol = 1.0

	// SnapMerge is the distance below which two unpinned topology nodes are
	// coalesced by the snap-merge healing pass.
	SnapMerge = 0.5

	// Quantize is the grid spacing that all persisted floats are pinned to.
	Quantize = 0.01

	// Epsilon is the minimum vector magnitude treated as non-zero.
	Epsilon = 1e-10
)
