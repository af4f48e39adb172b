package crdt

import "github.com/pensaer/geokernel/mathx"

// OperationKind tags which fields of Operation are meaningful.
type OperationKind int

const (
	Create OperationKind = iota
	Update
	Delete
	Move
)

func (k OperationKind) String() string {
	switch k {
	case Create:
		return "create"
	case Update:
		return "update"
	case Delete:
		return "delete"
	case Move:
		return "move"
	default:
		return "unknown"
	}
}

// Operation is one entry in a replicated edit history. Only the fields
// relevant to Kind are populated — e.g. a Delete only sets ElementID, a
// Move only sets ElementID/From/To.
type Operation struct {
	ID        string
	Kind      OperationKind
	ElementType string
	ElementID string
	Property  string
	OldValue  string
	NewValue  string
	From, To  mathx.Point3
	Clock     VectorClock
	Replica   ReplicaId
	WallTime  uint64
}

// HappenedBefore reports whether op causally precedes other.
func (op Operation) HappenedBefore(other Operation) bool {
	return op.Clock.HappenedBefore(other.Clock)
}

// IsConcurrent reports whether op and other are causally unordered.
func (op Operation) IsConcurrent(other Operation) bool {
	return op.Clock.IsConcurrent(other.Clock)
}
