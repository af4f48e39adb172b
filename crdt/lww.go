package crdt

// MergeOutcome tags whether an LWWRegister merge was clean or required a
// conflict tiebreak.
type MergeOutcome int

const (
	// Clean means one side's timestamp strictly dominated, or both sides
	// already agreed.
	Clean MergeOutcome = iota
	// Conflict means both sides wrote at the same vector-clock timestamp
	// from different replicas; resolved by replica-id ordering.
	Conflict
)

// MergeResult reports the resolved value of an LWWRegister merge and
// whether resolving it required breaking a tie.
type MergeResult struct {
	Value       interface{}
	Outcome     MergeOutcome
	Description string
}

// LWWRegister is a last-writer-wins register: the value with the higher
// vector-clock timestamp for its writing replica wins; ties are broken by
// replica id.
type LWWRegister struct {
	value     interface{}
	timestamp uint64
	replica   ReplicaId
}

// NewLWWRegister returns a register holding value with no writer recorded
// yet (timestamp 0).
func NewLWWRegister(value interface{}) LWWRegister {
	return LWWRegister{value: value}
}

// Value returns the register's current value.
func (r LWWRegister) Value() interface{} { return r.value }

// Timestamp returns the vector-clock timestamp of the current value's
// writer.
func (r LWWRegister) Timestamp() uint64 { return r.timestamp }

// Set writes value on behalf of replica, reading replica's counter out of
// clock as the write's timestamp. The write only takes effect if it wins
// against the register's current writer: a strictly higher timestamp, or
// an equal timestamp from a replica that sorts after the current one.
func (r *LWWRegister) Set(value interface{}, replica ReplicaId, clock VectorClock) {
	ts := clock.Get(replica)
	if ts > r.timestamp || (ts == r.timestamp && replica > r.replica) {
		r.value = value
		r.timestamp = ts
		r.replica = replica
	}
}

// Merge folds other into r, returning the resolved value and whether the
// merge required a replica-id tiebreak.
func (r *LWWRegister) Merge(other LWWRegister) MergeResult {
	switch {
	case r.timestamp > other.timestamp:
		return MergeResult{Value: r.value, Outcome: Clean}
	case other.timestamp > r.timestamp:
		*r = other
		return MergeResult{Value: r.value, Outcome: Clean}
	case r.replica == other.replica:
		return MergeResult{Value: r.value, Outcome: Clean}
	default:
		if other.replica > r.replica {
			*r = other
		}
		return MergeResult{
			Value:       r.value,
			Outcome:     Conflict,
			Description: "concurrent writes at the same vector-clock timestamp, resolved by replica id ordering",
		}
	}
}
