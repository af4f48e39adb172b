package crdt

import "math"

// ReplicaId identifies a replica (user/session) contributing operations.
type ReplicaId string

// VectorClock tracks, per replica, how many operations that replica has
// produced. It orders operations causally across replicas without a
// shared clock.
type VectorClock struct {
	counters map[ReplicaId]uint64
}

// NewVectorClock returns an empty clock.
func NewVectorClock() VectorClock {
	return VectorClock{counters: make(map[ReplicaId]uint64)}
}

// Increment bumps replica's counter, saturating at math.MaxUint64 rather
// than wrapping.
func (c *VectorClock) Increment(replica ReplicaId) {
	if c.counters == nil {
		c.counters = make(map[ReplicaId]uint64)
	}
	cur := c.counters[replica]
	if cur < math.MaxUint64 {
		cur++
	}
	c.counters[replica] = cur
}

// Get returns replica's counter, or 0 if replica has never been seen.
func (c VectorClock) Get(replica ReplicaId) uint64 {
	return c.counters[replica]
}

// Merge folds other into c by taking the point-wise maximum of every
// replica's counter.
func (c *VectorClock) Merge(other VectorClock) {
	if c.counters == nil {
		c.counters = make(map[ReplicaId]uint64)
	}
	for replica, t := range other.counters {
		if t > c.counters[replica] {
			c.counters[replica] = t
		}
	}
}

// HappenedBefore reports whether c causally precedes other: every
// replica's counter in c is <= the corresponding counter in other, and at
// least one is strictly less.
func (c VectorClock) HappenedBefore(other VectorClock) bool {
	dominated := false
	for replica, t := range c.counters {
		ot := other.counters[replica]
		if t > ot {
			return false
		}
		if t < ot {
			dominated = true
		}
	}
	for replica, ot := range other.counters {
		if _, ok := c.counters[replica]; !ok && ot > 0 {
			dominated = true
		}
	}
	return dominated
}

// Equal reports whether c and other agree on every replica's counter
// (absent entries count as 0).
func (c VectorClock) Equal(other VectorClock) bool {
	seen := make(map[ReplicaId]bool, len(c.counters)+len(other.counters))
	for r := range c.counters {
		seen[r] = true
	}
	for r := range other.counters {
		seen[r] = true
	}
	for r := range seen {
		if c.counters[r] != other.counters[r] {
			return false
		}
	}
	return true
}

// IsConcurrent reports whether neither clock happened-before the other
// and the two clocks are not equal.
func (c VectorClock) IsConcurrent(other VectorClock) bool {
	return !c.HappenedBefore(other) && !other.HappenedBefore(c) && !c.Equal(other)
}

// Clone returns an independent copy of c. VectorClock's zero value is
// usable directly, but copying a non-zero VectorClock by plain assignment
// shares its underlying map — callers that need to mutate one copy
// without affecting the other must call Clone.
func (c VectorClock) Clone() VectorClock {
	cp := make(map[ReplicaId]uint64, len(c.counters))
	for r, t := range c.counters {
		cp[r] = t
	}
	return VectorClock{counters: cp}
}

// Replicas returns every replica this clock has a counter for, in no
// particular order.
func (c VectorClock) Replicas() []ReplicaId {
	out := make([]ReplicaId, 0, len(c.counters))
	for r := range c.counters {
		out = append(out, r)
	}
	return out
}
