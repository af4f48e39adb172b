package topology

// Delta is the set of changes a single command produced, in the shape the
// external command surface serializes (spec §6): created/modified/deleted
// element ids plus the affected-node set healing needs to know which rooms
// to invalidate.
type Delta struct {
	Created       []string
	Modified      []string
	Deleted       []string
	AffectedNodes []NodeId
}

// Merge appends o's entries onto d in place.
func (d *Delta) Merge(o Delta) {
	d.Created = append(d.Created, o.Created...)
	d.Modified = append(d.Modified, o.Modified...)
	d.Deleted = append(d.Deleted, o.Deleted...)
	d.AffectedNodes = append(d.AffectedNodes, o.AffectedNodes...)
}

// AddAffected appends ids to d.AffectedNodes, skipping duplicates.
func (d *Delta) AddAffected(ids ...NodeId) {
	for _, id := range ids {
		dup := false
		for _, have := range d.AffectedNodes {
			if have == id {
				dup = true
				break
			}
		}
		if !dup {
			d.AffectedNodes = append(d.AffectedNodes, id)
		}
	}
}
