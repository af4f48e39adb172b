package mathx

import "math"

// BBox2 is an axis-aligned 2D bounding box with Min <= Max per axis,
// established on construction.
type BBox2 struct {
	Min, Max Point2
}

// NewBBox2 returns the bounding box of an arbitrary number of points.
// Panics if called with zero points — callers always have at least one
// point in hand (this is an internal-use constructor, never fed untrusted
// empty input).
func NewBBox2(pts ...Point2) BBox2 {
	b := BBox2{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.ExpandPoint(p)
	}
	return b
}

// ExpandPoint returns a box enlarged to include p.
func (b BBox2) ExpandPoint(p Point2) BBox2 {
	return BBox2{
		Min: Point2{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)},
		Max: Point2{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)},
	}
}

// Expand returns a box enlarged by margin on every side.
func (b BBox2) Expand(margin float64) BBox2 {
	return BBox2{
		Min: Point2{b.Min.X - margin, b.Min.Y - margin},
		Max: Point2{b.Max.X + margin, b.Max.Y + margin},
	}
}

// Union returns the smallest box containing both b and o.
func (b BBox2) Union(o BBox2) BBox2 {
	return BBox2{
		Min: Point2{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)},
		Max: Point2{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Intersection returns the overlap of b and o, or (zero, false) if disjoint.
func (b BBox2) Intersection(o BBox2) (BBox2, bool) {
	min := Point2{math.Max(b.Min.X, o.Min.X), math.Max(b.Min.Y, o.Min.Y)}
	max := Point2{math.Min(b.Max.X, o.Max.X), math.Min(b.Max.Y, o.Max.Y)}
	if min.X > max.X || min.Y > max.Y {
		return BBox2{}, false
	}
	return BBox2{Min: min, Max: max}, true
}

// Overlaps reports whether b and o share any area (touching counts).
func (b BBox2) Overlaps(o BBox2) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// Contains reports whether p lies within b (inclusive of the boundary).
func (b BBox2) Contains(p Point2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Corners returns the four corners in CCW order starting at Min.
func (b BBox2) Corners() [4]Point2 {
	return [4]Point2{
		b.Min,
		{b.Max.X, b.Min.Y},
		b.Max,
		{b.Min.X, b.Max.Y},
	}
}

// Center returns the midpoint of the box.
func (b BBox2) Center() Point2 { return b.Min.Lerp(b.Max, 0.5) }

// BBox3 is an axis-aligned 3D bounding box with Min <= Max per axis.
type BBox3 struct {
	Min, Max Point3
}

// NewBBox3 returns the bounding box of an arbitrary number of points.
func NewBBox3(pts ...Point3) BBox3 {
	b := BBox3{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.ExpandPoint(p)
	}
	return b
}

// ExpandPoint returns a box enlarged to include p.
func (b BBox3) ExpandPoint(p Point3) BBox3 {
	return BBox3{
		Min: Point3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)},
		Max: Point3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)},
	}
}

// Expand returns a box enlarged by margin on every side.
func (b BBox3) Expand(margin float64) BBox3 {
	return BBox3{
		Min: Point3{b.Min.X - margin, b.Min.Y - margin, b.Min.Z - margin},
		Max: Point3{b.Max.X + margin, b.Max.Y + margin, b.Max.Z + margin},
	}
}

// Union returns the smallest box containing both b and o.
func (b BBox3) Union(o BBox3) BBox3 {
	return BBox3{
		Min: Point3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Point3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

// Intersection returns the overlap of b and o, or (zero, false) if disjoint.
func (b BBox3) Intersection(o BBox3) (BBox3, bool) {
	min := Point3{math.Max(b.Min.X, o.Min.X), math.Max(b.Min.Y, o.Min.Y), math.Max(b.Min.Z, o.Min.Z)}
	max := Point3{math.Min(b.Max.X, o.Max.X), math.Min(b.Max.Y, o.Max.Y), math.Min(b.Max.Z, o.Max.Z)}
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return BBox3{}, false
	}
	return BBox3{Min: min, Max: max}, true
}

// Overlaps reports whether b and o share any volume (touching counts).
func (b BBox3) Overlaps(o BBox3) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y &&
		b.Min.Z <= o.Max.Z && o.Min.Z <= b.Max.Z
}

// Contains reports whether p lies within b (inclusive of the boundary).
func (b BBox3) Contains(p Point3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Corners returns all eight corners of the box.
func (b BBox3) Corners() [8]Point3 {
	return [8]Point3{
		{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z}, {b.Min.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z}, {b.Max.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z}, {b.Min.X, b.Max.Y, b.Max.Z},
	}
}

// Center returns the midpoint of the box.
func (b BBox3) Center() Point3 { return b.Min.Lerp(b.Max, 0.5) }

// Volume returns the box's volume.
func (b BBox3) Volume() float64 {
	d := b.Max.Sub(b.Min)
	return d.X * d.Y * d.Z
}
