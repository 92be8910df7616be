// Package geom provides the pure 2D hit-testing kernel used by the editor.
// All functions operate in world units; converting screen coordinates
// (and scaling thresholds by the current zoom) is the caller's job.
package geom

import "math"

// Point represents a 2D point in world units.
type Point struct {
	X, Y float32
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// PointInPolygon reports whether (x, y) lies inside the polygon using the
// even-odd (ray casting) rule: a horizontal ray at y toggles containment
// every time it crosses an edge. Self-intersecting polygons follow the
// parity rule mechanically. Polygons with fewer than 3 points never
// contain anything.
func PointInPolygon(x, y float32, points []Point) bool {
	n := len(points)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := points[i]
		vj := points[j]
		if (vi.Y > y) != (vj.Y > y) &&
			x < (vj.X-vi.X)*(y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PointAt returns the index of the first point within threshold of (x, y).
// Ties are broken by scan order, so the lowest index wins. The threshold
// is in world units; callers divide their pixel threshold by the current
// zoom so the hit radius stays constant on screen.
func PointAt(points []Point, x, y, threshold float32) (int, bool) {
	q := Point{X: x, Y: y}
	for i, p := range points {
		if Dist(p, q) <= threshold {
			return i, true
		}
	}
	return 0, false
}

// EdgeHit describes a polygon edge near a query point. Edge i runs from
// points[i] to points[(i+1) % len(points)]. Insert is the clamped
// projection of the query point onto the edge, which is the position a
// newly inserted point would occupy.
type EdgeHit struct {
	Edge   int
	Insert Point
}

// EdgeAt returns the first edge whose perpendicular distance to (x, y) is
// within threshold. The query point is projected onto each segment with
// the projection parameter clamped to [0, 1]. Zero-length edges are
// skipped. The lowest edge index wins.
func EdgeAt(points []Point, x, y, threshold float32) (EdgeHit, bool) {
	n := len(points)
	if n < 2 {
		return EdgeHit{}, false
	}

	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]

		dx := b.X - a.X
		dy := b.Y - a.Y
		lengthSq := dx*dx + dy*dy
		if lengthSq == 0 {
			continue
		}

		t := ((x-a.X)*dx + (y-a.Y)*dy) / lengthSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}

		proj := Point{X: a.X + t*dx, Y: a.Y + t*dy}
		if Dist(proj, Point{X: x, Y: y}) <= threshold {
			return EdgeHit{Edge: i, Insert: proj}, true
		}
	}
	return EdgeHit{}, false
}

// CanClose reports whether a click at (x, y) should close an in-progress
// polygon: at least 3 points drawn and the click within threshold of the
// first point.
func CanClose(points []Point, x, y, threshold float32) bool {
	if len(points) < 3 {
		return false
	}
	return Dist(points[0], Point{X: x, Y: y}) <= threshold
}

// SignedArea computes the signed area of the polygon using the shoelace
// formula. Positive for counter-clockwise winding, negative for clockwise.
func SignedArea(points []Point) float32 {
	n := len(points)
	if n < 3 {
		return 0
	}

	var area float32
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].X * points[j].Y
		area -= points[j].X * points[i].Y
	}
	return area / 2
}
