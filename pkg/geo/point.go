package geo

import "math"

// Point is a point in the planform view: X chordwise (positive aft),
// Y spanwise (positive toward the right wingtip).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// MirrorY returns p reflected across the X axis (the fuselage centerline).
func (p Point) MirrorY() Point {
	return Point{p.X, -p.Y}
}

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp returns the linear interpolation between p and q at t in [0,1].
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// MidPoint returns the midpoint between p and q.
func MidPoint(p, q Point) Point {
	return p.Lerp(q, 0.5)
}

// Bounds returns the axis-aligned bounding box of the given points.
// Returns zero values for an empty slice.
func Bounds(pts []Point) (min, max Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
