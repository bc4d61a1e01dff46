package geom

import (
	"math"
	"math/big"

	"github.com/golang/geo/r3"
)

// Point2 is a ground-plane point (the projection of a 3-D point onto z=0).
type Point2 struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point2) Sub(q Point2) Vector2 { return Vector2{p.X - q.X, p.Y - q.Y} }

// Add returns p+v.
func (p Point2) Add(v Vector2) Point2 { return Point2{p.X + v.X, p.Y + v.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point2) Dist(q Point2) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// SquaredDist returns the squared Euclidean distance between p and q,
// avoiding the sqrt — used throughout linker's distance tables.
func (p Point2) SquaredDist(q Point2) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Vector2 is a 2-D displacement.
type Vector2 struct {
	X, Y float64
}

// Length returns the Euclidean norm of v.
func (v Vector2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged (degenerate input, not an error — callers that divide by a
// direction must check for it explicitly).
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector2{v.X / l, v.Y / l}
}

// Perp returns the counter-clockwise perpendicular of v.
func (v Vector2) Perp() Vector2 { return Vector2{-v.Y, v.X} }

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float64 { return v.X*w.X + v.Y*w.Y }

// Scale returns v scaled by s.
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Point3 is a 3-D point in the inexact kernel, backed by r3.Vector.
type Point3 struct {
	r3.Vector
}

// NewPoint3 builds a Point3 from coordinates.
func NewPoint3(x, y, z float64) Point3 { return Point3{r3.Vector{X: x, Y: y, Z: z}} }

// Project2 drops the z coordinate.
func (p Point3) Project2() Point2 { return Point2{p.X, p.Y} }

// Sub returns p-q as a free vector.
func (p Point3) Sub(q Point3) r3.Vector { return p.Vector.Sub(q.Vector) }

// Add returns p+v.
func (p Point3) Add(v r3.Vector) Point3 { return Point3{p.Vector.Add(v)} }

// Lerp linearly interpolates between p and q at parameter t in [0,1].
func (p Point3) Lerp(q Point3, t float64) Point3 {
	return Point3{p.Vector.Add(q.Vector.Sub(p.Vector).Mul(t))}
}

// ExactPoint3 is the rational-coordinate point used exclusively through the
// boolean corefinement pipeline in package integrate, so that cascaded
// rounding never creeps into repeated mesh splits.
type ExactPoint3 struct {
	X, Y, Z *big.Rat
}

// NewExactPoint3 builds an ExactPoint3 from float64 coordinates.
func NewExactPoint3(x, y, z float64) ExactPoint3 {
	return ExactPoint3{
		X: new(big.Rat).SetFloat64(x),
		Y: new(big.Rat).SetFloat64(y),
		Z: new(big.Rat).SetFloat64(z),
	}
}

// Inexact converts back to the float64 kernel. Called once per mesh at the
// end of each integration.
func (e ExactPoint3) Inexact() Point3 {
	x, _ := e.X.Float64()
	y, _ := e.Y.Float64()
	z, _ := e.Z.Float64()
	return NewPoint3(x, y, z)
}

// Equal reports whether e and o represent exactly the same rational point.
func (e ExactPoint3) Equal(o ExactPoint3) bool {
	return e.X.Cmp(o.X) == 0 && e.Y.Cmp(o.Y) == 0 && e.Z.Cmp(o.Z) == 0
}
