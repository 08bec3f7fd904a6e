package game

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch is returned when two coordinate vectors of different
// lengths are combined.
var ErrDimensionMismatch = errors.New("vectors of different lengths")

// Vec2 is a 2D position, velocity or offset.
type Vec2 struct {
	X, Y float64
}

// FromAngle returns the vector of length mag pointing along angle (radians).
func FromAngle(angle, mag float64) Vec2 {
	return Vec2{X: mag * math.Cos(angle), Y: mag * math.Sin(angle)}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

// DistSq is the squared distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).LenSq() }

// Slice returns the vector as a two element coordinate slice.
func (v Vec2) Slice() []float64 { return []float64{v.X, v.Y} }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %v (%d), %v (%d)", ErrDimensionMismatch, a, len(a), b, len(b))
	}
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// PointAtOffset extends the line running from b through a by length past a.
// A negative length walks back toward (and past) b. When a and b coincide the
// direction is undefined and a copy of a is returned.
func PointAtOffset(a, b []float64, length float64) ([]float64, error) {
	ab, err := Distance(a, b)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	copy(out, a)
	if ab == 0 {
		return out, nil
	}
	for i := range a {
		out[i] += (a[i] - b[i]) / ab * length
	}
	return out, nil
}

// IsLeftTurn reports whether p lies to the left of the directed line a→b.
func IsLeftTurn(a, b, p Vec2) bool {
	return b.Sub(a).Cross(p.Sub(a)) > 0
}

// PointInCircle reports whether p lies within (or on) the circle at c with
// radius r.
func PointInCircle(p, c Vec2, r float64) bool {
	return p.DistSq(c) <= r*r
}

// wrapAngle folds an angle into [0, 2π).
func wrapAngle(a float64) float64 {
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	for a < 0 {
		a += 2 * math.Pi
	}
	// A tiny negative angle plus 2π rounds up to exactly 2π.
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
