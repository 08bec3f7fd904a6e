package game

import "math"

// hullRearOffset is added straight to the facing (in radians) to place the
// two rear hull vertices. It is the historical hull shape; do not convert it.
const hullRearOffset = 140.0

// ShipHull returns the ship's triangle as nose, rear (facing+offset) and rear
// (facing-offset).
func ShipHull(s *Ship) [3]Vec2 {
	h := s.Spec.Height
	return [3]Vec2{
		s.Pos.Add(FromAngle(s.Facing, 2*h)),
		s.Pos.Add(FromAngle(s.Facing+hullRearOffset, h)),
		s.Pos.Add(FromAngle(s.Facing-hullRearOffset, h)),
	}
}

// ShipIntersectsAsteroid tests the ship's hull triangle against the
// asteroid's circle.
//
// Checks, first hit wins:
//  1. a hull vertex lies inside the circle
//  2. the circle centre lies inside the hull
//  3. an edge passes within one radius of the centre, with the closest point
//     inside the edge segment
func ShipIntersectsAsteroid(s *Ship, a *Asteroid) bool {
	hull := ShipHull(s)
	return hullIntersectsCircle(hull, a.Pos, a.Radius)
}

func hullIntersectsCircle(hull [3]Vec2, c Vec2, r float64) bool {
	for _, v := range hull {
		if PointInCircle(v, c, r) {
			return true
		}
	}
	if pointInTriangle(hull, c) {
		return true
	}
	for i := range hull {
		if edgeNearCircle(hull[i], hull[(i+1)%3], c, r) {
			return true
		}
	}
	return false
}

// pointInTriangle reports whether p is on the same side of all three directed
// edges. Either winding is accepted, not only nose, right rear, left rear, so
// a mirrored hull still contains its own centre. Points on an edge count as
// inside.
func pointInTriangle(tri [3]Vec2, p Vec2) bool {
	d0 := edgeSide(tri[0], tri[1], p)
	d1 := edgeSide(tri[1], tri[2], p)
	d2 := edgeSide(tri[2], tri[0], p)
	allPos := d0 >= 0 && d1 >= 0 && d2 >= 0
	allNeg := d0 <= 0 && d1 <= 0 && d2 <= 0
	return allPos || allNeg
}

// edgeSide is (b.y-a.y)*(p.x-a.x) - (b.x-a.x)*(p.y-a.y).
func edgeSide(a, b, p Vec2) float64 {
	return (b.Y-a.Y)*(p.X-a.X) - (b.X-a.X)*(p.Y-a.Y)
}

// edgeNearCircle projects the centre onto the segment a→b. Only a projection
// falling strictly between the endpoints counts; the endpoints themselves are
// covered by the vertex check.
func edgeNearCircle(a, b, c Vec2, r float64) bool {
	toC := c.Sub(a)
	edge := b.Sub(a)
	k := toC.Dot(edge)
	if k <= 0 {
		return false
	}
	length := edge.Len()
	k /= length
	if k >= length {
		return false
	}
	// Rounding can push the squared distance of a point on the line below 0.
	return math.Sqrt(math.Max(toC.LenSq()-k*k, 0)) <= r
}

// ParticleInAsteroid reports whether the particle sits inside the asteroid.
func ParticleInAsteroid(p *Particle, a *Asteroid) bool {
	return a.Contains(p.Pos)
}
