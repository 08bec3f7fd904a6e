package game

import (
	"math"
	"testing"
)

// angleDiff returns the signed smallest difference between two angles.
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

func TestShip_TurnLeft_AccumulatesModTwoPi(t *testing.T) {
	spec := DefaultShipSpec()
	s := NewShip(Vec2{400, 300}, spec)
	s.TurnLeft()
	const n = 100
	for i := 0; i < n; i++ {
		s.Update(800, 600)
	}
	want := math.Mod(n*spec.TurnSpeed, 2*math.Pi)
	if math.Abs(angleDiff(s.Facing, want)) > 1e-9 {
		t.Fatalf("facing after %d left turns = %v, want %v", n, s.Facing, want)
	}
}

func TestShip_TurnRight_WrapsBelowZero(t *testing.T) {
	s := NewShip(Vec2{400, 300}, DefaultShipSpec())
	s.TurnRight()
	s.Update(800, 600)
	want := 2*math.Pi - 0.1
	if math.Abs(s.Facing-want) > 1e-9 {
		t.Fatalf("expected facing %v, got %v", want, s.Facing)
	}
}

func TestShip_Facing_StaysInRange(t *testing.T) {
	s := NewShip(Vec2{400, 300}, DefaultShipSpec())
	for i := 0; i < 500; i++ {
		if (i/37)%2 == 0 {
			s.TurnLeft()
		} else {
			s.TurnRight()
		}
		s.Update(800, 600)
		if s.Facing < 0 || s.Facing >= 2*math.Pi {
			t.Fatalf("tick %d: facing %v outside [0, 2π)", i, s.Facing)
		}
	}
}

func TestShip_StopTurn_HoldsFacing(t *testing.T) {
	s := NewShip(Vec2{400, 300}, DefaultShipSpec())
	s.TurnLeft()
	s.Update(800, 600)
	s.StopTurn()
	before := s.Facing
	s.Update(800, 600)
	if s.Facing != before {
		t.Fatalf("facing changed while stationary: %v → %v", before, s.Facing)
	}
}

func TestShip_Thrust_RampsAndClamps(t *testing.T) {
	s := NewShip(Vec2{100, 300}, DefaultShipSpec())
	s.StartBoost()
	wantThrust := []float64{0.4, 0.8, 1.2, 1.6, 2.0, 2.0, 2.0}
	for i, want := range wantThrust {
		s.Update(800, 600)
		if math.Abs(s.Thrust-want) > 1e-9 {
			t.Fatalf("tick %d: thrust = %v, want %v", i+1, s.Thrust, want)
		}
		if s.Thrust > s.Spec.ThrustMax {
			t.Fatalf("tick %d: thrust %v exceeds max", i+1, s.Thrust)
		}
	}
	// Velocity accumulates the thrust of every boosting tick.
	if math.Abs(s.Vel.X-10.0) > 1e-9 || math.Abs(s.Vel.Y) > 1e-9 {
		t.Fatalf("expected velocity (10,0), got %+v", s.Vel)
	}
}

func TestShip_StopBoost_ResetsThrustKeepsDrift(t *testing.T) {
	s := NewShip(Vec2{100, 300}, DefaultShipSpec())
	s.StartBoost()
	s.Update(800, 600)
	s.Update(800, 600)
	s.StopBoost()
	vel := s.Vel
	pos := s.Pos
	s.Update(800, 600)
	if s.Thrust != 0 {
		t.Fatalf("thrust should reset to 0 after boost stops, got %v", s.Thrust)
	}
	if s.Vel != vel {
		t.Fatalf("velocity should be unchanged while coasting: %+v → %+v", vel, s.Vel)
	}
	if s.Pos != pos.Add(vel) {
		t.Fatalf("ship should keep drifting: expected %+v, got %+v", pos.Add(vel), s.Pos)
	}
}

func TestShip_Toggles_Idempotent(t *testing.T) {
	s := NewShip(Vec2{}, DefaultShipSpec())
	s.StartBoost()
	s.StartBoost()
	if s.Boost != Boosting {
		t.Fatal("expected boosting")
	}
	s.TurnLeft()
	s.TurnLeft()
	if s.Turn != TurnLeft {
		t.Fatalf("expected turn left, got %s", s.Turn)
	}
	s.StopTurn()
	s.StopTurn()
	if s.Turn != TurnStationary {
		t.Fatalf("expected stationary, got %s", s.Turn)
	}
}

func TestShip_Wrap_RightEdge(t *testing.T) {
	s := NewShip(Vec2{805, 300}, DefaultShipSpec())
	s.Vel = Vec2{6, 0}
	s.Update(800, 600)
	if s.Pos.X != -wrapMargin {
		t.Fatalf("expected wrap to x=%v, got %v", -wrapMargin, s.Pos.X)
	}
}

func TestShip_Wrap_LeftAndBottomEdges(t *testing.T) {
	s := NewShip(Vec2{-5, 605}, DefaultShipSpec())
	s.Vel = Vec2{-6, 6}
	s.Update(800, 600)
	if s.Pos.X != 800+wrapMargin {
		t.Fatalf("expected wrap to x=%v, got %v", 800+wrapMargin, s.Pos.X)
	}
	if s.Pos.Y != -wrapMargin {
		t.Fatalf("expected wrap to y=%v, got %v", -wrapMargin, s.Pos.Y)
	}
}

func TestShip_Wrap_WithinMarginStays(t *testing.T) {
	s := NewShip(Vec2{805, 300}, DefaultShipSpec())
	s.Vel = Vec2{4, 0}
	s.Update(800, 600)
	if s.Pos.X != 809 {
		t.Fatalf("ship inside the wrap margin should not wrap, got x=%v", s.Pos.X)
	}
}

func TestShip_Fire_SpawnsAheadOfNose(t *testing.T) {
	s := NewShip(Vec2{100, 100}, DefaultShipSpec())
	p, ok := s.Fire(0)
	if !ok {
		t.Fatal("fresh ship should be able to fire")
	}
	if math.Abs(p.Pos.X-120) > 1e-9 || math.Abs(p.Pos.Y-100) > 1e-9 {
		t.Fatalf("expected particle at (120,100), got %+v", p.Pos)
	}
	if math.Abs(p.Vel.X-20) > 1e-9 || math.Abs(p.Vel.Y) > 1e-9 {
		t.Fatalf("expected particle velocity (20,0), got %+v", p.Vel)
	}
}

func TestShip_Fire_Cooldown(t *testing.T) {
	s := NewShip(Vec2{100, 100}, DefaultShipSpec())
	if _, ok := s.Fire(1); !ok {
		t.Fatal("first shot should fire")
	}
	if _, ok := s.Fire(2); ok {
		t.Fatal("second shot one tick later should be refused")
	}
	if s.CanFire(15) {
		t.Fatal("canon should still be reloading at tick 15")
	}
	if _, ok := s.Fire(16); !ok {
		t.Fatal("shot after the reload interval should fire")
	}
}

func TestShipState_Nose(t *testing.T) {
	s := NewShip(Vec2{50, 50}, DefaultShipSpec())
	s.Facing = math.Pi / 2
	n := s.State().Nose()
	if math.Abs(n.X-50) > 1e-9 || math.Abs(n.Y-70) > 1e-9 {
		t.Fatalf("expected nose at (50,70), got %+v", n)
	}
}
