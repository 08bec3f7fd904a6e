package game

import (
	"strings"
	"testing"
)

func TestRoundReport_Accuracy(t *testing.T) {
	if got := (RoundReport{}).Accuracy(); got != 0 {
		t.Fatalf("no shots should give accuracy 0, got %v", got)
	}
	rr := RoundReport{Score: 3, ShotsFired: 12}
	if got := rr.Accuracy(); got != 0.25 {
		t.Fatalf("expected accuracy 0.25, got %v", got)
	}
}

func TestRoundReport_SurvivalSeconds(t *testing.T) {
	rr := RoundReport{Ticks: 150}
	if got := rr.SurvivalSeconds(60); got != 2.5 {
		t.Fatalf("expected 2.5s, got %v", got)
	}
	if got := rr.SurvivalSeconds(0); got != 0 {
		t.Fatalf("zero tick rate should give 0, got %v", got)
	}
}

func TestRoundReport_String(t *testing.T) {
	rr := RoundReport{
		ID:         "0123456789abcdef",
		Agents:     []string{"reactive"},
		Ticks:      900,
		Score:      4,
		ShotsFired: 8,
		Outcome:    OutcomeDestroyed,
	}
	s := rr.String()
	for _, want := range []string{"round=01234567", "agents=reactive", "outcome=destroyed", "score=4", "accuracy=0.50"} {
		if !strings.Contains(s, want) {
			t.Fatalf("report line %q missing %q", s, want)
		}
	}
}

func TestRound_Report_TracksCounters(t *testing.T) {
	a := &scriptAgent{every: []Action{ActionFire}}
	r := quietRound(
		WithAgentAt("gunner", a, Vec2{100, 300}, 0),
		WithAsteroid(Vec2{300, 300}, Vec2{}, 15),
	)
	r.RunTicks(20)

	rep := r.Report()
	if rep.Score != 1 || r.Score() != 1 {
		t.Fatalf("expected the first shot to destroy the rock, got %s", rep)
	}
	if rep.ShotsFired != 2 {
		t.Fatalf("expected 2 shots, got %d", rep.ShotsFired)
	}
	if rep.Outcome != OutcomeInProgress {
		t.Fatalf("round still in play, got %s", rep.Outcome)
	}
	if len(rep.Agents) != 1 || rep.Agents[0] != "gunner" {
		t.Fatalf("unexpected agents %v", rep.Agents)
	}
	if rep.ID != r.ID().String() {
		t.Fatalf("report ID %q does not match round %q", rep.ID, r.ID())
	}
	if !strings.Contains(rep.Format(), "Points:   1") {
		t.Fatalf("formatted report missing points:\n%s", rep.Format())
	}
}
