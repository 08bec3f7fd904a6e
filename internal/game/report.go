package game

import (
	"fmt"
	"strings"
)

// RoundOutcome summarises how a round ended.
type RoundOutcome int

const (
	OutcomeInProgress RoundOutcome = iota // still in play or paused
	OutcomeDestroyed                      // every ship was lost
)

func (o RoundOutcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// RoundReport is the after-action summary of a round.
type RoundReport struct {
	ID         string
	Agents     []string
	Ticks      int
	Score      int
	ShotsFired int
	Spawned    int
	Escaped    int
	ShipsLost  int
	Outcome    RoundOutcome
}

// Accuracy is the fraction of fired particles that destroyed an asteroid.
func (rr RoundReport) Accuracy() float64 {
	if rr.ShotsFired == 0 {
		return 0
	}
	return float64(rr.Score) / float64(rr.ShotsFired)
}

// SurvivalSeconds converts the ticks played to seconds at the nominal rate.
func (rr RoundReport) SurvivalSeconds(tickRate int) float64 {
	if tickRate <= 0 {
		return 0
	}
	return float64(rr.Ticks) / float64(tickRate)
}

// String formats the report as a single key=value line.
func (rr RoundReport) String() string {
	return fmt.Sprintf("round=%s agents=%s outcome=%s ticks=%d score=%d shots=%d accuracy=%.2f spawned=%d escaped=%d ships_lost=%d",
		shortID(rr.ID), strings.Join(rr.Agents, ","), rr.Outcome, rr.Ticks, rr.Score,
		rr.ShotsFired, rr.Accuracy(), rr.Spawned, rr.Escaped, rr.ShipsLost)
}

// Format renders the report as a short multi-line block.
func (rr RoundReport) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Round %s\n", rr.ID)
	fmt.Fprintf(&sb, "Agents:   %s\n", strings.Join(rr.Agents, ", "))
	fmt.Fprintf(&sb, "Outcome:  %s after %d ticks\n", rr.Outcome, rr.Ticks)
	fmt.Fprintf(&sb, "Points:   %d\n", rr.Score)
	fmt.Fprintf(&sb, "Shots:    %d (accuracy %.0f%%)\n", rr.ShotsFired, rr.Accuracy()*100)
	fmt.Fprintf(&sb, "Rocks:    %d spawned, %d escaped\n", rr.Spawned, rr.Escaped)
	return sb.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Report builds the round's summary from its running counters.
func (r *Round) Report() RoundReport {
	outcome := OutcomeInProgress
	if r.state == RoundOver {
		outcome = OutcomeDestroyed
	}
	agents := make([]string, len(r.stats.agents))
	copy(agents, r.stats.agents)
	return RoundReport{
		ID:         r.id.String(),
		Agents:     agents,
		Ticks:      r.tick,
		Score:      r.score,
		ShotsFired: r.stats.shotsFired,
		Spawned:    r.stats.spawned,
		Escaped:    r.stats.escaped,
		ShipsLost:  r.stats.shipsLost,
		Outcome:    outcome,
	}
}
