package game

import (
	"strings"
	"testing"
)

func TestRoundLog_AddAndFilter(t *testing.T) {
	rl := NewRoundLog(false)
	rl.Add(1, "--", CatSpawn, "asteroid", "(0,100)", 15)
	rl.Add(4, "P0", CatShip, "lost", "reactive hit", 0)
	rl.Add(9, "--", CatHit, "asteroid", "(200,100) score=1", 1)

	if got := len(rl.Filter(CatSpawn, "")); got != 1 {
		t.Fatalf("expected 1 spawn entry, got %d", got)
	}
	if got := len(rl.Filter("", "asteroid")); got != 2 {
		t.Fatalf("expected 2 asteroid entries, got %d", got)
	}
	if got := len(rl.FilterPilot("P0")); got != 1 {
		t.Fatalf("expected 1 P0 entry, got %d", got)
	}
	if got := len(rl.FilterTickRange(2, 9)); got != 2 {
		t.Fatalf("expected 2 entries in [2,9], got %d", got)
	}
	if rl.Count("", "") != 3 {
		t.Fatalf("expected 3 entries, got %d", rl.Count("", ""))
	}
}

func TestRoundLog_VerboseGate(t *testing.T) {
	quiet := NewRoundLog(false)
	quiet.AddVerbose(1, "P0", CatAction, "fire", "", 0)
	if len(quiet.Entries()) != 0 {
		t.Fatal("verbose entry recorded with verbose off")
	}

	loud := NewRoundLog(true)
	loud.AddVerbose(1, "P0", CatAction, "fire", "", 0)
	if !loud.Verbose() || len(loud.Entries()) != 1 {
		t.Fatal("verbose entry missing with verbose on")
	}
}

func TestRoundLog_LastOf(t *testing.T) {
	rl := NewRoundLog(false)
	if _, ok := rl.LastOf(CatHit, ""); ok {
		t.Fatal("empty log should have no last entry")
	}
	rl.Add(3, "--", CatHit, "asteroid", "score=1", 1)
	rl.Add(7, "--", CatHit, "asteroid", "score=2", 2)
	e, ok := rl.LastOf(CatHit, "asteroid")
	if !ok || e.Tick != 7 || e.NumVal != 2 {
		t.Fatalf("expected tick 7 score 2, got %+v", e)
	}
}

func TestRoundLog_HasEntry_Substring(t *testing.T) {
	rl := NewRoundLog(false)
	rl.Add(2, "P1", CatShip, "lost", "dumb hit at (10,20)", 0)
	if !rl.HasEntry(CatShip, "lost", "dumb") {
		t.Fatal("expected substring match")
	}
	if rl.HasEntry(CatShip, "lost", "reactive") {
		t.Fatal("unexpected substring match")
	}
}

func TestRoundLogEntry_String(t *testing.T) {
	e := RoundLogEntry{Tick: 42, Pilot: "P0", Category: CatHit, Key: "asteroid", Value: "(412,180) score=3"}
	s := e.String()
	if !strings.HasPrefix(s, "[T=042] P0   hit") {
		t.Fatalf("unexpected format %q", s)
	}
	if !strings.HasSuffix(s, "(412,180) score=3") {
		t.Fatalf("value missing from %q", s)
	}
}

func TestRoundLog_FormatRange(t *testing.T) {
	rl := NewRoundLog(false)
	rl.Add(1, "--", CatSpawn, "asteroid", "a", 0)
	rl.Add(5, "--", CatSpawn, "asteroid", "b", 0)
	out := rl.FormatRange(4, 6)
	if strings.Count(out, "\n") != 1 || !strings.Contains(out, "[T=005]") {
		t.Fatalf("expected only tick 5 in range output, got %q", out)
	}
}
