package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/Garsondee/Asteroid-Sense/internal/agents"
	"github.com/Garsondee/Asteroid-Sense/internal/config"
	"github.com/Garsondee/Asteroid-Sense/internal/game"
)

func batchConfig(runs, ticks int) *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Headless.Runs = runs
	cfg.Headless.Ticks = ticks
	cfg.Headless.Parallel = 3
	return cfg
}

func TestRunBatch_OrderedAndDeterministic(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := batchConfig(5, 300)
	first, err := runBatch(context.Background(), cfg, agents.Builtin(), zap.NewNop())
	require.NoError(t, err)
	second, err := runBatch(context.Background(), cfg, agents.Builtin(), zap.NewNop())
	require.NoError(t, err)

	require.Len(t, first, 5)
	for i, rs := range first {
		assert.Equal(t, i+1, rs.runIndex)
		assert.Equal(t, cfg.Headless.SeedBase+int64(i)*cfg.Headless.SeedStep, rs.seed)
		assert.LessOrEqual(t, rs.report.Ticks, 300)

		// Same seed, same round; only the random round ID differs.
		a, b := rs.report, second[i].report
		a.ID, b.ID = "", ""
		assert.Equal(t, a, b, "run %d should replay identically", i+1)
	}
}

func TestRunOne_StopsAtTickLimit(t *testing.T) {
	cfg := batchConfig(1, 50)
	cfg.Headless.Agent = agents.NameIdle
	cfg.Round.SpawnInterval = 0

	rs, err := runOne(context.Background(), cfg, agents.Builtin(), zap.NewNop(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 50, rs.report.Ticks)
	assert.Equal(t, game.OutcomeInProgress, rs.report.Outcome)
	assert.Equal(t, -1, rs.firstSpawnTick)
	assert.Equal(t, -1, rs.firstHitTick)
	assert.Equal(t, -1, rs.lostTick)
}

func TestRunBatch_CancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := batchConfig(4, 1000)
	cfg.Headless.Realtime = true
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runBatch(ctx, cfg, agents.Builtin(), zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReport_RejectsHumanAndUnknownAgents(t *testing.T) {
	var out bytes.Buffer
	cfg := batchConfig(1, 10)

	cfg.Headless.Agent = agents.NameHuman
	assert.Error(t, report(context.Background(), &out, cfg, agents.Builtin(), zap.NewNop()))

	cfg.Headless.Agent = "nobody"
	assert.ErrorIs(t, report(context.Background(), &out, cfg, agents.Builtin(), zap.NewNop()), agents.ErrUnknownAgent)
	assert.Empty(t, out.String(), "nothing is printed before the agent is accepted")
}

func TestPrintAggregate(t *testing.T) {
	all := []runStats{
		{runIndex: 1, report: game.RoundReport{Score: 4, ShotsFired: 8, Ticks: 600, Outcome: game.OutcomeDestroyed}, firstHitTick: 20, lostTick: 600},
		{runIndex: 2, report: game.RoundReport{Score: 2, ShotsFired: 2, Ticks: 1200, Outcome: game.OutcomeInProgress}, firstHitTick: -1, lostTick: -1},
		{runIndex: 3, report: game.RoundReport{Score: 0, Ticks: 300, Outcome: game.OutcomeDestroyed}, firstHitTick: -1, lostTick: 300},
	}
	var out bytes.Buffer
	printAggregate(&out, all, 60)
	got := out.String()

	assert.Contains(t, got, "runs=3 destroyed=2 survived_limit=1")
	assert.Contains(t, got, "score=2.0 shots=3.3 escaped=0.0 survival=11.7s")
	assert.Contains(t, got, "overall_accuracy=0.60")
	assert.Contains(t, got, "first_hit=20.0 ship_lost=450.0")
	assert.Contains(t, got, "scores: min=0 median=2 max=4")
}

func TestRootCmd_PrintsReport(t *testing.T) {
	chdir(t, t.TempDir())
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--runs", "2", "--ticks", "120", "--agent", "dumb", "--seed-base", "5", "--parallel", "1"})
	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "agent=dumb runs=2 ticks=120 seed_base=5 seed_step=1 parallel=1")
	assert.Contains(t, got, "--- Run 1 (seed=5) ---")
	assert.Contains(t, got, "--- Run 2 (seed=6) ---")
	assert.Equal(t, 1, strings.Count(got, "=== Aggregate ==="))
}

func TestScoreSpread_Empty(t *testing.T) {
	assert.Equal(t, "none", scoreSpread(nil))
	assert.Equal(t, "n/a", avgTickString(nil))
	assert.Zero(t, avg(3, 0))
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
