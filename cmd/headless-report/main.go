package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/Garsondee/Asteroid-Sense/internal/agents"
	"github.com/Garsondee/Asteroid-Sense/internal/config"
	"github.com/Garsondee/Asteroid-Sense/internal/game"
	"github.com/Garsondee/Asteroid-Sense/internal/observability"
)

type runStats struct {
	runIndex int
	seed     int64
	report   game.RoundReport

	firstSpawnTick int
	firstHitTick   int
	lostTick       int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		observability.GetLogger().Error("headless report failed", zap.Error(err))
		observability.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command writing its report to out.
func newRootCmd(out io.Writer) *cobra.Command {
	v := config.NewViper()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "headless-report",
		Short: "Play seeded rounds without a window and print a report.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}
			// Logs go to stderr so the report on out stays clean.
			observability.Initialize(cfg.Logger, zapcore.Lock(os.Stderr))
			defer observability.Sync()
			return report(cmd.Context(), out, cfg, agents.Builtin(), observability.GetLogger())
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./asteroids.yaml)")
	flags.Int("runs", 10, "number of headless rounds")
	flags.Int("ticks", 3600, "tick limit per round")
	flags.Int64("seed-base", 1, "RNG seed for run 1")
	flags.Int64("seed-step", 1, "seed increment between runs")
	flags.String("agent", agents.NameReactive, "pilot for every round")
	flags.Int("parallel", 4, "rounds played at once")
	flags.Bool("realtime", false, "pace rounds at the window tick rate")
	if err := config.BindFlags(v, flags, map[string]string{
		"headless.runs":      "runs",
		"headless.ticks":     "ticks",
		"headless.seed_base": "seed-base",
		"headless.seed_step": "seed-step",
		"headless.agent":     "agent",
		"headless.parallel":  "parallel",
		"headless.realtime":  "realtime",
	}); err != nil {
		panic(err)
	}
	return cmd
}

func report(ctx context.Context, out io.Writer, cfg *config.Config, registry *agents.Registry, logger *zap.Logger) error {
	h := cfg.Headless
	if h.Agent == agents.NameHuman {
		return fmt.Errorf("agent %q cannot play headless", h.Agent)
	}
	if _, err := registry.New(h.Agent); err != nil {
		return err
	}

	fmt.Fprintf(out, "=== Headless Round Report ===\n")
	fmt.Fprintf(out, "agent=%s runs=%d ticks=%d seed_base=%d seed_step=%d parallel=%d realtime=%t\n\n",
		h.Agent, h.Runs, h.Ticks, h.SeedBase, h.SeedStep, h.Parallel, h.Realtime)

	all, err := runBatch(ctx, cfg, registry, logger)
	if err != nil {
		return err
	}
	for _, rs := range all {
		printRun(out, rs, cfg.Window.TickRate)
	}
	printAggregate(out, all, cfg.Window.TickRate)
	return nil
}

// runBatch plays every configured round, at most Parallel at a time, and
// returns their stats in run order.
func runBatch(ctx context.Context, cfg *config.Config, registry *agents.Registry, logger *zap.Logger) ([]runStats, error) {
	h := cfg.Headless
	all := make([]runStats, h.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.Parallel)
	for i := 0; i < h.Runs; i++ {
		i := i
		seed := h.SeedBase + int64(i)*h.SeedStep
		g.Go(func() error {
			rs, err := runOne(ctx, cfg, registry, logger, i+1, seed)
			if err != nil {
				return fmt.Errorf("run %d (seed=%d): %w", i+1, seed, err)
			}
			all[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

func runOne(ctx context.Context, cfg *config.Config, registry *agents.Registry, logger *zap.Logger, runIndex int, seed int64) (runStats, error) {
	a, err := registry.New(cfg.Headless.Agent)
	if err != nil {
		return runStats{}, err
	}
	opts := append(cfg.RoundOptions(),
		game.WithSeed(seed),
		game.WithLogger(logger.With(zap.Int("run", runIndex))),
		game.WithAgent(cfg.Headless.Agent, a),
	)
	r := game.NewRound(opts...)

	var limiter *rate.Limiter
	if cfg.Headless.Realtime {
		limiter = rate.NewLimiter(rate.Every(time.Second/time.Duration(cfg.Window.TickRate)), 1)
	}
	for r.Tick() < cfg.Headless.Ticks && r.State() != game.RoundOver {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return runStats{}, err
			}
		} else if err := ctx.Err(); err != nil {
			return runStats{}, err
		}
		r.Step()
	}

	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		report:         r.Report(),
		firstSpawnTick: firstTick(r.Log(), game.CatSpawn, "asteroid"),
		firstHitTick:   firstTick(r.Log(), game.CatHit, "asteroid"),
		lostTick:       firstTick(r.Log(), game.CatShip, "lost"),
	}, nil
}

func firstTick(log *game.RoundLog, category, key string) int {
	if entries := log.Filter(category, key); len(entries) > 0 {
		return entries[0].Tick
	}
	return -1
}

func printRun(out io.Writer, rs runStats, tickRate int) {
	rep := rs.report
	fmt.Fprintf(out, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(out, "outcome=%s ticks=%d survived=%.1fs score=%d\n",
		rep.Outcome, rep.Ticks, rep.SurvivalSeconds(tickRate), rep.Score)
	fmt.Fprintf(out, "shots=%d accuracy=%.2f spawned=%d escaped=%d\n",
		rep.ShotsFired, rep.Accuracy(), rep.Spawned, rep.Escaped)
	fmt.Fprintf(out, "phase_markers: first_spawn=%d first_hit=%d ship_lost=%d\n",
		rs.firstSpawnTick, rs.firstHitTick, rs.lostTick)
	fmt.Fprintln(out)
}

func printAggregate(out io.Writer, all []runStats, tickRate int) {
	totalScore := 0
	totalShots := 0
	totalTicks := 0
	totalEscaped := 0
	destroyed := 0
	hitTicks := make([]int, 0, len(all))
	lostTicks := make([]int, 0, len(all))
	scores := make([]int, 0, len(all))

	for _, rs := range all {
		totalScore += rs.report.Score
		totalShots += rs.report.ShotsFired
		totalTicks += rs.report.Ticks
		totalEscaped += rs.report.Escaped
		if rs.report.Outcome == game.OutcomeDestroyed {
			destroyed++
		}
		if rs.firstHitTick >= 0 {
			hitTicks = append(hitTicks, rs.firstHitTick)
		}
		if rs.lostTick >= 0 {
			lostTicks = append(lostTicks, rs.lostTick)
		}
		scores = append(scores, rs.report.Score)
	}

	fmt.Fprintln(out, "=== Aggregate ===")
	fmt.Fprintf(out, "runs=%d destroyed=%d survived_limit=%d\n", len(all), destroyed, len(all)-destroyed)
	fmt.Fprintf(out, "avg_per_run: score=%.1f shots=%.1f escaped=%.1f survival=%.1fs\n",
		avg(totalScore, len(all)), avg(totalShots, len(all)), avg(totalEscaped, len(all)),
		avg(totalTicks, len(all))/float64(max(tickRate, 1)))
	accuracy := 0.0
	if totalShots > 0 {
		accuracy = float64(totalScore) / float64(totalShots)
	}
	fmt.Fprintf(out, "overall_accuracy=%.2f\n", accuracy)
	fmt.Fprintf(out, "phase_marker_avg_ticks: first_hit=%s ship_lost=%s\n",
		avgTickString(hitTicks), avgTickString(lostTicks))
	fmt.Fprintf(out, "scores: %s\n", scoreSpread(scores))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

// scoreSpread lists min, median and max of scores.
func scoreSpread(scores []int) string {
	if len(scores) == 0 {
		return "none"
	}
	sorted := append([]int(nil), scores...)
	sort.Ints(sorted)
	parts := []string{
		fmt.Sprintf("min=%d", sorted[0]),
		fmt.Sprintf("median=%d", sorted[len(sorted)/2]),
		fmt.Sprintf("max=%d", sorted[len(sorted)-1]),
	}
	return strings.Join(parts, " ")
}
