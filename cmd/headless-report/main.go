package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Garsondee/Pong/internal/config"
	"github.com/Garsondee/Pong/internal/pong"
)

type runStats struct {
	runIndex int
	seed     int64

	p1, p2      int
	victor      pong.Player
	victoryTick int
	ticksRun    int
	matchTime   time.Duration

	firstPointTick int
	serves         int
	paddleHits     int
	wallBounces    int
	outs           int

	rallies      int
	longestRally int
	meanRally    float64
	topSpeed     float64

	report string
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var sweep int
	var scenario string
	var showReport bool

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&ticks, "ticks", 20000, "maximum ticks per match")
	flag.Int64Var(&seedBase, "seed-base", 42, "serve RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&sweep, "sweep", 37, "paddle sweep half-period in ticks")
	flag.StringVar(&scenario, "scenario", "sweep", "input scenario (sweep, idle)")
	flag.BoolVar(&showReport, "report", false, "print each match report")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if scenario != "sweep" && scenario != "idle" {
		fmt.Printf("error: unsupported scenario %q (supported: sweep, idle)\n", scenario)
		return
	}

	fmt.Printf("=== Headless Pong Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d tick=%s fade=%s\n\n",
		scenario, runs, ticks, seedBase, seedStep, cfg.TickPeriod, cfg.FadeDuration)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		opts := []pong.TestOption{
			pong.WithTestSeed(seed),
			pong.WithTestTickPeriod(cfg.TickPeriod),
			pong.WithTestFadeDuration(cfg.FadeDuration),
		}
		if scenario == "sweep" {
			opts = append(opts, pong.WithInputScript(pong.SweepScript(sweep, ticks)...))
		}
		rs := runMatch(i+1, seed, ticks, opts...)
		log.Debug().Int("run", rs.runIndex).Int64("seed", seed).Int("ticks", rs.ticksRun).Msg("match finished")
		all = append(all, rs)
		printRun(rs, showReport)
	}
	printAggregate(all)
}

// runMatch plays one match until a victory or the tick limit.
func runMatch(runIndex int, seed int64, ticks int, opts ...pong.TestOption) runStats {
	tm := pong.NewTestMatch(opts...)
	tm.RunUntil(func(tm *pong.TestMatch) bool {
		return tm.State() == pong.BetweenGames
	}, ticks)

	sc := tm.Scores()
	st := tm.Stats()
	rs := runStats{
		runIndex:       runIndex,
		seed:           seed,
		p1:             sc.P1,
		p2:             sc.P2,
		victor:         tm.Victor(),
		victoryTick:    -1,
		ticksRun:       tm.TickCount(),
		matchTime:      tm.Elapsed(),
		firstPointTick: firstTick(tm.Log.Entries(), "score", "point"),
		serves:         tm.Log.CountCategory("serve", "launch"),
		paddleHits:     tm.Log.CountCategory("collision", "paddle"),
		wallBounces:    tm.Log.CountCategory("collision", "top_wall") + tm.Log.CountCategory("collision", "bottom_wall"),
		outs:           tm.Log.CountCategory("collision", "left_wall") + tm.Log.CountCategory("collision", "right_wall"),
		rallies:        st.Rallies,
		longestRally:   st.LongestRally,
		meanRally:      st.MeanRallyHits(),
		topSpeed:       st.TopSpeed,
		report:         tm.Report(ticks),
	}
	if e, ok := tm.Log.LastOf("score", "victory"); ok {
		rs.victoryTick = e.Tick
	}
	return rs
}

func firstTick(entries []pong.MatchLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats, showReport bool) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("result: p1=%d p2=%d victor=%s victory_tick=%d ticks_run=%d match_time=%s\n",
		rs.p1, rs.p2, rs.victor, rs.victoryTick, rs.ticksRun, rs.matchTime)
	fmt.Printf("events: serves=%d paddle_hits=%d wall_bounces=%d outs=%d first_point=%d\n",
		rs.serves, rs.paddleHits, rs.wallBounces, rs.outs, rs.firstPointTick)
	fmt.Printf("rallies: count=%d longest=%d mean=%.2f top_speed=%.2f\n",
		rs.rallies, rs.longestRally, rs.meanRally, rs.topSpeed)
	if showReport {
		fmt.Println(indent(rs.report, "  "))
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	wins := [3]int{}
	totalHits := 0
	totalRallies := 0
	longest := 0
	topSpeed := 0.0
	victoryTicks := make([]int, 0, len(all))

	for _, rs := range all {
		wins[rs.victor]++
		totalHits += rs.paddleHits
		totalRallies += rs.rallies
		if rs.longestRally > longest {
			longest = rs.longestRally
		}
		if rs.topSpeed > topSpeed {
			topSpeed = rs.topSpeed
		}
		if rs.victoryTick >= 0 {
			victoryTicks = append(victoryTicks, rs.victoryTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d finished=%d unfinished=%d\n", len(all), len(victoryTicks), wins[pong.PlayerNone])
	fmt.Printf("wins: p1=%d p2=%d\n", wins[pong.Player1], wins[pong.Player2])
	fmt.Printf("avg_per_run: paddle_hits=%.1f rallies=%.1f\n", avg(totalHits, len(all)), avg(totalRallies, len(all)))
	fmt.Printf("hits_per_rally=%.2f longest_rally=%d top_speed=%.2f\n", avg(totalHits, totalRallies), longest, topSpeed)
	fmt.Printf("avg_victory_tick=%s\n", avgTickString(victoryTicks))
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

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
