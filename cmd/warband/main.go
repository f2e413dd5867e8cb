// Command warband runs the warrior horde simulation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/warband/internal/engine"
	"github.com/talgya/warband/internal/entropy"
	"github.com/talgya/warband/internal/persistence"
)

func main() {
	warriors := flag.Int("warriors", 500, "population size")
	ticks := flag.Uint64("ticks", 100, "number of ticks to run")
	seed := flag.Int64("seed", 42, "random seed (-1 for a non-reproducible run)")
	dbPath := flag.String("db", "data/warband.db", "SQLite path for run snapshots (empty to disable)")
	watch := flag.Duration("watch", 0, "delay between ticks, e.g. 250ms (0 runs flat out)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// ── Randomness ────────────────────────────────────────────────────
	var rng entropy.Source
	if *seed < 0 {
		rng = entropy.NewFromEntropy()
		slog.Info("seeded from system entropy, run is not reproducible")
	} else {
		rng = entropy.New(*seed)
	}

	// ── Simulation ────────────────────────────────────────────────────
	sim, err := engine.NewSimulation(*warriors, rng)
	if err != nil {
		slog.Error("failed to build simulation", "error", err)
		os.Exit(1)
	}

	// ── Database ──────────────────────────────────────────────────────
	var db *persistence.DB
	runID := uuid.NewString()
	if *dbPath != "" {
		os.MkdirAll(filepath.Dir(*dbPath), 0755)
		db, err = persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("database opened", "path", *dbPath, "run_id", runID)
	}

	// ── Engine ────────────────────────────────────────────────────────
	eng := engine.NewEngine()
	eng.Interval = *watch
	eng.OnTick = func(tick uint64) {
		sim.Step()
	}
	eng.OnReport = func(tick uint64) {
		slog.Info("progress",
			"tick", tick,
			"avg_xp", fmt.Sprintf("%.3f", sim.Stats.AvgXP),
			"min_xp", fmt.Sprintf("%.1f", sim.Stats.MinXP),
			"max_xp", fmt.Sprintf("%.1f", sim.Stats.MaxXP),
			"avg_strength", fmt.Sprintf("%.2f", sim.Stats.AvgStrength),
			"max_strength", sim.Stats.MaxStrength,
		)
		if db != nil {
			if err := db.SaveTickStats(runID, tick, sim.Stats); err != nil {
				slog.Error("tick stats save failed", "error", err)
			}
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, stopping", "signal", sig)
		eng.Stop()
	}()

	// ── Run ───────────────────────────────────────────────────────────
	fmt.Printf("\nMustering %s warriors for %s ticks (seed %d).\n",
		humanize.Comma(int64(*warriors)), humanize.Comma(int64(*ticks)), *seed)

	start := time.Now()
	eng.Run(*ticks)
	elapsed := time.Since(start)

	// ── Read-out ──────────────────────────────────────────────────────
	if db != nil {
		run := persistence.Run{
			ID:       runID,
			Seed:     *seed,
			Warriors: *warriors,
			Ticks:    sim.CurrentTick(),
		}
		if err := db.SaveRun(run, sim.Results()); err != nil {
			slog.Error("final save failed", "error", err)
		}
	}

	champion := sim.Strongest()
	fmt.Printf("\nDone after %d ticks in %s.\n", sim.CurrentTick(), elapsed.Round(time.Millisecond))
	fmt.Printf("Average xp %.3f (min %.1f, max %.1f), average strength %.2f.\n",
		sim.Stats.AvgXP, sim.Stats.MinXP, sim.Stats.MaxXP, sim.Stats.AvgStrength)
	fmt.Printf("Champion: warrior %d with strength %d and %.1f xp.\n",
		champion.ID, champion.Strength, champion.XP)
}
