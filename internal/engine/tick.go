// Package engine provides the tick loop, random-activation scheduler, and
// simulation driver.
package engine

import (
	"log/slog"
	"time"
)

// ReportEvery is the tick cadence of the OnReport callback.
const ReportEvery = 10

// Engine drives the simulation forward for a bounded number of ticks.
type Engine struct {
	Tick     uint64        // Current tick counter (monotonic)
	Interval time.Duration // Delay between ticks; 0 = run flat out
	Running  bool

	// Callbacks — populated during setup.
	OnTick   func(tick uint64) // Every tick
	OnReport func(tick uint64) // Every ReportEvery ticks
}

// NewEngine creates an engine with default settings.
func NewEngine() *Engine {
	return &Engine{}
}

// Run advances the engine by up to ticks ticks, invoking the callbacks along
// the way. Returns early if Stop is called. Blocks until done.
func (e *Engine) Run(ticks uint64) {
	e.Running = true
	end := e.Tick + ticks
	slog.Info("engine started", "tick", e.Tick, "target", end)

	for e.Running && e.Tick < end {
		start := time.Now()

		e.Tick++
		if e.OnTick != nil {
			e.OnTick(e.Tick)
		}
		if e.Tick%ReportEvery == 0 && e.OnReport != nil {
			e.OnReport(e.Tick)
		}

		// Sleep for the remainder of the tick interval in watch mode.
		if e.Interval > 0 {
			elapsed := time.Since(start)
			if elapsed < e.Interval {
				time.Sleep(e.Interval - elapsed)
			}
		}
	}

	e.Running = false
	slog.Info("engine stopped", "tick", e.Tick)
}

// Stop halts the engine loop before its target tick.
func (e *Engine) Stop() {
	e.Running = false
}
