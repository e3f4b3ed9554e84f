// simbench runs the simulation headless under the autopilot and reports
// tick cost statistics. Useful for sizing budgets and checking the
// performance guard thresholds on a target machine.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vector-rocks/config"
	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/controller"
	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/status"
	"github.com/lixenwraith/vector-rocks/systems"
)

var (
	ticks     = flag.Int("ticks", 36000, "ticks to simulate (60 per second)")
	seed      = flag.Uint64("seed", 1, "simulation seed")
	preset    = flag.String("collision", "full", "collision policy: player-only|big-only|full")
	frag      = flag.String("fragmentation", "full", "fragmentation mode: off|classic-split|slice-only|explode|full")
	guard     = flag.Bool("guard", true, "enable the performance guard")
	profile   = flag.String("profile", "veteran", "autopilot profile: casual|balanced|veteran")
	godMode   = flag.Bool("god", true, "keep the ship alive for the whole run")
	maxBodies = flag.Int("max-bodies", 0, "override the body budget (0 keeps the default)")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	cfg.Controller = config.ControllerAutopilot
	cfg.GuardEnabled = *guard
	cfg.Seed = *seed

	var err error
	if cfg.Collision, err = config.ParseCollision(*preset); err != nil {
		fatal(err)
	}
	if cfg.Fragmentation, err = config.ParseFragmentation(*frag); err != nil {
		fatal(err)
	}
	if cfg.Profile, err = config.ParseProfile(*profile); err != nil {
		fatal(err)
	}
	if *maxBodies > 0 {
		cfg.Budgets.MaxBodies = *maxBodies
	}

	reg := status.NewRegistry()
	world := engine.NewWorld(cfg, zerolog.Nop(), reg)
	world.State.GodMode = *godMode
	systems.Register(world)

	ap := controller.NewAutopilot(controller.ProfileFor(cfg.Profile), cfg.Seed, reg)
	loop := engine.NewLoop(world, ap, ap.SensorRadius(), ap.AttentionCap())

	costs := make([]time.Duration, 0, *ticks)
	peakBodies := 0
	start := time.Now()

	for i := 0; i < *ticks && !world.State.GameOver; i++ {
		loop.Tick()
		costs = append(costs, time.Duration(world.Metrics.TickCostMicros.Load())*time.Microsecond)
		if n := world.Bodies.Count(); n > peakBodies {
			peakBodies = n
		}
	}
	wall := time.Since(start)

	sort.Slice(costs, func(i, j int) bool { return costs[i] < costs[j] })
	ran := len(costs)
	var total time.Duration
	for _, c := range costs {
		total += c
	}

	fmt.Printf("ticks        %d (%.1fs simulated)\n", ran,
		float64(ran)*constants.SimTickInterval.Seconds())
	fmt.Printf("wall clock   %v (%.1fx realtime)\n", wall.Round(time.Millisecond),
		float64(ran)*constants.SimTickInterval.Seconds()/wall.Seconds())
	fmt.Printf("tick cost    mean %v  p50 %v  p99 %v  max %v\n",
		total/time.Duration(max(ran, 1)), percentile(costs, 0.50),
		percentile(costs, 0.99), percentile(costs, 1.0))
	fmt.Printf("bodies       peak %d (budget %d)\n", peakBodies, cfg.Budgets.MaxBodies)
	fmt.Printf("score        %d\n", world.State.Score)
	fmt.Printf("guard        severity %d\n", world.Metrics.GuardSeverity.Load())
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
