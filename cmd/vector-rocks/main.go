package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vector-rocks/audio"
	"github.com/lixenwraith/vector-rocks/config"
	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/controller"
	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/input"
	"github.com/lixenwraith/vector-rocks/leaderboard"
	"github.com/lixenwraith/vector-rocks/render"
	"github.com/lixenwraith/vector-rocks/status"
	"github.com/lixenwraith/vector-rocks/systems"
)

// phase tracks the outer session state machine
type phase uint8

const (
	phasePlaying phase = iota
	phaseNameEntry
	phaseScoreboard
)

type Game struct {
	cfg    config.GameConfig
	log    zerolog.Logger
	reg    *status.Registry
	screen *render.Screen
	sound  *audio.Engine
	scores *leaderboard.Store

	loop    *engine.Loop
	human   *controller.Human
	handler *input.Handler

	phase     phase
	paused    bool
	telemetry bool
	nameBuf   []rune
	rank      int
	board     []leaderboard.Record

	// previous-frame counters for sound cue edge detection
	lastShots int
	lastLives int
}

func main() {
	configDir := flag.String("config", ".", "directory searched for vector-rocks.toml")
	presetName := flag.String("preset", "", "preset to start with (classic, arcade, ai)")
	seed := flag.Uint64("seed", 0, "override the simulation seed (0 keeps the configured one)")
	god := flag.Bool("god", false, "disable ship damage")
	mute := flag.Bool("mute", false, "disable audio")
	flag.Parse()

	logFile, err := os.OpenFile("vector-rocks.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := zerolog.New(logFile).With().Timestamp().Logger()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *presetName != "" {
		preset, err := pickPreset(*presetName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = preset
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	game := &Game{cfg: cfg, log: log, reg: status.NewRegistry()}

	if cfg.Leaderboard == config.LeaderboardLocalTop10 {
		scores, err := leaderboard.Open("vector-rocks.db")
		if err != nil {
			log.Warn().Err(err).Msg("leaderboard disabled")
		} else {
			game.scores = scores
		}
	}

	if !*mute {
		sound, err := audio.NewEngine()
		if err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			game.sound = sound
		}
	}

	screen, err := render.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init terminal: %v\n", err)
		os.Exit(1)
	}
	game.screen = screen
	defer screen.Close()

	game.newSession(*god)
	game.run()
}

func pickPreset(name string) (config.GameConfig, error) {
	switch name {
	case "classic":
		return config.DefaultPresets()[0].Config, nil
	case "arcade":
		return config.DefaultPresets()[1].Config, nil
	case "ai":
		return config.DefaultPresets()[2].Config, nil
	}
	return config.GameConfig{}, fmt.Errorf("unknown preset %q", name)
}

// newSession builds a fresh world and loop. Restart replaces everything
// wholesale; nothing survives from the previous run except the screen,
// the registry and the leaderboard handle.
func (g *Game) newSession(god bool) {
	world := engine.NewWorld(g.cfg, g.log, g.reg)
	world.State.GodMode = god
	systems.Register(world)

	var ctrl engine.Controller
	sensorRadius := controller.BalancedProfile().SensorRadius
	attentionCap := controller.BalancedProfile().AttentionCap
	g.human = nil

	switch g.cfg.Controller {
	case config.ControllerAutopilot:
		ap := controller.NewAutopilot(controller.ProfileFor(g.cfg.Profile), g.cfg.Seed, g.reg)
		sensorRadius = ap.SensorRadius()
		attentionCap = ap.AttentionCap()
		ctrl = ap
	default:
		g.human = controller.NewHuman()
		ctrl = g.human
	}

	g.loop = engine.NewLoop(world, ctrl, sensorRadius, attentionCap)
	g.handler = input.NewHandler(nil)
	g.phase = phasePlaying
	g.paused = false
	g.nameBuf = g.nameBuf[:0]
	g.rank = 0
	g.board = nil
	g.lastShots = 0
	g.lastLives = world.State.Lives

	g.log.Info().
		Uint64("seed", g.cfg.Seed).
		Str("collision", g.cfg.Collision.String()).
		Str("fragmentation", g.cfg.Fragmentation.String()).
		Msg("session started")
}

func (g *Game) run() {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.Terminal().PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.frame()
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) bool {
	if g.phase == phaseNameEntry {
		return g.handleNameEntry(ev)
	}
	switch g.handler.HandleEvent(ev, time.Now()) {
	case input.ActionQuit:
		return false
	case input.ActionRestart:
		g.newSession(g.loop.World().State.GodMode)
	case input.ActionPause:
		if g.phase == phasePlaying {
			g.paused = !g.paused
			if g.paused {
				g.loop.Halt()
			}
		}
	case input.ActionTelemetry:
		g.telemetry = !g.telemetry
	}
	return true
}

func (g *Game) handleNameEntry(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		g.submitScore()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.nameBuf) > 0 {
			g.nameBuf = g.nameBuf[:len(g.nameBuf)-1]
		}
	case tcell.KeyRune:
		r := key.Rune()
		if len(g.nameBuf) < 10 && r > ' ' {
			g.nameBuf = append(g.nameBuf, r)
		}
	}
	return true
}

func (g *Game) submitScore() {
	name := string(g.nameBuf)
	if name == "" {
		name = "anon"
	}
	score := g.loop.World().State.Score
	rank, err := g.scores.Submit(name, score)
	if err != nil {
		g.log.Warn().Err(err).Msg("score submission failed")
	}
	g.rank = rank
	if top, err := g.scores.Top(); err == nil {
		g.board = top
	}
	g.phase = phaseScoreboard
}

func (g *Game) frame() {
	world := g.loop.World()

	switch g.phase {
	case phasePlaying:
		if g.paused {
			g.screen.DrawPaused()
			return
		}
		if g.human != nil {
			g.human.SetKeys(g.handler.Keys(time.Now()))
		}
		g.loop.Advance(time.Now())
		g.emitSounds(world)
		g.screen.Draw(world)
		if g.telemetry {
			g.screen.DrawTelemetry(g.reg)
		}
		if world.State.GameOver {
			g.log.Info().Int("score", world.State.Score).Msg("game over")
			if g.scores != nil {
				g.phase = phaseNameEntry
			} else {
				g.phase = phaseScoreboard
			}
		}
	case phaseNameEntry:
		g.screen.Draw(world)
		g.screen.DrawStats(world)
		g.screen.DrawNameEntry(string(g.nameBuf))
	case phaseScoreboard:
		g.screen.Draw(world)
		g.screen.DrawStats(world)
		if g.board != nil {
			g.screen.DrawLeaderboard(g.board, g.rank)
		}
	}
}

// emitSounds derives audio cues from per-tick counter changes so the
// simulation core stays silent about presentation concerns.
func (g *Game) emitSounds(world *engine.World) {
	if g.sound == nil {
		return
	}
	if shots := world.State.Stats.ShotsFired; shots > g.lastShots {
		g.sound.Fire()
		g.lastShots = shots
	}
	if world.Metrics.FragEvents.Load() > 0 {
		g.sound.Explosion()
	}
	if lives := world.State.Lives; lives != g.lastLives {
		if lives < g.lastLives {
			g.sound.ShipHit()
		} else {
			g.sound.ExtraLife()
		}
		g.lastLives = lives
	}
	if g.loop.World().Intent.Thrust > 0.5 {
		g.sound.Thruster()
	}
}
