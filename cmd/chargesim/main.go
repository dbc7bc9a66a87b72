package main

import (
	"ChargeSim/internal/audio"
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/config"
	"ChargeSim/internal/engine"
	"ChargeSim/internal/hud"
	"ChargeSim/internal/logger"
	"ChargeSim/internal/scene"
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath = flag.String("config", "", "scene override file (YAML)")
	fps        = flag.Int("fps", 0, "frames per second, 0 uses the headset rate")
	seed       = flag.Int64("seed", 0, "scenario seed, 0 uses the config seed or the clock")
	mute       = flag.Bool("mute", false, "disable sound")
	logFile    = flag.String("log", "chargesim.log", "log file, the terminal is used by the HUD")
	debug      = flag.Bool("debug", false, "log per-event traces")
)

func main() {
	flag.Parse()

	level := zapcore.InfoLevel
	if *debug {
		level = zapcore.DebugLevel
	}
	if err := logger.InitLevel(level, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.Error("Simulation failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "chargesim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	mixer := audio.NewMixer(nil)
	mixer.SetMuted(*mute)
	if !*mute {
		if err := initSpeaker(mixer); err != nil {
			// Non-fatal, the scene runs without sound
			logger.Log.Warn("Audio initialization failed", zap.Error(err))
			mixer.SetMuted(true)
		} else {
			defer speaker.Close()
		}
	}

	eng := engine.NewEngine()
	sim, err := scene.Build(eng, cfg, mixer, rand.New(rand.NewSource(pickSeed(cfg))))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	defer screen.Fini()

	display := hud.New(screen)
	eng.SetOnFrameCallback(func(behaviour.Time) {
		display.Draw(sim.Status())
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pollInput(screen, eng, sim, cancel)

	return eng.Run(ctx, frameRate(*fps))
}

// frameRate converts the -fps flag into a tick interval. Zero leaves the
// choice to the engine.
func frameRate(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

func initSpeaker(mixer *audio.Mixer) error {
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(mixer.Streamer())
	return nil
}

func pickSeed(cfg *config.Scene) int64 {
	switch {
	case *seed != 0:
		return *seed
	case cfg.Scenario.Seed != 0:
		return cfg.Scenario.Seed
	default:
		return time.Now().UnixNano()
	}
}

// pollInput turns key presses into engine events until the screen is closed
// or the user quits.
func pollInput(screen tcell.Screen, eng *engine.Engine, sim *scene.Scene, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit()
				return
			}
			if ev.Key() == tcell.KeyRune {
				handleKey(ev.Rune(), eng, sim)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func handleKey(key rune, eng *engine.Engine, sim *scene.Scene) {
	switch {
	case key >= '1' && key <= '9':
		index := int(key - '1')
		eng.Post(func() {
			if !sim.Grab(index) {
				logger.Log.Debug("Nothing grabbed", zap.Int("target", index+1))
			}
		})
	case key == 'h':
		eng.Post(func() { sim.DropInto(sim.ChargerSocket) })
	case key == 'c':
		eng.Post(func() { sim.DropInto(sim.CarSocket) })
	case key == 'r':
		eng.Post(sim.Release)
	}
}
