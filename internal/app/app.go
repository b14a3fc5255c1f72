// Package app ties the scene to the terminal: event pump, fixed rate frame loop, rendering and sound.
package app

import (
	"context"
	"time"

	"github.com/akmonengine/boxcollide"
	"github.com/akmonengine/boxcollide/actor"
	"github.com/akmonengine/boxcollide/audio"
	"github.com/akmonengine/boxcollide/config"
	"github.com/akmonengine/boxcollide/input"
	"github.com/akmonengine/boxcollide/internal/log"
	"github.com/akmonengine/boxcollide/render"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const eventBuffer = 100

// errQuit stops the frame loop on a quit key, Run turns it into a clean exit
var errQuit = errors.New("quit requested")

type App struct {
	cfg      config.Config
	screen   tcell.Screen
	scene    *boxcollide.Scene
	keys     *input.KeyState
	renderer *render.Renderer
	speaker  *audio.Speaker
	fps      fpsCounter
	logger   *log.Logger
}

// New initializes screen and builds the scene. The App owns screen from then on.
func New(cfg config.Config, screen tcell.Screen, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.Nop()
	}

	scene, err := boxcollide.NewScene(cfg.Scene, logger)
	if err != nil {
		return nil, errors.Wrap(err, "build scene")
	}

	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.EnableFocus()
	screen.HideCursor()

	a := &App{
		cfg:      cfg,
		screen:   screen,
		scene:    scene,
		keys:     input.NewKeyState(cfg.Input.HoldWindow),
		renderer: render.NewRenderer(screen, cfg.Screen.Title, cfg.Screen.CellAspect),
		speaker:  audio.NewSpeaker(cfg.Audio, logger),
		logger:   logger,
	}

	if cfg.Audio.Enabled {
		if err := a.speaker.Init(); err != nil {
			// Non-fatal, the demo runs without sound
			logger.Warn("audio disabled", log.Err(err))
		}
	}

	scene.OnCollisionEnter(func(obstacle *actor.Body) {
		a.speaker.PlayHit()
		logger.Info("hit", log.String("obstacle", obstacle.Name), log.Uint64("frame", scene.Frame()))
	})

	return a, nil
}

// Scene exposes the simulated state
func (a *App) Scene() *boxcollide.Scene {
	return a.scene
}

// Run pumps terminal events and advances the scene at the target rate until ctx is done
// or a quit key is pressed. The screen is finalized on return.
func (a *App) Run(ctx context.Context) error {
	defer a.speaker.Close()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, eventBuffer)

	g.Go(func() error {
		return a.pump(ctx, events)
	})
	g.Go(func() error {
		// unblocks PollEvent in the pump
		defer a.screen.Fini()
		return a.loop(ctx, events)
	})

	a.logger.Info("running", log.Int("target_fps", a.cfg.Screen.TargetFPS))

	err := g.Wait()
	if errors.Is(err, errQuit) {
		err = nil
	}

	a.logger.Info("stopped", log.Uint64("frames", a.scene.Frame()))
	return err
}

func (a *App) pump(ctx context.Context, events chan<- tcell.Event) error {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}

		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.Screen.TargetFPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if err := a.handleEvent(ev); err != nil {
				return err
			}

		case now := <-ticker.C:
			a.scene.Update(a.keys)
			a.renderer.Draw(a.scene, a.fps.tick(now))
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return errQuit
		}
		a.keys.HandleEvent(ev)

	case *tcell.EventResize:
		a.screen.Sync()

	case *tcell.EventFocus:
		if !ev.Focused {
			a.keys.Release()
		}
	}

	return nil
}
