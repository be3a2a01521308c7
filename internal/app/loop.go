// Package app runs the frame loop: it reads keys, collects fetched weather
// from the mailbox, draws each frame and advances the particles.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/lox/nimbus/internal/feed"
	"github.com/lox/nimbus/internal/metrics"
	"github.com/lox/nimbus/internal/models"
	"github.com/lox/nimbus/internal/particle"
	"github.com/lox/nimbus/internal/scene"
	"github.com/lox/nimbus/internal/surface"
)

const DefaultFPS = 20

// Screen is where frames are shown and keys come from.
type Screen interface {
	Size() (width, height int)
	Canvas() *surface.Buffer
	Flush() error
	PollKey() (surface.Key, bool)
}

// State is where the loop is between fetching and showing weather.
type State int

const (
	Loading State = iota
	Active
	Quit
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Active:
		return "active"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config tunes a Loop. Zero values fall back to defaults.
type Config struct {
	FPS    int
	Logger *slog.Logger
	// Rand seeds the particles. Nil uses a time-seeded source.
	Rand *rand.Rand
}

// Loop owns the particle pool and the screen. Only the goroutine calling
// Tick or Run may touch either; fetches run on their own goroutines and
// hand results back through the mailbox.
type Loop struct {
	screen   Screen
	source   feed.Source
	logger   *slog.Logger
	rng      *rand.Rand
	interval time.Duration

	mailbox Mailbox
	fetches sync.WaitGroup

	pool     *particle.Pool
	snap     *models.Snapshot
	state    State
	frame    int
	tooSmall bool
}

// New returns a Loop in the loading state with particles spawned for the
// screen's current size.
func New(screen Screen, source feed.Source, cfg Config) *Loop {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		cfg.Rand = rand.New(rand.NewPCG(seed, seed>>32))
	}

	w, h := screen.Size()
	return &Loop{
		screen:   screen,
		source:   source,
		logger:   cfg.Logger,
		rng:      cfg.Rand,
		interval: time.Second / time.Duration(cfg.FPS),
		pool:     particle.Spawn(w, h, cfg.Rand),
		state:    Loading,
	}
}

// Frame returns the number of frames drawn so far.
func (l *Loop) Frame() int { return l.frame }

// wait blocks until every started fetch has delivered its result.
func (l *Loop) wait() { l.fetches.Wait() }

// Run starts the first fetch and draws frames until the user quits or ctx
// is cancelled. Frames are paced by a ticker at the configured rate; ticks
// that pass during a slow frame are dropped, so the loop never bursts to
// catch up.
func (l *Loop) Run(ctx context.Context) error {
	l.Refresh(ctx)

	tick := time.NewTicker(l.interval)
	defer tick.Stop()

	for {
		running, err := l.Tick(ctx)
		if err != nil {
			return err
		}
		if !running {
			l.logger.Info("quit", "frames", l.frame)
			return nil
		}

		select {
		case <-ctx.Done():
			l.logger.Info("interrupted", "frames", l.frame)
			return nil
		case <-tick.C:
		}
	}
}

// Refresh drops whatever weather is shown, returns to the loading splash
// and starts a new fetch. Earlier fetches still in flight are not
// cancelled; whichever finishes last while loading is shown.
func (l *Loop) Refresh(ctx context.Context) {
	l.mailbox.Clear()
	l.snap = nil
	l.state = Loading

	l.fetches.Go(func() {
		l.mailbox.Put(l.fetch(ctx))
	})
}

func (l *Loop) fetch(ctx context.Context) (snap *models.Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("fetch panicked", "panic", r)
			snap = models.ErrorSnapshot(fmt.Sprint(r))
		}
	}()

	start := time.Now()
	s := l.source.Fetch(ctx)
	l.logger.Debug("fetch finished", "duration", time.Since(start), "weather", s.Type, "error", s.Error)
	return &s
}

// Tick handles pending input and draws one frame. It reports false once
// the user has asked to quit.
func (l *Loop) Tick(ctx context.Context) (bool, error) {
	start := time.Now()
	w, h := l.screen.Size()

	if !scene.Fits(w, h) {
		if !l.tooSmall {
			l.logger.Info("terminal too small", "width", w, "height", h)
			l.tooSmall = true
		}
		scene.DrawTooSmall(l.screen.Canvas())
		if err := l.screen.Flush(); err != nil {
			return false, err
		}
		metrics.FramesRendered.WithLabelValues("too_small").Inc()

		if k, ok := l.screen.PollKey(); ok && isQuit(k) {
			l.state = Quit
			return false, nil
		}
		return true, nil
	}
	if l.tooSmall {
		l.logger.Info("terminal usable again", "width", w, "height", h)
		l.tooSmall = false
	}

	if k, ok := l.screen.PollKey(); ok {
		switch {
		case isQuit(k):
			l.state = Quit
			return false, nil
		case k == 'r' || k == 'R':
			l.logger.Info("refresh requested")
			metrics.RefreshesTotal.Inc()
			l.Refresh(ctx)
		}
	}

	if l.state == Loading {
		if snap := l.mailbox.Take(); snap != nil {
			l.snap = snap
			l.state = Active
		}
	}

	if l.pool.Empty() {
		l.logger.Debug("respawning particles", "was", l.pool.Bounds(), "width", w, "height", h)
		l.pool = particle.Spawn(w, h, l.rng)
	}

	canvas := l.screen.Canvas()
	label := "loading"
	weather := l.snap.SceneType()
	if l.state == Loading {
		scene.DrawLoading(canvas, l.frame)
	} else {
		scene.Draw(canvas, weather, l.pool, l.frame, l.snap)
		label = weather.String()
	}
	if err := l.screen.Flush(); err != nil {
		return false, err
	}

	if l.state == Active {
		l.pool.Tick(weather)
	}
	l.frame++

	metrics.FramesRendered.WithLabelValues(label).Inc()
	metrics.FrameDuration.Observe(time.Since(start).Seconds())
	return true, nil
}

func isQuit(k surface.Key) bool {
	return k == 'q' || k == 'Q' || k == surface.KeyEsc || k == surface.KeyCtrlC
}
