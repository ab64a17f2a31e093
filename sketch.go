package mathsketch

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sketch is the top-level object that owns the canvas size, palette, the
// interaction Dispatcher and its InputAdapter. It implements ebiten.Game.
type Sketch struct {
	// Dispatcher arbitrates pointer input for this sketch.
	Dispatcher *Dispatcher
	// Input feeds Dispatcher from the pointer source once per Update.
	Input *InputAdapter
	// Palette is resolved from RunConfig.Palette.
	Palette Palette

	// OnUpdate runs once per tick after input has been dispatched.
	OnUpdate func(dt float64) error
	// OnDraw renders the sketch after the background is cleared.
	OnDraw func(screen *ebiten.Image)

	// ScreenshotDir is the directory for Screenshot output.
	ScreenshotDir string

	cfg             RunConfig
	logger          *slog.Logger
	tweens          []*TweenGroup
	screenshotQueue []string
	runner          *ScriptRunner
}

// SketchOption configures a Sketch.
type SketchOption func(*sketchOptions)

type sketchOptions struct {
	source PointerSource
	logger *slog.Logger
	sink   EventSink
}

// WithPointerSource replaces the Ebitengine pointer source.
func WithPointerSource(src PointerSource) SketchOption {
	return func(o *sketchOptions) { o.source = src }
}

// WithSketchLogger replaces the default stderr logger.
func WithSketchLogger(l *slog.Logger) SketchOption {
	return func(o *sketchOptions) { o.logger = l }
}

// WithSketchEventSink forwards the Dispatcher's drag events to sink.
func WithSketchEventSink(sink EventSink) SketchOption {
	return func(o *sketchOptions) { o.sink = sink }
}

// NewSketch creates a sketch from cfg. It fails only if the configured
// palette cannot be parsed.
func NewSketch(cfg RunConfig, opts ...SketchOption) (*Sketch, error) {
	cfg = cfg.withDefaults()
	pal, err := cfg.Palette.Resolve()
	if err != nil {
		return nil, fmt.Errorf("new sketch: %w", err)
	}

	var o sketchOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = NewEbitenSource()
	}
	if o.logger == nil {
		level := slog.LevelInfo
		if cfg.Debug {
			level = slog.LevelDebug
		}
		o.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	logger := o.logger.With("sketch", cfg.Title)

	dopts := []DispatcherOption{WithLogger(logger)}
	if o.sink != nil {
		dopts = append(dopts, WithEventSink(o.sink))
	}
	d := NewDispatcher(dopts...)

	return &Sketch{
		Dispatcher:    d,
		Input:         NewInputAdapter(d, o.source, Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}),
		Palette:       pal,
		ScreenshotDir: cfg.ScreenshotDir,
		cfg:           cfg,
		logger:        logger,
	}, nil
}

// Config returns the sketch's configuration with defaults applied.
func (s *Sketch) Config() RunConfig {
	return s.cfg
}

// Logger returns the sketch's logger.
func (s *Sketch) Logger() *slog.Logger {
	return s.logger
}

// DragPoints makes points draggable on this sketch's Dispatcher. A zero
// opts.Radius uses RunConfig.HitRadius.
func (s *Sketch) DragPoints(points []*Vec2, opts DragPointsOptions) HandlerHandle {
	if opts.Radius <= 0 {
		opts.Radius = s.cfg.HitRadius
	}
	return DragPoints(s.Dispatcher, points, opts)
}

// RenderPoint draws p like the package-level RenderPoint, but a nil
// opts.Color takes the sketch palette's white instead of DefaultPalette's.
func (s *Sketch) RenderPoint(dst *ebiten.Image, p Vec2, opts PointOptions) {
	opts.Color = s.paletteColor(opts.Color)
	RenderPoint(dst, p, opts)
}

// RenderSegment draws a to b, defaulting to the sketch palette's white.
func (s *Sketch) RenderSegment(dst *ebiten.Image, a, b Vec2, opts SegmentOptions) {
	opts.Color = s.paletteColor(opts.Color)
	RenderSegment(dst, a, b, opts)
}

func (s *Sketch) paletteColor(c *Color) *Color {
	if c != nil {
		return c
	}
	white := s.Palette.At(White)
	return &white
}

// AddTween advances g every tick until it is done.
func (s *Sketch) AddTween(g *TweenGroup) {
	if g == nil || g.Done {
		return
	}
	s.tweens = append(s.tweens, g)
}

// Update implements ebiten.Game.
func (s *Sketch) Update() error {
	return s.tick(tickSeconds(ebiten.TPS()))
}

// tickSeconds is the duration of one Update at tps ticks per second.
// ebiten.SyncWithFPS and other non-positive values fall back to 60 TPS.
func tickSeconds(tps int) float64 {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1.0 / float64(tps)
}

// tick runs one update step: script, input, tweens, then OnUpdate.
func (s *Sketch) tick(dt float64) error {
	if s.runner != nil {
		s.runner.step(s)
	}
	s.Input.Poll()
	s.updateTweens(float32(dt))
	if s.OnUpdate != nil {
		if err := s.OnUpdate(dt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sketch) updateTweens(dt float32) {
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// Draw implements ebiten.Game.
func (s *Sketch) Draw(screen *ebiten.Image) {
	screen.Fill(s.Palette.Background.RGBA())
	if s.OnDraw != nil {
		s.OnDraw(screen)
	}
	if s.cfg.ShowFPS {
		drawFPS(screen)
	}
	s.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical canvas size is fixed by
// RunConfig so pointer coordinates match drawing coordinates.
func (s *Sketch) Layout(_, _ int) (int, int) {
	return s.cfg.Width, s.cfg.Height
}

// Run opens a window and runs s until the window is closed or OnUpdate
// returns an error.
func Run(s *Sketch) error {
	ebiten.SetWindowSize(s.cfg.Width, s.cfg.Height)
	ebiten.SetWindowTitle(s.cfg.Title)
	if err := ebiten.RunGame(s); err != nil {
		return fmt.Errorf("run sketch %q: %w", s.cfg.Title, err)
	}
	return nil
}
