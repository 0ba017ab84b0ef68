package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/canvasball/ball"
	"github.com/milk9111/canvasball/canvas"
	"github.com/milk9111/canvasball/config"
	"github.com/milk9111/canvasball/input"
)

type poller interface {
	Poll()
}

type Game struct {
	frames int
	debug  bool

	width, height int
	background    color.Color

	tracker  *input.Tracker
	keyboard poller
	keys     *ball.KeyBinding
	canvas   *canvas.Canvas
	ball     *ball.Ball

	configPath string
	watcher    *config.Watcher
}

func NewGame(cfg *config.Config, configPath string, debug bool) *Game {
	tracker := input.NewTracker()
	keyboard := input.NewKeyboard()
	keyboard.Subscribe(tracker)

	keys := cfg.Ball.Binding()
	warnUnknownKeys(keys)

	cv := canvas.New(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	b := ball.New(cv, tracker, cfg.Ball.Radius, cfg.Ball.Color, cfg.Ball.Acceleration, &keys)
	b.X, b.Y = cfg.Ball.StartX, cfg.Ball.StartY

	g := &Game{
		debug:      debug,
		width:      cfg.GetScreenWidth(),
		height:     cfg.GetScreenHeight(),
		tracker:    tracker,
		keyboard:   keyboard,
		keys:       &keys,
		canvas:     cv,
		ball:       b,
		configPath: configPath,
	}
	g.setBackground(cfg.Display.Background)

	if configPath != "" {
		w, err := config.NewWatcher(filepath.Dir(configPath))
		if err != nil {
			log.Printf("config hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("failed to close config watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.step()
	return nil
}

// step runs one frame: apply config changes, read input, then erase, move
// and redraw the ball.
func (g *Game) step() {
	g.pollConfig()
	g.keyboard.Poll()

	g.ball.Undraw()
	g.ball.Update()
	g.ball.Draw()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	screen.DrawImage(g.canvas.Image(), nil)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f  Frames: %d\npos: (%.1f, %.1f)  speed: (%.2f, %.2f)\nheld: %s",
			ebiten.ActualFPS(), g.frames,
			g.ball.X, g.ball.Y, g.ball.SpeedX, g.ball.SpeedY,
			strings.Join(g.tracker.Held(), " "),
		))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// pollConfig drains pending watcher events without blocking the frame.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if sameFile(name, g.configPath) {
				g.reload()
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("config watcher: %v", err)
			}
		default:
			return
		}
	}
}

// reload swaps the bound keys and color in place. Radius, acceleration and
// screen size are fixed for the ball's lifetime.
func (g *Game) reload() {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		log.Printf("failed to reload config %s, keeping previous values: %v", g.configPath, err)
		return
	}

	keys := cfg.Ball.Binding()
	warnUnknownKeys(keys)
	*g.keys = keys
	g.ball.Color = cfg.Ball.Color
	g.setBackground(cfg.Display.Background)
	log.Printf("reloaded config %s", g.configPath)
}

func (g *Game) setBackground(style string) {
	bg, err := canvas.ParseColor(style)
	if err != nil {
		log.Printf("invalid background %q, keeping previous: %v", style, err)
		if g.background == nil {
			g.background = color.Black
		}
		return
	}
	g.background = bg
}

func warnUnknownKeys(keys ball.KeyBinding) {
	for _, k := range []string{keys.Up, keys.Down, keys.Left, keys.Right} {
		if _, ok := input.ParseKeyName(k); !ok {
			log.Printf("key %q is not a known keyboard key and will never be held", k)
		}
	}
}

func sameFile(a, b string) bool {
	x, errA := filepath.Abs(a)
	y, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return x == y
}
