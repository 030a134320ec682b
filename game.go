package main

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/brickpong/config"
	"github.com/milk9111/brickpong/ecs"
	"github.com/milk9111/brickpong/ecs/system"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type gameState int

const (
	stateMenu gameState = iota
	statePlaying
	statePaused
)

type Game struct {
	cfg     *config.Config
	cfgPath string
	muted   bool
	tps     int

	state gameState
	world *ecs.World

	render     *system.RenderSystem
	scoreboard *system.ScoreboardSystem

	menuUI  *ebitenui.UI
	pauseUI *ebitenui.UI

	watcher     *config.Watcher
	configDirty bool
}

func NewGame(cfg *config.Config, cfgPath string, tps int, muted bool) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		cfgPath: cfgPath,
		muted:   muted,
		tps:     tps,
		state:   stateMenu,
	}
	g.menuUI = NewMenuUI(g)
	g.pauseUI = NewPauseUI(g)

	watcher, err := config.NewWatcher(cfgPath)
	if err != nil {
		log.Printf("config watch disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset rebuilds the world and its systems from the current config.
// It is the only place a config change takes effect.
func (g *Game) reset() error {
	cfg := g.cfg
	dt := 1.0 / float64(g.tps)

	w := buildWorld(cfg, g.muted)

	input, err := system.NewInputSystem(cfg.Players)
	if err != nil {
		return err
	}

	collision := system.NewCollisionSystem(
		cfg.Ball.Growth,
		cfg.Ball.MaxSpeed,
		cfg.Ball.DuplicateChance,
		rand.New(rand.NewSource(rand.Int63())),
	)
	if cfg.SpawnPolicy() == config.SpawnAtStart {
		collision.SpawnAtStart = true
		collision.StartX = cfg.Ball.StartX
		collision.StartY = cfg.Ball.StartY
	}

	w.AddSystem(input)
	w.AddSystem(system.NewMovementSystem(dt, cfg.Arena.Left, cfg.Arena.Bottom, cfg.Arena.Right, cfg.Arena.Top, cfg.Ball.ClampPadding))
	w.AddSystem(system.NewPaddleControllerSystem(dt))
	w.AddSystem(collision)
	w.AddSystem(system.NewSoundSystem())
	w.AddSystem(system.NewSpeedSystem())

	names := make([]string, len(cfg.Players))
	for i, p := range cfg.Players {
		names[i] = p.Name
	}

	g.world = w
	g.render = system.NewRenderSystem(cfg.Arena.Left, cfg.Arena.Right, cfg.Arena.Bottom, cfg.Arena.Top)
	g.scoreboard = system.NewScoreboardSystem(names, cfg.Colors.Text.NRGBA, cfg.Colors.Score.NRGBA)
	return nil
}

// startMatch is called from the menu. A pending config edit is picked
// up here, never mid-match.
func (g *Game) startMatch() {
	if g.configDirty {
		cfg, err := config.Load(g.cfgPath)
		if err != nil {
			log.Printf("keeping previous config: %v", err)
		} else {
			g.cfg = cfg
		}
		g.configDirty = false
	}
	if err := g.reset(); err != nil {
		log.Printf("reset failed: %v", err)
		return
	}
	g.state = statePlaying
}

func (g *Game) Update() error {
	g.pollWatcher()

	switch g.state {
	case stateMenu:
		g.menuUI.Update()
	case statePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.state = statePaused
			return nil
		}
		g.world.Update()
	case statePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.state = statePlaying
			return nil
		}
		g.pauseUI.Update()
	}
	return nil
}

func (g *Game) pollWatcher() {
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
			log.Printf("config changed: %s (applied on next match)", name)
			g.configDirty = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Colors.Background.NRGBA)

	g.render.Draw(g.world, screen)
	g.scoreboard.Draw(g.world, screen)

	switch g.state {
	case stateMenu:
		g.menuUI.Draw(screen)
	case statePaused:
		// dim the arena behind the pause panel
		vector.DrawFilledRect(screen, 0, 0,
			float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
			color.NRGBA{A: 120}, false)
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
