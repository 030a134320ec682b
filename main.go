package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/brickpong/config"
)

func main() {
	configPath := flag.String("config", "brickpong.yaml", "path to the config file (written with defaults if missing)")
	tps := flag.Int("tps", 64, "simulation ticks per second")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if *tps <= 0 {
		log.Fatalf("tps must be positive, got %d", *tps)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(cfg, *configPath, *tps, *mute)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetTPS(*tps)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("brickpong")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
