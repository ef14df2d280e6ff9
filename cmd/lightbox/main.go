package main

import (
	"errors"
	"flag"
	"log"

	"chosenoffset.com/lightbox/internal/game"
	"chosenoffset.com/lightbox/internal/raycast"
	ebitenrender "chosenoffset.com/lightbox/internal/render/ebiten"
	"chosenoffset.com/lightbox/internal/scene"
)

func main() {
	// Command-line flags
	scenePath := flag.String("scene", "", "Scene JSON file (default: built-in room)")
	angleStep := flag.Float64("step", 0.05, "Sweep angular step in degrees")
	decay := flag.Float64("decay", 0.005, "Beam attenuation constant")
	flag.Parse()

	screenWidth := 800
	screenHeight := 600

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	// Load the scene, or fall back to the built-in room
	var sc *scene.Scene
	if *scenePath != "" {
		log.Printf("Loading scene: %s", *scenePath)
		loaded, err := scene.Load(*scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
		sc = loaded
	} else {
		sc = scene.Default()
	}

	log.Printf("Scene has %d walls", len(sc.Walls()))

	cfg := raycast.DefaultConfig()
	cfg.AngleStepDeg = *angleStep
	cfg.Decay = *decay
	if cfg.AngleStepDeg <= 0 {
		log.Fatalf("Invalid angle step: %g", cfg.AngleStepDeg)
	}
	if cfg.Decay <= 0 {
		log.Fatalf("Invalid decay constant: %g", cfg.Decay)
	}

	log.Printf("Sweep resolution: %g deg (%d rays), decay k=%g",
		cfg.AngleStepDeg, cfg.RayCount(), cfg.Decay)

	caster := raycast.NewCaster(cfg, sc)
	g := game.New(sc, caster, renderer, inputMgr, screenWidth, screenHeight)

	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("Lightbox - 2D Ray Casting")

	log.Printf("Starting render loop...")
	if err := engine.RunGame(g); err != nil && !errors.Is(err, game.ErrQuit) {
		log.Fatal(err)
	}
}
