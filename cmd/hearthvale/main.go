package main

import (
	"flag"
	"log"

	"github.com/quietfoxgames/hearthvale/internal/assets"
	"github.com/quietfoxgames/hearthvale/internal/config"
	"github.com/quietfoxgames/hearthvale/internal/game"
	ebitenrender "github.com/quietfoxgames/hearthvale/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "hearthvale.yaml", "path to the game configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten).
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	images := assets.NewLibrary()
	if err := images.LoadDir(loader, cfg.AssetDir); err != nil {
		// Missing art is never fatal: tiles and sprites without images are
		// simply skipped. Run genassets to produce placeholders.
		log.Printf("Warning: failed to load assets from %s: %v", cfg.AssetDir, err)
	}
	log.Printf("Loaded %d images from %s", images.Len(), cfg.AssetDir)

	g := game.New(cfg, renderer, inputMgr, images)

	engine.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	engine.SetWindowTitle(cfg.Title)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
