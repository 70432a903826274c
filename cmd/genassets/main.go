// Command genassets writes the placeholder PNG set (every tile variant plus
// entity and decor sprites) into the asset directory the game loads from.
package main

import (
	"flag"
	"log"

	"github.com/quietfoxgames/hearthvale/internal/placeholders"
)

func main() {
	outDir := flag.String("out", "assets", "directory to write placeholder images into")
	flag.Parse()

	log.Printf("Generating placeholder assets in %s...", *outDir)
	if err := placeholders.GenerateAll(*outDir); err != nil {
		log.Fatalf("Failed to generate assets: %v", err)
	}
	log.Println("Done.")
}
