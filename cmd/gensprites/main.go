package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/sprites"
)

func main() {
	out := flag.String("out", "assets/sprites", "Directory to write PNG files to")
	flag.Parse()

	fmt.Println("Frontier Placeholder Sprite Generator")
	fmt.Println("=====================================")
	fmt.Println()

	paths, err := sprites.SaveAll(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, p := range paths {
		fmt.Println("  wrote", p)
	}

	fmt.Println()
	fmt.Printf("Done! %d sprites written to %s\n", len(paths), *out)
}
