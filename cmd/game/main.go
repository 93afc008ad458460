package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/temcewen/hexagon-game-sub000/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Hexagon")
	g := game.New()
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
