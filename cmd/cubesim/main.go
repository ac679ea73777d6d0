// Cube Simulator - interactive 3x3x3 twisty puzzle for the terminal.
package main

import (
	"github.com/SeamusWaldron/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
