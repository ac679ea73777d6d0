package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
)

var (
	scrambleLen  int
	scrambleSeed int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble",
	Long: `Generate a random scramble sequence and show the resulting cube.

Each move picks one of the six faces uniformly; a fair coin decides the
counter-clockwise suffix.`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleLen, "moves", "n", 20, "Number of scramble moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	moves := make([]cubesim.Move, scrambleLen)
	for i := range moves {
		face := cubesim.Faces[rng.Intn(len(cubesim.Faces))]
		dir := cubesim.CW
		if rng.Intn(2) == 1 {
			dir = cubesim.CCW
		}
		moves[i] = cubesim.MoveFor(face, dir)
	}

	cube := cubesim.NewCube(cubesim.NewMemScene())
	cube.ApplyMoves(moves)

	fmt.Println(cubesim.FormatMoves(moves))
	fmt.Println()
	fmt.Print(renderNet(cube.Facelets()))

	if verbose {
		fmt.Printf("\nSeed: %d\n", seed)
	}

	return nil
}
