// Package cubesim simulates a 3x3x3 twisty puzzle driven by pointer,
// touch and keyboard gestures.
//
// # Features
//
//   - Exact 27-cubie grid model with integer rotation arithmetic
//   - Single-flight animated layer rotation with FIFO queueing
//   - Pointer-drag gesture interpretation with corner disambiguation
//     and snap-to-quarter-turn completion
//   - Move history with reversal-based solving and random scrambling
//   - View-relative keyboard mapping
//
// # Quick start
//
// Create a simulator, feed it input, and pump frames:
//
//	sim := cubesim.New()
//
//	sim.OnMove(func(m cubesim.Move) {
//	    fmt.Println("Move:", m.Notation())
//	})
//	sim.OnStatus(func(status string) {
//	    fmt.Println(status)
//	})
//
//	sim.Scramble()
//	for running {
//	    sim.Update(dt) // once per display frame
//	}
//	sim.Solve()
//
// # Standalone cube model
//
// The Cube type can be used without animation:
//
//	cube := cubesim.NewCube(cubesim.NewMemScene())
//	cube.ApplyNotation("R U R' U'")
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println(cube.Facelets())
//
// # Predefined moves
//
// The package provides predefined moves for convenience:
//
//	cubesim.R      // Right clockwise
//	cubesim.RPrime // Right counter-clockwise
//	// ... and similarly for L, U, D, F, B
//
// # Rendering boundary
//
// The core never renders pixels. It manipulates nodes through the Scene
// interface; the in-memory MemScene backs headless use and tests, and a
// renderer implements the same interface to display the cube.
package cubesim
