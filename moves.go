package cubesim

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	sim.Execute(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
var (
	// Right face moves
	R      = MoveFor(FaceR, CW)  // Right clockwise
	RPrime = MoveFor(FaceR, CCW) // Right counter-clockwise

	// Left face moves
	L      = MoveFor(FaceL, CW)  // Left clockwise
	LPrime = MoveFor(FaceL, CCW) // Left counter-clockwise

	// Up face moves
	U      = MoveFor(FaceU, CW)  // Up clockwise
	UPrime = MoveFor(FaceU, CCW) // Up counter-clockwise

	// Down face moves
	D      = MoveFor(FaceD, CW)  // Down clockwise
	DPrime = MoveFor(FaceD, CCW) // Down counter-clockwise

	// Front face moves
	F      = MoveFor(FaceF, CW)  // Front clockwise
	FPrime = MoveFor(FaceF, CCW) // Front counter-clockwise

	// Back face moves
	B      = MoveFor(FaceB, CW)  // Back clockwise
	BPrime = MoveFor(FaceB, CCW) // Back counter-clockwise
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}
