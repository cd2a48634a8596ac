package cubekit

// Predefined moves for convenience.
//
// Example:
//
//	state, err := cubekit.Apply(cubekit.Solved(), cubekit.R)
var (
	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}
	UPrime = Move{Face: FaceU, Turn: CCW}
	U2     = Move{Face: FaceU, Turn: Double}

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}
	DPrime = Move{Face: FaceD, Turn: CCW}
	D2     = Move{Face: FaceD, Turn: Double}

	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}
	RPrime = Move{Face: FaceR, Turn: CCW}
	R2     = Move{Face: FaceR, Turn: Double}

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}
	LPrime = Move{Face: FaceL, Turn: CCW}
	L2     = Move{Face: FaceL, Turn: Double}

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}
	FPrime = Move{Face: FaceF, Turn: CCW}
	F2     = Move{Face: FaceF, Turn: Double}

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}
	BPrime = Move{Face: FaceB, Turn: CCW}
	B2     = Move{Face: FaceB, Turn: Double}
)

// AllMoves lists the 18 canonical moves: each face with each magnitude.
var AllMoves = []Move{
	U, UPrime, U2,
	D, DPrime, D2,
	R, RPrime, R2,
	L, LPrime, L2,
	F, FPrime, F2,
	B, BPrime, B2,
}
