package cubekit

// This file is the single source of truth for cube geometry. The move
// engine and the structural validator both read these tables; there is
// deliberately no second copy anywhere in the package.
//
// Facelet indices follow the canonical unfolding: U 0-8, R 9-17, F 18-26,
// D 27-35, L 36-44, B 45-53, each face row-major as seen from outside that
// face (U with B at the top row, D with F at the top row).

// Face identifies one of the six cube faces by its canonical letter.
type Face string

const (
	FaceU Face = "U" // Up
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceB Face = "B" // Back
)

// Faces lists all six faces in canonical state order.
var Faces = []Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// faceBase maps each face to the index of its first facelet.
var faceBase = map[Face]int{
	FaceU: 0, FaceR: 9, FaceF: 18, FaceD: 27, FaceL: 36, FaceB: 45,
}

// centerIndex maps each face to its fixed center facelet. Centers never
// move under any face turn.
var centerIndex = map[Face]int{
	FaceU: 4, FaceR: 13, FaceF: 22, FaceD: 31, FaceL: 40, FaceB: 49,
}

// oppositeFace maps each face to the face on the other end of its axis.
var oppositeFace = map[Face]Face{
	FaceU: FaceD, FaceD: FaceU,
	FaceR: FaceL, FaceL: FaceR,
	FaceF: FaceB, FaceB: FaceF,
}

// moveCycles holds, per face, the five disjoint 4-cycles that make up one
// clockwise quarter turn: the turned face's corner ring, its edge ring,
// and the three cycles over the side facelets of the four neighboring
// faces. A cycle (a,b,c,d) moves the facelet at a to b, b to c, c to d,
// and d back to a.
//
// Worked example, U: seen from above, the face corners run
// 0 -> 2 -> 8 -> 6 and the top rows of the side faces flow
// F -> L -> B -> R, so F's 18,19,20 land on L's 36,37,38 and so on.
var moveCycles = map[Face][5][4]int{
	FaceU: {
		{0, 2, 8, 6},
		{1, 5, 7, 3},
		{18, 36, 45, 9},
		{19, 37, 46, 10},
		{20, 38, 47, 11},
	},
	FaceR: {
		{9, 11, 17, 15},
		{10, 14, 16, 12},
		{20, 2, 51, 29},
		{23, 5, 48, 32},
		{26, 8, 45, 35},
	},
	FaceF: {
		{18, 20, 26, 24},
		{19, 23, 25, 21},
		{6, 9, 29, 44},
		{7, 12, 28, 41},
		{8, 15, 27, 38},
	},
	FaceD: {
		{27, 29, 35, 33},
		{28, 32, 34, 30},
		{24, 15, 51, 42},
		{25, 16, 52, 43},
		{26, 17, 53, 44},
	},
	FaceL: {
		{36, 38, 44, 42},
		{37, 41, 43, 39},
		{0, 18, 27, 53},
		{3, 21, 30, 50},
		{6, 24, 33, 47},
	},
	FaceB: {
		{45, 47, 53, 51},
		{46, 50, 52, 48},
		{2, 36, 33, 17},
		{1, 39, 34, 14},
		{0, 42, 35, 11},
	},
}

// edgePieces lists the facelet index pair of each of the 12 edge pieces.
var edgePieces = [12][2]int{
	{5, 10},  // UR
	{7, 19},  // UF
	{3, 37},  // UL
	{1, 46},  // UB
	{32, 16}, // DR
	{28, 25}, // DF
	{30, 43}, // DL
	{34, 52}, // DB
	{23, 12}, // FR
	{21, 41}, // FL
	{50, 39}, // BL
	{48, 14}, // BR
}

// cornerPieces lists the facelet index triple of each of the 8 corner
// pieces.
var cornerPieces = [8][3]int{
	{8, 9, 20},   // URF
	{6, 18, 38},  // UFL
	{0, 36, 47},  // ULB
	{2, 45, 11},  // UBR
	{29, 26, 15}, // DFR
	{27, 44, 24}, // DLF
	{33, 53, 42}, // DBL
	{35, 17, 51}, // DRB
}
