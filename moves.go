package cubesim

// Predefined moves for convenience. These cover the 18 standard face moves
// plus the slice moves M, E and S.
var (
	R      = mustFaceMove('R', CW)
	RPrime = mustFaceMove('R', CCW)
	R2     = mustFaceMove('R', Double)
	L      = mustFaceMove('L', CW)
	LPrime = mustFaceMove('L', CCW)
	L2     = mustFaceMove('L', Double)
	U      = mustFaceMove('U', CW)
	UPrime = mustFaceMove('U', CCW)
	U2     = mustFaceMove('U', Double)
	D      = mustFaceMove('D', CW)
	DPrime = mustFaceMove('D', CCW)
	D2     = mustFaceMove('D', Double)
	F      = mustFaceMove('F', CW)
	FPrime = mustFaceMove('F', CCW)
	F2     = mustFaceMove('F', Double)
	B      = mustFaceMove('B', CW)
	BPrime = mustFaceMove('B', CCW)
	B2     = mustFaceMove('B', Double)
	M      = mustFaceMove('M', CW)
	MPrime = mustFaceMove('M', CCW)
	E      = mustFaceMove('E', CW)
	EPrime = mustFaceMove('E', CCW)
	S      = mustFaceMove('S', CW)
	SPrime = mustFaceMove('S', CCW)
)

func mustFaceMove(face byte, turn Turn) Move {
	m, err := FaceMove(face, turn)
	if err != nil {
		panic(err)
	}
	return m
}
