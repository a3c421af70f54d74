package cubesim

// CubeFace identifies a face of the cube for the facelet projection.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceF CubeFace = 2 // Front (Green)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceR CubeFace = 4 // Right (Red)
	CubeFaceL CubeFace = 5 // Left (Orange)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

// faceBasis orients the 9 facelets of a face. Facelets are indexed
// row-major 0..8 with 0 top-left when looking straight at the face from
// outside, matching standard facelet diagrams.
var faceBasis = [6]struct {
	normal, right, down Coord
}{
	CubeFaceU: {Coord{0, 1, 0}, Coord{1, 0, 0}, Coord{0, 0, 1}},
	CubeFaceD: {Coord{0, -1, 0}, Coord{1, 0, 0}, Coord{0, 0, -1}},
	CubeFaceF: {Coord{0, 0, 1}, Coord{1, 0, 0}, Coord{0, -1, 0}},
	CubeFaceB: {Coord{0, 0, -1}, Coord{-1, 0, 0}, Coord{0, -1, 0}},
	CubeFaceR: {Coord{1, 0, 0}, Coord{0, 0, -1}, Coord{0, -1, 0}},
	CubeFaceL: {Coord{-1, 0, 0}, Coord{0, 0, 1}, Coord{0, -1, 0}},
}

// faceletCoord returns the grid slot holding facelet index i of a face.
func faceletCoord(f CubeFace, i int) Coord {
	b := faceBasis[f]
	row := i/3 - 1
	col := i%3 - 1
	return Coord{
		X: b.normal.X + b.right.X*col + b.down.X*row,
		Y: b.normal.Y + b.right.Y*col + b.down.Y*row,
		Z: b.normal.Z + b.right.Z*col + b.down.Z*row,
	}
}

// Assembly owns the 27 pieces of the cube and the root frame they live in.
// The root transform carries the whole-cube free rotation; piece transforms
// are relative to it (or to a transient pivot while their layer animates).
type Assembly struct {
	Root   Transform
	pieces []*Piece
}

// NewAssembly creates a solved assembly with standard orientation:
// white on top, green in front.
func NewAssembly() *Assembly {
	a := &Assembly{Root: IdentityTransform()}
	a.Reset()
	return a
}

// Reset discards every piece and rebuilds the canonical solved layout.
// The rebuild is wholesale: old pieces are dropped, never patched.
func (a *Assembly) Reset() {
	coords := gridCoords()
	a.pieces = make([]*Piece, 0, len(coords))
	for i, c := range coords {
		a.pieces = append(a.pieces, newPiece(i, c))
	}
}

// Pieces returns the live piece set. Callers must not grow or shrink it.
func (a *Assembly) Pieces() []*Piece {
	return a.pieces
}

// PieceAt returns the piece currently occupying a grid slot, or nil.
func (a *Assembly) PieceAt(c Coord) *Piece {
	for _, p := range a.pieces {
		if p.Grid == c {
			return p
		}
	}
	return nil
}

// WorldTransform returns the world-space transform of an assembly-owned
// piece. Pieces captured by a pivot go through the engine instead.
func (a *Assembly) WorldTransform(p *Piece) Transform {
	return a.Root.Mul(p.Local)
}

// Spin advances the whole-cube free rotation by one tick: the root frame
// rotates about the given axis at angularSpeed radians per second. A
// zero-length axis skips the tick entirely.
func (a *Assembly) Spin(axis Vec3, angularSpeed, dt float64) {
	if axis.IsZero() || angularSpeed == 0 || dt == 0 {
		return
	}
	step := QuatAxisAngle(axis, angularSpeed*dt)
	a.Root.Rot = step.Mul(a.Root.Rot).Normalize()
}

// Facelets projects the piece stickers onto the classic 6x9 facelet grid.
// Meaningful on a settled assembly; mid-animation the projection reflects
// the state before the in-flight move.
func (a *Assembly) Facelets() [6][9]Color {
	var out [6][9]Color
	for f := CubeFace(0); f < 6; f++ {
		normal := faceBasis[f].normal
		for i := 0; i < 9; i++ {
			out[f][i] = Color('?') // placeholder for a malformed assembly
			p := a.PieceAt(faceletCoord(f, i))
			if p == nil {
				continue
			}
			if c, ok := p.StickerColor(normal); ok {
				out[f][i] = c
			}
		}
	}
	return out
}

// IsSolved reports whether every face shows a single color.
func (a *Assembly) IsSolved() bool {
	facelets := a.Facelets()
	for f := 0; f < 6; f++ {
		first := facelets[f][4]
		for i := 0; i < 9; i++ {
			if facelets[f][i] != first {
				return false
			}
		}
	}
	return true
}

// FaceletString returns the 54-character facelet encoding in URFDLB face
// order, each facelet named by the face its color belongs to when solved.
func (a *Assembly) FaceletString() string {
	colorToFace := map[Color]string{
		White:  "U",
		Red:    "R",
		Green:  "F",
		Yellow: "D",
		Orange: "L",
		Blue:   "B",
	}
	facelets := a.Facelets()
	order := []CubeFace{CubeFaceU, CubeFaceR, CubeFaceF, CubeFaceD, CubeFaceL, CubeFaceB}

	s := ""
	for _, f := range order {
		for i := 0; i < 9; i++ {
			name, ok := colorToFace[facelets[f][i]]
			if !ok {
				name = "?"
			}
			s += name
		}
	}
	return s
}

// String returns a text representation of the cube net.
func (a *Assembly) String() string {
	facelets := a.Facelets()
	result := ""

	// U face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += facelets[CubeFaceU][row*3+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < 3; col++ {
				result += facelets[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += facelets[CubeFaceD][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}
