package cubesim

import "math"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// sticker is one colored facelet of a piece, keyed by its outward normal
// in the piece's home orientation. The mapping is static; how a sticker
// currently faces is derived from the piece's orientation.
type sticker struct {
	normal Coord
	color  Color
}

// Piece is one of the 27 cubies of the assembly.
//
// Local is the piece's transform relative to its current owner frame: the
// assembly root normally, or a transient pivot while a rotation of its
// layer is animating. After every completed move Local.Pos rounds exactly
// to Grid and Local.Rot is a 90-degree lattice rotation.
type Piece struct {
	ID    int
	Grid  Coord // current logical slot
	Home  Coord // slot at creation; immutable, used for resets
	Local Transform

	stickers []sticker
}

// newPiece creates a piece sitting at its home slot in solved orientation.
func newPiece(id int, home Coord) *Piece {
	p := &Piece{
		ID:   id,
		Grid: home,
		Home: home,
		Local: Transform{
			Pos: home.Vec(),
			Rot: IdentityQuat(),
		},
	}

	// One sticker per outer surface the home slot touches. Center piece
	// (0,0,0) has none.
	if home.X == 1 {
		p.stickers = append(p.stickers, sticker{Coord{1, 0, 0}, Red})
	}
	if home.X == -1 {
		p.stickers = append(p.stickers, sticker{Coord{-1, 0, 0}, Orange})
	}
	if home.Y == 1 {
		p.stickers = append(p.stickers, sticker{Coord{0, 1, 0}, White})
	}
	if home.Y == -1 {
		p.stickers = append(p.stickers, sticker{Coord{0, -1, 0}, Yellow})
	}
	if home.Z == 1 {
		p.stickers = append(p.stickers, sticker{Coord{0, 0, 1}, Green})
	}
	if home.Z == -1 {
		p.stickers = append(p.stickers, sticker{Coord{0, 0, -1}, Blue})
	}

	return p
}

// StickerColor returns the color of the sticker currently facing dir
// (a unit grid direction), and whether the piece has one there.
func (p *Piece) StickerColor(dir Coord) (Color, bool) {
	for _, s := range p.stickers {
		cur := p.Local.Rot.Rotate(s.normal.Vec())
		if roundCoord(cur) == dir {
			return s.color, true
		}
	}
	return 0, false
}

// IsHome reports whether the piece sits in its home slot with solved
// orientation.
func (p *Piece) IsHome() bool {
	if p.Grid != p.Home {
		return false
	}
	m := p.Local.Rot.Matrix()
	return math.Round(m[0][0]) == 1 && math.Round(m[1][1]) == 1 && math.Round(m[2][2]) == 1
}

// roundCoord rounds a continuous position to its nearest grid slot.
func roundCoord(v Vec3) Coord {
	return Coord{
		X: int(math.Round(v.X)),
		Y: int(math.Round(v.Y)),
		Z: int(math.Round(v.Z)),
	}
}
