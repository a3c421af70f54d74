package cubesim

import (
	"fmt"
	"math"
	"strings"
)

// Axis identifies one of the three grid axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Vec returns the unit vector pointing along the positive axis direction.
func (a Axis) Vec() Vec3 {
	switch a {
	case AxisX:
		return Vec3{X: 1}
	case AxisY:
		return Vec3{Y: 1}
	default:
		return Vec3{Z: 1}
	}
}

// QuarterTurn is the angle of a single face turn in radians.
const QuarterTurn = math.Pi / 2

// Move is a single layer rotation request. Angle is in radians; a positive
// angle turns the layer clockwise as seen from the positive end of the axis,
// so {AxisX, 1, QuarterTurn} is the face move R.
//
// Moves are immutable once enqueued.
type Move struct {
	Axis  Axis
	Layer int     // -1, 0 or 1
	Angle float64 // ±QuarterTurn, or ±2*QuarterTurn for a half turn
}

// Turn represents the direction and magnitude of a face turn in notation.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// faceDefs maps a notation letter to the layer it turns and the sign a
// clockwise turn of that face has in the positive-axis convention.
// Slice moves M, E and S follow L, D and F respectively.
var faceDefs = map[byte]struct {
	axis  Axis
	layer int
	sign  float64
}{
	'R': {AxisX, 1, 1},
	'L': {AxisX, -1, -1},
	'U': {AxisY, 1, 1},
	'D': {AxisY, -1, -1},
	'F': {AxisZ, 1, 1},
	'B': {AxisZ, -1, -1},
	'M': {AxisX, 0, -1},
	'E': {AxisY, 0, -1},
	'S': {AxisZ, 0, 1},
}

// faceOrder fixes the lookup order for Notation so that face letters win
// over slice letters when both share an axis.
var faceOrder = []byte{'R', 'L', 'U', 'D', 'F', 'B', 'M', 'E', 'S'}

// FaceMove builds the Move for a notation face letter and turn.
func FaceMove(face byte, turn Turn) (Move, error) {
	def, ok := faceDefs[face]
	if !ok {
		return Move{}, ErrInvalidNotation
	}
	return Move{
		Axis:  def.axis,
		Layer: def.layer,
		Angle: def.sign * float64(turn) * QuarterTurn,
	}, nil
}

// Inverse returns the move that undoes this one.
// Half turns are their own inverse.
func (m Move) Inverse() Move {
	inv := m
	inv.Angle = -m.Angle
	return inv
}

// quarterTurns returns the move's angle in signed quarter turns,
// rounded to the nearest whole turn.
func (m Move) quarterTurns() int {
	return int(math.Round(m.Angle / QuarterTurn))
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, M, E', S2.
func (m Move) Notation() string {
	qt := m.quarterTurns()
	for _, letter := range faceOrder {
		def := faceDefs[letter]
		if def.axis != m.Axis || def.layer != m.Layer {
			continue
		}
		suffix := ""
		switch {
		case qt == 2 || qt == -2:
			suffix = "2"
		case float64(qt)*def.sign < 0:
			suffix = "'"
		}
		return string(letter) + suffix
	}
	// Not reachable for grid layers; kept for malformed moves.
	return fmt.Sprintf("%s[%d]%+d", m.Axis, m.Layer, qt*90)
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, M', S2.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	face := s[0]
	if face >= 'a' && face <= 'z' {
		face -= 'a' - 'A'
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2", "2'", "2`":
			turn = Double
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return FaceMove(face, turn)
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Invalid tokens are skipped.
func ParseMoves(s string) []Move {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			continue
		}
		moves = append(moves, move)
	}

	return moves
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
