package cubesim

import "math"

// Coord is a logical cube slot on the discrete 3x3x3 grid.
// Each component is -1, 0 or 1.
type Coord struct {
	X, Y, Z int
}

// Vec returns the slot center as a continuous position.
func (c Coord) Vec() Vec3 {
	return Vec3{float64(c.X), float64(c.Y), float64(c.Z)}
}

// Component returns the coordinate along the given axis.
func (c Coord) Component(a Axis) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

// gridCoords returns the 27 slots of the cube in a stable order.
func gridCoords() []Coord {
	coords := make([]Coord, 0, 27)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				coords = append(coords, Coord{x, y, z})
			}
		}
	}
	return coords
}

// layerTolerance absorbs floating-point error left over from prior
// rotations when matching a piece position against a layer coordinate.
// Snapped assemblies are exact; anything within a tenth of a slot matches.
const layerTolerance = 0.1

// SelectLayer returns the pieces whose position along axis is within
// tolerance of layer. On a well-formed assembly this is exactly 9 pieces
// for layer in {-1,0,1} and empty for anything else; callers treat an
// empty selection as a no-op, not an error.
func SelectLayer(pieces []*Piece, axis Axis, layer int) []*Piece {
	target := float64(layer)
	var selected []*Piece
	for _, p := range pieces {
		var v float64
		switch axis {
		case AxisX:
			v = p.Local.Pos.X
		case AxisY:
			v = p.Local.Pos.Y
		default:
			v = p.Local.Pos.Z
		}
		if math.Abs(v-target) <= layerTolerance {
			selected = append(selected, p)
		}
	}
	return selected
}

// SnapTransform rounds a transform to the nearest canonical grid pose:
// each position component to the nearest integer, and the orientation to
// the nearest 90-degree lattice rotation. Applying it twice yields the
// same result as once.
func SnapTransform(t Transform) Transform {
	return Transform{
		Pos: Vec3{
			X: math.Round(t.Pos.X),
			Y: math.Round(t.Pos.Y),
			Z: math.Round(t.Pos.Z),
		},
		Rot: snapQuat(t.Rot),
	}
}

// snapQuat rounds a rotation to the nearest member of the 24-element cube
// rotation group. For a rotation near the lattice, rounding each matrix
// entry to -1, 0 or 1 recovers the exact signed permutation matrix.
func snapQuat(q Quat) Quat {
	m := q.Matrix()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = math.Round(m[i][j])
			if m[i][j] > 1 {
				m[i][j] = 1
			} else if m[i][j] < -1 {
				m[i][j] = -1
			}
		}
	}
	return quatFromMatrix(m)
}
