package cubesim

import (
	"math"
	"testing"
)

func TestSelectLayerReturnsNineForAllPairs(t *testing.T) {
	a := NewAssembly()
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for layer := -1; layer <= 1; layer++ {
			got := SelectLayer(a.Pieces(), axis, layer)
			if len(got) != 9 {
				t.Errorf("SelectLayer(%s, %d) = %d pieces, want 9", axis, layer, len(got))
			}
		}
	}
}

func TestSelectLayerOutOfRangeIsEmpty(t *testing.T) {
	a := NewAssembly()
	if got := SelectLayer(a.Pieces(), AxisX, 2); len(got) != 0 {
		t.Errorf("SelectLayer(x, 2) = %d pieces, want 0", len(got))
	}
}

func TestSelectLayerToleratesDrift(t *testing.T) {
	a := NewAssembly()
	// Nudge every piece by less than the tolerance.
	for _, p := range a.Pieces() {
		p.Local.Pos.X += 0.01
		p.Local.Pos.Y -= 0.02
	}
	for layer := -1; layer <= 1; layer++ {
		if got := SelectLayer(a.Pieces(), AxisY, layer); len(got) != 9 {
			t.Errorf("drifted SelectLayer(y, %d) = %d pieces, want 9", layer, len(got))
		}
	}
}

func TestSnapTransformRoundsPosition(t *testing.T) {
	in := Transform{
		Pos: Vec3{0.9999998, -1.0000004, 0.0000003},
		Rot: IdentityQuat(),
	}
	out := SnapTransform(in)
	want := Vec3{1, -1, 0}
	if out.Pos != want {
		t.Errorf("snapped position = %+v, want %+v", out.Pos, want)
	}
}

func TestSnapTransformSnapsOrientation(t *testing.T) {
	// A rotation slightly off the 90-degree lattice snaps onto it.
	in := Transform{
		Pos: Vec3{1, 0, 0},
		Rot: QuatAxisAngle(Vec3{Y: 1}, math.Pi/2+0.0004),
	}
	out := SnapTransform(in)

	exact := QuatAxisAngle(Vec3{Y: 1}, math.Pi/2)
	for _, v := range []Vec3{{X: 1}, {Y: 1}, {Z: 1}} {
		if !vecNear(out.Rot.Rotate(v), exact.Rotate(v), 1e-6) {
			t.Errorf("snapped rotation of %+v = %+v, want %+v",
				v, out.Rot.Rotate(v), exact.Rotate(v))
		}
	}
}

func TestSnapTransformIdempotent(t *testing.T) {
	in := Transform{
		Pos: Vec3{-0.9999, 0.0001, 1.0002},
		Rot: QuatAxisAngle(Vec3{X: 1}, -math.Pi/2+0.001),
	}
	once := SnapTransform(in)
	twice := SnapTransform(once)

	if once.Pos != twice.Pos {
		t.Errorf("snap not idempotent on position: %+v vs %+v", once.Pos, twice.Pos)
	}
	for _, v := range []Vec3{{X: 1}, {Y: 1}, {Z: 1}} {
		if !vecNear(once.Rot.Rotate(v), twice.Rot.Rotate(v), 1e-9) {
			t.Errorf("snap not idempotent on rotation of %+v", v)
		}
	}
}

func TestGridCoordsCoverAllSlots(t *testing.T) {
	coords := gridCoords()
	if len(coords) != 27 {
		t.Fatalf("gridCoords() = %d slots, want 27", len(coords))
	}
	seen := map[Coord]bool{}
	for _, c := range coords {
		if seen[c] {
			t.Errorf("duplicate slot %+v", c)
		}
		seen[c] = true
	}
}
