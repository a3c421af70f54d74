package cubesim

import (
	"math/rand"
	"testing"
)

// settle advances the sim until no queue run is active.
func settle(t *testing.T, s *Sim) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if !s.IsShuffling() {
			return
		}
		s.Advance(1)
	}
	t.Fatal("sim never settled")
}

func TestNewSimIsSolved(t *testing.T) {
	s := NewSim()
	if !s.IsSolved() {
		t.Error("new sim should be solved")
	}
	if s.IsShuffling() {
		t.Error("new sim should not be shuffling")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	s := NewSim()
	s.Play(R)
	settle(t, s)
	if s.IsSolved() {
		t.Error("cube should not be solved after R")
	}
}

func TestRRRR_ReturnsToSolved(t *testing.T) {
	s := NewSim()
	s.Play(R, R, R, R)
	settle(t, s)
	if !s.IsSolved() {
		t.Error("R R R R should return to solved")
		t.Log(s.String())
	}
}

func TestR2R2_ReturnsToSolved(t *testing.T) {
	s := NewSim()
	s.Play(R2, R2)
	settle(t, s)
	if !s.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(s.String())
	}
}

func TestFourTurns_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, m := range []Move{U, D, F, B, R, L, M, E, S} {
		s := NewSim()
		s.Play(m, m, m, m)
		settle(t, s)
		if !s.IsSolved() {
			t.Errorf("%s x 4 should return to solved", m)
			t.Log(s.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	s := NewSim()
	for i := 0; i < 6; i++ {
		s.Play(R, U, RPrime, UPrime)
	}
	settle(t, s)
	if !s.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
		t.Log(s.String())
	}
}

func TestScrambleAndReverse(t *testing.T) {
	s := NewSim()
	scramble := ParseMoves("R U R' U' F D L2")
	s.Play(scramble...)
	settle(t, s)
	if s.IsSolved() {
		t.Error("cube should be scrambled")
	}

	for i := len(scramble) - 1; i >= 0; i-- {
		s.Play(scramble[i].Inverse())
	}
	settle(t, s)
	if !s.IsSolved() {
		t.Error("cube should be solved after reversing scramble")
		t.Log(s.String())
	}
}

func TestShuffleThenResetRestoresHome(t *testing.T) {
	s := NewSim(WithRand(rand.New(rand.NewSource(7))))

	moves := s.Shuffle()
	if len(moves) != DefaultShuffleLength {
		t.Fatalf("shuffle generated %d moves, want %d", len(moves), DefaultShuffleLength)
	}
	if !s.IsShuffling() {
		t.Fatal("sim should be shuffling after Shuffle")
	}
	settle(t, s)

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset after settle: %v", err)
	}
	for _, p := range s.Assembly().Pieces() {
		if !p.IsHome() {
			t.Errorf("piece %d not at home after reset: %+v", p.ID, p.Grid)
		}
	}
	if !s.IsSolved() {
		t.Error("sim should be solved after reset")
	}
}

func TestShuffleWhileShufflingIsNoOp(t *testing.T) {
	s := NewSim(WithRand(rand.New(rand.NewSource(7))))
	first := s.Shuffle()
	if first == nil {
		t.Fatal("first shuffle should generate moves")
	}
	if second := s.Shuffle(); second != nil {
		t.Error("shuffle during an active shuffle should be a silent no-op")
	}
	settle(t, s)
}

func TestResetDuringRotationIsRejected(t *testing.T) {
	s := NewSim()
	s.Play(R)
	s.Advance(0.01) // starts animating, far from done

	if err := s.Reset(); err != ErrRotationActive {
		t.Errorf("Reset mid-rotation returned %v, want ErrRotationActive", err)
	}

	settle(t, s)
	if err := s.Reset(); err != nil {
		t.Errorf("Reset after settling returned %v", err)
	}
}

func TestResetDiscardsQueuedMoves(t *testing.T) {
	s := NewSim()
	s.Queue().Enqueue(R, U, F) // queued but no run started

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if s.Queue().Len() != 0 {
		t.Errorf("queue still holds %d moves after reset", s.Queue().Len())
	}
}

func TestSpecExampleTopLayerMapping(t *testing.T) {
	s := NewSim()
	a := s.Assembly()
	from := a.PieceAt(Coord{1, 1, 0})
	chained := a.PieceAt(Coord{0, 1, 1})

	s.Play(Move{Axis: AxisY, Layer: 1, Angle: QuarterTurn})
	settle(t, s)

	if from.Grid != (Coord{0, 1, 1}) {
		t.Errorf("(1,1,0) moved to %+v, want (0,1,1)", from.Grid)
	}
	if chained.Grid != (Coord{-1, 1, 0}) {
		t.Errorf("(0,1,1) moved to %+v, want (-1,1,0)", chained.Grid)
	}
	for _, p := range a.Pieces() {
		if p.Home.Y != 1 && p.Grid != p.Home {
			t.Errorf("piece outside y=1 moved: %+v -> %+v", p.Home, p.Grid)
		}
	}
}

func TestPieceWorldDuringRotation(t *testing.T) {
	s := NewSim()
	a := s.Assembly()
	captured := a.PieceAt(Coord{1, 1, 0})
	bystander := a.PieceAt(Coord{1, -1, 0})

	s.Play(U)
	s.Advance(0.01) // tick that starts the rotation
	s.Advance(0.2)  // mid-animation

	capturedWorld := s.PieceWorld(captured)
	if vecNear(capturedWorld.Pos, Coord{1, 1, 0}.Vec(), 1e-6) {
		t.Error("captured piece should have moved mid-animation")
	}
	if !vecNear(s.PieceWorld(bystander).Pos, bystander.Grid.Vec(), floatTol) {
		t.Error("bystander should be exactly at its slot mid-animation")
	}

	settle(t, s)
	if !vecNear(s.PieceWorld(captured).Pos, captured.Grid.Vec(), floatTol) {
		t.Error("captured piece should land exactly on its slot after finalize")
	}
}

func TestSpinToggleAndPresets(t *testing.T) {
	s := NewSim()
	if s.Spinning() {
		t.Fatal("spin should start off")
	}

	s.SetSpinning(true)
	before := s.Assembly().Root.Rot
	s.Advance(0.1)
	if vecNear(s.Assembly().Root.Rot.Rotate(Vec3{X: 1}), before.Rotate(Vec3{X: 1}), 1e-12) {
		t.Error("advancing with spin on should rotate the root")
	}

	if !s.SetSpinPreset("z") {
		t.Error("preset z should exist")
	}
	if s.SetSpinPreset("bogus") {
		t.Error("unknown preset should be rejected")
	}

	// Zero axis: the tick is skipped, no mutation.
	s.SetSpinAxis(Vec3{})
	root := s.Assembly().Root
	s.Advance(0.1)
	if s.Assembly().Root != root {
		t.Error("zero spin axis must leave the root untouched")
	}
}

func TestSpeedSettersClamp(t *testing.T) {
	s := NewSim()
	s.SetRotationSpeed(99)
	if got := s.RotationSpeed(); got != MaxSpeed {
		t.Errorf("rotation speed clamped to %v, want %v", got, MaxSpeed)
	}
	s.SetShuffleSpeed(0)
	if got := s.ShuffleSpeed(); got != MinSpeed {
		t.Errorf("shuffle speed clamped to %v, want %v", got, MinSpeed)
	}
}

func TestOutOfRangeLayerIsNoOpThroughSim(t *testing.T) {
	s := NewSim()
	s.Play(Move{Axis: AxisX, Layer: 2, Angle: QuarterTurn})
	settle(t, s)

	if !s.IsSolved() {
		t.Error("out-of-range layer must not mutate any piece")
	}
}
