package cubesim

import (
	"math/rand"
	"testing"
)

func newTestQueue() (*Assembly, *RotationEngine, *MoveQueue) {
	a := NewAssembly()
	e := NewRotationEngine(a)
	q := NewMoveQueue(e, nil)
	return a, e, q
}

// drain advances the queue until the run goes idle.
func drain(t *testing.T, q *MoveQueue) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if !q.Running() {
			return
		}
		q.Advance(1)
	}
	t.Fatal("queue never went idle")
}

func TestQueueProcessesInOrder(t *testing.T) {
	_, e, q := newTestQueue()

	var order []string
	e.OnComplete(func(m Move) { order = append(order, m.Notation()) })

	moves := ParseMoves("R U F' D2 L")
	q.Enqueue(moves...)
	if !q.Run() {
		t.Fatal("Run should start a fresh run")
	}
	drain(t, q)

	want := "R U F' D2 L"
	if got := joinNotations(order); got != want {
		t.Errorf("completion order %q, want %q", got, want)
	}
	if q.Len() != 0 {
		t.Errorf("queue still holds %d moves", q.Len())
	}
}

func joinNotations(parts []string) string {
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += " "
		}
		s += p
	}
	return s
}

func TestQueueRunningLifecycle(t *testing.T) {
	_, e, q := newTestQueue()

	remaining := 3
	e.OnComplete(func(Move) {
		remaining--
		if remaining > 0 && !q.Running() {
			t.Error("queue stopped running before the last move finalized")
		}
	})

	q.Enqueue(R, U, F)
	q.Run()
	if !q.Running() {
		t.Fatal("queue should be running after Run")
	}
	drain(t, q)

	if q.Running() {
		t.Error("queue should be idle after the last move")
	}
	if remaining != 0 {
		t.Errorf("%d moves never completed", remaining)
	}
}

func TestQueueRunWhileRunningIsNoOp(t *testing.T) {
	_, _, q := newTestQueue()
	q.Enqueue(R, U)
	if !q.Run() {
		t.Fatal("first Run should start")
	}
	if q.Run() {
		t.Error("second Run should be a no-op")
	}
}

func TestQueueRunOnEmptyIsNoOp(t *testing.T) {
	_, _, q := newTestQueue()
	if q.Run() {
		t.Error("Run on an empty queue should not start")
	}
	if q.Running() {
		t.Error("empty queue should not be running")
	}
}

func TestQueueEnqueueDuringRun(t *testing.T) {
	_, e, q := newTestQueue()

	var count int
	e.OnComplete(func(Move) {
		count++
		if count == 1 {
			q.Enqueue(F) // appended mid-run, still processed
		}
	})

	q.Enqueue(R, U)
	q.Run()
	drain(t, q)

	if count != 3 {
		t.Errorf("completed %d moves, want 3 (including the mid-run enqueue)", count)
	}
}

func TestQueueClearDiscardsUnprocessed(t *testing.T) {
	_, e, q := newTestQueue()

	var count int
	e.OnComplete(func(Move) { count++ })

	q.Enqueue(R, U, F, D)
	q.Run()
	q.Advance(0.01) // starts the first move only
	q.Clear()
	drain(t, q)

	if count != 1 {
		t.Errorf("completed %d moves after Clear, want only the in-flight one", count)
	}
}

func TestQueueSkipsNoOpMovesWithinOneTick(t *testing.T) {
	_, e, q := newTestQueue()

	var count int
	e.OnComplete(func(Move) { count++ })

	// Two out-of-range layers followed by a real move: the no-ops must
	// not stall the run.
	q.Enqueue(
		Move{Axis: AxisX, Layer: 2, Angle: QuarterTurn},
		Move{Axis: AxisY, Layer: -3, Angle: QuarterTurn},
		R,
	)
	q.Run()
	q.Advance(0.01)

	if count != 2 {
		t.Errorf("after one tick %d moves completed, want the 2 no-ops", count)
	}
	drain(t, q)
	if count != 3 {
		t.Errorf("completed %d moves total, want 3", count)
	}
}

func TestRandomMovesAreWellFormed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	moves := RandomMoves(rng, 200)
	if len(moves) != 200 {
		t.Fatalf("generated %d moves, want 200", len(moves))
	}
	for _, m := range moves {
		if m.Axis < AxisX || m.Axis > AxisZ {
			t.Errorf("bad axis %v", m.Axis)
		}
		if m.Layer < -1 || m.Layer > 1 {
			t.Errorf("bad layer %d", m.Layer)
		}
		if m.Angle != QuarterTurn && m.Angle != -QuarterTurn {
			t.Errorf("bad angle %v", m.Angle)
		}
	}
}
