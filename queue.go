package cubesim

import "math/rand"

// MoveQueue serializes layer rotation requests so that only one rotation
// animates at a time. Requests are processed strictly in enqueue order;
// rotation N+1 never starts until rotation N has fully finalized.
type MoveQueue struct {
	engine  *RotationEngine
	speedFn func() float64

	moves   []Move
	running bool
}

// NewMoveQueue creates a queue driving the given engine. speedFn is read
// at the start of each rotation to pick up live configuration changes;
// nil means speed 1.
func NewMoveQueue(engine *RotationEngine, speedFn func() float64) *MoveQueue {
	if speedFn == nil {
		speedFn = func() float64 { return 1 }
	}
	return &MoveQueue{engine: engine, speedFn: speedFn}
}

// Enqueue appends moves to the queue. Appending during an active run is
// permitted; the new moves are processed before the run goes idle.
func (q *MoveQueue) Enqueue(moves ...Move) {
	q.moves = append(q.moves, moves...)
}

// Len returns the number of unprocessed moves.
func (q *MoveQueue) Len() int {
	return len(q.moves)
}

// Clear discards all unprocessed moves without executing them. The
// rotation already animating, if any, still runs to completion.
func (q *MoveQueue) Clear() {
	q.moves = nil
}

// Run starts draining the queue. Calling Run while a run is already active
// is a silent no-op; only one run may be active at a time. Returns whether
// a new run started.
func (q *MoveQueue) Run() bool {
	if q.running || len(q.moves) == 0 {
		return false
	}
	q.running = true
	return true
}

// Stop clears the queue and ends the active run, if any. The rotation
// already animating still runs to completion.
func (q *MoveQueue) Stop() {
	q.moves = nil
	q.running = false
}

// Running reports whether a run is draining the queue. True from Run until
// the last queued move finalizes.
func (q *MoveQueue) Running() bool {
	return q.running
}

// Advance performs one scheduler tick: it progresses the in-flight
// rotation and, whenever the engine is idle and a run is active, starts
// the next queued move. Empty-selection no-ops are skipped over within the
// same tick so a malformed request never stalls the run.
func (q *MoveQueue) Advance(dt float64) {
	q.engine.Advance(dt)

	for q.running && !q.engine.Active() {
		if len(q.moves) == 0 {
			q.running = false
			return
		}
		m := q.moves[0]
		q.moves = q.moves[1:]

		started, err := q.engine.Start(m, q.speedFn())
		if err != nil {
			return
		}
		if started {
			return
		}
		// No-op move completed immediately; keep draining.
	}
}

// RandomMoves generates n uniformly random layer moves: axis in {x,y,z},
// layer in {-1,0,1}, angle in {+90°, -90°}.
func RandomMoves(rng *rand.Rand, n int) []Move {
	moves := make([]Move, n)
	for i := range moves {
		angle := QuarterTurn
		if rng.Intn(2) == 0 {
			angle = -QuarterTurn
		}
		moves[i] = Move{
			Axis:  Axis(rng.Intn(3)),
			Layer: rng.Intn(3) - 1,
			Angle: angle,
		}
	}
	return moves
}
