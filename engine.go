package cubesim

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// EngineState is the rotation engine's position in its per-move cycle.
type EngineState int

const (
	EngineIdle EngineState = iota
	EngineSelecting
	EngineAnimating
	EngineFinalizing
)

func (s EngineState) String() string {
	switch s {
	case EngineIdle:
		return "idle"
	case EngineSelecting:
		return "selecting"
	case EngineAnimating:
		return "animating"
	case EngineFinalizing:
		return "finalizing"
	default:
		return "?"
	}
}

// defaultQuarterTurnTime is how long a single quarter turn takes at
// speed 1, in seconds.
const defaultQuarterTurnTime = 0.4

// layerQuat returns the pivot rotation for a layer angle. Positive angles
// turn the layer clockwise as seen from the positive end of the axis, which
// is a negative right-handed rotation about that axis.
func layerQuat(axis Axis, angle float64) Quat {
	return QuatAxisAngle(axis.Vec(), -angle)
}

// RotationEngine animates one layer rotation at a time: it selects the
// layer's pieces, regroups them under a transient pivot, tweens the pivot
// to the target angle across scheduler ticks, then detaches every piece
// with its transform snapped back onto the grid.
type RotationEngine struct {
	assembly *Assembly
	logger   *zap.Logger
	easing   ease.TweenFunc

	// quarterTurnTime is the duration of a quarter turn at speed 1.
	quarterTurnTime float64

	state  EngineState
	move   Move
	pivot  *Pivot
	tween  *gween.Tween
	onDone func(Move)
}

// NewRotationEngine creates an idle engine operating on the assembly.
func NewRotationEngine(a *Assembly) *RotationEngine {
	return &RotationEngine{
		assembly:        a,
		logger:          zap.NewNop(),
		easing:          ease.Linear,
		quarterTurnTime: defaultQuarterTurnTime,
	}
}

// SetLogger replaces the engine's logger. Nil restores the no-op logger.
func (e *RotationEngine) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	e.logger = l
}

// SetEasing replaces the angle easing curve used for subsequent moves.
func (e *RotationEngine) SetEasing(fn ease.TweenFunc) {
	if fn != nil {
		e.easing = fn
	}
}

// State returns the engine's current state.
func (e *RotationEngine) State() EngineState {
	return e.state
}

// Active reports whether a rotation is in flight.
func (e *RotationEngine) Active() bool {
	return e.state != EngineIdle
}

// Move returns the move currently animating. Zero value when idle.
func (e *RotationEngine) Move() Move {
	return e.move
}

// OnComplete registers a callback fired once per finished move, including
// empty-selection no-ops. Used by the queue for sequencing and by UIs for
// status text.
func (e *RotationEngine) OnComplete(fn func(Move)) {
	e.onDone = fn
}

// WorldTransform returns the world-space transform of a piece captured by
// the in-flight rotation, and whether the piece is captured at all.
func (e *RotationEngine) WorldTransform(p *Piece) (Transform, bool) {
	if e.pivot == nil {
		return Transform{}, false
	}
	for _, q := range e.pivot.Pieces() {
		if q == p {
			return e.pivot.WorldTransform(e.assembly, p), true
		}
	}
	return Transform{}, false
}

// Start begins animating a move at the given speed multiplier. It returns
// true if an animation is now in flight.
//
// A layer with no matching pieces completes immediately as a successful
// no-op: the completion callback fires, a warning is logged, and no piece
// is touched. Requesting a start while a rotation is already animating
// returns ErrEngineBusy; the queue's strict sequencing makes that a
// programming error rather than an expected condition.
func (e *RotationEngine) Start(m Move, speed float64) (bool, error) {
	if e.state != EngineIdle {
		return false, ErrEngineBusy
	}

	e.state = EngineSelecting
	selected := SelectLayer(e.assembly.Pieces(), m.Axis, m.Layer)
	if len(selected) == 0 {
		e.logger.Warn("empty layer selection, completing move as no-op",
			zap.Stringer("axis", m.Axis),
			zap.Int("layer", m.Layer),
		)
		e.state = EngineIdle
		if e.onDone != nil {
			e.onDone(m)
		}
		return false, nil
	}

	e.move = m
	e.pivot = NewPivot()
	for _, p := range selected {
		e.pivot.Attach(e.assembly, p)
	}

	if speed <= 0 {
		speed = 1
	}
	angularSpeed := speed * (QuarterTurn / e.quarterTurnTime)
	duration := math.Abs(m.Angle) / angularSpeed
	e.tween = gween.New(0, float32(m.Angle), float32(duration), e.easing)

	e.state = EngineAnimating
	return true, nil
}

// Advance progresses the in-flight rotation by dt seconds and returns true
// on the tick that finalizes it. The tween clamps at the target angle, so
// the rotation never overshoots; on the final tick the pivot is forced to
// the exact target before pieces detach, eliminating accumulation error.
func (e *RotationEngine) Advance(dt float64) bool {
	if e.state != EngineAnimating {
		return false
	}

	angle, finished := e.tween.Update(float32(dt))
	e.pivot.Rel.Rot = layerQuat(e.move.Axis, float64(angle))
	if !finished {
		return false
	}

	e.finalize()
	return true
}

// finalize snaps every captured piece back onto the grid, destroys the
// pivot and signals completion.
func (e *RotationEngine) finalize() {
	e.state = EngineFinalizing

	e.pivot.Rel.Rot = layerQuat(e.move.Axis, e.move.Angle)

	// Detach mutates the pivot's piece list, so walk a copy.
	captured := append([]*Piece(nil), e.pivot.Pieces()...)
	for _, p := range captured {
		e.pivot.Detach(e.assembly, p)
		p.Local = SnapTransform(p.Local)
		p.Grid = roundCoord(p.Local.Pos)
	}

	done := e.move
	e.pivot = nil
	e.tween = nil
	e.move = Move{}
	e.state = EngineIdle

	if e.onDone != nil {
		e.onDone(done)
	}
}
