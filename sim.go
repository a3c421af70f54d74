package cubesim

import (
	"math/rand"
	"time"

	"github.com/tanema/gween/ease"
)

// SpinPresets are named free-rotation axes selectable from the parameter
// panel. Components are restricted to {-1, 0, 1}.
var SpinPresets = map[string]Vec3{
	"x":   {X: 1},
	"y":   {Y: 1},
	"z":   {Z: 1},
	"xy":  {X: 1, Y: 1},
	"xyz": {X: 1, Y: 1, Z: 1},
}

// baseSpinRate is the free-rotation angular speed at multiplier 1,
// in radians per second.
const baseSpinRate = 1.0

// Sim wraps an assembly, a rotation engine and a move queue into one
// animated cube simulation. An external scheduler calls Advance once per
// frame; everything else is cooperative and single-threaded.
type Sim struct {
	assembly *Assembly
	engine   *RotationEngine
	queue    *MoveQueue
	cfg      *config

	spinning   bool
	shuffleRun bool // current queue run was started by Shuffle
}

// NewSim creates a solved, idle simulation.
func NewSim(opts ...Option) *Sim {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	assembly := NewAssembly()
	engine := NewRotationEngine(assembly)
	engine.SetLogger(cfg.logger)
	engine.SetEasing(cfg.easing)

	s := &Sim{
		assembly: assembly,
		engine:   engine,
		cfg:      cfg,
	}
	s.queue = NewMoveQueue(engine, s.layerSpeed)
	return s
}

// layerSpeed is read by the queue at the start of each rotation.
// Shuffle runs pace with the shuffle speed, direct moves with the
// rotation speed.
func (s *Sim) layerSpeed() float64 {
	if s.shuffleRun {
		return s.cfg.shuffleSpeed
	}
	return s.cfg.rotationSpeed
}

// Assembly returns the underlying assembly for inspection and rendering.
func (s *Sim) Assembly() *Assembly {
	return s.assembly
}

// Engine returns the rotation engine.
func (s *Sim) Engine() *RotationEngine {
	return s.engine
}

// Queue returns the move queue.
func (s *Sim) Queue() *MoveQueue {
	return s.queue
}

// OnMoveComplete registers a callback fired after each finalized move.
func (s *Sim) OnMoveComplete(fn func(Move)) {
	s.engine.OnComplete(fn)
}

// Play enqueues moves and starts (or keeps) the queue draining.
func (s *Sim) Play(moves ...Move) {
	s.queue.Enqueue(moves...)
	if !s.queue.Running() {
		s.shuffleRun = false
		s.queue.Run()
	}
}

// PlayNotation parses a notation string and plays it. Invalid tokens are
// skipped.
func (s *Sim) PlayNotation(notation string) {
	s.Play(ParseMoves(notation)...)
}

// Shuffle discards any queued moves, enqueues the configured number of
// random moves and runs them in generation order. The generated sequence
// is returned. A shuffle requested while one is already running is a
// silent no-op and returns nil.
func (s *Sim) Shuffle() []Move {
	return s.ShuffleN(s.cfg.shuffleLength)
}

// ShuffleN is Shuffle with an explicit move count.
func (s *Sim) ShuffleN(n int) []Move {
	if s.queue.Running() {
		return nil
	}
	s.queue.Clear()
	moves := RandomMoves(s.cfg.rng, n)
	s.queue.Enqueue(moves...)
	s.shuffleRun = true
	s.queue.Run()
	return moves
}

// IsShuffling reports whether a queue run is draining. True from the run
// start until the last queued move finalizes.
func (s *Sim) IsShuffling() bool {
	return s.queue.Running()
}

// Advance performs one scheduler tick: the whole-cube spin, then the queue
// and any in-flight rotation. dt is the elapsed time since the previous
// tick in seconds.
func (s *Sim) Advance(dt float64) {
	if s.spinning {
		s.assembly.Spin(s.cfg.spinAxis, s.cfg.rotationSpeed*baseSpinRate, dt)
	}

	s.queue.Advance(dt)
	if !s.queue.Running() {
		s.shuffleRun = false
	}
}

// Reset rebuilds the solved 27-piece layout. It is rejected with
// ErrRotationActive while a rotation is animating; pending queued moves
// are discarded on success.
func (s *Sim) Reset() error {
	if s.engine.Active() {
		return ErrRotationActive
	}
	s.queue.Stop()
	s.shuffleRun = false
	s.assembly.Reset()
	return nil
}

// PieceWorld returns a piece's current world-space transform, whether the
// piece is owned by the assembly or captured by the in-flight pivot.
func (s *Sim) PieceWorld(p *Piece) Transform {
	if t, ok := s.engine.WorldTransform(p); ok {
		return t
	}
	return s.assembly.WorldTransform(p)
}

// --- Parameter panel ---

// RotationSpeed returns the whole-cube spin speed multiplier.
func (s *Sim) RotationSpeed() float64 {
	return s.cfg.rotationSpeed
}

// SetRotationSpeed sets the spin speed multiplier, clamped to [0.1, 5].
// Read at the start of each tick, never pushed mid-move.
func (s *Sim) SetRotationSpeed(v float64) {
	s.cfg.rotationSpeed = clampSpeed(v)
}

// ShuffleSpeed returns the layer animation speed multiplier.
func (s *Sim) ShuffleSpeed() float64 {
	return s.cfg.shuffleSpeed
}

// SetShuffleSpeed sets the layer animation speed multiplier, clamped to
// [0.1, 5]. Picked up at the start of the next rotation.
func (s *Sim) SetShuffleSpeed(v float64) {
	s.cfg.shuffleSpeed = clampSpeed(v)
}

// SpinAxis returns the free-rotation axis vector.
func (s *Sim) SpinAxis() Vec3 {
	return s.cfg.spinAxis
}

// SetSpinAxis sets the free-rotation axis vector.
func (s *Sim) SetSpinAxis(axis Vec3) {
	s.cfg.spinAxis = axis
}

// SetSpinPreset selects a named axis preset. Unknown names are ignored
// and reported as false.
func (s *Sim) SetSpinPreset(name string) bool {
	axis, ok := SpinPresets[name]
	if !ok {
		return false
	}
	s.cfg.spinAxis = axis
	return true
}

// Spinning reports whether the whole-cube free rotation is active.
func (s *Sim) Spinning() bool {
	return s.spinning
}

// SetSpinning toggles the whole-cube free rotation.
func (s *Sim) SetSpinning(on bool) {
	s.spinning = on
}

// SetEasing replaces the layer animation easing curve.
func (s *Sim) SetEasing(fn ease.TweenFunc) {
	s.engine.SetEasing(fn)
}

// --- State queries ---

// IsSolved reports whether every face shows a single color.
func (s *Sim) IsSolved() bool {
	return s.assembly.IsSolved()
}

// Facelets returns the facelet projection of the assembly.
func (s *Sim) Facelets() [6][9]Color {
	return s.assembly.Facelets()
}

// FaceletString returns the 54-character facelet encoding.
func (s *Sim) FaceletString() string {
	return s.assembly.FaceletString()
}

// String returns the ASCII cube net.
func (s *Sim) String() string {
	return s.assembly.String()
}
