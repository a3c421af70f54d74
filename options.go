package cubesim

import (
	"math/rand"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Speed multipliers are clamped to this range.
const (
	MinSpeed = 0.1
	MaxSpeed = 5.0
)

// DefaultShuffleLength is the number of random moves in a shuffle.
const DefaultShuffleLength = 20

// Option configures a Sim.
type Option func(*config)

type config struct {
	rotationSpeed float64 // whole-cube spin speed multiplier
	shuffleSpeed  float64 // layer animation speed multiplier
	shuffleLength int
	spinAxis      Vec3 // components in {-1,0,1}
	easing        ease.TweenFunc
	logger        *zap.Logger
	rng           *rand.Rand
}

func defaultConfig() *config {
	return &config{
		rotationSpeed: 1,
		shuffleSpeed:  1,
		shuffleLength: DefaultShuffleLength,
		spinAxis:      Vec3{X: 1, Y: 1},
		easing:        ease.Linear,
		logger:        zap.NewNop(),
	}
}

func clampSpeed(v float64) float64 {
	if v < MinSpeed {
		return MinSpeed
	}
	if v > MaxSpeed {
		return MaxSpeed
	}
	return v
}

// WithRotationSpeed sets the whole-cube free-rotation speed multiplier.
// Clamped to [0.1, 5]; default 1.
func WithRotationSpeed(speed float64) Option {
	return func(c *config) {
		c.rotationSpeed = clampSpeed(speed)
	}
}

// WithShuffleSpeed sets the layer animation speed multiplier used for
// queued moves. Clamped to [0.1, 5]; default 1.
func WithShuffleSpeed(speed float64) Option {
	return func(c *config) {
		c.shuffleSpeed = clampSpeed(speed)
	}
}

// WithShuffleLength sets how many random moves a shuffle enqueues.
// Default 20.
func WithShuffleLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.shuffleLength = n
		}
	}
}

// WithSpinAxis sets the free-rotation axis. Components outside {-1,0,1}
// are left to the caller; the zero vector disables spinning per tick.
func WithSpinAxis(axis Vec3) Option {
	return func(c *config) {
		c.spinAxis = axis
	}
}

// WithEasing sets the easing curve for layer animations. Default linear.
func WithEasing(fn ease.TweenFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.easing = fn
		}
	}
}

// WithLogger sets the logger used for degraded-to-no-op warnings.
// Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRand sets the random source used for shuffle generation. Default is
// a source seeded from the current time.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}
