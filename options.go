package cubesim

import "time"

// SolveMode selects what Solve does.
type SolveMode int

const (
	// SolveReversal replays the move history reversed and
	// direction-negated. The default.
	SolveReversal SolveMode = iota
	// SolveReset reinitializes the cube outright instead of animating
	// the reversal.
	SolveReset
)

// Option configures a Simulator.
type Option func(*config)

type config struct {
	duration      float32
	scrambleLen   int
	sensitivity   float64
	dragThreshold float64
	solveMode     SolveMode
	scene         Scene
	highlighter   Highlighter
	camera        *Camera
	seed          int64
	seeded        bool
}

func defaultConfig() *config {
	return &config{
		duration:      0.2,
		scrambleLen:   20,
		sensitivity:   2.0,
		dragThreshold: 8.0,
		solveMode:     SolveReversal,
	}
}

// WithAnimationDuration sets how long one quarter-turn animation takes.
func WithAnimationDuration(d time.Duration) Option {
	return func(c *config) {
		c.duration = float32(d.Seconds())
	}
}

// WithScrambleLength sets how many random moves Scramble generates.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		c.scrambleLen = n
	}
}

// WithSensitivity scales how far a swipe must travel to rotate a layer.
func WithSensitivity(s float64) Option {
	return func(c *config) {
		c.sensitivity = s
	}
}

// WithDragThreshold sets the minimum cumulative drag, in pixels, before
// a corner cubie's rotation target is resolved.
func WithDragThreshold(px float64) Option {
	return func(c *config) {
		c.dragThreshold = px
	}
}

// WithSolveMode selects reversal or reinitialize solve semantics.
func WithSolveMode(m SolveMode) Option {
	return func(c *config) {
		c.solveMode = m
	}
}

// WithScene plugs in a renderer-backed scene instead of the default
// in-memory one.
func WithScene(s Scene) Option {
	return func(c *config) {
		c.scene = s
	}
}

// WithHighlighter plugs in touch-feedback highlighting.
func WithHighlighter(h Highlighter) Option {
	return func(c *config) {
		c.highlighter = h
	}
}

// WithCamera overrides the default camera.
func WithCamera(cam *Camera) Option {
	return func(c *config) {
		c.camera = cam
	}
}

// WithRandSeed makes Scramble deterministic. Useful in tests and replays.
func WithRandSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}
