package motion

// JumpPhase is the vertical movement state of a controllable body.
type JumpPhase int

const (
	Grounded JumpPhase = iota
	Ascending
	Falling
)

func (p JumpPhase) String() string {
	switch p {
	case Grounded:
		return "grounded"
	case Ascending:
		return "ascending"
	case Falling:
		return "falling"
	default:
		return "unknown"
	}
}

// JumpTuning configures the rise curve and gravity.
type JumpTuning struct {
	Impulse float32 `yaml:"impulse"`
	Gravity float32 `yaml:"gravity"`
	// MaxAscent is the longest the body may stay Ascending, in seconds. Zero
	// means the rise ends only when gravity has consumed the impulse.
	MaxAscent     float32 `yaml:"max_ascent"`
	TerminalSpeed float32 `yaml:"terminal_speed"`
}

func DefaultJumpTuning() JumpTuning {
	return JumpTuning{Impulse: 6, Gravity: 20, MaxAscent: 0.45, TerminalSpeed: 30}
}

// JumpMachine tracks the jump/fall phase and the vertical velocity it drives.
// Advance runs before the body integrates and Settle runs after, with the
// contact the integration reported.
type JumpMachine struct {
	Phase    JumpPhase
	Velocity float32
	Elapsed  float32
	Tuning   JumpTuning
}

func NewJumpMachine(t JumpTuning) JumpMachine {
	return JumpMachine{Phase: Grounded, Tuning: t}
}

// Advance consumes a jump request and returns the vertical velocity to
// integrate this tick. grounded is the contact reported by the previous
// integration. A request only starts a jump from Grounded with contact; in any
// other case it is dropped, never queued.
func (m *JumpMachine) Advance(requested, grounded bool, dt float32) (vy float32, jumped bool) {
	if dt < 0 || dt != dt {
		dt = 0
	}
	g := m.Tuning.Gravity

	switch m.Phase {
	case Grounded:
		if requested && grounded {
			m.Phase = Ascending
			m.Velocity = m.Tuning.Impulse
			m.Elapsed = 0
			return m.Velocity, true
		}
		if !grounded {
			m.Phase = Falling
			m.Velocity = 0
			m.fall(g, dt)
			return m.Velocity, false
		}
		// keep pressing into the floor so contact is re-detected next tick
		m.Velocity = -g * dt
	case Ascending:
		m.Elapsed += dt
		m.Velocity -= g * dt
		if m.Velocity <= 0 || (m.Tuning.MaxAscent > 0 && m.Elapsed >= m.Tuning.MaxAscent) {
			m.Phase = Falling
			if m.Velocity > 0 {
				m.Velocity = 0
			}
		}
	case Falling:
		m.fall(g, dt)
	}
	return m.Velocity, false
}

func (m *JumpMachine) fall(g, dt float32) {
	m.Velocity -= g * dt
	if t := m.Tuning.TerminalSpeed; t > 0 && m.Velocity < -t {
		m.Velocity = -t
	}
}

// Settle applies the outcome of the integration step. resolvedVy is the
// vertical velocity after collision clamping.
func (m *JumpMachine) Settle(grounded bool, resolvedVy float32) (landed, leftGround bool) {
	movingDown := m.Velocity <= 0
	switch m.Phase {
	case Grounded:
		if !grounded {
			m.Phase = Falling
			m.Velocity = 0
			return false, true
		}
		m.Velocity = 0
	case Ascending:
		if resolvedVy <= 0 {
			// ceiling
			m.Phase = Falling
			m.Velocity = 0
		}
	case Falling:
		if grounded && movingDown {
			m.Phase = Grounded
			m.Velocity = 0
			m.Elapsed = 0
			return true, false
		}
		m.Velocity = resolvedVy
	}
	return false, false
}

// Airborne reports whether the body is off the ground.
func (m *JumpMachine) Airborne() bool {
	return m.Phase != Grounded
}
