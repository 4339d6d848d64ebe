package states

import "github.com/vovakirdan/tui-arkanoid/internal/core"

// Kind identifies a state variant.
type Kind int

const (
	KindNone Kind = iota
	KindWelcome
	KindLevelIntro
	KindPlay
	KindGameOver
)

// String returns the phase name reported in core.GameState.
func (k Kind) String() string {
	switch k {
	case KindWelcome:
		return "welcome"
	case KindLevelIntro:
		return "intro"
	case KindPlay:
		return "play"
	case KindGameOver:
		return "gameover"
	default:
		return "none"
	}
}

// State is one screen of the game. The set is closed: only the types in
// this package implement it.
type State interface {
	Kind() Kind
	Enter(ctx *Context)
	Leave(ctx *Context)
	Update(ctx *Context, dt float64)
	Draw(ctx *Context, dst *core.Screen)
	KeyDown(ctx *Context, a core.Action)

	sealed()
}

// Machine is the state stack. Only the top is active.
type Machine struct {
	stack []State
}

// Current returns the active state, or nil before the first MoveTo.
func (m *Machine) Current() State {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Depth returns the number of stacked states.
func (m *Machine) Depth() int {
	return len(m.stack)
}

// MoveTo leaves the active state and replaces it with s.
func (m *Machine) MoveTo(ctx *Context, s State) {
	if cur := m.Current(); cur != nil {
		cur.Leave(ctx)
		m.stack = m.stack[:len(m.stack)-1]
	}
	m.stack = append(m.stack, s)
	s.Enter(ctx)
}

// Push enters s on top of the active state, which stays on the stack
// without receiving Leave.
func (m *Machine) Push(ctx *Context, s State) {
	m.stack = append(m.stack, s)
	s.Enter(ctx)
}

// Pop leaves and removes the active state.
func (m *Machine) Pop(ctx *Context) {
	cur := m.Current()
	if cur == nil {
		return
	}
	cur.Leave(ctx)
	m.stack = m.stack[:len(m.stack)-1]
}
