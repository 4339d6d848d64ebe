package tui

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// DefaultHoldWindow covers the gap between a terminal's first key event and
// its auto-repeat.
const DefaultHoldWindow = 250 * time.Millisecond

// HeldKeys turns the press-only key events of a terminal into held
// movement. A direction stays held for a number of ticks after its last
// press; pressing the opposite direction releases it at once.
type HeldKeys struct {
	window int
	left   int
	right  int
}

// NewHeldKeys converts a hold window into ticks at the given rate.
func NewHeldKeys(window time.Duration, tickRate int) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	if tickRate <= 0 {
		tickRate = 1
	}
	ticks := int(math.Ceil(window.Seconds() * float64(tickRate)))
	return &HeldKeys{window: max(ticks, 1)}
}

// Window returns the hold length in ticks.
func (h *HeldKeys) Window() int { return h.window }

// Press records a key event. Non-movement actions are ignored.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = h.window, 0
	case core.ActionRight:
		h.right, h.left = h.window, 0
	}
}

// Release drops both directions.
func (h *HeldKeys) Release() {
	h.left, h.right = 0, 0
}

// Apply marks the still-held directions on frame and ages them by a tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Hold(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Hold(core.ActionRight)
		h.right--
	}
}
