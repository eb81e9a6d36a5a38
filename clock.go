package subframe

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clock supplies the animation time in milliseconds. A frozen clock always
// reports the same instant; a live clock follows accumulated update time.
// Switching modes eases from the last reported value to the new mode's value
// instead of jumping.
type Clock struct {
	frozenMillis uint32
	live         bool
	elapsed      time.Duration

	blend *gween.Tween
	from  float64
	w     float64
}

// NewFrozenClock returns a clock stopped at ms.
func NewFrozenClock(ms uint32) *Clock {
	return &Clock{frozenMillis: ms, w: 1}
}

// NewLiveClock returns a running clock starting at zero. frozenMillis is the
// instant used when the clock is toggled to frozen.
func NewLiveClock(frozenMillis uint32) *Clock {
	return &Clock{frozenMillis: frozenMillis, live: true, w: 1}
}

// Live reports whether the clock follows update time.
func (c *Clock) Live() bool {
	return c.live
}

// Transitioning reports whether a toggle is still easing.
func (c *Clock) Transitioning() bool {
	return c.blend != nil
}

// Update advances live time and any running transition by dt.
func (c *Clock) Update(dt time.Duration) {
	c.elapsed += dt
	if c.blend == nil {
		return
	}
	v, done := c.blend.Update(float32(dt.Seconds()))
	c.w = float64(v)
	if done {
		c.w = 1
		c.blend = nil
	}
}

// Toggle switches between frozen and live. The reported time eases to the
// new mode over d using an in-out quadratic curve. A non-positive d switches
// immediately.
func (c *Clock) Toggle(d time.Duration) {
	c.from = c.millis()
	c.live = !c.live
	if d <= 0 {
		c.w = 1
		c.blend = nil
		return
	}
	c.w = 0
	c.blend = gween.New(0, 1, float32(d.Seconds()), ease.InOutQuad)
}

// target returns the current mode's time without easing.
func (c *Clock) target() float64 {
	if c.live {
		return float64(c.elapsed.Milliseconds())
	}
	return float64(c.frozenMillis)
}

func (c *Clock) millis() float64 {
	t := c.target()
	if c.blend == nil {
		return t
	}
	return c.from + (t-c.from)*c.w
}

// Millis returns the animation time in milliseconds. Live time wraps at
// 2^32 ms, about 49.7 days.
func (c *Clock) Millis() uint32 {
	m := c.millis()
	if m < 0 {
		return 0
	}
	return uint32(math.Mod(m, 1<<32))
}
