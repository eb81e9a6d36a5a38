package subframe

// AnimationState tracks the bouncing subframe position. It holds no engine
// handles and is passed by value through the frame loop.
type AnimationState struct {
	Pos Vec2
	Vel Vec2
}

// NewAnimationState returns the starting state: origin, moving one pixel per
// tick down and to the right.
func NewAnimationState() AnimationState {
	return AnimationState{Vel: Vec2{1, 1}}
}

// Advance moves the point by one tick inside a w x h screen. Each axis
// reflects independently: its velocity is negated when the point plus half
// the screen extent passes the bound, or the point is negative. The flip
// happens before the move and overlap is not corrected.
func (s AnimationState) Advance(w, h float64) AnimationState {
	if s.Pos.X+w/2 > w || s.Pos.X < 0 {
		s.Vel.X = -s.Vel.X
	}
	if s.Pos.Y+h/2 > h || s.Pos.Y < 0 {
		s.Vel.Y = -s.Vel.Y
	}
	s.Pos = s.Pos.Add(s.Vel)
	return s
}
