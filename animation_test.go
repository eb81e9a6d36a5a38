package subframe

import "testing"

func TestNewAnimationState(t *testing.T) {
	s := NewAnimationState()
	if s.Pos != (Vec2{}) {
		t.Errorf("Pos = %v, want origin", s.Pos)
	}
	if s.Vel != (Vec2{1, 1}) {
		t.Errorf("Vel = %v, want (1,1)", s.Vel)
	}
}

func TestAdvanceFlipsOnlyTriggeredAxes(t *testing.T) {
	const w, h = 800, 600
	tests := []struct {
		name    string
		in      AnimationState
		wantVel Vec2
	}{
		{"interior", AnimationState{Pos: Vec2{100, 100}, Vel: Vec2{1, 1}}, Vec2{1, 1}},
		{"past half width", AnimationState{Pos: Vec2{401, 100}, Vel: Vec2{1, 1}}, Vec2{-1, 1}},
		{"past half height", AnimationState{Pos: Vec2{100, 301}, Vel: Vec2{1, 1}}, Vec2{1, -1}},
		{"both bounds", AnimationState{Pos: Vec2{401, 301}, Vel: Vec2{2, 3}}, Vec2{-2, -3}},
		{"negative x", AnimationState{Pos: Vec2{-1, 10}, Vel: Vec2{-1, 1}}, Vec2{1, 1}},
		{"negative y", AnimationState{Pos: Vec2{10, -0.5}, Vel: Vec2{1, -1}}, Vec2{1, 1}},
		{"exactly half is inside", AnimationState{Pos: Vec2{400, 300}, Vel: Vec2{1, 1}}, Vec2{1, 1}},
		{"zero is inside", AnimationState{Pos: Vec2{0, 0}, Vel: Vec2{-1, -1}}, Vec2{-1, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Advance(w, h)
			if got.Vel != tt.wantVel {
				t.Errorf("Vel = %v, want %v", got.Vel, tt.wantVel)
			}
			want := tt.in.Pos.Add(tt.wantVel)
			if got.Pos != want {
				t.Errorf("Pos = %v, want %v", got.Pos, want)
			}
		})
	}
}

func TestAdvanceDoesNotMutateReceiver(t *testing.T) {
	s := AnimationState{Pos: Vec2{500, 500}, Vel: Vec2{1, 1}}
	_ = s.Advance(800, 600)
	if s.Pos != (Vec2{500, 500}) || s.Vel != (Vec2{1, 1}) {
		t.Errorf("receiver changed: %+v", s)
	}
}

func TestAdvanceStaysNearBounds(t *testing.T) {
	const w, h = 640, 480
	s := NewAnimationState()
	for i := 0; i < 5000; i++ {
		s = s.Advance(w, h)
		// A unit velocity overshoots each bound by at most two steps.
		if s.Pos.X < -2 || s.Pos.X > w/2+2 {
			t.Fatalf("tick %d: x = %v escaped [0, %v]", i, s.Pos.X, w/2)
		}
		if s.Pos.Y < -2 || s.Pos.Y > h/2+2 {
			t.Fatalf("tick %d: y = %v escaped [0, %v]", i, s.Pos.Y, h/2)
		}
	}
}

func TestAdvanceDeterministic(t *testing.T) {
	a := NewAnimationState()
	b := NewAnimationState()
	for i := 0; i < 1000; i++ {
		a = a.Advance(320, 240)
		b = b.Advance(320, 240)
	}
	if a != b {
		t.Errorf("same inputs diverged: %+v vs %+v", a, b)
	}
}
