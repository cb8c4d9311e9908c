package core

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"same point", Vec2{5, 5}, Vec2{5, 5}, 0},
		{"horizontal", Vec2{0, 0}, Vec2{3, 0}, 3},
		{"vertical", Vec2{0, 0}, Vec2{0, 4}, 4},
		{"diagonal 3-4-5", Vec2{0, 0}, Vec2{3, 4}, 5},
		{"negative coords", Vec2{-3, -4}, Vec2{0, 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDirectionUnitLength(t *testing.T) {
	from := Vec2{10, 20}
	to := Vec2{-5, 7}

	d := Direction(from, to)
	if math.Abs(d.Len()-1) > 1e-9 {
		t.Errorf("Direction should be a unit vector, got length %f", d.Len())
	}

	// Moving the full distance along the direction lands on the target
	moved := from.Add(d.Scale(Distance(from, to)))
	if math.Abs(moved.X-to.X) > 1e-9 || math.Abs(moved.Y-to.Y) > 1e-9 {
		t.Errorf("from + dir*dist = %v, want %v", moved, to)
	}
}

func TestDirectionCoincidentPoints(t *testing.T) {
	// Coincident points must not produce NaN; the zero vector means
	// "stand still this frame"
	d := Direction(Vec2{7, 7}, Vec2{7, 7})
	if d.X != 0 || d.Y != 0 {
		t.Errorf("Direction of coincident points should be zero vector, got %v", d)
	}
}

func TestRectContains(t *testing.T) {
	// Square of size 20 centered at (100, 100): spans [90,110] x [90,110]
	r := NewSquare(Vec2{100, 100}, 20)

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", Vec2{100, 100}, true},
		{"inside", Vec2{95, 105}, true},
		{"left edge inclusive", Vec2{90, 100}, true},
		{"right edge inclusive", Vec2{110, 100}, true},
		{"top edge inclusive", Vec2{100, 90}, true},
		{"bottom edge inclusive", Vec2{100, 110}, true},
		{"corner inclusive", Vec2{90, 90}, true},
		{"just outside left", Vec2{89.999, 100}, false},
		{"just outside bottom", Vec2{100, 110.001}, false},
		{"far away", Vec2{0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestVec2LenSq(t *testing.T) {
	v := Vec2{3, 4}
	if v.LenSq() != 25 {
		t.Errorf("LenSq = %f, want 25", v.LenSq())
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, want 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %d, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %d, want 10", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %f, want 0.5", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %f, want 0", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, want 1", got)
	}
}
