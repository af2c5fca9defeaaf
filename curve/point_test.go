package curve

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 0.25), Pt(2.5, 5))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointSlope(t *testing.T) {
	tests := []struct {
		a, b Point
		want float64
	}{
		{Pt(0, 0), Pt(10, 10), 1},
		{Pt(0, 0), Pt(10, -5), -0.5},
		{Pt(0, 0), Pt(10, 0), 0},
		{Pt(3, 0), Pt(3, 10), math.Inf(1)},
		{Pt(3, 10), Pt(3, 0), math.Inf(1)},
		{Pt(3, 3), Pt(3, 3), math.Inf(1)},
	}
	for _, tt := range tests {
		if got := tt.a.Slope(tt.b); got != tt.want {
			t.Errorf("%v.Slope(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPointRound(t *testing.T) {
	diff(t, Pt(1.5, -2.4).Round(), Pt(2, -2))
	diff(t, Pt(-0.5, 99.5).Round(), Pt(-1, 100))
}
