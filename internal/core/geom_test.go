package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		dir  Dir
		want Point
	}{
		{DirUp, P(2, 1)},
		{DirDown, P(2, 3)},
		{DirLeft, P(1, 2)},
		{DirRight, P(3, 2)},
		{DirNone, P(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got := P(2, 2).Add(tt.dir)
			if got != tt.want {
				t.Errorf("Add(%v) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestPointWithin(t *testing.T) {
	if !P(0, 0).Within(3, 3) {
		t.Error("origin should be within 3x3")
	}
	if P(3, 0).Within(3, 3) {
		t.Error("x == width should be outside")
	}
	if P(0, -1).Within(3, 3) {
		t.Error("negative y should be outside")
	}
}

func TestChebyshevDist(t *testing.T) {
	if d := P(1, 1).ChebyshevDist(P(3, 2)); d != 2 {
		t.Errorf("ChebyshevDist = %d, want 2", d)
	}
	if d := P(4, 4).ChebyshevDist(P(4, 4)); d != 0 {
		t.Errorf("ChebyshevDist to self = %d, want 0", d)
	}
}

func TestActionDir(t *testing.T) {
	if ActionLeft.Dir() != DirLeft {
		t.Errorf("ActionLeft.Dir() = %v", ActionLeft.Dir())
	}
	if ActionConfirm.Dir() != DirNone {
		t.Errorf("ActionConfirm.Dir() = %v, want None", ActionConfirm.Dir())
	}
}
