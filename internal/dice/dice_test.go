package dice

import "testing"

func TestRollStaysInRange(t *testing.T) {
	src := NewSource(1)
	for _, faces := range []int{10, 12, 20, 25, 50, 100} {
		seenLow, seenHigh := false, false
		for i := 0; i < 5000; i++ {
			got := src.Roll(faces)
			if got < 1 || got > faces {
				t.Fatalf("Roll(%d) = %d, outside [1, %d]", faces, got, faces)
			}
			if got == 1 {
				seenLow = true
			}
			if got == faces {
				seenHigh = true
			}
		}
		if !seenLow || !seenHigh {
			t.Errorf("Roll(%d): endpoints not reached in 5000 draws (low=%v high=%v)", faces, seenLow, seenHigh)
		}
	}
}

func TestRollDegenerateFaces(t *testing.T) {
	src := NewSource(1)
	if got := src.Roll(0); got != 1 {
		t.Errorf("Roll(0) = %d, want 1", got)
	}
	if got := src.Roll(-3); got != 1 {
		t.Errorf("Roll(-3) = %d, want 1", got)
	}
	if got := src.Roll(1); got != 1 {
		t.Errorf("Roll(1) = %d, want 1", got)
	}
}

func TestSeedDeterminism(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Roll(20), b.Roll(20); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}
