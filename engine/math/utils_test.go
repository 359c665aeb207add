package math

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(uint32(5000), 100, 2000); got != 2000 {
		t.Errorf("Clamp(5000, 100, 2000) = %d", got)
	}
	if got := Clamp(uint32(50), 100, 2000); got != 100 {
		t.Errorf("Clamp(50, 100, 2000) = %d", got)
	}
	if got := Clamp(uint32(500), 100, 2000); got != 500 {
		t.Errorf("Clamp(500, 100, 2000) = %d", got)
	}
	if got := Clamp(1.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("Clamp(1.5, 0, 1) = %f", got)
	}
}
