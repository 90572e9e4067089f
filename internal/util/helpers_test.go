package util

import "testing"

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 || Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 {
		t.Fatalf("Clamp misbehaving")
	}
}

func TestClampFloat(t *testing.T) {
	if ClampFloat(12.5, 15, 70) != 15 {
		t.Fatalf("expected clamp up to minimum")
	}
	if ClampFloat(80, 15, 70) != 70 {
		t.Fatalf("expected clamp down to maximum")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("safety first", "...", 6); got != "saf..." {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("ok", "...", 6); got != "ok" {
		t.Fatalf("short string changed: %q", got)
	}
}
