package config

import "testing"

func TestConstants(t *testing.T) {
	if ClockTickInterval <= 0 {
		t.Fatalf("ClockTickInterval must be positive")
	}
	if AutoFillInterval <= 0 {
		t.Fatalf("AutoFillInterval must be positive")
	}
	if AutoSafeHour < 0 || AutoSafeHour > 23 {
		t.Fatalf("AutoSafeHour out of range: %d", AutoSafeHour)
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
}

func TestDefaultGroupsSumTo100(t *testing.T) {
	groups := map[string][]float64{
		"cols":       DefaultCols,
		"leftRows":   DefaultLeftRows,
		"centerRows": DefaultCenterRows,
		"rightRows":  DefaultRightRows,
	}
	for name, g := range groups {
		sum := 0.0
		for _, v := range g {
			sum += v
		}
		if sum != 100 {
			t.Fatalf("%s sums to %v, want 100", name, sum)
		}
		min := MinRowPct
		if name == "cols" {
			min = MinColumnPct
		}
		for i, v := range g {
			if v < min {
				t.Fatalf("%s[%d] = %v below minimum %v", name, i, v, min)
			}
		}
	}
}
