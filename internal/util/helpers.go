package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampFloat constrains a float to a range.
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Truncate shortens s to max runes, appending suffix when cut.
func Truncate(s, suffix string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= len([]rune(suffix)) {
		return string(r[:max])
	}
	return string(r[:max-len([]rune(suffix))]) + suffix
}
