package config

// Proportion-group minimums, in percent. Every member of a group stays at or
// above its minimum so each panel keeps a visible area.
const (
	MinColumnPct = 15.0
	MinRowPct    = 12.0
)

// Default proportion groups. Each group sums to 100.
var (
	DefaultCols       = []float64{28, 44, 28}
	DefaultLeftRows   = []float64{40, 60}
	DefaultCenterRows = []float64{55, 45}
	DefaultRightRows  = []float64{34, 33, 33}
)

// Display limits.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 80

	// MaxVisibleAnnouncements limits lines shown before scrolling.
	MaxVisibleAnnouncements = 6

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxSloganLength is the maximum slogan length.
	MaxSloganLength = 120

	// MaxAnnouncementLength is the maximum announcement length.
	MaxAnnouncementLength = 200

	// MaxPolicyLineLength is the maximum policy line length.
	MaxPolicyLineLength = 160
)
