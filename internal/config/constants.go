package config

import "time"

// Timer intervals.
const (
	ClockTickInterval = time.Second
	AutoFillInterval  = time.Minute
)

// AutoSafeHour is the wall-clock hour from which the auto-fill sweep may mark
// today itself as safe. Past days are swept regardless of hour.
const AutoSafeHour = 16

// Storage keys. The per-year record appends the four-digit year.
const (
	KeyYearPrefix = "dashboard:"
	KeyLayout     = "dashboard:layout"
	KeySlots      = "dashboard:slots"
	KeyCompany    = "board:company"
	KeyPassHash   = "board:passphrase_hash"
)

// Database/application settings.
const (
	AppName        = "safeboard"
	DBFileName     = "safeboard.db"
	ConfigFileName = "board.yaml"
)
