// Package models defines the data records and closed enumerations shared by
// the layout and calendar engines and the TUI.
package models

import "time"

// DayStatus enumerates the recorded state of a single calendar day.
type DayStatus string

const (
	StatusUnset    DayStatus = "unset"
	StatusSafe     DayStatus = "safe"
	StatusNearMiss DayStatus = "near_miss"
	StatusAccident DayStatus = "accident"
)

// statusCycle is the fixed order used by click-to-cycle day mutation.
var statusCycle = [...]DayStatus{StatusUnset, StatusSafe, StatusNearMiss, StatusAccident}

// Next returns the status that follows s in the cycle, wrapping around.
// Unknown values are treated as unset so a corrupt record cycles back into
// the valid set instead of sticking.
func (s DayStatus) Next() DayStatus {
	for i, v := range statusCycle {
		if v == s {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return StatusSafe
}

// Valid reports whether s is one of the four declared statuses.
func (s DayStatus) Valid() bool {
	for _, v := range statusCycle {
		if v == s {
			return true
		}
	}
	return false
}

// Panel enumerates the board's widget identities. Every panel occupies
// exactly one slot at all times.
type Panel string

const (
	PanelSlogan        Panel = "slogan"
	PanelSafetyData    Panel = "safetyData"
	PanelAnnouncements Panel = "announcements"
	PanelCalendar      Panel = "calendar"
	PanelStreak        Panel = "streak"
	PanelPolicy        Panel = "policy"
	PanelPoster        Panel = "poster"
)

// Panels lists every panel identity in default slot order.
func Panels() []Panel {
	return []Panel{
		PanelSlogan, PanelSafetyData, PanelAnnouncements,
		PanelCalendar, PanelStreak, PanelPolicy, PanelPoster,
	}
}

// ValidPanel reports whether p is a declared panel identity.
func ValidPanel(p Panel) bool {
	for _, v := range Panels() {
		if v == p {
			return true
		}
	}
	return false
}

// Slot enumerates the fixed grid positions. The grid is three columns; the
// left and center columns hold two rows each, the right column holds three.
type Slot string

const (
	SlotLeftTop      Slot = "leftTop"
	SlotLeftBottom   Slot = "leftBottom"
	SlotCenterTop    Slot = "centerTop"
	SlotCenterBottom Slot = "centerBottom"
	SlotRightTop     Slot = "rightTop"
	SlotRightMiddle  Slot = "rightMiddle"
	SlotRightBottom  Slot = "rightBottom"
)

// Slots lists every slot in reading order.
func Slots() []Slot {
	return []Slot{
		SlotLeftTop, SlotLeftBottom,
		SlotCenterTop, SlotCenterBottom,
		SlotRightTop, SlotRightMiddle, SlotRightBottom,
	}
}

// ValidSlot reports whether s is a declared slot.
func ValidSlot(s Slot) bool {
	for _, v := range Slots() {
		if v == s {
			return true
		}
	}
	return false
}

// DailyStatistic records the status of one day of a month.
type DailyStatistic struct {
	Day    int       `json:"day"`
	Status DayStatus `json:"status"`
}

// MonthlyData holds one month's day records. Days is always sized to the
// real calendar length of (Year, Month); that length is the shape check used
// when restoring from storage.
type MonthlyData struct {
	Month int              `json:"month"` // 0..11
	Year  int              `json:"year"`
	Days  []DailyStatistic `json:"days"`
}

// YearData is exactly twelve months of day records for one year.
type YearData struct {
	Year   int           `json:"year"`
	Months []MonthlyData `json:"months"`
}

// Announcement is a single line on the announcements panel.
type Announcement struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Metric is one KPI tile on the safety-data panel.
type Metric struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// BoardContent carries the flat editable fields persisted alongside the
// calendar data in the per-year record.
type BoardContent struct {
	SloganTh      string         `json:"sloganTh"`
	SloganEn      string         `json:"sloganEn"`
	PolicyTitle   string         `json:"policyTitle"`
	PolicyLines   []string       `json:"policyLines"`
	PolicyPoster  string         `json:"policyPoster"` // opaque image reference, may be empty
	Announcements []Announcement `json:"announcements"`
	Metrics       []Metric       `json:"metrics"`
}

// MonthSummary aggregates one month's day statuses.
type MonthSummary struct {
	Safe     int
	NearMiss int
	Accident int
	Filled   int
	Total    int
}
