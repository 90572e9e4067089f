// Package calendar owns a year of per-day safety statuses, the auto-fill
// sweep that marks unrecorded past days safe, and the derived aggregates
// (month summary, accident-free streak) shown on the board.
package calendar

import (
	"time"

	"github.com/warit/safeboard/internal/config"
	"github.com/warit/safeboard/internal/models"
	"github.com/warit/safeboard/internal/store"
)

// Engine holds the loaded year's day records plus the editable board
// content that shares the per-year persistence record.
type Engine struct {
	store        store.Store
	year         int
	months       []models.MonthlyData
	content      models.BoardContent
	seed         models.BoardContent
	autoSafeHour int
}

// New loads (or creates) the record for year. seed supplies the initial
// board content for a fresh year.
func New(st store.Store, year int, seed models.BoardContent) *Engine {
	e := &Engine{
		store:        st,
		seed:         seed,
		autoSafeHour: config.AutoSafeHour,
	}
	e.loadYear(year)
	return e
}

// SetAutoSafeHour overrides the hour from which today may be auto-marked
// safe. Out-of-range values are ignored.
func (e *Engine) SetAutoSafeHour(hour int) {
	if hour >= 0 && hour <= 23 {
		e.autoSafeHour = hour
	}
}

// Year returns the loaded year.
func (e *Engine) Year() int { return e.year }

// SwitchYear drops the in-memory structure for the current year (it stays on
// disk under its own key) and loads or creates the record for year.
func (e *Engine) SwitchYear(year int) {
	if year == e.year {
		return
	}
	e.loadYear(year)
}

// Month returns a copy of one month's records. An out-of-range index yields
// an empty month rather than a panic; the board never crashes on bad input.
func (e *Engine) Month(monthIndex int) models.MonthlyData {
	if monthIndex < 0 || monthIndex > 11 {
		return models.MonthlyData{Month: monthIndex, Year: e.year}
	}
	m := e.months[monthIndex]
	return models.MonthlyData{
		Month: m.Month,
		Year:  m.Year,
		Days:  append([]models.DailyStatistic(nil), m.Days...),
	}
}

// DayStatus returns the status of one day, or unset when out of range.
func (e *Engine) DayStatus(monthIndex, dayIndex int) models.DayStatus {
	if !e.inRange(monthIndex, dayIndex) {
		return models.StatusUnset
	}
	return e.months[monthIndex].Days[dayIndex].Status
}

func (e *Engine) inRange(monthIndex, dayIndex int) bool {
	return monthIndex >= 0 && monthIndex <= 11 &&
		dayIndex >= 0 && dayIndex < len(e.months[monthIndex].Days)
}

// CycleDayStatus advances one day to the next status in the fixed cycle
// unset -> safe -> near_miss -> accident -> unset, then persists.
func (e *Engine) CycleDayStatus(monthIndex, dayIndex int) {
	if !e.inRange(monthIndex, dayIndex) {
		return
	}
	d := &e.months[monthIndex].Days[dayIndex]
	d.Status = d.Status.Next()
	e.save()
}

// SetDayStatus assigns a status directly (the SAFE/NEAR/ACC/CLEAR controls).
// Invalid statuses and out-of-range days are ignored.
func (e *Engine) SetDayStatus(monthIndex, dayIndex int, status models.DayStatus) {
	if !e.inRange(monthIndex, dayIndex) || !status.Valid() {
		return
	}
	d := &e.months[monthIndex].Days[dayIndex]
	if d.Status == status {
		return
	}
	d.Status = status
	e.save()
}

// MonthComplete reports whether no day of the month remains unset.
func (e *Engine) MonthComplete(monthIndex int) bool {
	if monthIndex < 0 || monthIndex > 11 {
		return false
	}
	for _, d := range e.months[monthIndex].Days {
		if d.Status == models.StatusUnset {
			return false
		}
	}
	return true
}

// AutoFillSweep marks every unset day strictly before now's day-of-month as
// safe, and today itself once the hour reaches the auto-safe threshold. The
// sweep only applies when the loaded year contains now; it only ever moves
// unset to safe, so running it twice in the same minute changes nothing the
// second time. Reports whether any day changed.
func (e *Engine) AutoFillSweep(now time.Time) bool {
	if now.Year() != e.year {
		return false
	}
	monthIndex := int(now.Month()) - 1
	today := now.Day()
	days := e.months[monthIndex].Days

	changed := false
	for i := range days {
		if days[i].Status != models.StatusUnset {
			continue
		}
		switch {
		case days[i].Day < today:
			days[i].Status = models.StatusSafe
			changed = true
		case days[i].Day == today && now.Hour() >= e.autoSafeHour:
			days[i].Status = models.StatusSafe
			changed = true
		}
	}
	if changed {
		e.save()
	}
	return changed
}

// Streak counts consecutive accident-free days (safe or near_miss) walking
// backward from today. Today itself is skipped while still unrecorded;
// before any earlier day, an unset record stops the count so unverified
// days are never credited. The streak is zero when the loaded year is not
// now's year.
func (e *Engine) Streak(now time.Time) int {
	if now.Year() != e.year {
		return 0
	}
	monthIndex := int(now.Month()) - 1
	dayIndex := now.Day() - 1

	count := 0
	first := true
	for m := monthIndex; m >= 0; m-- {
		start := len(e.months[m].Days) - 1
		if m == monthIndex {
			start = dayIndex
		}
		for d := start; d >= 0; d-- {
			status := e.months[m].Days[d].Status
			switch status {
			case models.StatusSafe, models.StatusNearMiss:
				count++
			case models.StatusUnset:
				if first {
					first = false
					continue
				}
				return count
			default: // accident
				return count
			}
			first = false
		}
	}
	return count
}

// MonthSummary aggregates one month's statuses in a single pass.
func (e *Engine) MonthSummary(monthIndex int) models.MonthSummary {
	var s models.MonthSummary
	if monthIndex < 0 || monthIndex > 11 {
		return s
	}
	for _, d := range e.months[monthIndex].Days {
		switch d.Status {
		case models.StatusSafe:
			s.Safe++
		case models.StatusNearMiss:
			s.NearMiss++
		case models.StatusAccident:
			s.Accident++
		}
	}
	s.Filled = s.Safe + s.NearMiss + s.Accident
	s.Total = len(e.months[monthIndex].Days)
	return s
}

// Content returns the board content carried in the year record.
func (e *Engine) Content() models.BoardContent {
	c := e.content
	c.PolicyLines = append([]string(nil), e.content.PolicyLines...)
	c.Announcements = append([]models.Announcement(nil), e.content.Announcements...)
	c.Metrics = append([]models.Metric(nil), e.content.Metrics...)
	return c
}

// SetContent replaces the board content and persists the year record.
func (e *Engine) SetContent(c models.BoardContent) {
	e.content = c
	e.save()
}

// DaysIn returns the real calendar length of (year, monthIndex 0..11).
func DaysIn(year, monthIndex int) int {
	return time.Date(year, time.Month(monthIndex+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// CreateYearData builds a fresh all-unset year: twelve months, each sized to
// its real calendar length.
func CreateYearData(year int) models.YearData {
	yd := models.YearData{Year: year, Months: make([]models.MonthlyData, 12)}
	for m := 0; m < 12; m++ {
		n := DaysIn(year, m)
		md := models.MonthlyData{Month: m, Year: year, Days: make([]models.DailyStatistic, n)}
		for d := 0; d < n; d++ {
			md.Days[d] = models.DailyStatistic{Day: d + 1, Status: models.StatusUnset}
		}
		yd.Months[m] = md
	}
	return yd
}
