package calendar

import (
	"encoding/json"
	"fmt"

	"github.com/warit/safeboard/internal/config"
	"github.com/warit/safeboard/internal/models"
	"github.com/warit/safeboard/internal/util"
)

// yearRecord is the persisted envelope for one calendar year: the day
// statuses plus the flat editable board content.
type yearRecord struct {
	MonthlyData   []models.MonthlyData  `json:"monthlyData"`
	SloganTh      string                `json:"sloganTh"`
	SloganEn      string                `json:"sloganEn"`
	PolicyTitle   string                `json:"policyTitle"`
	PolicyLines   []string              `json:"policyLines"`
	PolicyPoster  string                `json:"policyPoster"`
	Announcements []models.Announcement `json:"announcements"`
	Metrics       []models.Metric       `json:"metrics"`
}

func yearKey(year int) string {
	return fmt.Sprintf("%s%d", config.KeyYearPrefix, year)
}

// loadYear restores the record for year, creating a fresh all-unset year
// seeded with the default content when the record is missing or fails shape
// validation.
func (e *Engine) loadYear(year int) {
	e.year = year

	fresh := func() {
		e.months = CreateYearData(year).Months
		e.content = e.seed
	}

	raw, ok := e.store.Get(yearKey(year))
	if !ok {
		fresh()
		return
	}
	var rec yearRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		fresh()
		return
	}
	if !validMonths(rec.MonthlyData, year) {
		fresh()
		return
	}
	e.months = rec.MonthlyData
	e.content = models.BoardContent{
		SloganTh:      rec.SloganTh,
		SloganEn:      rec.SloganEn,
		PolicyTitle:   rec.PolicyTitle,
		PolicyLines:   rec.PolicyLines,
		PolicyPoster:  rec.PolicyPoster,
		Announcements: rec.Announcements,
		Metrics:       rec.Metrics,
	}
}

// validMonths checks the restored calendar shape: exactly twelve months in
// order, each sized to the real day count of (year, month), every status
// drawn from the declared set.
func validMonths(months []models.MonthlyData, year int) bool {
	if len(months) != 12 {
		return false
	}
	for m, md := range months {
		if md.Month != m || md.Year != year {
			return false
		}
		if len(md.Days) != DaysIn(year, m) {
			return false
		}
		for d, day := range md.Days {
			if day.Day != d+1 || !day.Status.Valid() {
				return false
			}
		}
	}
	return true
}

// save writes the year record through to the store. Persistence failures are
// logged and otherwise ignored: the in-memory state is authoritative until
// the next successful write.
func (e *Engine) save() {
	rec := yearRecord{
		MonthlyData:   e.months,
		SloganTh:      e.content.SloganTh,
		SloganEn:      e.content.SloganEn,
		PolicyTitle:   e.content.PolicyTitle,
		PolicyLines:   e.content.PolicyLines,
		PolicyPoster:  e.content.PolicyPoster,
		Announcements: e.content.Announcements,
		Metrics:       e.content.Metrics,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		util.LogError("encode year record", err)
		return
	}
	util.LogError("save year record", e.store.Set(yearKey(e.year), string(data)))
}
