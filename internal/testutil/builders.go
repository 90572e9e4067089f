// Package testutil provides in-memory fakes and fluent builders for tests.
package testutil

import (
	"time"

	"github.com/warit/safeboard/internal/models"
)

// MemStore is an in-memory key/value store for engine tests.
type MemStore struct {
	Records map[string]string
	// SetErr, when non-nil, is returned by Set to simulate write failures.
	SetErr error
}

func NewMemStore() *MemStore {
	return &MemStore{Records: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, bool) {
	v, ok := m.Records[key]
	return v, ok
}

func (m *MemStore) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Records[key] = value
	return nil
}

func (m *MemStore) Delete(key string) error {
	delete(m.Records, key)
	return nil
}

// YearBuilder provides a fluent API for creating test year data.
type YearBuilder struct {
	year  int
	marks map[[2]int]models.DayStatus // (month, dayIndex) -> status
}

func NewYear(year int) *YearBuilder {
	return &YearBuilder{year: year, marks: make(map[[2]int]models.DayStatus)}
}

func (b *YearBuilder) WithDay(month, dayIndex int, status models.DayStatus) *YearBuilder {
	b.marks[[2]int{month, dayIndex}] = status
	return b
}

func (b *YearBuilder) Build() models.YearData {
	yd := models.YearData{Year: b.year, Months: make([]models.MonthlyData, 12)}
	for m := 0; m < 12; m++ {
		n := time.Date(b.year, time.Month(m+1)+1, 0, 0, 0, 0, 0, time.UTC).Day()
		md := models.MonthlyData{Month: m, Year: b.year, Days: make([]models.DailyStatistic, n)}
		for d := 0; d < n; d++ {
			status := models.StatusUnset
			if s, ok := b.marks[[2]int{m, d}]; ok {
				status = s
			}
			md.Days[d] = models.DailyStatistic{Day: d + 1, Status: status}
		}
		yd.Months[m] = md
	}
	return yd
}

// ContentBuilder provides a fluent API for creating test board content.
type ContentBuilder struct {
	content models.BoardContent
}

func NewContent() *ContentBuilder {
	return &ContentBuilder{
		content: models.BoardContent{
			SloganTh:    "ปลอดภัยไว้ก่อน",
			SloganEn:    "Safety First",
			PolicyTitle: "Safety Policy",
		},
	}
}

func (b *ContentBuilder) WithSlogans(th, en string) *ContentBuilder {
	b.content.SloganTh, b.content.SloganEn = th, en
	return b
}

func (b *ContentBuilder) WithAnnouncement(id, text string) *ContentBuilder {
	b.content.Announcements = append(b.content.Announcements, models.Announcement{
		ID: id, Text: text, CreatedAt: time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC),
	})
	return b
}

func (b *ContentBuilder) WithMetric(label string, value int, unit string) *ContentBuilder {
	b.content.Metrics = append(b.content.Metrics, models.Metric{Label: label, Value: value, Unit: unit})
	return b
}

func (b *ContentBuilder) Build() models.BoardContent {
	return b.content
}
