// Package content applies board edits to the flat editable records persisted
// in the per-year envelope: slogans, announcements, policy text and poster,
// and KPI metrics. Edits come from plain controlled inputs, so the rules are
// deliberately small: text fields only change when the edit is non-blank.
package content

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warit/safeboard/internal/models"
)

// ApplyTextEdits merges edit into current. A blank edit field keeps the
// current value; a board wiped by an accidental empty save would defeat the
// point of a wall display.
func ApplyTextEdits(current, edit models.BoardContent) models.BoardContent {
	out := current
	if s := strings.TrimSpace(edit.SloganTh); s != "" {
		out.SloganTh = s
	}
	if s := strings.TrimSpace(edit.SloganEn); s != "" {
		out.SloganEn = s
	}
	if s := strings.TrimSpace(edit.PolicyTitle); s != "" {
		out.PolicyTitle = s
	}
	if s := strings.TrimSpace(edit.PolicyPoster); s != "" {
		out.PolicyPoster = s
	}
	if len(edit.PolicyLines) > 0 {
		lines := make([]string, 0, len(edit.PolicyLines))
		for _, l := range edit.PolicyLines {
			if t := strings.TrimSpace(l); t != "" {
				lines = append(lines, t)
			}
		}
		if len(lines) > 0 {
			out.PolicyLines = lines
		}
	}
	return out
}

// AddAnnouncement appends a new announcement with a fresh ID. Blank text is
// ignored.
func AddAnnouncement(c models.BoardContent, text string, now time.Time) models.BoardContent {
	text = strings.TrimSpace(text)
	if text == "" {
		return c
	}
	out := c
	out.Announcements = append(append([]models.Announcement(nil), c.Announcements...), models.Announcement{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: now,
	})
	return out
}

// RemoveAnnouncement drops the announcement with the given ID. Unknown IDs
// change nothing.
func RemoveAnnouncement(c models.BoardContent, id string) models.BoardContent {
	out := c
	out.Announcements = nil
	for _, a := range c.Announcements {
		if a.ID != id {
			out.Announcements = append(out.Announcements, a)
		}
	}
	return out
}

// SetMetric updates the metric with the given label, appending it when new.
func SetMetric(c models.BoardContent, label string, value int, unit string) models.BoardContent {
	label = strings.TrimSpace(label)
	if label == "" {
		return c
	}
	out := c
	out.Metrics = append([]models.Metric(nil), c.Metrics...)
	for i, m := range out.Metrics {
		if m.Label == label {
			out.Metrics[i].Value = value
			if strings.TrimSpace(unit) != "" {
				out.Metrics[i].Unit = unit
			}
			return out
		}
	}
	out.Metrics = append(out.Metrics, models.Metric{Label: label, Value: value, Unit: unit})
	return out
}
