package content

import (
	"testing"
	"time"

	"github.com/warit/safeboard/internal/models"
	"github.com/warit/safeboard/internal/testutil"
)

func TestApplyTextEditsBlankKeepsCurrent(t *testing.T) {
	current := testutil.NewContent().Build()
	got := ApplyTextEdits(current, models.BoardContent{SloganEn: "   "})
	if got.SloganEn != current.SloganEn {
		t.Fatalf("blank edit clobbered slogan: %q", got.SloganEn)
	}
	if got.SloganTh != current.SloganTh {
		t.Fatalf("untouched field changed: %q", got.SloganTh)
	}
}

func TestApplyTextEditsNonBlankWins(t *testing.T) {
	current := testutil.NewContent().Build()
	got := ApplyTextEdits(current, models.BoardContent{
		SloganEn:    "Zero Harm",
		PolicyTitle: "Plant Safety Policy",
	})
	if got.SloganEn != "Zero Harm" || got.PolicyTitle != "Plant Safety Policy" {
		t.Fatalf("edits not applied: %+v", got)
	}
}

func TestApplyTextEditsPolicyLines(t *testing.T) {
	current := models.BoardContent{PolicyLines: []string{"wear PPE"}}
	got := ApplyTextEdits(current, models.BoardContent{PolicyLines: []string{"  ", ""}})
	if len(got.PolicyLines) != 1 || got.PolicyLines[0] != "wear PPE" {
		t.Fatalf("all-blank lines clobbered policy: %v", got.PolicyLines)
	}
	got = ApplyTextEdits(current, models.BoardContent{PolicyLines: []string{" report hazards ", ""}})
	if len(got.PolicyLines) != 1 || got.PolicyLines[0] != "report hazards" {
		t.Fatalf("lines not trimmed/replaced: %v", got.PolicyLines)
	}
}

func TestAddAnnouncement(t *testing.T) {
	now := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	c := AddAnnouncement(models.BoardContent{}, "Fire drill on Friday", now)
	if len(c.Announcements) != 1 {
		t.Fatalf("announcement not added")
	}
	a := c.Announcements[0]
	if a.ID == "" || a.Text != "Fire drill on Friday" || !a.CreatedAt.Equal(now) {
		t.Fatalf("announcement malformed: %+v", a)
	}
	c2 := AddAnnouncement(c, "Second", now)
	if c2.Announcements[1].ID == c2.Announcements[0].ID {
		t.Fatalf("IDs not unique")
	}
	if got := AddAnnouncement(c, "   ", now); len(got.Announcements) != 1 {
		t.Fatalf("blank announcement added")
	}
}

func TestRemoveAnnouncement(t *testing.T) {
	c := testutil.NewContent().
		WithAnnouncement("a1", "one").
		WithAnnouncement("a2", "two").
		Build()
	got := RemoveAnnouncement(c, "a1")
	if len(got.Announcements) != 1 || got.Announcements[0].ID != "a2" {
		t.Fatalf("remove failed: %+v", got.Announcements)
	}
	if got := RemoveAnnouncement(c, "missing"); len(got.Announcements) != 2 {
		t.Fatalf("unknown ID changed the list")
	}
}

func TestSetMetric(t *testing.T) {
	c := testutil.NewContent().WithMetric("Lost-time injuries", 2, "cases").Build()
	got := SetMetric(c, "Lost-time injuries", 0, "")
	if got.Metrics[0].Value != 0 || got.Metrics[0].Unit != "cases" {
		t.Fatalf("update failed: %+v", got.Metrics[0])
	}
	got = SetMetric(got, "Safe man-hours", 120000, "hours")
	if len(got.Metrics) != 2 || got.Metrics[1].Label != "Safe man-hours" {
		t.Fatalf("append failed: %+v", got.Metrics)
	}
	if len(c.Metrics) != 1 || c.Metrics[0].Value != 2 {
		t.Fatalf("input mutated: %+v", c.Metrics)
	}
}
