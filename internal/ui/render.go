package ui

import (
	"fmt"

	"github.com/idilsaglam/attendance/internal/attendance"
	"github.com/idilsaglam/attendance/internal/model"
)

// MemberLines lists members with their 1-based index.
func MemberLines(members []model.Member) []string {
	t := Current()
	if len(members) == 0 {
		return []string{t.Muted.Render("no members")}
	}
	out := make([]string, 0, len(members))
	for i, m := range members {
		out = append(out, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)), t.Accent.Render(m.ID), m.Name))
	}
	return out
}

// RecordLines renders one date's records with a present/absent header.
func RecordLines(date model.Date, records []model.AttendanceRecord) []string {
	t := Current()
	present, absent := attendance.Tally(records)
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			t.Title.Render(date.String()),
			t.Success.Render(t.SymOK), present,
			t.Pending.Render("•"), absent,
			t.Accent.Render("Total"), len(records)),
		t.Muted.Render(ProgressBar(present, len(records), 28)),
		"",
	}
	if len(records) == 0 {
		return append(lines, t.Muted.Render("no records"))
	}
	for _, r := range records {
		box, style := t.BoxUnchecked, t.Muted
		if r.Attended {
			box, style = t.BoxChecked, t.Success
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", style.Render(box), r.Member, t.Muted.Render(r.Status())))
	}
	return lines
}
