package attendance

import (
	"math"
	"time"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/attendance"
)

// DefaultStandardHours applies when the employee has no assigned shift
// or the shift has no standard configured.
const DefaultStandardHours = 8.0

// breakDeductionThresholdHours is the minimum on-site span before the
// shift's break allocation is subtracted from a day's worked hours. A
// short day means the employee worked through without a full break.
const breakDeductionThresholdHours = 5.0

// ShiftHours is the per-shift configuration a day is measured against.
type ShiftHours struct {
	StandardHours float64
	BreakHours    float64
}

// MonthTotals is the fold of a month's daily groups.
type MonthTotals struct {
	OvertimeHours  float64
	UndertimeHours float64
	WorkDays       int
}

// DurationHours converts a check-in/check-out pair into worked hours,
// rounded to two decimals. A checkout recorded before the check-in
// yields a negative value; callers flag such sessions rather than
// clamping them.
func DurationHours(checkIn, checkOut time.Time) float64 {
	return round2(checkOut.Sub(checkIn).Seconds() / 3600)
}

// DayWorkedHours applies the break deduction rule to one day's summed
// session hours: when the first-check-in to last-check-out span exceeds
// the threshold, the shift's break allocation comes off the total.
func DayWorkedHours(g attendance.DailyGroup, breakHours float64) float64 {
	worked := g.TotalHours
	span := g.LastCheckOut.Sub(g.FirstCheckIn).Hours()
	if span > breakDeductionThresholdHours {
		worked -= breakHours
	}
	if worked < 0 {
		worked = 0
	}
	return round2(worked)
}

// SummarizeMonth folds daily groups into overtime and undertime totals.
// Every day measures against the same employee-level standardHours; the
// shift map supplies only each day's break allocation. A day can land on
// one side only, never both. Days whose shift is missing from the map
// are skipped entirely.
func SummarizeMonth(groups []attendance.DailyGroup, standardHours float64, shifts map[string]ShiftHours) MonthTotals {
	var totals MonthTotals

	for _, g := range groups {
		sh, ok := shifts[g.ShiftID]
		if !ok {
			continue
		}

		worked := DayWorkedHours(g, sh.BreakHours)
		diff := worked - standardHours
		if diff > 0 {
			totals.OvertimeHours += diff
		} else if diff < 0 {
			totals.UndertimeHours += -diff
		}
		totals.WorkDays++
	}

	totals.OvertimeHours = round2(totals.OvertimeHours)
	totals.UndertimeHours = round2(totals.UndertimeHours)
	return totals
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
