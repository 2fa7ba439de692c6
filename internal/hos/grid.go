package hos

import "github.com/pkordes/eld-logbook/internal/domain"

// HoursPerDay is the number of hour slots in a grid row.
const HoursPerDay = 24

// Bar is the part of one segment drawn inside one hour cell.
// StartPercent and WidthPercent are relative to the cell and lie in [0,100].
type Bar struct {
	Segment       int     `json:"segment"`
	StartPercent  float64 `json:"start_percent"`
	WidthPercent  float64 `json:"width_percent"`
	DurationHours float64 `json:"duration_hours"`
}

// Grid holds one row per duty status and one cell per hour.
// Rows are indexed by the status ordinal.
type Grid struct {
	Rows [len(domain.DutyStatuses)][HoursPerDay][]Bar `json:"rows"`
}

// Cell returns the bars drawn for status in hour slot hour.
func (g *Grid) Cell(status domain.DutyStatus, hour int) []Bar {
	if !status.Valid() || hour < 0 || hour >= HoursPerDay {
		return nil
	}
	return g.Rows[status][hour]
}

// Project maps segments onto the 24-hour grid.
//
// A segment lands in slot h iff StartHour < h+1 and EndHour > h. Each
// overlapping segment produces its own bar; bars are never merged, and a bar
// is only ever placed in its segment's status row. A segment crossing
// midnight (EndHour < StartHour) overlaps no slot.
func Project(segments []domain.Segment) Grid {
	var g Grid
	for i, s := range segments {
		if !s.Status.Valid() {
			continue
		}
		for h := 0; h < HoursPerDay; h++ {
			slot := float64(h)
			if !(s.StartHour < slot+1 && s.EndHour > slot) {
				continue
			}
			from := max(s.StartHour, slot)
			to := min(s.EndHour, slot+1)
			g.Rows[s.Status][h] = append(g.Rows[s.Status][h], Bar{
				Segment:       i,
				StartPercent:  clampPercent((from - slot) * 100),
				WidthPercent:  clampPercent((to - from) * 100),
				DurationHours: s.DurationHours,
			})
		}
	}
	return g
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}
