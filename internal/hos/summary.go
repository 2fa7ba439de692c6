package hos

import (
	"math"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// MaxDrivingHours is the daily driving limit checked by IsCompliant.
const MaxDrivingHours = 11.0

// Aggregate sums segment durations per duty status and rounds each total to
// two decimals independently.
func Aggregate(segments []domain.Segment) domain.Summary {
	var totals [len(domain.DutyStatuses)]float64
	for _, s := range segments {
		if !s.Status.Valid() {
			continue
		}
		totals[s.Status] += s.DurationHours
	}
	return domain.Summary{
		OffDuty:      round2(totals[domain.OffDuty]),
		SleeperBerth: round2(totals[domain.SleeperBerth]),
		Driving:      round2(totals[domain.Driving]),
		OnDuty:       round2(totals[domain.OnDuty]),
	}
}

// IsCompliant reports whether driving time stays strictly below
// maxDrivingHours. Reaching the limit exactly is a violation.
func IsCompliant(summary domain.Summary, maxDrivingHours float64) bool {
	return summary.Driving < maxDrivingHours
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
