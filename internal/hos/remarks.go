package hos

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// AverageSpeedMPH converts driving hours into an estimated distance.
const AverageSpeedMPH = 55

const maxRemarkLocations = 3

// EstimateMiles returns round(driving hours × AverageSpeedMPH) using the
// unrounded segment durations.
func EstimateMiles(segments []domain.Segment) int {
	var hours float64
	for _, s := range segments {
		if s.Status == domain.Driving {
			hours += s.DurationHours
		}
	}
	return int(math.Round(hours * AverageSpeedMPH))
}

// Remarks builds the free-text remarks line of a DailyLog: driving hours, up to
// three distinct locations the driver entered, and the pickup location.
// Locations equal to the generic description of their status are skipped.
func Remarks(summary domain.Summary, events []domain.StatusEvent, trip domain.TripInfo) string {
	var locations []string
	seen := make(map[string]struct{})
	for _, e := range events {
		if e.Location == "" || e.Location == e.Status.Description() {
			continue
		}
		if _, ok := seen[e.Location]; ok {
			continue
		}
		seen[e.Location] = struct{}{}
		locations = append(locations, e.Location)
	}

	where := "Various locations"
	if len(locations) > 0 {
		where = strings.Join(locations[:min(len(locations), maxRemarkLocations)], ", ")
	}

	var pickup string
	if trip.PickupLocation != "" {
		pickup = fmt.Sprintf(" Pickup at %s.", trip.PickupLocation)
	}
	return fmt.Sprintf("Drove %.1fh. Locations: %s.%s", summary.Driving, where, pickup)
}

// FormatDuration renders d as "Xh Ym Zs" for live display.
// Negative durations render as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
