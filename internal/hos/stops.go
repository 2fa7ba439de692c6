package hos

import (
	"strings"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// NextUnvisitedStop returns the first planned stop not yet visited.
//
// A stop counts as visited when some event location contains the stop's
// location as a case-sensitive substring, or when an event references the
// stop's index explicitly. The substring rule is loose: "near B junction"
// visits a stop named "B".
func NextUnvisitedStop(stops []domain.PlannedStop, events []domain.StatusEvent) (domain.PlannedStop, bool) {
	for i, stop := range stops {
		if !visited(i, stop, events) {
			return stop, true
		}
	}
	return domain.PlannedStop{}, false
}

func visited(index int, stop domain.PlannedStop, events []domain.StatusEvent) bool {
	for _, e := range events {
		if e.StopIndex != nil && *e.StopIndex == index {
			return true
		}
		if e.Location != "" && strings.Contains(e.Location, stop.Location) {
			return true
		}
	}
	return false
}
