package domain

// PlannedStop is one stop suggested by the external route planner.
// It is read-only to this application and only used for next-stop lookup.
type PlannedStop struct {
	Type     string   `json:"type"`
	Location string   `json:"location"`
	Time     string   `json:"time"`
	Duration *float64 `json:"duration,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// RouteRequest is sent to the route planner.
// Field names follow the planner's snake_case contract.
type RouteRequest struct {
	Origin            string   `json:"origin"`
	Destination       string   `json:"destination"`
	Waypoints         []string `json:"waypoints"`
	CurrentCycleHours float64  `json:"current_cycle_hours"`
	DriverName        string   `json:"driver_name"`
	CarrierName       string   `json:"carrier_name"`
	StartTime         string   `json:"start_time"`
}

// RoutePlan is the planner's response. Only Stops is interpreted; the totals
// are passed through for display.
type RoutePlan struct {
	Stops         []PlannedStop `json:"stops"`
	TotalDistance float64       `json:"total_distance"`
	TotalDuration float64       `json:"total_duration"`
	DrivingTime   float64       `json:"driving_time"`
	RestTime      float64       `json:"rest_time"`
}
