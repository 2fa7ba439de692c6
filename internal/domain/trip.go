package domain

// TripInfo holds the trip-entry fields a driver fills in before planning a
// route. The whole struct is snapshotted into the DailyLog at finalize time.
type TripInfo struct {
	DriverName        string  `json:"driverName"`
	CarrierName       string  `json:"carrierName"`
	CarrierAddress    string  `json:"carrierAddress"`
	HomeTerminal      string  `json:"homeTerminal"`
	VehicleNumber     string  `json:"vehicleNumber"`
	TrailerNumber     string  `json:"trailerNumber"`
	CurrentLocation   string  `json:"currentLocation"`
	PickupLocation    string  `json:"pickupLocation"`
	DropoffLocation   string  `json:"dropoffLocation"`
	CurrentCycleHours float64 `json:"currentCycleHours"`
	StartTime         string  `json:"startTime"` // "15:04" local time
}
