// Package service contains the application logic that sits between the HTTP
// handlers and the engine: trip validation with route planning, and daily log
// export with its local fallback.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// Defaults sent to the planner when the trip leaves the names blank.
const (
	DefaultDriverName  = "Driver"
	DefaultCarrierName = "Carrier"
)

// RoutePlanner requests a route from the planning service.
type RoutePlanner interface {
	Plan(ctx context.Context, req domain.RouteRequest) (domain.RoutePlan, error)
}

// TripState is the part of the engine the route service updates.
type TripState interface {
	SetTrip(trip domain.TripInfo)
	SetRoute(plan domain.RoutePlan)
}

// RouteService validates trip entry and plans the day's route.
type RouteService struct {
	planner RoutePlanner
	state   TripState
}

// NewRouteService constructs a RouteService.
func NewRouteService(planner RoutePlanner, state TripState) *RouteService {
	return &RouteService{planner: planner, state: state}
}

// Plan validates trip, asks the planner for a route and, only on success,
// stores both the trip and the route. Any failure leaves state untouched.
func (s *RouteService) Plan(ctx context.Context, trip domain.TripInfo) (domain.RoutePlan, error) {
	if err := ValidateTripLocations(trip); err != nil {
		return domain.RoutePlan{}, fmt.Errorf("service.RouteService.Plan: %w", err)
	}

	plan, err := s.planner.Plan(ctx, NewRouteRequest(trip))
	if err != nil {
		return domain.RoutePlan{}, fmt.Errorf("service.RouteService.Plan: %w", err)
	}

	s.state.SetTrip(trip)
	s.state.SetRoute(plan)
	return plan, nil
}

// ValidateTripLocations requires the current, pickup and dropoff locations.
func ValidateTripLocations(trip domain.TripInfo) error {
	if strings.TrimSpace(trip.CurrentLocation) == "" ||
		strings.TrimSpace(trip.PickupLocation) == "" ||
		strings.TrimSpace(trip.DropoffLocation) == "" {
		return fmt.Errorf("%w: please fill in all location fields", domain.ErrValidation)
	}
	return nil
}

// NewRouteRequest maps trip entry onto the planner contract: the route runs
// from the current location through the pickup to the dropoff.
func NewRouteRequest(trip domain.TripInfo) domain.RouteRequest {
	req := domain.RouteRequest{
		Origin:            trip.CurrentLocation,
		Destination:       trip.DropoffLocation,
		Waypoints:         []string{trip.PickupLocation},
		CurrentCycleHours: trip.CurrentCycleHours,
		DriverName:        trip.DriverName,
		CarrierName:       trip.CarrierName,
		StartTime:         trip.StartTime,
	}
	if strings.TrimSpace(req.DriverName) == "" {
		req.DriverName = DefaultDriverName
	}
	if strings.TrimSpace(req.CarrierName) == "" {
		req.CarrierName = DefaultCarrierName
	}
	return req
}
