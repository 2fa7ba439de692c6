package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eld-logbook/internal/domain"
	"github.com/pkordes/eld-logbook/internal/service"
)

func validTrip() domain.TripInfo {
	return domain.TripInfo{
		CurrentLocation:   "Austin, TX",
		PickupLocation:    "Dallas, TX",
		DropoffLocation:   "Denver, CO",
		CurrentCycleHours: 14.25,
		StartTime:         "08:00",
	}
}

func TestRouteService_Plan_Success(t *testing.T) {
	var sent domain.RouteRequest
	plan := domain.RoutePlan{Stops: []domain.PlannedStop{{Type: "pickup", Location: "Dallas, TX"}}}
	state := &stateSpy{}
	svc := service.NewRouteService(&mockPlanner{
		plan: func(_ context.Context, req domain.RouteRequest) (domain.RoutePlan, error) {
			sent = req
			return plan, nil
		},
	}, state)

	got, err := svc.Plan(context.Background(), validTrip())
	require.NoError(t, err)
	assert.Equal(t, plan, got)

	assert.Equal(t, domain.RouteRequest{
		Origin:            "Austin, TX",
		Destination:       "Denver, CO",
		Waypoints:         []string{"Dallas, TX"},
		CurrentCycleHours: 14.25,
		DriverName:        service.DefaultDriverName,
		CarrierName:       service.DefaultCarrierName,
		StartTime:         "08:00",
	}, sent)

	require.Len(t, state.trips, 1)
	assert.Equal(t, validTrip(), state.trips[0])
	require.Len(t, state.routes, 1)
	assert.Equal(t, plan, state.routes[0])
}

func TestRouteService_Plan_KeepsGivenNames(t *testing.T) {
	trip := validTrip()
	trip.DriverName = "Jo Rivera"
	trip.CarrierName = "Lone Star Freight"

	req := service.NewRouteRequest(trip)
	assert.Equal(t, "Jo Rivera", req.DriverName)
	assert.Equal(t, "Lone Star Freight", req.CarrierName)
}

func TestRouteService_Plan_MissingLocation(t *testing.T) {
	cases := map[string]func(*domain.TripInfo){
		"current": func(tr *domain.TripInfo) { tr.CurrentLocation = "" },
		"pickup":  func(tr *domain.TripInfo) { tr.PickupLocation = "  " },
		"dropoff": func(tr *domain.TripInfo) { tr.DropoffLocation = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			trip := validTrip()
			mutate(&trip)
			state := &stateSpy{}
			svc := service.NewRouteService(&mockPlanner{
				plan: func(context.Context, domain.RouteRequest) (domain.RoutePlan, error) {
					t.Fatal("planner must not be called")
					return domain.RoutePlan{}, nil
				},
			}, state)

			_, err := svc.Plan(context.Background(), trip)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), "please fill in all location fields")
			assert.Empty(t, state.trips)
			assert.Empty(t, state.routes)
		})
	}
}

func TestRouteService_Plan_PlannerFailureLeavesStateUntouched(t *testing.T) {
	for name, planErr := range map[string]error{
		"upstream":      fmt.Errorf("remote: %w", domain.ErrUpstream),
		"invalid route": domain.ErrInvalidRoute,
	} {
		t.Run(name, func(t *testing.T) {
			state := &stateSpy{}
			svc := service.NewRouteService(&mockPlanner{
				plan: func(context.Context, domain.RouteRequest) (domain.RoutePlan, error) {
					return domain.RoutePlan{}, planErr
				},
			}, state)

			_, err := svc.Plan(context.Background(), validTrip())
			require.Error(t, err)
			assert.True(t, errors.Is(err, planErr))
			assert.Empty(t, state.trips)
			assert.Empty(t, state.routes)
		})
	}
}
