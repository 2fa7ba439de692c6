package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// RoutePlanner calls the external route-planning service.
type RoutePlanner struct {
	client
}

// NewRoutePlanner returns a planner client for the service at baseURL.
// A nil session selects a client with a 10 second timeout.
func NewRoutePlanner(baseURL string, session *http.Client) *RoutePlanner {
	return &RoutePlanner{client: newClient(baseURL, session)}
}

// Plan requests a route. A response without a stop list is rejected with
// domain.ErrInvalidRoute; transport and status failures wrap domain.ErrUpstream.
func (p *RoutePlanner) Plan(ctx context.Context, req domain.RouteRequest) (domain.RoutePlan, error) {
	if req.Waypoints == nil {
		req.Waypoints = []string{}
	}
	httpReq, err := p.newRequest(ctx, http.MethodPost, "/api/calculate-route/", req)
	if err != nil {
		return domain.RoutePlan{}, fmt.Errorf("remote.RoutePlanner.Plan: %w", err)
	}

	var plan domain.RoutePlan
	if err := p.doJSON(httpReq, &plan); err != nil {
		return domain.RoutePlan{}, fmt.Errorf("remote.RoutePlanner.Plan: %w", err)
	}
	if plan.Stops == nil {
		return domain.RoutePlan{}, fmt.Errorf("remote.RoutePlanner.Plan: %w: response has no stops", domain.ErrInvalidRoute)
	}
	return plan, nil
}
