package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkordes/eld-logbook/internal/domain"
)

// LogService is the client for the remote daily-log persistence service.
// It satisfies hos.LogStore.
type LogService struct {
	client
}

// NewLogService returns a client for the log service at baseURL.
func NewLogService(baseURL string, session *http.Client) *LogService {
	return &LogService{client: newClient(baseURL, session)}
}

// List fetches every stored daily log in storage order.
// Always returns a non-nil slice on success.
func (s *LogService) List(ctx context.Context) ([]domain.DailyLog, error) {
	req, err := s.newRequest(ctx, http.MethodGet, "/api/driver-logs/", nil)
	if err != nil {
		return nil, fmt.Errorf("remote.LogService.List: %w", err)
	}

	var logs []domain.DailyLog
	if err := s.doJSON(req, &logs); err != nil {
		return nil, fmt.Errorf("remote.LogService.List: %w", err)
	}
	if logs == nil {
		return []domain.DailyLog{}, nil
	}
	return logs, nil
}

// Save posts one daily log and returns the service's canonical copy.
func (s *LogService) Save(ctx context.Context, log domain.DailyLog) (domain.DailyLog, error) {
	req, err := s.newRequest(ctx, http.MethodPost, "/api/save-log/", log)
	if err != nil {
		return domain.DailyLog{}, fmt.Errorf("remote.LogService.Save: %w", err)
	}

	var saved domain.DailyLog
	if err := s.doJSON(req, &saved); err != nil {
		return domain.DailyLog{}, fmt.Errorf("remote.LogService.Save: %w", err)
	}
	return saved, nil
}
