package nps

import (
	"context"

	"github.com/NextMind-AI/nps-dashboard-go/crm"
)

// ContactSearcher is the slice of the crm client the aggregator needs.
type ContactSearcher interface {
	SearchContactsPage(ctx context.Context, score, page int) (*crm.SearchResponse, error)
}

type Service struct {
	searcher ContactSearcher
}

func NewService(searcher ContactSearcher) *Service {
	return &Service{searcher: searcher}
}

// GenerateDashboard runs the full pipeline for one request: parse the
// date window, aggregate every score bucket, summarize. Everything is
// recomputed from the upstream on each call; nothing is cached across
// requests.
func (s *Service) GenerateDashboard(ctx context.Context, startDate, endDate string, page int) (*Dashboard, error) {
	window, err := ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	contacts, err := s.Aggregate(ctx, window)
	if err != nil {
		return nil, err
	}

	dashboard := BuildDashboard(contacts, page, startDate, endDate)
	return &dashboard, nil
}
